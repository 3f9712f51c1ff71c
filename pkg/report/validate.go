// Package report validates and normalizes raw generation output into a
// trusted ReportData. Model output is untrusted input: required objects are
// checked explicitly, statuses are reconciled with scores, and the two
// local-only completion flags are forced to their defaults.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/clarity-tools/clarity-plan/pkg/models/domain"
)

var (
	// ErrMalformedResponse means the raw payload is not a single JSON object.
	ErrMalformedResponse = errors.New("response is not valid JSON")
	// ErrIncompleteResponse means a required top-level section is missing.
	ErrIncompleteResponse = errors.New("response is missing required report sections")
)

// rawReport mirrors ReportData with pointer/nilable fields so absence can be
// told apart from zero values.
type rawReport struct {
	ExecutiveSummary  *domain.ExecutiveSummary   `json:"executiveSummary"`
	FocusAreas        []domain.FocusArea         `json:"focusAreas"`
	Top3Priorities    []domain.TopPriority       `json:"top3Priorities"`
	DetailedBreakdown []domain.DetailedBreakdown `json:"detailedBreakdown"`
	SixMonthPlan      []domain.SixMonthPhase     `json:"sixMonthPlan"`
	DailyTasks        []domain.Task              `json:"dailyTasks"`
}

// StatusForScore derives the canonical status for a 0-100 area score.
func StatusForScore(score int) domain.AreaStatus {
	switch {
	case score > 80:
		return domain.StatusStrong
	case score >= 60:
		return domain.StatusDeveloping
	default:
		return domain.StatusFocusArea
	}
}

// Ingest parses raw generation output and returns a normalized ReportData.
//
// Normalization applied, in order:
//   - statuses inconsistent with their score are rewritten from the score
//   - missing narrative arrays become empty slices, never nil
//   - the six-month plan is ordered by month
//   - every priority and task starts with Completed set to false
func Ingest(raw []byte) (*domain.ReportData, error) {
	var parsed rawReport
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if parsed.ExecutiveSummary == nil {
		return nil, fmt.Errorf("%w: executiveSummary", ErrIncompleteResponse)
	}
	if parsed.FocusAreas == nil {
		return nil, fmt.Errorf("%w: focusAreas", ErrIncompleteResponse)
	}
	if parsed.Top3Priorities == nil {
		return nil, fmt.Errorf("%w: top3Priorities", ErrIncompleteResponse)
	}

	data := &domain.ReportData{
		ExecutiveSummary:  *parsed.ExecutiveSummary,
		FocusAreas:        parsed.FocusAreas,
		Top3Priorities:    parsed.Top3Priorities,
		DetailedBreakdown: parsed.DetailedBreakdown,
		SixMonthPlan:      parsed.SixMonthPlan,
		DailyTasks:        parsed.DailyTasks,
	}

	for i := range data.FocusAreas {
		data.FocusAreas[i].Status = StatusForScore(data.FocusAreas[i].Score)
	}

	for i := range data.Top3Priorities {
		p := &data.Top3Priorities[i]
		if p.Month1Tasks == nil {
			p.Month1Tasks = []string{}
		}
		p.Completed = false
	}

	if data.DetailedBreakdown == nil {
		data.DetailedBreakdown = []domain.DetailedBreakdown{}
	}
	for i := range data.DetailedBreakdown {
		b := &data.DetailedBreakdown[i]
		b.Status = StatusForScore(b.Score)
		if b.WhatsGoingWell == nil {
			b.WhatsGoingWell = []string{}
		}
		if b.WhereToImprove == nil {
			b.WhereToImprove = []string{}
		}
		if b.QuickWins == nil {
			b.QuickWins = []string{}
		}
	}

	if data.SixMonthPlan == nil {
		data.SixMonthPlan = []domain.SixMonthPhase{}
	}
	sort.SliceStable(data.SixMonthPlan, func(i, j int) bool {
		return data.SixMonthPlan[i].Month < data.SixMonthPlan[j].Month
	})
	for i := range data.SixMonthPlan {
		if data.SixMonthPlan[i].Tasks == nil {
			data.SixMonthPlan[i].Tasks = []string{}
		}
	}

	if data.DailyTasks == nil {
		data.DailyTasks = []domain.Task{}
	}
	for i := range data.DailyTasks {
		data.DailyTasks[i].Completed = false
	}

	return data, nil
}

// ConsistencyIssues lists area names whose reported status disagreed with the
// status derived from the score. Ingest already repairs these; callers use
// this to log what the model got wrong.
func ConsistencyIssues(raw []byte) []string {
	var parsed rawReport
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil
	}

	var issues []string
	for _, fa := range parsed.FocusAreas {
		if fa.Status != StatusForScore(fa.Score) {
			issues = append(issues, fa.Area)
		}
	}
	for _, b := range parsed.DetailedBreakdown {
		if b.Status != StatusForScore(b.Score) {
			issues = append(issues, b.Area)
		}
	}
	return issues
}
