// Package generator turns a completed answer set into a validated clarity
// report by calling the generation boundary exactly once.
package generator

import (
	"context"
	"errors"

	"github.com/clarity-tools/clarity-plan/pkg/models/domain"
	"github.com/clarity-tools/clarity-plan/pkg/report"
	"github.com/kaptinlin/jsonrepair"
	"github.com/rs/zerolog"
)

// ErrReportGeneration is the single failure every transport, parse, or
// validation problem collapses into. Callers never see the underlying cause.
var ErrReportGeneration = errors.New("report generation failed")

// ContentGenerator is the external generation boundary. The production
// implementation is gemini.Client; tests supply canned responses.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string, schema map[string]any) (string, error)
}

// Service produces clarity reports from quiz answers.
type Service interface {
	GenerateReport(ctx context.Context, answers domain.Answers) (*domain.ReportData, error)
}

type service struct {
	boundary ContentGenerator
}

func New(boundary ContentGenerator) Service {
	return &service{boundary: boundary}
}

// GenerateReport makes a single generation attempt. No retry, no caching:
// submitting the same answers twice triggers two independent calls and may
// yield different reports.
func (s *service) GenerateReport(ctx context.Context, answers domain.Answers) (*domain.ReportData, error) {
	logger := zerolog.Ctx(ctx)

	text, err := s.boundary.GenerateContent(ctx, BuildPrompt(answers), ResponseSchema())
	if err != nil {
		logger.Error().Err(err).Msg("generation call failed")
		return nil, ErrReportGeneration
	}

	data, err := s.ingest(ctx, text)
	if err != nil {
		logger.Error().Err(err).Msg("generation response rejected")
		return nil, ErrReportGeneration
	}

	logger.Info().
		Int("focus_areas", len(data.FocusAreas)).
		Int("priorities", len(data.Top3Priorities)).
		Int("daily_tasks", len(data.DailyTasks)).
		Msg("report generated")
	return data, nil
}

// ingest validates the raw response, attempting one JSON repair pass when the
// payload is close to, but not quite, valid JSON.
func (s *service) ingest(ctx context.Context, text string) (*domain.ReportData, error) {
	logger := zerolog.Ctx(ctx)

	payload := text
	data, err := report.Ingest([]byte(payload))
	if errors.Is(err, report.ErrMalformedResponse) {
		repaired, repairErr := jsonrepair.JSONRepair(text)
		if repairErr != nil {
			return nil, err
		}
		logger.Warn().Msg("response was not valid JSON, repaired before parsing")
		payload = repaired
		data, err = report.Ingest([]byte(payload))
	}
	if err != nil {
		return nil, err
	}

	if issues := report.ConsistencyIssues([]byte(payload)); len(issues) > 0 {
		logger.Warn().
			Strs("areas", issues).
			Msg("status inconsistent with score, rewrote from score")
	}
	return data, nil
}
