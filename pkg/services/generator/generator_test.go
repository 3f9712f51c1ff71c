package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/clarity-tools/clarity-plan/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockBoundary struct {
	mock.Mock
}

func (m *mockBoundary) GenerateContent(ctx context.Context, prompt string, schema map[string]any) (string, error) {
	args := m.Called(ctx, prompt, schema)
	return args.String(0), args.Error(1)
}

const cannedResponse = `{
	"executiveSummary": {
		"overallScore": 58,
		"oneSentenceAssessment": "a",
		"primaryStrength": "b",
		"keyInsight": "c",
		"positiveReinforcement": "d"
	},
	"focusAreas": [
		{"area": "Self-Awareness & Presence", "status": "Strong", "score": 85, "summary": "s"},
		{"area": "Emotional Regulation", "status": "Focus Area", "score": 55, "summary": "s"},
		{"area": "Strategic Thinking", "status": "Developing", "score": 68, "summary": "s"},
		{"area": "Communication & Influence", "status": "Developing", "score": 72, "summary": "s"},
		{"area": "Team Empowerment", "status": "Developing", "score": 61, "summary": "s"},
		{"area": "Leader's Well-being", "status": "Developing", "score": 78, "summary": "s"}
	],
	"top3Priorities": [
		{"priorityNumber": 1, "title": "p1", "description": "d", "month1Tasks": ["t"], "expectedResult": "r"},
		{"priorityNumber": 2, "title": "p2", "description": "d", "month1Tasks": ["t"], "expectedResult": "r"},
		{"priorityNumber": 3, "title": "p3", "description": "d", "month1Tasks": ["t"], "expectedResult": "r"}
	],
	"detailedBreakdown": [],
	"sixMonthPlan": [
		{"month": 1, "theme": "m1", "tasks": ["t"], "kpi": "k"},
		{"month": 2, "theme": "m2", "tasks": ["t"], "kpi": "k"},
		{"month": 3, "theme": "m3", "tasks": ["t"], "kpi": "k"},
		{"month": 4, "theme": "m4", "tasks": ["t"], "kpi": "k"},
		{"month": 5, "theme": "m5", "tasks": ["t"], "kpi": "k"},
		{"month": 6, "theme": "m6", "tasks": ["t"], "kpi": "k"}
	],
	"dailyTasks": [
		{"title": "t1", "description": "d", "category": "Awareness", "cadence": "Daily"},
		{"title": "t2", "description": "d", "category": "Action", "cadence": "Weekly"},
		{"title": "t3", "description": "d", "category": "Reflection", "cadence": "Monthly"},
		{"title": "t4", "description": "d", "category": "Regulation", "cadence": "Daily"},
		{"title": "t5", "description": "d", "category": "Connection", "cadence": "Weekly"}
	]
}`

func allThrees() domain.Answers {
	answers := make(domain.Answers)
	for i := 1; i <= 16; i++ {
		answers[fmt.Sprintf("q%d", i)] = 3
	}
	return answers
}

func TestGenerateReportHappyPath(t *testing.T) {
	boundary := new(mockBoundary)
	boundary.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything).
		Return(cannedResponse, nil)

	data, err := New(boundary).GenerateReport(context.Background(), domain.Answers{"q1": 3})
	require.NoError(t, err)

	assert.Len(t, data.FocusAreas, 6)
	assert.Len(t, data.Top3Priorities, 3)
	assert.Len(t, data.SixMonthPlan, 6)
	for i, phase := range data.SixMonthPlan {
		assert.Equal(t, i+1, phase.Month)
	}
	for _, p := range data.Top3Priorities {
		assert.False(t, p.Completed)
	}
	for _, task := range data.DailyTasks {
		assert.False(t, task.Completed)
	}
	boundary.AssertExpectations(t)
}

func TestGenerateReportSendsPromptAndSchema(t *testing.T) {
	boundary := new(mockBoundary)
	boundary.On("GenerateContent", mock.Anything,
		mock.MatchedBy(func(prompt string) bool {
			for _, area := range domain.FocusAreaNames() {
				if !strings.Contains(prompt, area) {
					return false
				}
			}
			return strings.Contains(prompt, "q7: 2") && strings.Contains(prompt, "LEADERSHIP BENCHMARKS")
		}),
		mock.MatchedBy(func(schema map[string]any) bool {
			return schema != nil
		}),
	).Return(cannedResponse, nil)

	_, err := New(boundary).GenerateReport(context.Background(), domain.Answers{"q7": 2, "q1": 5})
	require.NoError(t, err)
	boundary.AssertExpectations(t)
}

func TestGenerateReportTransportFailure(t *testing.T) {
	boundary := new(mockBoundary)
	boundary.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("connection refused"))

	data, err := New(boundary).GenerateReport(context.Background(), allThrees())
	assert.Nil(t, data)
	assert.ErrorIs(t, err, ErrReportGeneration)
}

func TestGenerateReportNonJSONResponse(t *testing.T) {
	boundary := new(mockBoundary)
	boundary.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything).
		Return("I'm sorry, I can't produce a report right now.", nil)

	data, err := New(boundary).GenerateReport(context.Background(), allThrees())
	assert.Nil(t, data)
	assert.ErrorIs(t, err, ErrReportGeneration)
}

func TestGenerateReportRepairsNearJSON(t *testing.T) {
	// Trailing comma: invalid for encoding/json, recoverable by repair.
	damaged := strings.TrimSuffix(strings.TrimSpace(cannedResponse), "}") + ",}"

	boundary := new(mockBoundary)
	boundary.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything).
		Return(damaged, nil)

	data, err := New(boundary).GenerateReport(context.Background(), allThrees())
	require.NoError(t, err)
	assert.Len(t, data.FocusAreas, 6)
}

func TestGenerateReportIncompleteResponse(t *testing.T) {
	boundary := new(mockBoundary)
	boundary.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything).
		Return(`{"executiveSummary": {"overallScore": 10}, "focusAreas": []}`, nil)

	data, err := New(boundary).GenerateReport(context.Background(), allThrees())
	assert.Nil(t, data)
	assert.ErrorIs(t, err, ErrReportGeneration)
}
