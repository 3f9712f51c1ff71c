package api

import "github.com/clarity-tools/clarity-plan/pkg/models/domain"

// Quiz is the static question bank payload served to clients.
type Quiz struct {
	Sections       []domain.Section      `json:"sections"`
	AnswerOptions  []domain.AnswerOption `json:"answerOptions"`
	TotalQuestions int                   `json:"totalQuestions"`
}

type AnswerRequest struct {
	Rating int `json:"rating"`
}

type NavigateRequest struct {
	View string `json:"view"`
}

type AddTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Cadence     string `json:"cadence"`
}

type AddPriorityRequest struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	ExpectedResult string `json:"expectedResult"`
}

type PriorityCreated struct {
	PriorityNumber int `json:"priorityNumber"`
}

type Error struct {
	Error string `json:"error"`
}
