// Package session exposes the quiz-to-plan lifecycle over HTTP.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/clarity-tools/clarity-plan/pkg/export"
	"github.com/clarity-tools/clarity-plan/pkg/models/api"
	"github.com/clarity-tools/clarity-plan/pkg/models/domain"
	"github.com/clarity-tools/clarity-plan/pkg/quiz"
	sessionsvc "github.com/clarity-tools/clarity-plan/pkg/services/session"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Handler struct {
	sessions *sessionsvc.Registry
}

func NewHandler(sessions *sessionsvc.Registry) *Handler {
	return &Handler{sessions: sessions}
}

// GetQuiz serves the static question bank and rating scale.
func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, api.Quiz{
		Sections:       quiz.Sections(),
		AnswerOptions:  quiz.AnswerOptions(),
		TotalQuestions: quiz.TotalQuestions(),
	})
}

// CreateSession registers a fresh session starting on the dashboard.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	s := h.sessions.Create()
	writeJSON(r.Context(), w, http.StatusCreated, s.Snapshot())
}

// GetSession returns the current session snapshot.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, s.Snapshot())
}

// StartQuiz clears answers and error state and enters the quiz.
func (h *Handler) StartQuiz(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}
	s.StartQuiz()
	writeJSON(r.Context(), w, http.StatusOK, s.Snapshot())
}

// PutAnswer records one rating.
func (h *Handler) PutAnswer(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req api.AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(r.Context(), w, http.StatusBadRequest, "request body must be JSON")
		return
	}

	questionID := chi.URLParam(r, "question")
	if err := s.SetAnswer(questionID, req.Rating); err != nil {
		writeError(r.Context(), w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, s.Snapshot())
}

// Submit kicks off report generation. With ?auto=1 the quiz is filled in
// first (the dashboard's developer shortcut); with ?wait=1 the response
// blocks until generation resolves instead of returning the loading state.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}
	ctx := r.Context()

	if r.URL.Query().Get("auto") == "1" {
		s.AutoFill()
	}

	err := s.Submit(ctx)
	switch {
	case errors.Is(err, sessionsvc.ErrIncompleteAnswers):
		writeError(ctx, w, http.StatusUnprocessableEntity, err.Error())
		return
	case errors.Is(err, sessionsvc.ErrGenerationInFlight):
		writeError(ctx, w, http.StatusConflict, err.Error())
		return
	case err != nil:
		zerolog.Ctx(ctx).Error().Err(err).Msg("submit failed")
		writeError(ctx, w, http.StatusInternalServerError, err.Error())
		return
	}

	if r.URL.Query().Get("wait") == "1" {
		if err := s.Wait(ctx); err != nil {
			writeError(ctx, w, http.StatusRequestTimeout, "generation did not finish in time")
			return
		}
	}
	writeJSON(ctx, w, http.StatusAccepted, s.Snapshot())
}

// GetReport returns the generated plan, or 404 until one exists.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}
	data := s.Report()
	if data == nil {
		writeError(r.Context(), w, http.StatusNotFound, "report not generated yet")
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, data)
}

// ExportPlan returns the plain-text projection used for copy/print flows.
func (h *Handler) ExportPlan(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}
	data := s.Report()
	if data == nil {
		writeError(r.Context(), w, http.StatusNotFound, "report not generated yet")
		return
	}

	text, err := export.Render(data)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to render plan export")
		writeError(r.Context(), w, http.StatusInternalServerError, "failed to render plan")
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(text))
}

// Navigate moves the session to another view, subject to the report guard.
func (h *Handler) Navigate(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req api.NavigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(r.Context(), w, http.StatusBadRequest, "request body must be JSON")
		return
	}
	view := domain.View(req.View)
	if !view.Valid() {
		writeError(r.Context(), w, http.StatusBadRequest, "unknown view")
		return
	}

	s.Navigate(view)
	writeJSON(r.Context(), w, http.StatusOK, s.Snapshot())
}

// Retake discards the report and returns to the dashboard.
func (h *Handler) Retake(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}
	s.Retake()
	writeJSON(r.Context(), w, http.StatusOK, s.Snapshot())
}

// ToggleTask flips one task's completed flag. Per the mutation model this
// never fails visibly: bad indices are no-ops.
func (h *Handler) ToggleTask(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(r.Context(), w, http.StatusBadRequest, "task index must be an integer")
		return
	}
	s.ToggleTask(index)
	w.WriteHeader(http.StatusNoContent)
}

// TogglePriority flips one priority's completed flag, matched by number.
func (h *Handler) TogglePriority(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil {
		writeError(r.Context(), w, http.StatusBadRequest, "priority number must be an integer")
		return
	}
	s.TogglePriority(number)
	w.WriteHeader(http.StatusNoContent)
}

// AddTask appends a user-defined task.
func (h *Handler) AddTask(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req api.AddTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(r.Context(), w, http.StatusBadRequest, "request body must be JSON")
		return
	}
	category := domain.TaskCategory(req.Category)
	cadence := domain.TaskCadence(req.Cadence)
	if !category.Valid() || !cadence.Valid() {
		writeError(r.Context(), w, http.StatusBadRequest, "unknown task category or cadence")
		return
	}

	s.AddTask(domain.Task{
		Title:       req.Title,
		Description: req.Description,
		Category:    category,
		Cadence:     cadence,
	})
	w.WriteHeader(http.StatusNoContent)
}

// AddPriority appends a user-defined priority and returns its number.
func (h *Handler) AddPriority(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req api.AddPriorityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(r.Context(), w, http.StatusBadRequest, "request body must be JSON")
		return
	}

	number := s.AddPriority(req.Title, req.Description, req.ExpectedResult)
	writeJSON(r.Context(), w, http.StatusOK, api.PriorityCreated{PriorityNumber: number})
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (*sessionsvc.Session, bool) {
	id := chi.URLParam(r, "session")
	s, err := h.sessions.Get(id)
	if err != nil {
		writeError(r.Context(), w, http.StatusNotFound, err.Error())
		return nil, false
	}
	return s, true
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, message string) {
	writeJSON(ctx, w, status, api.Error{Error: message})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to encode response")
	}
}
