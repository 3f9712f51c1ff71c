// Package session owns all per-user mutable state: the answer sheet, the
// generated report and its local completion flags, and the view state
// machine. Every mutation goes through the session mutex; nothing else may
// touch report state.
package session

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"

	"github.com/clarity-tools/clarity-plan/pkg/models/domain"
	"github.com/clarity-tools/clarity-plan/pkg/quiz"
	"github.com/clarity-tools/clarity-plan/pkg/services/generator"
	"github.com/rs/zerolog"
)

var (
	// ErrIncompleteAnswers blocks submission until every question is answered.
	ErrIncompleteAnswers = errors.New("answer every question before submitting")
	// ErrGenerationInFlight rejects a second submission while one is running.
	ErrGenerationInFlight = errors.New("a report is already being generated")
)

// GenerationFailedMessage is the single user-facing message for any
// generation failure.
const GenerationFailedMessage = "Sorry, we encountered an error while generating your report. Please try again."

// State is a read-only snapshot of a session.
type State struct {
	ID         string        `json:"sessionId"`
	View       domain.View   `json:"view"`
	Answered   int           `json:"answered"`
	Total      int           `json:"total"`
	Complete   bool          `json:"complete"`
	Generating bool          `json:"generating"`
	HasReport  bool          `json:"hasReport"`
	Error      string        `json:"error,omitempty"`
	Answers    domain.Answers `json:"answers"`
}

// Session is one user's quiz-to-plan lifecycle. The zero value is not usable;
// create sessions through a Registry.
type Session struct {
	mu        sync.Mutex
	id        string
	logger    zerolog.Logger
	generator generator.Service

	answers *quiz.AnswerSheet
	report  *domain.ReportData
	view    domain.View
	errMsg  string

	// epoch invalidates in-flight generations on retake; a completion whose
	// epoch no longer matches is dropped.
	epoch      int
	generating bool
	done       chan struct{}
}

func newSession(id string, gen generator.Service, logger zerolog.Logger) *Session {
	return &Session{
		id:        id,
		logger:    logger.With().Str("session", id).Logger(),
		generator: gen,
		answers:   quiz.NewAnswerSheet(quiz.TotalQuestions()),
		view:      domain.ViewDashboard,
	}
}

func (s *Session) ID() string {
	return s.id
}

// StartQuiz clears prior answers and error state and enters the quiz view.
func (s *Session) StartQuiz() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers.Reset()
	s.errMsg = ""
	s.view = domain.ViewQuiz
}

// SetAnswer records a rating for a question, overwriting any prior value.
func (s *Session) SetAnswer(questionID string, rating int) error {
	return s.answers.Set(questionID, rating)
}

// AutoFill answers every bank question with a rating in [2,4], the developer
// shortcut the dashboard exposes.
func (s *Session) AutoFill() {
	for _, id := range quiz.QuestionIDs() {
		_ = s.answers.Set(id, rand.IntN(3)+2)
	}
}

// Submit validates completeness, enters the loading view, and starts a single
// generation attempt in the background. The caller observes the result by
// polling Snapshot or blocking on Wait. Answers are never discarded by a
// submission, so a failed attempt returns the user to the quiz with
// everything still filled in.
func (s *Session) Submit(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generating {
		return ErrGenerationInFlight
	}
	if !s.answers.Complete() {
		return ErrIncompleteAnswers
	}

	s.view = domain.ViewLoading
	s.errMsg = ""
	s.generating = true
	s.done = make(chan struct{})

	answers := s.answers.Snapshot()
	epoch := s.epoch
	done := s.done

	// The generation outlives the submitting request.
	genCtx := s.logger.WithContext(context.WithoutCancel(ctx))
	go s.generate(genCtx, answers, epoch, done)

	return nil
}

func (s *Session) generate(ctx context.Context, answers domain.Answers, epoch int, done chan struct{}) {
	data, err := s.generator.GenerateReport(ctx, answers)

	s.mu.Lock()
	defer s.mu.Unlock()

	if epoch != s.epoch {
		// Retaken while in flight; the result belongs to a discarded session
		// lifecycle and must not resurrect a report.
		s.logger.Warn().Msg("dropping stale generation result")
		return
	}

	if err != nil {
		s.errMsg = GenerationFailedMessage
		s.view = domain.ViewQuiz
	} else {
		s.report = data
		s.view = domain.ViewReport
	}
	s.generating = false
	close(done)
}

// Wait blocks until the in-flight generation resolves, or returns immediately
// when none is running.
func (s *Session) Wait(ctx context.Context) error {
	s.mu.Lock()
	done := s.done
	generating := s.generating
	s.mu.Unlock()

	if !generating || done == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// Navigate moves to view v. Report-dependent views are refused (current view
// is kept) until a report exists, regardless of the current view.
func (s *Session) Navigate(v domain.View) domain.View {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v.RequiresReport() && s.report == nil {
		return s.view
	}
	s.view = v
	return s.view
}

// Retake discards the report entirely and returns to the dashboard. Any
// in-flight generation is abandoned.
func (s *Session) Retake() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.epoch++
	s.report = nil
	s.errMsg = ""
	s.view = domain.ViewDashboard
	if s.generating {
		s.generating = false
		close(s.done)
	}
}

// ToggleTask flips the completed flag of the task at index. Out-of-range
// indices and a missing report are silent no-ops: toggling never fails
// visibly.
func (s *Session) ToggleTask(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.report == nil || index < 0 || index >= len(s.report.DailyTasks) {
		return
	}
	s.report.DailyTasks[index].Completed = !s.report.DailyTasks[index].Completed
}

// TogglePriority flips the completed flag of the priority with the given
// number. Priorities are matched by identity, not position.
func (s *Session) TogglePriority(number int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.report == nil {
		return
	}
	for i := range s.report.Top3Priorities {
		if s.report.Top3Priorities[i].PriorityNumber == number {
			s.report.Top3Priorities[i].Completed = !s.report.Top3Priorities[i].Completed
			return
		}
	}
}

// AddTask appends a new task with completed forced to false. Existing task
// indices are unchanged.
func (s *Session) AddTask(t domain.Task) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.report == nil {
		return false
	}
	t.Completed = false
	s.report.DailyTasks = append(s.report.DailyTasks, t)
	return true
}

// AddPriority appends a new priority numbered max(existing)+1 (1 when the
// list is empty) with an empty month-1 task list. Returns the assigned
// number, or 0 when no report is loaded.
func (s *Session) AddPriority(title, description, expectedResult string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.report == nil {
		return 0
	}
	number := 0
	for _, p := range s.report.Top3Priorities {
		if p.PriorityNumber > number {
			number = p.PriorityNumber
		}
	}
	number++

	s.report.Top3Priorities = append(s.report.Top3Priorities, domain.TopPriority{
		PriorityNumber: number,
		Title:          title,
		Description:    description,
		Month1Tasks:    []string{},
		ExpectedResult: expectedResult,
	})
	return number
}

// Report returns a deep copy of the generated report, or nil when none
// exists.
func (s *Session) Report() *domain.ReportData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.report.Clone()
}

// Snapshot returns the session state for clients.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return State{
		ID:         s.id,
		View:       s.view,
		Answered:   s.answers.Count(),
		Total:      s.answers.Total(),
		Complete:   s.answers.Complete(),
		Generating: s.generating,
		HasReport:  s.report != nil,
		Error:      s.errMsg,
		Answers:    s.answers.Snapshot(),
	}
}
