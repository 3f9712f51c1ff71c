package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handlers "github.com/clarity-tools/clarity-plan/pkg/handlers/session"
	claritymiddleware "github.com/clarity-tools/clarity-plan/pkg/server/middleware"
	"github.com/clarity-tools/clarity-plan/pkg/services/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Sessions *session.Registry
}

type Config struct {
	Addr            string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	if config.ShutdownTimeout <= 0 {
		config.ShutdownTimeout = 10 * time.Second
	}
	origins := config.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	sessionHandler := handlers.NewHandler(config.Dependencies.Sessions)

	router := chi.NewRouter()

	router.Use(claritymiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         600,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/quiz", sessionHandler.GetQuiz)
		r.Post("/sessions", sessionHandler.CreateSession)

		r.Route("/sessions/{session}", func(r chi.Router) {
			r.Get("/", sessionHandler.GetSession)
			r.Post("/start", sessionHandler.StartQuiz)
			r.Put("/answers/{question}", sessionHandler.PutAnswer)
			r.Post("/submit", sessionHandler.Submit)
			r.Get("/report", sessionHandler.GetReport)
			r.Get("/export", sessionHandler.ExportPlan)
			r.Post("/navigate", sessionHandler.Navigate)
			r.Post("/retake", sessionHandler.Retake)
			r.Post("/tasks", sessionHandler.AddTask)
			r.Post("/tasks/{index}/toggle", sessionHandler.ToggleTask)
			r.Post("/priorities", sessionHandler.AddPriority)
			r.Post("/priorities/{number}/toggle", sessionHandler.TogglePriority)
		})
	})

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: config.ShutdownTimeout,
	}
}

// Router exposes the configured mux, mainly for tests.
func (w *WebAPI) Router() http.Handler {
	return w.router
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
