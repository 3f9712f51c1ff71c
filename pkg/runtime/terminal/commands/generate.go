package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/clarity-tools/clarity-plan/pkg/export"
	"github.com/clarity-tools/clarity-plan/pkg/gemini"
	"github.com/clarity-tools/clarity-plan/pkg/quiz"
	"github.com/clarity-tools/clarity-plan/pkg/services/config"
	"github.com/clarity-tools/clarity-plan/pkg/services/generator"
	"github.com/clarity-tools/clarity-plan/pkg/services/session"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewGenerateCmd runs one quiz-to-plan cycle from the terminal and prints the
// plan. Without --auto every question gets the same fixed rating; with --auto
// ratings are randomized in [2,4] like the dashboard shortcut.
func NewGenerateCmd(reporter *export.Reporter) *cobra.Command {
	var (
		auto   bool
		rating int
		model  string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Fill in the quiz and print the generated clarity plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			apiKey, err := config.APIKeyFromEnv()
			if err != nil {
				return err
			}

			client, err := gemini.NewClient(gemini.Config{
				APIKey: apiKey,
				Model:  model,
			})
			if err != nil {
				return fmt.Errorf("failed to create gemini client: %w", err)
			}

			logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
			ctx := logger.WithContext(cmd.Context())

			sessions := session.NewRegistry(generator.New(client), logger)
			s := sessions.Create()
			s.StartQuiz()

			if auto {
				s.AutoFill()
			} else {
				for _, id := range quiz.QuestionIDs() {
					if err := s.SetAnswer(id, rating); err != nil {
						return err
					}
				}
			}

			if err := s.Submit(ctx); err != nil {
				return err
			}
			if err := s.Wait(ctx); err != nil {
				return err
			}

			if snap := s.Snapshot(); snap.Error != "" {
				return errors.New(snap.Error)
			}
			return reporter.Handle(s.Report())
		},
	}

	cmd.Flags().BoolVar(&auto, "auto", false, "Answer with random ratings between 2 and 4")
	cmd.Flags().IntVar(&rating, "rating", 3, "Fixed rating to answer every question with")
	cmd.Flags().StringVar(&model, "model", "", "Override the generation model")

	return cmd
}
