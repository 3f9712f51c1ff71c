package main

import (
	"fmt"
	"os"

	"github.com/clarity-tools/clarity-plan/pkg/gemini"
	"github.com/clarity-tools/clarity-plan/pkg/server"
	"github.com/clarity-tools/clarity-plan/pkg/services/config"
	"github.com/clarity-tools/clarity-plan/pkg/services/generator"
	"github.com/clarity-tools/clarity-plan/pkg/services/session"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for the Leadership Clarity Plan",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the clarity.yaml config file (defaults apply when omitted)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	apiKey, err := config.APIKeyFromEnv()
	if err != nil {
		return err
	}

	client, err := gemini.NewClient(gemini.Config{
		APIKey:  apiKey,
		BaseURL: cfg.Gemini.BaseURL,
		Model:   cfg.Gemini.Model,
		Timeout: cfg.Gemini.Timeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create gemini client: %w", err)
	}

	sessions := session.NewRegistry(generator.New(client), logger)

	logger.Info().Str("model", client.Model()).Msg("generation boundary configured")

	api := server.NewWebAPI(logger, server.Config{
		Addr:            cfg.Server.Addr,
		AllowedOrigins:  cfg.Server.AllowedOrigins,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Sessions: sessions,
		},
	})

	return api.Start()
}
