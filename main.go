// package main is the entry point for the devlog poster tool
package main

import (
	"log/slog"
	"os"

	"github.com/alan/devlog-poster/cmd/post"
	"github.com/alan/devlog-poster/cmd/preview"
	"github.com/alan/devlog-poster/cmd/verify"
	"github.com/alan/devlog-poster/internal/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Load .env if present so local runs match the CI environment.
	_ = godotenv.Load()

	var configFile string
	var logLevel string
	var logFormat string

	rootCmd := &cobra.Command{
		Use:   "devlog",
		Short: "A CLI tool that posts dev updates to LinkedIn when a push happens",
		Long: `devlog inspects the commits and changed files of a git push, decides
whether the change set is worth sharing (skipping doc-only, merge-only and
dependency-lockfile-only pushes), composes a short update, and publishes it
to LinkedIn via the Posts or UGC API.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogger(logLevel, logFormat)
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "devlog.yaml", "Defaults file path (optional, env vars win)")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&logFormat, "log-format", "f", "text", "Log format (text, json)")

	// Create commands with access to the global config file
	rootCmd.AddCommand(post.NewPostCmd(&configFile, config.Load))
	rootCmd.AddCommand(preview.NewPreviewCmd(&configFile, config.Load))
	rootCmd.AddCommand(verify.NewVerifyCmd(&configFile, config.Load))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogger(level, format string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	}

	slog.SetDefault(slog.New(handler))
}
