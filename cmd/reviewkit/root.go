package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/codariq/reviewkit/internal/app"
	"github.com/codariq/reviewkit/internal/config"
	"github.com/codariq/reviewkit/internal/logger"
)

var (
	githubToken string
	byHunks     bool
)

// Color definitions
var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	infoColor    = color.New(color.FgWhite)
	dimColor     = color.New(color.FgHiBlack)
	boldColor    = color.New(color.Bold)
)

var rootCmd = &cobra.Command{
	Use:   "reviewkit",
	Short: "reviewkit reviews code changes with an LLM.",
	Long: `reviewkit sends unified diffs to an LLM and prints a structured
code review. It works on local patch files and on GitHub pull requests,
either as one review per file or one review per hunk.`,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	rootCmd.PersistentFlags().StringVarP(&githubToken, "github-token", "t", "", "GitHub token (falls back to the GITHUB_TOKEN environment variable)")
	rootCmd.PersistentFlags().BoolVar(&byHunks, "by-hunks", false, "Review each hunk independently instead of the whole file patch")

	if err := viper.BindPFlag("GITHUB_TOKEN", rootCmd.PersistentFlags().Lookup("github-token")); err != nil {
		slog.Error("error binding flag", "error", err)
		os.Exit(1)
	}
}

// initApp loads configuration and builds the application stack shared
// by all commands.
func initApp(ctx context.Context) (*app.App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if githubToken != "" {
		cfg.GitHubToken = githubToken
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat, nil)
	slog.SetDefault(log)

	return app.NewApp(ctx, cfg, log)
}

// printReviews writes the collected reviews to stdout with a small
// amount of color.
func printReviews(reviews []app.FileReview) {
	reviewed, skipped := 0, 0
	for _, r := range reviews {
		if r.Skipped {
			skipped++
			continue
		}
		reviewed++

		fmt.Println()
		titleColor.Printf("━━ %s", r.Filename)
		if len(r.Results) > 1 {
			dimColor.Printf(" (%d hunks)", len(r.Results))
		}
		fmt.Println()

		for i, result := range r.Results {
			if len(r.Results) > 1 {
				fmt.Println()
				boldColor.Printf("Hunk %d/%d\n", i+1, len(r.Results))
			}
			infoColor.Println(result.Content)
		}
	}

	if skipped > 0 {
		fmt.Println()
		warnColor.Printf("Skipped %d file(s):\n", skipped)
		for _, r := range reviews {
			if r.Skipped {
				dimColor.Printf("  %s (%s)\n", r.Filename, r.Reason)
			}
		}
	}

	fmt.Println()
	successColor.Printf("✓ Reviewed %d file(s)\n", reviewed)
}
