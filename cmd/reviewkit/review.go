package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review [patch-file]",
	Short: "Review a unified diff from a file or stdin",
	Long: `Review a unified diff read from a patch file, or from stdin when the
argument is "-".

Examples:
  git diff main...HEAD > changes.patch && reviewkit review changes.patch
  git diff | reviewkit review -
  reviewkit review --by-hunks changes.patch`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var in io.Reader
	if args[0] == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("cannot open patch file: %w", err)
		}
		defer f.Close()
		in = f
	}

	a, err := initApp(ctx)
	if err != nil {
		return err
	}

	reviews, err := a.ReviewPatch(ctx, in, byHunks)
	if err != nil {
		return err
	}

	printReviews(reviews)
	return nil
}
