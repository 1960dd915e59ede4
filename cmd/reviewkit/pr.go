package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codariq/reviewkit/internal/gitutil"
)

var postComment bool

var prCmd = &cobra.Command{
	Use:   "pr [pr-url]",
	Short: "Review a GitHub pull request",
	Long: `Review every changed file of a GitHub pull request.

The pull request can be given as a full URL or as owner/repo#number.

Examples:
  reviewkit pr https://github.com/owner/repo/pull/123
  reviewkit pr owner/repo#123 --by-hunks
  reviewkit pr owner/repo#123 --post`,
	Args: cobra.ExactArgs(1),
	RunE: runPR,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	prCmd.Flags().BoolVar(&postComment, "post", false, "Post the review as a comment on the pull request")
	rootCmd.AddCommand(prCmd)
}

func runPR(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ref, err := gitutil.ParsePullRequestRef(args[0])
	if err != nil {
		return fmt.Errorf("%w\n\nExpected format: https://github.com/owner/repo/pull/123 or owner/repo#123", err)
	}

	a, err := initApp(ctx)
	if err != nil {
		return err
	}

	titleColor.Printf("Reviewing %s\n", ref)

	reviews, err := a.ReviewPullRequest(ctx, ref, byHunks, postComment)
	if err != nil {
		return err
	}

	printReviews(reviews)
	if postComment {
		successColor.Println("✓ Review posted as a PR comment")
	}
	return nil
}
