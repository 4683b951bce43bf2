package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/confideapp/confide/internal/api"
	"github.com/confideapp/confide/internal/model"
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "List recent confessions",
	Long: `List confessions from the feed, optionally filtered by mood.

Examples:
  confide feed
  confide feed --mood sadness
  confide feed --top --limit 10`,
	RunE: runFeed,
}

var (
	feedMood  string
	feedTop   bool
	feedLimit int
	feedPage  int
)

func init() {
	feedCmd.Flags().StringVarP(&feedMood, "mood", "m", "", "Filter by mood (joy, sadness, anger, fear, love, neutral)")
	feedCmd.Flags().BoolVar(&feedTop, "top", false, "Sort by reactions instead of recency")
	feedCmd.Flags().IntVarP(&feedLimit, "limit", "n", 20, "Number of confessions to show")
	feedCmd.Flags().IntVarP(&feedPage, "page", "p", 0, "Page number")
}

func runFeed(cmd *cobra.Command, args []string) error {
	if feedMood != "" && !model.ValidMood(feedMood) {
		return fmt.Errorf("unknown mood %q (one of: %s)", feedMood, strings.Join(model.Moods, ", "))
	}

	client, _, err := newClient()
	if err != nil {
		return err
	}

	params := api.FeedParams{Mood: feedMood, Limit: feedLimit, Page: feedPage}
	if feedTop {
		params.SortBy = "top"
	}

	ctx, cancel := requestContext()
	defer cancel()
	confessions, total, err := client.Feed(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to load feed: %w", err)
	}

	if len(confessions) == 0 {
		fmt.Println("No confessions found. Be the first: confide post \"...\"")
		return nil
	}

	fmt.Printf("\n🗣  Feed (%d total)\n", total)
	fmt.Println(strings.Repeat("─", 72))
	for _, conf := range confessions {
		printConfession(conf)
	}
	fmt.Println()
	return nil
}

func printConfession(conf model.Confession) {
	marks := ""
	if conf.Spotlighted {
		marks += " ✦"
	}
	if conf.Mine {
		marks += " (you)"
	}

	content := conf.Content
	if len(content) > 56 {
		content = content[:53] + "..."
	}

	shortID := conf.ID
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}

	fmt.Printf("  %-8s  %-8s  %-56s  %3d♥ %3d↩%s\n",
		shortID, conf.Mood, content, conf.Reactions, conf.ReplyCount, marks)
}
