package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/confideapp/confide/internal/model"
)

var postCmd = &cobra.Command{
	Use:   "post [content]",
	Short: "Post a confession",
	Long: `Post an anonymous confession tagged with a mood.

Examples:
  confide post "I still sing in the shower"
  confide post --mood joy "Got the job!"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPost,
}

var postMood string

func init() {
	postCmd.Flags().StringVarP(&postMood, "mood", "m", model.MoodNeutral, "Mood tag for the confession")
}

func runPost(cmd *cobra.Command, args []string) error {
	content := strings.Join(args, " ")

	client, sessions, err := newClient()
	if err != nil {
		return err
	}
	if !sessions.LoggedIn() {
		return fmt.Errorf("not logged in; run: confide auth login")
	}

	fmt.Println("🔄 Posting...")
	ctx, cancel := requestContext()
	defer cancel()
	conf, err := client.PostConfession(ctx, content, postMood)
	if err != nil {
		return err
	}

	fmt.Printf("✅ Confessed (%s, id %s)\n", conf.Mood, conf.ID)
	return nil
}

var reactCmd = &cobra.Command{
	Use:   "react [confession-id]",
	Short: "Toggle your reaction on a confession",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}

		ctx, cancel := requestContext()
		defer cancel()
		count, err := client.React(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("✅ Reaction toggled (%d♥)\n", count)
		return nil
	},
}

var spotlightCmd = &cobra.Command{
	Use:   "spotlight [confession-id]",
	Short: "Spend credits to pin a confession to the top of the feed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}

		ctx, cancel := requestContext()
		defer cancel()
		if err := client.Spotlight(ctx, args[0]); err != nil {
			return err
		}

		fmt.Println("✨ Spotlighted!")
		return nil
	},
}

var boostCmd = &cobra.Command{
	Use:   "boost [confession-id]",
	Short: "Spend credits to raise a confession's ranking",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}

		ctx, cancel := requestContext()
		defer cancel()
		if err := client.Boost(ctx, args[0]); err != nil {
			return err
		}

		fmt.Println("🚀 Boosted!")
		return nil
	},
}
