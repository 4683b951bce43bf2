package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var giftCmd = &cobra.Command{
	Use:   "gift",
	Short: "Send virtual gifts",
}

var giftListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the gift catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}

		ctx, cancel := requestContext()
		defer cancel()
		gifts, err := client.Gifts(ctx)
		if err != nil {
			return err
		}

		fmt.Println("\n🎁 Gift catalog")
		fmt.Println(strings.Repeat("─", 48))
		for _, gift := range gifts {
			fmt.Printf("  %s  %-20s  %4d credits  (%s)\n", gift.Emoji, gift.Name, gift.Cost, gift.ID)
		}
		fmt.Println()
		return nil
	},
}

var giftSendCmd = &cobra.Command{
	Use:   "send [confession-id] [gift-id]",
	Short: "Send a gift to a confession's author",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, sessions, err := newClient()
		if err != nil {
			return err
		}
		if !sessions.LoggedIn() {
			return fmt.Errorf("not logged in; run: confide auth login")
		}

		ctx, cancel := requestContext()
		defer cancel()
		if err := client.SendGift(ctx, args[0], args[1]); err != nil {
			return err
		}

		fmt.Println("🎁 Gift sent!")
		return nil
	},
}

var pollCmd = &cobra.Command{
	Use:   "poll",
	Short: "View and vote in the community poll",
}

var pollShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active poll",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}

		ctx, cancel := requestContext()
		defer cancel()
		poll, err := client.ActivePoll(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("\n📊 %s\n", poll.Question)
		fmt.Println(strings.Repeat("─", 48))
		total := 0
		for _, opt := range poll.Options {
			total += opt.Votes
		}
		for _, opt := range poll.Options {
			pct := 0
			if total > 0 {
				pct = opt.Votes * 100 / total
			}
			fmt.Printf("  %-8s  %-30s  %3d%% (%d)\n", opt.ID, opt.Label, pct, opt.Votes)
		}
		if poll.Voted {
			fmt.Println("\n  You already voted.")
		} else {
			fmt.Printf("\n  Vote with: confide poll vote %s <option-id>\n", poll.ID)
		}
		fmt.Println()
		return nil
	},
}

var pollVoteCmd = &cobra.Command{
	Use:   "vote [poll-id] [option-id]",
	Short: "Cast your vote",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, sessions, err := newClient()
		if err != nil {
			return err
		}
		if !sessions.LoggedIn() {
			return fmt.Errorf("not logged in; run: confide auth login")
		}

		ctx, cancel := requestContext()
		defer cancel()
		if err := client.Vote(ctx, args[0], args[1]); err != nil {
			return err
		}

		fmt.Println("✅ Vote recorded")
		return nil
	},
}

func init() {
	giftCmd.AddCommand(giftListCmd)
	giftCmd.AddCommand(giftSendCmd)

	pollCmd.AddCommand(pollShowCmd)
	pollCmd.AddCommand(pollVoteCmd)
}
