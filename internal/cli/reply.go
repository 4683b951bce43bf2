package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var repliesCmd = &cobra.Command{
	Use:   "replies [confession-id]",
	Short: "List the replies to a confession",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplies,
}

var replyCmd = &cobra.Command{
	Use:   "reply [confession-id] [content]",
	Short: "Reply to a confession",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runReply,
}

func runReplies(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	ctx, cancel := requestContext()
	defer cancel()
	conf, err := client.Confession(ctx, args[0])
	if err != nil {
		return err
	}
	replies, err := client.Replies(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("\n%s  %s\n", conf.Mood, conf.Content)
	fmt.Println(strings.Repeat("─", 72))

	if len(replies) == 0 {
		fmt.Println("  No replies yet.")
		return nil
	}
	for _, reply := range replies {
		shortID := reply.ID
		if len(shortID) > 8 {
			shortID = shortID[:8]
		}
		fmt.Printf("  %-8s  %-56s  %3d♥\n", shortID, reply.Content, reply.Likes)
	}
	fmt.Println()
	return nil
}

func runReply(cmd *cobra.Command, args []string) error {
	content := strings.Join(args[1:], " ")

	client, sessions, err := newClient()
	if err != nil {
		return err
	}
	if !sessions.LoggedIn() {
		return fmt.Errorf("not logged in; run: confide auth login")
	}

	ctx, cancel := requestContext()
	defer cancel()
	if _, err := client.Reply(ctx, args[0], content); err != nil {
		return err
	}

	fmt.Println("✅ Replied")
	return nil
}
