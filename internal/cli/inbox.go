package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var inboxCmd = &cobra.Command{
	Use:   "inbox",
	Short: "Read and send messages to the admin team",
	RunE:  runInbox,
}

var inboxSendCmd = &cobra.Command{
	Use:   "send [content]",
	Short: "Send a message to the admin team",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInboxSend,
}

func init() {
	inboxCmd.AddCommand(inboxSendCmd)
}

func runInbox(cmd *cobra.Command, args []string) error {
	client, sessions, err := newClient()
	if err != nil {
		return err
	}
	if !sessions.LoggedIn() {
		return fmt.Errorf("not logged in; run: confide auth login")
	}

	ctx, cancel := requestContext()
	defer cancel()
	messages, err := client.Conversation(ctx)
	if err != nil {
		return err
	}

	if len(messages) == 0 {
		fmt.Println("No messages.")
		return nil
	}

	fmt.Println("\n✉  Messages")
	fmt.Println(strings.Repeat("─", 72))
	for _, msg := range messages {
		from := "you"
		if msg.FromAdmin {
			from = "admin"
		}
		fmt.Printf("  %-6s  %s  %s\n", from, msg.CreatedAt.Format("Jan 2 15:04"), msg.Content)
	}
	fmt.Println()
	return nil
}

func runInboxSend(cmd *cobra.Command, args []string) error {
	client, sessions, err := newClient()
	if err != nil {
		return err
	}
	if !sessions.LoggedIn() {
		return fmt.Errorf("not logged in; run: confide auth login")
	}

	ctx, cancel := requestContext()
	defer cancel()
	if err := client.SendMessage(ctx, strings.Join(args, " ")); err != nil {
		return err
	}

	fmt.Println("✅ Message sent")
	return nil
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session and entitlements",
	RunE:  runWhoami,
}

func runWhoami(cmd *cobra.Command, args []string) error {
	client, sessions, err := newClient()
	if err != nil {
		return err
	}
	if !sessions.LoggedIn() {
		fmt.Println("Not logged in. Run: confide auth login")
		return nil
	}

	ctx, cancel := requestContext()
	defer cancel()
	profile, err := client.Me(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("\n@%s\n", profile.Username)
	fmt.Println(strings.Repeat("─", 36))
	fmt.Printf("  credits         %d\n", profile.Credits)
	fmt.Printf("  gifts received  %d\n", profile.GiftsReceived)
	premium := "no"
	if profile.Premium {
		premium = "yes"
		if profile.PremiumUntil != nil {
			premium = "until " + profile.PremiumUntil.Format("Jan 2, 2006")
		}
	}
	fmt.Printf("  premium         %s\n", premium)
	if profile.Banned {
		fmt.Printf("  ⛔ banned        %s\n", profile.BanReason)
		if profile.BannedUntil != nil {
			fmt.Printf("  until           %s\n", profile.BannedUntil.Format("Jan 2, 2006 15:04"))
		}
	}
	if profile.IsAdmin {
		fmt.Println("  role            admin")
	}

	unread, err := client.UnreadCount(ctx)
	if err == nil && unread > 0 {
		fmt.Printf("  ✉ unread        %d\n", unread)
	}
	fmt.Println()
	return nil
}
