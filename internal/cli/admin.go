package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Moderation commands",
	Long:  `Moderation commands. These require an admin session; the server rejects everyone else.`,
}

var adminUsersCmd = &cobra.Command{
	Use:   "users [query]",
	Short: "List or search users",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAdminUsers,
}

var adminBanCmd = &cobra.Command{
	Use:   "ban [user-id]",
	Short: "Ban a user",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminBan,
}

var adminUnbanCmd = &cobra.Command{
	Use:   "unban [user-id]",
	Short: "Lift a user's ban",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext()
		defer cancel()
		if err := client.AdminUnban(ctx, args[0]); err != nil {
			return err
		}
		fmt.Println("✅ Ban lifted")
		return nil
	},
}

var adminRemoveCmd = &cobra.Command{
	Use:   "remove [confession-id]",
	Short: "Remove a confession",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext()
		defer cancel()
		if err := client.AdminDeleteConfession(ctx, args[0]); err != nil {
			return err
		}
		fmt.Println("🗑  Confession removed")
		return nil
	},
}

var adminAnalyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show the analytics snapshot",
	RunE:  runAdminAnalytics,
}

var adminBroadcastCmd = &cobra.Command{
	Use:   "broadcast [content]",
	Short: "Message every user",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext()
		defer cancel()
		if err := client.AdminBroadcast(ctx, strings.Join(args, " ")); err != nil {
			return err
		}
		fmt.Println("📣 Broadcast sent")
		return nil
	},
}

var adminMessageCmd = &cobra.Command{
	Use:   "message [user-id] [content]",
	Short: "Message one user",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext()
		defer cancel()
		if err := client.AdminReply(ctx, args[0], strings.Join(args[1:], " ")); err != nil {
			return err
		}
		fmt.Println("✅ Message sent")
		return nil
	},
}

var (
	banDuration string
	banReason   string
)

func init() {
	adminBanCmd.Flags().StringVarP(&banDuration, "duration", "d", "day", "Ban duration (day, week, permanent)")
	adminBanCmd.Flags().StringVarP(&banReason, "reason", "r", "", "Ban reason shown to the user")

	adminCmd.AddCommand(adminUsersCmd)
	adminCmd.AddCommand(adminBanCmd)
	adminCmd.AddCommand(adminUnbanCmd)
	adminCmd.AddCommand(adminRemoveCmd)
	adminCmd.AddCommand(adminAnalyticsCmd)
	adminCmd.AddCommand(adminBroadcastCmd)
	adminCmd.AddCommand(adminMessageCmd)
}

func runAdminUsers(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	client, _, err := newClient()
	if err != nil {
		return err
	}
	ctx, cancel := requestContext()
	defer cancel()
	users, err := client.AdminUsers(ctx, query)
	if err != nil {
		return err
	}

	if len(users) == 0 {
		fmt.Println("No users found.")
		return nil
	}

	fmt.Println("\n👥 Users")
	fmt.Println(strings.Repeat("─", 72))
	for _, u := range users {
		flag := ""
		if u.Banned {
			flag = " ⛔"
		}
		fmt.Printf("  %-10s  @%-24s  %4d posts  %3d reports%s\n",
			u.ID, u.Username, u.Confessions, u.Reports, flag)
	}
	fmt.Println()
	return nil
}

func runAdminBan(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}
	ctx, cancel := requestContext()
	defer cancel()
	if err := client.AdminBan(ctx, args[0], banDuration, banReason); err != nil {
		return err
	}
	fmt.Printf("⛔ User banned (%s)\n", banDuration)
	return nil
}

func runAdminAnalytics(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}
	ctx, cancel := requestContext()
	defer cancel()
	analytics, err := client.AdminAnalytics(ctx)
	if err != nil {
		return err
	}

	fmt.Println("\n📈 Analytics")
	fmt.Println(strings.Repeat("─", 36))
	fmt.Printf("  users            %d\n", analytics.Users)
	fmt.Printf("  confessions      %d\n", analytics.Confessions)
	fmt.Printf("  replies          %d\n", analytics.Replies)
	fmt.Printf("  gifts sent       %d\n", analytics.GiftsSent)
	fmt.Printf("  active today     %d\n", analytics.ActiveToday)
	fmt.Printf("  pending reports  %d\n", analytics.PendingReports)
	fmt.Println()
	return nil
}
