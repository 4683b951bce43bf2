package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage authentication",
	Long:  `Manage the session with the Confide server.`,
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to Confide",
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout and discard the local session",
	RunE:  runLogout,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new anonymous account",
	RunE:  runRegister,
}

var redeemCmd = &cobra.Command{
	Use:   "redeem [code]",
	Short: "Redeem an invite code for a session",
	Args:  cobra.ExactArgs(1),
	RunE:  runRedeem,
}

func init() {
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(registerCmd)
	authCmd.AddCommand(redeemCmd)
}

func promptLine(label string) string {
	reader := bufio.NewReader(os.Stdin)
	fmt.Print(label)
	value, _ := reader.ReadString('\n')
	return strings.TrimSpace(value)
}

func promptPassword(label string) string {
	fmt.Print(label)
	passwordBytes, _ := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	return string(passwordBytes)
}

func runLogin(cmd *cobra.Command, args []string) error {
	client, sessions, err := newClient()
	if err != nil {
		return err
	}

	username := promptLine("Username: ")
	password := promptPassword("Password: ")

	fmt.Println("🔄 Logging in...")
	ctx, cancel := requestContext()
	defer cancel()
	creds, err := client.Login(ctx, username, password)
	if err != nil {
		return err
	}
	if err := sessions.SetToken(creds.Token); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	fmt.Printf("✅ Logged in as @%s (%d credits)\n", creds.Profile.Username, creds.Profile.Credits)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	sessions, err := newSessionStore()
	if err != nil {
		return err
	}

	if !sessions.LoggedIn() {
		fmt.Println("Not logged in.")
		return nil
	}

	if err := sessions.ClearToken(); err != nil {
		return err
	}

	fmt.Println("✅ Logged out successfully.")
	return nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	client, sessions, err := newClient()
	if err != nil {
		return err
	}

	username := promptLine("Username: ")
	password := promptPassword("Password: ")
	confirm := promptPassword("Confirm Password: ")

	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	fmt.Println("🔄 Creating account...")
	ctx, cancel := requestContext()
	defer cancel()
	creds, err := client.Register(ctx, username, password)
	if err != nil {
		return err
	}
	if err := sessions.SetToken(creds.Token); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	fmt.Printf("✅ Account created. Welcome, @%s!\n", creds.Profile.Username)
	return nil
}

func runRedeem(cmd *cobra.Command, args []string) error {
	client, sessions, err := newClient()
	if err != nil {
		return err
	}

	fmt.Println("🔄 Redeeming code...")
	ctx, cancel := requestContext()
	defer cancel()
	creds, err := client.RedeemCode(ctx, args[0])
	if err != nil {
		return err
	}
	if err := sessions.SetToken(creds.Token); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	fmt.Printf("✅ Logged in as @%s\n", creds.Profile.Username)
	return nil
}
