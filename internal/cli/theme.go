package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/confideapp/confide/internal/kv"
	"github.com/confideapp/confide/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage the color theme",
	Long: `Manage the color theme. Beyond the light/dark baselines, themes unlock
as your confessions receive gifts.`,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List themes and their unlock status",
	RunE:  runThemeList,
}

var themeSetCmd = &cobra.Command{
	Use:   "set [theme-id]",
	Short: "Switch to a theme",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemeSet,
}

var themeAutoCmd = &cobra.Command{
	Use:   "auto [on|off]",
	Short: "Follow the terminal's light/dark preference",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemeAuto,
}

func init() {
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeSetCmd)
	themeCmd.AddCommand(themeAutoCmd)
}

// newResolver restores the persisted theme selection and, when a session
// exists, refreshes the unlocked set from a live profile snapshot.
func newResolver() (*theme.Resolver, error) {
	statePath, err := kv.DefaultStatePath()
	if err != nil {
		return nil, err
	}
	store := kv.NewFileStore(statePath)
	resolver := theme.NewResolver(theme.Options{Store: store})

	client, sessions, err := newClient()
	if err != nil {
		return nil, err
	}
	if sessions.LoggedIn() {
		ctx, cancel := requestContext()
		defer cancel()
		if profile, err := client.Me(ctx); err == nil {
			resolver.SetGiftCount(profile.GiftsReceived)
		}
	}
	return resolver, nil
}

func runThemeList(cmd *cobra.Command, args []string) error {
	resolver, err := newResolver()
	if err != nil {
		return err
	}

	activeID := resolver.Active().ID
	fmt.Println("\n🎨 Themes")
	fmt.Println(strings.Repeat("─", 48))
	for _, def := range theme.All() {
		marker := "  "
		if def.ID == activeID {
			marker = "❯ "
		}
		status := "unlocked"
		if !resolver.IsUnlocked(def.ID) {
			status = fmt.Sprintf("locked (%d gifts)", def.Threshold)
		}
		fmt.Printf("%s%-14s  %-16s  %s\n", marker, def.ID, def.Name, status)
	}
	if resolver.AutoMode() {
		fmt.Println("\n  Auto mode is on; the baseline follows your terminal.")
	}
	fmt.Println()
	return nil
}

func runThemeSet(cmd *cobra.Command, args []string) error {
	resolver, err := newResolver()
	if err != nil {
		return err
	}

	if err := resolver.Switch(args[0]); err != nil {
		return err
	}
	fmt.Printf("✅ Theme set to %s\n", resolver.Active().Name)
	return nil
}

func runThemeAuto(cmd *cobra.Command, args []string) error {
	var on bool
	switch args[0] {
	case "on":
		on = true
	case "off":
		on = false
	default:
		return fmt.Errorf("expected on or off, got %q", args[0])
	}

	resolver, err := newResolver()
	if err != nil {
		return err
	}
	resolver.SetAuto(on)

	if on {
		fmt.Printf("✅ Auto mode on (%s)\n", resolver.Active().Name)
	} else {
		fmt.Printf("✅ Auto mode off, staying on %s\n", resolver.Active().Name)
	}
	return nil
}
