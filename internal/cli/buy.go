package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/confideapp/confide/internal/checkout"
	"github.com/confideapp/confide/internal/config"
	"github.com/confideapp/confide/internal/model"
)

var buyCmd = &cobra.Command{
	Use:   "buy",
	Short: "Buy credits, premium, or lift a ban",
	Long: `Buy through the hosted checkout page. The page opens in your browser;
the purchase completes here once the payment is verified by the server.`,
}

var buyCreditsCmd = &cobra.Command{
	Use:   "credits [package-id]",
	Short: "Buy a credit package",
	Long: `Buy a credit package. Run without arguments to list the packages.

Examples:
  confide buy credits
  confide buy credits starter`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuyCredits,
}

var buyPremiumCmd = &cobra.Command{
	Use:   "premium",
	Short: "Buy a premium subscription",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPurchase(model.IntentSubscription, "")
	},
}

var buyUnbanCmd = &cobra.Command{
	Use:   "unban [ban-id]",
	Short: "Pay the unban fee for an active ban",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPurchase(model.IntentUnban, args[0])
	},
}

func init() {
	buyCmd.AddCommand(buyCreditsCmd)
	buyCmd.AddCommand(buyPremiumCmd)
	buyCmd.AddCommand(buyUnbanCmd)
}

func runBuyCredits(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext()
		defer cancel()
		packages, err := client.CreditPackages(ctx)
		if err != nil {
			return err
		}

		fmt.Println("\n💳 Credit packages")
		fmt.Println(strings.Repeat("─", 48))
		for _, pkg := range packages {
			fmt.Printf("  %-10s  %5d credits  %s\n", pkg.ID, pkg.Credits, pkg.Label)
		}
		fmt.Println("\nBuy with: confide buy credits <package-id>")
		return nil
	}
	return runPurchase(model.IntentCredits, args[0])
}

func runPurchase(intent, reference string) error {
	client, sessions, err := newClient()
	if err != nil {
		return err
	}
	if !sessions.LoggedIn() {
		return fmt.Errorf("not logged in; run: confide auth login")
	}

	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	listenAddr := "127.0.0.1:0"
	if cfg.CheckoutPort > 0 {
		listenAddr = fmt.Sprintf("127.0.0.1:%d", cfg.CheckoutPort)
	}

	bridge := checkout.NewBridge(checkout.Options{
		Biller:     client,
		ListenAddr: listenAddr,
		OnVerified: func() {
			// Entitlements changed server-side; show the fresh snapshot.
			ctx, cancel := requestContext()
			defer cancel()
			if profile, err := client.Me(ctx); err == nil {
				fmt.Printf("💰 Balance: %d credits", profile.Credits)
				if profile.Premium {
					fmt.Print("  ★ premium")
				}
				fmt.Println()
			}
		},
	})

	fmt.Println("🌐 Opening checkout in your browser...")
	result, err := bridge.Purchase(context.Background(), intent, reference)
	if err != nil {
		return err
	}

	switch result.Outcome {
	case checkout.OutcomeVerified:
		fmt.Println("✅ Payment verified!")
	case checkout.OutcomeFailed:
		fmt.Printf("❌ Payment failed: %v\n", result.Err)
	default:
		fmt.Println("Checkout closed without paying. Nothing was charged.")
	}
	return nil
}
