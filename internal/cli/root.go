package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/confideapp/confide/internal/api"
	"github.com/confideapp/confide/internal/config"
	"github.com/confideapp/confide/internal/kv"
	"github.com/confideapp/confide/internal/logger"
	"github.com/confideapp/confide/internal/session"
	"github.com/confideapp/confide/internal/theme"
	"github.com/confideapp/confide/internal/tui"
)

var (
	logLevel   string
	logFile    string
	logConsole bool
)

var rootCmd = &cobra.Command{
	Use:   "confide",
	Short: "Confide - Anonymous confessions from your terminal",
	Long: `Confide is a terminal client for the Confide anonymous confession
network. Browse the feed, confess, react and reply without leaving the shell.

Run 'confide' without arguments to launch the interactive TUI.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load config from file (or defaults if not exists)
		cfg, err := config.Load()
		if err != nil {
			logger.Warn("Failed to load config, using defaults", logger.F("error", err))
			cfg = config.DefaultConfig()
		}

		// Override with CLI flags if provided
		configChanged := false
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
			configChanged = true
		}
		if cmd.Flags().Changed("log-file") {
			cfg.LogFile = logFile
			configChanged = true
		}
		if cmd.Flags().Changed("log-console") {
			cfg.LogConsole = logConsole
			configChanged = true
		}

		// Save config if changed via CLI flags
		if configChanged {
			if err := cfg.Save(); err != nil {
				logger.Warn("Failed to save config", logger.F("error", err))
			}
		}

		logConfig := logger.Config{
			Level:    cfg.LogLevel,
			FilePath: cfg.LogFile,
			MaxSize:  10 * 1024 * 1024, // 10MB
			Console:  cfg.LogConsole,
		}

		if err := logger.Init(logConfig); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		logger.Info("Confide started", logger.F("command", cmd.Name()))
		return nil
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			cfg = config.DefaultConfig()
		}

		statePath, err := kv.DefaultStatePath()
		if err != nil {
			return err
		}
		store := kv.NewFileStore(statePath)
		sessions := session.NewStore(store)

		client := api.NewClient(api.Options{
			BaseURL: cfg.ServerURL,
			Tokens:  sessions,
		})

		resolver := theme.NewResolver(theme.Options{Store: store})

		logger.Info("Launching TUI")
		m := tui.NewModel(tui.Options{
			Client:       client,
			Sessions:     sessions,
			Resolver:     resolver,
			PollInterval: time.Duration(cfg.PollSeconds) * time.Second,
		})
		p := tea.NewProgram(m, tea.WithAltScreen())

		if _, err := p.Run(); err != nil {
			m.Close()
			logger.Error("TUI error", logger.F("error", err))
			return fmt.Errorf("failed to run TUI: %w", err)
		}
		m.Close()

		logger.Info("TUI exited normally")
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Info("Confide exiting", logger.F("command", cmd.Name()))
		logger.Close()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add logging flags
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().BoolVar(&logConsole, "log-console", false, "Enable console logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Path to log file")

	// Add subcommands
	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(reactCmd)
	rootCmd.AddCommand(replyCmd)
	rootCmd.AddCommand(repliesCmd)
	rootCmd.AddCommand(giftCmd)
	rootCmd.AddCommand(pollCmd)
	rootCmd.AddCommand(spotlightCmd)
	rootCmd.AddCommand(boostCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(buyCmd)
	rootCmd.AddCommand(draftCmd)
	rootCmd.AddCommand(inboxCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(adminCmd)
}
