package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maliksh/finagent/config"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg := config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "finagent",
		Short: "FinAgent - conversational finance assistant",
		Long: `FinAgent is a conversational assistant for everyday finance questions:
stock quotes, portfolio analysis, investment returns, market news and
currency conversion. It runs fully offline on simulated market data, or
against a configured LLM provider.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("mock") {
				cfg.MockMode, _ = cmd.Flags().GetBool("mock")
			}
			if cmd.Flags().Changed("db") {
				cfg.DBPath, _ = cmd.Flags().GetString("db")
			}
			if cmd.Flags().Changed("addr") {
				cfg.HTTPAddr, _ = cmd.Flags().GetString("addr")
			}
			if cmd.Flags().Changed("debug") {
				cfg.Debug, _ = cmd.Flags().GetBool("debug")
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return fmt.Errorf("failed to create directories: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default behavior: start the interactive chat
			return runChat(cfg)
		},
	}

	rootCmd.AddCommand(newServeCmd(cfg))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd())

	rootCmd.PersistentFlags().Bool("mock", cfg.MockMode, "Use simulated market data instead of an LLM")
	rootCmd.PersistentFlags().String("db", cfg.DBPath, "SQLite file for transcript persistence (empty to disable)")
	rootCmd.PersistentFlags().String("addr", cfg.HTTPAddr, "Listen address for the web chat server")
	rootCmd.PersistentFlags().Bool("debug", cfg.Debug, "Enable debug logging")

	return rootCmd
}

// newVersionCmd creates the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("FinAgent v1.0.0")
			fmt.Println("Conversational finance assistant")
		},
	}
}

// newConfigCmd creates the config command. It operates on the persisted
// config file through the manager, not on the env-derived runtime config.
func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "Inspect and edit the persistent config file. Running instances watching the file pick up changes live.",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the persisted configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr := config.DefaultManager()
			if mgr == nil {
				return fmt.Errorf("config manager unavailable")
			}
			cfg := mgr.Get()
			showConfig(&cfg)
			fmt.Printf("\nConfig file:          %s\n", mgr.Path())
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Update one config file field by its JSON key",
		Long:  "Update a single field of the config file, e.g. `finagent config set history_limit 10` or `finagent config set mock_mode false`.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr := config.DefaultManager()
			if mgr == nil {
				return fmt.Errorf("config manager unavailable")
			}
			if err := mgr.SetKey(args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("Updated %s in %s\n", args[0], mgr.Path())
			return nil
		},
	})

	return configCmd
}

// showConfig displays the current configuration
func showConfig(cfg *config.Config) {
	fmt.Println("Current FinAgent Configuration:")
	fmt.Println("═══════════════════════════════════════")
	fmt.Printf("Project Directory:    %s\n", cfg.ProjectDir)
	fmt.Printf("Data Directory:       %s\n", cfg.DataDir)
	fmt.Println()
	fmt.Printf("LLM Provider:         %s\n", cfg.LLMProvider)
	fmt.Printf("Model:                %s\n", cfg.Model)
	fmt.Printf("Max Tokens:           %d\n", cfg.MaxTokens)
	if cfg.APIKey != "" {
		fmt.Println("API Key:              configured")
	} else {
		fmt.Println("API Key:              not configured")
	}
	fmt.Println()
	fmt.Printf("Mock Mode:            %t\n", cfg.MockMode)
	fmt.Printf("HTTP Address:         %s\n", cfg.HTTPAddr)
	fmt.Printf("DB Path:              %s\n", cfg.DBPath)
	fmt.Printf("History Limit:        %d\n", cfg.HistoryLimit)
	fmt.Printf("Debug Mode:           %t\n", cfg.Debug)
}
