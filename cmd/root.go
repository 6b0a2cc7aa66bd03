package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/mai/internal/config"
	"github.com/abhisek/mai/internal/inventory"
	"github.com/abhisek/mai/internal/llm"
	"github.com/abhisek/mai/internal/logging"
	"github.com/abhisek/mai/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mai",
	Short: "Metacognitive Awareness Inventory in the terminal",
	Long: "mai administers a true/false self-report inventory page by page, " +
		"scores it by category and exports the results.",
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Per-invocation state filled in by setup.
var (
	cfg      *config.Config
	logger   *slog.Logger
	closeLog func() error
)

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to config file (default $XDG_CONFIG_HOME/mai/config.yaml)")
	pf.String("db", "", "Path to SQLite database file (overrides MAI_DB env var)")
	pf.String("inventory", "", "Path to an inventory YAML file (default: built-in MAI)")
	pf.Int("per-page", 0, "Questions per page (0 = inventory default)")
	pf.String("export-dir", "", "Directory for downloaded score files")

	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome screen")

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(inventoryCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration, applies flag overrides and starts logging.
func setup(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	c, err := config.Load(path)
	if err != nil {
		return err
	}
	applyFlags(cmd, c)
	if err := config.Validate(c); err != nil {
		return err
	}

	l, closer, err := logging.Setup(c.Log)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	cfg, logger, closeLog = c, l, closer
	logger.Debug("command start", "command", cmd.CommandPath())
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if closeLog == nil {
		return nil
	}
	return closeLog()
}

// applyFlags overrides configuration values with explicitly set flags.
func applyFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("db") {
		c.DB, _ = flags.GetString("db")
	}
	if flags.Changed("inventory") {
		c.Inventory, _ = flags.GetString("inventory")
	}
	if flags.Changed("per-page") {
		c.PerPage, _ = flags.GetInt("per-page")
	}
	if flags.Changed("export-dir") {
		c.ExportDir, _ = flags.GetString("export-dir")
	}
}

// resolveDBPath returns the configured database path (--db, MAI_DB, config
// file) or the default XDG path.
func resolveDBPath() (string, error) {
	if cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}

func openStore() (*store.Store, error) {
	dbPath, err := resolveDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

func loadInventory() (*inventory.Inventory, error) {
	inv, err := inventory.LoadOrDefault(cfg.Inventory)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}
	return inv, nil
}

// perPage returns the effective page size for inv.
func perPage(inv *inventory.Inventory) int {
	if cfg.PerPage > 0 {
		return cfg.PerPage
	}
	return inv.PerPage
}

// newProvider builds the configured LLM provider. It returns nil without
// error when the LLM is disabled or nothing is configured.
func newProvider(ctx context.Context, events store.EventRepo) (llm.Provider, error) {
	if cfg.LLM.Disabled() {
		return nil, nil
	}
	lc, ok := llm.Config{
		Provider: cfg.LLM.Provider,
		Model:    cfg.LLM.Model,
		APIKey:   cfg.LLM.APIKey,
		BaseURL:  cfg.LLM.BaseURL,
		Timeout:  cfg.LLM.Timeout,
	}.Resolve()
	if !ok {
		return nil, nil
	}
	return llm.NewProvider(ctx, lc, events, logger)
}
