package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/mai/internal/app"
	"github.com/abhisek/mai/internal/export"
	"github.com/abhisek/mai/internal/reflection"
	"github.com/abhisek/mai/internal/screens/env"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	inv, err := loadInventory()
	if err != nil {
		return err
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	skip, _ := cmd.Flags().GetBool("no-splash")
	opts := app.Options{
		Env: env.Env{
			Inventory: inv,
			PerPage:   cfg.PerPage,
			Results:   st.ResultRepo(),
			Events:    eventRepo,
			Saver:     export.NewDirSaver(cfg.ExportDir),
			Logger:    logger,
		},
		SkipWelcome: skip,
	}

	provider, err := newProvider(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Reflections will be unavailable.")
	} else if provider != nil {
		opts.Reflector = reflection.NewService(provider, reflection.DefaultConfig())
	}

	logger.Info("starting questionnaire", "inventory", inv.Name, "questions", inv.NumQuestions())
	return app.Run(opts)
}
