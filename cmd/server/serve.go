package main

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var inMemory bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Starts the API server on the configured port. With --in-memory the server keeps
all data in process memory and needs no database; everything is lost on exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), inMemory)
		},
	}
	cmd.Flags().BoolVar(&inMemory, "in-memory", false, "use in-process stores instead of PostgreSQL")

	return cmd
}

func runServe(ctx context.Context, inMemory bool) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}
	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	var (
		db     *sqlx.DB
		stores storeSet
	)
	if inMemory {
		logger.Warn("Using in-memory stores; data will not survive a restart")
		stores = memoryStores()
	} else {
		db, err = setupAppDatabase(ctx, cfg, logger)
		if err != nil {
			return err
		}
		stores = postgresStores(db, logger)
	}

	app, err := newApplication(cfg, logger, db, stores)
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return err
	}

	return app.Run(ctx)
}
