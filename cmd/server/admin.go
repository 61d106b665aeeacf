package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/phrazzld/parky-api/internal/service"
	"github.com/spf13/cobra"
)

func newAdminCmd() *cobra.Command {
	admin := &cobra.Command{
		Use:   "admin",
		Short: "Manage administrator accounts",
	}

	var username, password string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a user with the Admin role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAdminCreate(cmd.Context(), cmd.OutOrStdout(), username, password)
		},
	}
	create.Flags().StringVar(&username, "username", "", "admin username")
	create.Flags().StringVar(&password, "password", "", "admin password (8 to 72 characters)")
	_ = create.MarkFlagRequired("username")
	_ = create.MarkFlagRequired("password")

	admin.AddCommand(create)
	return admin
}

func runAdminCreate(ctx context.Context, out io.Writer, username, password string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}
	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, logger, db, postgresStores(db, logger))
	if err != nil {
		_ = db.Close()
		return err
	}
	defer app.cleanup()

	return createAdmin(ctx, app.userService, out, username, password)
}

// createAdmin creates the account and reports it on out.
func createAdmin(ctx context.Context, users service.UserService, out io.Writer, username, password string) error {
	if username == "" || password == "" {
		return errors.New("both --username and --password are required")
	}

	user, err := users.CreateAdmin(ctx, username, password)
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	_, err = fmt.Fprintf(out, "created admin user %q (id %d)\n", user.Username, user.ID)
	return err
}
