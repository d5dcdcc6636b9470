package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/library-circulation/cmd/library/circulation"
	"github.com/library-circulation/cmd/library/config"
	"github.com/library-circulation/cmd/library/inmemory"
	"github.com/library-circulation/cmd/library/menu"
	"github.com/library-circulation/cmd/library/notifications"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var today, logLevel string

	cmd := &cobra.Command{
		Use:           "library",
		Short:         "In-memory library circulation tracker",
		Long:          "Records books, members and loans for one session and computes overdue fines.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			//flags win over the environment:
			if cmd.Flags().Changed("today") {
				cfg.Today = today
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			interactive := term.IsTerminal(int(os.Stdin.Fd()))
			return run(cmd.Context(), cfg, os.Stdin, cmd.OutOrStdout(), os.Stderr, interactive)
		},
	}

	cmd.Flags().StringVar(&today, "today", "", "pin the current date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	return cmd
}

func run(ctx context.Context, cfg config.Config, in io.Reader, out, logOut io.Writer, interactive bool) error {
	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))

	clock, err := cfg.Clock()
	if err != nil {
		return err
	}

	store, err := inmemory.NewInMemoryStore()
	if err != nil {
		return fmt.Errorf("creating store: %w", err)
	}

	ntfy := notifications.NewNtfy(cfg.NotificationsEnabled, cfg.NotificationsURL, &http.Client{})
	service := circulation.NewService(store, ntfy, circulation.ServiceConfig{
		Policy:               cfg.Policy(),
		NotificationsTimeout: cfg.NotificationsTimeout,
		Clock:                clock,
		Logger:               logger,
	})

	logger.Debug("library circulation started", "policy", cfg.Policy(), "today", cfg.Today, "notifications", cfg.NotificationsEnabled)

	m := menu.New(service, in, out, menu.Options{Interactive: interactive})
	if err := m.Run(ctx); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}
