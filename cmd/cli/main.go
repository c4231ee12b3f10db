package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/marcelsud/booklend/config"
	"github.com/marcelsud/booklend/internal/logger"
	"github.com/marcelsud/booklend/internal/menu"
	"github.com/marcelsud/booklend/internal/storage"
	"github.com/marcelsud/booklend/library"
	"github.com/marcelsud/booklend/seed"
	"github.com/spf13/cobra"
)

/* booklend - interactive library menu
 * Config comes from .env and the environment; flags override it.
 * A store that cannot be opened or read ends the program with exit code 1.
 */

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		debug       bool
		store       string
		membersFile string
		seedFile    string
	)

	cmd := &cobra.Command{
		Use:          "booklend",
		Short:        "Library lending menu",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.GetConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("store") {
				cfg.StoreDriver = store
			}
			if cmd.Flags().Changed("members-file") {
				cfg.MembersFile = membersFile
			}
			if cmd.Flags().Changed("seed") {
				cfg.SeedFile = seedFile
			}

			// the menu owns stdout, logs stay quiet on stderr unless asked for
			level := "warn"
			if debug {
				level = "debug"
			}
			log, err := logger.New(logger.Config{Service: "booklend-cli", Level: level, Out: os.Stderr})
			if err != nil {
				return err
			}
			log = log.With().Str("session_id", uuid.NewString()).Logger()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			books, err := seed.Books(cfg.SeedFile)
			if err != nil {
				return err
			}
			repo, err := storage.Open(ctx, cfg, log)
			if err != nil {
				log.Error().Err(err).Msg("opening member store")
				return err
			}
			defer repo.Close(context.Background())

			catalog, err := library.NewService(ctx, repo, books, library.WithLogger(log))
			if err != nil {
				log.Error().Err(err).Msg("starting catalog")
				return err
			}
			err = menu.Run(ctx, catalog, cmd.InOrStdin(), cmd.OutOrStdout())
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging on stderr")
	cmd.Flags().StringVar(&store, "store", config.DriverFile, "member store: file, postgres, sqlite or redis")
	cmd.Flags().StringVar(&membersFile, "members-file", "members.txt", "members file for the file store")
	cmd.Flags().StringVar(&seedFile, "seed", "", "YAML catalog seed (default: built-in catalog)")
	return cmd
}
