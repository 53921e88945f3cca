package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imyousuf/CodeMetrics/internal/cache"
	"github.com/imyousuf/CodeMetrics/internal/config"
)

func newCacheCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the result cache",
		Long: `Inspect or clear the on-disk result cache used by 'analyze --cache-dir'.

The directory defaults to cache.dir from the configuration.

Subcommands:
  stats     Print the number of cached results
  clear     Remove every cached result`,
	}
	cmd.PersistentFlags().StringVar(&dir, "dir", "", "cache directory (default: cache.dir)")

	openStore := func() (*cache.Store, error) {
		if dir == "" {
			cfg, err := config.Load()
			if err != nil {
				return nil, fmt.Errorf("load config: %w", err)
			}
			dir = cfg.Cache.Dir
		}
		if dir == "" {
			return nil, errors.New("no cache directory configured (set cache.dir or pass --dir)")
		}
		return cache.Open(dir)
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Print the number of cached results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			n, err := store.Len()
			if err != nil {
				return fmt.Errorf("count cache entries: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d cached results\n", dir, n)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove every cached result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Purge(); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %s\n", dir)
			return nil
		},
	})

	return cmd
}
