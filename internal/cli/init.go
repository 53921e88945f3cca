package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/imyousuf/CodeMetrics/internal/config"
)

func newInitCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a .codemetrics.yaml config file",
		Long: `Initialize CodeMetrics in the current directory by writing .codemetrics.yaml.

By default an interactive wizard asks for the output format, the metrics shown
in text reports and the discovery settings. Use --yes to write the defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}

			path := filepath.Join(cwd, config.DefaultConfigFile+"."+config.DefaultConfigType)
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}

			cfg := config.Default()
			if !yes {
				ok, err := runInteractiveInit(cmd, cwd, cfg)
				if err != nil || !ok {
					return err
				}
			}
			return writeInitConfig(cmd, cfg, path)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "write the default configuration without prompting")

	return cmd
}

func writeInitConfig(cmd *cobra.Command, cfg *config.Config, path string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := config.WriteConfig(cfg, path); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n", path)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Review the settings with 'codemetrics config'")
	fmt.Fprintln(out, "  2. Run 'codemetrics analyze' to report on this directory")
	return nil
}
