package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/electa/internal/config"
)

// ConfigCmd returns the config command with all subcommands attached.
// Config commands work on .electa/config.json and never open the ledger.
func ConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show or edit .electa/config.json in the working directory",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration (file plus environment)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
			cfg, err := config.Load(cwd)
			if err != nil {
				return err
			}

			shown := *cfg
			if shown.PostgresDSN != "" {
				shown.PostgresDSN = "(set)"
			}
			data, err := json.MarshalIndent(shown, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "set-actor <identity>",
		Short: "Set the default caller identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			identity := strings.TrimSpace(args[0])
			if identity == "" {
				return fmt.Errorf("identity must not be blank")
			}

			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
			cfg, err := config.LoadConfig(cwd)
			if err != nil {
				cfg = config.Default()
			}
			cfg.Actor = identity
			if err := config.SaveConfig(cwd, cfg); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Default actor set to %s\n", identity)
			return nil
		},
	})

	return configCmd
}
