package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/electa/internal/wire"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the ledger and become its administrator",
		Long: `Initialize the election ledger. The caller (--as, ELECTA_ACTOR or the
config actor) becomes the administrator. Fails if the ledger already has one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.AdminAdapter().Init(NewContext())
		},
	}
}

// AdminCmd returns the admin command with all subcommands attached.
func AdminCmd() *cobra.Command {
	adminCmd := &cobra.Command{
		Use:   "admin",
		Short: "Show or transfer ledger administration",
	}

	adminCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current administrator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.AdminAdapter().Show(NewContext())
		},
	})
	adminCmd.AddCommand(&cobra.Command{
		Use:   "transfer <identity>",
		Short: "Hand administration to another identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.AdminAdapter().Transfer(NewContext(), args[0])
		},
	})

	return adminCmd
}
