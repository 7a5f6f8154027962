package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/electa/internal/wire"
)

// PersonCmd returns the person command with all subcommands attached.
func PersonCmd() *cobra.Command {
	personCmd := &cobra.Command{
		Use:   "person",
		Short: "Register and inspect persons",
	}

	personCmd.AddCommand(&cobra.Command{
		Use:   "register <name> <surname> <national-id>",
		Short: "Register a person owned by the caller",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.PersonAdapter().Register(NewContext(), args[0], args[1], args[2])
		},
	})
	personCmd.AddCommand(&cobra.Command{
		Use:   "show <person-id>",
		Short: "Show a person and their participation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.PersonAdapter().Show(NewContext(), args[0])
		},
	})
	personCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List registered persons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.PersonAdapter().List(NewContext())
		},
	})

	return personCmd
}
