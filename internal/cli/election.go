package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/electa/internal/wire"
)

// ElectionCmd returns the election command with all subcommands attached.
func ElectionCmd() *cobra.Command {
	electionCmd := &cobra.Command{
		Use:   "election",
		Short: "Manage elections",
		Long:  "Create elections and move them through created, open and closed.",
	}

	createCmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create an election",
		Long: `Create an election in the created state.
Dates use YYYY-MM-DD[ HH:MM[:SS]] and are interpreted as UTC.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, _ := cmd.Flags().GetString("start")
			end, _ := cmd.Flags().GetString("end")
			return wire.ElectionAdapter().Create(NewContext(), args[0], start, end)
		},
	}
	createCmd.Flags().String("start", "", "Voting window start (required)")
	createCmd.Flags().String("end", "", "Voting window end (required)")
	_ = createCmd.MarkFlagRequired("start")
	_ = createCmd.MarkFlagRequired("end")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List elections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, _ := cmd.Flags().GetString("status")
			return wire.ElectionAdapter().List(NewContext(), status)
		},
	}
	listCmd.Flags().String("status", "", "Filter by status (created, open, closed)")

	electionCmd.AddCommand(createCmd)
	electionCmd.AddCommand(&cobra.Command{
		Use:   "start <election-id>",
		Short: "Open an election for voting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ElectionAdapter().Start(NewContext(), args[0])
		},
	})
	electionCmd.AddCommand(&cobra.Command{
		Use:   "finalize <election-id>",
		Short: "Close an open election",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ElectionAdapter().Finalize(NewContext(), args[0])
		},
	})
	electionCmd.AddCommand(&cobra.Command{
		Use:   "delete <election-id>",
		Short: "Delete an election",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ElectionAdapter().Delete(NewContext(), args[0])
		},
	})
	electionCmd.AddCommand(&cobra.Command{
		Use:   "show <election-id>",
		Short: "Show an election and its participants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ElectionAdapter().Show(NewContext(), args[0])
		},
	})
	electionCmd.AddCommand(listCmd)

	return electionCmd
}
