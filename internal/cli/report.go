package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/electa/internal/wire"
)

// ReportCmd returns the report command with all subcommands attached.
func ReportCmd() *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Request report access and read reports of closed elections",
	}

	// Access registry
	reportCmd.AddCommand(&cobra.Command{
		Use:   "request",
		Short: "Queue yourself for report access",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ReportAdapter().Request(NewContext())
		},
	})
	reportCmd.AddCommand(&cobra.Command{
		Use:   "approve <position>",
		Short: "Grant the request at a queue position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			return wire.ReportAdapter().Approve(NewContext(), position)
		},
	})
	reportCmd.AddCommand(&cobra.Command{
		Use:   "reject <position>",
		Short: "Drop the request at a queue position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			return wire.ReportAdapter().Reject(NewContext(), position)
		},
	})
	reportCmd.AddCommand(&cobra.Command{
		Use:   "requests",
		Short: "List pending access requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ReportAdapter().Requests(NewContext())
		},
	})
	reportCmd.AddCommand(&cobra.Command{
		Use:   "grants",
		Short: "List identities with report access",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ReportAdapter().Grants(NewContext())
		},
	})
	reportCmd.AddCommand(&cobra.Command{
		Use:   "revoke <identity>",
		Short: "Revoke an identity's report access",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ReportAdapter().Revoke(NewContext(), args[0])
		},
	})

	// Reports
	reportCmd.AddCommand(&cobra.Command{
		Use:   "election <election-id>",
		Short: "Full report of a closed election",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ReportAdapter().Election(NewContext(), args[0])
		},
	})
	reportCmd.AddCommand(&cobra.Command{
		Use:   "participation <election-id>",
		Short: "Turnout of a closed election",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ReportAdapter().Participation(NewContext(), args[0])
		},
	})
	reportCmd.AddCommand(&cobra.Command{
		Use:   "results <election-id>",
		Short: "Candidates of a closed election ranked by votes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ReportAdapter().Results(NewContext(), args[0])
		},
	})

	return reportCmd
}
