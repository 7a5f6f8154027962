package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/electa/internal/ports/primary"
	"github.com/example/electa/internal/wire"
)

// LogCmd returns the log command
func LogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the audit trail (administrator only)",
		Long:  "Show audit trail entries, newest first (default 50).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entityType, _ := cmd.Flags().GetString("entity-type")
			entityID, _ := cmd.Flags().GetString("entity-id")
			actor, _ := cmd.Flags().GetString("actor")
			limit, _ := cmd.Flags().GetInt("limit")

			return wire.AuditAdapter().Log(NewContext(), primary.AuditFilters{
				EntityType: entityType,
				EntityID:   entityID,
				Actor:      actor,
				Limit:      limit,
			})
		},
	}

	cmd.Flags().String("entity-type", "", "Filter by entity type (ledger, person, election, report_request, report_grant)")
	cmd.Flags().String("entity-id", "", "Filter by entity ID")
	cmd.Flags().String("actor", "", "Filter by actor identity")
	cmd.Flags().IntP("limit", "n", 50, "Number of entries to show")

	return cmd
}
