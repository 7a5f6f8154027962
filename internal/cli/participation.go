package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/electa/internal/wire"
)

// PostulateCmd returns the postulate command
func PostulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "postulate <person-id> <election-id>",
		Short: "Nominate one of your persons as voter or candidate",
		Long: `Nominate a person you registered. The nomination stays pending until the
administrator approves it. Use --candidate to run for office.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			candidate, _ := cmd.Flags().GetBool("candidate")
			return wire.NominationAdapter().Postulate(NewContext(), args[0], args[1], candidate)
		},
	}
	cmd.Flags().Bool("candidate", false, "Postulate as candidate instead of voter")
	return cmd
}

// ApproveCmd returns the approve command
func ApproveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approve <person-id> <election-id>",
		Short: "Approve or reject a pending nomination",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reject, _ := cmd.Flags().GetBool("reject")
			return wire.NominationAdapter().Approve(NewContext(), args[0], args[1], reject)
		},
	}
	cmd.Flags().Bool("reject", false, "Reject the nomination instead of approving it")
	return cmd
}

// VoteCmd returns the vote command
func VoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vote <person-id> <election-id> <candidate-position>",
		Short: "Cast a ballot for the candidate at a 1-indexed position",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := parsePosition(args[2])
			if err != nil {
				return err
			}
			return wire.NominationAdapter().Vote(NewContext(), args[0], args[1], position)
		},
	}
}

func parsePosition(raw string) (int, error) {
	position, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("position must be an integer, got %q", raw)
	}
	return position, nil
}
