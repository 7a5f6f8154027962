package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the electa command tree. Every command except config
// bootstraps configuration and the ledger store before it runs.
func NewRootCmd(version string) *cobra.Command {
	flags := &GlobalFlags{}

	rootCmd := &cobra.Command{
		Use:     "electa",
		Short:   "electa - election administration ledger",
		Version: version,
		Long: `electa administers elections: persons are registered, postulated as voters
or candidates, approved by the administrator, and vote while an election is
open. Reports on closed elections are available to granted identities.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipsBootstrap(cmd) {
				return nil
			}
			return Bootstrap(flags, cmd.ErrOrStderr())
		},
	}
	flags.Register(rootCmd)

	rootCmd.AddCommand(InitCmd())
	rootCmd.AddCommand(AdminCmd())
	rootCmd.AddCommand(PersonCmd())
	rootCmd.AddCommand(ElectionCmd())

	// Participation
	rootCmd.AddCommand(PostulateCmd())
	rootCmd.AddCommand(ApproveCmd())
	rootCmd.AddCommand(VoteCmd())

	rootCmd.AddCommand(ReportCmd())
	rootCmd.AddCommand(LogCmd())
	rootCmd.AddCommand(ConfigCmd())

	return rootCmd
}

// skipsBootstrap reports whether cmd is cobra's help or completion machinery,
// which must work without a reachable ledger store.
func skipsBootstrap(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return true
		}
	}
	return false
}
