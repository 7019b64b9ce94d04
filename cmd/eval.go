package cmd

import (
	"github.com/spf13/cobra"
	"github.com/zense17/classyncserver/internal/evalcmd"
)

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Validation engine evaluation tools",
		Long: `Evaluation tools for measuring how well the reconciliation engine's
quality verdicts match reviewer-assigned labels on recorded transcriptions.`,
	}

	// Add eval subcommands
	cmd.AddCommand(evalcmd.NewRunCmd())

	return cmd
}
