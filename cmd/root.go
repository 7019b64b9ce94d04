package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classync",
		Short: "Academic document extraction with LLM-powered transcription",
		Long: `ClassSync transcribes photographed academic documents (curriculum
checklists, certificates of registration, grade reports, timetables) with a
vision-capable LLM, then reconciles the transcription against the official
curriculum catalog and classifies how trustworthy the result is.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newExtractCmd())
	cmd.AddCommand(newEvalCmd())

	return cmd
}
