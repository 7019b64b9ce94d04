package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/zense17/classyncserver/internal/catalog"
	"github.com/zense17/classyncserver/internal/extraction"
	"github.com/zense17/classyncserver/internal/providers"
)

func newExtractCmd() *cobra.Command {
	var kind string
	var provider string
	var model string

	cmd := &cobra.Command{
		Use:   "extract [image files]",
		Short: "Extract subjects from local document images",
		Long: `Runs the extraction pipeline over one or two local document images and
prints the reconciled report as JSON. Two images are treated as the two
halves of a full curriculum checklist.`,
		Example: `  # Extract a full two-part checklist
  classync extract front.jpg back.jpg

  # Extract a certificate of registration with a specific provider
  classync extract --kind registration --provider openai cor.png`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			images := make([]extraction.ImageInput, 0, len(args))
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("failed to read image %s: %w", path, err)
				}
				images = append(images, extraction.ImageInput{
					Filename: path,
					MimeType: http.DetectContentType(data),
					Data:     data,
				})
			}

			service := extraction.NewService(catalog.Default())
			report, err := service.Extract(cmd.Context(), extraction.Request{
				Kind:     providers.DocumentKind(kind),
				Provider: provider,
				Model:    model,
				Images:   images,
			})
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(report)
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "checklist", "Document kind: checklist, registration, grades or timetable")
	cmd.Flags().StringVar(&provider, "provider", "", "Recognition provider: gemini, openai or ollama")
	cmd.Flags().StringVarP(&model, "model", "m", "", "Model to use for the selected provider")

	return cmd
}
