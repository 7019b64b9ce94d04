package evalcmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/zense17/classyncserver/internal/catalog"
	"github.com/zense17/classyncserver/internal/dataset"
	"github.com/zense17/classyncserver/internal/extraction"
	"github.com/zense17/classyncserver/internal/models"
	"gopkg.in/yaml.v3"
)

// EvalConfig records what a run was executed against.
type EvalConfig struct {
	DatasetPath string `yaml:"datasetpath"`
	CatalogSize int    `yaml:"catalogsize"`
	Records     int    `yaml:"records"`
	Timestamp   string `yaml:"timestamp"`
}

// EvalResult is the engine's verdict for one labeled record.
type EvalResult struct {
	Identifier      string   `yaml:"identifier"`
	ExpectedTier    string   `yaml:"expectedtier"`
	ActualTier      string   `yaml:"actualtier"`
	ExpectedSuccess bool     `yaml:"expectedsuccess"`
	ActualSuccess   bool     `yaml:"actualsuccess"`
	SubjectCount    int      `yaml:"subjectcount"`
	MissingCodes    []string `yaml:"missingcodes,omitempty"`
}

// EvalSpec is the complete evaluation output document.
type EvalSpec struct {
	Config          EvalConfig   `yaml:"config"`
	TierAccuracy    float64      `yaml:"tieraccuracy"`
	SuccessAccuracy float64      `yaml:"successaccuracy"`
	Results         []EvalResult `yaml:"results"`
}

// NewRunCmd runs the validation engine over a labeled transcription dataset
// and reports how often its tier and success verdicts match the labels. No
// recognizer is involved; the dataset holds raw transcriptions.
func NewRunCmd() *cobra.Command {
	var datasetPath string
	var outputDir string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evaluate the validation engine against a labeled dataset",
		Long: `Runs hydration, per-image validation, deduplication and overall
classification over a dataset of raw recognizer transcriptions labeled with
the tier and success verdict a reviewer assigned, then reports accuracy.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := dataset.NewLoader(datasetPath).Load()
			if err != nil {
				return err
			}
			if len(records) == 0 {
				return fmt.Errorf("dataset %s contains no records", datasetPath)
			}

			cat := catalog.Default()
			rules := extraction.DefaultSectionRules()

			spec := EvalSpec{
				Config: EvalConfig{
					DatasetPath: datasetPath,
					CatalogSize: cat.Size(),
					Records:     len(records),
					Timestamp:   time.Now().Format("2006-01-02_15-04-05"),
				},
			}

			var tierHits, successHits, evaluated int
			for _, record := range records {
				if len(record.Images) == 0 || len(record.Images) > len(rules) {
					slog.Warn("Skipping record with unsupported image count", "id", record.ID, "images", len(record.Images))
					continue
				}
				evaluated++

				batches := make([][]models.Subject, 0, len(record.Images))
				validations := make([]models.ImageValidation, 0, len(record.Images))
				for i, img := range record.Images {
					hydrated := extraction.Hydrate(cat, img.ToSubjects())
					batches = append(batches, hydrated)
					validations = append(validations, extraction.ValidateSection(hydrated, rules[i], i+1))
				}

				deduped := extraction.Dedupe(batches)
				overall := extraction.ClassifyOverall(deduped, validations, cat, extraction.SummerAnchor)

				if string(overall.QualityTier) == record.ExpectedTier {
					tierHits++
				}
				if overall.Success == record.ExpectedSuccess {
					successHits++
				}
				spec.Results = append(spec.Results, EvalResult{
					Identifier:      record.ID,
					ExpectedTier:    record.ExpectedTier,
					ActualTier:      string(overall.QualityTier),
					ExpectedSuccess: record.ExpectedSuccess,
					ActualSuccess:   overall.Success,
					SubjectCount:    overall.TotalCount,
					MissingCodes:    overall.MissingCodes,
				})
			}

			if evaluated == 0 {
				return fmt.Errorf("no evaluable records in %s", datasetPath)
			}
			spec.TierAccuracy = float64(tierHits) / float64(evaluated)
			spec.SuccessAccuracy = float64(successHits) / float64(evaluated)

			outPath, err := saveSpec(outputDir, spec)
			if err != nil {
				return err
			}

			slog.Info("Evaluation complete",
				"records", evaluated,
				"tier_accuracy", spec.TierAccuracy,
				"success_accuracy", spec.SuccessAccuracy,
				"results", outPath,
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&datasetPath, "dataset", "d", "", "Path to labeled dataset (.parquet or .jsonl)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "evals", "Directory to write evaluation results to")
	_ = cmd.MarkFlagRequired("dataset")

	return cmd
}

func saveSpec(outputDir string, spec EvalSpec) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := yaml.Marshal(spec)
	if err != nil {
		return "", fmt.Errorf("failed to marshal results: %w", err)
	}

	outPath := filepath.Join(outputDir, "eval_"+spec.Config.Timestamp+".yaml")
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write results: %w", err)
	}
	return outPath, nil
}
