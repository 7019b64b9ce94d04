package extraction

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/zense17/classyncserver/internal/catalog"
	"github.com/zense17/classyncserver/internal/gemini"
	"github.com/zense17/classyncserver/internal/imaging"
	"github.com/zense17/classyncserver/internal/models"
	"github.com/zense17/classyncserver/internal/ollama"
	"github.com/zense17/classyncserver/internal/openai"
	"github.com/zense17/classyncserver/internal/providers"
)

// ImageInput is one submitted document image.
type ImageInput struct {
	Filename string
	MimeType string
	Data     []byte
}

// Request is one extraction request. Provider, Model and Kind fall back to
// environment-driven defaults when empty.
type Request struct {
	Kind     providers.DocumentKind
	Provider string
	Model    string
	Images   []ImageInput
}

// Service runs the extraction pipeline: recognition, hydration, per-image
// validation, cross-image deduplication and overall classification. It holds
// no per-request state; the catalog is the only shared structure and it is
// read-only.
type Service struct {
	Catalog      *catalog.Catalog
	Rules        []SectionRule
	Anchor       AnchorRule
	Preprocessor imaging.Preprocessor
	Timeout      time.Duration

	// ResolveProvider is swappable for tests.
	ResolveProvider func(name string) (providers.Provider, error)
}

// NewService creates an extraction service with the default section rules.
func NewService(cat *catalog.Catalog) *Service {
	return &Service{
		Catalog:         cat,
		Rules:           DefaultSectionRules(),
		Anchor:          SummerAnchor,
		Preprocessor:    imaging.NoopPreprocessor{},
		Timeout:         90 * time.Second,
		ResolveProvider: ResolveProvider,
	}
}

// ResolveProvider returns the vision provider for the given name.
func ResolveProvider(name string) (providers.Provider, error) {
	switch name {
	case "gemini":
		return gemini.New(), nil
	case "openai":
		return openai.New(), nil
	case "ollama":
		return ollama.New(), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", name)
	}
}

// DefaultModel returns the model to use for a provider when none is given.
func DefaultModel(provider string) string {
	switch provider {
	case "openai":
		if model := os.Getenv("OPENAI_MODEL"); model != "" {
			return model
		}
		return "gpt-4o"
	case "ollama":
		if model := os.Getenv("OLLAMA_MODEL"); model != "" {
			return model
		}
		return "llama3.2-vision:11b"
	default:
		if model := os.Getenv("GEMINI_MODEL"); model != "" {
			return model
		}
		return "gemini-1.5-flash"
	}
}

// Extract processes all submitted images sequentially, then merges and
// classifies the combined result. A failure on one image is absorbed into
// that image's validation; only unusable input fails the whole request.
func (s *Service) Extract(ctx context.Context, req Request) (*models.Report, error) {
	if s.Catalog == nil || s.Catalog.Size() == 0 {
		return nil, fmt.Errorf("curriculum catalog is empty")
	}
	if len(req.Images) == 0 {
		return nil, fmt.Errorf("no images submitted")
	}
	if len(req.Images) > len(s.Rules) {
		return nil, fmt.Errorf("at most %d images are supported per extraction", len(s.Rules))
	}

	kind := req.Kind
	if kind == "" {
		kind = providers.KindChecklist
	}
	if !providers.ValidKind(kind) {
		return nil, fmt.Errorf("unsupported document kind: %s", kind)
	}

	providerName := req.Provider
	if providerName == "" {
		providerName = os.Getenv("RECOGNIZER_PROVIDER")
		if providerName == "" {
			providerName = "gemini"
		}
	}
	provider, err := s.ResolveProvider(providerName)
	if err != nil {
		return nil, err
	}
	model := req.Model
	if model == "" {
		model = DefaultModel(providerName)
	}

	prompt := providers.BuildPrompt(kind)

	batches := make([][]models.Subject, 0, len(req.Images))
	validations := make([]models.ImageValidation, 0, len(req.Images))
	for i, img := range req.Images {
		section := i + 1
		slog.Info("Processing image", "section", section, "filename", img.Filename, "provider", providerName, "model", model)
		batch, validation := s.processImage(ctx, provider, model, prompt, img, section)
		batches = append(batches, batch)
		validations = append(validations, validation)
	}

	deduped := Dedupe(batches)
	overall := ClassifyOverall(deduped, validations, s.Catalog, s.Anchor)

	report := &models.Report{
		ID:           uuid.New().String(),
		Program:      s.Catalog.Program(),
		Success:      overall.Success,
		QualityTier:  overall.QualityTier,
		Subjects:     deduped,
		Images:       validations,
		Issues:       overall.Issues,
		Warnings:     overall.Warnings,
		MissingCodes: overall.MissingCodes,
		CountsByYear: overall.CountsByYear,
		CreatedAt:    time.Now(),
	}
	slog.Info("Extraction complete",
		"report_id", report.ID,
		"tier", report.QualityTier,
		"subjects", len(deduped),
		"missing", len(report.MissingCodes),
		"success", report.Success,
	)
	return report, nil
}

func (s *Service) processImage(ctx context.Context, provider providers.Provider, model, prompt string, img ImageInput, section int) ([]models.Subject, models.ImageValidation) {
	sig := imaging.Analyze(img.Data)
	if imaging.LowQuality(sig) {
		slog.Warn("Image quality is low",
			"section", section,
			"width", sig.Width,
			"height", sig.Height,
			"mean_brightness", sig.MeanBrightness,
		)
	}

	data, err := s.Preprocessor.Preprocess(img.Data)
	if err != nil {
		slog.Warn("Preprocessing failed, using original image", "section", section, "error", err)
		data = img.Data
	}

	callCtx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()
	text, err := provider.RecognizeDocument(callCtx, providers.Config{
		Model:       model,
		Temperature: 0.1,
		Prompt:      prompt,
		ImageData:   data,
		MimeType:    img.MimeType,
	})
	if err != nil {
		slog.Error("Recognition failed", "section", section, "error", err)
		return nil, failedValidation(providers.UserMessage(err))
	}

	payload, err := providers.ExtractJSON(text)
	if err != nil {
		slog.Error("Recognizer returned unparseable text", "section", section, "length", len(text))
		return nil, failedValidation(err.Error())
	}
	if err := providers.ValidatePayload(payload); err != nil {
		slog.Error("Recognizer payload failed schema validation", "section", section, "error", err)
		return nil, failedValidation(err.Error())
	}
	subjects, err := DecodeSubjects(payload)
	if err != nil {
		return nil, failedValidation(err.Error())
	}

	hydrated := Hydrate(s.Catalog, subjects)
	return hydrated, ValidateSection(hydrated, s.Rules[section-1], section)
}

func failedValidation(message string) models.ImageValidation {
	return models.ImageValidation{IsGood: false, Issues: []string{message}}
}
