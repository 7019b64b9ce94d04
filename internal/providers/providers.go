package providers

import (
	"context"
)

// Config represents one recognition request to a vision LLM provider
type Config struct {
	Model       string
	Temperature float64
	Prompt      string
	ImageData   []byte
	MimeType    string
}

// Provider defines the interface for a vision LLM provider
type Provider interface {
	RecognizeDocument(ctx context.Context, config Config) (string, error)
}
