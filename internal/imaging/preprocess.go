package imaging

// Preprocessor enhances an image before recognition. Enhancement itself is an
// external concern; the pipeline only requires this seam.
type Preprocessor interface {
	Preprocess(imageData []byte) ([]byte, error)
}

// NoopPreprocessor passes images through untouched.
type NoopPreprocessor struct{}

func (NoopPreprocessor) Preprocess(imageData []byte) ([]byte, error) {
	return imageData, nil
}
