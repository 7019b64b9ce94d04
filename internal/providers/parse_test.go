package providers

import (
	"strings"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "bare object",
			input: `{"subjects": []}`,
			want:  `{"subjects": []}`,
		},
		{
			name:  "surrounding whitespace",
			input: "\n  {\"subjects\": []}  \n",
			want:  `{"subjects": []}`,
		},
		{
			name:  "fenced with language tag",
			input: "```json\n{\"subjects\": []}\n```",
			want:  `{"subjects": []}`,
		},
		{
			name:  "fenced without language tag",
			input: "```\n{\"subjects\": []}\n```",
			want:  `{"subjects": []}`,
		},
		{
			name:  "prose around the object",
			input: `Here is the transcription: {"subjects": []} Let me know if you need more.`,
			want:  `{"subjects": []}`,
		},
		{
			name:    "no JSON at all",
			input:   "I cannot read this document.",
			wantErr: true,
		},
		{
			name:    "broken JSON",
			input:   `{"subjects": [`,
			wantErr: true,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractJSON failed: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("ExtractJSON = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractJSONPrefersDirectDecode(t *testing.T) {
	// A fully valid response must come back untouched even though it also
	// contains fence-like characters inside string values.
	input := `{"subjects": [{"name": "Notation ` + "```" + ` study"}]}`
	got, err := ExtractJSON(input)
	if err != nil {
		t.Fatalf("ExtractJSON failed: %v", err)
	}
	if string(got) != input {
		t.Errorf("Valid input should pass through unchanged, got %q", got)
	}
}

func TestExtractJSONErrorMessage(t *testing.T) {
	_, err := ExtractJSON("garbage")
	if err == nil || !strings.Contains(err.Error(), "JSON") {
		t.Errorf("Error should mention JSON parsing, got %v", err)
	}
}
