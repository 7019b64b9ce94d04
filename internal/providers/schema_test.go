package providers

import "testing"

func TestValidatePayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{
			name:    "typical payload",
			payload: `{"subjects": [{"code": "CS 121", "name": "Discrete Structures 1", "lecture_units": 3, "lab_units": 0, "total_units": 3, "year_level": "1st Year", "term": "2nd Semester"}]}`,
		},
		{
			name:    "string units allowed",
			payload: `{"subjects": [{"code": "CS 121", "lecture_units": "3"}]}`,
		},
		{
			name:    "null fields allowed",
			payload: `{"subjects": [{"code": null, "name": null, "total_units": null}]}`,
		},
		{
			name:    "empty subjects array",
			payload: `{"subjects": []}`,
		},
		{
			name:    "missing subjects key",
			payload: `{"rows": []}`,
			wantErr: true,
		},
		{
			name:    "subjects not an array",
			payload: `{"subjects": "CS 121"}`,
			wantErr: true,
		},
		{
			name:    "rows not objects",
			payload: `{"subjects": ["CS 121", "CS 122"]}`,
			wantErr: true,
		},
		{
			name:    "not JSON",
			payload: `subjects`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePayload([]byte(tt.payload))
			if tt.wantErr && err == nil {
				t.Error("Expected validation to fail")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected payload to validate: %v", err)
			}
		})
	}
}
