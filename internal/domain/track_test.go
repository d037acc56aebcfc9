package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestTrackNoUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected TrackNo
		wantErr  bool
	}{
		{
			name:     "string track number",
			input:    `{"track_no": "1"}`,
			expected: "1",
		},
		{
			name:     "numeric track number",
			input:    `{"track_no": 12}`,
			expected: "12",
		},
		{
			name:    "invalid track number",
			input:   `{"track_no": ["1"]}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var track Track
			err := json.Unmarshal([]byte(tt.input), &track)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, track.TrackNo)
		})
	}
}

func TestTrackNoUnmarshalYAML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected TrackNo
		wantErr  bool
	}{
		{
			name:     "quoted track number",
			input:    `track_no: "3"`,
			expected: "3",
		},
		{
			name:     "bare numeric track number",
			input:    `track_no: 3`,
			expected: "3",
		},
		{
			name:    "sequence track number",
			input:   "track_no:\n  - 3",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var track Track
			err := yaml.Unmarshal([]byte(tt.input), &track)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, track.TrackNo)
		})
	}
}

func TestTrackString(t *testing.T) {
	track := Track{
		URL:     "https://example/video",
		TrackNo: "1",
		Title:   "Song",
		Artist:  "Band",
		Album:   "Album",
		Cover:   "art.jpg",
	}

	out := track.String()

	assert.Contains(t, out, `"url": "https://example/video"`)
	assert.Contains(t, out, `"track_no": "1"`)
	assert.Contains(t, out, `"title": "Song"`)

	// Round-trips as JSON.
	var decoded Track
	assert.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, track, decoded)
}
