package domain

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// TrackNo is the track number as display text. Tracklists may carry it as a
// bare number or as a string; both decode to the textual form.
type TrackNo string

func (n *TrackNo) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*n = TrackNo(s)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("track_no must be a string or number: %w", err)
	}
	*n = TrackNo(num.String())
	return nil
}

func (n *TrackNo) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("track_no must be a scalar, got %v", node.Tag)
	}
	*n = TrackNo(node.Value)
	return nil
}

// Track describes a single track to produce: where to fetch it from and the
// metadata to embed once it exists.
type Track struct {
	URL     string  `json:"url" yaml:"url"`
	TrackNo TrackNo `json:"track_no" yaml:"track_no"`
	Title   string  `json:"title" yaml:"title"`
	Artist  string  `json:"artist" yaml:"artist"`
	Album   string  `json:"album" yaml:"album"`
	Cover   string  `json:"cover" yaml:"cover"`
}

// String renders the descriptor as indented JSON for display.
func (t Track) String() string {
	data, err := json.MarshalIndent(t, "", "    ")
	if err != nil {
		return fmt.Sprintf("url=%s title=%s", t.URL, t.Title)
	}
	return string(data)
}
