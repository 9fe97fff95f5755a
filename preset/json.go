package preset

import (
	"encoding/json"
	"fmt"
	"io"
)

func parseJSON(data []byte) (*Preset, error) {
	p := Default()
	p.Stops = nil
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("preset: decoding json: %w", err)
	}
	return p, nil
}

// WriteJSON encodes p as indented JSON.
func WriteJSON(w io.Writer, p *Preset) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("preset: encoding json: %w", err)
	}
	return nil
}
