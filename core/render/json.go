// Package render provides output renderers for the converted bestiary.
// This file implements the JSON renderer, the canonical record format.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/remideboer/easytabletopfantasy/core"
)

// JSONRenderer produces the record collection as a JSON list.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals the records in batch order.
func (r *JSONRenderer) Render(records []core.MonsterRecord) ([]byte, error) {
	if records == nil {
		records = []core.MonsterRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling records: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
