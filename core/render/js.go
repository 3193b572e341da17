// Package render — embeddable JS data file renderer.
// Wraps the JSON record list in a const declaration so the bestiary can be
// loaded by a static page without fetch or CORS concerns.
package render

import (
	"bytes"

	"github.com/remideboer/easytabletopfantasy/core"
)

// JSRenderer produces a JavaScript data file from the record collection.
type JSRenderer struct {
	json *JSONRenderer
}

// NewJSRenderer creates a JSRenderer.
func NewJSRenderer() *JSRenderer {
	return &JSRenderer{json: NewJSONRenderer()}
}

// Render wraps the JSON collection as a const declaration.
func (r *JSRenderer) Render(records []core.MonsterRecord) ([]byte, error) {
	data, err := r.json.Render(records)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("const monstersDataEmbedded = ")
	buf.Write(data)
	buf.WriteString(";")
	return buf.Bytes(), nil
}

// Extension returns the file extension for JS output.
func (r *JSRenderer) Extension() string {
	return ".js"
}
