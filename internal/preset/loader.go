// Package preset provides the level presets shipped with the binary and the
// loader that reads them, or a user-supplied replacement, from JSON.
package preset

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
)

// presetsFile is the name of the embedded preset list.
const presetsFile = "presets.json"

//go:embed presets.json
var embedded embed.FS

// Load reads filename from fsys and decodes it as JSON into T. Unknown fields
// are rejected so a misspelled key in a hand-edited file is reported instead
// of silently ignored.
func Load[T any](fsys fs.FS, filename string) (T, error) {
	var result T

	f, err := fsys.Open(filename)
	if err != nil {
		return result, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// MustLoad is Load for data that must be present for the viewer to function.
// It panics on error.
func MustLoad[T any](fsys fs.FS, filename string) T {
	result, err := Load[T](fsys, filename)
	if err != nil {
		panic(err)
	}
	return result
}
