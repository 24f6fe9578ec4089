package preset

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/samdwyer/mazeband/internal/generate"
)

// ErrInvalidPreset indicates a preset definition that cannot produce a level.
var ErrInvalidPreset = errors.New("preset: invalid preset")

// Def defines a level preset loaded from JSON.
type Def struct {
	ID        string  `json:"id"`        // Unique identifier (e.g., "labyrinth")
	Name      string  `json:"name"`      // Display name
	Rows      int     `json:"rows"`      // Grid rows
	Columns   int     `json:"columns"`   // Grid columns
	Algorithm string  `json:"algorithm"` // Generation algorithm name, see generate.Names
	Braid     float64 `json:"braid"`     // Probability of removing each dead end (0 keeps a perfect maze)
	RoomSize  int     `json:"roomSize"`  // Room size for recursive division (0 divides fully)
	NearColor string  `json:"nearColor"` // Heatmap color for cells near the start
	FarColor  string  `json:"farColor"`  // Heatmap color for the farthest cells
}

// File represents the structure of a presets file.
type File struct {
	Presets []Def `json:"presets"`
}

// LoadPresets loads the preset definitions embedded in the binary.
func LoadPresets() ([]Def, error) {
	return LoadPresetsFrom(embedded, presetsFile)
}

// LoadPresetsFrom loads and validates preset definitions from filename in fsys.
func LoadPresetsFrom(fsys fs.FS, filename string) ([]Def, error) {
	file, err := Load[File](fsys, filename)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(file.Presets))
	for i := range file.Presets {
		def := &file.Presets[i]
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		if seen[def.ID] {
			return nil, fmt.Errorf("%s: %w: duplicate id %q", filename, ErrInvalidPreset, def.ID)
		}
		seen[def.ID] = true
	}
	return file.Presets, nil
}

// Validate reports whether the definition can be built into a level.
func (d *Def) Validate() error {
	switch {
	case d.ID == "":
		return fmt.Errorf("%w: missing id", ErrInvalidPreset)
	case d.Rows < 1 || d.Columns < 1:
		return fmt.Errorf("%w: %s has %dx%d cells", ErrInvalidPreset, d.ID, d.Rows, d.Columns)
	case d.Braid < 0 || d.Braid > 1:
		return fmt.Errorf("%w: %s braid %v is outside [0, 1]", ErrInvalidPreset, d.ID, d.Braid)
	case d.RoomSize < 0:
		return fmt.Errorf("%w: %s room size is negative", ErrInvalidPreset, d.ID)
	}
	if _, err := generate.ByName(d.Algorithm); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidPreset, d.ID, err)
	}
	return nil
}
