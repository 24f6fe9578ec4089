package preset

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// ErrUnknownPreset indicates no preset exists with the requested ID.
var ErrUnknownPreset = errors.New("preset: unknown preset")

// Registry holds loaded preset definitions and provides lookup utilities.
type Registry struct {
	presets map[string]*Def
	all     []Def
}

// NewRegistry creates a registry from loaded preset definitions.
func NewRegistry(presets []Def) *Registry {
	registry := &Registry{
		presets: make(map[string]*Def),
		all:     presets,
	}
	for i := range presets {
		registry.presets[presets[i].ID] = &presets[i]
	}
	return registry
}

// LoadRegistry loads and creates a registry from the embedded presets.json.
func LoadRegistry() (*Registry, error) {
	return LoadRegistryFrom(embedded, presetsFile)
}

// LoadRegistryFrom creates a registry from a presets file in fsys, such as
// os.DirFS for a user-supplied file.
func LoadRegistryFrom(fsys fs.FS, filename string) (*Registry, error) {
	presets, err := LoadPresetsFrom(fsys, filename)
	if err != nil {
		return nil, err
	}
	if len(presets) == 0 {
		return nil, fmt.Errorf("no presets loaded from %s", filename)
	}
	return NewRegistry(presets), nil
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the preset with the given ID, or nil if not found.
func (r *Registry) GetByID(id string) *Def {
	return r.presets[id]
}

// Lookup is GetByID with an error wrapping ErrUnknownPreset for missing IDs.
func (r *Registry) Lookup(id string) (*Def, error) {
	def := r.presets[id]
	if def == nil {
		ids := make([]string, 0, r.Count())
		for _, d := range r.All() {
			ids = append(ids, d.ID)
		}
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownPreset, id, strings.Join(ids, ", "))
	}
	return def, nil
}

// All returns all preset definitions in file order.
func (r *Registry) All() []Def {
	return r.all
}

// Count returns the number of presets in the registry.
func (r *Registry) Count() int {
	return len(r.all)
}
