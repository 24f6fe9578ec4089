package preset

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/mazeband/internal/generate"
)

func TestLoadPresets(t *testing.T) {
	presets, err := LoadPresets()
	require.NoError(t, err)
	require.Len(t, presets, 5)

	for _, p := range presets {
		assert.NotEmpty(t, p.Name, p.ID)
		assert.Positive(t, p.Rows, p.ID)
		assert.Positive(t, p.Columns, p.ID)

		_, err := generate.ByName(p.Algorithm)
		assert.NoError(t, err, "preset %q names an unknown algorithm", p.ID)

		_, err = ParseHexColor(p.NearColor)
		assert.NoError(t, err, p.ID)
		_, err = ParseHexColor(p.FarColor)
		assert.NoError(t, err, p.ID)
	}
}

func TestRegistry(t *testing.T) {
	registry := MustLoadRegistry()
	assert.Equal(t, 5, registry.Count())

	halls := registry.GetByID("halls")
	require.NotNil(t, halls)
	assert.Equal(t, generate.NameRecursiveDivision, halls.Algorithm)
	assert.Equal(t, 3, halls.RoomSize)

	assert.Nil(t, registry.GetByID("missing"))
	_, err := registry.Lookup("missing")
	assert.True(t, errors.Is(err, ErrUnknownPreset))
	assert.ErrorContains(t, err, "available: classic, labyrinth, catacombs, halls, uniform")

	def, err := registry.Lookup("catacombs")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, def.Braid, 1e-9)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load[File](embedded, "missing.json")
	assert.Error(t, err)
	assert.Panics(t, func() { MustLoad[File](embedded, "missing.json") })
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	fsys := fstest.MapFS{
		"typo.json": {Data: []byte(`{"presets": [{"id": "x", "rowz": 3}]}`)},
	}
	_, err := Load[File](fsys, "typo.json")
	assert.ErrorContains(t, err, "rowz")
}

func TestLoadRegistryFrom(t *testing.T) {
	fsys := fstest.MapFS{
		"custom.json": {Data: []byte(`{"presets": [
			{"id": "tiny", "name": "Tiny", "rows": 2, "columns": 3, "algorithm": "binary-tree"}
		]}`)},
		"empty.json": {Data: []byte(`{"presets": []}`)},
	}

	registry, err := LoadRegistryFrom(fsys, "custom.json")
	require.NoError(t, err)
	assert.Equal(t, 1, registry.Count())
	tiny, err := registry.Lookup("tiny")
	require.NoError(t, err)
	assert.Equal(t, 2, tiny.Rows)

	_, err = LoadRegistryFrom(fsys, "empty.json")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Def{ID: "ok", Rows: 3, Columns: 3, Algorithm: generate.NameAldousBroder}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(d *Def)
	}{
		{"missing id", func(d *Def) { d.ID = "" }},
		{"zero rows", func(d *Def) { d.Rows = 0 }},
		{"negative columns", func(d *Def) { d.Columns = -2 }},
		{"braid above one", func(d *Def) { d.Braid = 1.5 }},
		{"negative room size", func(d *Def) { d.RoomSize = -1 }},
		{"unknown algorithm", func(d *Def) { d.Algorithm = "prim" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := valid
			tt.mutate(&def)
			assert.True(t, errors.Is(def.Validate(), ErrInvalidPreset))
		})
	}

	fsys := fstest.MapFS{
		"dup.json": {Data: []byte(`{"presets": [
			{"id": "a", "rows": 2, "columns": 2, "algorithm": "binary_tree"},
			{"id": "a", "rows": 4, "columns": 4, "algorithm": "binary_tree"}
		]}`)},
	}
	_, err := LoadPresetsFrom(fsys, "dup.json")
	assert.True(t, errors.Is(err, ErrInvalidPreset))
}

func TestParseHexColor(t *testing.T) {
	color, err := ParseHexColor("#FF8000")
	require.NoError(t, err)
	assert.Equal(t, tcell.NewRGBColor(255, 128, 0), color)

	color, err = ParseHexColor("00ff00")
	require.NoError(t, err)
	assert.Equal(t, tcell.NewRGBColor(0, 255, 0), color)

	for _, bad := range []string{"#FFF", "#GG0000", "#00GG00", "#0000GG", ""} {
		_, err := ParseHexColor(bad)
		assert.Error(t, err, bad)
	}
	assert.Panics(t, func() { MustParseHexColor("nope") })
}

func TestPalette(t *testing.T) {
	def := &Def{ID: "test", NearColor: "#000000", FarColor: "#FF0064"}
	p, err := def.Palette()
	require.NoError(t, err)

	assert.Equal(t, tcell.NewRGBColor(0, 0, 0), p.At(0, 10))
	assert.Equal(t, tcell.NewRGBColor(255, 0, 100), p.At(10, 10))
	assert.Equal(t, tcell.NewRGBColor(255, 0, 100), p.At(12, 10))
	assert.Equal(t, tcell.NewRGBColor(127, 0, 50), p.At(5, 10))
	assert.Equal(t, p.Near, p.At(3, 0), "zero range stays on the near color")

	empty := &Def{ID: "empty"}
	p, err = empty.Palette()
	require.NoError(t, err)
	assert.Equal(t, DefaultPalette, p)

	_, err = (&Def{ID: "bad", FarColor: "#12"}).Palette()
	assert.Error(t, err)
}
