package preset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts a hex color string ("#RRGGBB" or "RRGGBB") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	var rgb [3]int32
	for i, name := range []string{"red", "green", "blue"} {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("invalid %s component in %s: %w", name, hex, err)
		}
		rgb[i] = int32(v)
	}

	return tcell.NewRGBColor(rgb[0], rgb[1], rgb[2]), nil
}

// MustParseHexColor converts a hex color string to tcell.Color, panicking on error.
func MustParseHexColor(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return color
}

// Palette is a two-stop gradient used to shade cells by distance.
type Palette struct {
	Near tcell.Color
	Far  tcell.Color
}

// DefaultPalette is used when a preset does not define colors.
var DefaultPalette = Palette{
	Near: tcell.NewRGBColor(0x1D, 0x4E, 0xD8),
	Far:  tcell.NewRGBColor(0xF5, 0x9E, 0x0B),
}

// Palette parses the preset's heatmap colors. Missing colors fall back to
// DefaultPalette.
func (d *Def) Palette() (Palette, error) {
	p := DefaultPalette
	if d.NearColor != "" {
		c, err := ParseHexColor(d.NearColor)
		if err != nil {
			return p, fmt.Errorf("preset %s near color: %w", d.ID, err)
		}
		p.Near = c
	}
	if d.FarColor != "" {
		c, err := ParseHexColor(d.FarColor)
		if err != nil {
			return p, fmt.Errorf("preset %s far color: %w", d.ID, err)
		}
		p.Far = c
	}
	return p, nil
}

// At blends linearly from Near at distance 0 to Far at maxDistance.
func (p Palette) At(distance, maxDistance int) tcell.Color {
	if maxDistance <= 0 || distance <= 0 {
		return p.Near
	}
	if distance >= maxDistance {
		return p.Far
	}

	nr, ng, nb := p.Near.RGB()
	fr, fg, fb := p.Far.RGB()
	mix := func(a, b int32) int32 {
		return a + (b-a)*int32(distance)/int32(maxDistance)
	}
	return tcell.NewRGBColor(mix(nr, fr), mix(ng, fg), mix(nb, fb))
}
