package level

import "github.com/samdwyer/mazeband/internal/preset"

// ConfigFromPreset builds a Config from a preset definition.
func ConfigFromPreset(def *preset.Def, seed int64) Config {
	return Config{
		Rows:      def.Rows,
		Columns:   def.Columns,
		Algorithm: def.Algorithm,
		Seed:      seed,
		Braid:     def.Braid,
		RoomSize:  def.RoomSize,
	}
}
