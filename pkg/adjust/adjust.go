// Package adjust provides base adjustment offsets for placement derivation.
//
// Every motion category carries a default base offset that the placement
// engine rotates through the quadrant patterns. Individual letters can
// override the default for any category, which is how hand-tuned glyph
// positions are expressed. Tables can come from built-in defaults, local
// JSON or TOML files, or a remote HTTP source.
package adjust

import (
	"github.com/pictoplace/pictoplace/pkg/grid"
	"github.com/pictoplace/pictoplace/pkg/pictograph"
)

// Table holds base adjustment offsets.
// Lookup order is letter-specific override first, then the category default.
type Table struct {
	// Defaults maps a motion category to its base offset.
	Defaults map[pictograph.Category]grid.Point `json:"defaults" toml:"defaults"`

	// Letters maps a letter to per-category overrides.
	Letters map[pictograph.Letter]map[pictograph.Category]grid.Point `json:"letters" toml:"letters"`
}

// Lookup returns the base offset for a letter and category.
func (t *Table) Lookup(letter pictograph.Letter, cat pictograph.Category) grid.Point {
	if overrides, ok := t.Letters[letter]; ok {
		if p, ok := overrides[cat]; ok {
			return p
		}
	}
	return t.Defaults[cat]
}

// Merge overlays other on top of t and returns the result.
// Entries in other win; t is not modified.
func (t *Table) Merge(other *Table) *Table {
	merged := &Table{
		Defaults: make(map[pictograph.Category]grid.Point, len(t.Defaults)),
		Letters:  make(map[pictograph.Letter]map[pictograph.Category]grid.Point, len(t.Letters)),
	}
	for cat, p := range t.Defaults {
		merged.Defaults[cat] = p
	}
	for letter, overrides := range t.Letters {
		dst := make(map[pictograph.Category]grid.Point, len(overrides))
		for cat, p := range overrides {
			dst[cat] = p
		}
		merged.Letters[letter] = dst
	}
	if other == nil {
		return merged
	}
	for cat, p := range other.Defaults {
		merged.Defaults[cat] = p
	}
	for letter, overrides := range other.Letters {
		dst, ok := merged.Letters[letter]
		if !ok {
			dst = make(map[pictograph.Category]grid.Point, len(overrides))
			merged.Letters[letter] = dst
		}
		for cat, p := range overrides {
			dst[cat] = p
		}
	}
	return merged
}

// Builtin returns the built-in default table.
// Shifts sit further from the hand point than dashes and statics because
// the prop sweeps through the quadrant.
func Builtin() *Table {
	return &Table{
		Defaults: map[pictograph.Category]grid.Point{
			pictograph.Pro:    {X: 55, Y: 55},
			pictograph.Anti:   {X: 55, Y: 55},
			pictograph.Float:  {X: 40, Y: 40},
			pictograph.Dash:   {X: 20, Y: 20},
			pictograph.Static: {X: 0, Y: 0},
		},
		Letters: map[pictograph.Letter]map[pictograph.Category]grid.Point{},
	}
}
