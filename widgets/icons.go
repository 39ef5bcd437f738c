package widgets

// FallbackGlyph is drawn for icon identifiers with no terminal equivalent.
const FallbackGlyph = "•"

var glyphs = map[string]string{
	"circle.grid.cross":                                "⊕",
	"point.3.connected.trianglepath.dotted":            "∴",
	"brain.head.profile":                               "◉",
	"point.topleft.down.curvedto.point.bottomright.up": "⤳",
	"arrow.right.circle.fill":                          "➔",
}

// Glyph maps a symbolic icon identifier to a single-cell terminal glyph.
func Glyph(id string) string {
	if g, ok := glyphs[id]; ok {
		return g
	}
	return FallbackGlyph
}
