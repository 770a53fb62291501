package model

// glyphs maps the symbolic icon names stored on services to the glyph
// identifiers the front end renders. Unknown names fall back to
// DefaultGlyph rather than failing.
var glyphs = map[string]string{
	"Palette": "palette",
	"Image":   "image",
	"Layout":  "layout",
	"Box":     "box",
	"Youtube": "youtube",
	"Monitor": "monitor",
	"PenTool": "pen-tool",
	"Type":    "type",
	"Camera":  "camera",
}

// DefaultGlyph is rendered for icon names with no known glyph.
const DefaultGlyph = "shapes"

// Glyph resolves a service icon name to its glyph identifier.
func Glyph(name string) string {
	if g, ok := glyphs[name]; ok {
		return g
	}
	return DefaultGlyph
}
