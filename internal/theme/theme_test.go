package theme

import (
	"regexp"
	"testing"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func TestAllPaletteColorsAreValidHex(t *testing.T) {
	colors := AllPaletteColors()
	if len(colors) != 26 {
		t.Errorf("expected 26 palette colors, got %d", len(colors))
	}
	for _, c := range colors {
		hex := string(c)
		if !hexColorRegex.MatchString(hex) {
			t.Errorf("invalid hex color: %q", hex)
		}
	}
}

func TestSemanticAliasesMatchPalette(t *testing.T) {
	tests := []struct {
		name  string
		alias string
		want  string
	}{
		{"primary", string(Primary), string(Text)},
		{"secondary", string(Secondary), string(Subtext0)},
		{"accent", string(Accent), string(Blue)},
		{"border", string(Border), string(Surface2)},
		{"divider", string(Divider), string(Surface1)},
		{"highlight", string(Highlight), string(Surface0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.alias != tt.want {
				t.Errorf("%s = %q, want %q", tt.name, tt.alias, tt.want)
			}
		})
	}
}
