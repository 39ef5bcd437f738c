package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/neurondoctrine/internal/theme"
)

func TestSplitWidthsEven(t *testing.T) {
	got := splitWidths(10, 3, nil)
	want := []int{4, 3, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("splitWidths = %v, want %v", got, want)
		}
	}
}

func TestSplitWidthsRatios(t *testing.T) {
	got := splitWidths(100, 2, []float64{3, 1})
	if got[0]+got[1] != 100 {
		t.Fatalf("widths %v do not sum to 100", got)
	}
	if got[0] != 75 {
		t.Errorf("first width = %d, want 75", got[0])
	}
}

func TestVStackSpacing(t *testing.T) {
	out := VStack{
		Widgets: []Widget{Text{Content: "a", Style: lipgloss.NewStyle()}, Text{Content: "b", Style: lipgloss.NewStyle()}},
		Spacing: 1,
	}.Render(5, 0)
	lines := plainLines(out)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", lines)
	}
	if strings.TrimSpace(lines[1]) != "" {
		t.Errorf("expected blank spacer line, got %q", lines[1])
	}
}

func TestVStackFixedHeight(t *testing.T) {
	out := VStack{Widgets: []Widget{Text{Content: "a", Style: lipgloss.NewStyle()}}}.Render(4, 3)
	if h := lipgloss.Height(out); h != 3 {
		t.Errorf("height = %d, want 3", h)
	}
}

func TestHStackEqualisesCardHeights(t *testing.T) {
	out := HStack{Widgets: []Widget{testReticularCard(), testDoctrineCard()}, Gap: 2}.Render(80, 0)
	lines := plainLines(out)
	if strings.Count(lines[0], "╭") != 2 {
		t.Errorf("first line should open both cards: %q", lines[0])
	}
	last := lines[len(lines)-1]
	if strings.Count(last, "╰") != 2 {
		t.Errorf("last line should close both cards: %q", last)
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 80 {
			t.Errorf("line %d width = %d, want 80", i, w)
		}
	}
	pinned := lines[len(lines)-2]
	if !strings.Contains(pinned, "“A seamless road network.”") || !strings.Contains(pinned, "intersections.”") {
		t.Errorf("both analogies should end on the line above the bottom border: %q", pinned)
	}
}

func TestColumnsBreakpoint(t *testing.T) {
	cols := Columns{Widgets: []Widget{testReticularCard(), testDoctrineCard()}, MinWidth: 30, Gap: 2, Spacing: 1}

	tests := []struct {
		name    string
		width   int
		stacked bool
	}{
		{"narrow", 50, true},
		{"exact", 62, false},
		{"one short", 61, true},
		{"wide", 100, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cols.Stacked(tt.width); got != tt.stacked {
				t.Fatalf("Stacked(%d) = %v, want %v", tt.width, got, tt.stacked)
			}
			lines := plainLines(cols.Render(tt.width, 0))
			opening := 0
			for _, line := range lines {
				if strings.Contains(line, "╭") {
					opening++
				}
			}
			want := 1
			if tt.stacked {
				want = 2
			}
			if opening != want {
				t.Errorf("cards open on %d lines, want %d", opening, want)
			}
		})
	}
}

func TestRuleSpansWidth(t *testing.T) {
	if got := ansi.Strip(Rule{Color: theme.Divider}.Render(7, 1)); got != "───────" {
		t.Errorf("rule = %q", got)
	}
}
