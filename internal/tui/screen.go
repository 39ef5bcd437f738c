package tui

import (
	"errors"
	"fmt"

	"github.com/agnivade/levenshtein"

	"github.com/jask/neurondoctrine/internal/content"
	"github.com/jask/neurondoctrine/internal/theme"
	"github.com/jask/neurondoctrine/widgets"
)

// Section names accepted by RenderSection, in page order.
const (
	SectionHeader     = "header"
	SectionDebate     = "debate"
	SectionVerdict    = "verdict"
	SectionPrinciples = "principles"
)

var Sections = []string{SectionHeader, SectionDebate, SectionVerdict, SectionPrinciples}

var ErrUnknownSection = errors.New("unknown section")

const (
	cardGap      = 2
	pagePadding  = 1
	sectionSpace = 1
)

// Screen is the exhibit page as a plain value tree. It holds no styling
// state, so two screens built from the same document compare equal.
type Screen struct {
	Title             string
	Header            content.Header
	DebateHeading     string
	Cards             []widgets.ComparisonCard
	Verdict           widgets.Callout
	PrinciplesHeading string
	Principles        []widgets.PrincipleRow
	MinCardWidth      int
}

// NewScreen maps the document onto widgets.
func NewScreen(doc content.Document, minCardWidth int) Screen {
	s := Screen{
		Title:             doc.NavigationTitle,
		Header:            doc.Header,
		DebateHeading:     doc.DebateHeading,
		Verdict:           widgets.Callout{Heading: doc.VerdictHeading, Body: doc.Verdict, Accent: theme.Accent},
		PrinciplesHeading: doc.PrinciplesHeading,
		MinCardWidth:      minCardWidth,
	}
	for _, t := range doc.Theories {
		s.Cards = append(s.Cards, widgets.ComparisonCard{
			Name:        t.Name,
			Proponent:   t.Proponent,
			Description: t.Description,
			Analogy:     t.Analogy,
			Icon:        t.Icon,
			Accent:      t.Accent,
		})
	}
	for _, p := range doc.Principles {
		s.Principles = append(s.Principles, widgets.PrincipleRow{Icon: p.Icon, Title: p.Title, Description: p.Description})
	}
	return s
}

// Render draws the whole page at width.
func (s Screen) Render(width int, format widgets.TextFormatter) string {
	return s.render(width, s.parts(format))
}

// RenderSection draws a single named section.
func (s Screen) RenderSection(name string, width int, format widgets.TextFormatter) (string, error) {
	w, ok := s.section(name, format)
	if !ok {
		return "", unknownSection(name)
	}
	return s.render(width, []widgets.Widget{w}), nil
}

func (s Screen) render(width int, parts []widgets.Widget) string {
	inner := width - 2*pagePadding
	if inner <= 0 {
		return ""
	}
	body := widgets.VStack{Widgets: parts, Spacing: sectionSpace}.Render(inner, 0)
	return pageStyle.Width(width).Render(body)
}

func (s Screen) parts(format widgets.TextFormatter) []widgets.Widget {
	header, _ := s.section(SectionHeader, format)
	debate, _ := s.section(SectionDebate, format)
	verdict, _ := s.section(SectionVerdict, format)
	principles, _ := s.section(SectionPrinciples, format)
	return []widgets.Widget{
		header,
		widgets.Rule{Color: theme.Divider},
		debate,
		verdict,
		widgets.Rule{Color: theme.Divider},
		principles,
	}
}

func (s Screen) section(name string, format widgets.TextFormatter) (widgets.Widget, bool) {
	switch name {
	case SectionHeader:
		return widgets.VStack{Widgets: []widgets.Widget{
			widgets.Text{Content: s.Header.Eyebrow, Style: eyebrowStyle},
			widgets.Text{Content: s.Header.Title, Style: titleStyle},
			widgets.Text{Content: s.Header.Subtitle, Style: subtitleStyle},
		}}, true
	case SectionDebate:
		cards := make([]widgets.Widget, 0, len(s.Cards))
		for _, c := range s.Cards {
			cards = append(cards, c)
		}
		return widgets.VStack{Spacing: 1, Widgets: []widgets.Widget{
			widgets.Text{Content: s.DebateHeading, Style: headingStyle},
			widgets.Columns{Widgets: cards, MinWidth: s.MinCardWidth, Gap: cardGap, Spacing: 1},
		}}, true
	case SectionVerdict:
		v := s.Verdict
		v.Format = format
		return v, true
	case SectionPrinciples:
		rows := []widgets.Widget{widgets.Text{Content: s.PrinciplesHeading, Style: headingStyle}}
		for _, p := range s.Principles {
			rows = append(rows, p)
		}
		return widgets.VStack{Widgets: rows, Spacing: 1}, true
	}
	return nil, false
}

func unknownSection(name string) error {
	best, bestDist := "", -1
	for _, candidate := range Sections {
		d := levenshtein.ComputeDistance(name, candidate)
		if bestDist < 0 || d < bestDist {
			best, bestDist = candidate, d
		}
	}
	if bestDist <= len(best)/2 {
		return fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownSection, name, best)
	}
	return fmt.Errorf("%w %q (want one of %v)", ErrUnknownSection, name, Sections)
}

