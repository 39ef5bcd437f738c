// Package content is the exhibit's constant text: the header, the two
// competing theories, the verdict and the doctrine's core principles.
//
// The table is built once at package init. Accessors hand out copies so
// the package-level values never change after startup.
package content

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/neurondoctrine/internal/theme"
)

// TheoryDescriptor describes one side of the debate.
type TheoryDescriptor struct {
	Name        string
	Proponent   string
	Description string
	Analogy     string
	Icon        string
	Accent      lipgloss.Color
}

// PrincipleDescriptor describes one principle of the Neuron Doctrine.
type PrincipleDescriptor struct {
	Icon        string
	Title       string
	Description string
}

// Header is the page's title block.
type Header struct {
	Eyebrow  string
	Title    string
	Subtitle string
}

// Document is the whole page.
type Document struct {
	NavigationTitle   string
	Header            Header
	DebateHeading     string
	Theories          []TheoryDescriptor
	VerdictHeading    string
	Verdict           string // Markdown
	PrinciplesHeading string
	Principles        []PrincipleDescriptor
}

const NavigationTitle = "Neuron Doctrine"

var theories = [...]TheoryDescriptor{
	{
		Name:        "Reticular Theory",
		Proponent:   "Camillo Golgi",
		Description: "The nervous system is a single, continuous, interconnected network or 'reticulum.' All nerve cells are physically fused together.",
		Analogy:     "A seamless road network.",
		Icon:        "circle.grid.cross",
		Accent:      theme.Red,
	},
	{
		Name:        "Neuron Doctrine",
		Proponent:   "Santiago Ramón y Cajal",
		Description: "The nervous system is composed of discrete, individual cells called neurons. These are the fundamental, separate units.",
		Analogy:     "Individual roads connected by intersections.",
		Icon:        "point.3.connected.trianglepath.dotted",
		Accent:      theme.Blue,
	},
}

var principles = [...]PrincipleDescriptor{
	{
		Icon:        "brain.head.profile",
		Title:       "The Neuron is the Fundamental Unit",
		Description: "Neurons are the distinct structural, metabolic, and functional units of the nervous system.",
	},
	{
		Icon:        "point.topleft.down.curvedto.point.bottomright.up",
		Title:       "Neurons are Discrete Cells",
		Description: "Neurons are not continuous with other cells; they are separated by a tiny gap called a synapse.",
	},
	{
		Icon:        "arrow.right.circle.fill",
		Title:       "Law of Dynamic Polarization",
		Description: "Information flows in a consistent, predictable direction within a neuron: from the dendrites/soma to the axon.",
	},
}

var header = Header{
	Eyebrow:  "4. A Historical Perspective",
	Title:    "The Neuron Doctrine",
	Subtitle: "The foundational debate that shaped our understanding of the nervous system.",
}

const verdict = "Through meticulous work using a silver staining method (ironically, developed by Golgi), " +
	"Santiago Ramón y Cajal provided overwhelming evidence for his theory. " +
	"The **Neuron Doctrine** prevailed and became the cornerstone of modern neuroscience."

// Theories returns the two competing theories, Golgi's first.
func Theories() []TheoryDescriptor {
	out := make([]TheoryDescriptor, len(theories))
	copy(out, theories[:])
	return out
}

// Principles returns the three core principles in display order.
func Principles() []PrincipleDescriptor {
	out := make([]PrincipleDescriptor, len(principles))
	copy(out, principles[:])
	return out
}

// Exhibit returns the full page.
func Exhibit() Document {
	return Document{
		NavigationTitle:   NavigationTitle,
		Header:            header,
		DebateHeading:     "The Great Debate",
		Theories:          Theories(),
		VerdictHeading:    "The Verdict",
		Verdict:           verdict,
		PrinciplesHeading: "Core Principles of the Neuron Doctrine",
		Principles:        Principles(),
	}
}
