package common

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/okteal/ribbon/internal/config"

	"charm.land/lipgloss/v2"
)

var DefaultPalette = NewPalette()

type node struct {
	style    lipgloss.Style
	children map[string]*node
}

// Palette resolves hierarchical style selectors ("ribbon tab selected") to
// lipgloss styles, with more specific selectors inheriting from less
// specific ones.
type Palette struct {
	root  *node
	cache map[string]lipgloss.Style
}

func NewPalette() *Palette {
	return &Palette{
		root:  nil,
		cache: make(map[string]lipgloss.Style),
	}
}

func (p *Palette) add(key string, style lipgloss.Style) {
	if p.root == nil {
		p.root = &node{children: make(map[string]*node)}
	}
	current := p.root
	prefixes := strings.Fields(key)
	for _, prefix := range prefixes {
		if child, ok := current.children[prefix]; ok {
			current = child
		} else {
			child = &node{children: make(map[string]*node)}
			current.children[prefix] = child
			current = child
		}
	}
	current.style = style
}

func (p *Palette) get(fields ...string) lipgloss.Style {
	if p.root == nil {
		return lipgloss.NewStyle()
	}

	current := p.root
	for _, field := range fields {
		if child, ok := current.children[field]; ok {
			current = child
		} else {
			return lipgloss.NewStyle()
		}
	}

	return current.style
}

// Update merges config colors into the palette. Existing cached lookups are
// discarded.
func (p *Palette) Update(styleMap map[string]config.Color) {
	for key, c := range styleMap {
		p.add(key, createStyleFrom(c))
	}
	p.cache = make(map[string]lipgloss.Style)
}

func (p *Palette) Get(selector string) lipgloss.Style {
	if style, ok := p.cache[selector]; ok {
		return style
	}
	fields := strings.Fields(selector)
	length := len(fields)

	finalStyle := lipgloss.NewStyle()
	// for a selector like "a b c", inherit from the most specific to the
	// least specific: "a b c", "a b", "a", then "b c", "b", then "c"
	start := 0
	for start < length {
		for end := length; end > start; end-- {
			finalStyle = finalStyle.Inherit(p.get(fields[start:end]...))
		}
		start++
	}
	p.cache[selector] = finalStyle
	return finalStyle
}

func (p *Palette) GetBorder(selector string, border lipgloss.Border) lipgloss.Style {
	style := p.Get(selector)
	return lipgloss.NewStyle().
		Border(border).
		Foreground(style.GetForeground()).
		Background(style.GetBackground()).
		BorderForeground(style.GetForeground()).
		BorderBackground(style.GetBackground())
}

func createStyleFrom(c config.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c.Fg != "" {
		style = style.Foreground(ParseColor(c.Fg))
	}
	if c.Bg != "" {
		style = style.Background(ParseColor(c.Bg))
	}

	if c.Bold != nil {
		style = style.Bold(*c.Bold)
	}
	if c.Italic != nil {
		style = style.Italic(*c.Italic)
	}
	if c.Underline != nil {
		style = style.Underline(*c.Underline)
	}
	if c.Strikethrough != nil {
		style = style.Strikethrough(*c.Strikethrough)
	}
	if c.Reverse != nil {
		style = style.Reverse(*c.Reverse)
	}

	return style
}

// ParseColor understands hex colors, ANSI256 codes and the standard named
// terminal colors.
func ParseColor(c string) color.Color {
	if len(c) == 7 && c[0] == '#' {
		return lipgloss.Color(c)
	}
	if v, err := strconv.Atoi(c); err == nil {
		if v >= 0 && v <= 255 {
			return lipgloss.Color(c)
		}
	}
	switch c {
	case "black":
		return lipgloss.Color("0")
	case "red":
		return lipgloss.Color("1")
	case "green":
		return lipgloss.Color("2")
	case "yellow":
		return lipgloss.Color("3")
	case "blue":
		return lipgloss.Color("4")
	case "magenta":
		return lipgloss.Color("5")
	case "cyan":
		return lipgloss.Color("6")
	case "white":
		return lipgloss.Color("7")
	case "bright black":
		return lipgloss.Color("8")
	case "bright red":
		return lipgloss.Color("9")
	case "bright green":
		return lipgloss.Color("10")
	case "bright yellow":
		return lipgloss.Color("11")
	case "bright blue":
		return lipgloss.Color("12")
	case "bright magenta":
		return lipgloss.Color("13")
	case "bright cyan":
		return lipgloss.Color("14")
	case "bright white":
		return lipgloss.Color("15")
	default:
		return lipgloss.Color(c)
	}
}
