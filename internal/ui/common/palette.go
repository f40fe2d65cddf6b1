package common

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hack3ric/termscp/internal/config"
)

var DefaultPalette = NewPalette()

// Palette resolves selectors like "log border focused" to lipgloss styles.
// A selector inherits unset properties from its prefixes, so "log border
// focused" falls back to "log border", then "log".
type Palette struct {
	styles map[string]lipgloss.Style
	cache  map[string]lipgloss.Style
}

func NewPalette() *Palette {
	return &Palette{
		styles: make(map[string]lipgloss.Style),
		cache:  make(map[string]lipgloss.Style),
	}
}

func (p *Palette) Update(colors map[string]config.Color) {
	for key, c := range colors {
		p.styles[strings.Join(strings.Fields(key), " ")] = createStyleFrom(c)
	}
	p.cache = make(map[string]lipgloss.Style)
}

func (p *Palette) Get(selector string) lipgloss.Style {
	if style, ok := p.cache[selector]; ok {
		return style
	}
	fields := strings.Fields(selector)
	style := lipgloss.NewStyle()
	for end := len(fields); end > 0; end-- {
		if s, ok := p.styles[strings.Join(fields[:end], " ")]; ok {
			style = style.Inherit(s)
		}
	}
	p.cache[selector] = style
	return style
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
		style = style.Foreground(parseColor(c.Fg))
	}
	if c.Bg != "" {
		style = style.Background(parseColor(c.Bg))
	}
	if c.Bold {
		style = style.Bold(true)
	}
	if c.Italic {
		style = style.Italic(true)
	}
	if c.Underline {
		style = style.Underline(true)
	}
	if c.Reverse {
		style = style.Reverse(true)
	}
	return style
}

var namedColors = map[string]string{
	"black":          "0",
	"red":            "1",
	"green":          "2",
	"yellow":         "3",
	"blue":           "4",
	"magenta":        "5",
	"cyan":           "6",
	"white":          "7",
	"bright black":   "8",
	"bright red":     "9",
	"bright green":   "10",
	"bright yellow":  "11",
	"bright blue":    "12",
	"bright magenta": "13",
	"bright cyan":    "14",
	"bright white":   "15",
}

func parseColor(value string) lipgloss.TerminalColor {
	if len(value) == 7 && value[0] == '#' {
		return lipgloss.Color(value)
	}
	if v, err := strconv.Atoi(value); err == nil && v >= 0 && v <= 255 {
		return lipgloss.Color(value)
	}
	if code, ok := namedColors[value]; ok {
		return lipgloss.Color(code)
	}
	return lipgloss.NoColor{}
}
