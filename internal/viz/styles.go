package viz

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/san-kum/sortlab/internal/compare"
)

// styles are derived from the active theme on every render.
type styles struct {
	theme Theme

	title     lipgloss.Style
	tab       lipgloss.Style
	activeTab lipgloss.Style
	panel     lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	muted     lipgloss.Style
	selected  lipgloss.Style
	graph     lipgloss.Style

	info, success, warning, failure lipgloss.Style
}

func newStyles(t Theme) styles {
	base := lipgloss.NewStyle()
	return styles{
		theme: t,
		title: base.Bold(true).Foreground(t.Primary),
		tab: base.Padding(0, 2).
			Foreground(t.Muted).
			Border(lipgloss.RoundedBorder(), true, true, false, true).
			BorderForeground(t.Muted),
		activeTab: base.Padding(0, 2).Bold(true).
			Foreground(t.Text).
			Border(lipgloss.RoundedBorder(), true, true, false, true).
			BorderForeground(t.Primary),
		panel: base.
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Muted).
			Padding(0, 2),
		label:    base.Foreground(t.Muted).Width(13),
		value:    base.Foreground(t.Text),
		muted:    base.Foreground(t.Muted),
		selected: base.Bold(true).Foreground(t.Accent),
		graph:    base.Foreground(t.Secondary),

		info:    base.Foreground(t.Primary).Bold(true),
		success: base.Foreground(t.Success).Bold(true),
		warning: base.Foreground(t.Warning).Bold(true),
		failure: base.Foreground(t.Error).Bold(true),
	}
}

func (s styles) badge(b compare.Badge) lipgloss.Style {
	switch b {
	case compare.Excellent:
		return s.success
	case compare.Good:
		return s.selected
	case compare.Average:
		return s.warning
	}
	return s.failure
}

// GradientText colours each rune on a line from start to end.
func GradientText(text string, start, end lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	from, to := RGBA(start), RGBA(end)

	var b strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		c := color.RGBA{
			R: lerp(from.R, to.R, t),
			G: lerp(from.G, to.G, t),
			B: lerp(from.B, to.B, t),
			A: 0xff,
		}
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(c))).Render(string(r)))
	}
	return b.String()
}

// Separator draws a muted rule of the given cell width.
func Separator(width int, muted lipgloss.Color) string {
	if width < 7 {
		return strings.Repeat("─", max(width, 0))
	}
	mid := width / 2
	line := strings.Repeat("─", mid-3) + " ◆ " + strings.Repeat("─", width-mid-3)
	return lipgloss.NewStyle().Foreground(muted).Render(line)
}

// fit pads or truncates s to exactly w terminal cells.
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if ansi.StringWidth(s) > w {
		return ansi.Truncate(s, w, "…")
	}
	return s + strings.Repeat(" ", w-ansi.StringWidth(s))
}

// RGBA parses a "#rrggbb" colour. Anything else is white.
func RGBA(c lipgloss.Color) color.RGBA {
	if !validHex(c) {
		return color.RGBA{0xff, 0xff, 0xff, 0xff}
	}
	hex := string(c)
	return color.RGBA{
		R: parseHexByte(hex[1:3]),
		G: parseHexByte(hex[3:5]),
		B: parseHexByte(hex[5:7]),
		A: 0xff,
	}
}

func validHex(c lipgloss.Color) bool {
	hex := string(c)
	if len(hex) != 7 || hex[0] != '#' {
		return false
	}
	for _, ch := range hex[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", ch) {
			return false
		}
	}
	return true
}

func parseHexByte(s string) uint8 {
	var val uint8
	for _, c := range s {
		val <<= 4
		switch {
		case c >= '0' && c <= '9':
			val |= uint8(c - '0')
		case c >= 'a' && c <= 'f':
			val |= uint8(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val |= uint8(c - 'A' + 10)
		}
	}
	return val
}

func hexColor(c color.RGBA) string {
	const hex = "0123456789abcdef"
	return string([]byte{'#',
		hex[c.R>>4], hex[c.R&0xf],
		hex[c.G>>4], hex[c.G&0xf],
		hex[c.B>>4], hex[c.B&0xf],
	})
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + t*(float64(b)-float64(a)))
}
