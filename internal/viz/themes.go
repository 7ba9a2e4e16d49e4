package viz

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortlab/internal/sorting"
)

// Faces are the three visible sides of a pseudo-3D bar.
type Faces struct {
	Front lipgloss.Color
	Top   lipgloss.Color
	Side  lipgloss.Color
}

// Theme defines color scheme for the TUI
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color

	// Bars is indexed by element state.
	Bars [4]Faces
}

// FacesFor returns the bar colours for s.
func (t Theme) FacesFor(s sorting.State) Faces {
	if int(s) < len(t.Bars) {
		return t.Bars[s]
	}
	return t.Bars[sorting.Normal]
}

// Available themes
var (
	ThemeClassic = Theme{
		Name:      "classic",
		Primary:   lipgloss.Color("#3498db"),
		Secondary: lipgloss.Color("#5dade2"),
		Accent:    lipgloss.Color("#f39c12"),
		Text:      lipgloss.Color("#ecf0f1"),
		Muted:     lipgloss.Color("#7f8c8d"),
		Success:   lipgloss.Color("#27ae60"),
		Warning:   lipgloss.Color("#e67e22"),
		Error:     lipgloss.Color("#e74c3c"),
		Bars: [4]Faces{
			sorting.Normal:    {Front: "#3498db", Top: "#5dade2", Side: "#2980b9"},
			sorting.Comparing: {Front: "#e74c3c", Top: "#c0392b", Side: "#a93226"},
			sorting.Swapping:  {Front: "#f39c12", Top: "#e67e22", Side: "#d35400"},
			sorting.Sorted:    {Front: "#27ae60", Top: "#2ecc71", Side: "#229954"},
		},
	}

	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Primary:   lipgloss.Color("#ff00ff"), // Magenta
		Secondary: lipgloss.Color("#00ffff"), // Cyan
		Accent:    lipgloss.Color("#ffff00"), // Yellow
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
		Success:   lipgloss.Color("#00ff00"),
		Warning:   lipgloss.Color("#ff8800"),
		Error:     lipgloss.Color("#ff0000"),
		Bars: [4]Faces{
			sorting.Normal:    {Front: "#00ffff", Top: "#88ffff", Side: "#008888"},
			sorting.Comparing: {Front: "#ff00ff", Top: "#ff88ff", Side: "#880088"},
			sorting.Swapping:  {Front: "#ffff00", Top: "#ffff88", Side: "#888800"},
			sorting.Sorted:    {Front: "#00ff00", Top: "#88ff88", Side: "#008800"},
		},
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"), // Green phosphor
		Secondary: lipgloss.Color("#00cc00"),
		Accent:    lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Success:   lipgloss.Color("#88ff88"),
		Warning:   lipgloss.Color("#ffff00"),
		Error:     lipgloss.Color("#ff0000"),
		Bars: [4]Faces{
			sorting.Normal:    {Front: "#00aa00", Top: "#00cc00", Side: "#005500"},
			sorting.Comparing: {Front: "#ffff00", Top: "#ffff66", Side: "#888800"},
			sorting.Swapping:  {Front: "#ff8800", Top: "#ffaa44", Side: "#884400"},
			sorting.Sorted:    {Front: "#88ff88", Top: "#ccffcc", Side: "#44aa44"},
		},
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#0077be"), // Ocean blue
		Secondary: lipgloss.Color("#00a8cc"),
		Accent:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Success:   lipgloss.Color("#00ff88"),
		Warning:   lipgloss.Color("#ffcc00"),
		Error:     lipgloss.Color("#ff4444"),
		Bars: [4]Faces{
			sorting.Normal:    {Front: "#0077be", Top: "#00a8cc", Side: "#004c7a"},
			sorting.Comparing: {Front: "#ff4444", Top: "#ff7777", Side: "#992222"},
			sorting.Swapping:  {Front: "#ffd700", Top: "#ffe866", Side: "#997f00"},
			sorting.Sorted:    {Front: "#00ff88", Top: "#66ffbb", Side: "#00995a"},
		},
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Primary:   lipgloss.Color("#ff6b6b"), // Coral
		Secondary: lipgloss.Color("#feca57"),
		Accent:    lipgloss.Color("#ff9ff3"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Success:   lipgloss.Color("#5fd068"),
		Warning:   lipgloss.Color("#ffc048"),
		Error:     lipgloss.Color("#ff4757"),
		Bars: [4]Faces{
			sorting.Normal:    {Front: "#ff9ff3", Top: "#ffc8f9", Side: "#b06aa8"},
			sorting.Comparing: {Front: "#ff4757", Top: "#ff7b86", Side: "#b0303c"},
			sorting.Swapping:  {Front: "#feca57", Top: "#fedd94", Side: "#b08c3c"},
			sorting.Sorted:    {Front: "#5fd068", Top: "#93e099", Side: "#3f8a45"},
		},
	}

	// All available themes
	Themes = []Theme{
		ThemeClassic,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	t, err := LookupTheme(name)
	if err != nil {
		return ThemeClassic
	}
	return t
}

func LookupTheme(name string) (Theme, error) {
	for _, t := range Themes {
		if t.Name == name {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("viz: unknown theme %q", name)
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

func themeIndex(name string) int {
	for i, t := range Themes {
		if t.Name == name {
			return i
		}
	}
	return 0
}
