package viz

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Start      key.Binding
	Generate   key.Binding
	Reset      key.Binding
	NextAlgo   key.Binding
	PrevAlgo   key.Binding
	Smaller    key.Binding
	Larger     key.Binding
	Slower     key.Binding
	Faster     key.Binding
	Pattern    key.Binding
	Theme      key.Binding
	Tab        key.Binding
	Up         key.Binding
	Down       key.Binding
	Toggle     key.Binding
	RunCompare key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Start:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start")),
		Generate:   key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "new array")),
		Reset:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		NextAlgo:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a/A", "algorithm")),
		PrevAlgo:   key.NewBinding(key.WithKeys("A")),
		Smaller:    key.NewBinding(key.WithKeys("["), key.WithHelp("[/]", "size")),
		Larger:     key.NewBinding(key.WithKeys("]")),
		Slower:     key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-/+", "speed")),
		Faster:     key.NewBinding(key.WithKeys("+", "=")),
		Pattern:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pattern")),
		Theme:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Tab:        key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch view")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		RunCompare: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "compare")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// visualizerKeys and compareKeys adapt the map to help.KeyMap per tab.
type visualizerKeys struct{ keyMap }

func (k visualizerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Generate, k.Reset, k.NextAlgo, k.Tab, k.Help, k.Quit}
}

func (k visualizerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Generate, k.Reset},
		{k.NextAlgo, k.Smaller, k.Slower, k.Pattern},
		{k.Theme, k.Tab, k.Help, k.Quit},
	}
}

type compareKeys struct{ keyMap }

func (k compareKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.RunCompare, k.Tab, k.Quit}
}

func (k compareKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.RunCompare},
		{k.Theme, k.Tab, k.Help, k.Quit},
	}
}
