package dashboard

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit     key.Binding
	Focus    key.Binding
	Select   key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Refresh  key.Binding
	Range    key.Binding
	Search   key.Binding
	Settings key.Binding
	Export   key.Binding
	Cancel   key.Binding
	Submit   key.Binding
	Next     key.Binding
	Left     key.Binding
	Right    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open tracker"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "newer page"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "older page"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Range: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "time range"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export csv"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
		),
	}
}

func (k keyMap) browseHelp() []key.Binding {
	return []key.Binding{
		k.Focus, k.Select, k.Up, k.Down, k.PageUp, k.PageDown,
		k.Refresh, k.Range, k.Search, k.Settings, k.Export, k.Quit,
	}
}

func (k keyMap) formHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Cancel}
}

func helpLine(bindings []key.Binding) string {
	line := ""
	for i, b := range bindings {
		h := b.Help()
		if i > 0 {
			line += " | "
		}
		line += h.Key + " " + h.Desc
	}
	return helpStyle.Render(line)
}
