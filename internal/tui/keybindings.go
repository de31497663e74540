package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the browser key bindings. It implements help.KeyMap.
type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Toggle     key.Binding
	SelectPage key.Binding
	ClearPage  key.Binding
	PrevPage   key.Binding
	NextPage   key.Binding
	FirstPage  key.Binding
	LastPage   key.Binding
	Smaller    key.Binding
	Larger     key.Binding
	Bulk       key.Binding
	Detail     key.Binding
	Reload     key.Binding
	Dismiss    key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
		SelectPage: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select page")),
		ClearPage:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear page")),
		PrevPage:   key.NewBinding(key.WithKeys("left", "h", "pgup"), key.WithHelp("←/h", "prev page")),
		NextPage:   key.NewBinding(key.WithKeys("right", "l", "pgdown"), key.WithHelp("→/l", "next page")),
		FirstPage:  key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first page")),
		LastPage:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last page")),
		Smaller:    key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "fewer rows")),
		Larger:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "more rows")),
		Bulk:       key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "select first N")),
		Detail:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Reload:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Dismiss:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns the bindings shown in the collapsed help line.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Bulk, k.PrevPage, k.NextPage, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Detail},
		{k.Toggle, k.SelectPage, k.ClearPage, k.Bulk},
		{k.PrevPage, k.NextPage, k.FirstPage, k.LastPage},
		{k.Smaller, k.Larger, k.Reload, k.Dismiss},
		{k.Help, k.Quit},
	}
}
