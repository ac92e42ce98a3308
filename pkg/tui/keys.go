package tui

import "github.com/charmbracelet/bubbles/key"

type globalKeyMap struct {
	quit key.Binding
	help key.Binding
}

func newGlobalKeyMap() globalKeyMap {
	return globalKeyMap{
		quit: key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d"), key.WithHelp("ctrl+c", "quit")),
		help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
	}
}

type entryKeyMap struct {
	up        key.Binding
	down      key.Binding
	increment key.Binding
	decrement key.Binding
	toggle    key.Binding
	order     key.Binding
	reset     key.Binding
	global    globalKeyMap
}

func (k entryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.up, k.down, k.order, k.global.help}
}

func (k entryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.increment, k.decrement},
		{k.toggle, k.order, k.reset},
		{k.global.help, k.global.quit},
	}
}

func newEntryKeyMap() entryKeyMap {
	return entryKeyMap{
		up:        key.NewBinding(key.WithKeys("up", "shift+tab"), key.WithHelp("↑/shift+tab", "previous")),
		down:      key.NewBinding(key.WithKeys("down", "tab"), key.WithHelp("↓/tab", "next")),
		increment: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "one more scoop")),
		decrement: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "one less scoop")),
		toggle:    key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space/x", "toggle topping")),
		order:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "order sundae")),
		reset:     key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "start over")),
		global:    newGlobalKeyMap(),
	}
}

type summaryKeyMap struct {
	agree   key.Binding
	terms   key.Binding
	confirm key.Binding
	back    key.Binding
	global  globalKeyMap
}

func (k summaryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.agree, k.confirm, k.back, k.global.help}
}

func (k summaryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.agree, k.terms},
		{k.confirm, k.back},
		{k.global.help, k.global.quit},
	}
}

func newSummaryKeyMap() summaryKeyMap {
	return summaryKeyMap{
		agree:   key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space/x", "agree to terms")),
		terms:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "show terms")),
		confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm order")),
		back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "edit order")),
		global:  newGlobalKeyMap(),
	}
}

type confirmationKeyMap struct {
	newOrder key.Binding
	global   globalKeyMap
}

func (k confirmationKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.newOrder, k.global.quit}
}

func (k confirmationKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.newOrder}, {k.global.help, k.global.quit}}
}

func newConfirmationKeyMap() confirmationKeyMap {
	return confirmationKeyMap{
		newOrder: key.NewBinding(key.WithKeys("enter", "n"), key.WithHelp("enter/n", "create new order")),
		global:   newGlobalKeyMap(),
	}
}
