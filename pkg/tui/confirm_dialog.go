package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmDialog asks a yes/no question on top of the active screen.
type ConfirmDialog struct {
	active    bool
	title     string
	message   string
	onConfirm func()
	onCancel  func()
	keys      confirmKeyMap
}

type confirmKeyMap struct {
	confirm key.Binding
	cancel  key.Binding
}

func newConfirmKeyMap() confirmKeyMap {
	return confirmKeyMap{
		confirm: key.NewBinding(key.WithKeys("enter", "y"), key.WithHelp("enter/y", "confirm")),
		cancel:  key.NewBinding(key.WithKeys("esc", "n"), key.WithHelp("esc/n", "cancel")),
	}
}

// NewConfirmDialog creates a hidden dialog.
func NewConfirmDialog(title, message string, onConfirm, onCancel func()) *ConfirmDialog {
	return &ConfirmDialog{
		title:     title,
		message:   message,
		onConfirm: onConfirm,
		onCancel:  onCancel,
		keys:      newConfirmKeyMap(),
	}
}

func (d *ConfirmDialog) Show() {
	d.active = true
}

func (d *ConfirmDialog) Hide() {
	d.active = false
}

func (d *ConfirmDialog) IsActive() bool {
	return d.active
}

// Update consumes keys while the dialog is shown. Anything other than the
// confirm and cancel keys is swallowed.
func (d *ConfirmDialog) Update(msg tea.Msg) tea.Cmd {
	if !d.active {
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, d.keys.confirm):
			d.Hide()
			if d.onConfirm != nil {
				d.onConfirm()
			}
		case key.Matches(msg, d.keys.cancel):
			d.Hide()
			if d.onCancel != nil {
				d.onCancel()
			}
		}
	}

	return nil
}

// View renders the dialog, or nothing when hidden.
func (d *ConfirmDialog) View(s Styles, width int) string {
	if !d.active {
		return ""
	}

	if width > 60 {
		width = 60
	}

	content := s.DialogTitle.Render(d.title) + "\n"
	content += s.DialogMessage.Render(d.message) + "\n"
	content += s.DialogKeys.Render(fmt.Sprintf("%s %s • %s %s",
		d.keys.confirm.Help().Key, d.keys.confirm.Help().Desc,
		d.keys.cancel.Help().Key, d.keys.cancel.Help().Desc))

	return s.Dialog.Width(width).Render(content)
}
