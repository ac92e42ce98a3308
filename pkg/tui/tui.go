// Package tui provides the terminal front end of the sundae ordering flow:
// an entry screen, an order summary and a confirmation screen, switched by
// the order phase.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"SundaesOnDemand/pkg/config"
	"SundaesOnDemand/pkg/logger"
	"SundaesOnDemand/pkg/order"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// screen is one step of the order flow.
type screen interface {
	// enter is called each time the screen becomes active.
	enter() tea.Cmd
	update(msg tea.Msg) tea.Cmd
	view(s Styles, width int) string
	keyMap() help.KeyMap
}

// Model is the root bubbletea model. It owns no order data; the state and
// phase controller are handed in by the session that created them.
type Model struct {
	cfg    *config.Config
	state  *order.State
	phases *order.PhaseController
	log    *logger.Logger

	styles Styles
	help   help.Model
	keys   globalKeyMap

	entry        *entryScreen
	summary      *summaryScreen
	confirmation *confirmationScreen

	// commands produced by phase changes, handed out on the next return
	pending []tea.Cmd

	width  int
	height int
}

// NewModel wires the three screens to the order state. It fails with
// order.ErrContextUnavailable when the state or phase controller is missing.
func NewModel(cfg *config.Config, state *order.State, phases *order.PhaseController, log *logger.Logger) (*Model, error) {
	if state == nil || phases == nil {
		return nil, order.ErrContextUnavailable
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if log == nil {
		log = logger.Nop()
	}

	m := &Model{
		cfg:    cfg,
		state:  state,
		phases: phases,
		log:    log,
		styles: NewStyles(cfg.UI.Theme),
		help:   help.New(),
		keys:   newGlobalKeyMap(),
		width:  80,
	}

	m.entry = newEntryScreen(cfg, state, m.setPhase, log)
	m.summary = newSummaryScreen(cfg, state, m.setPhase, log)
	m.confirmation = newConfirmationScreen(state, m.setPhase, log)

	m.pending = append(m.pending, m.activeScreen().enter())
	return m, nil
}

// setPhase is the transition callback given to every screen.
func (m *Model) setPhase(next order.Phase) {
	prev := m.phases.Phase()
	m.phases.SetPhase(next)
	m.log.Info("phase %s -> %s", prev, next)
	m.pending = append(m.pending, m.activeScreen().enter())
}

func (m *Model) takePending() tea.Cmd {
	cmds := m.pending
	m.pending = nil
	return tea.Batch(cmds...)
}

// activeScreen maps the current phase to its screen.
func (m *Model) activeScreen() screen {
	switch m.phases.Phase() {
	case order.Entering:
		return m.entry
	case order.Reviewing:
		return m.summary
	case order.Completed:
		return m.confirmation
	default:
		return m.entry
	}
}

func (m *Model) Init() tea.Cmd {
	return m.takePending()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			m.log.Info("quit requested in phase %s", m.phases.Phase())
			return m, tea.Quit
		case key.Matches(msg, m.keys.help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	// Keys and anything else (cursor blinks) go to the active screen.
	cmd := m.activeScreen().update(msg)
	return m, tea.Batch(cmd, m.takePending())
}

func (m *Model) View() string {
	width := contentWidth(m.width)
	active := m.activeScreen()

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(active.view(m.styles, width))
	b.WriteString("\n")

	if m.cfg.UI.ShowHelp {
		b.WriteString(m.styles.Help.Render(m.help.View(active.keyMap())))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m *Model) renderHeader() string {
	step, label := 1, "Build your sundae"
	switch m.phases.Phase() {
	case order.Reviewing:
		step, label = 2, "Review your order"
	case order.Completed:
		step, label = 3, "Order placed"
	}
	badge := m.styles.StepBadge.Render(fmt.Sprintf("%d/3", step))
	return badge + m.styles.Header.Render(m.cfg.ShopName+" · "+label)
}

// quitKeyFilter is a program-level filter that catches quit keys
// even if the model's Update somehow doesn't process them.
// It counts consecutive Ctrl+C presses and force-exits on the third.
func quitKeyFilter() func(tea.Model, tea.Msg) tea.Msg {
	ctrlCCount := 0
	return func(m tea.Model, msg tea.Msg) tea.Msg {
		if k, ok := msg.(tea.KeyMsg); ok {
			switch k.Type {
			case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyCtrlBackslash:
				ctrlCCount++
				if ctrlCCount >= 3 {
					fmt.Print("\033[?25h\033[?1049l")
					fmt.Fprintln(os.Stderr, "\nForce quit.")
					os.Exit(1)
				}
			default:
				ctrlCCount = 0
			}
		}
		return msg
	}
}

// Run starts the TUI with an optional context for cancellation.
func Run(m *Model, ctx ...context.Context) error {
	if m == nil {
		return order.ErrContextUnavailable
	}

	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithFilter(quitKeyFilter()),
	}
	if len(ctx) > 0 && ctx[0] != nil {
		opts = append(opts, tea.WithContext(ctx[0]))
	}

	_, err := tea.NewProgram(m, opts...).Run()
	return err
}
