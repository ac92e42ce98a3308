package tui

import (
	"fmt"
	"strconv"
	"strings"

	"SundaesOnDemand/pkg/config"
	"SundaesOnDemand/pkg/logger"
	"SundaesOnDemand/pkg/order"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
)

// entryRow is one selectable scoop or topping. Scoop rows carry a count
// input; topping rows are checkboxes.
type entryRow struct {
	category order.Category
	option   config.ItemOption
	input    textinput.Model
	invalid  bool
}

// entryScreen lets the user pick scoop counts and toppings.
type entryScreen struct {
	state     *order.State
	setPhase  func(order.Phase)
	log       *logger.Logger
	maxScoops int

	rows   []entryRow
	cursor int
	dialog *ConfirmDialog
	alert  *AlertBanner
	keys   entryKeyMap

	// blink is the cursor command from the last focus change
	blink tea.Cmd
}

func newEntryScreen(cfg *config.Config, state *order.State, setPhase func(order.Phase), log *logger.Logger) *entryScreen {
	e := &entryScreen{
		state:     state,
		setPhase:  setPhase,
		log:       log,
		maxScoops: cfg.MaxScoopsPerFlavor,
		keys:      newEntryKeyMap(),
	}

	for _, opt := range cfg.Scoops {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = "0"
		ti.CharLimit = len(strconv.Itoa(cfg.MaxScoopsPerFlavor))
		ti.Width = ti.CharLimit + 1
		e.rows = append(e.rows, entryRow{category: order.Scoops, option: opt, input: ti})
	}
	for _, opt := range cfg.Toppings {
		e.rows = append(e.rows, entryRow{category: order.Toppings, option: opt})
	}

	e.dialog = NewConfirmDialog(
		"Start over?",
		"Every scoop and topping you picked will be cleared.",
		func() {
			e.state.ResetOrder()
			e.log.Info("order reset from entry screen")
			e.blink = e.enter()
		},
		nil,
	)

	return e
}

// enter re-syncs the inputs with the order state.
func (e *entryScreen) enter() tea.Cmd {
	e.alert = nil
	e.dialog.Hide()
	for i := range e.rows {
		row := &e.rows[i]
		row.invalid = false
		if row.category != order.Scoops {
			continue
		}
		if n := e.state.Count(order.Scoops, row.option.Name); n != 0 {
			row.input.SetValue(strconv.Itoa(n))
		} else {
			row.input.SetValue("")
		}
		row.input.CursorEnd()
	}
	e.focus(0)
	return e.takeBlink()
}

func (e *entryScreen) keyMap() help.KeyMap {
	return e.keys
}

func (e *entryScreen) focus(i int) {
	if len(e.rows) == 0 {
		e.cursor = 0
		return
	}
	if i < 0 {
		i = len(e.rows) - 1
	}
	if i >= len(e.rows) {
		i = 0
	}
	if e.cursor < len(e.rows) {
		e.rows[e.cursor].input.Blur()
	}
	e.cursor = i
	if e.rows[i].category == order.Scoops {
		e.blink = e.rows[i].input.Focus()
	}
}

func (e *entryScreen) takeBlink() tea.Cmd {
	cmd := e.blink
	e.blink = nil
	return cmd
}

func (e *entryScreen) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		cmd = e.handleKey(keyMsg)
	} else if len(e.rows) > 0 && e.rows[e.cursor].category == order.Scoops {
		row := &e.rows[e.cursor]
		row.input, cmd = row.input.Update(msg)
	}
	return tea.Batch(cmd, e.takeBlink())
}

func (e *entryScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	if e.dialog.IsActive() {
		return e.dialog.Update(msg)
	}

	switch {
	case key.Matches(msg, e.keys.up):
		e.focus(e.cursor - 1)
		return nil
	case key.Matches(msg, e.keys.down):
		e.focus(e.cursor + 1)
		return nil
	case key.Matches(msg, e.keys.reset):
		e.dialog.Show()
		return nil
	case key.Matches(msg, e.keys.order):
		e.submit()
		return nil
	}

	if len(e.rows) == 0 {
		return nil
	}
	row := &e.rows[e.cursor]

	if row.category == order.Toppings {
		if key.Matches(msg, e.keys.toggle) {
			e.toggleTopping(row)
		}
		return nil
	}

	switch {
	case key.Matches(msg, e.keys.increment):
		e.stepScoop(row, 1)
		return nil
	case key.Matches(msg, e.keys.decrement):
		e.stepScoop(row, -1)
		return nil
	}

	if (msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace) && !allDigits(msg.Runes) {
		return nil
	}

	before := row.input.Value()
	var cmd tea.Cmd
	row.input, cmd = row.input.Update(msg)
	if row.input.Value() != before {
		e.applyScoopInput(row)
	}
	return cmd
}

// applyScoopInput stores what was typed. An invalid entry is flagged and
// stored as zero.
func (e *entryScreen) applyScoopInput(row *entryRow) {
	n, ok := parseScoopCount(row.input.Value(), e.maxScoops)
	row.invalid = !ok
	if !ok {
		e.log.Debug("invalid scoop count %q for %s", row.input.Value(), row.option.Name)
	} else {
		e.log.Debug("scoops %s = %d", row.option.Name, n)
	}
	e.state.UpdateItemCount(row.option.Name, n, order.Scoops)
	e.refreshAlert()
}

func (e *entryScreen) stepScoop(row *entryRow, delta int) {
	n, ok := parseScoopCount(row.input.Value(), e.maxScoops)
	if !ok {
		n = 0
	}
	n += delta
	if n < 0 || n > e.maxScoops {
		return
	}
	row.input.SetValue(strconv.Itoa(n))
	row.input.CursorEnd()
	e.applyScoopInput(row)
}

func (e *entryScreen) toggleTopping(row *entryRow) {
	next := 1
	if e.state.Count(order.Toppings, row.option.Name) > 0 {
		next = 0
	}
	e.state.UpdateItemCount(row.option.Name, next, order.Toppings)
	e.log.Debug("toppings %s = %d", row.option.Name, next)
}

func (e *entryScreen) refreshAlert() {
	for _, row := range e.rows {
		if row.invalid {
			e.alert = NewAlertBanner(
				fmt.Sprintf("Scoop counts must be whole numbers from 0 to %d.", e.maxScoops),
				"warning",
			)
			return
		}
	}
	e.alert = nil
}

func (e *entryScreen) canOrder() bool {
	return e.state.ItemCount(order.Scoops) > 0
}

func (e *entryScreen) submit() {
	if !e.canOrder() {
		e.alert = NewAlertBanner("Choose at least one scoop to order a sundae.", "info")
		return
	}
	e.setPhase(order.Reviewing)
}

func (e *entryScreen) view(s Styles, width int) string {
	var b strings.Builder
	prices := e.state.Prices()
	totals := e.state.Totals()

	b.WriteString(s.Title.Render("Design Your Sundae!"))
	b.WriteString("\n")

	if e.alert != nil {
		b.WriteString(e.alert.View(s, width))
		b.WriteString("\n\n")
	}

	for _, category := range order.Categories {
		b.WriteString(s.Section.Render(fmt.Sprintf("%s (%s each)",
			categoryTitle(category), formatCurrency(prices.For(category)))))
		b.WriteString("\n")
		for i, row := range e.rows {
			if row.category != category {
				continue
			}
			b.WriteString(e.renderRow(s, i, row))
			b.WriteString("\n")
		}
		b.WriteString(s.Subtotal.Render(fmt.Sprintf("%s total: %s",
			categoryTitle(category), formatCurrency(totalFor(totals, category)))))
		b.WriteString("\n\n")
	}

	b.WriteString(s.GrandTotal.Render("Grand total: " + formatCurrency(totals.Grand())))
	b.WriteString("\n\n")

	if e.canOrder() {
		b.WriteString(s.Button.Render("Order Sundae!"))
	} else {
		b.WriteString(s.ButtonDisabled.Render("Order Sundae!"))
	}

	if e.dialog.IsActive() {
		b.WriteString("\n\n")
		b.WriteString(e.dialog.View(s, width))
	}

	return b.String()
}

func (e *entryScreen) renderRow(s Styles, i int, row entryRow) string {
	pointer := "  "
	if i == e.cursor {
		pointer = s.Cursor.Render("> ")
	}

	var control string
	if row.category == order.Scoops {
		value := row.input.View()
		control = "[" + value + "]"
		if row.invalid {
			control = s.Invalid.Render(control)
		}
	} else {
		mark := " "
		if e.state.Count(order.Toppings, row.option.Name) > 0 {
			mark = "x"
		}
		control = "[" + mark + "]"
	}

	return pointer + control + " " + s.Item.Render(row.option.Name)
}

func categoryTitle(c order.Category) string {
	switch c {
	case order.Scoops:
		return "Scoops"
	case order.Toppings:
		return "Toppings"
	}
	return string(c)
}

func totalFor(t order.Totals, c order.Category) decimal.Decimal {
	if c == order.Toppings {
		return t.Toppings
	}
	return t.Scoops
}
