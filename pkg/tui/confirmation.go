package tui

import (
	"strings"

	"SundaesOnDemand/pkg/logger"
	"SundaesOnDemand/pkg/order"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const receiptTimeFormat = "Jan 2, 2006 at 15:04"

// confirmationScreen places the order and offers to start a new one.
type confirmationScreen struct {
	state    *order.State
	setPhase func(order.Phase)
	log      *logger.Logger

	receipt *order.Receipt
	alert   *AlertBanner
	keys    confirmationKeyMap
}

func newConfirmationScreen(state *order.State, setPhase func(order.Phase), log *logger.Logger) *confirmationScreen {
	return &confirmationScreen{
		state:    state,
		setPhase: setPhase,
		log:      log,
		keys:     newConfirmationKeyMap(),
	}
}

// enter places the order and clears the state for the next one.
func (c *confirmationScreen) enter() tea.Cmd {
	c.alert = nil
	receipt, err := c.state.Place()
	if err != nil {
		c.receipt = nil
		c.alert = NewAlertBanner("", "")
		c.log.Error("place order: %v", err)
		return nil
	}
	c.receipt = receipt
	c.state.ResetOrder()
	c.log.Info("order %s placed, total %s", receipt.Number, formatCurrency(receipt.Totals.Grand()))
	return nil
}

func (c *confirmationScreen) keyMap() help.KeyMap {
	return c.keys
}

func (c *confirmationScreen) update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, c.keys.newOrder) {
		c.state.ResetOrder()
		c.receipt = nil
		c.setPhase(order.Entering)
	}
	return nil
}

func (c *confirmationScreen) view(s Styles, width int) string {
	var b strings.Builder

	if c.alert != nil {
		b.WriteString(c.alert.View(s, width))
		b.WriteString("\n\n")
	} else if c.receipt != nil {
		b.WriteString(s.Title.Render("Thank You!"))
		b.WriteString("\n")
		b.WriteString(s.Item.Render("Your order number is " + s.GrandTotal.Render(c.receipt.Number)))
		b.WriteString("\n")
		b.WriteString(s.Muted.Render("Placed " + c.receipt.PlacedAt.Format(receiptTimeFormat)))
		b.WriteString("\n\n")
		b.WriteString(s.Subtotal.Render("Scoops: " + formatCurrency(c.receipt.Totals.Scoops)))
		b.WriteString("\n")
		b.WriteString(s.Subtotal.Render("Toppings: " + formatCurrency(c.receipt.Totals.Toppings)))
		b.WriteString("\n")
		b.WriteString(s.GrandTotal.Render("Total: " + formatCurrency(c.receipt.Totals.Grand())))
		b.WriteString("\n\n")
		b.WriteString(s.Muted.Render("As per our terms and conditions, nothing will happen now."))
		b.WriteString("\n\n")
	}

	b.WriteString(s.Button.Render("Create new order"))
	return b.String()
}
