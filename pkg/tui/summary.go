package tui

import (
	"fmt"
	"sort"
	"strings"

	"SundaesOnDemand/pkg/config"
	"SundaesOnDemand/pkg/logger"
	"SundaesOnDemand/pkg/order"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
)

// summaryScreen reviews the order and asks for agreement to the terms.
type summaryScreen struct {
	state    *order.State
	setPhase func(order.Phase)
	log      *logger.Logger
	cfg      *config.Config

	agreed    bool
	showTerms bool
	alert     *AlertBanner
	keys      summaryKeyMap
}

func newSummaryScreen(cfg *config.Config, state *order.State, setPhase func(order.Phase), log *logger.Logger) *summaryScreen {
	return &summaryScreen{
		state:    state,
		setPhase: setPhase,
		log:      log,
		cfg:      cfg,
		keys:     newSummaryKeyMap(),
	}
}

func (s *summaryScreen) enter() tea.Cmd {
	s.agreed = false
	s.showTerms = false
	s.alert = nil
	return nil
}

func (s *summaryScreen) keyMap() help.KeyMap {
	return s.keys
}

func (s *summaryScreen) update(m tea.Msg) tea.Cmd {
	msg, ok := m.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(msg, s.keys.agree):
		s.agreed = !s.agreed
		if s.agreed {
			s.alert = nil
		}
	case key.Matches(msg, s.keys.terms):
		s.showTerms = !s.showTerms
	case key.Matches(msg, s.keys.confirm):
		if !s.agreed {
			s.alert = NewAlertBanner("Please agree to the Terms and Conditions to confirm your order.", "warning")
			return nil
		}
		s.log.Info("order confirmed: %d scoop(s), %d topping(s)",
			s.state.ItemCount(order.Scoops), s.state.ItemCount(order.Toppings))
		s.setPhase(order.Completed)
	case key.Matches(msg, s.keys.back):
		s.setPhase(order.Entering)
	}
	return nil
}

// lines lists "count name" for every chosen item, in catalog order, followed
// by any names the catalog does not know about.
func (s *summaryScreen) lines(category order.Category) []string {
	counts := s.state.Counts()
	var m map[string]int
	if category == order.Scoops {
		m = counts.Scoops
	} else {
		m = counts.Toppings
	}

	var out []string
	seen := make(map[string]bool, len(m))
	for _, opt := range s.cfg.Options(category) {
		seen[opt.Name] = true
		if n := m[opt.Name]; n != 0 {
			out = append(out, fmt.Sprintf("%d %s", n, opt.Name))
		}
	}
	var extra []string
	for name, n := range m {
		if !seen[name] && n != 0 {
			extra = append(extra, fmt.Sprintf("%d %s", n, name))
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}

func (s *summaryScreen) view(st Styles, width int) string {
	var b strings.Builder
	totals := s.state.Totals()

	b.WriteString(st.Title.Render("Order Summary"))
	b.WriteString("\n")

	if s.alert != nil {
		b.WriteString(s.alert.View(st, width))
		b.WriteString("\n\n")
	}

	b.WriteString(st.Section.Render("Scoops: " + formatCurrency(totals.Scoops)))
	b.WriteString("\n")
	for _, line := range s.lines(order.Scoops) {
		b.WriteString(st.Item.Render("  • " + line))
		b.WriteString("\n")
	}

	if s.state.ItemCount(order.Toppings) > 0 {
		b.WriteString("\n")
		b.WriteString(st.Section.Render("Toppings: " + formatCurrency(totals.Toppings)))
		b.WriteString("\n")
		for _, line := range s.lines(order.Toppings) {
			b.WriteString(st.Item.Render("  • " + line))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(st.GrandTotal.Render("Total: " + formatCurrency(totals.Grand())))
	b.WriteString("\n\n")

	mark := " "
	if s.agreed {
		mark = "x"
	}
	b.WriteString(fmt.Sprintf("[%s] I agree to %s", mark, st.Section.Render("Terms and Conditions")))
	b.WriteString("\n")

	if s.showTerms {
		b.WriteString(st.Popover.Render(wordwrap.String(s.cfg.TermsText, width-4)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if s.agreed {
		b.WriteString(st.Button.Render("Confirm order"))
	} else {
		b.WriteString(st.ButtonDisabled.Render("Confirm order"))
	}

	return b.String()
}
