// Package order holds the session state of a sundae order: item counts per
// category, the price table used to derive totals, and the screen phase.
package order

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrContextUnavailable is returned when a view is built without the order
// state or phase controller it depends on.
var ErrContextUnavailable = errors.New("order state must be created by the session before the views that use it")

// Category identifies a group of selectable items.
type Category string

const (
	Scoops   Category = "scoops"
	Toppings Category = "toppings"
)

// Categories lists every category in display order.
var Categories = []Category{Scoops, Toppings}

// OptionCounts maps item names to chosen quantities, per category.
// A missing key means a count of zero.
type OptionCounts struct {
	Scoops   map[string]int `json:"scoops"`
	Toppings map[string]int `json:"toppings"`
}

// PriceTable is the fixed per-item price of each category.
type PriceTable struct {
	Scoops   decimal.Decimal `json:"scoops"`
	Toppings decimal.Decimal `json:"toppings"`
}

// DefaultPrices returns the standard price table.
func DefaultPrices() PriceTable {
	return PriceTable{
		Scoops:   decimal.NewFromInt(2),
		Toppings: decimal.RequireFromString("1.5"),
	}
}

// For returns the price of a single item in the category.
func (p PriceTable) For(c Category) decimal.Decimal {
	switch c {
	case Scoops:
		return p.Scoops
	case Toppings:
		return p.Toppings
	}
	return decimal.Zero
}

// Totals is derived from the counts on every read.
type Totals struct {
	Scoops   decimal.Decimal
	Toppings decimal.Decimal
}

// Grand returns the sum of both category totals.
func (t Totals) Grand() decimal.Decimal {
	return t.Scoops.Add(t.Toppings)
}

// State is the single source of truth for an order in progress. It is owned
// by the session root and handed to views by pointer. It is not safe for
// concurrent use; the UI event loop is its only writer.
type State struct {
	counts OptionCounts
	prices PriceTable
}

// NewState returns an empty order priced with the given table.
func NewState(prices PriceTable) *State {
	s := &State{prices: prices}
	s.ResetOrder()
	return s
}

// UpdateItemCount sets the count for name in category, overwriting any
// previous value. The count is stored as given; callers validate input.
// An unknown category is ignored.
func (s *State) UpdateItemCount(name string, count int, category Category) {
	m := s.mapFor(category)
	if m == nil {
		return
	}
	m[name] = count
}

// ResetOrder discards every selection.
func (s *State) ResetOrder() {
	s.counts = OptionCounts{
		Scoops:   map[string]int{},
		Toppings: map[string]int{},
	}
}

// Totals computes sum(counts) * price for each category.
func (s *State) Totals() Totals {
	return Totals{
		Scoops:   s.total(Scoops),
		Toppings: s.total(Toppings),
	}
}

// Count returns the count for one item, zero when absent.
func (s *State) Count(category Category, name string) int {
	return s.mapFor(category)[name]
}

// ItemCount returns the number of items chosen in a category.
func (s *State) ItemCount(category Category) int {
	n := 0
	for _, c := range s.mapFor(category) {
		n += c
	}
	return n
}

// Counts returns a copy of the current counts.
func (s *State) Counts() OptionCounts {
	return OptionCounts{
		Scoops:   copyCounts(s.counts.Scoops),
		Toppings: copyCounts(s.counts.Toppings),
	}
}

// Prices returns the price table in use.
func (s *State) Prices() PriceTable {
	return s.prices
}

func (s *State) total(category Category) decimal.Decimal {
	return decimal.NewFromInt(int64(s.ItemCount(category))).Mul(s.prices.For(category))
}

func (s *State) mapFor(category Category) map[string]int {
	switch category {
	case Scoops:
		return s.counts.Scoops
	case Toppings:
		return s.counts.Toppings
	}
	return nil
}

func copyCounts(src map[string]int) map[string]int {
	dst := make(map[string]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
