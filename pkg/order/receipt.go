package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Receipt captures a placed order. It is taken before the state is reset so
// the confirmation screen can keep showing it.
type Receipt struct {
	Number   string
	Counts   OptionCounts
	Totals   Totals
	PlacedAt time.Time
}

// Place snapshots the current order under a freshly generated order number.
func (s *State) Place() (*Receipt, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("generate order number: %w", err)
	}
	return &Receipt{
		Number:   orderNumber(id),
		Counts:   s.Counts(),
		Totals:   s.Totals(),
		PlacedAt: time.Now(),
	}, nil
}

// orderNumber shortens a UUID to the first ten hex digits, upper-cased.
func orderNumber(id uuid.UUID) string {
	hex := strings.ReplaceAll(id.String(), "-", "")
	return strings.ToUpper(hex[:10])
}
