package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestStateTotalsScenario(t *testing.T) {
	s := NewState(PriceTable{Scoops: dec("2"), Toppings: dec("1.5")})
	s.UpdateItemCount("Vanilla", 2, Scoops)
	s.UpdateItemCount("Chocolate", 1, Scoops)
	s.UpdateItemCount("Gummi Bears", 1, Toppings)

	totals := s.Totals()
	assert.True(t, dec("6").Equal(totals.Scoops), "scoops = %s", totals.Scoops)
	assert.True(t, dec("1.5").Equal(totals.Toppings), "toppings = %s", totals.Toppings)
	assert.True(t, dec("7.5").Equal(totals.Grand()), "grand = %s", totals.Grand())
}

func TestUpdateItemCountOverwrites(t *testing.T) {
	s := NewState(DefaultPrices())
	s.UpdateItemCount("Chocolate", 2, Scoops)
	s.UpdateItemCount("Chocolate", 5, Scoops)

	counts := s.Counts()
	assert.Equal(t, map[string]int{"Chocolate": 5}, counts.Scoops)
	assert.Empty(t, counts.Toppings)
}

func TestUpdateItemCountLeavesOtherEntries(t *testing.T) {
	s := NewState(DefaultPrices())
	s.UpdateItemCount("Vanilla", 1, Scoops)
	s.UpdateItemCount("Cherries", 1, Toppings)
	s.UpdateItemCount("Mint chip", 3, Scoops)

	assert.Equal(t, 1, s.Count(Scoops, "Vanilla"))
	assert.Equal(t, 3, s.Count(Scoops, "Mint chip"))
	assert.Equal(t, 1, s.Count(Toppings, "Cherries"))
	assert.Equal(t, 0, s.Count(Toppings, "Hot fudge"))
}

func TestTotalsFollowCountsInAnyOrder(t *testing.T) {
	type update struct {
		name     string
		count    int
		category Category
	}
	tests := []struct {
		name         string
		updates      []update
		wantScoops   string
		wantToppings string
	}{
		{"empty", nil, "0", "0"},
		{
			"last write wins",
			[]update{{"Vanilla", 4, Scoops}, {"Vanilla", 1, Scoops}},
			"2", "0",
		},
		{
			"interleaved categories",
			[]update{{"M&Ms", 1, Toppings}, {"Vanilla", 2, Scoops}, {"Hot fudge", 1, Toppings}, {"Chocolate", 3, Scoops}},
			"10", "3",
		},
		{
			"reverse order same result",
			[]update{{"Chocolate", 3, Scoops}, {"Hot fudge", 1, Toppings}, {"Vanilla", 2, Scoops}, {"M&Ms", 1, Toppings}},
			"10", "3",
		},
		{
			"zeroed item contributes nothing",
			[]update{{"Vanilla", 2, Scoops}, {"Vanilla", 0, Scoops}},
			"0", "0",
		},
		{
			"negative counts are not rejected",
			[]update{{"Vanilla", 2, Scoops}, {"Chocolate", -1, Scoops}},
			"2", "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(DefaultPrices())
			for _, u := range tt.updates {
				s.UpdateItemCount(u.name, u.count, u.category)
			}
			totals := s.Totals()
			assert.True(t, dec(tt.wantScoops).Equal(totals.Scoops), "scoops = %s", totals.Scoops)
			assert.True(t, dec(tt.wantToppings).Equal(totals.Toppings), "toppings = %s", totals.Toppings)
		})
	}
}

func TestResetOrderClearsEverything(t *testing.T) {
	s := NewState(DefaultPrices())
	s.UpdateItemCount("Vanilla", 7, Scoops)
	s.UpdateItemCount("Cherries", 1, Toppings)

	s.ResetOrder()

	totals := s.Totals()
	assert.True(t, totals.Scoops.IsZero())
	assert.True(t, totals.Toppings.IsZero())
	assert.Empty(t, s.Counts().Scoops)
	assert.Empty(t, s.Counts().Toppings)
}

func TestUnknownCategoryIsIgnored(t *testing.T) {
	s := NewState(DefaultPrices())
	s.UpdateItemCount("Sprinkles", 4, Category("sauces"))

	assert.Equal(t, 0, s.Count(Category("sauces"), "Sprinkles"))
	assert.True(t, s.Totals().Grand().IsZero())
}

func TestCountsReturnsCopy(t *testing.T) {
	s := NewState(DefaultPrices())
	s.UpdateItemCount("Vanilla", 1, Scoops)

	counts := s.Counts()
	counts.Scoops["Vanilla"] = 9
	counts.Toppings["Cherries"] = 1

	assert.Equal(t, 1, s.Count(Scoops, "Vanilla"))
	assert.Equal(t, 0, s.Count(Toppings, "Cherries"))
}

func TestPriceTableFor(t *testing.T) {
	p := DefaultPrices()
	assert.True(t, dec("2").Equal(p.For(Scoops)))
	assert.True(t, dec("1.5").Equal(p.For(Toppings)))
	assert.True(t, p.For(Category("other")).IsZero())
}

func TestPlaceSnapshotsOrder(t *testing.T) {
	s := NewState(DefaultPrices())
	s.UpdateItemCount("Vanilla", 2, Scoops)
	s.UpdateItemCount("Gummi Bears", 1, Toppings)

	r, err := s.Place()
	require.NoError(t, err)
	require.NotNil(t, r)

	assert.Len(t, r.Number, 10)
	assert.Equal(t, 2, r.Counts.Scoops["Vanilla"])
	assert.True(t, dec("5.5").Equal(r.Totals.Grand()))

	s.ResetOrder()
	assert.Equal(t, 2, r.Counts.Scoops["Vanilla"], "receipt must not change after reset")
	assert.True(t, dec("5.5").Equal(r.Totals.Grand()))

	other, err := s.Place()
	require.NoError(t, err)
	assert.NotEqual(t, r.Number, other.Number)
}
