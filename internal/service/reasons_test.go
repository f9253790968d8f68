package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardpath/backend/internal/model"
)

func TestGoalReasons_PerGoalTemplates(t *testing.T) {
	t.Parallel()

	card := travelCard()
	got := goalReasons(card, []string{"travel", "miles"}, "")

	require.Len(t, got, 4)
	assert.Equal(t, "Matches 'travel' - 3% on travel", got[0])
	assert.Equal(t, "Matches 'miles' - 3% on travel", got[1])
	assert.Equal(t, "Annual fee: 1050 AED", got[2])
	assert.Equal(t, "Meets 2 of your goals", got[3])
}

func TestGoalReasons_LifestyleMatchLeads(t *testing.T) {
	t.Parallel()

	got := goalReasons(amazonCard(), []string{"online"}, "Amazon")

	require.NotEmpty(t, got)
	assert.Equal(t, "Perfect for Amazon users", got[0])
	assert.Contains(t, got, "Matches 'online' - 6% online")
}

func TestGoalReasons_CappedAtFour(t *testing.T) {
	t.Parallel()

	card := travelCard()
	got := goalReasons(card, []string{"travel", "miles", "premium", "airport_lounge"}, "Etihad")

	assert.Len(t, got, 4)
}

func TestGoalReasons_NoFeeGoal(t *testing.T) {
	t.Parallel()

	got := goalReasons(cashbackCard(), []string{"no_fee"}, "")

	// A free card states the goal match but never an "Annual fee" line.
	assert.Equal(t, []string{"Matches 'no_fee' - zero annual fee"}, got)
}

func TestSpendingReasons_EarningsSortedBySpend(t *testing.T) {
	t.Parallel()

	profile := model.UserProfile{
		Spend: map[string]float64{"dining": 500, "online": 2000},
	}

	got := spendingReasons(amazonCard(), profile, nil)

	require.Len(t, got, 3)
	// 2000*12*6% = 1440; 500*12*1% = 60. Largest spend first.
	assert.Equal(t, "Earns 6% on online = 1440 AED/year", got[0])
	assert.Equal(t, "Earns 1% on dining = 60 AED/year", got[1])
	assert.Equal(t, "Zero annual fee - no cost to hold", got[2])
}

func TestSpendingReasons_LifestyleMatchesLead(t *testing.T) {
	t.Parallel()

	profile := model.UserProfile{
		Spend: map[string]float64{"online": 1000},
	}
	matches := []model.LifestyleMatch{
		{Type: "co_branded", Service: "amazon", Usage: 60, Benefit: "6% back on Amazon.ae purchases"},
		{Type: "high_usage", Service: "amazon_fresh", Usage: 70, Benefit: "You use Amazon Fresh 70% for groceries - enhanced rewards apply!"},
		{Type: "partner", Service: "careem", Usage: 50, Benefit: "Special benefits at careem"},
	}

	got := spendingReasons(amazonCard(), profile, matches)

	require.GreaterOrEqual(t, len(got), 2)
	// Only the first two matches are used; usage suffix applies to
	// co-branded but not high-usage benefits.
	assert.Equal(t, "6% back on Amazon.ae purchases (60% of your spending)", got[0])
	assert.Equal(t, "You use Amazon Fresh 70% for groceries - enhanced rewards apply!", got[1])
	assert.NotContains(t, got, "Special benefits at careem (50% of your spending)")
}

func TestSpendingReasons_FlatRateCoversMiscellaneous(t *testing.T) {
	t.Parallel()

	profile := model.UserProfile{
		Spend: map[string]float64{"miscellaneous": 1500},
	}

	got := spendingReasons(cashbackCard(), profile, nil)

	// 1500*12*2% = 360 on a uniform-rate schedule.
	assert.Contains(t, got, "Earns 2% on miscellaneous = 360 AED/year")
}

func TestSpendingReasons_CappedAtFour(t *testing.T) {
	t.Parallel()

	profile := model.UserProfile{
		Spend: map[string]float64{
			"groceries": 900, "fuel": 800, "dining": 700, "online": 600, "utilities": 500,
		},
	}

	got := spendingReasons(cashbackCard(), profile, nil)

	assert.Len(t, got, 4)
}
