package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardpath/backend/internal/model"
)

func TestScoreByGoals_NoGoalsReturnsNothing(t *testing.T) {
	t.Parallel()

	svc := NewRecommendationService(nil)
	snap := snapshotWith(cashbackCard(), travelCard())

	got := svc.ScoreByGoals(snap, model.UserProfile{Salary: 20000})

	assert.Empty(t, got)
}

func TestScoreByGoals_SalaryGate(t *testing.T) {
	t.Parallel()

	svc := NewRecommendationService(nil)
	snap := snapshotWith(cashbackCard(), travelCard())
	profile := model.UserProfile{
		Salary: 10000,
		Goals:  model.GoalList{"travel", "cashback"},
	}

	got := svc.ScoreByGoals(snap, profile)

	require.Len(t, got, 1)
	assert.Equal(t, "FAB Cashback Credit Card", got[0].CardName)
}

func TestScoreByGoals_BaseAndPerGoalScore(t *testing.T) {
	t.Parallel()

	svc := NewRecommendationService(nil)
	snap := snapshotWith(travelCard())
	profile := model.UserProfile{
		Salary: 20000,
		Goals:  model.GoalList{"travel"},
	}

	got := svc.ScoreByGoals(snap, profile)

	require.Len(t, got, 1)
	// 0.5 base + 0.15 for one matched goal, no other boost applies.
	assert.Equal(t, 0.65, got[0].FitScore)
	assert.Equal(t, []string{"travel"}, got[0].MatchedGoals)
	assert.Equal(t, 1, got[0].TotalGoals)
	assert.Equal(t, model.RecommendationTypeGoal, got[0].RecommendationType)
}

func TestScoreByGoals_UnmatchedCardsExcluded(t *testing.T) {
	t.Parallel()

	svc := NewRecommendationService(nil)
	snap := snapshotWith(cashbackCard(), amazonCard())
	profile := model.UserProfile{
		Salary: 20000,
		Goals:  model.GoalList{"airport_lounge"},
	}

	got := svc.ScoreByGoals(snap, profile)

	assert.Empty(t, got)
}

func TestScoreByGoals_SubstringGoalMatching(t *testing.T) {
	t.Parallel()

	svc := NewRecommendationService(nil)
	// "fee" is a substring of the "no_fee" tag; partial matches count.
	snap := snapshotWith(cashbackCard())
	profile := model.UserProfile{
		Salary: 20000,
		Goals:  model.GoalList{"fee"},
	}

	got := svc.ScoreByGoals(snap, profile)

	require.Len(t, got, 1)
	assert.Equal(t, []string{"fee"}, got[0].MatchedGoals)
}

func TestScoreByGoals_CustomMatcher(t *testing.T) {
	t.Parallel()

	svc := NewRecommendationService(exactMatcher{})
	snap := snapshotWith(cashbackCard())
	profile := model.UserProfile{
		Salary: 20000,
		Goals:  model.GoalList{"fee"},
	}

	// An exact matcher rejects what the substring matcher accepts.
	got := svc.ScoreByGoals(snap, profile)

	assert.Empty(t, got)
}

type exactMatcher struct{}

func (exactMatcher) Matches(goal, tag string) bool { return goal == tag }

func TestScoreByGoals_OrderedByMatchCountThenScore(t *testing.T) {
	t.Parallel()

	svc := NewRecommendationService(nil)
	// amazonCard matches both goals, travelCard only one.
	snap := snapshotWith(travelCard(), amazonCard())
	profile := model.UserProfile{
		Salary: 20000,
		Goals:  model.GoalList{"online", "cashback", "miles"},
	}

	got := svc.ScoreByGoals(snap, profile)

	require.Len(t, got, 2)
	assert.Equal(t, "Amazon.ae Credit Card", got[0].CardName)
	assert.Equal(t, "Etihad Guest Platinum Card", got[1].CardName)
	assert.Greater(t, len(got[0].MatchedGoals), len(got[1].MatchedGoals))
}

func TestScoreByGoals_TruncatesToTopFive(t *testing.T) {
	t.Parallel()

	svc := NewRecommendationService(nil)
	cards := make([]model.Card, 0, 7)
	for i := 0; i < 7; i++ {
		card := cashbackCard()
		card.Name = fmt.Sprintf("Cashback Card %d", i)
		cards = append(cards, card)
	}
	snap := snapshotWith(cards...)
	profile := model.UserProfile{
		Salary: 20000,
		Goals:  model.GoalList{"cashback"},
	}

	got := svc.ScoreByGoals(snap, profile)

	assert.Len(t, got, 5)
}

func TestScoreByGoals_ScoreNeverExceedsOne(t *testing.T) {
	t.Parallel()

	svc := NewRecommendationService(nil)
	snap := snapshotWith(amazonCard())
	snap.Services = amazonCoBrandMapping()
	// Stacks per-goal bonuses, the online tier, the online alignment rule,
	// the zero-fee bonus and a heavy co-brand tie.
	profile := model.UserProfile{
		Salary: 20000,
		Spend:  map[string]float64{"online": 3000},
		Goals:  model.GoalList{"online", "cashback", "no_fee", "amazon"},
		Lifestyle: map[string][]model.LifestyleUsage{
			"online_shopping": {{Service: "amazon", UsagePercent: 90}},
		},
	}

	got := svc.ScoreByGoals(snap, profile)

	require.Len(t, got, 1)
	assert.Equal(t, 1.0, got[0].FitScore)
}

func TestScoreByGoals_CoBrandLifestyleBoost(t *testing.T) {
	t.Parallel()

	svc := NewRecommendationService(nil)
	snap := snapshotWith(amazonCard())
	snap.Services = amazonCoBrandMapping()
	profile := model.UserProfile{
		Salary: 20000,
		Goals:  model.GoalList{"online"},
		Lifestyle: map[string][]model.LifestyleUsage{
			"online_shopping": {{Service: "amazon", UsagePercent: 80}},
		},
	}

	got := svc.ScoreByGoals(snap, profile)

	require.Len(t, got, 1)
	// 0.5 base + 0.15 goal + 0.05 zero fee + 0.3 * 0.8 co-brand.
	assert.Equal(t, 0.94, got[0].FitScore)
	assert.Contains(t, got[0].Reasons, "Perfect for Amazon users")
}

func TestScoreByGoals_EntryLevelBoost(t *testing.T) {
	t.Parallel()

	svc := NewRecommendationService(nil)
	snap := snapshotWith(cashbackCard())
	profile := model.UserProfile{
		Salary: 5500,
		Goals:  model.GoalList{"no_fee"},
	}

	got := svc.ScoreByGoals(snap, profile)

	require.Len(t, got, 1)
	// 0.5 base + 0.15 goal + 0.05 zero fee + 0.15 entry-level.
	assert.Equal(t, 0.85, got[0].FitScore)
}

func TestScoreByGoals_PremiumBoostNeedsSalary(t *testing.T) {
	t.Parallel()

	svc := NewRecommendationService(nil)
	snap := snapshotWith(travelCard())

	lowSalary := model.UserProfile{Salary: 30000, Goals: model.GoalList{"premium"}}
	highSalary := model.UserProfile{Salary: 60000, Goals: model.GoalList{"premium"}}

	low := svc.ScoreByGoals(snap, lowSalary)
	high := svc.ScoreByGoals(snap, highSalary)

	require.Len(t, low, 1)
	require.Len(t, high, 1)
	assert.Equal(t, 0.65, low[0].FitScore)
	assert.Equal(t, 0.9, high[0].FitScore)
}

func TestScoreByGoals_DiningAlignmentStacks(t *testing.T) {
	t.Parallel()

	svc := NewRecommendationService(nil)
	card := cashbackCard()
	card.Rewards["dining"] = 5.0
	snap := snapshotWith(card)

	quiet := model.UserProfile{Salary: 20000, Goals: model.GoalList{"cashback"}}
	hungry := model.UserProfile{
		Salary: 20000,
		Spend:  map[string]float64{"dining": 3500},
		Goals:  model.GoalList{"cashback", "dining"},
	}

	base := svc.ScoreByGoals(snap, quiet)
	aligned := svc.ScoreByGoals(snap, hungry)

	require.Len(t, base, 1)
	require.Len(t, aligned, 1)
	assert.Greater(t, aligned[0].FitScore, base[0].FitScore)
}

func TestTitleCaseService(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Amazon Fresh", titleCaseService("amazon_fresh"))
	assert.Equal(t, "Careem", titleCaseService("careem"))
}
