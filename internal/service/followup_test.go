package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardpath/backend/internal/model"
)

func broadRecommendations() []model.ScoredCard {
	return []model.ScoredCard{
		{CardName: "Free A", AnnualFee: 0, BestFor: model.TagList{"cashback"}},
		{CardName: "Free B", AnnualFee: 0, BestFor: model.TagList{"amazon"}},
		{CardName: "Paid C", AnnualFee: 700, BestFor: model.TagList{"travel"}},
		{CardName: "Paid D", AnnualFee: 1050, BestFor: model.TagList{"adnoc"}},
	}
}

func TestGenerateFollowUpQuestions_SuppressedForSmallSets(t *testing.T) {
	t.Parallel()

	svc := NewRecommendationService(nil)
	recs := broadRecommendations()[:3]

	got := svc.GenerateFollowUpQuestions(recs, model.UserProfile{})

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGenerateFollowUpQuestions_AnnualFeeSplit(t *testing.T) {
	t.Parallel()

	svc := NewRecommendationService(nil)

	got := svc.GenerateFollowUpQuestions(broadRecommendations(), model.UserProfile{})

	require.NotEmpty(t, got)
	q := got[0]
	assert.Equal(t, model.FilterAnnualFee, q.FilterType)
	assert.Equal(t, "Do you prefer cards with no annual fee, or are you open to paying a fee for better benefits?", q.Question)
	assert.Equal(t, []string{"No annual fee preferred", "Open to annual fees for better rewards"}, q.Options)
}

func TestGenerateFollowUpQuestions_NoFeeSplitWithoutBothSides(t *testing.T) {
	t.Parallel()

	svc := NewRecommendationService(nil)
	recs := []model.ScoredCard{
		{CardName: "Free A", AnnualFee: 0},
		{CardName: "Free B", AnnualFee: 0},
		{CardName: "Free C", AnnualFee: 0},
		{CardName: "Paid D", AnnualFee: 700},
	}

	got := svc.GenerateFollowUpQuestions(recs, model.UserProfile{})

	for _, q := range got {
		assert.NotEqual(t, model.FilterAnnualFee, q.FilterType)
	}
}

func TestGenerateFollowUpQuestions_SpendingFocusPicksTopCategory(t *testing.T) {
	t.Parallel()

	svc := NewRecommendationService(nil)
	profile := model.UserProfile{
		Spend: map[string]float64{
			"online": 2500, "dining": 1200, "groceries": 900,
		},
	}
	// Only free cards so the fee question stays silent and spending focus
	// comes first.
	recs := []model.ScoredCard{
		{CardName: "A", AnnualFee: 0},
		{CardName: "B", AnnualFee: 0},
		{CardName: "C", AnnualFee: 0},
		{CardName: "D", AnnualFee: 0},
	}

	got := svc.GenerateFollowUpQuestions(recs, profile)

	require.NotEmpty(t, got)
	q := got[0]
	assert.Equal(t, model.FilterSpendingFocus, q.FilterType)
	assert.Equal(t, "online", q.Category)
	assert.Equal(t, "Your highest spending is on online (2,500 AED/month). Do you want a card optimized for this category?", q.Question)
	assert.Equal(t, []string{"Yes, optimize for online", "No, I want balanced rewards"}, q.Options)
}

func TestGenerateFollowUpQuestions_SpendingFocusNeedsTwoHighCategories(t *testing.T) {
	t.Parallel()

	svc := NewRecommendationService(nil)
	profile := model.UserProfile{
		Spend: map[string]float64{"online": 2500, "dining": 400},
	}
	recs := []model.ScoredCard{
		{CardName: "A"}, {CardName: "B"}, {CardName: "C"}, {CardName: "D"},
	}

	got := svc.GenerateFollowUpQuestions(recs, profile)

	for _, q := range got {
		assert.NotEqual(t, model.FilterSpendingFocus, q.FilterType)
	}
}

func TestGenerateFollowUpQuestions_BrandLoyalty(t *testing.T) {
	t.Parallel()

	svc := NewRecommendationService(nil)
	recs := []model.ScoredCard{
		{CardName: "A", BestFor: model.TagList{"amazon"}},
		{CardName: "B", BestFor: model.TagList{"carrefour"}},
		{CardName: "C", BestFor: model.TagList{"travel"}},
		{CardName: "D", BestFor: model.TagList{"cashback"}},
	}

	got := svc.GenerateFollowUpQuestions(recs, model.UserProfile{})

	require.NotEmpty(t, got)
	assert.Equal(t, model.FilterBrandLoyalty, got[0].FilterType)
}

func TestGenerateFollowUpQuestions_CappedAtTwo(t *testing.T) {
	t.Parallel()

	svc := NewRecommendationService(nil)
	// Qualifies for the fee split, spending focus, brand loyalty and
	// premium benefits at once.
	recs := []model.ScoredCard{
		{CardName: "A", AnnualFee: 0, BestFor: model.TagList{"amazon"}},
		{CardName: "B", AnnualFee: 0, BestFor: model.TagList{"noon"}},
		{CardName: "C", AnnualFee: 700, BestFor: model.TagList{"travel"}},
		{CardName: "D", AnnualFee: 1050, BestFor: model.TagList{"premium"}},
	}
	profile := model.UserProfile{
		Spend: map[string]float64{"online": 2500, "dining": 1500},
	}

	got := svc.GenerateFollowUpQuestions(recs, profile)

	require.Len(t, got, 2)
	assert.Equal(t, model.FilterAnnualFee, got[0].FilterType)
	assert.Equal(t, model.FilterSpendingFocus, got[1].FilterType)
}

func TestGenerateFollowUpQuestions_PremiumBenefits(t *testing.T) {
	t.Parallel()

	svc := NewRecommendationService(nil)
	recs := []model.ScoredCard{
		{CardName: "A", AnnualFee: 0},
		{CardName: "B", AnnualFee: 100},
		{CardName: "C", AnnualFee: 700},
		{CardName: "D", AnnualFee: 1050},
	}

	got := svc.GenerateFollowUpQuestions(recs, model.UserProfile{})

	require.NotEmpty(t, got)
	found := false
	for _, q := range got {
		if q.FilterType == model.FilterPremiumBenefits {
			found = true
		}
	}
	assert.True(t, found)
}
