package service

// Scoring policy. Every heuristic boost lives here as a named constant so
// each rule can be audited and unit-tested in isolation rather than hunted
// down as inline literals.

// Shared baselines and caps.
const (
	baseGoalScore     = 0.5  // starting score for a card with ≥1 matched goal
	perGoalBonus      = 0.15 // added per matched goal
	baseSpendingScore = 0.5  // starting score for spend-based ranking
	maxFitScore       = 1.0
)

// Lifestyle service matching.
const (
	coBrandBoost   = 0.3  // scaled by usage share of the matched service
	partnerBoost   = 0.15 // scaled by usage share
	zeroFeeBonus   = 0.05
	highUsageBoost = 0.2 // dominant co-brand service usage (≥50%)
)

// Goal-based boosts.
const (
	intlTravelGoalBoost     = 0.2
	transportGoalBoost      = 0.15
	onlineGoalBoostStrong   = 0.25 // online reward rate ≥5%
	onlineGoalBoostModerate = 0.15 // online reward rate ≥3%
	entertainmentGoalBoost  = 0.2
	premiumGoalBoost        = 0.25
	onlineAlignmentBoost    = 0.3 // stacks with onlineGoalBoost* on purpose
	diningAlignmentBoost    = 0.3
	entryLevelGoalBoost     = 0.15
)

// Spending-based boosts.
const (
	highOnlineSpendBoost   = 0.2
	intlTravelSpendBoost   = 0.15
	transportSpendBoost    = 0.1
	entertainmentTagBoost  = 0.1
	entryLevelSpendBoost   = 0.1
	flatRateMiscBonus      = 0.25
	spendWeightFactor      = 0.2  // spend-share × (rate/5) × this
	rateNormalizer         = 5.0  // reward rates are scaled against 5%
	goalAlignmentPerMatch  = 0.1
	goalAlignmentCap       = 0.15
	mergedTopChoiceBoost   = 0.1
)

// Trigger thresholds (monthly AED unless noted).
const (
	intlTravelSpendThreshold   = 2000.0
	transportSpendThreshold    = 800.0
	onlineSpendThreshold       = 1500.0
	onlineAlignmentThreshold   = 2000.0
	diningAlignmentThreshold   = 3000.0
	entertainmentSpendTotal    = 2000.0
	flatRateMiscShareThreshold = 0.3
	highUsageShareThreshold    = 50 // percent

	premiumSalaryThreshold    = 50000
	entrySalaryThreshold      = 6000
	entryMinSalaryThreshold   = 5000
	premiumFeeThreshold       = 1000
	premiumFilterFeeThreshold = 500   // fee above which a card counts as premium for follow-ups
	highSpendCategoryMonthly  = 1000.0 // spend that makes a category worth a follow-up

	onlineRateStrong    = 5.0
	onlineRateModerate  = 3.0
	diningRateThreshold = 3.0
	intlRateGoal        = 2.0
	intlRateSpend       = 2.5
	flatRateMinGeneral  = 2.0
)

// Tag groups referenced by multiple rules.
var (
	transportGoals      = []string{"transport", "careem", "nol"}
	transportTags       = []string{"careem", "transport", "nol", "salik"}
	entertainmentTags   = []string{"entertainment", "cinema", "vox", "dubai_mall"}
	entertainmentSpendTags = []string{"entertainment", "cinema", "vox", "dubai_mall", "namshi"}
	premiumGoals        = []string{"premium", "luxury"}
	premiumTags         = []string{"premium", "elite", "signature"}
	premiumFilterTags   = []string{"premium", "airport_lounge", "concierge"}
	brandLoyaltyTags    = []string{"amazon", "noon", "carrefour", "lulu", "adnoc"}
)

// internationalSpecialtyNames flags cards whose branding alone implies
// strong international/foreign-spend positioning, independent of their
// listed reward rates.
var internationalSpecialtyNames = []string{"Amazon"}

func clampScore(score float64) float64 {
	if score > maxFitScore {
		return maxFitScore
	}
	if score < 0 {
		return 0
	}
	return score
}

// roundScore rounds a clamped fit score to two decimals for presentation.
func roundScore(score float64) float64 {
	return float64(int(clampScore(score)*100+0.5)) / 100
}
