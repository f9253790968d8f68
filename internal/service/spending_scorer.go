package service

import (
	"fmt"
	"sort"

	"github.com/cardpath/backend/internal/catalog"
	"github.com/cardpath/backend/internal/model"
)

const maxSpendingBasedResults = 3

// Categories whose spend is only credited on flat-rate cards: the rate
// schedule of a typical card never covers them.
var generalOnlyCategories = []string{"miscellaneous", "utilities", "remittances"}

// ScoreBySpending ranks catalog cards against the user's quantified spend
// and lifestyle usage, descending by fit score, truncated to the top 3.
func (s *RecommendationService) ScoreBySpending(snap *catalog.Snapshot, profile model.UserProfile) []model.ScoredCard {
	scored := make([]model.ScoredCard, 0, maxSpendingBasedResults)
	for _, card := range snap.Cards {
		if float64(card.MinSalary) > profile.Salary {
			continue
		}

		score, matches := s.spendingScore(card, profile, snap.Services)

		scored = append(scored, model.ScoredCard{
			CardName:             card.Name,
			Bank:                 card.Bank,
			AnnualFee:            card.AnnualFee,
			MinSalary:            card.MinSalary,
			Rewards:              card.Rewards,
			BestFor:              card.BestFor,
			FitScore:             roundScore(score),
			Reasons:              spendingReasons(card, profile, matches),
			EstimatedAnnualValue: estimateAnnualValue(card, profile, snap.Services),
			RecommendationType:   model.RecommendationTypeSpending,
			LifestyleMatches:     matches,
			ApplyURL:             snap.ApplyURLFor(card.Name),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].FitScore > scored[j].FitScore
	})

	if len(scored) > maxSpendingBasedResults {
		scored = scored[:maxSpendingBasedResults]
	}
	return scored
}

// spendingScore computes the raw spend-side score for one card along with
// the lifestyle/spending matches that justify it.
func (s *RecommendationService) spendingScore(card model.Card, profile model.UserProfile, services model.ServiceMapping) (float64, []model.LifestyleMatch) {
	score := baseSpendingScore
	var matches []model.LifestyleMatch

	totalSpend := profile.TotalSpend()

	// Lifestyle service ties: a co-branded card earns the full boost scaled
	// by how much of that category the user actually spends at the partner;
	// partner benefits earn half.
	for _, usages := range profile.Lifestyle {
		for _, usage := range usages {
			if brand, ok := services.CoBranded[usage.Service]; ok && brand.CardName == card.Name {
				score += coBrandBoost * float64(usage.UsagePercent) / 100
				matches = append(matches, model.LifestyleMatch{
					Type:    "co_branded",
					Service: usage.Service,
					Usage:   usage.UsagePercent,
					Benefit: brand.Benefit,
				})
			}
			if services.IsPartner(usage.Service, card.Name) {
				score += partnerBoost * float64(usage.UsagePercent) / 100
				matches = append(matches, model.LifestyleMatch{
					Type:    "partner",
					Service: usage.Service,
					Usage:   usage.UsagePercent,
					Benefit: fmt.Sprintf("Special benefits at %s", usage.Service),
				})
			}
		}
	}

	onlineSpend := profile.SpendOn("online")
	if onlineSpend > onlineSpendThreshold {
		if rate := card.Rewards.Rate("online"); rate >= onlineRateStrong {
			score += highOnlineSpendBoost
			matches = append(matches, model.LifestyleMatch{
				Type:    "high_online",
				Service: "online_shopping",
				Usage:   int(onlineSpend / totalSpend * 100),
				Benefit: fmt.Sprintf("%g%% on online spending (%d AED/month)", rate, int(onlineSpend)),
			})
		}
	}

	intlSpend := profile.SpendOn("international_travel")
	if intlSpend > intlTravelSpendThreshold {
		if internationalRate(card) >= intlRateSpend || isInternationalSpecialty(card) {
			score += intlTravelSpendBoost
			matches = append(matches, model.LifestyleMatch{
				Type:    "international_travel",
				Service: "international_travel",
				Usage:   int(intlSpend / totalSpend * 100),
				Benefit: "Enhanced rewards on international travel & foreign spending",
			})
		}
	}

	transportSpend := profile.SpendOn("domestic_transport")
	if transportSpend > transportSpendThreshold && card.BestFor.ContainsAny(transportTags...) {
		score += transportSpendBoost
		matches = append(matches, model.LifestyleMatch{
			Type:    "domestic_transport",
			Service: "ride_hailing_transport",
			Usage:   int(transportSpend / totalSpend * 100),
			Benefit: "Benefits for ride-hailing and local transport",
		})
	}

	if profile.Salary <= entrySalaryThreshold && card.AnnualFee == 0 && card.MinSalary <= entryMinSalaryThreshold {
		score += entryLevelSpendBoost
	}

	if profile.SpendOn("dining")+onlineSpend > entertainmentSpendTotal &&
		card.BestFor.ContainsAny(entertainmentSpendTags...) {
		score += entertainmentTagBoost
	}

	// Dominant co-brand grocery usage: the heavy Amazon Fresh shopper on
	// the Amazon card is the canonical case.
	for _, usage := range profile.Lifestyle["groceries"] {
		brand, ok := services.CoBranded[usage.Service]
		if ok && brand.CardName == card.Name && usage.UsagePercent >= highUsageShareThreshold {
			score += highUsageBoost
			matches = append(matches, model.LifestyleMatch{
				Type:    "high_usage",
				Service: usage.Service,
				Usage:   usage.UsagePercent,
				Benefit: fmt.Sprintf("You use %s %d%% for groceries - enhanced rewards apply!", titleCaseService(usage.Service), usage.UsagePercent),
			})
		}
	}

	generalRate, isFlatRate := card.FlatRate()

	miscSpend := profile.SpendOn("miscellaneous")
	if isFlatRate && miscSpend/totalSpend > flatRateMiscShareThreshold && generalRate >= flatRateMinGeneral {
		score += flatRateMiscBonus
		matches = append(matches, model.LifestyleMatch{
			Type:    "general_rewards",
			Service: "miscellaneous",
			Usage:   int(miscSpend / totalSpend * 100),
			Benefit: fmt.Sprintf("Flat %g%% on all spending including miscellaneous (%d AED/month)", generalRate, int(miscSpend)),
		})
	}

	// Spend-share weighting over explicitly rewarded categories.
	for category, amount := range profile.Spend {
		if amount <= 0 || isGeneralOnly(category) {
			continue
		}
		if rate := card.Rewards.Rate(category); rate > 0 {
			score += amount / totalSpend * (rate / rateNormalizer) * spendWeightFactor
		}
	}

	// Only flat-rate cards earn on the general-only categories, at the
	// uniform rate with the same weighting.
	if isFlatRate {
		for _, category := range generalOnlyCategories {
			amount := profile.SpendOn(category)
			if amount <= 0 {
				continue
			}
			score += amount / totalSpend * (generalRate / rateNormalizer) * spendWeightFactor
		}
	}

	// Cross-check against stated goals, capped so spending rank stays
	// spending-led.
	goalMatches := 0
	for _, goal := range profile.Goals {
		if matchesAnyTag(s.matcher, goal, card.BestFor) {
			goalMatches++
		}
	}
	alignment := float64(goalMatches) * goalAlignmentPerMatch
	if alignment > goalAlignmentCap {
		alignment = goalAlignmentCap
	}
	score += alignment

	if card.AnnualFee == 0 {
		score += zeroFeeBonus
	}

	return clampScore(score), matches
}

func isGeneralOnly(category string) bool {
	for _, c := range generalOnlyCategories {
		if c == category {
			return true
		}
	}
	return false
}
