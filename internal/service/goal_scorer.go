package service

import (
	"sort"
	"strings"

	"github.com/cardpath/backend/internal/catalog"
	"github.com/cardpath/backend/internal/model"
)

const maxGoalBasedResults = 5

// ScoreByGoals ranks catalog cards against the user's stated goals.
// Cards above the salary gate with no matched goal are excluded entirely;
// the rest are ordered by (matched goal count, fit score) descending and
// truncated to the top 5.
func (s *RecommendationService) ScoreByGoals(snap *catalog.Snapshot, profile model.UserProfile) []model.ScoredCard {
	if len(profile.Goals) == 0 {
		return nil
	}

	scored := make([]model.ScoredCard, 0, maxGoalBasedResults)
	for _, card := range snap.Cards {
		if float64(card.MinSalary) > profile.Salary {
			continue
		}

		matched := s.matchGoals(profile.Goals, card.BestFor)
		if len(matched) == 0 {
			continue
		}

		score := baseGoalScore + float64(len(matched))*perGoalBonus
		score += s.goalBoosts(card, profile)

		lifestyleMatch := ""
		for _, usages := range profile.Lifestyle {
			for _, usage := range usages {
				brand, ok := snap.Services.CoBranded[usage.Service]
				if ok && brand.CardName == card.Name {
					score += coBrandBoost * float64(usage.UsagePercent) / 100
					lifestyleMatch = titleCaseService(usage.Service)
				}
			}
		}

		scored = append(scored, model.ScoredCard{
			CardName:             card.Name,
			Bank:                 card.Bank,
			AnnualFee:            card.AnnualFee,
			MinSalary:            card.MinSalary,
			Rewards:              card.Rewards,
			BestFor:              card.BestFor,
			FitScore:             roundScore(score),
			Reasons:              goalReasons(card, matched, lifestyleMatch),
			EstimatedAnnualValue: estimateAnnualValue(card, profile, snap.Services),
			RecommendationType:   model.RecommendationTypeGoal,
			MatchedGoals:         matched,
			TotalGoals:           len(profile.Goals),
			ApplyURL:             snap.ApplyURLFor(card.Name),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if len(scored[i].MatchedGoals) != len(scored[j].MatchedGoals) {
			return len(scored[i].MatchedGoals) > len(scored[j].MatchedGoals)
		}
		return scored[i].FitScore > scored[j].FitScore
	})

	if len(scored) > maxGoalBasedResults {
		scored = scored[:maxGoalBasedResults]
	}
	return scored
}

// matchGoals returns the goals that hit at least one card tag, in goal
// order, without duplicates (GoalList is already deduplicated upstream).
func (s *RecommendationService) matchGoals(goals model.GoalList, tags model.TagList) []string {
	var matched []string
	for _, goal := range goals {
		if matchesAnyTag(s.matcher, goal, tags) {
			matched = append(matched, goal)
		}
	}
	return matched
}

// goalBoosts applies the additive goal-side heuristics. All boosts are
// independent and summed; the caller clamps the final score.
func (s *RecommendationService) goalBoosts(card model.Card, profile model.UserProfile) float64 {
	var boost float64
	goals := profile.Goals

	if card.AnnualFee == 0 {
		boost += zeroFeeBonus
	}

	if profile.SpendOn("international_travel") > intlTravelSpendThreshold && goals.Contains("international") {
		if isInternationalSpecialty(card) || internationalRate(card) > intlRateGoal {
			boost += intlTravelGoalBoost
		}
	}

	if profile.SpendOn("domestic_transport") > transportSpendThreshold &&
		goals.ContainsAny(transportGoals...) &&
		card.BestFor.ContainsAny(transportTags...) {
		boost += transportGoalBoost
	}

	onlineSpend := profile.SpendOn("online")
	onlineRate := card.Rewards.Rate("online")
	if onlineSpend > onlineSpendThreshold && goals.Contains("online") {
		switch {
		case onlineRate >= onlineRateStrong:
			boost += onlineGoalBoostStrong
		case onlineRate >= onlineRateModerate:
			boost += onlineGoalBoostModerate
		}
	}

	if goals.Contains("entertainment") && card.BestFor.ContainsAny(entertainmentTags...) {
		boost += entertainmentGoalBoost
	}

	if profile.Salary >= premiumSalaryThreshold && goals.ContainsAny(premiumGoals...) {
		if card.AnnualFee > premiumFeeThreshold || card.BestFor.ContainsAny(premiumTags...) {
			boost += premiumGoalBoost
		}
	}

	// Strong alignment rules stack on top of the tiered boosts above: a
	// goal backed by matching spend and a matching rate outranks either
	// signal alone.
	if goals.Contains("online") && onlineSpend > onlineAlignmentThreshold && onlineRate >= onlineRateStrong {
		boost += onlineAlignmentBoost
	}
	if goals.Contains("dining") &&
		profile.SpendOn("dining") > diningAlignmentThreshold &&
		card.Rewards.Rate("dining") >= diningRateThreshold {
		boost += diningAlignmentBoost
	}

	if profile.Salary <= entrySalaryThreshold && goals.Contains("no_fee") && card.MinSalary <= entryMinSalaryThreshold {
		boost += entryLevelGoalBoost
	}

	return boost
}

// internationalRate reads the card's international rate, falling back to
// its travel rate when no dedicated international category exists.
func internationalRate(card model.Card) float64 {
	if rate, ok := card.Rewards["international"]; ok {
		return rate
	}
	return card.Rewards.Rate("travel")
}

func isInternationalSpecialty(card model.Card) bool {
	for _, name := range internationalSpecialtyNames {
		if card.NameContains(name) {
			return true
		}
	}
	return false
}

// titleCaseService turns "amazon_fresh" into "Amazon Fresh" for display.
func titleCaseService(service string) string {
	words := strings.Split(service, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
