package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cardpath/backend/internal/model"
)

const maxReasons = 4

// goalReasons builds up to four justification sentences for a goal-scored
// card: lifestyle tie first, then one sentence per matched goal, then the
// fee disclosure, then a summary of goals met.
func goalReasons(card model.Card, matchedGoals []string, lifestyleMatch string) []string {
	reasons := make([]string, 0, maxReasons)

	if lifestyleMatch != "" {
		reasons = append(reasons, fmt.Sprintf("Perfect for %s users", lifestyleMatch))
	}

	for _, goal := range matchedGoals {
		lower := strings.ToLower(goal)
		switch {
		case strings.Contains(lower, "travel") || strings.Contains(lower, "miles"):
			reasons = append(reasons, fmt.Sprintf("Matches '%s' - %g%% on travel", goal, card.Rewards.Rate("travel")))
		case strings.Contains(lower, "cashback"):
			reasons = append(reasons, fmt.Sprintf("Matches '%s' - cashback rewards", goal))
		case strings.Contains(lower, "dining"):
			reasons = append(reasons, fmt.Sprintf("Matches '%s' - %g%% on dining", goal, card.Rewards.Rate("dining")))
		case strings.Contains(lower, "airport_lounge"):
			reasons = append(reasons, fmt.Sprintf("Matches '%s' - lounge access", goal))
		case strings.Contains(lower, "premium"):
			reasons = append(reasons, fmt.Sprintf("Matches '%s' - premium benefits", goal))
		case strings.Contains(lower, "fuel"):
			reasons = append(reasons, fmt.Sprintf("Matches '%s' - %g%% on fuel", goal, card.Rewards.Rate("fuel")))
		case strings.Contains(lower, "online"):
			reasons = append(reasons, fmt.Sprintf("Matches '%s' - %g%% online", goal, card.Rewards.Rate("online")))
		case strings.Contains(lower, "no_fee"):
			reasons = append(reasons, fmt.Sprintf("Matches '%s' - zero annual fee", goal))
		}
	}

	if card.AnnualFee > 0 {
		reasons = append(reasons, fmt.Sprintf("Annual fee: %d AED", card.AnnualFee))
	}

	if len(matchedGoals) > 1 {
		reasons = append(reasons, fmt.Sprintf("Meets %d of your goals", len(matchedGoals)))
	}

	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	return reasons
}

// spendingReasons builds up to four sentences for a spend-scored card:
// lifestyle matches first (at most two), then per-category earnings sorted
// by spend, with a zero-fee filler if room remains.
func spendingReasons(card model.Card, profile model.UserProfile, matches []model.LifestyleMatch) []string {
	reasons := make([]string, 0, maxReasons)

	for i, match := range matches {
		if i >= 2 {
			break
		}
		switch match.Type {
		case "high_usage", "general_rewards":
			reasons = append(reasons, match.Benefit)
		default:
			suffix := ""
			if match.Usage > 0 {
				suffix = fmt.Sprintf(" (%d%% of your spending)", match.Usage)
			}
			reasons = append(reasons, match.Benefit+suffix)
		}
	}

	generalRate, isFlatRate := card.FlatRate()

	type categorySpend struct {
		category string
		amount   float64
	}
	ordered := make([]categorySpend, 0, len(profile.Spend))
	for category, amount := range profile.Spend {
		ordered = append(ordered, categorySpend{category, amount})
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].amount != ordered[j].amount {
			return ordered[i].amount > ordered[j].amount
		}
		return ordered[i].category < ordered[j].category
	})

	for _, cs := range ordered {
		if len(reasons) >= maxReasons {
			break
		}
		if cs.amount <= 0 {
			continue
		}
		if rate, ok := card.Rewards[cs.category]; ok && rate > 0 {
			annual := cs.amount * 12 * rate / 100
			reasons = append(reasons, fmt.Sprintf("Earns %g%% on %s = %d AED/year", rate, cs.category, int(annual)))
		} else if isFlatRate && isGeneralOnly(cs.category) {
			annual := cs.amount * 12 * generalRate / 100
			reasons = append(reasons, fmt.Sprintf("Earns %g%% on %s = %d AED/year", generalRate, cs.category, int(annual)))
		}
	}

	if card.AnnualFee == 0 && len(reasons) < maxReasons {
		reasons = append(reasons, "Zero annual fee - no cost to hold")
	}

	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	return reasons
}
