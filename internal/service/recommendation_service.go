// Package service implements the recommendation scoring and refinement
// engine: goal and spending scorers, value estimation, reason generation,
// result assembly, follow-up questions and interactive filtering.
//
// All scoring is pure computation over a frozen catalog snapshot; nothing
// here performs I/O or mutates shared state, so any number of requests may
// score concurrently.
package service

import (
	"sort"
	"strings"

	"github.com/cardpath/backend/internal/catalog"
	"github.com/cardpath/backend/internal/model"
)

const (
	maxUnifiedResults  = 6
	filterFallbackSize = 3
)

// RecommendationService ranks catalog cards against a user profile.
type RecommendationService struct {
	matcher GoalMatcher
}

// NewRecommendationService creates the service. A nil matcher falls back
// to case-insensitive substring matching.
func NewRecommendationService(matcher GoalMatcher) *RecommendationService {
	if matcher == nil {
		matcher = SubstringMatcher{}
	}
	return &RecommendationService{matcher: matcher}
}

// Recommend runs both scorers over the snapshot, merges their outputs,
// flags top choices, deduplicates, sorts and truncates, and attaches any
// follow-up questions for the assembled set.
func (s *RecommendationService) Recommend(snap *catalog.Snapshot, profile model.UserProfile) model.RecommendationSet {
	goalCards := s.ScoreByGoals(snap, profile)
	spendingCards := s.ScoreBySpending(snap, profile)

	// A card strong in both dimensions is a top choice: every occurrence
	// gets flagged and boosted, and the first occurrence is collected.
	goalNames := cardNameSet(goalCards)
	var topChoices []model.ScoredCard
	seenTop := map[string]bool{}
	for i := range spendingCards {
		if !goalNames[spendingCards[i].CardName] {
			continue
		}
		name := spendingCards[i].CardName
		for j := range goalCards {
			if goalCards[j].CardName == name {
				markTopChoice(&goalCards[j])
			}
		}
		markTopChoice(&spendingCards[i])
		if !seenTop[name] {
			seenTop[name] = true
			for j := range goalCards {
				if goalCards[j].CardName == name {
					topChoices = append(topChoices, goalCards[j])
					break
				}
			}
		}
	}

	// Dedupe goal-first, keeping encounter order until the final sort.
	seen := map[string]bool{}
	unified := make([]model.ScoredCard, 0, len(goalCards)+len(spendingCards))
	for _, card := range append(append([]model.ScoredCard{}, goalCards...), spendingCards...) {
		if seen[card.CardName] {
			continue
		}
		seen[card.CardName] = true
		unified = append(unified, card)
	}

	// Top choices always precede the rest regardless of raw score.
	sort.SliceStable(unified, func(i, j int) bool {
		if unified[i].IsTopChoice != unified[j].IsTopChoice {
			return unified[i].IsTopChoice
		}
		return unified[i].FitScore > unified[j].FitScore
	})

	questions := s.GenerateFollowUpQuestions(unified, profile)

	if len(unified) > maxUnifiedResults {
		unified = unified[:maxUnifiedResults]
	}

	// The wire format always carries arrays, never null.
	if goalCards == nil {
		goalCards = []model.ScoredCard{}
	}
	if spendingCards == nil {
		spendingCards = []model.ScoredCard{}
	}
	if topChoices == nil {
		topChoices = []model.ScoredCard{}
	}

	return model.RecommendationSet{
		Recommendations:   unified,
		GoalBased:         goalCards,
		SpendingBased:     spendingCards,
		TopChoices:        topChoices,
		HasGoals:          len(profile.Goals) > 0,
		FollowUpQuestions: questions,
	}
}

func markTopChoice(card *model.ScoredCard) {
	if card.IsTopChoice {
		return
	}
	card.IsTopChoice = true
	card.FitScore = roundScore(card.FitScore + mergedTopChoiceBoost)
}

func cardNameSet(cards []model.ScoredCard) map[string]bool {
	names := make(map[string]bool, len(cards))
	for _, card := range cards {
		names[card.CardName] = true
	}
	return names
}

// FilterRecommendations applies a user's answer to one follow-up question.
// A filter that would empty the set is discarded and the original top 3 is
// returned instead: narrowing must never strand the user with nothing.
func (s *RecommendationService) FilterRecommendations(recommendations []model.ScoredCard, filterType model.FollowUpFilterType, choice, category string) []model.ScoredCard {
	var filtered []model.ScoredCard
	lower := strings.ToLower(choice)

	switch filterType {
	case model.FilterAnnualFee:
		wantFree := strings.Contains(lower, "no annual fee")
		for _, r := range recommendations {
			if wantFree == (r.AnnualFee == 0) {
				filtered = append(filtered, r)
			}
		}

	case model.FilterSpendingFocus:
		if strings.Contains(lower, "yes") && category != "" {
			for _, r := range recommendations {
				if r.Rewards.Rate(category) >= flatRateMinGeneral {
					filtered = append(filtered, r)
				}
			}
		} else {
			// The balanced branch wants breadth: at least three categories
			// rewarding 2% or better.
			for _, r := range recommendations {
				strong := 0
				for _, rate := range r.Rewards {
					if rate >= flatRateMinGeneral {
						strong++
					}
				}
				if strong >= 3 {
					filtered = append(filtered, r)
				}
			}
		}

	case model.FilterBrandLoyalty:
		loyal := strings.Contains(lower, "yes")
		for _, r := range recommendations {
			if loyal == r.BestFor.ContainsAny(brandLoyaltyTags...) {
				filtered = append(filtered, r)
			}
		}

	case model.FilterPremiumBenefits:
		if strings.Contains(lower, "yes") {
			for _, r := range recommendations {
				if r.AnnualFee > premiumFilterFeeThreshold || r.BestFor.ContainsAny(premiumFilterTags...) {
					filtered = append(filtered, r)
				}
			}
		} else {
			for _, r := range recommendations {
				if r.AnnualFee <= premiumFilterFeeThreshold {
					filtered = append(filtered, r)
				}
			}
		}
	}

	if len(filtered) == 0 {
		if len(recommendations) > filterFallbackSize {
			return recommendations[:filterFallbackSize]
		}
		return recommendations
	}
	return filtered
}
