package service

import (
	"fmt"
	"strings"

	"github.com/cardpath/backend/internal/model"

	"github.com/cardpath/backend/pkg/currency"
)

const maxFollowUpQuestions = 2

// GenerateFollowUpQuestions decides whether the assembled set is broad
// enough to need narrowing and, if so, which clarifying questions to ask.
// Candidates are evaluated in fixed priority order and capped at two; a set
// of three or fewer recommendations never asks anything.
func (s *RecommendationService) GenerateFollowUpQuestions(recommendations []model.ScoredCard, profile model.UserProfile) []model.FollowUpQuestion {
	if len(recommendations) <= filterFallbackSize {
		return []model.FollowUpQuestion{}
	}

	questions := make([]model.FollowUpQuestion, 0, maxFollowUpQuestions)

	// Fee split: only worth asking when both sides of the split are real.
	freeCards, paidCards := 0, 0
	for _, r := range recommendations {
		if r.AnnualFee == 0 {
			freeCards++
		} else {
			paidCards++
		}
	}
	if freeCards >= 2 && paidCards >= 2 {
		questions = append(questions, model.FollowUpQuestion{
			Question:   "Do you prefer cards with no annual fee, or are you open to paying a fee for better benefits?",
			Options:    []string{"No annual fee preferred", "Open to annual fees for better rewards"},
			FilterType: model.FilterAnnualFee,
		})
	}

	// Concentrated spending: offer to optimize for the heaviest category.
	if len(questions) < maxFollowUpQuestions {
		topCategory := ""
		topAmount := 0.0
		highSpendCount := 0
		for category, amount := range profile.Spend {
			if amount > highSpendCategoryMonthly {
				highSpendCount++
				if amount > topAmount || (amount == topAmount && category < topCategory) {
					topCategory, topAmount = category, amount
				}
			}
		}
		if highSpendCount >= 2 {
			display := strings.ReplaceAll(topCategory, "_", " ")
			questions = append(questions, model.FollowUpQuestion{
				Question: fmt.Sprintf("Your highest spending is on %s (%s/month). Do you want a card optimized for this category?",
					display, currency.FormatAED(int64(topAmount))),
				Options:    []string{fmt.Sprintf("Yes, optimize for %s", display), "No, I want balanced rewards"},
				FilterType: model.FilterSpendingFocus,
				Category:   topCategory,
			})
		}
	}

	if len(questions) < maxFollowUpQuestions {
		brandCards := 0
		for _, r := range recommendations {
			if r.BestFor.ContainsAny(brandLoyaltyTags...) {
				brandCards++
			}
		}
		if brandCards >= 2 {
			questions = append(questions, model.FollowUpQuestion{
				Question:   "Do you frequently shop at specific stores (Amazon, Noon, Carrefour, Lulu) or fuel at ADNOC?",
				Options:    []string{"Yes, I'm loyal to specific brands", "No, I shop everywhere"},
				FilterType: model.FilterBrandLoyalty,
			})
		}
	}

	if len(questions) < maxFollowUpQuestions {
		premiumCards := 0
		for _, r := range recommendations {
			if r.AnnualFee > premiumFilterFeeThreshold {
				premiumCards++
			}
		}
		if premiumCards >= 2 {
			questions = append(questions, model.FollowUpQuestion{
				Question:   "Are premium benefits like airport lounge access, concierge, and travel insurance important to you?",
				Options:    []string{"Yes, premium benefits matter", "No, just good rewards"},
				FilterType: model.FilterPremiumBenefits,
			})
		}
	}

	return questions
}
