package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cardpath/backend/internal/model"
	"github.com/cardpath/backend/pkg/currency"
)

// estimateAnnualValue projects what a card is worth to this profile over a
// year, as a disclosed-assumption sentence rather than a bare number.
//
// Co-brand exclusion policy: when a card is tied to one service and the
// user told us where that category's spend goes but did not name the
// partner, the whole category is excluded from the projection and the
// exclusion is annotated. When the user gave no lifestyle data at all, the
// projection assumes partner spend and says so.
func estimateAnnualValue(card model.Card, profile model.UserProfile, services model.ServiceMapping) string {
	generalRate, isFlatRate := card.FlatRate()
	coBrandService, isCoBranded := services.CoBrandServiceFor(card.Name)
	hasLifestyle := profile.HasLifestyleData()

	totalRewards := decimal.Zero
	excludedSpend := decimal.Zero

	for category, amount := range profile.Spend {
		if amount <= 0 {
			continue
		}

		if isCoBranded {
			if usages := profile.LifestyleForSpend(category); len(usages) > 0 {
				usesPartner := false
				for _, usage := range usages {
					if usage.Service == coBrandService {
						usesPartner = true
						break
					}
				}
				if !usesPartner {
					excludedSpend = excludedSpend.Add(decimal.NewFromFloat(amount))
					continue
				}
			}
		}

		rate, listed := card.Rewards[category]
		if !listed {
			if !isFlatRate || !isGeneralOnly(category) {
				continue
			}
			rate = generalRate
		}
		annual := decimal.NewFromFloat(amount).
			Mul(decimal.NewFromInt(12)).
			Mul(decimal.NewFromFloat(rate)).
			Div(decimal.NewFromInt(100))
		totalRewards = totalRewards.Add(annual)
	}

	netValue := totalRewards.Sub(decimal.NewFromInt(int64(card.AnnualFee)))

	note := ""
	switch {
	case excludedSpend.IsPositive() && hasLifestyle:
		note = fmt.Sprintf(" (excludes %s/month at non-partner merchants)", currency.AEDWhole(excludedSpend))
	case !hasLifestyle && isCoBranded:
		note = " (assumes all spending at partner merchants)"
	}

	// Never lead with a negative number; show gross rewards and the fee
	// separately instead.
	if netValue.IsPositive() {
		return fmt.Sprintf("approx. %s net benefit annually%s", currency.AEDWhole(netValue), note)
	}
	return fmt.Sprintf("approx. %s rewards (minus %s fee)%s",
		currency.AEDWhole(totalRewards), currency.AEDWhole(decimal.NewFromInt(int64(card.AnnualFee))), note)
}
