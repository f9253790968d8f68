package repository

import (
	"context"
	"fmt"

	"github.com/cardpath/backend/internal/model"
)

// sampleCards is a starter UAE catalog used by the seed endpoint in
// development environments.
var sampleCards = []model.Card{
	{
		Name:      "Emirates NBD Duo Credit Card",
		Bank:      "Emirates NBD",
		AnnualFee: 0,
		MinSalary: 5000,
		Rewards: model.RewardMap{
			"groceries": 5.0, "fuel": 5.0, "utilities": 5.0,
			"dining": 0.5, "online": 0.5, "international_travel": 0.5,
		},
		BestFor:  model.TagList{"no_fee", "groceries", "utilities", "airport_lounge", "cinema"},
		Notes:    "Dual card package with unlimited lounge access and cinema offers.",
		ApplyURL: "https://www.emiratesnbd.com/en/personal-banking/credit-cards/duo",
	},
	{
		Name:      "FAB Cashback Credit Card",
		Bank:      "FAB",
		AnnualFee: 0,
		MinSalary: 5000,
		Rewards: model.RewardMap{
			"groceries": 2.0, "fuel": 2.0, "dining": 2.0, "online": 2.0,
			"utilities": 2.0, "miscellaneous": 2.0, "domestic_transport": 2.0,
		},
		BestFor:  model.TagList{"cashback", "no_fee", "flat_rate"},
		Notes:    "Flat cashback on every spend category with no annual fee.",
		ApplyURL: "https://www.bankfab.com/en-ae/personal/credit-cards/cashback-card",
	},
	{
		Name:      "FAB ADNOC Rewards Credit Card",
		Bank:      "FAB",
		AnnualFee: 0,
		MinSalary: 5000,
		Rewards: model.RewardMap{
			"fuel": 6.5, "groceries": 1.5, "dining": 1.5,
		},
		BestFor:  model.TagList{"fuel", "adnoc", "no_fee", "transport"},
		Notes:    "Earns ADNOC Rewards points, strongest on fuel spend.",
		ApplyURL: "https://www.bankfab.com/en-ae/personal/credit-cards/adnoc-rewards",
	},
	{
		Name:      "Amazon.ae Credit Card",
		Bank:      "Emirates NBD",
		AnnualFee: 0,
		MinSalary: 5000,
		Rewards: model.RewardMap{
			"online": 6.0, "groceries": 2.0, "dining": 1.0, "miscellaneous": 1.0,
		},
		BestFor:  model.TagList{"amazon", "online", "no_fee", "cashback"},
		Notes:    "Co-branded with Amazon.ae, top rate on Amazon purchases.",
		ApplyURL: "https://www.emiratesnbd.com/en/personal-banking/credit-cards/amazon",
	},
	{
		Name:      "Emirates Skywards Signature Card",
		Bank:      "Emirates NBD",
		AnnualFee: 700,
		MinSalary: 12000,
		Rewards: model.RewardMap{
			"international_travel": 2.5, "dining": 1.5, "online": 1.0, "miscellaneous": 1.0,
		},
		BestFor:  model.TagList{"travel", "miles", "airport_lounge", "premium"},
		Notes:    "Skywards Miles on all spend plus complimentary lounge access.",
		ApplyURL: "https://www.emiratesnbd.com/en/personal-banking/credit-cards/skywards-signature",
	},
	{
		Name:      "Mashreq Cashback Card",
		Bank:      "Mashreq",
		AnnualFee: 0,
		MinSalary: 5000,
		Rewards: model.RewardMap{
			"groceries": 1.0, "fuel": 1.0, "dining": 5.0, "online": 1.0, "international_travel": 5.0,
		},
		BestFor:  model.TagList{"cashback", "dining", "no_fee", "travel"},
		Notes:    "High cashback on dining and international spend.",
		ApplyURL: "https://www.mashreqbank.com/uae/en/personal/cards/cashback-card",
	},
	{
		Name:      "Etihad Guest Platinum Card",
		Bank:      "FAB",
		AnnualFee: 1050,
		MinSalary: 15000,
		Rewards: model.RewardMap{
			"international_travel": 3.0, "dining": 2.0, "online": 1.5, "miscellaneous": 1.0,
		},
		BestFor:  model.TagList{"travel", "miles", "etihad", "airport_lounge", "premium", "concierge"},
		Notes:    "Etihad Guest Miles with lounge access and concierge service.",
		ApplyURL: "https://www.bankfab.com/en-ae/personal/credit-cards/etihad-guest-platinum",
	},
	{
		Name:      "FAB Z Card",
		Bank:      "FAB",
		AnnualFee: 0,
		MinSalary: 0,
		Rewards: model.RewardMap{
			"online": 2.0, "entertainment": 2.0, "dining": 1.0,
		},
		BestFor:  model.TagList{"no_fee", "online", "entertainment", "noon", "careem"},
		Notes:    "Digital-first card bundled with Careem Plus and noon One subscriptions.",
		ApplyURL: "https://www.bankfab.com/en-ae/personal/credit-cards/z-card",
	},
	{
		Name:      "Carrefour Signature Card",
		Bank:      "Mashreq",
		AnnualFee: 0,
		MinSalary: 5000,
		Rewards: model.RewardMap{
			"groceries": 7.0, "fuel": 1.0, "dining": 1.0, "miscellaneous": 0.5,
		},
		BestFor:  model.TagList{"carrefour", "groceries", "no_fee", "cashback"},
		Notes:    "MyCLUB points at Carrefour stores and online.",
		ApplyURL: "https://www.mashreqbank.com/uae/en/personal/cards/carrefour-card",
	},
	{
		Name:      "VOX Cinemas Entertainment Card",
		Bank:      "Majid Al Futtaim Finance",
		AnnualFee: 200,
		MinSalary: 8000,
		Rewards: model.RewardMap{
			"entertainment": 5.0, "dining": 3.0, "online": 1.0,
		},
		BestFor:  model.TagList{"entertainment", "vox", "cinema", "dubai_mall", "dining"},
		Notes:    "Discounted VOX tickets and SHARE points across Majid Al Futtaim malls.",
		ApplyURL: "https://www.majidalfuttaim.com/en/finance/cards/entertainment",
	},
}

var sampleCoBrands = map[string]model.CoBrand{
	"amazon":       {CardName: "Amazon.ae Credit Card", Benefit: "6% back on Amazon.ae purchases"},
	"amazon_fresh": {CardName: "Amazon.ae Credit Card", Benefit: "6% back on Amazon Fresh orders"},
	"carrefour":    {CardName: "Carrefour Signature Card", Benefit: "7% MyCLUB points at Carrefour"},
	"vox":          {CardName: "VOX Cinemas Entertainment Card", Benefit: "50% off VOX Cinemas tickets"},
	"adnoc":        {CardName: "FAB ADNOC Rewards Credit Card", Benefit: "6.5% ADNOC Rewards on fuel"},
}

var samplePartnerBenefits = map[string][]string{
	"careem": {"FAB Z Card"},
	"noon":   {"FAB Z Card"},
	"etihad": {"Etihad Guest Platinum Card"},
}

// SeedSampleData loads the starter catalog into the repository. Existing
// cards with the same names are updated in place.
func SeedSampleData(ctx context.Context, repo CardRepository) (int, error) {
	for i := range sampleCards {
		card := sampleCards[i]
		if err := repo.UpsertCard(ctx, &card); err != nil {
			return 0, fmt.Errorf("seed card %q: %w", card.Name, err)
		}
	}
	for service, brand := range sampleCoBrands {
		if err := repo.UpsertCoBrand(ctx, service, brand); err != nil {
			return 0, err
		}
	}
	for service, cards := range samplePartnerBenefits {
		for _, name := range cards {
			if err := repo.AddPartnerBenefit(ctx, service, name); err != nil {
				return 0, err
			}
		}
	}
	return len(sampleCards), nil
}
