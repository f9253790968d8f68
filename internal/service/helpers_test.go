package service

import (
	"github.com/cardpath/backend/internal/catalog"
	"github.com/cardpath/backend/internal/model"
)

// Shared catalog fixtures. Rates and fees are chosen so each scoring rule
// has at least one card that triggers it and one that does not.

func cashbackCard() model.Card {
	return model.Card{
		Name:      "FAB Cashback Credit Card",
		Bank:      "FAB",
		AnnualFee: 0,
		MinSalary: 5000,
		Rewards: model.RewardMap{
			"groceries": 2.0, "fuel": 2.0, "dining": 2.0, "online": 2.0,
			"utilities": 2.0, "miscellaneous": 2.0, "domestic_transport": 2.0,
		},
		BestFor: model.TagList{"cashback", "no_fee", "flat_rate"},
	}
}

func travelCard() model.Card {
	return model.Card{
		Name:      "Etihad Guest Platinum Card",
		Bank:      "FAB",
		AnnualFee: 1050,
		MinSalary: 15000,
		Rewards: model.RewardMap{
			"international_travel": 3.0, "dining": 2.0, "online": 1.5, "travel": 3.0,
		},
		BestFor: model.TagList{"travel", "miles", "airport_lounge", "premium"},
	}
}

func amazonCard() model.Card {
	return model.Card{
		Name:      "Amazon.ae Credit Card",
		Bank:      "Emirates NBD",
		AnnualFee: 0,
		MinSalary: 5000,
		Rewards: model.RewardMap{
			"online": 6.0, "groceries": 2.0, "dining": 1.0,
		},
		BestFor: model.TagList{"amazon", "online", "no_fee", "cashback"},
	}
}

func snapshotWith(cards ...model.Card) *catalog.Snapshot {
	return &catalog.Snapshot{
		Cards:     cards,
		Services:  model.EmptyServiceMapping(),
		ApplyURLs: map[string]string{},
	}
}

func amazonCoBrandMapping() model.ServiceMapping {
	return model.ServiceMapping{
		CoBranded: map[string]model.CoBrand{
			"amazon": {CardName: "Amazon.ae Credit Card", Benefit: "6% back on Amazon.ae purchases"},
		},
		PartnerBenefits: map[string][]string{
			"careem": {"FAB Z Card"},
		},
	}
}
