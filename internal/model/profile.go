package model

import (
	"encoding/json"
	"sort"
)

// LifestyleUsage is one normalized lifestyle service usage record.
// On the wire it may arrive either as a bare service name or as a
// {service, usage_percent} object; bare names default to 50% usage.
// Normalization happens here, at the ingestion boundary, so scorers only
// ever see the canonical shape.
type LifestyleUsage struct {
	Service      string `json:"service"`
	UsagePercent int    `json:"usage_percent"`
}

// DefaultUsagePercent is assumed when a service is given without a share.
const DefaultUsagePercent = 50

func (u *LifestyleUsage) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		u.Service = name
		u.UsagePercent = DefaultUsagePercent
		return nil
	}

	// The default only applies when usage_percent is absent; an explicit
	// zero is a real answer and must survive decoding.
	var obj struct {
		Service      string `json:"service"`
		UsagePercent *int   `json:"usage_percent"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	u.Service = obj.Service
	if obj.UsagePercent != nil {
		u.UsagePercent = *obj.UsagePercent
	} else {
		u.UsagePercent = DefaultUsagePercent
	}
	return nil
}

// goalAliases maps the camelCase goal names sent by older clients to their
// canonical snake_case form.
var goalAliases = map[string]string{
	"travelMiles":     "travel",
	"noAnnualFee":     "no_fee",
	"airportLounge":   "airport_lounge",
	"diningRewards":   "dining",
	"premiumBenefits": "premium",
	"fuelSavings":     "fuel",
	"onlineShopping":  "online",
}

// GoalList is a deduplicated set of goal strings. It accepts either a JSON
// array of names or a {"goal": bool} map (only true entries are kept), and
// canonicalizes known aliases.
type GoalList []string

func (g *GoalList) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err == nil {
		*g = normalizeGoals(names)
		return nil
	}

	var flags map[string]bool
	if err := json.Unmarshal(data, &flags); err != nil {
		return err
	}
	names = names[:0]
	for name, enabled := range flags {
		if enabled {
			names = append(names, name)
		}
	}
	// Map iteration order is random; keep the result deterministic.
	sort.Strings(names)
	*g = normalizeGoals(names)
	return nil
}

func normalizeGoals(names []string) GoalList {
	seen := make(map[string]struct{}, len(names))
	out := make(GoalList, 0, len(names))
	for _, name := range names {
		if canonical, ok := goalAliases[name]; ok {
			name = canonical
		}
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// Contains reports whether the exact goal is present.
func (g GoalList) Contains(goal string) bool {
	for _, have := range g {
		if have == goal {
			return true
		}
	}
	return false
}

// ContainsAny reports whether any of the given goals is present.
func (g GoalList) ContainsAny(goals ...string) bool {
	for _, goal := range goals {
		if g.Contains(goal) {
			return true
		}
	}
	return false
}

// UserProfile is a per-request, transient description of the user.
// Missing optional fields decode to empty collections.
type UserProfile struct {
	Salary    float64                     `json:"salary" validate:"gte=0"`
	Spend     map[string]float64          `json:"spend"`
	Goals     GoalList                    `json:"goals"`
	Lifestyle map[string][]LifestyleUsage `json:"lifestyle"`
}

// TotalSpend sums all monthly spend. A zero total is reported as 1 so
// spend-share weighting never divides by zero.
func (p UserProfile) TotalSpend() float64 {
	var total float64
	for _, amount := range p.Spend {
		total += amount
	}
	if total == 0 {
		return 1
	}
	return total
}

// SpendOn returns monthly spend for a category, 0 when absent.
func (p UserProfile) SpendOn(category string) float64 {
	return p.Spend[category]
}

// spendToLifestyleKey maps spend categories to the lifestyle section that
// describes where that spend happens.
var spendToLifestyleKey = map[string]string{
	"groceries":            "groceries",
	"online":               "online_shopping",
	"fuel":                 "fuel_stations",
	"entertainment":        "entertainment",
	"international_travel": "airlines",
}

// LifestyleForSpend returns the lifestyle usage records covering a spend
// category, if the user supplied any.
func (p UserProfile) LifestyleForSpend(category string) []LifestyleUsage {
	key, ok := spendToLifestyleKey[category]
	if !ok {
		return nil
	}
	return p.Lifestyle[key]
}

// HasLifestyleData reports whether the user supplied any lifestyle usage.
func (p UserProfile) HasLifestyleData() bool {
	return len(p.Lifestyle) > 0
}
