package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RewardMap maps a spend category to its reward rate as a percentage.
// Categories not present earn 0 unless the card is flat-rate.
// Stored as JSONB in Postgres.
type RewardMap map[string]float64

// Value implements driver.Valuer for JSONB storage.
func (m RewardMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for JSONB columns.
func (m *RewardMap) Scan(src interface{}) error {
	if src == nil {
		*m = RewardMap{}
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("scanning reward map: unexpected type %T", src)
	}
	return json.Unmarshal(b, m)
}

// Rate returns the reward rate for a category, with 0 for missing or
// malformed entries.
func (m RewardMap) Rate(category string) float64 {
	return m[category]
}

// TagList holds a card's best_for tags. Stored as JSONB in Postgres.
type TagList []string

func (t TagList) Value() (driver.Value, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t)
}

func (t *TagList) Scan(src interface{}) error {
	if src == nil {
		*t = TagList{}
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("scanning tag list: unexpected type %T", src)
	}
	return json.Unmarshal(b, t)
}

// ContainsAny reports whether any of the given tags is present exactly.
func (t TagList) ContainsAny(tags ...string) bool {
	for _, candidate := range tags {
		for _, tag := range t {
			if tag == candidate {
				return true
			}
		}
	}
	return false
}

// Card is a single catalog entry. Cards are loaded once at startup and
// never mutated afterwards.
type Card struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Bank      string    `db:"bank" json:"bank"`
	AnnualFee int       `db:"annual_fee" json:"annual_fee"`
	MinSalary int       `db:"min_salary" json:"min_salary"`
	Rewards   RewardMap `db:"rewards" json:"rewards"`
	BestFor   TagList   `db:"best_for" json:"best_for"`
	Notes     string    `db:"notes" json:"notes"`
	ApplyURL  string    `db:"apply_url" json:"apply_url,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"-"`
	UpdatedAt time.Time `db:"updated_at" json:"-"`
}

// flatRateMinCategories is the number of identically-rated categories a
// card needs before its schedule is treated as one uniform rate.
const flatRateMinCategories = 5

// FlatRate reports whether the card applies one uniform nonzero rate
// across its reward schedule, and returns that rate. This is inferred
// structurally from the reward data; if the catalog schema ever grows an
// explicit flag, only this method needs to change.
func (c Card) FlatRate() (float64, bool) {
	if len(c.Rewards) < flatRateMinCategories {
		return 0, false
	}
	var rate float64
	first := true
	for _, r := range c.Rewards {
		if first {
			rate = r
			first = false
			continue
		}
		if r != rate {
			return 0, false
		}
	}
	if rate == 0 {
		return 0, false
	}
	return rate, true
}

// NameContains is a case-insensitive substring check on the card name,
// used for name-flagged specialties such as Amazon-branded cards.
func (c Card) NameContains(s string) bool {
	return strings.Contains(strings.ToLower(c.Name), strings.ToLower(s))
}

// CoBrand describes the single card a lifestyle service is co-branded with.
type CoBrand struct {
	CardName string `json:"card_name"`
	Benefit  string `json:"benefit"`
}

// ServiceMapping is read-only reference data linking lifestyle services to
// cards: co-branded ties (one card per service) and partner benefits
// (several cards per service). Missing mapping data degrades to empty maps.
type ServiceMapping struct {
	CoBranded       map[string]CoBrand  `json:"co_branded_cards"`
	PartnerBenefits map[string][]string `json:"partner_benefits"`
}

// EmptyServiceMapping returns a mapping with initialized empty tables.
func EmptyServiceMapping() ServiceMapping {
	return ServiceMapping{
		CoBranded:       map[string]CoBrand{},
		PartnerBenefits: map[string][]string{},
	}
}

// CoBrandServiceFor returns the lifestyle service the given card is
// co-branded with, if any.
func (m ServiceMapping) CoBrandServiceFor(cardName string) (string, bool) {
	for service, info := range m.CoBranded {
		if info.CardName == cardName {
			return service, true
		}
	}
	return "", false
}

// IsPartner reports whether the card offers partner benefits at a service.
func (m ServiceMapping) IsPartner(service, cardName string) bool {
	for _, name := range m.PartnerBenefits[service] {
		if name == cardName {
			return true
		}
	}
	return false
}
