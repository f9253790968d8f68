package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/cardpath/backend/internal/model"
)

// ErrCardNotFound is returned when a card lookup matches nothing.
var ErrCardNotFound = errors.New("card not found")

// CardRepository defines the interface for catalog data access.
// Implementations must be safe for concurrent use.
type CardRepository interface {
	ListCards(ctx context.Context) ([]model.Card, error)
	GetServiceMapping(ctx context.Context) (model.ServiceMapping, error)
	GetApplyURLs(ctx context.Context) (map[string]string, error)
	UpsertCard(ctx context.Context, card *model.Card) error
	UpsertCoBrand(ctx context.Context, service string, brand model.CoBrand) error
	AddPartnerBenefit(ctx context.Context, service, cardName string) error
}

type cardRepository struct {
	db *sqlx.DB
}

// NewCardRepository creates a new catalog repository backed by Postgres.
func NewCardRepository(db *sqlx.DB) CardRepository {
	return &cardRepository{db: db}
}

// ListCards returns the full catalog in its stored order.
func (r *cardRepository) ListCards(ctx context.Context) ([]model.Card, error) {
	query := `
		SELECT id, name, bank, annual_fee, min_salary, rewards, best_for, notes, apply_url, created_at, updated_at
		FROM cards
		ORDER BY created_at ASC, name ASC
	`

	var cards []model.Card
	if err := r.db.SelectContext(ctx, &cards, query); err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}

	return cards, nil
}

// GetServiceMapping loads the co-brand and partner-benefit tables.
func (r *cardRepository) GetServiceMapping(ctx context.Context) (model.ServiceMapping, error) {
	mapping := model.EmptyServiceMapping()

	type coBrandRow struct {
		Service  string `db:"service"`
		CardName string `db:"card_name"`
		Benefit  string `db:"benefit"`
	}
	var coBrands []coBrandRow
	if err := r.db.SelectContext(ctx, &coBrands, `SELECT service, card_name, benefit FROM co_branded_cards`); err != nil {
		return mapping, fmt.Errorf("list co-branded cards: %w", err)
	}
	for _, row := range coBrands {
		mapping.CoBranded[row.Service] = model.CoBrand{CardName: row.CardName, Benefit: row.Benefit}
	}

	type partnerRow struct {
		Service  string `db:"service"`
		CardName string `db:"card_name"`
	}
	var partners []partnerRow
	if err := r.db.SelectContext(ctx, &partners, `SELECT service, card_name FROM partner_benefits ORDER BY service, card_name`); err != nil {
		return mapping, fmt.Errorf("list partner benefits: %w", err)
	}
	for _, row := range partners {
		mapping.PartnerBenefits[row.Service] = append(mapping.PartnerBenefits[row.Service], row.CardName)
	}

	return mapping, nil
}

// GetApplyURLs returns application URLs keyed by card name, skipping cards
// without one.
func (r *cardRepository) GetApplyURLs(ctx context.Context) (map[string]string, error) {
	type urlRow struct {
		Name     string `db:"name"`
		ApplyURL string `db:"apply_url"`
	}
	var rows []urlRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT name, apply_url FROM cards WHERE apply_url <> ''`); err != nil {
		return nil, fmt.Errorf("list apply urls: %w", err)
	}

	urls := make(map[string]string, len(rows))
	for _, row := range rows {
		urls[row.Name] = row.ApplyURL
	}
	return urls, nil
}

// UpsertCard creates or updates a card by name.
func (r *cardRepository) UpsertCard(ctx context.Context, card *model.Card) error {
	query := `
		INSERT INTO cards (name, bank, annual_fee, min_salary, rewards, best_for, notes, apply_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (name)
		DO UPDATE SET
			bank = EXCLUDED.bank,
			annual_fee = EXCLUDED.annual_fee,
			min_salary = EXCLUDED.min_salary,
			rewards = EXCLUDED.rewards,
			best_for = EXCLUDED.best_for,
			notes = EXCLUDED.notes,
			apply_url = EXCLUDED.apply_url,
			updated_at = CURRENT_TIMESTAMP
		RETURNING id
	`

	return r.db.QueryRowContext(ctx, query,
		card.Name, card.Bank, card.AnnualFee, card.MinSalary,
		card.Rewards, card.BestFor, card.Notes, card.ApplyURL,
	).Scan(&card.ID)
}

// UpsertCoBrand records a service's co-branded card.
func (r *cardRepository) UpsertCoBrand(ctx context.Context, service string, brand model.CoBrand) error {
	query := `
		INSERT INTO co_branded_cards (service, card_name, benefit)
		VALUES ($1, $2, $3)
		ON CONFLICT (service)
		DO UPDATE SET card_name = EXCLUDED.card_name, benefit = EXCLUDED.benefit
	`
	if _, err := r.db.ExecContext(ctx, query, service, brand.CardName, brand.Benefit); err != nil {
		return fmt.Errorf("upsert co-brand %s: %w", service, err)
	}
	return nil
}

// AddPartnerBenefit records a partner-benefit tie between a service and a card.
func (r *cardRepository) AddPartnerBenefit(ctx context.Context, service, cardName string) error {
	query := `
		INSERT INTO partner_benefits (service, card_name)
		VALUES ($1, $2)
		ON CONFLICT (service, card_name) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, service, cardName); err != nil {
		return fmt.Errorf("add partner benefit %s/%s: %w", service, cardName, err)
	}
	return nil
}
