package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cardpath/backend/internal/catalog"
	"github.com/cardpath/backend/internal/model"
)

// MockCardRepository implements repository.CardRepository for testing
type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) ListCards(ctx context.Context) ([]model.Card, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Card), args.Error(1)
}

func (m *MockCardRepository) GetServiceMapping(ctx context.Context) (model.ServiceMapping, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.ServiceMapping), args.Error(1)
}

func (m *MockCardRepository) GetApplyURLs(ctx context.Context) (map[string]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockCardRepository) UpsertCard(ctx context.Context, card *model.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardRepository) UpsertCoBrand(ctx context.Context, service string, brand model.CoBrand) error {
	args := m.Called(ctx, service, brand)
	return args.Error(0)
}

func (m *MockCardRepository) AddPartnerBenefit(ctx context.Context, service, cardName string) error {
	args := m.Called(ctx, service, cardName)
	return args.Error(0)
}

// stubReloader satisfies CatalogReloader without touching storage.
type stubReloader struct {
	err error
}

func (s stubReloader) Reload(ctx context.Context) (*catalog.Snapshot, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &catalog.Snapshot{}, nil
}

func TestCardHandler_List(t *testing.T) {
	t.Parallel()

	snap := &catalog.Snapshot{
		Cards: []model.Card{
			{Name: "FAB Cashback Credit Card", BestFor: model.TagList{"cashback", "no_fee"}},
			{Name: "Etihad Guest Platinum Card", BestFor: model.TagList{"travel", "premium"}},
		},
	}
	h := NewCardHandler(staticSnapshots{snap: snap}, new(MockCardRepository), stubReloader{})

	tests := []struct {
		name      string
		target    string
		wantNames []string
	}{
		{
			name:      "all cards",
			target:    "/api/cards",
			wantNames: []string{"FAB Cashback Credit Card", "Etihad Guest Platinum Card"},
		},
		{
			name:      "filtered by tag",
			target:    "/api/cards?best_for=premium",
			wantNames: []string{"Etihad Guest Platinum Card"},
		},
		{
			name:      "multiple tags match any",
			target:    "/api/cards?best_for=cashback,travel",
			wantNames: []string{"FAB Cashback Credit Card", "Etihad Guest Platinum Card"},
		},
		{
			name:      "unknown tag yields empty",
			target:    "/api/cards?best_for=golf",
			wantNames: []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()

			h.List(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			var resp CardListResponse
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, len(tt.wantNames), resp.Count)
			names := make([]string, 0, len(resp.Cards))
			for _, c := range resp.Cards {
				names = append(names, c.Name)
			}
			assert.ElementsMatch(t, tt.wantNames, names)
		})
	}
}

func TestCardHandler_List_CatalogNotLoaded(t *testing.T) {
	t.Parallel()

	h := NewCardHandler(staticSnapshots{}, new(MockCardRepository), stubReloader{})

	req := httptest.NewRequest(http.MethodGet, "/api/cards", nil)
	w := httptest.NewRecorder()

	h.List(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestCardHandler_Seed(t *testing.T) {
	t.Parallel()

	repo := new(MockCardRepository)
	repo.On("UpsertCard", mock.Anything, mock.AnythingOfType("*model.Card")).Return(nil)
	repo.On("UpsertCoBrand", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("model.CoBrand")).Return(nil)
	repo.On("AddPartnerBenefit", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return(nil)

	h := NewCardHandler(staticSnapshots{}, repo, stubReloader{})

	req := httptest.NewRequest(http.MethodPost, "/api/cards/seed", nil)
	w := httptest.NewRecorder()

	h.Seed(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp SeedResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Greater(t, resp.CardsSeeded, 0)
}

func TestCardHandler_Seed_RepositoryError(t *testing.T) {
	t.Parallel()

	repo := new(MockCardRepository)
	repo.On("UpsertCard", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	h := NewCardHandler(staticSnapshots{}, repo, stubReloader{})

	req := httptest.NewRequest(http.MethodPost, "/api/cards/seed", nil)
	w := httptest.NewRecorder()

	h.Seed(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCardHandler_Seed_ReloadError(t *testing.T) {
	t.Parallel()

	repo := new(MockCardRepository)
	repo.On("UpsertCard", mock.Anything, mock.Anything).Return(nil)
	repo.On("UpsertCoBrand", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	repo.On("AddPartnerBenefit", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	h := NewCardHandler(staticSnapshots{}, repo, stubReloader{err: errors.New("catalog is empty")})

	req := httptest.NewRequest(http.MethodPost, "/api/cards/seed", nil)
	w := httptest.NewRecorder()

	h.Seed(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
