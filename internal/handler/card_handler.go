package handler

import (
	"log/slog"
	"net/http"

	"github.com/cardpath/backend/internal/apperror"
	"github.com/cardpath/backend/internal/logger"
	"github.com/cardpath/backend/internal/model"
	"github.com/cardpath/backend/internal/repository"
)

// CardListResponse is the body returned by GET /api/cards.
type CardListResponse struct {
	Cards []model.Card `json:"cards"`
	Count int          `json:"count"`
}

// SeedResponse reports how many cards the seed loaded.
type SeedResponse struct {
	CardsSeeded int `json:"cards_seeded"`
}

type CardHandler struct {
	snapshots SnapshotProvider
	repo      repository.CardRepository
	reloader  CatalogReloader
}

func NewCardHandler(snapshots SnapshotProvider, repo repository.CardRepository, reloader CatalogReloader) *CardHandler {
	return &CardHandler{snapshots: snapshots, repo: repo, reloader: reloader}
}

// List godoc
// @Summary List catalog cards
// @Description Get the current card catalog, optionally filtered by best-for tags
// @Tags cards
// @Produce json
// @Param best_for query string false "Comma-separated tags; cards matching any tag are returned"
// @Success 200 {object} CardListResponse
// @Failure 503 {object} ErrorResponse
// @Router /cards [get]
func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) {
	snap := h.snapshots.Current()
	if snap == nil {
		respondError(w, http.StatusServiceUnavailable, "card catalog not loaded")
		return
	}

	cards := snap.Cards
	if tags := splitAndTrim(r.URL.Query().Get("best_for"), ","); len(tags) > 0 {
		filtered := make([]model.Card, 0, len(cards))
		for _, card := range cards {
			if card.BestFor.ContainsAny(tags...) {
				filtered = append(filtered, card)
			}
		}
		cards = filtered
	}

	respondJSON(w, http.StatusOK, CardListResponse{Cards: cards, Count: len(cards)})
}

// Seed godoc
// @Summary Seed the sample catalog
// @Description Load the starter UAE card catalog and refresh the snapshot. Development only.
// @Tags cards
// @Produce json
// @Success 200 {object} SeedResponse
// @Failure 500 {object} ErrorResponse
// @Router /cards/seed [post]
func (h *CardHandler) Seed(w http.ResponseWriter, r *http.Request) {
	count, err := repository.SeedSampleData(r.Context(), h.repo)
	if err != nil {
		logger.FromContext(r.Context()).Error("Catalog seed failed", slog.String("error", err.Error()))
		respondAppError(w, apperror.Wrap(err, "failed to seed catalog"))
		return
	}

	if _, err := h.reloader.Reload(r.Context()); err != nil {
		logger.FromContext(r.Context()).Error("Catalog refresh after seed failed", slog.String("error", err.Error()))
		respondAppError(w, apperror.Wrap(err, "seeded but failed to refresh catalog"))
		return
	}

	respondJSON(w, http.StatusOK, SeedResponse{CardsSeeded: count})
}
