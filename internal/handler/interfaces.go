package handler

import (
	"context"

	"github.com/cardpath/backend/internal/catalog"
	"github.com/cardpath/backend/internal/model"
	"github.com/cardpath/backend/internal/service"
)

// RecommendationServiceInterface defines the scoring operations the handlers need.
type RecommendationServiceInterface interface {
	Recommend(snap *catalog.Snapshot, profile model.UserProfile) model.RecommendationSet
	FilterRecommendations(recommendations []model.ScoredCard, filterType model.FollowUpFilterType, choice, category string) []model.ScoredCard
}

// QuestionnaireServiceInterface defines clarifying-question operations.
type QuestionnaireServiceInterface interface {
	GenerateQuestions(profile model.UserProfile) model.QuestionnaireResult
	EnrichProfile(profile model.UserProfile, answers service.QuestionnaireAnswers) model.UserProfile
}

// SnapshotProvider returns the current catalog snapshot.
type SnapshotProvider interface {
	Current() *catalog.Snapshot
}

// CatalogReloader rebuilds the published snapshot from storage.
type CatalogReloader interface {
	Reload(ctx context.Context) (*catalog.Snapshot, error)
}
