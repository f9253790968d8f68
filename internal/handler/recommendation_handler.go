package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/cardpath/backend/internal/model"
	"github.com/cardpath/backend/internal/service"
)

// ProfileInput is the user profile portion of a scoring request.
type ProfileInput struct {
	Salary    float64                           `json:"salary" validate:"gte=0"`
	Spend     map[string]float64                `json:"spend" validate:"dive,gte=0"`
	Goals     model.GoalList                    `json:"goals"`
	Lifestyle map[string][]model.LifestyleUsage `json:"lifestyle"`
}

func (in ProfileInput) toProfile() model.UserProfile {
	return model.UserProfile{
		Salary:    in.Salary,
		Spend:     in.Spend,
		Goals:     in.Goals,
		Lifestyle: in.Lifestyle,
	}
}

// RecommendRequest is the body of POST /api/recommend.
type RecommendRequest struct {
	ProfileInput
	QuestionnaireAnswers service.QuestionnaireAnswers `json:"questionnaire_answers,omitempty"`
}

// FilterRequest is the body of POST /api/filter.
type FilterRequest struct {
	Recommendations []model.ScoredCard `json:"recommendations" validate:"required"`
	FilterType      string             `json:"filter_type" validate:"required"`
	Choice          string             `json:"choice" validate:"required"`
	Category        string             `json:"category"`
}

// FilterResponse is the body returned by POST /api/filter.
type FilterResponse struct {
	Recommendations []model.ScoredCard `json:"recommendations"`
	Count           int                `json:"count"`
}

type RecommendationHandler struct {
	recommendations RecommendationServiceInterface
	questionnaire   QuestionnaireServiceInterface
	snapshots       SnapshotProvider
	validate        *validator.Validate
}

func NewRecommendationHandler(
	recommendations RecommendationServiceInterface,
	questionnaire QuestionnaireServiceInterface,
	snapshots SnapshotProvider,
) *RecommendationHandler {
	return &RecommendationHandler{
		recommendations: recommendations,
		questionnaire:   questionnaire,
		snapshots:       snapshots,
		validate:        validator.New(),
	}
}

// Recommend godoc
// @Summary Get card recommendations
// @Description Score the catalog against a user profile and return ranked recommendations
// @Tags recommendations
// @Accept json
// @Produce json
// @Param input body RecommendRequest true "User profile"
// @Success 200 {object} model.RecommendationSet
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /recommend [post]
func (h *RecommendationHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid profile: "+err.Error())
		return
	}

	snap := h.snapshots.Current()
	if snap == nil {
		respondError(w, http.StatusServiceUnavailable, "card catalog not loaded")
		return
	}

	profile := req.toProfile()
	if len(req.QuestionnaireAnswers) > 0 {
		profile = h.questionnaire.EnrichProfile(profile, req.QuestionnaireAnswers)
	}

	result := h.recommendations.Recommend(snap, profile)
	respondJSON(w, http.StatusOK, result)
}

// Filter godoc
// @Summary Refine recommendations
// @Description Filter a previous recommendation list by the user's answer to a follow-up question
// @Tags recommendations
// @Accept json
// @Produce json
// @Param input body FilterRequest true "Recommendations and follow-up answer"
// @Success 200 {object} FilterResponse
// @Failure 400 {object} ErrorResponse
// @Router /filter [post]
func (h *RecommendationHandler) Filter(w http.ResponseWriter, r *http.Request) {
	var req FilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid filter request: "+err.Error())
		return
	}

	filtered := h.recommendations.FilterRecommendations(
		req.Recommendations,
		model.FollowUpFilterType(req.FilterType),
		req.Choice,
		req.Category,
	)

	respondJSON(w, http.StatusOK, FilterResponse{
		Recommendations: filtered,
		Count:           len(filtered),
	})
}

// Questions godoc
// @Summary Get clarifying questions
// @Description Return spending questionnaire questions for categories the profile leaves unclear
// @Tags recommendations
// @Accept json
// @Produce json
// @Param input body ProfileInput true "User profile"
// @Success 200 {object} model.QuestionnaireResult
// @Failure 400 {object} ErrorResponse
// @Router /questions [post]
func (h *RecommendationHandler) Questions(w http.ResponseWriter, r *http.Request) {
	var req ProfileInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid profile: "+err.Error())
		return
	}

	result := h.questionnaire.GenerateQuestions(req.toProfile())
	respondJSON(w, http.StatusOK, result)
}
