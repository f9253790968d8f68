package model

// RecommendationType tags which scorer produced a ScoredCard.
type RecommendationType string

const (
	RecommendationTypeGoal     RecommendationType = "goal"
	RecommendationTypeSpending RecommendationType = "spending"
)

// LifestyleMatch records why a card matched the user's lifestyle or
// spending pattern; surfaced in reasons.
type LifestyleMatch struct {
	Type    string `json:"type"` // co_branded, partner, high_online, ...
	Service string `json:"service"`
	Usage   int    `json:"usage"`
	Benefit string `json:"benefit"`
}

// ScoredCard is one ranked catalog entry for a profile. Pure derivation,
// recomputed on every request.
type ScoredCard struct {
	CardName             string             `json:"card_name"`
	Bank                 string             `json:"bank"`
	AnnualFee            int                `json:"annual_fee"`
	MinSalary            int                `json:"min_salary"`
	Rewards              RewardMap          `json:"rewards"`
	BestFor              TagList            `json:"best_for"`
	FitScore             float64            `json:"fit_score"`
	Reasons              []string           `json:"reasons"`
	EstimatedAnnualValue string             `json:"estimated_annual_value"`
	RecommendationType   RecommendationType `json:"recommendation_type"`
	MatchedGoals         []string           `json:"matched_goals,omitempty"`
	TotalGoals           int                `json:"total_goals,omitempty"`
	LifestyleMatches     []LifestyleMatch   `json:"lifestyle_matches,omitempty"`
	IsTopChoice          bool               `json:"is_top_choice,omitempty"`
	ApplyURL             string             `json:"apply_url"`
}

// FollowUpFilterType discriminates the follow-up question kinds and the
// matching filter predicates.
type FollowUpFilterType string

const (
	FilterAnnualFee       FollowUpFilterType = "annual_fee"
	FilterSpendingFocus   FollowUpFilterType = "spending_focus"
	FilterBrandLoyalty    FollowUpFilterType = "brand_loyalty"
	FilterPremiumBenefits FollowUpFilterType = "premium_benefits"
)

// FollowUpQuestion is a clarifying question surfaced when the result set is
// broad enough to benefit from narrowing. Options always come in pairs.
type FollowUpQuestion struct {
	Question   string             `json:"question"`
	Options    []string           `json:"options"`
	FilterType FollowUpFilterType `json:"filter_type"`
	Category   string             `json:"category,omitempty"`
}

// RecommendationSet is the full result of one recommendation call.
type RecommendationSet struct {
	Recommendations   []ScoredCard       `json:"recommendations"`
	GoalBased         []ScoredCard       `json:"goal_based"`
	SpendingBased     []ScoredCard       `json:"spending_based"`
	TopChoices        []ScoredCard       `json:"top_choices"`
	HasGoals          bool               `json:"has_goals"`
	FollowUpQuestions []FollowUpQuestion `json:"follow_up_questions"`
}

// QuestionOption is one selectable answer in a questionnaire question.
type QuestionOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Icon  string `json:"icon,omitempty"`
}

// Question is a contextual questionnaire question generated from spending
// patterns that lack lifestyle detail.
type Question struct {
	ID          string           `json:"id"`
	Text        string           `json:"text"`
	Context     string           `json:"context"`
	Type        string           `json:"type"` // single or multi
	AllowCustom bool             `json:"allow_custom,omitempty"`
	Options     []QuestionOption `json:"options"`
}

// QuestionnaireResult wraps generated questions with a should-ask flag.
type QuestionnaireResult struct {
	ShouldAsk bool       `json:"should_ask"`
	Questions []Question `json:"questions"`
}
