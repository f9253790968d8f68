package service

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/cardpath/backend/internal/model"
	"github.com/cardpath/backend/pkg/currency"
)

// QuestionnaireService turns spending patterns into contextual questions
// and folds the answers back into the profile as lifestyle data, so the
// scorers see where the money actually goes.
type QuestionnaireService struct{}

func NewQuestionnaireService() *QuestionnaireService {
	return &QuestionnaireService{}
}

// unclearCategory is a spend category worth asking about once its monthly
// amount crosses the threshold and no lifestyle data covers it yet.
type unclearCategory struct {
	category  string
	threshold float64
}

// Ordered: earlier entries win when more than two categories qualify.
var unclearCategories = []unclearCategory{
	{"miscellaneous", 1000},
	{"domestic_transport", 500},
	{"online", 1000},
	{"groceries", 800},
	{"dining", 1000},
	{"fuel", 400},
	{"entertainment", 800},
	{"international_travel", 1500},
}

// categoryToLifestyleKey maps spend categories to the lifestyle section a
// questionnaire answer fills in.
var categoryToLifestyleKey = map[string]string{
	"online":               "online_shopping",
	"groceries":            "groceries",
	"fuel":                 "fuel_stations",
	"domestic_transport":   "transport",
	"dining":               "dining",
	"entertainment":        "entertainment",
	"international_travel": "airlines",
}

// GenerateQuestions inspects the profile for significant spending with no
// lifestyle detail and returns up to two contextual questions about it.
func (q *QuestionnaireService) GenerateQuestions(profile model.UserProfile) model.QuestionnaireResult {
	questions := make([]model.Question, 0, 2)

	for _, uc := range unclearCategories {
		amount := profile.SpendOn(uc.category)
		if amount < uc.threshold {
			continue
		}
		key := categoryToLifestyleKey[uc.category]
		if key != "" && len(profile.Lifestyle[key]) > 0 {
			continue
		}
		if question, ok := categoryQuestion(uc.category, amount); ok {
			questions = append(questions, question)
			if len(questions) >= 2 {
				break
			}
		}
	}

	return model.QuestionnaireResult{
		ShouldAsk: len(questions) > 0,
		Questions: questions,
	}
}

func categoryQuestion(category string, amount float64) (model.Question, bool) {
	aed := currency.FormatAED(int64(amount))

	switch category {
	case "miscellaneous":
		return model.Question{
			ID:          "misc_breakdown",
			Text:        fmt.Sprintf("You have %s/month in miscellaneous spending", aed),
			Context:     "What does this mostly include?",
			Type:        "multi",
			AllowCustom: true,
			Options: []model.QuestionOption{
				{Value: "shopping", Label: "Shopping & retail"},
				{Value: "subscriptions", Label: "Subscriptions & memberships"},
				{Value: "personal_care", Label: "Personal care & wellness"},
				{Value: "gifts", Label: "Gifts & donations"},
				{Value: "other", Label: "Other (specify below)"},
			},
		}, true
	case "domestic_transport":
		return model.Question{
			ID:      "transport_type",
			Text:    fmt.Sprintf("You spend %s/month on local transport", aed),
			Context: "How do you usually commute?",
			Type:    "multi",
			Options: []model.QuestionOption{
				{Value: "careem", Label: "Careem"},
				{Value: "uber", Label: "Uber"},
				{Value: "metro", Label: "Metro & public transport"},
				{Value: "taxi", Label: "Regular taxis"},
				{Value: "parking", Label: "Parking & tolls"},
			},
		}, true
	case "online":
		return model.Question{
			ID:      "online_shopping",
			Text:    fmt.Sprintf("We noticed significant online shopping expenses (%s/month)", aed),
			Context: "Where do you shop most frequently?",
			Type:    "multi",
			Options: []model.QuestionOption{
				{Value: "amazon", Label: "Amazon.ae"},
				{Value: "noon", Label: "Noon"},
				{Value: "international", Label: "International sites"},
				{Value: "namshi", Label: "Namshi & fashion"},
			},
		}, true
	case "international_travel":
		return model.Question{
			ID:      "travel_frequency",
			Text:    fmt.Sprintf("You spend %s/month on international travel", aed),
			Context: "How often do you travel internationally?",
			Type:    "single",
			Options: []model.QuestionOption{
				{Value: "monthly", Label: "Monthly or more"},
				{Value: "quarterly", Label: "Every 2-3 months"},
				{Value: "occasional", Label: "Few times a year"},
				{Value: "rare", Label: "Rarely"},
			},
		}, true
	case "groceries":
		return model.Question{
			ID:      "grocery_shopping",
			Text:    fmt.Sprintf("You spend %s/month on groceries", aed),
			Context: "Where do you usually shop for groceries?",
			Type:    "multi",
			Options: []model.QuestionOption{
				{Value: "lulu", Label: "Lulu Hypermarket"},
				{Value: "carrefour", Label: "Carrefour"},
				{Value: "amazon_fresh", Label: "Amazon Fresh"},
				{Value: "spinneys", Label: "Spinneys & premium stores"},
			},
		}, true
	case "dining":
		return model.Question{
			ID:      "dining_habits",
			Text:    fmt.Sprintf("You spend %s/month on dining", aed),
			Context: "How do you usually dine?",
			Type:    "multi",
			Options: []model.QuestionOption{
				{Value: "restaurants", Label: "Restaurants & cafes"},
				{Value: "delivery", Label: "Food delivery apps"},
				{Value: "talabat", Label: "Talabat"},
				{Value: "zomato", Label: "Zomato"},
			},
		}, true
	case "fuel":
		return model.Question{
			ID:      "fuel_stations",
			Text:    fmt.Sprintf("You spend %s/month on fuel", aed),
			Context: "Which fuel stations do you use?",
			Type:    "multi",
			Options: []model.QuestionOption{
				{Value: "adnoc", Label: "ADNOC"},
				{Value: "enoc", Label: "ENOC"},
				{Value: "emarat", Label: "Emarat"},
				{Value: "any", Label: "Any station"},
			},
		}, true
	case "entertainment":
		return model.Question{
			ID:      "entertainment_type",
			Text:    fmt.Sprintf("You spend %s/month on entertainment", aed),
			Context: "What type of entertainment do you prefer?",
			Type:    "multi",
			Options: []model.QuestionOption{
				{Value: "cinema", Label: "Movies & cinema"},
				{Value: "events", Label: "Events & concerts"},
				{Value: "shopping", Label: "Shopping malls"},
				{Value: "activities", Label: "Activities & parks"},
			},
		}, true
	}
	return model.Question{}, false
}

// AnswerValue accepts a single selection, a list of selections, or a
// {option: rank} ranking object.
type AnswerValue struct {
	Values []string
	Ranks  map[string]int
}

func (a *AnswerValue) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		a.Values = []string{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		a.Values = many
		return nil
	}
	return json.Unmarshal(data, &a.Ranks)
}

// QuestionnaireAnswers maps question IDs to their answers.
type QuestionnaireAnswers map[string]AnswerValue

// EnrichProfile converts questionnaire answers into lifestyle usage records
// (each selected service at the default usage share) and returns the
// updated profile. Unanswered or unknown IDs are ignored.
func (q *QuestionnaireService) EnrichProfile(profile model.UserProfile, answers QuestionnaireAnswers) model.UserProfile {
	if len(answers) == 0 {
		return profile
	}

	if profile.Lifestyle == nil {
		profile.Lifestyle = map[string][]model.LifestyleUsage{}
	}

	for questionID, answer := range answers {
		// Free-text companions like misc_breakdown_custom carry no services.
		if strings.HasSuffix(questionID, "_custom") {
			continue
		}

		switch questionID {
		case "online_shopping":
			profile.Lifestyle["online_shopping"] = toUsageRecords(answer.Values)
		case "grocery_shopping":
			profile.Lifestyle["groceries"] = toUsageRecords(answer.Values)
		case "fuel_stations":
			profile.Lifestyle["fuel_stations"] = toUsageRecords(answer.Values)
		case "transport_type":
			profile.Lifestyle["transport"] = toUsageRecords(answer.Values)
		case "dining_habits":
			profile.Lifestyle["dining"] = toUsageRecords(answer.Values)
		case "entertainment_type":
			profile.Lifestyle["entertainment"] = toUsageRecords(answer.Values)
		case "priority":
			// A ranking answer promotes the top two priorities to goals.
			if len(answer.Ranks) > 0 {
				type ranked struct {
					name string
					rank int
				}
				ordered := make([]ranked, 0, len(answer.Ranks))
				for name, rank := range answer.Ranks {
					ordered = append(ordered, ranked{name, rank})
				}
				sort.Slice(ordered, func(i, j int) bool {
					if ordered[i].rank != ordered[j].rank {
						return ordered[i].rank < ordered[j].rank
					}
					return ordered[i].name < ordered[j].name
				})
				for i, r := range ordered {
					if i >= 2 {
						break
					}
					if !profile.Goals.Contains(r.name) {
						profile.Goals = append(profile.Goals, r.name)
					}
				}
			}
		}
	}

	return profile
}

func toUsageRecords(services []string) []model.LifestyleUsage {
	records := make([]model.LifestyleUsage, 0, len(services))
	for _, service := range services {
		records = append(records, model.LifestyleUsage{
			Service:      service,
			UsagePercent: model.DefaultUsagePercent,
		})
	}
	return records
}
