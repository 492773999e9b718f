package domain

import "time"

// RecommendationResult is the ranked output of the engine
type RecommendationResult struct {
	Products     []Product           `json:"products"`
	MatchReasons map[string][]string `json:"matchReasons"`
}

// Routine holds the ordered morning and night product lists
type Routine struct {
	MorningRoutine []Product `json:"morningRoutine"`
	NightRoutine   []Product `json:"nightRoutine"`
}

// RecommendedProduct is the display shape of a product inside an analysis.
// The AI service returns this shape and the engine fallback produces it too.
type RecommendedProduct struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        string   `json:"price"`
	Ingredients  string   `json:"ingredients"`
	SuitableFor  string   `json:"suitableFor"`
	MatchReasons []string `json:"matchReasons"`
}

// AIRecommendation is the payload expected from the generative AI service
type AIRecommendation struct {
	SkinConditionAnalysis string               `json:"skinConditionAnalysis"`
	RecommendedProducts   []RecommendedProduct `json:"recommendedProducts"`
	MorningRoutine        string               `json:"morningRoutine"`
	NightRoutine          string               `json:"nightRoutine"`
	SkinCareAdvice        string               `json:"skinCareAdvice,omitempty"`
}

// Analysis sources
const (
	SourceAI     = "ai"
	SourceEngine = "engine"
)

// ProfileSummary echoes the submitted profile back in an analysis result
type ProfileSummary struct {
	SkinType             string   `json:"skinType"`
	PreferredIngredients []string `json:"preferredIngredients"`
	AvoidIngredients     []string `json:"avoidIngredients"`
	AgeRange             string   `json:"ageRange"`
	Budget               string   `json:"budget"`
	Concerns             []string `json:"concerns"`
}

// AnalysisResult is the stored, retrievable outcome of one analysis
type AnalysisResult struct {
	ID                    string               `json:"id"`
	SkinConditionAnalysis string               `json:"skinConditionAnalysis"`
	RecommendedProducts   []RecommendedProduct `json:"recommendedProducts"`
	MorningRoutine        string               `json:"morningRoutine"`
	NightRoutine          string               `json:"nightRoutine"`
	SkinCareAdvice        string               `json:"skinCareAdvice"`
	AIResponse            string               `json:"aiResponse"`
	Source                string               `json:"source"`
	UserProfile           ProfileSummary       `json:"userProfile"`
	CreatedAt             time.Time            `json:"createdAt"`
}
