package domain

// BudgetPreference is a user's budget label after normalization
type BudgetPreference string

// Budget preferences. The first three share their values with PriceTier.
const (
	BudgetLow     BudgetPreference = "budget"
	BudgetMidTier BudgetPreference = "mid-tier"
	BudgetPremium BudgetPreference = "premium"
	BudgetMixed   BudgetPreference = "mixed"
)

// Matches reports whether the preference names exactly the given tier
func (b BudgetPreference) Matches(tier PriceTier) bool {
	return string(b) == string(tier)
}

// UserProfile is the normalized set of preferences driving one recommendation call
type UserProfile struct {
	SkinType             string           `json:"skinType"`
	PreferredIngredients []string         `json:"preferredIngredients"`
	AvoidIngredients     []string         `json:"avoidIngredients"`
	AgeRange             string           `json:"ageRange"`
	Budget               BudgetPreference `json:"budget"`
	Concerns             []string         `json:"concerns,omitempty"`
	SkinConditions       []string         `json:"skinConditions,omitempty"`
}

// AnalysisRequest is the questionnaire payload submitted by a user
type AnalysisRequest struct {
	SkinType             string     `json:"skinType" form:"skinType" validate:"required"`
	PreferredIngredients []string   `json:"preferredIngredients"`
	AvoidIngredients     []string   `json:"avoidIngredients"`
	AgeRange             string     `json:"ageRange" form:"ageRange" validate:"required"`
	Budget               string     `json:"budget" form:"budget" validate:"required"`
	SkinConcerns         []string   `json:"skinConcerns"`
	SkinConditions       []string   `json:"skinConditions"`
	FaceImage            *ImageData `json:"-"`
}

// ImageData is an optional face photo attached to an analysis request
type ImageData struct {
	MIMEType string
	Data     []byte
}
