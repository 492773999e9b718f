package usecase

import "github.com/Liorohan10/Skin-Sage/internal/domain"

// generalCareConcern is used for skin types and age ranges with no table entry
const generalCareConcern = "General care"

// concernsBySkinType maps a skin type to the concerns it usually comes with
var concernsBySkinType = map[string][]string{
	"Oily":        {"Excess oil", "Large pores", "Acne"},
	"Dry":         {"Dryness", "Flakiness", "Fine lines"},
	"Combination": {"Excess oil", "Dryness", "Uneven texture"},
	"Sensitive":   {"Sensitivity", "Redness", "Irritation"},
	"Normal":      {"Maintenance", "Prevention"},
}

// concernsByAgeRange maps an age range to the concerns typical for it
var concernsByAgeRange = map[string][]string{
	"under-18": {"Acne", "Oil control"},
	"18-24":    {"Acne", "Hydration", "Prevention"},
	"25-34":    {"Early aging", "Fine lines", "Prevention"},
	"35-44":    {"Anti-aging", "Wrinkles", "Firmness"},
	"45-54":    {"Anti-aging", "Wrinkles", "Loss of elasticity"},
	"55-plus":  {"Deep wrinkles", "Sagging", "Age spots"},
}

// defaultBudgetPreference is the single rule applied to unrecognized budget labels
const defaultBudgetPreference = domain.BudgetMixed

// InferSkinConcerns derives a concern set from skin type and age range.
// The result is the deduplicated union of both tables in first-seen order.
func InferSkinConcerns(skinType, ageRange string) []string {
	byType, ok := concernsBySkinType[skinType]
	if !ok {
		byType = []string{generalCareConcern}
	}

	byAge, ok := concernsByAgeRange[ageRange]
	if !ok {
		byAge = []string{generalCareConcern}
	}

	seen := make(map[string]bool, len(byType)+len(byAge))
	concerns := make([]string, 0, len(byType)+len(byAge))
	for _, c := range append(append([]string{}, byType...), byAge...) {
		if seen[c] {
			continue
		}
		seen[c] = true
		concerns = append(concerns, c)
	}

	return concerns
}

// MapBudgetToRange maps a budget label to a BudgetPreference.
// Unknown labels fall back to defaultBudgetPreference.
func MapBudgetToRange(label string) domain.BudgetPreference {
	switch domain.BudgetPreference(label) {
	case domain.BudgetLow, domain.BudgetMidTier, domain.BudgetPremium, domain.BudgetMixed:
		return domain.BudgetPreference(label)
	default:
		return defaultBudgetPreference
	}
}

// NormalizeProfile returns a copy of the profile with concerns inferred when
// absent and the budget label mapped to a known preference.
func NormalizeProfile(profile domain.UserProfile) domain.UserProfile {
	normalized := profile
	if len(normalized.Concerns) == 0 {
		normalized.Concerns = InferSkinConcerns(profile.SkinType, profile.AgeRange)
	}
	normalized.Budget = MapBudgetToRange(string(profile.Budget))
	return normalized
}
