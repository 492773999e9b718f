package usecase

import (
	"regexp"
	"strings"

	"github.com/Liorohan10/Skin-Sage/internal/domain"
	"github.com/Liorohan10/Skin-Sage/internal/logging"
)

// InputNormalizer cleans questionnaire answers before they reach the engine
type InputNormalizer struct {
	enableDebugLogging bool
}

// Compiled patterns for input cleanup
var (
	// Matches concentrations like "10%", "0.5 %"
	concentrationPattern = regexp.MustCompile(`\b\d+(\.\d+)?\s*%`)

	// Matches parenthetical notes like "(Glycolic, Lactic Acid)" or "(SLS/SLES)"
	parentheticalPattern = regexp.MustCompile(`\([^)]*\)`)

	// Multiple spaces cleanup
	multiSpacePattern = regexp.MustCompile(`\s+`)
)

// ingredientAliases maps questionnaire slugs to catalog ingredient names
var ingredientAliases = map[string]string{
	"hyaluronic-acid": "Hyaluronic Acid",
	"vitamin-c":       "Ascorbic Acid",
	"ahas":            "Glycolic Acid",
	"aha":             "Glycolic Acid",
	"bhas":            "Salicylic Acid",
	"bha":             "Salicylic Acid",
	"essential-oils":  "Essential Oil",
	"mineral-oil":     "Mineral Oil",
	"sulfates":        "Sulfate",
	"parabens":        "Paraben",
	"silicones":       "Silicone",
	"parfum":          "Fragrance",
}

// concernAliases maps questionnaire slugs to catalog concern names
var concernAliases = map[string]string{
	"oiliness":   "Excess oil",
	"oily":       "Excess oil",
	"aging":      "Anti-aging",
	"texture":    "Uneven texture",
	"pores":      "Large pores",
	"dark-spots": "Hyperpigmentation",
}

// ageRangeAliases maps display labels to age range values
var ageRangeAliases = map[string]string{
	"55+":      "55-plus",
	"under 18": "under-18",
	"<18":      "under-18",
}

// NewInputNormalizer creates a new input normalizer
func NewInputNormalizer(enableDebugLogging bool) *InputNormalizer {
	return &InputNormalizer{
		enableDebugLogging: enableDebugLogging,
	}
}

// NormalizeRequest returns a copy of the request with every free-form field cleaned
func (n *InputNormalizer) NormalizeRequest(req domain.AnalysisRequest) domain.AnalysisRequest {
	out := req
	out.SkinType = n.NormalizeSkinType(req.SkinType)
	out.AgeRange = n.NormalizeAgeRange(req.AgeRange)
	out.Budget = n.NormalizeBudget(req.Budget)
	out.PreferredIngredients = n.NormalizeIngredients(req.PreferredIngredients)
	out.AvoidIngredients = n.NormalizeIngredients(req.AvoidIngredients)
	out.SkinConcerns = n.NormalizeConcerns(req.SkinConcerns)
	out.SkinConditions = dedupeFold(cleanAll(req.SkinConditions))

	if n.enableDebugLogging {
		logging.Debug().
			Strs("preferred", out.PreferredIngredients).
			Strs("avoid", out.AvoidIngredients).
			Strs("concerns", out.SkinConcerns).
			Str("skin_type", out.SkinType).
			Msg("normalized questionnaire input")
	}

	return out
}

// NormalizeIngredients cleans ingredient names and maps known slugs
func (n *InputNormalizer) NormalizeIngredients(values []string) []string {
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		v = concentrationPattern.ReplaceAllString(v, " ")
		v = parentheticalPattern.ReplaceAllString(v, " ")
		v = cleanValue(v)
		if v == "" {
			continue
		}

		key := strings.ToLower(v)
		if alias, ok := ingredientAliases[key]; ok {
			v = alias
		} else if isSlug(v) {
			v = titleWords(strings.ReplaceAll(key, "-", " "))
		}
		cleaned = append(cleaned, v)
	}
	return dedupeFold(cleaned)
}

// NormalizeConcerns cleans concern names and maps known slugs
func (n *InputNormalizer) NormalizeConcerns(values []string) []string {
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		v = cleanValue(v)
		if v == "" {
			continue
		}

		if alias, ok := concernAliases[strings.ToLower(v)]; ok {
			v = alias
		} else if v == strings.ToLower(v) {
			v = capitalizeFirst(v)
		}
		cleaned = append(cleaned, v)
	}
	return dedupeFold(cleaned)
}

// NormalizeSkinType maps "oily" or "OILY" to "Oily"
func (n *InputNormalizer) NormalizeSkinType(v string) string {
	v = cleanValue(v)
	if v == "" {
		return ""
	}
	return capitalizeFirst(strings.ToLower(v))
}

// NormalizeBudget lowercases and trims a budget label, so "Mid-Tier" reads as "mid-tier"
func (n *InputNormalizer) NormalizeBudget(v string) string {
	return strings.ToLower(cleanValue(v))
}

// NormalizeAgeRange maps display labels such as "55+" to range values
func (n *InputNormalizer) NormalizeAgeRange(v string) string {
	v = strings.ToLower(cleanValue(v))
	if alias, ok := ageRangeAliases[v]; ok {
		return alias
	}
	return v
}

// cleanValue trims and collapses whitespace and strips orphaned punctuation
func cleanValue(s string) string {
	s = multiSpacePattern.ReplaceAllString(s, " ")
	return strings.Trim(s, " ,;:/")
}

func cleanAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = cleanValue(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// dedupeFold drops case-insensitive duplicates, keeping the first spelling
func dedupeFold(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		key := strings.ToLower(v)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out
}

// isSlug reports whether s looks like a lowercase hyphenated form value
func isSlug(s string) bool {
	return strings.Contains(s, "-") && s == strings.ToLower(s) && !strings.Contains(s, " ")
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = capitalizeFirst(w)
	}
	return strings.Join(words, " ")
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
