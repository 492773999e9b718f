package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Liorohan10/Skin-Sage/internal/domain"
	"github.com/Liorohan10/Skin-Sage/internal/logging"
)

// Scoring weights
const (
	skinTypeMatchWeight   = 30.0 // suitableFor.skinTypes names the user's type or All
	skinTypeWeakWeight    = 10.0 // no strong match, but not listed in avoidFor.skinTypes
	ingredientMatchWeight = 15.0 // per preferred ingredient found in keyIngredients
	ageRangeMatchWeight   = 20.0 // suitableFor.ageRanges names the user's range or All
	concernMatchWeight    = 25.0 // per user concern listed in suitableFor.concerns
	ratingMultiplier      = 5.0  // applied to averageRating
	budgetMatchWeight     = 15.0 // profile budget equals the product tier
)

// DefaultRecommendationLimit is used when a caller passes a non-positive limit
const DefaultRecommendationLimit = 5

// nightKeyword marks products preferred for the night routine
const nightKeyword = "night"

var (
	morningCategories = []domain.Category{
		domain.CategoryCleanser,
		domain.CategoryToner,
		domain.CategorySerum,
		domain.CategoryMoisturizer,
		domain.CategorySunscreen,
	}
	nightCategories = []domain.Category{
		domain.CategoryCleanser,
		domain.CategoryToner,
		domain.CategorySerum,
		domain.CategoryMoisturizer,
	}
)

// RoutineMode selects how routine slots are filled
type RoutineMode string

const (
	// RoutineModeCategory scores only the slot's own category candidates
	RoutineModeCategory RoutineMode = "category"
	// RoutineModeGlobal takes the overall top product for every slot
	RoutineModeGlobal RoutineMode = "global"
)

// PremiumBudgetPolicy selects how the premium budget label filters tiers
type PremiumBudgetPolicy string

const (
	// PremiumUnfiltered applies no tier filtering for premium users
	PremiumUnfiltered PremiumBudgetPolicy = "unfiltered"
	// PremiumExact keeps only premium-tier products
	PremiumExact PremiumBudgetPolicy = "exact"
)

// EngineConfig holds configuration for the recommendation engine
type EngineConfig struct {
	RoutineMode         RoutineMode
	PremiumBudgetPolicy PremiumBudgetPolicy
	DefaultLimit        int
	EnableDebugLogging  bool
}

// RecommendationEngine filters, scores and ranks catalog products for a profile.
// It holds no mutable state; concurrent calls only share the read-only catalog.
type RecommendationEngine struct {
	catalog             domain.ProductCatalog
	routineMode         RoutineMode
	premiumBudgetPolicy PremiumBudgetPolicy
	defaultLimit        int
	enableDebugLogging  bool
}

// NewRecommendationEngine creates an engine over the given catalog
func NewRecommendationEngine(catalog domain.ProductCatalog, config EngineConfig) *RecommendationEngine {
	mode := config.RoutineMode
	if mode != RoutineModeGlobal {
		mode = RoutineModeCategory
	}

	policy := config.PremiumBudgetPolicy
	if policy != PremiumExact {
		policy = PremiumUnfiltered
	}

	limit := config.DefaultLimit
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}

	return &RecommendationEngine{
		catalog:             catalog,
		routineMode:         mode,
		premiumBudgetPolicy: policy,
		defaultLimit:        limit,
		enableDebugLogging:  config.EnableDebugLogging,
	}
}

// RecommendProducts returns the top products for the profile, best first.
// A non-positive limit falls back to the configured default.
func (e *RecommendationEngine) RecommendProducts(profile domain.UserProfile, limit int) domain.RecommendationResult {
	return e.recommendFrom(e.catalog.GetAll(), profile, limit)
}

// GenerateRoutine assembles the morning and night routines for the profile.
// Slots with no surviving candidate are left out.
func (e *RecommendationEngine) GenerateRoutine(profile domain.UserProfile) domain.Routine {
	products := e.catalog.GetAll()

	routine := domain.Routine{
		MorningRoutine: make([]domain.Product, 0, len(morningCategories)),
		NightRoutine:   make([]domain.Product, 0, len(nightCategories)),
	}

	for _, category := range morningCategories {
		if p, ok := e.pickForSlot(products, morningCandidates(products, category), profile); ok {
			routine.MorningRoutine = append(routine.MorningRoutine, p)
		}
	}

	for _, category := range nightCategories {
		if p, ok := e.pickForSlot(products, nightCandidates(products, category), profile); ok {
			routine.NightRoutine = append(routine.NightRoutine, p)
		}
	}

	return routine
}

func (e *RecommendationEngine) pickForSlot(all, candidates []domain.Product, profile domain.UserProfile) (domain.Product, bool) {
	pool := candidates
	if e.routineMode == RoutineModeGlobal {
		pool = all
	}

	result := e.recommendFrom(pool, profile, 1)
	if len(result.Products) == 0 {
		return domain.Product{}, false
	}
	return result.Products[0], true
}

func (e *RecommendationEngine) recommendFrom(products []domain.Product, profile domain.UserProfile, limit int) domain.RecommendationResult {
	if limit <= 0 {
		limit = e.defaultLimit
	}

	profile.Budget = MapBudgetToRange(string(profile.Budget))

	filtered := e.filterProducts(products, profile)
	scored := scoreProducts(filtered, profile)

	// Stable so equal scores keep catalog order
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}

	result := domain.RecommendationResult{
		Products:     make([]domain.Product, 0, len(scored)),
		MatchReasons: make(map[string][]string, len(scored)),
	}
	for _, sp := range scored {
		result.Products = append(result.Products, sp.Product)
		result.MatchReasons[sp.Product.ID] = sp.MatchReasons
	}

	if e.enableDebugLogging {
		logging.Debug().
			Int("catalog", len(products)).
			Int("filtered", len(filtered)).
			Int("returned", len(result.Products)).
			Str("skin_type", profile.SkinType).
			Str("budget", string(profile.Budget)).
			Msg("recommendation computed")
	}

	return result
}

// filterProducts keeps, in order, the products passing the budget,
// avoid-ingredient and contraindicated-condition rules
func (e *RecommendationEngine) filterProducts(products []domain.Product, profile domain.UserProfile) []domain.Product {
	avoid := lowerAll(profile.AvoidIngredients)

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if !e.passesBudget(p, profile.Budget) {
			continue
		}
		if containsAvoidedIngredient(p, avoid) {
			continue
		}
		if hasContraindication(p, profile.SkinConditions) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func (e *RecommendationEngine) passesBudget(p domain.Product, budget domain.BudgetPreference) bool {
	switch budget {
	case domain.BudgetLow:
		return p.PriceRange == domain.TierBudget
	case domain.BudgetMidTier:
		return p.PriceRange != domain.TierPremium
	case domain.BudgetPremium:
		if e.premiumBudgetPolicy == PremiumExact {
			return p.PriceRange == domain.TierPremium
		}
		return true
	default:
		return true
	}
}

func containsAvoidedIngredient(p domain.Product, avoid []string) bool {
	if len(avoid) == 0 {
		return false
	}
	for _, ing := range p.Ingredients {
		name := strings.ToLower(ing.Name)
		for _, a := range avoid {
			if strings.Contains(name, a) {
				return true
			}
		}
	}
	return false
}

func hasContraindication(p domain.Product, conditions []string) bool {
	for _, c := range conditions {
		if containsExact(p.AvoidFor.Conditions, c) {
			return true
		}
	}
	return false
}

// scoreProducts applies every scoring rule to each product in order
func scoreProducts(products []domain.Product, profile domain.UserProfile) []domain.ScoredProduct {
	scored := make([]domain.ScoredProduct, 0, len(products))
	for _, p := range products {
		score, reasons := scoreProduct(p, profile)
		scored = append(scored, domain.ScoredProduct{Product: p, Score: score, MatchReasons: reasons})
	}
	return scored
}

func scoreProduct(p domain.Product, profile domain.UserProfile) (float64, []string) {
	score := 0.0
	reasons := make([]string, 0, 5)

	if matchesWildcard(p.SuitableFor.SkinTypes, profile.SkinType) {
		score += skinTypeMatchWeight
		reasons = append(reasons, fmt.Sprintf("Suitable for %s skin", profile.SkinType))
	} else if !containsExact(p.AvoidFor.SkinTypes, profile.SkinType) {
		score += skinTypeWeakWeight
	}

	if n := countIngredientMatches(p.KeyIngredients, profile.PreferredIngredients); n > 0 {
		score += float64(n) * ingredientMatchWeight
		reasons = append(reasons, fmt.Sprintf("Contains %d of your preferred ingredients", n))
	}

	if matchesWildcard(p.SuitableFor.AgeRanges, profile.AgeRange) {
		score += ageRangeMatchWeight
		reasons = append(reasons, "Recommended for your age range")
	}

	if n := countConcernMatches(p.SuitableFor.Concerns, profile.Concerns); n > 0 {
		score += float64(n) * concernMatchWeight
		reasons = append(reasons, fmt.Sprintf("Addresses %d of your skin concerns", n))
	}

	score += p.AverageRating * ratingMultiplier

	if profile.Budget.Matches(p.PriceRange) {
		score += budgetMatchWeight
		reasons = append(reasons, "Fits your budget preference")
	}

	return score, reasons
}

// countIngredientMatches counts preferred ingredients that appear, case-insensitively,
// inside any key ingredient
func countIngredientMatches(keyIngredients, preferred []string) int {
	keys := lowerAll(keyIngredients)
	count := 0
	for _, pref := range lowerAll(preferred) {
		for _, k := range keys {
			if strings.Contains(k, pref) {
				count++
				break
			}
		}
	}
	return count
}

func countConcernMatches(productConcerns, userConcerns []string) int {
	count := 0
	for _, c := range userConcerns {
		if containsExact(productConcerns, c) {
			count++
		}
	}
	return count
}

func morningCandidates(products []domain.Product, category domain.Category) []domain.Product {
	return productsInCategory(products, category)
}

// nightCandidates prefers products mentioning "night" in name or description,
// falling back to the whole category when none do
func nightCandidates(products []domain.Product, category domain.Category) []domain.Product {
	inCategory := productsInCategory(products, category)

	night := make([]domain.Product, 0, len(inCategory))
	for _, p := range inCategory {
		if strings.Contains(strings.ToLower(p.Name), nightKeyword) ||
			strings.Contains(strings.ToLower(p.Description), nightKeyword) {
			night = append(night, p)
		}
	}

	if len(night) > 0 {
		return night
	}
	return inCategory
}

func productsInCategory(products []domain.Product, category domain.Category) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// matchesWildcard reports whether values names v exactly or holds the All/Any sentinel
func matchesWildcard(values []string, v string) bool {
	for _, s := range values {
		if s == v || s == domain.MatchAll || s == domain.MatchAny {
			return true
		}
	}
	return false
}

func containsExact(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func lowerAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		out = append(out, strings.ToLower(v))
	}
	return out
}
