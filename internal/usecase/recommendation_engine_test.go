package usecase

import (
	"strings"
	"testing"

	"github.com/Liorohan10/Skin-Sage/internal/domain"
	"github.com/Liorohan10/Skin-Sage/internal/infrastructure/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// combinationProfile is the reference end-to-end profile
func combinationProfile() domain.UserProfile {
	return domain.UserProfile{
		SkinType:             "Combination",
		PreferredIngredients: []string{"Niacinamide"},
		AvoidIngredients:     []string{"Fragrance"},
		AgeRange:             "25-34",
		Budget:               domain.BudgetMidTier,
		Concerns:             []string{"Excess oil"},
	}
}

func newReferenceEngine(config EngineConfig) *RecommendationEngine {
	return NewRecommendationEngine(catalog.NewReference(), config)
}

func productIDs(products []domain.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestNewRecommendationEngine(t *testing.T) {
	tests := []struct {
		name       string
		config     EngineConfig
		wantMode   RoutineMode
		wantPolicy PremiumBudgetPolicy
		wantLimit  int
	}{
		{
			name:       "zero config uses defaults",
			config:     EngineConfig{},
			wantMode:   RoutineModeCategory,
			wantPolicy: PremiumUnfiltered,
			wantLimit:  5,
		},
		{
			name:       "explicit values kept",
			config:     EngineConfig{RoutineMode: RoutineModeGlobal, PremiumBudgetPolicy: PremiumExact, DefaultLimit: 3},
			wantMode:   RoutineModeGlobal,
			wantPolicy: PremiumExact,
			wantLimit:  3,
		},
		{
			name:       "unknown values fall back",
			config:     EngineConfig{RoutineMode: "random", PremiumBudgetPolicy: "strict", DefaultLimit: -1},
			wantMode:   RoutineModeCategory,
			wantPolicy: PremiumUnfiltered,
			wantLimit:  5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newReferenceEngine(tt.config)
			assert.Equal(t, tt.wantMode, e.routineMode)
			assert.Equal(t, tt.wantPolicy, e.premiumBudgetPolicy)
			assert.Equal(t, tt.wantLimit, e.defaultLimit)
		})
	}
}

func TestRecommendProducts_EndToEnd(t *testing.T) {
	e := newReferenceEngine(EngineConfig{})

	result := e.RecommendProducts(combinationProfile(), 5)

	assert.Equal(t, []string{"p2", "p3", "p1", "p10", "p6"}, productIDs(result.Products))

	p2 := result.Products[0]
	assert.Equal(t, "Niacinamide 10% Serum", p2.Name)

	reasons := result.MatchReasons["p2"]
	assert.Contains(t, reasons, "Suitable for Combination skin")
	assert.Contains(t, reasons, "Contains 1 of your preferred ingredients")
	assert.Contains(t, reasons, "Recommended for your age range")
	assert.Contains(t, reasons, "Addresses 1 of your skin concerns")
	assert.NotContains(t, reasons, "Fits your budget preference")

	for _, p := range result.Products {
		assert.NotEqual(t, domain.TierPremium, p.PriceRange, "product %s", p.ID)
	}

	assert.Len(t, result.MatchReasons, len(result.Products))
	for _, p := range result.Products {
		_, ok := result.MatchReasons[p.ID]
		assert.True(t, ok, "missing reasons for %s", p.ID)
	}
}

func TestScoreProducts_ReferenceScores(t *testing.T) {
	e := newReferenceEngine(EngineConfig{})
	profile := combinationProfile()

	filtered := e.filterProducts(catalog.ReferenceProducts(), profile)
	scored := scoreProducts(filtered, profile)

	want := map[string]float64{
		"p1":  88.5,
		"p2":  112.5,
		"p3":  89,
		"p6":  87.5,
		"p7":  68,
		"p8":  86.5,
		"p9":  72,
		"p10": 88.5,
	}

	require.Len(t, scored, len(want))
	for _, sp := range scored {
		assert.InDelta(t, want[sp.Product.ID], sp.Score, 0.0001, "score for %s", sp.Product.ID)
	}
}

func TestScoreProduct_Rules(t *testing.T) {
	base := domain.Product{
		ID:            "x",
		PriceRange:    domain.TierBudget,
		AverageRating: 4.0,
	}

	t.Run("rating only with weak pass", func(t *testing.T) {
		score, reasons := scoreProduct(base, domain.UserProfile{SkinType: "Oily", Budget: domain.BudgetMixed})
		assert.InDelta(t, 30.0, score, 0.0001) // 10 weak pass + 20 rating
		assert.Empty(t, reasons)
	})

	t.Run("avoided skin type gets no weak pass", func(t *testing.T) {
		p := base
		p.AvoidFor.SkinTypes = []string{"Oily"}
		score, _ := scoreProduct(p, domain.UserProfile{SkinType: "Oily", Budget: domain.BudgetMixed})
		assert.InDelta(t, 20.0, score, 0.0001)
	})

	t.Run("All and Any sentinels count as strong matches", func(t *testing.T) {
		for _, sentinel := range []string{domain.MatchAll, domain.MatchAny} {
			p := base
			p.SuitableFor.SkinTypes = []string{sentinel}
			p.SuitableFor.AgeRanges = []string{sentinel}
			score, reasons := scoreProduct(p, domain.UserProfile{SkinType: "Dry", AgeRange: "18-24", Budget: domain.BudgetMixed})
			assert.InDelta(t, 70.0, score, 0.0001, sentinel)
			assert.Equal(t, []string{"Suitable for Dry skin", "Recommended for your age range"}, reasons)
		}
	})

	t.Run("multiple preferred ingredients and concerns", func(t *testing.T) {
		p := base
		p.KeyIngredients = []string{"Hyaluronic Acid", "Niacinamide", "Ceramide NP"}
		p.SuitableFor.Concerns = []string{"Dryness", "Acne"}
		profile := domain.UserProfile{
			SkinType:             "Dry",
			PreferredIngredients: []string{"hyaluronic", "CERAMIDE", "Retinol"},
			Concerns:             []string{"Dryness", "Acne", "Redness"},
			Budget:               domain.BudgetLow,
		}

		score, reasons := scoreProduct(p, profile)
		// 10 weak + 30 ingredients + 50 concerns + 20 rating + 15 budget
		assert.InDelta(t, 125.0, score, 0.0001)
		assert.Equal(t, []string{
			"Contains 2 of your preferred ingredients",
			"Addresses 2 of your skin concerns",
			"Fits your budget preference",
		}, reasons)
	})

	t.Run("concern match is exact", func(t *testing.T) {
		p := base
		p.SuitableFor.Concerns = []string{"Excess oil"}
		_, reasons := scoreProduct(p, domain.UserProfile{Concerns: []string{"excess oil"}, Budget: domain.BudgetMixed})
		assert.Empty(t, reasons)
	})
}

func TestFilterProducts_BudgetSoundness(t *testing.T) {
	e := newReferenceEngine(EngineConfig{})

	profiles := []domain.UserProfile{
		{SkinType: "Oily", AgeRange: "18-24", Budget: domain.BudgetLow},
		{SkinType: "Dry", AgeRange: "55-plus", Budget: domain.BudgetLow, Concerns: []string{"Dryness"}},
		{SkinType: "Sensitive", AgeRange: "under-18", Budget: domain.BudgetLow, AvoidIngredients: []string{"acid"}},
	}

	for _, profile := range profiles {
		filtered := e.filterProducts(catalog.ReferenceProducts(), profile)
		require.NotEmpty(t, filtered)
		for _, p := range filtered {
			assert.Equal(t, domain.TierBudget, p.PriceRange, "product %s", p.ID)
		}
	}
}

func TestFilterProducts_BudgetRules(t *testing.T) {
	tests := []struct {
		name   string
		budget domain.BudgetPreference
		policy PremiumBudgetPolicy
		want   []string
	}{
		{"mixed keeps everything", domain.BudgetMixed, PremiumUnfiltered, []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8", "p9", "p10"}},
		{"budget keeps budget tier", domain.BudgetLow, PremiumUnfiltered, []string{"p2", "p9"}},
		{"mid-tier drops premium", domain.BudgetMidTier, PremiumUnfiltered, []string{"p1", "p2", "p3", "p6", "p7", "p8", "p9", "p10"}},
		{"premium unfiltered", domain.BudgetPremium, PremiumUnfiltered, []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8", "p9", "p10"}},
		{"premium exact", domain.BudgetPremium, PremiumExact, []string{"p4", "p5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newReferenceEngine(EngineConfig{PremiumBudgetPolicy: tt.policy})
			filtered := e.filterProducts(catalog.ReferenceProducts(), domain.UserProfile{Budget: tt.budget})
			assert.Equal(t, tt.want, productIDs(filtered))
		})
	}
}

func TestRecommendProducts_UnknownBudgetActsAsMixed(t *testing.T) {
	e := newReferenceEngine(EngineConfig{})

	profile := domain.UserProfile{SkinType: "Oily", AgeRange: "18-24", Budget: "luxury"}
	mixed := profile
	mixed.Budget = domain.BudgetMixed

	assert.Equal(t, e.RecommendProducts(mixed, 10), e.RecommendProducts(profile, 10))
	assert.Len(t, e.RecommendProducts(profile, 10).Products, 10)
}

func TestFilterProducts_AvoidIngredients(t *testing.T) {
	e := newReferenceEngine(EngineConfig{})

	for _, avoid := range []string{"Glycerin", "acid", "ZINC", "vera", "Fragrance"} {
		t.Run(avoid, func(t *testing.T) {
			profile := domain.UserProfile{SkinType: "Normal", AgeRange: "35-44", Budget: domain.BudgetMixed, AvoidIngredients: []string{avoid}}
			result := e.RecommendProducts(profile, 10)

			needle := strings.ToLower(avoid)
			for _, p := range result.Products {
				for _, ing := range p.Ingredients {
					assert.NotContains(t, strings.ToLower(ing.Name), needle, "product %s", p.ID)
				}
			}
		})
	}

	t.Run("empty avoid list imposes no filtering", func(t *testing.T) {
		filtered := e.filterProducts(catalog.ReferenceProducts(), domain.UserProfile{Budget: domain.BudgetMixed})
		assert.Len(t, filtered, 10)
	})
}

func TestFilterProducts_Conditions(t *testing.T) {
	e := newReferenceEngine(EngineConfig{})

	filtered := e.filterProducts(catalog.ReferenceProducts(), domain.UserProfile{
		Budget:         domain.BudgetMixed,
		SkinConditions: []string{"Honey allergy", "Zinc allergy"},
	})

	ids := productIDs(filtered)
	assert.NotContains(t, ids, "p10")
	assert.NotContains(t, ids, "p8")
	assert.Len(t, ids, 8)

	t.Run("condition match is exact", func(t *testing.T) {
		filtered := e.filterProducts(catalog.ReferenceProducts(), domain.UserProfile{
			Budget:         domain.BudgetMixed,
			SkinConditions: []string{"honey allergy"},
		})
		assert.Len(t, filtered, 10)
	})
}

func TestRecommendProducts_ScoreMonotonicity(t *testing.T) {
	without := combinationProfile()
	without.PreferredIngredients = nil

	with := combinationProfile()
	with.PreferredIngredients = []string{"Glycerin"}

	for _, p := range catalog.ReferenceProducts() {
		if countIngredientMatches(p.KeyIngredients, with.PreferredIngredients) == 0 {
			continue
		}
		before, _ := scoreProduct(p, without)
		after, _ := scoreProduct(p, with)
		assert.Greater(t, after, before, "product %s", p.ID)
	}
}

func TestRecommendProducts_RankingOrder(t *testing.T) {
	e := newReferenceEngine(EngineConfig{})
	profile := combinationProfile()

	result := e.RecommendProducts(profile, 10)
	require.Len(t, result.Products, 8)

	scores := make([]float64, 0, len(result.Products))
	for _, p := range result.Products {
		s, _ := scoreProduct(p, profile)
		scores = append(scores, s)
	}
	for i := 1; i < len(scores); i++ {
		assert.GreaterOrEqual(t, scores[i-1], scores[i])
	}

	// p1 and p10 tie at 88.5; catalog order wins
	ids := productIDs(result.Products)
	assert.Equal(t, []string{"p2", "p3", "p1", "p10", "p6", "p8", "p9", "p7"}, ids)
}

func TestRecommendProducts_StableTies(t *testing.T) {
	products := []domain.Product{
		{ID: "a", PriceRange: domain.TierBudget, AverageRating: 4},
		{ID: "b", PriceRange: domain.TierBudget, AverageRating: 5},
		{ID: "c", PriceRange: domain.TierBudget, AverageRating: 4},
		{ID: "d", PriceRange: domain.TierBudget, AverageRating: 4},
	}
	e := NewRecommendationEngine(catalog.New(products), EngineConfig{})

	result := e.RecommendProducts(domain.UserProfile{Budget: domain.BudgetMixed}, 10)
	assert.Equal(t, []string{"b", "a", "c", "d"}, productIDs(result.Products))
}

func TestRecommendProducts_Limit(t *testing.T) {
	e := newReferenceEngine(EngineConfig{})
	profile := combinationProfile() // 8 products survive filtering

	tests := []struct {
		limit int
		want  int
	}{
		{limit: 1, want: 1},
		{limit: 3, want: 3},
		{limit: 5, want: 5},
		{limit: 8, want: 8},
		{limit: 20, want: 8},
		{limit: 0, want: 5},
		{limit: -2, want: 5},
	}

	for _, tt := range tests {
		result := e.RecommendProducts(profile, tt.limit)
		assert.Len(t, result.Products, tt.want, "limit %d", tt.limit)
		assert.Len(t, result.MatchReasons, tt.want, "limit %d", tt.limit)
	}
}

func TestRecommendProducts_EmptyCatalog(t *testing.T) {
	e := NewRecommendationEngine(catalog.New(nil), EngineConfig{})

	result := e.RecommendProducts(combinationProfile(), 5)

	assert.NotNil(t, result.Products)
	assert.Empty(t, result.Products)
	assert.NotNil(t, result.MatchReasons)
	assert.Empty(t, result.MatchReasons)
}

func TestRecommendProducts_NoSurvivors(t *testing.T) {
	e := newReferenceEngine(EngineConfig{})

	profile := combinationProfile()
	profile.AvoidIngredients = []string{"a"} // every ingredient name contains an "a"

	result := e.RecommendProducts(profile, 5)
	assert.Empty(t, result.Products)
	assert.Empty(t, result.MatchReasons)
}

func TestRecommendProducts_Idempotent(t *testing.T) {
	e := newReferenceEngine(EngineConfig{})
	profile := combinationProfile()

	first := e.RecommendProducts(profile, 5)
	second := e.RecommendProducts(profile, 5)

	assert.Equal(t, first, second)
}

func TestGenerateRoutine_CategoryMode(t *testing.T) {
	e := newReferenceEngine(EngineConfig{RoutineMode: RoutineModeCategory})

	routine := e.GenerateRoutine(combinationProfile())

	assert.Equal(t, []string{"p1", "p9", "p2", "p6", "p8"}, productIDs(routine.MorningRoutine))
	// Night moisturizer pool is the two night creams; p5 is premium and filtered
	assert.Equal(t, []string{"p1", "p9", "p2", "p7"}, productIDs(routine.NightRoutine))

	for i, category := range morningCategories {
		assert.Equal(t, category, routine.MorningRoutine[i].Category)
	}
	for i, category := range nightCategories {
		assert.Equal(t, category, routine.NightRoutine[i].Category)
	}
}

func TestGenerateRoutine_GlobalMode(t *testing.T) {
	e := newReferenceEngine(EngineConfig{RoutineMode: RoutineModeGlobal})

	routine := e.GenerateRoutine(combinationProfile())

	assert.Equal(t, []string{"p2", "p2", "p2", "p2", "p2"}, productIDs(routine.MorningRoutine))
	assert.Equal(t, []string{"p2", "p2", "p2", "p2"}, productIDs(routine.NightRoutine))
}

func TestGenerateRoutine_SkipsEmptySlots(t *testing.T) {
	t.Run("budget profile has no budget cleanser", func(t *testing.T) {
		e := newReferenceEngine(EngineConfig{})
		profile := combinationProfile()
		profile.Budget = domain.BudgetLow

		routine := e.GenerateRoutine(profile)

		assert.Equal(t, []string{"p9", "p2"}, productIDs(routine.MorningRoutine))
		assert.Equal(t, []string{"p9", "p2"}, productIDs(routine.NightRoutine))
	})

	t.Run("empty catalog", func(t *testing.T) {
		for _, mode := range []RoutineMode{RoutineModeCategory, RoutineModeGlobal} {
			e := NewRecommendationEngine(catalog.New(nil), EngineConfig{RoutineMode: mode})
			routine := e.GenerateRoutine(combinationProfile())
			assert.Empty(t, routine.MorningRoutine, mode)
			assert.Empty(t, routine.NightRoutine, mode)
		}
	})
}

func TestNightCandidates(t *testing.T) {
	products := catalog.ReferenceProducts()

	t.Run("prefers night products", func(t *testing.T) {
		assert.Equal(t, []string{"p5", "p7"}, productIDs(nightCandidates(products, domain.CategoryMoisturizer)))
	})

	t.Run("falls back to whole category", func(t *testing.T) {
		assert.Equal(t, []string{"p2", "p3", "p4"}, productIDs(nightCandidates(products, domain.CategorySerum)))
	})

	t.Run("matches description case-insensitively", func(t *testing.T) {
		custom := []domain.Product{
			{ID: "a", Category: domain.CategoryToner},
			{ID: "b", Category: domain.CategoryToner, Description: "Use at NIGHT only"},
		}
		assert.Equal(t, []string{"b"}, productIDs(nightCandidates(custom, domain.CategoryToner)))
	})
}
