package catalog

import "github.com/Liorohan10/Skin-Sage/internal/domain"

const placeholderImage = "/placeholder.svg?height=200&width=200"

func pct(v float64) *float64 { return &v }

// ReferenceProducts returns the built-in ten product catalog in declaration order.
// A fresh slice is built on every call so callers cannot alias each other's data.
func ReferenceProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "p1",
			Name:        "Gentle Foaming Cleanser",
			Brand:       "SkinSage",
			Category:    domain.CategoryCleanser,
			Description: "A pH-balanced cleanser that removes impurities without stripping the skin.",
			Price:       24.99,
			PriceRange:  domain.TierMidTier,
			Size:        150,
			Ingredients: []domain.Ingredient{
				{Name: "Glycerin", Concentration: pct(5), Purpose: "Hydration", BenefitsFor: []string{"Dry skin", "Dehydrated skin"}},
				{Name: "Amino Acid Surfactants", Purpose: "Gentle cleansing", BenefitsFor: []string{"Sensitive skin", "All skin types"}},
				{Name: "Panthenol", Purpose: "Soothing", BenefitsFor: []string{"Irritated skin", "Sensitive skin"}},
			},
			KeyIngredients: []string{"Glycerin", "Amino Acid Surfactants", "Panthenol"},
			SuitableFor: domain.SuitableFor{
				SkinTypes: []string{"All", "Sensitive", "Combination", "Dry"},
				Concerns:  []string{"Dryness", "Sensitivity", "Dehydration"},
				AgeRanges: []string{"All"},
			},
			AvoidFor: domain.AvoidFor{
				Conditions: []string{"Open wounds"},
			},
			Tags:          []string{"Gentle", "Hydrating", "pH-balanced"},
			AverageRating: 4.7,
			Reviews: []domain.Review{
				{Rating: 5, SkinType: "Sensitive", AgeRange: "25-34", Comment: "Finally a cleanser that doesn't irritate my skin!"},
				{Rating: 4, SkinType: "Combination", AgeRange: "35-44", Comment: "Works well but I wish it removed makeup better."},
			},
			ImageURL: placeholderImage,
		},
		{
			ID:          "p2",
			Name:        "Niacinamide 10% Serum",
			Brand:       "SkinSage",
			Category:    domain.CategorySerum,
			Description: "Helps regulate sebum production and minimize the appearance of pores.",
			Price:       19.99,
			PriceRange:  domain.TierBudget,
			Size:        30,
			Ingredients: []domain.Ingredient{
				{Name: "Niacinamide", Concentration: pct(10), Purpose: "Sebum regulation, pore reduction", BenefitsFor: []string{"Oily skin", "Acne-prone skin", "Large pores"}},
				{Name: "Zinc PCA", Purpose: "Oil control", BenefitsFor: []string{"Oily skin", "Acne-prone skin"}},
				{Name: "Glycerin", Purpose: "Hydration", BenefitsFor: []string{"All skin types"}},
			},
			KeyIngredients: []string{"Niacinamide", "Zinc PCA", "Glycerin"},
			SuitableFor: domain.SuitableFor{
				SkinTypes: []string{"Oily", "Combination", "Normal", "Acne-prone"},
				Concerns:  []string{"Excess oil", "Large pores", "Uneven texture", "Acne"},
				AgeRanges: []string{"All"},
			},
			AvoidFor: domain.AvoidFor{
				SkinTypes:  []string{"Very dry"},
				Concerns:   []string{"Extreme dryness"},
				Conditions: []string{"Niacinamide allergy"},
			},
			Tags:          []string{"Oil control", "Pore minimizing", "Brightening"},
			AverageRating: 4.5,
			Reviews: []domain.Review{
				{Rating: 5, SkinType: "Oily", AgeRange: "18-24", Comment: "My skin is so much less oily now!"},
				{Rating: 4, SkinType: "Combination", AgeRange: "25-34", Comment: "Helped with my pores but took a few weeks to see results."},
			},
			ImageURL: placeholderImage,
		},
		{
			ID:          "p3",
			Name:        "Hyaluronic Acid Serum",
			Brand:       "SkinSage",
			Category:    domain.CategorySerum,
			Description: "Provides deep hydration without adding oil to the skin.",
			Price:       22.99,
			PriceRange:  domain.TierMidTier,
			Size:        30,
			Ingredients: []domain.Ingredient{
				{Name: "Sodium Hyaluronate", Purpose: "Hydration", BenefitsFor: []string{"All skin types", "Dehydrated skin"}},
				{Name: "Glycerin", Purpose: "Hydration", BenefitsFor: []string{"All skin types"}},
				{Name: "Panthenol", Purpose: "Soothing", BenefitsFor: []string{"Sensitive skin"}},
			},
			KeyIngredients: []string{"Sodium Hyaluronate", "Glycerin", "Panthenol"},
			SuitableFor: domain.SuitableFor{
				SkinTypes: []string{"All", "Dehydrated", "Dry", "Combination", "Oily"},
				Concerns:  []string{"Dehydration", "Fine lines", "Dullness"},
				AgeRanges: []string{"All"},
			},
			Tags:          []string{"Hydrating", "Plumping", "Anti-aging"},
			AverageRating: 4.8,
			Reviews: []domain.Review{
				{Rating: 5, SkinType: "Dry", AgeRange: "35-44", Comment: "My skin drinks this up! So hydrating!"},
				{Rating: 5, SkinType: "Combination", AgeRange: "25-34", Comment: "Perfect for dehydrated skin that's also acne-prone."},
			},
			ImageURL: placeholderImage,
		},
		{
			ID:          "p4",
			Name:        "Vitamin C Brightening Serum",
			Brand:       "SkinSage",
			Category:    domain.CategorySerum,
			Description: "Antioxidant-rich serum that brightens skin and fades dark spots.",
			Price:       38.99,
			PriceRange:  domain.TierPremium,
			Size:        30,
			Ingredients: []domain.Ingredient{
				{Name: "Ascorbic Acid", Concentration: pct(15), Purpose: "Brightening, antioxidant", BenefitsFor: []string{"Hyperpigmentation", "Dull skin", "Sun damage"}},
				{Name: "Vitamin E", Purpose: "Antioxidant, stabilizer", BenefitsFor: []string{"All skin types"}},
				{Name: "Ferulic Acid", Purpose: "Antioxidant, stabilizer", BenefitsFor: []string{"All skin types"}},
			},
			KeyIngredients: []string{"Ascorbic Acid", "Vitamin E", "Ferulic Acid"},
			SuitableFor: domain.SuitableFor{
				SkinTypes: []string{"All", "Normal", "Combination", "Mature"},
				Concerns:  []string{"Hyperpigmentation", "Dullness", "Fine lines", "Sun damage"},
				AgeRanges: []string{"25-34", "35-44", "45-54", "55-plus"},
			},
			AvoidFor: domain.AvoidFor{
				SkinTypes:  []string{"Very sensitive"},
				Concerns:   []string{"Active breakouts"},
				Conditions: []string{"Vitamin C allergy"},
			},
			Tags:          []string{"Brightening", "Antioxidant", "Anti-aging"},
			AverageRating: 4.6,
			Reviews: []domain.Review{
				{Rating: 5, SkinType: "Normal", AgeRange: "35-44", Comment: "My dark spots are fading and my skin looks brighter!"},
				{Rating: 4, SkinType: "Combination", AgeRange: "45-54", Comment: "Good results but it took about a month to see changes."},
			},
			ImageURL: placeholderImage,
		},
		{
			ID:          "p5",
			Name:        "Retinol Night Cream",
			Brand:       "SkinSage",
			Category:    domain.CategoryMoisturizer,
			Description: "Anti-aging night cream that reduces fine lines and improves skin texture.",
			Price:       45.99,
			PriceRange:  domain.TierPremium,
			Size:        50,
			Ingredients: []domain.Ingredient{
				{Name: "Retinol", Concentration: pct(0.5), Purpose: "Cell turnover, anti-aging", BenefitsFor: []string{"Aging skin", "Fine lines", "Uneven texture"}},
				{Name: "Peptides", Purpose: "Collagen support", BenefitsFor: []string{"Aging skin", "Loss of firmness"}},
				{Name: "Ceramides", Purpose: "Barrier support", BenefitsFor: []string{"All skin types", "Sensitive skin"}},
			},
			KeyIngredients: []string{"Retinol", "Peptides", "Ceramides"},
			SuitableFor: domain.SuitableFor{
				SkinTypes: []string{"Normal", "Combination", "Dry", "Mature"},
				Concerns:  []string{"Fine lines", "Wrinkles", "Uneven texture", "Loss of firmness"},
				AgeRanges: []string{"25-34", "35-44", "45-54", "55-plus"},
			},
			AvoidFor: domain.AvoidFor{
				SkinTypes:  []string{"Very sensitive"},
				Concerns:   []string{"Active breakouts", "Rosacea"},
				Conditions: []string{"Pregnancy", "Retinoid allergy"},
			},
			Tags:          []string{"Anti-aging", "Resurfacing", "Overnight treatment"},
			AverageRating: 4.7,
			Reviews: []domain.Review{
				{Rating: 5, SkinType: "Normal", AgeRange: "45-54", Comment: "I've been using this for 3 months and my fine lines are much less noticeable!"},
				{Rating: 4, SkinType: "Dry", AgeRange: "35-44", Comment: "Works well but can be drying if not used with enough moisturizer."},
			},
			ImageURL: placeholderImage,
		},
		{
			ID:          "p6",
			Name:        "Hydrating Gel Moisturizer",
			Brand:       "SkinSage",
			Category:    domain.CategoryMoisturizer,
			Description: "Lightweight gel moisturizer that hydrates without clogging pores.",
			Price:       28.99,
			PriceRange:  domain.TierMidTier,
			Size:        50,
			Ingredients: []domain.Ingredient{
				{Name: "Hyaluronic Acid", Purpose: "Hydration", BenefitsFor: []string{"All skin types", "Dehydrated skin"}},
				{Name: "Aloe Vera", Purpose: "Soothing, hydration", BenefitsFor: []string{"Sensitive skin", "Irritated skin"}},
				{Name: "Cucumber Extract", Purpose: "Cooling, soothing", BenefitsFor: []string{"Oily skin", "Combination skin"}},
			},
			KeyIngredients: []string{"Hyaluronic Acid", "Aloe Vera", "Cucumber Extract"},
			SuitableFor: domain.SuitableFor{
				SkinTypes: []string{"Oily", "Combination", "Normal", "Acne-prone"},
				Concerns:  []string{"Dehydration", "Oiliness", "Clogged pores"},
				AgeRanges: []string{"All"},
			},
			AvoidFor: domain.AvoidFor{
				SkinTypes: []string{"Very dry"},
				Concerns:  []string{"Extreme dryness"},
			},
			Tags:          []string{"Lightweight", "Oil-free", "Hydrating"},
			AverageRating: 4.5,
			Reviews: []domain.Review{
				{Rating: 5, SkinType: "Oily", AgeRange: "18-24", Comment: "Finally a moisturizer that doesn't make me break out!"},
				{Rating: 4, SkinType: "Combination", AgeRange: "25-34", Comment: "Great for summer but not quite enough in winter."},
			},
			ImageURL: placeholderImage,
		},
		{
			ID:          "p7",
			Name:        "Rich Repair Night Cream",
			Brand:       "SkinSage",
			Category:    domain.CategoryMoisturizer,
			Description: "Deeply nourishing night cream for dry and mature skin.",
			Price:       32.99,
			PriceRange:  domain.TierMidTier,
			Size:        50,
			Ingredients: []domain.Ingredient{
				{Name: "Shea Butter", Purpose: "Moisturizing", BenefitsFor: []string{"Dry skin", "Mature skin"}},
				{Name: "Ceramides", Purpose: "Barrier repair", BenefitsFor: []string{"Dry skin", "Sensitive skin"}},
				{Name: "Peptides", Purpose: "Anti-aging", BenefitsFor: []string{"Mature skin", "Fine lines"}},
			},
			KeyIngredients: []string{"Shea Butter", "Ceramides", "Peptides"},
			SuitableFor: domain.SuitableFor{
				SkinTypes: []string{"Dry", "Very dry", "Mature", "Normal"},
				Concerns:  []string{"Dryness", "Fine lines", "Dullness", "Rough texture"},
				AgeRanges: []string{"25-34", "35-44", "45-54", "55-plus"},
			},
			AvoidFor: domain.AvoidFor{
				SkinTypes: []string{"Oily", "Acne-prone"},
				Concerns:  []string{"Clogged pores", "Excess oil"},
			},
			Tags:          []string{"Rich", "Nourishing", "Anti-aging"},
			AverageRating: 4.6,
			Reviews: []domain.Review{
				{Rating: 5, SkinType: "Dry", AgeRange: "45-54", Comment: "This cream saved my dry winter skin!"},
				{Rating: 4, SkinType: "Normal", AgeRange: "35-44", Comment: "Very moisturizing but takes a while to absorb."},
			},
			ImageURL: placeholderImage,
		},
		{
			ID:          "p8",
			Name:        "Mineral Sunscreen SPF 50",
			Brand:       "SkinSage",
			Category:    domain.CategorySunscreen,
			Description: "Broad-spectrum mineral sunscreen suitable for sensitive skin.",
			Price:       32.99,
			PriceRange:  domain.TierMidTier,
			Size:        50,
			Ingredients: []domain.Ingredient{
				{Name: "Zinc Oxide", Concentration: pct(12), Purpose: "UV protection", BenefitsFor: []string{"All skin types", "Sensitive skin"}},
				{Name: "Titanium Dioxide", Concentration: pct(5), Purpose: "UV protection", BenefitsFor: []string{"All skin types", "Sensitive skin"}},
				{Name: "Vitamin E", Purpose: "Antioxidant", BenefitsFor: []string{"All skin types"}},
			},
			KeyIngredients: []string{"Zinc Oxide", "Titanium Dioxide", "Vitamin E"},
			SuitableFor: domain.SuitableFor{
				SkinTypes: []string{"All", "Sensitive", "Acne-prone", "Rosacea-prone"},
				Concerns:  []string{"Sun protection", "Sensitivity", "Hyperpigmentation"},
				AgeRanges: []string{"All"},
			},
			AvoidFor: domain.AvoidFor{
				Conditions: []string{"Zinc allergy"},
			},
			Tags:          []string{"Mineral", "Broad-spectrum", "Reef-safe"},
			AverageRating: 4.3,
			Reviews: []domain.Review{
				{Rating: 5, SkinType: "Sensitive", AgeRange: "25-34", Comment: "The only sunscreen that doesn't break me out!"},
				{Rating: 3, SkinType: "Dark", AgeRange: "35-44", Comment: "Good protection but leaves a white cast on my skin."},
			},
			ImageURL: placeholderImage,
		},
		{
			ID:          "p9",
			Name:        "Salicylic Acid Exfoliating Toner",
			Brand:       "SkinSage",
			Category:    domain.CategoryToner,
			Description: "Clarifying toner that unclogs pores and smooths skin texture.",
			Price:       18.99,
			PriceRange:  domain.TierBudget,
			Size:        120,
			Ingredients: []domain.Ingredient{
				{Name: "Salicylic Acid", Concentration: pct(2), Purpose: "Exfoliation, pore clearing", BenefitsFor: []string{"Oily skin", "Acne-prone skin", "Clogged pores"}},
				{Name: "Witch Hazel", Purpose: "Astringent, soothing", BenefitsFor: []string{"Oily skin", "Combination skin"}},
				{Name: "Aloe Vera", Purpose: "Soothing", BenefitsFor: []string{"Sensitive skin", "Irritated skin"}},
			},
			KeyIngredients: []string{"Salicylic Acid", "Witch Hazel", "Aloe Vera"},
			SuitableFor: domain.SuitableFor{
				SkinTypes: []string{"Oily", "Combination", "Acne-prone"},
				Concerns:  []string{"Acne", "Blackheads", "Rough texture", "Large pores"},
				AgeRanges: []string{"All"},
			},
			AvoidFor: domain.AvoidFor{
				SkinTypes:  []string{"Dry", "Very sensitive"},
				Concerns:   []string{"Extreme dryness", "Damaged barrier"},
				Conditions: []string{"Salicylic acid allergy"},
			},
			Tags:          []string{"Exfoliating", "Clarifying", "Pore-clearing"},
			AverageRating: 4.4,
			Reviews: []domain.Review{
				{Rating: 5, SkinType: "Oily", AgeRange: "18-24", Comment: "My skin is so much clearer after using this!"},
				{Rating: 4, SkinType: "Combination", AgeRange: "25-34", Comment: "Works well but can be drying if used too often."},
			},
			ImageURL: placeholderImage,
		},
		{
			ID:          "p10",
			Name:        "Hydrating Face Mask",
			Brand:       "SkinSage",
			Category:    domain.CategoryMask,
			Description: "Intensive hydrating mask for dry and dehydrated skin.",
			Price:       24.99,
			PriceRange:  domain.TierMidTier,
			Size:        75,
			Ingredients: []domain.Ingredient{
				{Name: "Hyaluronic Acid", Purpose: "Hydration", BenefitsFor: []string{"All skin types", "Dehydrated skin"}},
				{Name: "Glycerin", Purpose: "Hydration", BenefitsFor: []string{"All skin types"}},
				{Name: "Honey Extract", Purpose: "Soothing, humectant", BenefitsFor: []string{"Dry skin", "Irritated skin"}},
			},
			KeyIngredients: []string{"Hyaluronic Acid", "Glycerin", "Honey Extract"},
			SuitableFor: domain.SuitableFor{
				SkinTypes: []string{"All", "Dry", "Dehydrated", "Normal", "Combination"},
				Concerns:  []string{"Dehydration", "Dryness", "Dullness", "Tightness"},
				AgeRanges: []string{"All"},
			},
			AvoidFor: domain.AvoidFor{
				Conditions: []string{"Honey allergy"},
			},
			Tags:          []string{"Hydrating", "Soothing", "Plumping"},
			AverageRating: 4.7,
			Reviews: []domain.Review{
				{Rating: 5, SkinType: "Dry", AgeRange: "25-34", Comment: "My skin feels so plump and hydrated after using this!"},
				{Rating: 5, SkinType: "Dehydrated", AgeRange: "35-44", Comment: "Perfect for when my skin needs an extra boost of hydration."},
			},
			ImageURL: placeholderImage,
		},
	}
}
