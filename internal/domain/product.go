package domain

// Category is the routine slot a product fills
type Category string

// Product categories
const (
	CategoryCleanser    Category = "Cleanser"
	CategoryToner       Category = "Toner"
	CategorySerum       Category = "Serum"
	CategoryMoisturizer Category = "Moisturizer"
	CategorySunscreen   Category = "Sunscreen"
	CategoryMask        Category = "Mask"
	CategoryTreatment   Category = "Treatment"
)

// PriceTier is a coarse price bucket, distinct from the numeric price
type PriceTier string

// Price tiers
const (
	TierBudget  PriceTier = "budget"
	TierMidTier PriceTier = "mid-tier"
	TierPremium PriceTier = "premium"
)

// Wildcard values accepted in SuitableFor / AvoidFor skin type and age range lists
const (
	MatchAll = "All"
	MatchAny = "Any"
)

// Ingredient is a single named ingredient of a product
type Ingredient struct {
	Name          string   `json:"name" validate:"required"`
	Concentration *float64 `json:"concentration,omitempty"` // percentage, when known
	Purpose       string   `json:"purpose"`
	BenefitsFor   []string `json:"benefitsFor"`
}

// Review is informational only; scoring does not read it
type Review struct {
	Rating   int    `json:"rating" validate:"min=1,max=5"`
	SkinType string `json:"skinType"`
	AgeRange string `json:"ageRange"`
	Comment  string `json:"comment,omitempty"`
}

// SuitableFor lists the skin types, concerns and age ranges a product targets
type SuitableFor struct {
	SkinTypes []string `json:"skinTypes"`
	Concerns  []string `json:"concerns"`
	AgeRanges []string `json:"ageRanges"`
}

// AvoidFor lists the skin types, concerns and contraindicated conditions
type AvoidFor struct {
	SkinTypes  []string `json:"skinTypes"`
	Concerns   []string `json:"concerns"`
	Conditions []string `json:"conditions"`
}

// Product is a catalog entry. It is created once at startup and never mutated.
type Product struct {
	ID             string       `json:"id" validate:"required"`
	Name           string       `json:"name" validate:"required"`
	Brand          string       `json:"brand"`
	Category       Category     `json:"category" validate:"required,oneof=Cleanser Toner Serum Moisturizer Sunscreen Mask Treatment"`
	Description    string       `json:"description"`
	Price          float64      `json:"price" validate:"gte=0"`
	PriceRange     PriceTier    `json:"priceRange" validate:"required,oneof=budget mid-tier premium"`
	Size           float64      `json:"size"` // ml or g
	Ingredients    []Ingredient `json:"ingredients" validate:"dive"`
	KeyIngredients []string     `json:"keyIngredients"`
	SuitableFor    SuitableFor  `json:"suitableFor"`
	AvoidFor       AvoidFor     `json:"avoidFor"`
	Tags           []string     `json:"tags"`
	AverageRating  float64      `json:"averageRating" validate:"min=1,max=5"`
	Reviews        []Review     `json:"reviews" validate:"dive"`
	ImageURL       string       `json:"imageUrl"`
}

// ScoredProduct pairs a product with its score and the reasons behind it.
// It only lives for the duration of one recommendation call.
type ScoredProduct struct {
	Product      Product
	Score        float64
	MatchReasons []string
}
