package main

import (
	"github.com/Liorohan10/Skin-Sage/internal/domain"
	"github.com/spf13/cobra"
)

// rankedProduct is one line of recommend output
type rankedProduct struct {
	Rank         int              `json:"rank"`
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Brand        string           `json:"brand"`
	Category     domain.Category  `json:"category"`
	Price        float64          `json:"price"`
	PriceRange   domain.PriceTier `json:"priceRange"`
	MatchReasons []string         `json:"matchReasons"`
}

func newRecommendCmd(global *globalOptions) *cobra.Command {
	p := &profileOptions{}
	var limit int

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Rank catalog products for a skin profile",
		Long:  "Filters the catalog by budget, avoided ingredients and skin conditions, scores the rest against the profile and prints the top products with match reasons.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := newService(global)
			if err != nil {
				return err
			}

			result := svc.Recommend(p.profile(), limit)

			out := make([]rankedProduct, 0, len(result.Products))
			for i, prod := range result.Products {
				reasons := result.MatchReasons[prod.ID]
				if reasons == nil {
					reasons = []string{}
				}
				out = append(out, rankedProduct{
					Rank:         i + 1,
					ID:           prod.ID,
					Name:         prod.Name,
					Brand:        prod.Brand,
					Category:     prod.Category,
					Price:        prod.Price,
					PriceRange:   prod.PriceRange,
					MatchReasons: reasons,
				})
			}

			return writeJSON(cmd.OutOrStdout(), out)
		},
	}

	addProfileFlags(cmd, p)
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Number of products to return (default 5)")

	return cmd
}
