// Package main implements the skinsage CLI for running the recommendation engine offline.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Liorohan10/Skin-Sage/internal/domain"
	"github.com/Liorohan10/Skin-Sage/internal/infrastructure/catalog"
	"github.com/Liorohan10/Skin-Sage/internal/logging"
	"github.com/Liorohan10/Skin-Sage/internal/usecase"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// globalOptions are shared by every subcommand
type globalOptions struct {
	catalogPath   string
	routineMode   string
	premiumPolicy string
	verbose       bool
}

// profileOptions are the questionnaire answers accepted as flags
type profileOptions struct {
	skinType   string
	ageRange   string
	budget     string
	prefer     []string
	avoid      []string
	concerns   []string
	conditions []string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "skinsage",
		Short: "SkinSage skincare recommendation engine",
		Long:  "SkinSage ranks skincare products and builds morning and night routines for a skin profile, printing JSON.",
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := "warn"
			if opts.verbose {
				level = "debug"
			}
			logging.Init(logging.Config{Level: level, Format: "console", Output: cmd.ErrOrStderr()})
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "Path to a JSON product catalog (default: built-in catalog)")
	root.PersistentFlags().StringVar(&opts.routineMode, "routine-mode", string(usecase.RoutineModeCategory), "Routine slot selection: category or global")
	root.PersistentFlags().StringVar(&opts.premiumPolicy, "premium-policy", string(usecase.PremiumUnfiltered), "Premium budget filtering: unfiltered or exact")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newRecommendCmd(opts))
	root.AddCommand(newRoutineCmd(opts))
	root.AddCommand(newConcernsCmd(opts))

	return root
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newService builds an engine-only analysis service from the global options
func newService(opts *globalOptions) (*usecase.AnalysisService, error) {
	var products domain.ProductCatalog = catalog.NewReference()
	if opts.catalogPath != "" {
		loaded, err := catalog.LoadFile(opts.catalogPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		products = loaded
	}

	mode := usecase.RoutineMode(opts.routineMode)
	if mode != usecase.RoutineModeCategory && mode != usecase.RoutineModeGlobal {
		return nil, fmt.Errorf("invalid --routine-mode %q: want category or global", opts.routineMode)
	}

	policy := usecase.PremiumBudgetPolicy(opts.premiumPolicy)
	if policy != usecase.PremiumUnfiltered && policy != usecase.PremiumExact {
		return nil, fmt.Errorf("invalid --premium-policy %q: want unfiltered or exact", opts.premiumPolicy)
	}

	engine := usecase.NewRecommendationEngine(products, usecase.EngineConfig{
		RoutineMode:         mode,
		PremiumBudgetPolicy: policy,
		EnableDebugLogging:  opts.verbose,
	})

	return usecase.NewAnalysisService(engine, nil, nil, nil, usecase.AnalysisServiceConfig{
		EnableDebugLogging: opts.verbose,
	}), nil
}

// addProfileFlags registers the questionnaire flags on cmd
func addProfileFlags(cmd *cobra.Command, p *profileOptions) {
	cmd.Flags().StringVarP(&p.skinType, "skin-type", "s", "", "Skin type, e.g. Oily, Dry, Combination (required)")
	cmd.Flags().StringVarP(&p.ageRange, "age-range", "a", "", "Age range, e.g. 25-34 or 55+ (required)")
	cmd.Flags().StringVarP(&p.budget, "budget", "b", string(domain.BudgetMixed), "Budget: budget, mid-tier, premium or mixed")
	cmd.Flags().StringSliceVarP(&p.prefer, "prefer", "p", nil, "Preferred ingredients (comma separated)")
	cmd.Flags().StringSliceVar(&p.avoid, "avoid", nil, "Ingredients to avoid (comma separated)")
	cmd.Flags().StringSliceVarP(&p.concerns, "concern", "c", nil, "Skin concerns; inferred when omitted")
	cmd.Flags().StringSliceVar(&p.conditions, "condition", nil, "Skin conditions that rule out contraindicated products")

	if err := cmd.MarkFlagRequired("skin-type"); err != nil {
		panic(fmt.Sprintf("failed to mark skin-type flag as required: %v", err))
	}
	if err := cmd.MarkFlagRequired("age-range"); err != nil {
		panic(fmt.Sprintf("failed to mark age-range flag as required: %v", err))
	}
}

func (p *profileOptions) profile() domain.UserProfile {
	return domain.UserProfile{
		SkinType:             p.skinType,
		PreferredIngredients: p.prefer,
		AvoidIngredients:     p.avoid,
		AgeRange:             p.ageRange,
		Budget:               domain.BudgetPreference(p.budget),
		Concerns:             p.concerns,
		SkinConditions:       p.conditions,
	}
}

// writeJSON prints v as indented JSON
func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
