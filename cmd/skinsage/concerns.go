package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConcernsCmd(global *globalOptions) *cobra.Command {
	var skinType, ageRange string

	cmd := &cobra.Command{
		Use:   "concerns",
		Short: "Infer typical skin concerns from skin type and age range",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := newService(global)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), map[string]interface{}{
				"skinType": skinType,
				"ageRange": ageRange,
				"concerns": svc.Concerns(skinType, ageRange),
			})
		},
	}

	cmd.Flags().StringVarP(&skinType, "skin-type", "s", "", "Skin type (required)")
	cmd.Flags().StringVarP(&ageRange, "age-range", "a", "", "Age range (required)")
	if err := cmd.MarkFlagRequired("skin-type"); err != nil {
		panic(fmt.Sprintf("failed to mark skin-type flag as required: %v", err))
	}
	if err := cmd.MarkFlagRequired("age-range"); err != nil {
		panic(fmt.Sprintf("failed to mark age-range flag as required: %v", err))
	}

	return cmd
}
