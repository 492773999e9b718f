package main

import (
	"github.com/Liorohan10/Skin-Sage/internal/domain"
	"github.com/spf13/cobra"
)

// routineStep is one product slot of a routine
type routineStep struct {
	Step     int             `json:"step"`
	Category domain.Category `json:"category"`
	ID       string          `json:"id"`
	Name     string          `json:"name"`
}

type routineOutput struct {
	Morning []routineStep `json:"morning"`
	Night   []routineStep `json:"night"`
}

func newRoutineCmd(global *globalOptions) *cobra.Command {
	p := &profileOptions{}

	cmd := &cobra.Command{
		Use:   "routine",
		Short: "Build morning and night routines for a skin profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := newService(global)
			if err != nil {
				return err
			}

			routine := svc.Routine(p.profile())
			return writeJSON(cmd.OutOrStdout(), routineOutput{
				Morning: toSteps(routine.MorningRoutine),
				Night:   toSteps(routine.NightRoutine),
			})
		},
	}

	addProfileFlags(cmd, p)
	return cmd
}

func toSteps(products []domain.Product) []routineStep {
	steps := make([]routineStep, 0, len(products))
	for i, prod := range products {
		steps = append(steps, routineStep{Step: i + 1, Category: prod.Category, ID: prod.ID, Name: prod.Name})
	}
	return steps
}
