package cmd

import (
	"github.com/alexiusacademia/gobbs/internal/bbs"
	"github.com/spf13/cobra"
)

var (
	// Ties inputs
	tiesCover    float64
	tiesDiameter float64
	tiesClearA   float64
	tiesClearB   float64
	tiesHeight   float64
	tiesPitch    float64
	tiesHook     float64
	tiesBend     float64

	tiesOutput outputOptions
)

var tiesCmd = &cobra.Command{
	Use:   "ties",
	Short: "Schedule rectangular stirrups/ties",
	Long: `Compute the cutting length, count and weight of rectangular
stirrups/ties with two hooks.

  a, b  = clear side + 2·cover − d      (effective sides)
  L     = 2(a + b) + 2·hook·d − 4·bend·d
  count = floor(height / pitch) + 1

Examples:
  # Stirrups of a 230x300 clear section, 3 m high at 150 mm pitch
  gobbs ties --clear-a 230 --clear-b 300 --height 3000 --pitch 150

  # Export to an Excel template
  gobbs ties -d 10 -p 100 -o ties.xlsx --template templates/BBS_Template.xlsx`,
	RunE: runTies,
}

func init() {
	rootCmd.AddCommand(tiesCmd)

	tiesCmd.Flags().Float64VarP(&tiesCover, "cover", "c", 25, "Concrete cover (mm)")
	tiesCmd.Flags().Float64VarP(&tiesDiameter, "dia", "d", 8, "Bar diameter (mm)")
	tiesCmd.Flags().Float64Var(&tiesClearA, "clear-a", 230, "Clear side a (mm)")
	tiesCmd.Flags().Float64Var(&tiesClearB, "clear-b", 300, "Clear side b (mm)")
	tiesCmd.Flags().Float64Var(&tiesHeight, "height", 3000, "Member height along the stirrup spacing (mm)")
	tiesCmd.Flags().Float64VarP(&tiesPitch, "pitch", "p", 150, "Stirrup pitch (mm)")
	tiesCmd.Flags().Float64Var(&tiesHook, "hook", 10, "Hook length as a multiple of d")
	tiesCmd.Flags().Float64Var(&tiesBend, "bend", 2, "Bend deduction per 90° bend as a multiple of d")

	addOutputFlags(tiesCmd, &tiesOutput)
}

func runTies(cmd *cobra.Command, args []string) error {
	in := bbs.TiesInput{
		Common:                  bbs.Common{Cover: tiesCover, BarDiameter: tiesDiameter},
		ClearA:                  tiesClearA,
		ClearB:                  tiesClearB,
		MemberHeight:            tiesHeight,
		Pitch:                   tiesPitch,
		HookMultiplier:          tiesHook,
		BendDeductionMultiplier: tiesBend,
	}
	return runSchedule(cmd, "STIRRUPS/TIES", "", []bbs.Input{in}, tiesOutput)
}
