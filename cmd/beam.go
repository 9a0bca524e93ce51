package cmd

import (
	"github.com/alexiusacademia/gobbs/internal/bbs"
	"github.com/spf13/cobra"
)

var (
	// Beam inputs
	beamCover    float64
	beamDiameter float64
	beamSpan     float64
	beamDevLen   float64
	beamBars     int

	beamOutput outputOptions
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Schedule straight beam main bars",
	Long: `Compute the cutting length, count and weight of straight beam
main bars developed into both supports.

  L = span + 2(cover + Ld)

Examples:
  # Two 16 mm bars over a 4 m clear span
  gobbs beam --dia 16 --span 4000 --dev 200 --bars 2

  # Export to CSV
  gobbs beam -d 20 --span 6000 --dev 600 -n 4 -o beam.csv`,
	RunE: runBeam,
}

func init() {
	rootCmd.AddCommand(beamCmd)

	beamCmd.Flags().Float64VarP(&beamCover, "cover", "c", 25, "Concrete cover (mm)")
	beamCmd.Flags().Float64VarP(&beamDiameter, "dia", "d", 8, "Bar diameter (mm)")
	beamCmd.Flags().Float64Var(&beamSpan, "span", 4000, "Clear span (mm)")
	beamCmd.Flags().Float64Var(&beamDevLen, "dev", 200, "Development length Ld at each support (mm)")
	beamCmd.Flags().IntVarP(&beamBars, "bars", "n", 2, "Number of main bars")

	addOutputFlags(beamCmd, &beamOutput)
}

func runBeam(cmd *cobra.Command, args []string) error {
	in := bbs.BeamInput{
		Common:            bbs.Common{Cover: beamCover, BarDiameter: beamDiameter},
		ClearSpan:         beamSpan,
		DevelopmentLength: beamDevLen,
		MainBarCount:      beamBars,
	}
	return runSchedule(cmd, "BEAM MAIN BARS", "", []bbs.Input{in}, beamOutput)
}
