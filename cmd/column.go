package cmd

import (
	"github.com/alexiusacademia/gobbs/internal/bbs"
	"github.com/spf13/cobra"
)

var (
	// Column inputs
	columnCover    float64
	columnDiameter float64
	columnHeight   float64
	columnLap      float64
	columnBars     int

	columnOutput outputOptions
)

var columnCmd = &cobra.Command{
	Use:   "column",
	Short: "Schedule column vertical bars",
	Long: `Compute the cutting length, count and weight of column vertical
bars lapped at the next storey.

  L = height + 2·cover + lap

Examples:
  # Eight 20 mm verticals, 3 m clear height, 800 mm lap
  gobbs column --dia 20 --cover 40 --height 3000 --lap 800 --bars 8`,
	RunE: runColumn,
}

func init() {
	rootCmd.AddCommand(columnCmd)

	columnCmd.Flags().Float64VarP(&columnCover, "cover", "c", 25, "Concrete cover (mm)")
	columnCmd.Flags().Float64VarP(&columnDiameter, "dia", "d", 8, "Bar diameter (mm)")
	columnCmd.Flags().Float64Var(&columnHeight, "height", 3000, "Clear height (mm)")
	columnCmd.Flags().Float64Var(&columnLap, "lap", 200, "Lap length (mm)")
	columnCmd.Flags().IntVarP(&columnBars, "bars", "n", 8, "Number of vertical bars")

	addOutputFlags(columnCmd, &columnOutput)
}

func runColumn(cmd *cobra.Command, args []string) error {
	in := bbs.ColumnInput{
		Common:           bbs.Common{Cover: columnCover, BarDiameter: columnDiameter},
		ClearHeight:      columnHeight,
		LapLength:        columnLap,
		VerticalBarCount: columnBars,
	}
	return runSchedule(cmd, "COLUMN VERTICAL BARS", "", []bbs.Input{in}, columnOutput)
}
