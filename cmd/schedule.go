package cmd

import (
	"github.com/alexiusacademia/gobbs/internal/input"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	scheduleFile   string
	scheduleOutput outputOptions
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Schedule several members from a parameter file",
	Long: `Compute a bar bending schedule for every member listed in a YAML
or JSON parameter file, in file order.

Example file (members.yaml):
  project: House A
  members:
    - type: ties
      cover: 25
      bar_diameter: 8
      clear_a: 230
      clear_b: 300
      member_height: 3000
      pitch: 150
    - type: beam
      cover: 25
      bar_diameter: 16
      clear_span: 4000
      development_length: 200
      main_bar_count: 2

Examples:
  gobbs schedule -f members.yaml
  gobbs schedule -f members.yaml -o schedule.xlsx --template templates/BBS_Template.xlsx`,
	RunE: runScheduleFile,
}

func init() {
	rootCmd.AddCommand(scheduleCmd)

	scheduleCmd.Flags().StringVarP(&scheduleFile, "file", "f", "", "Parameter file (.yaml, .yml or .json) [required]")
	scheduleCmd.MarkFlagRequired("file")

	addOutputFlags(scheduleCmd, &scheduleOutput)
}

func runScheduleFile(cmd *cobra.Command, args []string) error {
	batch, err := input.LoadFromFile(scheduleFile)
	if err != nil {
		return err
	}
	logger.Debug("parameter file loaded",
		zap.String("file", scheduleFile),
		zap.String("project", batch.Project),
		zap.Int("members", len(batch.Members)),
	)

	return runSchedule(cmd, "MEMBER SCHEDULE", batch.Project, batch.Members, scheduleOutput)
}
