package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/macpurge/internal/maintain"
)

var periodicCmd = &cobra.Command{
	Use:   "periodic",
	Short: "Run the periodic maintenance scripts",
	Long:  "Run the system daily, weekly, and monthly maintenance scripts.",
	Run: func(cmd *cobra.Command, args []string) {
		runAction(maintain.RunPeriodic(), false)
	},
}
