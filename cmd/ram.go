package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/macpurge/internal/maintain"
)

var ramCmd = &cobra.Command{
	Use:   "ram",
	Short: "Purge inactive memory",
	Long:  "Force the kernel to release inactive RAM, same as running purge by hand.",
	Run: func(cmd *cobra.Command, args []string) {
		runAction(maintain.PurgeMemory(), false)
	},
}
