package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/macpurge/internal/maintain"
)

var dnsCmd = &cobra.Command{
	Use:   "dns",
	Short: "Flush the DNS cache",
	Long:  "Clear the directory-services DNS cache and restart mDNSResponder.",
	Run: func(cmd *cobra.Command, args []string) {
		runAction(maintain.FlushDNS(), false)
	},
}
