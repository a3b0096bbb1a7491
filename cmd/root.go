package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "PrivacyGuard",
	Aliases: []string{"pg"},
	Short:   "Backend Service for the PrivacyGuard CRM",
	Long:    `PrivacyGuard is an on-premise CRM backend running an AI agent pipeline over luxury automotive leads.`,
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
