package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func init() {
	playCmd.Flags().String("lang", "", "UI language: en or hi (overrides SAFEBITE_LANG env var)")
	rootCmd.AddCommand(playCmd)
}
