package cmd

import (
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the simulation over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		apiHandler, err := InitializeDependencies()
		if err != nil {
			return err
		}
		return apiHandler.StartApi(flagPort)
	},
}
