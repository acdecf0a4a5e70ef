package cmd

import (
	"assetplanner/internal/config"
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config document with the default values",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Default().Save(flagConfigPath); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", flagConfigPath)
		return nil
	},
}
