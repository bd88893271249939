package cmd

import (
	"github.com/spf13/cobra"

	"github.com/matjar-app/matjar/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize matjar configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure matjar and generates a .matjar.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
