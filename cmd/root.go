package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "matjar",
	Short: "AI-assisted Arabic storefront builder",
	Long: `Matjar generates complete Arabic RTL storefront pages from curated
templates and edits them through chat: an AI assistant rewrites the
page when configured, and a built-in rule interpreter covers color and
style changes offline. Every edit is undoable, and stores can be
published, previewed, and exported as standalone HTML files.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".matjar.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
