package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/matjar-app/matjar/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Starts a Model Context Protocol (MCP) server on stdio, exposing store
generation and editing tools to AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// Stdout carries the MCP protocol; logs must go to stderr.
		log.SetOutput(os.Stderr)

		engine := buildEngine(cfg)
		searcher, err := buildSearcher(cmd.Context(), cfg)
		if err != nil {
			log.Printf("template search disabled: %v", err)
			searcher = nil
		}

		mcpserver.Version = Version
		srv := mcpserver.NewServer(engine, searcher)

		log.Printf("matjar MCP server starting on stdio")
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
