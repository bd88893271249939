package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matjar-app/matjar/internal/db"
	"github.com/matjar-app/matjar/internal/progress"
	"github.com/matjar-app/matjar/internal/session"
	"github.com/matjar-app/matjar/internal/store"
)

var (
	exportAll    bool
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export [store-id]",
	Short: "Export saved stores as standalone HTML files",
	Long: `Exports a saved store's page as "<store name>.html". With --all every
active store in the database is exported.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if !exportAll && len(args) == 0 {
			return fmt.Errorf("provide a store id or use --all")
		}

		database, err := db.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer database.Close()
		svc := store.NewService(database)

		outDir := exportOutput
		if outDir == "" {
			outDir = cfg.OutputDir
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		if !exportAll {
			rec, err := svc.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			path, err := writeStorePage(outDir, rec.Name, rec.HTMLContent)
			if err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", path)
			return nil
		}

		var records []store.Record
		for offset := 0; ; offset += 100 {
			page, err := svc.List(cmd.Context(), store.StatusActive, 100, offset)
			if err != nil {
				return err
			}
			records = append(records, page...)
			if len(page) < 100 {
				break
			}
		}
		if len(records) == 0 {
			fmt.Println("No active stores to export")
			return nil
		}

		reporter := progress.NewReporter()
		reporter.Start(len(records))
		for i, rec := range records {
			if _, err := writeStorePage(outDir, rec.Name, rec.HTMLContent); err != nil {
				reporter.Finish()
				return fmt.Errorf("exporting %s: %w", rec.Name, err)
			}
			reporter.Update(i+1, rec.Name)
		}
		reporter.Finish()
		fmt.Printf("Exported %d store pages to %s\n", len(records), outDir)
		return nil
	},
}

func writeStorePage(dir, name, html string) (string, error) {
	path := filepath.Join(dir, session.ExportFileName(name))
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return "", fmt.Errorf("writing page: %w", err)
	}
	return path, nil
}

func init() {
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "export every active store")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output directory (default from config)")
	rootCmd.AddCommand(exportCmd)
}
