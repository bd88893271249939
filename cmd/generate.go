package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matjar-app/matjar/internal/catalog"
	"github.com/matjar-app/matjar/internal/db"
	"github.com/matjar-app/matjar/internal/session"
	"github.com/matjar-app/matjar/internal/store"
)

var (
	generateTemplate string
	generateType     string
	generateOutput   string
	generateSave     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <store name>",
	Short: "Generate a storefront page from a template",
	Long: `Renders a complete Arabic RTL storefront for the given store name and
writes it as "<store name>.html". With --save the store is also
persisted to the database as an active store.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		storeName := args[0]
		templateID := generateTemplate
		if templateID == "" {
			templateID = cfg.DefaultTemplate
		}

		sess := session.New(templateID, storeName, nil)
		if generateType != "" && generateType != sess.StoreType {
			sess.StoreType = generateType
			sess.Rebuild()
		}

		outDir := generateOutput
		if outDir == "" {
			outDir = cfg.OutputDir
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		path, err := sess.Export(outDir)
		if err != nil {
			return err
		}

		if generateSave {
			database, err := db.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			defer database.Close()

			svc := store.NewService(database)
			rec := &store.Record{
				Name:        storeName,
				StoreType:   sess.StoreType,
				TemplateID:  sess.Template().ID,
				Status:      store.StatusActive,
				HTMLContent: sess.Current(),
			}
			if err := svc.Create(cmd.Context(), rec); err != nil {
				return err
			}
			fmt.Printf("Store saved with id %s\n", rec.ID)
		}

		tmpl := catalog.ByIDOrDefault(templateID)
		fmt.Printf("Generated %q from template %s (%s)\n", storeName, tmpl.ID, tmpl.Name)
		fmt.Printf("Wrote %s\n", filepath.Clean(path))
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateTemplate, "template", "t", "", "template id (default from config)")
	generateCmd.Flags().StringVar(&generateType, "type", "", "store type override (fashion, electronics, ...)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "output directory (default from config)")
	generateCmd.Flags().BoolVar(&generateSave, "save", false, "persist the store to the database")
	rootCmd.AddCommand(generateCmd)
}
