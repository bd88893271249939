package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matjar-app/matjar/internal/db"
	"github.com/matjar-app/matjar/internal/store"
)

var (
	publishTemplate string
	publishType     string
)

var publishCmd = &cobra.Command{
	Use:   "publish <store name>",
	Short: "Generate a store and wait until it goes live",
	Long: `Submits a generation job and polls it until the store is active. When
the job endpoint keeps erroring, the store listing is searched by name
instead, so a slow or flaky job record does not strand a finished
store.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		storeName := args[0]
		templateID := publishTemplate
		if templateID == "" {
			templateID = cfg.DefaultTemplate
		}
		storeType := publishType
		if storeType == "" {
			storeType = cfg.DefaultType
		}

		database, err := db.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer database.Close()

		svc := store.NewService(database)
		gen := store.NewGenerator(svc)
		defer gen.Wait()

		job, err := gen.Submit(cmd.Context(), storeName, storeType, templateID)
		if err != nil {
			return fmt.Errorf("submitting generation job: %w", err)
		}
		fmt.Printf("Submitted job %s for %q\n", job.ID, storeName)

		outcome := store.NewPublisher(svc, svc).Publish(cmd.Context(), job.ID, storeName)
		switch outcome.State {
		case store.StateFound:
			fmt.Printf("Store %q is live (id %s)\n", storeName, outcome.StoreID)
			return nil
		case store.StateTimedOut:
			return fmt.Errorf("store %q did not go live in time: %w", storeName, outcome.Err)
		default:
			return fmt.Errorf("publishing %q: %w", storeName, outcome.Err)
		}
	},
}

func init() {
	publishCmd.Flags().StringVarP(&publishTemplate, "template", "t", "", "template id (default from config)")
	publishCmd.Flags().StringVar(&publishType, "type", "", "store type (default from config)")
	rootCmd.AddCommand(publishCmd)
}
