package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/matjar-app/matjar/internal/catalog"
)

var (
	templatesCategory string
	templatesLimit    int
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Browse the built-in template catalog",
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		templates := catalog.All()
		if templatesCategory != "" {
			templates = catalog.ByCategory(templatesCategory)
		}
		if len(templates) == 0 {
			fmt.Printf("No templates in category %q\n", templatesCategory)
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tTYPE\tSTYLE")
		for _, tmpl := range templates {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				tmpl.ID, tmpl.Name, tmpl.Category, tmpl.StoreType, tmpl.Theme.Style)
		}
		return w.Flush()
	},
}

var templatesShowCmd = &cobra.Command{
	Use:   "show <template-id>",
	Short: "Show details for a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tmpl, ok := catalog.ByID(args[0])
		if !ok {
			return fmt.Errorf("unknown template %q", args[0])
		}
		fmt.Printf("ID:          %s\n", tmpl.ID)
		fmt.Printf("Name:        %s\n", tmpl.Name)
		fmt.Printf("Category:    %s\n", tmpl.Category)
		fmt.Printf("Store type:  %s\n", tmpl.StoreType)
		fmt.Printf("Style:       %s\n", tmpl.Theme.Style)
		fmt.Printf("Description: %s\n", tmpl.Description)
		fmt.Printf("Sections:    %d\n", len(tmpl.Sections))
		return nil
	},
}

var templatesSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search templates by description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		searcher, err := buildSearcher(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("building searcher: %w", err)
		}

		matches, err := searcher.Search(cmd.Context(), args[0], templatesLimit)
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			fmt.Println("No matching templates")
			return nil
		}
		for _, m := range matches {
			fmt.Printf("%-16s %s (%.1f%%)\n", m.Template.ID, m.Template.Name, m.Similarity*100)
		}
		return nil
	},
}

func init() {
	templatesListCmd.Flags().StringVarP(&templatesCategory, "category", "c", "", "filter by category")
	templatesSearchCmd.Flags().IntVarP(&templatesLimit, "limit", "n", 5, "maximum number of results")
	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesShowCmd)
	templatesCmd.AddCommand(templatesSearchCmd)
	rootCmd.AddCommand(templatesCmd)
}
