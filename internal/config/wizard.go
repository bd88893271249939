package config

import (
	"fmt"
	"os"

	"github.com/manifoldco/promptui"

	"github.com/matjar-app/matjar/internal/catalog"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .matjar.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to matjar! Let's set up your store builder.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Default store type.
	typePrompt := promptui.Select{
		Label: "Default store type",
		Items: StoreTypes,
		Size:  len(StoreTypes),
	}
	_, storeType, err := typePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("store type selection: %w", err)
	}
	cfg.DefaultType = storeType

	// 2. Default template, shown with their Arabic names.
	templates := catalog.All()
	items := make([]string, len(templates))
	for i, t := range templates {
		items[i] = fmt.Sprintf("%s (%s)", t.Name, t.ID)
	}
	templatePrompt := promptui.Select{
		Label: "Default template",
		Items: items,
		Size:  len(items),
	}
	templateIdx, _, err := templatePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("template selection: %w", err)
	}
	cfg.DefaultTemplate = templates[templateIdx].ID

	// 3. Database path.
	dbPrompt := promptui.Prompt{
		Label:   "SQLite database path",
		Default: cfg.DBPath,
	}
	if cfg.DBPath, err = dbPrompt.Run(); err != nil {
		return nil, fmt.Errorf("db path: %w", err)
	}

	// 4. Export directory.
	outputPrompt := promptui.Prompt{
		Label:   "Directory for exported pages",
		Default: cfg.OutputDir,
	}
	if cfg.OutputDir, err = outputPrompt.Run(); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	if os.Getenv("OPENAI_API_KEY") == "" {
		fmt.Println("\nNote: set OPENAI_API_KEY to enable the chat assistant and semantic template search.")
		fmt.Println("Without it, edits use the built-in rule interpreter.")
	}

	if err := cfg.Save(DefaultPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", DefaultPath)
	return cfg, nil
}
