package cmd

import (
	"context"
	"fmt"

	"github.com/matjar-app/matjar/internal/catalog"
	"github.com/matjar-app/matjar/internal/config"
	"github.com/matjar-app/matjar/internal/mutate"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `matjar init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// buildEngine creates the mutation engine. Without an API key the
// engine runs on the local rule interpreter only.
func buildEngine(cfg *config.Config) *mutate.Engine {
	if cfg.OpenAIAPIKey == "" {
		return mutate.NewEngine(nil)
	}
	return mutate.NewEngine(mutate.NewRemoteStrategy(cfg.OpenAIAPIKey, cfg.Model))
}

// buildSearcher creates the template searcher: semantic with an API
// key, keyword matching without one.
func buildSearcher(ctx context.Context, cfg *config.Config) (*catalog.Searcher, error) {
	var embed func(context.Context, string) ([]float32, error)
	if cfg.OpenAIAPIKey != "" {
		embed = catalog.OpenAIEmbedding(cfg.OpenAIAPIKey, cfg.EmbeddingModel)
	}
	return catalog.NewSearcher(ctx, embed)
}
