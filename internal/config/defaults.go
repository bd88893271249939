package config

// StoreTypes lists the store categories the builder knows product
// catalogs for. Anything else renders with the general catalog.
var StoreTypes = []string{
	"fashion", "electronics", "beauty", "food", "jewelry", "sports",
	"kids", "home", "perfume", "health", "auto", "general",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Model:           "gpt-4o-mini",
		EmbeddingModel:  "text-embedding-3-small",
		DBPath:          "matjar.db",
		OutputDir:       ".",
		DefaultType:     "general",
		DefaultTemplate: "simple-shop",
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8090,
		},
	}
}
