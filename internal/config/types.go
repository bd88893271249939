package config

// Config is the top-level matjar configuration, corresponding to .matjar.yml.
type Config struct {
	OpenAIAPIKey    string       `yaml:"openai_api_key" koanf:"openai_api_key"`
	Model           string       `yaml:"model" koanf:"model"`
	EmbeddingModel  string       `yaml:"embedding_model" koanf:"embedding_model"`
	DBPath          string       `yaml:"db_path" koanf:"db_path"`
	OutputDir       string       `yaml:"output_dir" koanf:"output_dir"`
	DefaultType     string       `yaml:"default_store_type" koanf:"default_store_type"`
	DefaultTemplate string       `yaml:"default_template" koanf:"default_template"`
	Server          ServerConfig `yaml:"server" koanf:"server"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host" koanf:"host"`
	Port int    `yaml:"port" koanf:"port"`
}
