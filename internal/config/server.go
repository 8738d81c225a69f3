package config

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	TemplatesDir string
	StaticDir    string
}

// LoadServerConfig loads server configuration from environment variables
func LoadServerConfig(getenv func(string) string) ServerConfig {
	config := ServerConfig{
		Port:         getenv("PORT"),
		TemplatesDir: getenv("TEMPLATES_DIR"),
		StaticDir:    getenv("STATIC_DIR"),
	}

	if config.Port == "" {
		config.Port = "3000"
	}
	if config.TemplatesDir == "" {
		config.TemplatesDir = "templates"
	}
	if config.StaticDir == "" {
		config.StaticDir = "static"
	}

	return config
}
