package models

// Config represents the application configuration
type Config struct {
	Input InputConfig `yaml:"input"`
	Log   LogConfig   `yaml:"log"`
}

// InputConfig selects the email dump to analyze
type InputConfig struct {
	File string `yaml:"file"`
}

// LogConfig represents logger settings
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json or text
}
