// Package config loads application settings from an optional YAML file and
// MAI_-prefixed environment variables.
package config

import "time"

// Config holds all application configuration.
type Config struct {
	// DB is the SQLite path. Empty selects the XDG data directory.
	DB string `mapstructure:"db"`

	// Inventory is a YAML inventory file. Empty selects the built-in one.
	Inventory string `mapstructure:"inventory"`

	// PerPage overrides the inventory page size; 0 keeps it.
	PerPage int `mapstructure:"per_page" validate:"gte=0,lte=100"`

	// ExportDir is where CSV/JSON exports are written.
	ExportDir string `mapstructure:"export_dir"`

	Log LogConfig `mapstructure:"log"`
	LLM LLMConfig `mapstructure:"llm"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`

	// File receives JSON log lines. Empty selects the XDG state directory;
	// "-" writes to stderr.
	File string `mapstructure:"file"`
}

// LLMConfig configures the optional reflection provider.
type LLMConfig struct {
	// Provider is empty to discover one from standard API key variables,
	// or "none" to disable reflections.
	Provider string        `mapstructure:"provider" validate:"omitempty,oneof=anthropic openai gemini openrouter none"`
	Model    string        `mapstructure:"model"`
	APIKey   string        `mapstructure:"api_key"`
	BaseURL  string        `mapstructure:"base_url" validate:"omitempty,url"`
	Timeout  time.Duration `mapstructure:"timeout" validate:"gte=0"`
}

// Disabled reports whether reflections are turned off.
func (c LLMConfig) Disabled() bool {
	return c.Provider == "none"
}
