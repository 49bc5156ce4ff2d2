// Package config handles importer tool configuration loading and management.
package config

// Config holds all fbxtool settings.
type Config struct {
	Importer ImporterConfig `yaml:"importer"`
	Scan     ScanConfig     `yaml:"scan"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ImporterConfig holds model import settings.
type ImporterConfig struct {
	// VerboseParse enables per-block parse diagnostics at debug level.
	VerboseParse bool `yaml:"verbose_parse"`
	// NameFromFile derives the model display name from the file name
	// instead of the fixed default.
	NameFromFile bool `yaml:"name_from_file"`
}

// ScanConfig holds directory scan settings.
type ScanConfig struct {
	Pattern  string `yaml:"pattern"`  // Glob pattern for model files
	Manifest string `yaml:"manifest"` // Manifest output path
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Importer: ImporterConfig{
			VerboseParse: false,
			NameFromFile: true,
		},
		Scan: ScanConfig{
			Pattern:  "*.fbx",
			Manifest: "models.yaml",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
