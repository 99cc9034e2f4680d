// Package config handles quatcalc configuration loading and management.
package config

// Config holds all quatcalc settings.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig holds result formatting settings.
type OutputConfig struct {
	Precision int  `yaml:"precision"` // Decimal places in printed components
	Degrees   bool `yaml:"degrees"`   // Interpret euler angles as degrees
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Precision: 6,
			Degrees:   false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
