package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"tmplinspect/internal/logger"
)

type Config struct {
	Inspect InspectConfig `toml:"inspect"`
	Output  OutputConfig  `toml:"output"`
}

type InspectConfig struct {
	TemplateFile string `toml:"template_file"`
	Sheet        string `toml:"sheet"`
	HeaderRow    int    `toml:"header_row"`
}

type OutputConfig struct {
	ReportFile string `toml:"report_file"`
}

// LoadConfig loads configuration from the specified config file path,
// creating a default config file when none exists.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configDir := filepath.Dir(configPath)
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %v", err)
		}

		defaultConfig := &Config{
			Inspect: InspectConfig{
				TemplateFile: "prueba2.xlsx",
				HeaderRow:    1,
			},
		}

		if err := SaveConfig(configPath, defaultConfig); err != nil {
			return nil, fmt.Errorf("failed to create default config: %v", err)
		}

		logger.Info("Created default config file", "path", configPath)
		return defaultConfig, nil
	}

	var config Config
	_, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %v", configPath, err)
	}

	// Set defaults if missing
	if config.Inspect.TemplateFile == "" {
		config.Inspect.TemplateFile = "prueba2.xlsx"
	}
	if config.Inspect.HeaderRow == 0 {
		config.Inspect.HeaderRow = 1
	}

	logger.Info("Loaded configuration", "path", configPath)
	return &config, nil
}

// SaveConfig saves configuration to the specified config file path.
func SaveConfig(configPath string, config *Config) error {
	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("failed to encode config: %v", err)
	}

	logger.Info("Saved configuration", "path", configPath)
	return nil
}
