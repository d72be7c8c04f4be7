package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	yaml "gopkg.in/yaml.v3"

	"github.com/hyperifyio/gostryker/internal/fetch"
)

// FileConfig represents the single-file configuration schema. Nested sections
// map naturally to flags.
type FileConfig struct {
	Fetch struct {
		UserAgent      string `yaml:"userAgent" json:"userAgent"`
		Retries        int    `yaml:"retries" json:"retries"`
		TimeoutSeconds int    `yaml:"timeoutSeconds" json:"timeoutSeconds"`
	} `yaml:"fetch" json:"fetch"`

	Sheets struct {
		Credentials   string `yaml:"credentials" json:"credentials"`
		SpreadsheetID string `yaml:"spreadsheetId" json:"spreadsheetId"`
		Name          string `yaml:"name" json:"name"`
	} `yaml:"sheets" json:"sheets"`

	Export struct {
		CSV string `yaml:"csv" json:"csv"`
	} `yaml:"export" json:"export"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields that
// are currently unset or still at their flag defaults. Flags should already
// have been parsed; this lets file config supply defaults while preserving
// explicit flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if (cfg.UserAgent == "" || cfg.UserAgent == fetch.DefaultUserAgent) && fc.Fetch.UserAgent != "" {
		cfg.UserAgent = fc.Fetch.UserAgent
	}
	if (cfg.MaxRetries == 0 || cfg.MaxRetries == fetch.DefaultMaxAttempts) && fc.Fetch.Retries > 0 {
		cfg.MaxRetries = fc.Fetch.Retries
	}
	timeoutDefault := int(fetch.DefaultTimeout / time.Second)
	if (cfg.TimeoutSeconds == 0 || cfg.TimeoutSeconds == timeoutDefault) && fc.Fetch.TimeoutSeconds > 0 {
		cfg.TimeoutSeconds = fc.Fetch.TimeoutSeconds
	}
	if cfg.SheetsCredentials == "" && fc.Sheets.Credentials != "" {
		cfg.SheetsCredentials = fc.Sheets.Credentials
	}
	if cfg.SpreadsheetID == "" && fc.Sheets.SpreadsheetID != "" {
		cfg.SpreadsheetID = fc.Sheets.SpreadsheetID
	}
	if cfg.SheetName == "" && fc.Sheets.Name != "" {
		cfg.SheetName = fc.Sheets.Name
	}
	if cfg.CSVPath == "" && fc.Export.CSV != "" {
		cfg.CSVPath = fc.Export.CSV
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}
