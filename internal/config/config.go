package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// CrawlConfig controls the opportunity crawler
type CrawlConfig struct {
	Causes         []string `yaml:"causes,omitempty"`
	Location       string   `yaml:"location,omitempty"`
	IncludeVirtual bool     `yaml:"includeVirtual,omitempty"`
	MaxPerCause    int      `yaml:"maxPerCause,omitempty" validate:"omitempty,min=1"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL          string      `yaml:"databaseURL" validate:"required"`
	GmailUserID          string      `yaml:"gmailUserID" validate:"required"`
	GmailSender          string      `yaml:"gmailSender,omitempty"`
	MaxRecommendations   int         `yaml:"maxRecommendations,omitempty" validate:"omitempty,min=1"`
	MinMatchScore        float64     `yaml:"minMatchScore,omitempty" validate:"omitempty,min=0,max=100"`
	ReminderDaysAhead    int         `yaml:"reminderDaysAhead,omitempty" validate:"omitempty,min=1"`
	CertificateAuthority string      `yaml:"certificateAuthority,omitempty"`
	Crawl                CrawlConfig `yaml:"crawl,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from volunteer_hub_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv loads the configuration, preferring an env-suffixed file
// (e.g. "volunteer_hub_config.test.yaml") over the plain one
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(env)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// Validate validates the configuration struct
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// VolunteerMatchCredentials reads the VolunteerMatch API credentials from the
// environment. Both values are empty when the API is not configured
func VolunteerMatchCredentials() (username, apiKey string) {
	return os.Getenv("VOLUNTEERMATCH_USERNAME"), os.Getenv("VOLUNTEERMATCH_API_KEY")
}

func applyDefaults(cfg *Config) {
	if cfg.MaxRecommendations == 0 {
		cfg.MaxRecommendations = 10
	}
	if cfg.MinMatchScore == 0 {
		cfg.MinMatchScore = 20
	}
	if cfg.ReminderDaysAhead == 0 {
		cfg.ReminderDaysAhead = 7
	}
	if cfg.Crawl.Location == "" {
		cfg.Crawl.Location = "United States"
	}
	if cfg.Crawl.MaxPerCause == 0 {
		cfg.Crawl.MaxPerCause = 20
	}
}

// findConfigFile searches the current directory and home directory for the
// config file. An env-suffixed file ("volunteer_hub_config.test.yaml") takes
// precedence over the plain "volunteer_hub_config.yaml"
func findConfigFile(env string) (string, error) {
	candidates := []string{"volunteer_hub_config.yaml"}
	if env != "" {
		candidates = []string{"volunteer_hub_config." + env + ".yaml", "volunteer_hub_config.yaml"}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	for _, name := range candidates {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}

		homeConfigPath := filepath.Join(homeDir, name)
		if _, err := os.Stat(homeConfigPath); err == nil {
			return homeConfigPath, nil
		}
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
