// Package config provides configuration management.
package config

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"SundaesOnDemand/pkg/logger"
	"SundaesOnDemand/pkg/order"

	"github.com/shopspring/decimal"
)

// DefaultPath is where a fresh configuration is written on first run.
const DefaultPath = ".sundaes/config.json"

// Config holds all configuration settings
type Config struct {
	// Shop identity
	ShopName string `json:"shop_name,omitempty"`

	// Price of a single item in each category
	PricePerItem order.PriceTable `json:"price_per_item"`

	// Catalog shown on the entry screen
	Scoops   []ItemOption `json:"scoops"`
	Toppings []ItemOption `json:"toppings"`

	// Largest count accepted for a single scoop flavor
	MaxScoopsPerFlavor int `json:"max_scoops_per_flavor"`

	// Terms shown in the summary popover
	TermsText string `json:"terms_text,omitempty"`

	// UI settings
	UI UIConfig `json:"ui"`

	// Logging settings
	Log LogConfig `json:"log"`
}

// ItemOption is a single selectable scoop or topping.
type ItemOption struct {
	Name string `json:"name"`
}

// UIConfig holds UI configuration
type UIConfig struct {
	Theme    string `json:"theme"` // "dark" or "light"
	ShowHelp bool   `json:"show_help"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level       string `json:"level"`
	StoragePath string `json:"storage_path"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		ShopName:     "Sundaes on Demand",
		PricePerItem: order.DefaultPrices(),
		Scoops: []ItemOption{
			{Name: "Chocolate"},
			{Name: "Vanilla"},
			{Name: "Mint chip"},
			{Name: "Salted caramel"},
		},
		Toppings: []ItemOption{
			{Name: "Cherries"},
			{Name: "M&Ms"},
			{Name: "Hot fudge"},
			{Name: "Gummi Bears"},
		},
		MaxScoopsPerFlavor: 10,
		TermsText:          "No ice cream will actually be delivered.",

		UI: UIConfig{
			Theme:    "dark",
			ShowHelp: true,
		},

		Log: LogConfig{
			Level:       "INFO",
			StoragePath: ".sundaes",
		},
	}
}

// GetConfigPaths returns a prioritized list of configuration file paths
func GetConfigPaths(cliPath string) []string {
	var paths []string

	// 1. CLI Override
	if cliPath != "" {
		paths = append(paths, cliPath)
		return paths // If explicit, only use that
	}

	// 2. Project local paths
	paths = append(paths, DefaultPath)
	paths = append(paths, "configs/config.json")
	paths = append(paths, "config.json")

	// 3. User global path
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".sundaes", "config.json"))
	}

	return paths
}

// Load loads configuration from the first available path in the prioritized list.
// When none exists the defaults are written to the CLI path, or DefaultPath.
func Load(cliPath string) (*Config, string, error) {
	loadDotEnv(".env")

	for _, path := range GetConfigPaths(cliPath) {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := decode(data)
		if err != nil {
			return nil, path, fmt.Errorf("invalid JSON in config file %s: %w", path, err)
		}
		if err := applyEnvOverrides(cfg); err != nil {
			return nil, path, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, path, fmt.Errorf("configuration validation failed in %s: %w", path, err)
		}
		return cfg, path, nil
	}

	savePath := DefaultPath
	if cliPath != "" {
		savePath = cliPath
	}
	cfg := DefaultConfig()
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, savePath, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, savePath, fmt.Errorf("default configuration validation failed: %w", err)
	}

	return cfg, savePath, cfg.Save(savePath)
}

// decode overlays a config file on the defaults. A catalog section present
// in the file replaces the default catalog wholesale; a missing one keeps it.
func decode(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	scoops, toppings := cfg.Scoops, cfg.Toppings
	cfg.Scoops, cfg.Toppings = nil, nil

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.Scoops == nil {
		cfg.Scoops = scoops
	}
	if cfg.Toppings == nil {
		cfg.Toppings = toppings
	}
	return cfg, nil
}

// allowedEnvVars is a whitelist of environment variable names that may be set from .env
var allowedEnvVars = map[string]bool{
	"SUNDAES_SCOOP_PRICE":   true,
	"SUNDAES_TOPPING_PRICE": true,
	"SUNDAES_LOG_LEVEL":     true,
	"SUNDAES_STORAGE_PATH":  true,
	"SUNDAES_THEME":         true,
}

// loadDotEnv loads whitelisted variables from an env file without
// overriding values already present in the environment.
func loadDotEnv(envFile string) {
	file, err := os.Open(envFile)
	if err != nil {
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.Trim(strings.TrimSpace(parts[1]), `"'`)

		if !allowedEnvVars[key] {
			continue
		}

		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				fmt.Printf("Warning: failed to set environment variable %s: %v\n", key, err)
			}
		}
	}
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("SUNDAES_SCOOP_PRICE"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return fmt.Errorf("SUNDAES_SCOOP_PRICE: %w", err)
		}
		cfg.PricePerItem.Scoops = d
	}
	if v := os.Getenv("SUNDAES_TOPPING_PRICE"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return fmt.Errorf("SUNDAES_TOPPING_PRICE: %w", err)
		}
		cfg.PricePerItem.Toppings = d
	}
	if v := os.Getenv("SUNDAES_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("SUNDAES_STORAGE_PATH"); v != "" {
		cfg.Log.StoragePath = v
	}
	if v := os.Getenv("SUNDAES_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	return nil
}

// Options returns the catalog entries for a category.
func (c *Config) Options(category order.Category) []ItemOption {
	switch category {
	case order.Scoops:
		return c.Scoops
	case order.Toppings:
		return c.Toppings
	}
	return nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate validates the configuration and returns every problem found.
func (c *Config) Validate() error {
	var errs []error

	if c.PricePerItem.Scoops.IsNegative() {
		errs = append(errs, fmt.Errorf("price_per_item.scoops must not be negative, got %s", c.PricePerItem.Scoops))
	}
	if c.PricePerItem.Toppings.IsNegative() {
		errs = append(errs, fmt.Errorf("price_per_item.toppings must not be negative, got %s", c.PricePerItem.Toppings))
	}

	if len(c.Scoops) == 0 {
		errs = append(errs, errors.New("at least one scoop flavor is required"))
	}
	if err := validateOptions("scoops", c.Scoops); err != nil {
		errs = append(errs, err)
	}
	if err := validateOptions("toppings", c.Toppings); err != nil {
		errs = append(errs, err)
	}

	if c.MaxScoopsPerFlavor < 1 || c.MaxScoopsPerFlavor > 99 {
		errs = append(errs, fmt.Errorf("max_scoops_per_flavor must be between 1 and 99, got %d", c.MaxScoopsPerFlavor))
	}

	if c.UI.Theme != "dark" && c.UI.Theme != "light" {
		errs = append(errs, fmt.Errorf("ui.theme must be \"dark\" or \"light\", got %q", c.UI.Theme))
	}

	if !logger.ValidLevel(c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level must be DEBUG, INFO, WARN or ERROR, got %q", c.Log.Level))
	}
	if strings.TrimSpace(c.Log.StoragePath) == "" {
		errs = append(errs, errors.New("log.storage_path is required"))
	}

	return errors.Join(errs...)
}

// validateOptions checks that names are present and unique within a category
func validateOptions(category string, options []ItemOption) error {
	seen := make(map[string]bool, len(options))
	for i, opt := range options {
		name := strings.TrimSpace(opt.Name)
		if name == "" {
			return fmt.Errorf("%s[%d]: name is required", category, i)
		}
		if seen[name] {
			return fmt.Errorf("%s: duplicate item %q", category, name)
		}
		seen[name] = true
	}
	return nil
}
