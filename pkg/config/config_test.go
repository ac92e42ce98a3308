package config

import (
	"os"
	"path/filepath"
	"testing"

	"SundaesOnDemand/pkg/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for key := range allowedEnvVars {
		t.Setenv(key, "")
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.True(t, decimal.NewFromInt(2).Equal(cfg.PricePerItem.Scoops))
	assert.True(t, decimal.RequireFromString("1.5").Equal(cfg.PricePerItem.Toppings))
	assert.Equal(t, 10, cfg.MaxScoopsPerFlavor)
	assert.NotEmpty(t, cfg.Options(order.Scoops))
	assert.NotEmpty(t, cfg.Options(order.Toppings))
	assert.Nil(t, cfg.Options(order.Category("sauces")))
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{
			"negative scoop price",
			func(c *Config) { c.PricePerItem.Scoops = decimal.NewFromInt(-1) },
			"price_per_item.scoops",
		},
		{
			"negative topping price",
			func(c *Config) { c.PricePerItem.Toppings = decimal.RequireFromString("-0.5") },
			"price_per_item.toppings",
		},
		{
			"free items allowed",
			func(c *Config) { c.PricePerItem.Toppings = decimal.Zero },
			"",
		},
		{"no scoops", func(c *Config) { c.Scoops = nil }, "at least one scoop flavor"},
		{
			"duplicate topping",
			func(c *Config) { c.Toppings = append(c.Toppings, ItemOption{Name: "Cherries"}) },
			"duplicate item",
		},
		{
			"blank scoop name",
			func(c *Config) { c.Scoops[0].Name = "  " },
			"name is required",
		},
		{"max scoops zero", func(c *Config) { c.MaxScoopsPerFlavor = 0 }, "max_scoops_per_flavor"},
		{"bad theme", func(c *Config) { c.UI.Theme = "neon" }, "ui.theme"},
		{"bad log level", func(c *Config) { c.Log.Level = "TRACE" }, "log.level"},
		{"no storage path", func(c *Config) { c.Log.StoragePath = "" }, "log.storage_path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UI.Theme = "neon"
	cfg.Log.Level = "LOUD"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ui.theme")
	assert.Contains(t, err.Error(), "log.level")
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "config.json")

	data := `{
		"price_per_item": {"scoops": 3, "toppings": "0.75"},
		"scoops": [{"name": "Strawberry"}],
		"toppings": [],
		"max_scoops_per_flavor": 5,
		"ui": {"theme": "light", "show_help": false}
	}`
	require.NoError(t, os.WriteFile(configPath, []byte(data), 0644))

	cfg, path, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, configPath, path)

	assert.True(t, decimal.NewFromInt(3).Equal(cfg.PricePerItem.Scoops))
	assert.True(t, decimal.RequireFromString("0.75").Equal(cfg.PricePerItem.Toppings))
	assert.Equal(t, []ItemOption{{Name: "Strawberry"}}, cfg.Scoops)
	assert.Empty(t, cfg.Toppings)
	assert.Equal(t, 5, cfg.MaxScoopsPerFlavor)
	assert.Equal(t, "light", cfg.UI.Theme)
	// Untouched sections keep their defaults.
	assert.Equal(t, "INFO", cfg.Log.Level)
}

func TestLoadCatalogFromFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	full := filepath.Join(dir, "full.json")
	require.NoError(t, os.WriteFile(full, []byte(`{
		"scoops": [{"name": "Strawberry"}, {"name": "Pistachio"}],
		"toppings": [{"name": "Sprinkles"}]
	}`), 0644))

	cfg, _, err := Load(full)
	require.NoError(t, err)
	assert.Equal(t, []ItemOption{{Name: "Strawberry"}, {Name: "Pistachio"}}, cfg.Scoops)
	assert.Equal(t, []ItemOption{{Name: "Sprinkles"}}, cfg.Toppings)

	// The defaults must not be touched by a load.
	assert.Equal(t, "Chocolate", DefaultConfig().Scoops[0].Name)

	partial := filepath.Join(dir, "partial.json")
	require.NoError(t, os.WriteFile(partial, []byte(`{"scoops": [{"name": "Strawberry"}]}`), 0644))

	cfg, _, err = Load(partial)
	require.NoError(t, err)
	assert.Equal(t, []ItemOption{{Name: "Strawberry"}}, cfg.Scoops)
	assert.Equal(t, DefaultConfig().Toppings, cfg.Toppings)
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	badJSON := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badJSON, []byte(`{"scoops": [`), 0644))
	_, _, err := Load(badJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")

	invalid := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`{"max_scoops_per_flavor": -1}`), 0644))
	_, _, err = Load(invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadWritesDefaultsWhenMissing(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "fresh", "config.json")

	cfg, path, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, configPath, path)
	assert.Equal(t, DefaultConfig().ShopName, cfg.ShopName)

	_, err = os.Stat(configPath)
	require.NoError(t, err, "defaults should be saved for the next run")

	reloaded, _, err := Load(configPath)
	require.NoError(t, err)
	assert.True(t, cfg.PricePerItem.Scoops.Equal(reloaded.PricePerItem.Scoops))
	assert.Equal(t, cfg.Scoops, reloaded.Scoops)
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SUNDAES_SCOOP_PRICE", "2.25")
	t.Setenv("SUNDAES_THEME", "light")
	t.Setenv("SUNDAES_LOG_LEVEL", "DEBUG")

	cfg := DefaultConfig()
	require.NoError(t, applyEnvOverrides(cfg))
	assert.True(t, decimal.RequireFromString("2.25").Equal(cfg.PricePerItem.Scoops))
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.Equal(t, "DEBUG", cfg.Log.Level)

	t.Setenv("SUNDAES_TOPPING_PRICE", "cheap")
	err := applyEnvOverrides(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SUNDAES_TOPPING_PRICE")
}

func TestLoadDotEnvWhitelist(t *testing.T) {
	clearEnv(t)
	t.Setenv("SUNDAES_THEME", "dark")
	t.Setenv("NOT_ALLOWED", "")

	envFile := filepath.Join(t.TempDir(), ".env")
	content := "# comment\nSUNDAES_LOG_LEVEL=\"WARN\"\nSUNDAES_THEME=light\nNOT_ALLOWED=1\nmalformed line\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0644))

	loadDotEnv(envFile)

	assert.Equal(t, "WARN", os.Getenv("SUNDAES_LOG_LEVEL"))
	assert.Equal(t, "dark", os.Getenv("SUNDAES_THEME"), "existing values win over .env")
	assert.Empty(t, os.Getenv("NOT_ALLOWED"))
}

func TestGetConfigPaths(t *testing.T) {
	assert.Equal(t, []string{"custom.json"}, GetConfigPaths("custom.json"))

	paths := GetConfigPaths("")
	require.GreaterOrEqual(t, len(paths), 3)
	assert.Equal(t, DefaultPath, paths[0])
}
