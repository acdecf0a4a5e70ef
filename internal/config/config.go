package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config is the persisted form of the simulation inputs: a flat
// key-value JSON document, read and written wholesale. Every key is
// optional; missing keys keep their defaults.
type Config struct {
	Years int `json:"years"`

	MonthlyStockMan   float64 `json:"monthly_stock_man"`
	MonthlyBondMan    float64 `json:"monthly_bond_man"`
	MonthlySavingsMan float64 `json:"monthly_savings_man"`

	StockReturnPercent   float64 `json:"stock_return_percent"`
	BondReturnPercent    float64 `json:"bond_return_percent"`
	SavingsReturnPercent float64 `json:"savings_return_percent"`

	InitialStockMan   float64 `json:"initial_stock_man"`
	InitialBondMan    float64 `json:"initial_bond_man"`
	InitialSavingsMan float64 `json:"initial_savings_man"`

	CurrentStockMan   float64 `json:"current_stock_man"`
	CurrentBondMan    float64 `json:"current_bond_man"`
	CurrentSavingsMan float64 `json:"current_savings_man"`
}

func Default() Config {
	return Config{
		Years:                30,
		MonthlyStockMan:      3.0,
		MonthlyBondMan:       1.0,
		MonthlySavingsMan:    1.0,
		StockReturnPercent:   5.0,
		BondReturnPercent:    1.0,
		SavingsReturnPercent: 0.1,
	}
}

// LoadError reports a config file that exists but could not be used.
// Callers are expected to recover by falling back to Default and
// surfacing a warning; the simulation still runs.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load config %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads the config document at path. A missing file is not an
// error: the defaults come back as-is. A malformed file comes back as
// the defaults plus a *LoadError.
func Load(path string) (Config, error) {
	cfg := Default()

	bytes, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Default(), &LoadError{Path: path, Err: err}
	}

	if err := json.Unmarshal(bytes, &cfg); err != nil {
		return Default(), &LoadError{Path: path, Err: err}
	}

	return cfg, nil
}

// Save writes the config document wholesale.
func (c Config) Save(path string) error {
	bytes, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, bytes, 0644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}
