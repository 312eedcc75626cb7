package pricing

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	// FreePlan is the plan name that is never charged for
	FreePlan = "free"
	// DefaultMaxCharactersPerCall is the largest text a single analysis call accepts
	DefaultMaxCharactersPerCall = 10000
	// DefaultMaxPayloadBytes caps how much of a payload is measured at all
	DefaultMaxPayloadBytes = 50000
)

// Config is the static pricing configuration, normally loaded from the
// "pricing" section of config.json
type Config struct {
	FreePlan             string           `json:"free_plan"`               // plan name charged at zero
	MaxCharactersPerCall int64            `json:"max_characters_per_call"` // characters per billable call split
	MaxPayloadBytes      int              `json:"max_payload_bytes"`       // bytes of payload measured
	TransactionTiers     Tiers            `json:"transaction_tiers"`       // tiers for every paid plan
	PlanTiers            map[string]Tiers `json:"plan_tiers,omitempty"`    // per-plan overrides
}

// DefaultTransactionTiers is the published transaction pricing for the
// standard plan
func DefaultTransactionTiers() Tiers {
	return Tiers{
		{From: 0, To: 250000, CostPerItem: decimal.RequireFromString("0.003")},
		{From: 250001, To: 5000000, CostPerItem: decimal.RequireFromString("0.001")},
		{From: 5000001, CostPerItem: decimal.RequireFromString("0.0002")},
	}
}

// DefaultConfig returns the stock configuration
func DefaultConfig() Config {
	return Config{
		FreePlan:             FreePlan,
		MaxCharactersPerCall: DefaultMaxCharactersPerCall,
		MaxPayloadBytes:      DefaultMaxPayloadBytes,
		TransactionTiers:     DefaultTransactionTiers(),
	}
}

func (cfg *Config) applyDefaults() {
	if cfg.FreePlan == "" {
		cfg.FreePlan = FreePlan
	}
	if cfg.MaxCharactersPerCall == 0 {
		cfg.MaxCharactersPerCall = DefaultMaxCharactersPerCall
	}
	if cfg.MaxPayloadBytes == 0 {
		cfg.MaxPayloadBytes = DefaultMaxPayloadBytes
	}
	if len(cfg.TransactionTiers) == 0 {
		cfg.TransactionTiers = DefaultTransactionTiers()
	}
}

// Validate rejects configuration that would make estimates wrong
func (cfg Config) Validate() error {
	if cfg.MaxCharactersPerCall < 1 {
		return fmt.Errorf("max_characters_per_call must be positive")
	}
	if cfg.MaxPayloadBytes < 1 {
		return fmt.Errorf("max_payload_bytes must be positive")
	}
	if err := cfg.TransactionTiers.Validate(); err != nil {
		return errors.Wrap(err, "invalid transaction_tiers")
	}
	for plan, tiers := range cfg.PlanTiers {
		if err := tiers.Validate(); err != nil {
			return errors.Wrapf(err, "invalid plan_tiers for %s", plan)
		}
	}
	return nil
}

type configFile struct {
	Pricing Config `json:"pricing"`
}

// LoadConfig reads the pricing section of a config.json file. Missing
// values fall back to DefaultConfig.
func LoadConfig(path string) (Config, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read %s", path)
	}
	var f configFile
	if err := json.Unmarshal(b, &f); err != nil {
		return Config{}, errors.Wrapf(err, "failed to parse %s", path)
	}
	cfg := f.Pricing
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "bad pricing configuration in %s", path)
	}
	return cfg, nil
}
