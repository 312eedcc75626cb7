package pricing

import (
	"unicode/utf16"

	"github.com/shopspring/decimal"
)

// Input describes a workload about to be submitted
type Input struct {
	// FeatureCount is the number of analysis features run per call, 0 means 1
	FeatureCount int64
	// Plan is the service plan name, empty means the free plan
	Plan string
	// ExistingItemCount is what has already been consumed this billing period
	ExistingItemCount int64
	// Payload is the text to be analysed
	Payload string
}

// Estimate is the marginal consumption and cost of a workload
type Estimate struct {
	Plan      string          `json:"plan"`
	MoneyCost decimal.Decimal `json:"money_cost"`
	ItemCost  int64           `json:"item_cost"`
	Tiers     []TierCharge    `json:"tiers,omitempty"`
}

// Schedule prices workloads against a validated Config. It holds no mutable
// state and is safe for concurrent use.
type Schedule struct {
	cfg Config
}

// NewSchedule validates cfg and returns a Schedule for it
func NewSchedule(cfg Config) (*Schedule, error) {
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Schedule{cfg: cfg}, nil
}

// Config returns the configuration the schedule prices with
func (s *Schedule) Config() Config {
	return s.cfg
}

// IsFree reports whether plan is never charged for
func (s *Schedule) IsFree(plan string) bool {
	return plan == "" || plan == s.cfg.FreePlan
}

// TiersFor returns the tier table a paid plan is charged with
func (s *Schedule) TiersFor(plan string) Tiers {
	if tiers, ok := s.cfg.PlanTiers[plan]; ok {
		return tiers
	}
	return s.cfg.TransactionTiers
}

// PayloadCharacterSize counts the first MaxPayloadBytes bytes of payload in
// UTF-16 code units, so a character outside the Basic Multilingual Plane
// counts as two. Anything past the cap is not counted.
func (s *Schedule) PayloadCharacterSize(payload string) int64 {
	b := []byte(payload)
	if len(b) > s.cfg.MaxPayloadBytes {
		b = b[:s.cfg.MaxPayloadBytes]
	}
	return int64(len(utf16.Encode([]rune(string(b)))))
}

// CallSplits is the number of calls needed to submit payload
func (s *Schedule) CallSplits(payload string) int64 {
	size := s.PayloadCharacterSize(payload)
	return (size + s.cfg.MaxCharactersPerCall - 1) / s.cfg.MaxCharactersPerCall
}

// Estimate computes the items in.Payload will consume and what they cost
// given in.ExistingItemCount items were consumed earlier in the period.
func (s *Schedule) Estimate(in Input) Estimate {
	featureCount := in.FeatureCount
	if featureCount == 0 {
		featureCount = 1
	}
	plan := in.Plan
	if plan == "" {
		plan = s.cfg.FreePlan
	}

	itemCost := featureCount * s.CallSplits(in.Payload)
	estimate := Estimate{
		Plan:      plan,
		MoneyCost: decimal.Zero,
		ItemCost:  itemCost,
	}
	if s.IsFree(plan) {
		return estimate
	}

	estimate.MoneyCost, estimate.Tiers = s.TiersFor(plan).Allocate(in.ExistingItemCount, itemCost)
	return estimate
}
