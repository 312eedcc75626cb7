package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Tier is a contiguous range of cumulative item counts charged at a flat
// per-item rate. A tier holds the items counted from the previous tier's To
// up to its own To. The last tier of a table is open-ended and its To is
// ignored.
type Tier struct {
	From        int64           `json:"from"`
	To          int64           `json:"to"`
	CostPerItem decimal.Decimal `json:"cost_per_item"`
}

// TierCharge is the share of an allocation that landed in a single tier
type TierCharge struct {
	From        int64           `json:"from"`
	To          int64           `json:"to,omitempty"`
	Items       int64           `json:"items"`
	CostPerItem decimal.Decimal `json:"cost_per_item"`
	Cost        decimal.Decimal `json:"cost"`
}

// Tiers is a pricing table ordered ascending by range
type Tiers []Tier

// Validate checks the table covers every non-negative item count with no
// gaps or overlaps.
func (t Tiers) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("tier table is empty")
	}
	if t[0].From != 0 {
		return fmt.Errorf("first tier must start at 0, starts at %d", t[0].From)
	}
	for i, tier := range t {
		if tier.CostPerItem.IsNegative() {
			return fmt.Errorf("tier %d has a negative cost_per_item %s", i, tier.CostPerItem)
		}
		if i > 0 && tier.From != t[i-1].To+1 {
			return fmt.Errorf("tier %d starts at %d but tier %d ends at %d", i, tier.From, i-1, t[i-1].To)
		}
		if i < len(t)-1 && tier.To < tier.From {
			return fmt.Errorf("tier %d ends at %d before it starts at %d", i, tier.To, tier.From)
		}
	}
	return nil
}

// Allocate attributes items consumed on top of existing ones to the tiers
// their cumulative counts fall in and returns the summed cost along with the
// per-tier breakdown. The table must be valid.
func (t Tiers) Allocate(existing, items int64) (decimal.Decimal, []TierCharge) {
	sum := decimal.Zero
	charges := []TierCharge{}
	accountedFor := existing
	unaccountedFor := items

	for i, tier := range t {
		openEnded := i == len(t)-1
		if !openEnded && existing > tier.To {
			continue
		}
		if existing+items < tier.From {
			break
		}
		tierItems := unaccountedFor
		if !openEnded && tier.To-accountedFor < tierItems {
			tierItems = tier.To - accountedFor
		}
		if tierItems <= 0 {
			continue
		}
		cost := tier.CostPerItem.Mul(decimal.NewFromInt(tierItems))
		charge := TierCharge{
			From:        tier.From,
			Items:       tierItems,
			CostPerItem: tier.CostPerItem,
			Cost:        cost,
		}
		if !openEnded {
			charge.To = tier.To
		}
		charges = append(charges, charge)

		sum = sum.Add(cost)
		accountedFor += tierItems
		unaccountedFor -= tierItems
	}

	return sum, charges
}
