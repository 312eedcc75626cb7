package metering

import (
	"code.cloudfoundry.org/lager"
	"github.com/shopspring/decimal"
)

// Target identifies a single service instance inside an organization
type Target struct {
	OrganizationName string
	SpaceName        string
	ServiceName      string
	InstanceName     string
}

// Snapshot is the usage of a target over one month
type Snapshot struct {
	ItemCount int64           `json:"item_count"`
	TotalCost decimal.Decimal `json:"total_cost"`
}

type classUsage struct {
	quantity decimal.Decimal
	cost     decimal.Decimal
}

// Reduce sums the ITEMS_PER_MONTH usage of target across the billable class
// and, if includeFreeUsage is set, the non-billable class. An organization
// or space with nothing reported contributes zero.
func Reduce(logger lager.Logger, report *Report, target Target, includeFreeUsage bool) Snapshot {
	snapshot := Snapshot{TotalCost: decimal.Zero}

	org, ok := report.organization(target.OrganizationName)
	if !ok {
		logger.Debug("no-organization-usage", lager.Data{
			"organization": target.OrganizationName,
		})
		return snapshot
	}

	classes := map[string]UsageClass{
		"billable_usage": org.BillableUsage,
	}
	if includeFreeUsage {
		classes["non_billable_usage"] = org.NonBillableUsage
	}

	quantity := decimal.Zero
	for name, class := range classes {
		usage := reduceClass(logger.Session(name), class, target)
		quantity = quantity.Add(usage.quantity)
		snapshot.TotalCost = snapshot.TotalCost.Add(usage.cost)
	}
	snapshot.ItemCount = quantity.IntPart()

	return snapshot
}

func reduceClass(logger lager.Logger, class UsageClass, target Target) classUsage {
	none := classUsage{quantity: decimal.Zero, cost: decimal.Zero}

	space, ok := class.space(target.SpaceName)
	if !ok {
		return none
	}
	service, ok := space.service(target.ServiceName)
	if !ok {
		logger.Debug("no-service-usage", lager.Data{"space": target.SpaceName, "service": target.ServiceName})
		return none
	}
	instance, ok := service.instance(target.InstanceName)
	if !ok {
		logger.Debug("no-instance-usage", lager.Data{"service": target.ServiceName, "instance": target.InstanceName})
		return none
	}
	entry, ok := instance.entry(ItemsPerMonthUnit)
	if !ok {
		logger.Debug("no-item-usage", lager.Data{"instance": target.InstanceName})
		return none
	}
	return classUsage{quantity: entry.Quantity, cost: entry.Cost}
}
