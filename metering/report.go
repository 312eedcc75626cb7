package metering

import "github.com/shopspring/decimal"

// ItemsPerMonthUnit identifies the usage entry counting billable items
const ItemsPerMonthUnit = "ITEMS_PER_MONTH"

// Report is an organization's metering report for one region and month
type Report struct {
	Organizations []OrganizationUsage `json:"organizations"`
}

// OrganizationUsage splits an organization's usage into billable and
// non-billable classes
type OrganizationUsage struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Region           string     `json:"region"`
	BillableUsage    UsageClass `json:"billable_usage"`
	NonBillableUsage UsageClass `json:"non_billable_usage"`
}

// UsageClass is the usage of one class broken down by space
type UsageClass struct {
	Spaces []SpaceUsage `json:"spaces"`
}

type SpaceUsage struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Services []ServiceUsage `json:"services"`
}

type ServiceUsage struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Instances []InstanceUsage `json:"instances"`
}

type InstanceUsage struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Usage []UsageEntry `json:"usage"`
}

type UsageEntry struct {
	UnitID   string          `json:"unitId"`
	Unit     string          `json:"unit"`
	Quantity decimal.Decimal `json:"quantity"`
	Cost     decimal.Decimal `json:"cost"`
}

func (r *Report) organization(name string) (OrganizationUsage, bool) {
	for _, org := range r.Organizations {
		if org.Name == name {
			return org, true
		}
	}
	return OrganizationUsage{}, false
}

func (c UsageClass) space(name string) (SpaceUsage, bool) {
	for _, space := range c.Spaces {
		if space.Name == name {
			return space, true
		}
	}
	return SpaceUsage{}, false
}

func (s SpaceUsage) service(name string) (ServiceUsage, bool) {
	for _, service := range s.Services {
		if service.Name == name {
			return service, true
		}
	}
	return ServiceUsage{}, false
}

func (s ServiceUsage) instance(name string) (InstanceUsage, bool) {
	for _, instance := range s.Instances {
		if instance.Name == name {
			return instance, true
		}
	}
	return InstanceUsage{}, false
}

func (i InstanceUsage) entry(unitID string) (UsageEntry, bool) {
	for _, entry := range i.Usage {
		if entry.UnitID == unitID {
			return entry, true
		}
	}
	return UsageEntry{}, false
}
