package domain

import "time"

const (
	RegionNorth   = "North"
	RegionSouth   = "South"
	RegionEast    = "East"
	RegionWest    = "West"
	RegionCentral = "Central"
)

const (
	OrgRedCross          = "Red Cross"
	OrgUNWFP             = "UN WFP"
	OrgCareInternational = "Care International"
	OrgOxfam             = "Oxfam"
	OrgLocalNGONetwork   = "Local NGO Network"
)

// Regions and Organizations are the closed label sets records are drawn from.
// The order is the draw order used by the generator.
var (
	regions       = []string{RegionNorth, RegionSouth, RegionEast, RegionWest, RegionCentral}
	organizations = []string{OrgRedCross, OrgUNWFP, OrgCareInternational, OrgOxfam, OrgLocalNGONetwork}
)

// Regions returns a copy of the known region labels.
func Regions() []string {
	return append([]string(nil), regions...)
}

// Organizations returns a copy of the known organization labels.
func Organizations() []string {
	return append([]string(nil), organizations...)
}

func IsKnownRegion(label string) bool {
	return contains(regions, label)
}

func IsKnownOrganization(label string) bool {
	return contains(organizations, label)
}

func contains(set []string, label string) bool {
	for _, s := range set {
		if s == label {
			return true
		}
	}
	return false
}

// DeliveryRecord is one synthetic aid delivery observation.
type DeliveryRecord struct {
	Date          time.Time
	Region        string
	Organization  string
	Deliveries    int64 // [10, 200)
	Beneficiaries int64 // [50, 1000)
	GapScore      float64
}

// Dataset is the generated base data of a session. It is never mutated
// after generation.
type Dataset struct {
	Seed        uint64
	GeneratedAt time.Time
	WindowDays  int
	Records     []DeliveryRecord

	// BaseRegional summarises the unfiltered records.
	BaseRegional []RegionalSummary
}
