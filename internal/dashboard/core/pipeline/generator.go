// Package pipeline holds the pure filter and aggregate functions behind the
// dashboard. Nothing here keeps state; callers own the dataset.
package pipeline

import (
	"math/rand/v2"
	"time"

	"aid-gap-analyzer/internal/dashboard/core/domain"
)

const (
	DefaultSeed        uint64 = 42
	DefaultRecordCount        = 500
	DefaultWindowDays         = 90
)

const (
	minDeliveries    = 10
	maxDeliveries    = 200
	minBeneficiaries = 50
	maxBeneficiaries = 1000
	maxGapScore      = 100.0
)

// GenerateDataset draws count records from a PRNG seeded with seed. The same
// seed always yields the same records and day offsets; absolute dates are
// offsets of up to windowDays-1 days before now.
func GenerateDataset(seed uint64, count, windowDays int, now time.Time) domain.Dataset {
	if count < 0 {
		count = 0
	}
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}

	rng := rand.New(rand.NewPCG(seed, seed))
	regions := domain.Regions()
	orgs := domain.Organizations()

	records := make([]domain.DeliveryRecord, count)

	// Column by column, so adding a field later does not reshuffle the others.
	for i := range records {
		records[i].Date = now.AddDate(0, 0, -rng.IntN(windowDays))
	}
	for i := range records {
		records[i].Region = regions[rng.IntN(len(regions))]
	}
	for i := range records {
		records[i].Organization = orgs[rng.IntN(len(orgs))]
	}
	for i := range records {
		records[i].Deliveries = int64(minDeliveries + rng.IntN(maxDeliveries-minDeliveries))
	}
	for i := range records {
		records[i].Beneficiaries = int64(minBeneficiaries + rng.IntN(maxBeneficiaries-minBeneficiaries))
	}
	for i := range records {
		records[i].GapScore = rng.Float64() * maxGapScore
	}

	return domain.Dataset{
		Seed:         seed,
		GeneratedAt:  now,
		WindowDays:   windowDays,
		Records:      records,
		BaseRegional: ComputeRegionalSummary(records),
	}
}
