package pipeline

import "aid-gap-analyzer/internal/dashboard/core/domain"

const DefaultRecentLimit = 10

type Options struct {
	RecentLimit int
}

// BuildDashboard runs one complete filter and aggregate pass over ds.
func BuildDashboard(ds domain.Dataset, sel domain.Selection, opts Options) (*domain.Dashboard, error) {
	filtered, err := ApplyFilters(ds.Records, sel)
	if err != nil {
		return nil, err
	}

	if opts.RecentLimit <= 0 {
		opts.RecentLimit = DefaultRecentLimit
	}

	byDeliveries, err := ComputeOrganizationRanking(filtered, domain.MetricDeliveries)
	if err != nil {
		return nil, err
	}
	byBeneficiaries, err := ComputeOrganizationRanking(filtered, domain.MetricBeneficiaries)
	if err != nil {
		return nil, err
	}

	metrics := ComputeMetrics(filtered)
	metrics.ActiveOrganizations = sel.ActiveOrganizations()

	return &domain.Dashboard{
		Selection:                    sel.Clone(),
		AsOf:                         ds.GeneratedAt,
		Metrics:                      metrics,
		Deltas:                       ComputeDeltas(filtered, ds.GeneratedAt, ds.WindowDays),
		Regional:                     ComputeRegionalSummary(filtered),
		GapSeverity:                  ComputeGapSeverity(filtered),
		OrganizationsByDeliveries:    byDeliveries,
		OrganizationsByBeneficiaries: byBeneficiaries,
		Daily:                        ComputeDailyTimeSeries(filtered),
		Recent:                       RecentRecords(filtered, opts.RecentLimit),
	}, nil
}
