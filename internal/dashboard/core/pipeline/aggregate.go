package pipeline

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"aid-gap-analyzer/internal/dashboard/core/domain"
)

// ComputeMetrics totals the records. Totals of an empty input are zero; the
// mean gap score of an empty input is NoData.
func ComputeMetrics(records []domain.DeliveryRecord) domain.Metrics {
	m := domain.Metrics{RecordCount: len(records)}
	for _, r := range records {
		m.TotalDeliveries += r.Deliveries
		m.TotalBeneficiaries += r.Beneficiaries
	}

	mean, err := MeanGapScore(records)
	if err != nil {
		m.MeanGapScore = domain.NoDataScore()
	} else {
		m.MeanGapScore = domain.ValueScore(mean)
	}
	return m
}

// MeanGapScore returns domain.ErrNoData for an empty input.
func MeanGapScore(records []domain.DeliveryRecord) (float64, error) {
	if len(records) == 0 {
		return 0, domain.ErrNoData
	}
	return stat.Mean(gapScores(records), nil), nil
}

func gapScores(records []domain.DeliveryRecord) []float64 {
	xs := make([]float64, len(records))
	for i, r := range records {
		xs[i] = r.GapScore
	}
	return xs
}

// ComputeRegionalSummary emits one row per region present, ordered by
// region name.
func ComputeRegionalSummary(records []domain.DeliveryRecord) []domain.RegionalSummary {
	groups := groupBy(records, func(r domain.DeliveryRecord) string { return r.Region })

	out := make([]domain.RegionalSummary, 0, len(groups))
	for _, g := range groups {
		s := domain.RegionalSummary{
			Region:      g.key,
			RecordCount: len(g.records),
		}
		for _, r := range g.records {
			s.TotalDeliveries += r.Deliveries
			s.TotalBeneficiaries += r.Beneficiaries
		}
		// groups are never empty
		s.MeanGapScore = stat.Mean(gapScores(g.records), nil)
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Region < out[j].Region })
	return out
}

// ComputeGapSeverity ranks regions by mean gap score, worst first. Ties keep
// region name order.
func ComputeGapSeverity(records []domain.DeliveryRecord) []domain.RegionalSummary {
	out := ComputeRegionalSummary(records)
	sort.SliceStable(out, func(i, j int) bool { return out[i].MeanGapScore > out[j].MeanGapScore })
	return out
}

// ComputeOrganizationRanking sums metric per organization, descending.
// Organizations with equal values keep the order they were first seen in.
func ComputeOrganizationRanking(records []domain.DeliveryRecord, metric domain.Metric) ([]domain.OrganizationShare, error) {
	var value func(domain.DeliveryRecord) int64
	switch metric {
	case domain.MetricDeliveries:
		value = func(r domain.DeliveryRecord) int64 { return r.Deliveries }
	case domain.MetricBeneficiaries:
		value = func(r domain.DeliveryRecord) int64 { return r.Beneficiaries }
	default:
		return nil, domain.ErrUnknownMetric
	}

	groups := groupBy(records, func(r domain.DeliveryRecord) string { return r.Organization })

	out := make([]domain.OrganizationShare, 0, len(groups))
	var total int64
	for _, g := range groups {
		var sum int64
		for _, r := range g.records {
			sum += value(r)
		}
		total += sum
		out = append(out, domain.OrganizationShare{Organization: g.key, Value: sum})
	}

	if total > 0 {
		for i := range out {
			out[i].Share = float64(out[i].Value) / float64(total)
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	return out, nil
}

// ComputeDailyTimeSeries sums deliveries per calendar date, oldest first.
// Dates are taken in each record's own location.
func ComputeDailyTimeSeries(records []domain.DeliveryRecord) []domain.TimeSeriesPoint {
	groups := groupBy(records, func(r domain.DeliveryRecord) string {
		return r.Date.Format("2006-01-02")
	})

	out := make([]domain.TimeSeriesPoint, 0, len(groups))
	for _, g := range groups {
		first := g.records[0].Date
		p := domain.TimeSeriesPoint{
			Date: truncateToDay(first),
		}
		for _, r := range g.records {
			p.Deliveries += r.Deliveries
		}
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// RecentRecords returns at most n records, newest first.
func RecentRecords(records []domain.DeliveryRecord, n int) []domain.DeliveryRecord {
	if n <= 0 {
		return []domain.DeliveryRecord{}
	}
	out := append([]domain.DeliveryRecord{}, records...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

type group struct {
	key     string
	records []domain.DeliveryRecord
}

// groupBy partitions records by key, keeping first-encountered key order.
func groupBy(records []domain.DeliveryRecord, key func(domain.DeliveryRecord) string) []group {
	index := make(map[string]int)
	var groups []group

	for _, r := range records {
		k := key(r)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, group{key: k})
		}
		groups[i].records = append(groups[i].records, r)
	}
	return groups
}
