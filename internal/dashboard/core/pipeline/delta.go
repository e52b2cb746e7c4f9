package pipeline

import (
	"time"

	"aid-gap-analyzer/internal/dashboard/core/domain"
)

// ComputeDeltas compares the most recent half of the window ending at asOf
// with the older half. Each delta is the percentage change from the older
// half; it is NoData when the older half has nothing to compare against.
func ComputeDeltas(records []domain.DeliveryRecord, asOf time.Time, windowDays int) domain.Deltas {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	split := asOf.AddDate(0, 0, -windowDays/2)

	var recent, older []domain.DeliveryRecord
	for _, r := range records {
		if r.Date.After(split) {
			recent = append(recent, r)
		} else {
			older = append(older, r)
		}
	}

	rm := ComputeMetrics(recent)
	om := ComputeMetrics(older)

	d := domain.Deltas{
		Deliveries:    percentChange(float64(om.TotalDeliveries), float64(rm.TotalDeliveries)),
		Beneficiaries: percentChange(float64(om.TotalBeneficiaries), float64(rm.TotalBeneficiaries)),
		GapScore:      domain.NoDataScore(),
	}
	if !rm.MeanGapScore.NoData && !om.MeanGapScore.NoData {
		d.GapScore = percentChange(om.MeanGapScore.Value, rm.MeanGapScore.Value)
	}
	return d
}

func percentChange(prev, cur float64) domain.Score {
	if prev == 0 {
		return domain.NoDataScore()
	}
	return domain.ValueScore((cur - prev) / prev * 100)
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
