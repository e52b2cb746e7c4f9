package domain

import "time"

type Metric string

const (
	MetricDeliveries    Metric = "deliveries"
	MetricBeneficiaries Metric = "beneficiaries"
)

func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case MetricDeliveries, MetricBeneficiaries:
		return Metric(s), nil
	default:
		return "", ErrUnknownMetric
	}
}

// Score is a derived value that is undefined when its input was empty.
type Score struct {
	Value  float64
	NoData bool
}

func ValueScore(v float64) Score { return Score{Value: v} }

func NoDataScore() Score { return Score{NoData: true} }

type Metrics struct {
	RecordCount         int
	TotalDeliveries     int64
	TotalBeneficiaries  int64
	MeanGapScore        Score
	ActiveOrganizations int
}

// Deltas are percentage changes between the older and the more recent half
// of the dataset window.
type Deltas struct {
	Deliveries    Score
	Beneficiaries Score
	GapScore      Score
}

type RegionalSummary struct {
	Region             string
	RecordCount        int
	TotalDeliveries    int64
	TotalBeneficiaries int64
	MeanGapScore       float64
}

type OrganizationShare struct {
	Organization string
	Value        int64
	Share        float64 // fraction of the ranking total
}

type TimeSeriesPoint struct {
	Date       time.Time // midnight in the records' location
	Deliveries int64
}

// Dashboard is the result of one filter and aggregate pass.
type Dashboard struct {
	Selection                    Selection
	AsOf                         time.Time
	Metrics                      Metrics
	Deltas                       Deltas
	Regional                     []RegionalSummary
	GapSeverity                  []RegionalSummary
	OrganizationsByDeliveries    []OrganizationShare
	OrganizationsByBeneficiaries []OrganizationShare
	Daily                        []TimeSeriesPoint
	Recent                       []DeliveryRecord
}
