package fiber

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"aid-gap-analyzer/internal/dashboard/core/domain"
)

const (
	gapStateOK     = "ok"
	gapStateNoData = "no_data"
	noDataLabel    = "no data"
	dateLayout     = "2006-01-02"
)

// ChangeSelectionRequest is the "selection changed" event payload.
// @Description An omitted field selects every label of that dimension; an empty list selects none.
type ChangeSelectionRequest struct {
	Regions       []string `json:"regions" example:"North,South"`
	Organizations []string `json:"organizations" example:"Red Cross,Oxfam"`
}

type SelectionResponse struct {
	Regions       []string `json:"regions"`
	Organizations []string `json:"organizations"`
}

type MetricsResponse struct {
	RecordCount             int      `json:"record_count"`
	TotalDeliveries         int64    `json:"total_deliveries"`
	TotalDeliveriesLabel    string   `json:"total_deliveries_label" example:"48,213"`
	TotalBeneficiaries      int64    `json:"total_beneficiaries"`
	TotalBeneficiariesLabel string   `json:"total_beneficiaries_label" example:"262,104"`
	MeanGapScore            *float64 `json:"mean_gap_score"`
	MeanGapScoreLabel       string   `json:"mean_gap_score_label" example:"49.7"`
	GapScoreState           string   `json:"gap_score_state" example:"ok"`
	ActiveOrganizations     int      `json:"active_organizations"`
}

// DeltasResponse holds percentage changes; null means no data to compare.
type DeltasResponse struct {
	Deliveries         *float64 `json:"deliveries"`
	DeliveriesLabel    string   `json:"deliveries_label" example:"+4.2%"`
	Beneficiaries      *float64 `json:"beneficiaries"`
	BeneficiariesLabel string   `json:"beneficiaries_label" example:"-1.3%"`
	GapScore           *float64 `json:"gap_score"`
	GapScoreLabel      string   `json:"gap_score_label" example:"+0.8%"`
}

type RegionalSummaryResponse struct {
	Region             string  `json:"region"`
	RecordCount        int     `json:"record_count"`
	TotalDeliveries    int64   `json:"total_deliveries"`
	TotalBeneficiaries int64   `json:"total_beneficiaries"`
	MeanGapScore       float64 `json:"mean_gap_score"`
}

type OrganizationShareResponse struct {
	Organization string  `json:"organization"`
	Value        int64   `json:"value"`
	Share        float64 `json:"share"`
}

type TimeSeriesPointResponse struct {
	Date       string `json:"date" example:"2025-06-30"`
	Deliveries int64  `json:"deliveries"`
}

type RecordResponse struct {
	Date          time.Time `json:"date"`
	Region        string    `json:"region"`
	Organization  string    `json:"organization"`
	Deliveries    int64     `json:"deliveries"`
	Beneficiaries int64     `json:"beneficiaries"`
	GapScore      float64   `json:"gap_score"`
}

type DashboardResponse struct {
	Selection                    SelectionResponse           `json:"selection"`
	AsOf                         time.Time                   `json:"as_of"`
	Metrics                      MetricsResponse             `json:"metrics"`
	Deltas                       DeltasResponse              `json:"deltas"`
	Regional                     []RegionalSummaryResponse   `json:"regional"`
	GapSeverity                  []RegionalSummaryResponse   `json:"gap_severity"`
	OrganizationsByDeliveries    []OrganizationShareResponse `json:"organizations_by_deliveries"`
	OrganizationsByBeneficiaries []OrganizationShareResponse `json:"organizations_by_beneficiaries"`
	Daily                        []TimeSeriesPointResponse   `json:"daily"`
	Recent                       []RecordResponse            `json:"recent"`
}

type SessionResponse struct {
	SessionID    string                    `json:"session_id"`
	CreatedAt    time.Time                 `json:"created_at"`
	Seed         uint64                    `json:"seed"`
	RecordCount  int                       `json:"record_count"`
	Options      SelectionResponse         `json:"options"`
	BaseRegional []RegionalSummaryResponse `json:"base_regional"`
	Dashboard    *DashboardResponse        `json:"dashboard"`
}

type RankingResponse struct {
	Metric        string                      `json:"metric" example:"deliveries"`
	Organizations []OrganizationShareResponse `json:"organizations"`
}

type RecordsResponse struct {
	Count   int              `json:"count"`
	Records []RecordResponse `json:"records"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_selection"`
	Message string `json:"message" example:"invalid selection: unknown region \"Atlantis\""`
}

func toSessionResponse(s *domain.Session) SessionResponse {
	return SessionResponse{
		SessionID:   s.ID,
		CreatedAt:   s.CreatedAt,
		Seed:        s.Dataset.Seed,
		RecordCount: len(s.Dataset.Records),
		Options: SelectionResponse{
			Regions:       domain.Regions(),
			Organizations: domain.Organizations(),
		},
		BaseRegional: toRegionalResponses(s.Dataset.BaseRegional),
		Dashboard:    toDashboardResponse(s.Dashboard()),
	}
}

func toDashboardResponse(d *domain.Dashboard) *DashboardResponse {
	if d == nil {
		return nil
	}

	resp := &DashboardResponse{
		Selection: SelectionResponse{
			Regions:       nonNil(d.Selection.Regions),
			Organizations: nonNil(d.Selection.Organizations),
		},
		AsOf:                         d.AsOf,
		Metrics:                      toMetricsResponse(d.Metrics),
		Deltas:                       toDeltasResponse(d.Deltas),
		Regional:                     toRegionalResponses(d.Regional),
		GapSeverity:                  toRegionalResponses(d.GapSeverity),
		OrganizationsByDeliveries:    toShareResponses(d.OrganizationsByDeliveries),
		OrganizationsByBeneficiaries: toShareResponses(d.OrganizationsByBeneficiaries),
		Daily:                        make([]TimeSeriesPointResponse, 0, len(d.Daily)),
		Recent:                       toRecordResponses(d.Recent),
	}

	for _, p := range d.Daily {
		resp.Daily = append(resp.Daily, TimeSeriesPointResponse{
			Date:       p.Date.Format(dateLayout),
			Deliveries: p.Deliveries,
		})
	}

	return resp
}

func toMetricsResponse(m domain.Metrics) MetricsResponse {
	resp := MetricsResponse{
		RecordCount:             m.RecordCount,
		TotalDeliveries:         m.TotalDeliveries,
		TotalDeliveriesLabel:    humanize.Comma(m.TotalDeliveries),
		TotalBeneficiaries:      m.TotalBeneficiaries,
		TotalBeneficiariesLabel: humanize.Comma(m.TotalBeneficiaries),
		GapScoreState:           gapStateNoData,
		MeanGapScoreLabel:       noDataLabel,
		ActiveOrganizations:     m.ActiveOrganizations,
	}
	if !m.MeanGapScore.NoData {
		v := m.MeanGapScore.Value
		resp.MeanGapScore = &v
		resp.MeanGapScoreLabel = fmt.Sprintf("%.1f", v)
		resp.GapScoreState = gapStateOK
	}
	return resp
}

func toDeltasResponse(d domain.Deltas) DeltasResponse {
	var resp DeltasResponse
	resp.Deliveries, resp.DeliveriesLabel = scoreValue(d.Deliveries)
	resp.Beneficiaries, resp.BeneficiariesLabel = scoreValue(d.Beneficiaries)
	resp.GapScore, resp.GapScoreLabel = scoreValue(d.GapScore)
	return resp
}

func scoreValue(s domain.Score) (*float64, string) {
	if s.NoData {
		return nil, noDataLabel
	}
	v := s.Value
	return &v, fmt.Sprintf("%+.1f%%", v)
}

func toRegionalResponses(in []domain.RegionalSummary) []RegionalSummaryResponse {
	out := make([]RegionalSummaryResponse, 0, len(in))
	for _, s := range in {
		out = append(out, RegionalSummaryResponse{
			Region:             s.Region,
			RecordCount:        s.RecordCount,
			TotalDeliveries:    s.TotalDeliveries,
			TotalBeneficiaries: s.TotalBeneficiaries,
			MeanGapScore:       s.MeanGapScore,
		})
	}
	return out
}

func toShareResponses(in []domain.OrganizationShare) []OrganizationShareResponse {
	out := make([]OrganizationShareResponse, 0, len(in))
	for _, s := range in {
		out = append(out, OrganizationShareResponse{
			Organization: s.Organization,
			Value:        s.Value,
			Share:        s.Share,
		})
	}
	return out
}

func toRecordResponses(in []domain.DeliveryRecord) []RecordResponse {
	out := make([]RecordResponse, 0, len(in))
	for _, r := range in {
		out = append(out, RecordResponse{
			Date:          r.Date,
			Region:        r.Region,
			Organization:  r.Organization,
			Deliveries:    r.Deliveries,
			Beneficiaries: r.Beneficiaries,
			GapScore:      r.GapScore,
		})
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
