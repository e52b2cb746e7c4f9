package pipeline_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aid-gap-analyzer/internal/dashboard/core/domain"
	"aid-gap-analyzer/internal/dashboard/core/pipeline"
)

var asOf = time.Date(2025, 6, 30, 15, 4, 5, 0, time.UTC)

func threeRecords() []domain.DeliveryRecord {
	return []domain.DeliveryRecord{
		{Date: asOf, Region: domain.RegionNorth, Organization: domain.OrgRedCross, Deliveries: 10, Beneficiaries: 100, GapScore: 20},
		{Date: asOf, Region: domain.RegionSouth, Organization: domain.OrgOxfam, Deliveries: 20, Beneficiaries: 200, GapScore: 80},
		{Date: asOf, Region: domain.RegionNorth, Organization: domain.OrgOxfam, Deliveries: 30, Beneficiaries: 300, GapScore: 40},
	}
}

func subsets(all []string) [][]string {
	out := make([][]string, 0, 1<<len(all))
	for mask := 0; mask < 1<<len(all); mask++ {
		var s []string
		for i, v := range all {
			if mask&(1<<i) != 0 {
				s = append(s, v)
			}
		}
		out = append(out, s)
	}
	return out
}

func TestApplyFilters_ThreeRecordScenario(t *testing.T) {
	data := threeRecords()

	north, err := pipeline.ApplyFilters(data, domain.Selection{
		Regions:       []string{domain.RegionNorth},
		Organizations: domain.Organizations(),
	})
	require.NoError(t, err)
	require.Len(t, north, 2)

	m := pipeline.ComputeMetrics(north)
	assert.Equal(t, int64(40), m.TotalDeliveries)
	require.False(t, m.MeanGapScore.NoData)
	assert.InDelta(t, 30.0, m.MeanGapScore.Value, 1e-9)

	redCross, err := pipeline.ApplyFilters(data, domain.Selection{
		Regions:       domain.Regions(),
		Organizations: []string{domain.OrgRedCross},
	})
	require.NoError(t, err)
	require.Len(t, redCross, 1)
	assert.Equal(t, int64(10), pipeline.ComputeMetrics(redCross).TotalDeliveries)
}

func TestApplyFilters_SoundAndComplete(t *testing.T) {
	data := pipeline.GenerateDataset(pipeline.DefaultSeed, pipeline.DefaultRecordCount, pipeline.DefaultWindowDays, asOf).Records

	for _, regions := range subsets(domain.Regions()) {
		for _, orgs := range subsets(domain.Organizations()) {
			sel := domain.Selection{Regions: regions, Organizations: orgs}
			got, err := pipeline.ApplyFilters(data, sel)
			require.NoError(t, err)

			want := 0
			for _, r := range data {
				if sel.HasRegion(r.Region) && sel.HasOrganization(r.Organization) {
					want++
				}
			}
			for _, r := range got {
				if !sel.HasRegion(r.Region) || !sel.HasOrganization(r.Organization) {
					t.Fatalf("record %+v does not match selection %+v", r, sel)
				}
			}
			if len(got) != want {
				t.Fatalf("selection %+v: expected %d records, got %d", sel, want, len(got))
			}

			var regionalSum int64
			for _, s := range pipeline.ComputeRegionalSummary(got) {
				regionalSum += s.TotalDeliveries
			}
			if regionalSum != pipeline.ComputeMetrics(got).TotalDeliveries {
				t.Fatalf("selection %+v: regional sum %d != total", sel, regionalSum)
			}
		}
	}
}

func TestApplyFilters_FullSelectionIsIdentity(t *testing.T) {
	data := pipeline.GenerateDataset(7, 120, pipeline.DefaultWindowDays, asOf).Records

	got, err := pipeline.ApplyFilters(data, domain.FullSelection())
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestApplyFilters_EmptyDimension(t *testing.T) {
	data := threeRecords()

	got, err := pipeline.ApplyFilters(data, domain.Selection{Organizations: domain.Organizations()})
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = pipeline.ApplyFilters(data, domain.Selection{Regions: domain.Regions(), Organizations: []string{}})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestApplyFilters_UnknownLabel(t *testing.T) {
	got, err := pipeline.ApplyFilters(threeRecords(), domain.Selection{
		Regions:       []string{domain.RegionNorth, "Atlantis"},
		Organizations: []string{"oxfam"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidSelection))
	assert.Contains(t, err.Error(), `region "Atlantis"`)
	assert.Contains(t, err.Error(), `organization "oxfam"`)
	assert.Nil(t, got)
}

func TestComputeMetrics_Empty(t *testing.T) {
	m := pipeline.ComputeMetrics(nil)
	assert.Zero(t, m.TotalDeliveries)
	assert.Zero(t, m.TotalBeneficiaries)
	assert.True(t, m.MeanGapScore.NoData)

	_, err := pipeline.MeanGapScore([]domain.DeliveryRecord{})
	assert.ErrorIs(t, err, domain.ErrNoData)
}

func TestComputeRegionalSummary(t *testing.T) {
	data := threeRecords()

	first := pipeline.ComputeRegionalSummary(data)
	second := pipeline.ComputeRegionalSummary(data)
	assert.Equal(t, first, second)

	require.Len(t, first, 2)
	assert.Equal(t, domain.RegionalSummary{
		Region: domain.RegionNorth, RecordCount: 2, TotalDeliveries: 40, TotalBeneficiaries: 400, MeanGapScore: 30,
	}, first[0])
	assert.Equal(t, domain.RegionSouth, first[1].Region)
	assert.InDelta(t, 80.0, first[1].MeanGapScore, 1e-9)

	assert.Empty(t, pipeline.ComputeRegionalSummary(nil))
}

func TestComputeGapSeverity(t *testing.T) {
	sev := pipeline.ComputeGapSeverity(threeRecords())
	require.Len(t, sev, 2)
	assert.Equal(t, domain.RegionSouth, sev[0].Region)
	assert.Equal(t, domain.RegionNorth, sev[1].Region)
}

func TestComputeOrganizationRanking(t *testing.T) {
	data := threeRecords()

	byDeliveries, err := pipeline.ComputeOrganizationRanking(data, domain.MetricDeliveries)
	require.NoError(t, err)
	require.Len(t, byDeliveries, 2)
	assert.Equal(t, domain.OrgOxfam, byDeliveries[0].Organization)
	assert.Equal(t, int64(50), byDeliveries[0].Value)
	assert.InDelta(t, 50.0/60.0, byDeliveries[0].Share, 1e-9)
	assert.Equal(t, domain.OrgRedCross, byDeliveries[1].Organization)

	byBeneficiaries, err := pipeline.ComputeOrganizationRanking(data, domain.MetricBeneficiaries)
	require.NoError(t, err)
	assert.Equal(t, int64(500), byBeneficiaries[0].Value)

	_, err = pipeline.ComputeOrganizationRanking(data, domain.Metric("gap_score"))
	assert.ErrorIs(t, err, domain.ErrUnknownMetric)
}

func TestComputeOrganizationRanking_TiesKeepFirstSeen(t *testing.T) {
	data := []domain.DeliveryRecord{
		{Date: asOf, Region: domain.RegionEast, Organization: domain.OrgUNWFP, Deliveries: 15},
		{Date: asOf, Region: domain.RegionEast, Organization: domain.OrgCareInternational, Deliveries: 15},
		{Date: asOf, Region: domain.RegionEast, Organization: domain.OrgLocalNGONetwork, Deliveries: 40},
	}

	got, err := pipeline.ComputeOrganizationRanking(data, domain.MetricDeliveries)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, domain.OrgLocalNGONetwork, got[0].Organization)
	assert.Equal(t, domain.OrgUNWFP, got[1].Organization)
	assert.Equal(t, domain.OrgCareInternational, got[2].Organization)
}

func TestComputeDailyTimeSeries(t *testing.T) {
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	data := []domain.DeliveryRecord{
		{Date: day.Add(9 * time.Hour), Region: domain.RegionWest, Organization: domain.OrgOxfam, Deliveries: 5},
		{Date: day.Add(17 * time.Hour), Region: domain.RegionEast, Organization: domain.OrgRedCross, Deliveries: 7},
	}

	got := pipeline.ComputeDailyTimeSeries(data)
	require.Len(t, got, 1)
	assert.Equal(t, int64(12), got[0].Deliveries)
	assert.True(t, got[0].Date.Equal(day))
}

func TestComputeDailyTimeSeries_Ascending(t *testing.T) {
	data := []domain.DeliveryRecord{
		{Date: asOf, Deliveries: 1},
		{Date: asOf.AddDate(0, 0, -2), Deliveries: 2},
		{Date: asOf.AddDate(0, 0, -1), Deliveries: 3},
		{Date: asOf.AddDate(0, 0, -2).Add(-time.Hour), Deliveries: 4},
	}

	got := pipeline.ComputeDailyTimeSeries(data)
	require.Len(t, got, 3)
	assert.Equal(t, []int64{6, 3, 1}, []int64{got[0].Deliveries, got[1].Deliveries, got[2].Deliveries})
	assert.True(t, got[0].Date.Before(got[1].Date))
	assert.True(t, got[1].Date.Before(got[2].Date))
}

func TestRecentRecords(t *testing.T) {
	data := []domain.DeliveryRecord{
		{Date: asOf.AddDate(0, 0, -3), Deliveries: 3},
		{Date: asOf, Deliveries: 0},
		{Date: asOf.AddDate(0, 0, -1), Deliveries: 1},
	}

	got := pipeline.RecentRecords(data, 2)
	require.Len(t, got, 2)
	assert.Equal(t, int64(0), got[0].Deliveries)
	assert.Equal(t, int64(1), got[1].Deliveries)

	// input untouched
	assert.Equal(t, int64(3), data[0].Deliveries)

	assert.Empty(t, pipeline.RecentRecords(data, 0))
}

func TestComputeDeltas(t *testing.T) {
	data := []domain.DeliveryRecord{
		{Date: asOf.AddDate(0, 0, -1), Deliveries: 30, Beneficiaries: 50, GapScore: 60},
		{Date: asOf.AddDate(0, 0, -60), Deliveries: 20, Beneficiaries: 100, GapScore: 40},
	}

	d := pipeline.ComputeDeltas(data, asOf, 90)
	require.False(t, d.Deliveries.NoData)
	assert.InDelta(t, 50.0, d.Deliveries.Value, 1e-9)
	assert.InDelta(t, -50.0, d.Beneficiaries.Value, 1e-9)
	assert.InDelta(t, 50.0, d.GapScore.Value, 1e-9)

	again := pipeline.ComputeDeltas(data, asOf, 90)
	assert.Equal(t, d, again)
}

func TestComputeDeltas_NoOlderHalf(t *testing.T) {
	data := []domain.DeliveryRecord{
		{Date: asOf, Deliveries: 30, Beneficiaries: 50, GapScore: 60},
	}

	d := pipeline.ComputeDeltas(data, asOf, 90)
	assert.True(t, d.Deliveries.NoData)
	assert.True(t, d.Beneficiaries.NoData)
	assert.True(t, d.GapScore.NoData)
}
