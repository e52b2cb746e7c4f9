package pipeline_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aid-gap-analyzer/internal/dashboard/core/domain"
	"aid-gap-analyzer/internal/dashboard/core/pipeline"
)

func TestGenerateDataset_Reproducible(t *testing.T) {
	a := pipeline.GenerateDataset(pipeline.DefaultSeed, pipeline.DefaultRecordCount, pipeline.DefaultWindowDays, asOf)
	b := pipeline.GenerateDataset(pipeline.DefaultSeed, pipeline.DefaultRecordCount, pipeline.DefaultWindowDays, asOf)

	require.Len(t, a.Records, pipeline.DefaultRecordCount)
	assert.Equal(t, a, b)
}

func TestGenerateDataset_OnlyDatesFollowNow(t *testing.T) {
	later := asOf.Add(36 * time.Hour)

	a := pipeline.GenerateDataset(pipeline.DefaultSeed, 200, pipeline.DefaultWindowDays, asOf)
	b := pipeline.GenerateDataset(pipeline.DefaultSeed, 200, pipeline.DefaultWindowDays, later)

	for i := range a.Records {
		ra, rb := a.Records[i], b.Records[i]
		assert.Equal(t, asOf.Sub(ra.Date), later.Sub(rb.Date), "offset of record %d", i)

		ra.Date, rb.Date = time.Time{}, time.Time{}
		assert.Equal(t, ra, rb)
	}
}

func TestGenerateDataset_Ranges(t *testing.T) {
	ds := pipeline.GenerateDataset(pipeline.DefaultSeed, pipeline.DefaultRecordCount, pipeline.DefaultWindowDays, asOf)

	earliest := asOf.AddDate(0, 0, -(pipeline.DefaultWindowDays - 1))
	for _, r := range ds.Records {
		assert.True(t, domain.IsKnownRegion(r.Region), r.Region)
		assert.True(t, domain.IsKnownOrganization(r.Organization), r.Organization)
		assert.GreaterOrEqual(t, r.Deliveries, int64(10))
		assert.Less(t, r.Deliveries, int64(200))
		assert.GreaterOrEqual(t, r.Beneficiaries, int64(50))
		assert.Less(t, r.Beneficiaries, int64(1000))
		assert.GreaterOrEqual(t, r.GapScore, 0.0)
		assert.Less(t, r.GapScore, 100.0)
		assert.False(t, r.Date.After(asOf))
		assert.False(t, r.Date.Before(earliest))
	}
}

func TestGenerateDataset_BaseRegionalSummary(t *testing.T) {
	ds := pipeline.GenerateDataset(3, 250, pipeline.DefaultWindowDays, asOf)

	assert.Equal(t, pipeline.ComputeRegionalSummary(ds.Records), ds.BaseRegional)

	var total int64
	for _, s := range ds.BaseRegional {
		total += s.TotalDeliveries
	}
	assert.Equal(t, pipeline.ComputeMetrics(ds.Records).TotalDeliveries, total)
}

func TestGenerateDataset_SeedMatters(t *testing.T) {
	a := pipeline.GenerateDataset(1, 50, pipeline.DefaultWindowDays, asOf)
	b := pipeline.GenerateDataset(2, 50, pipeline.DefaultWindowDays, asOf)
	assert.NotEqual(t, a.Records, b.Records)
}

func TestGenerateDataset_NonPositiveCount(t *testing.T) {
	ds := pipeline.GenerateDataset(pipeline.DefaultSeed, -5, pipeline.DefaultWindowDays, asOf)
	assert.Empty(t, ds.Records)
	assert.Empty(t, ds.BaseRegional)
}

func TestBuildDashboard(t *testing.T) {
	ds := pipeline.GenerateDataset(pipeline.DefaultSeed, pipeline.DefaultRecordCount, pipeline.DefaultWindowDays, asOf)

	d, err := pipeline.BuildDashboard(ds, domain.FullSelection(), pipeline.Options{})
	require.NoError(t, err)

	assert.Equal(t, pipeline.DefaultRecordCount, d.Metrics.RecordCount)
	assert.Equal(t, 5, d.Metrics.ActiveOrganizations)
	assert.False(t, d.Metrics.MeanGapScore.NoData)
	assert.Len(t, d.Recent, pipeline.DefaultRecentLimit)
	assert.Equal(t, ds.BaseRegional, d.Regional)
	assert.Len(t, d.GapSeverity, 5)
	assert.Equal(t, asOf, d.AsOf)

	var daily int64
	for _, p := range d.Daily {
		daily += p.Deliveries
	}
	assert.Equal(t, d.Metrics.TotalDeliveries, daily)
}

func TestBuildDashboard_EmptySelection(t *testing.T) {
	ds := pipeline.GenerateDataset(pipeline.DefaultSeed, 100, pipeline.DefaultWindowDays, asOf)

	d, err := pipeline.BuildDashboard(ds, domain.Selection{Regions: domain.Regions()}, pipeline.Options{RecentLimit: 3})
	require.NoError(t, err)

	assert.Zero(t, d.Metrics.RecordCount)
	assert.Zero(t, d.Metrics.ActiveOrganizations)
	assert.True(t, d.Metrics.MeanGapScore.NoData)
	assert.True(t, d.Deltas.Deliveries.NoData)
	assert.Empty(t, d.Regional)
	assert.Empty(t, d.Daily)
	assert.Empty(t, d.Recent)
}

func TestBuildDashboard_InvalidSelection(t *testing.T) {
	ds := pipeline.GenerateDataset(pipeline.DefaultSeed, 10, pipeline.DefaultWindowDays, asOf)

	_, err := pipeline.BuildDashboard(ds, domain.Selection{Regions: []string{"Nowhere"}}, pipeline.Options{})
	assert.ErrorIs(t, err, domain.ErrInvalidSelection)
}
