package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"aid-gap-analyzer/internal/dashboard/core/domain"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

const (
	dateLayout = "2006-01-02"
	dailyTail  = 14
)

func renderOptions(w io.Writer) {
	fmt.Fprintf(w, "Regions:       %s\n", strings.Join(domain.Regions(), ", "))
	fmt.Fprintf(w, "Organizations: %s\n", strings.Join(domain.Organizations(), ", "))
}

func renderReport(w io.Writer, d *domain.Dashboard, metric domain.Metric) {
	fmt.Fprintf(w, "As of %s\n", d.AsOf.Format(dateLayout))
	fmt.Fprintf(w, "Regions:       %s\n", joinOrNone(d.Selection.Regions))
	fmt.Fprintf(w, "Organizations: %s\n\n", joinOrNone(d.Selection.Organizations))

	m := d.Metrics
	kpi := newTable(w, []string{"Metric", "Value", "Change"})
	kpi.Append([]string{"Records", humanize.Comma(int64(m.RecordCount)), ""})
	kpi.Append([]string{"Deliveries", humanize.Comma(m.TotalDeliveries), scoreLabel(d.Deltas.Deliveries, "%+.1f%%")})
	kpi.Append([]string{"Beneficiaries", humanize.Comma(m.TotalBeneficiaries), scoreLabel(d.Deltas.Beneficiaries, "%+.1f%%")})
	kpi.Append([]string{"Mean gap score", scoreLabel(m.MeanGapScore, "%.1f"), scoreLabel(d.Deltas.GapScore, "%+.1f%%")})
	kpi.Append([]string{"Active organizations", strconv.Itoa(m.ActiveOrganizations), ""})
	kpi.Render()

	if m.RecordCount == 0 {
		fmt.Fprintln(w, "\nNo records match the selection.")
		return
	}

	fmt.Fprintln(w, "\nRegional summary")
	renderRegional(w, d.Regional)

	fmt.Fprintln(w, "\nGap severity")
	renderRegional(w, d.GapSeverity)

	shares := d.OrganizationsByDeliveries
	if metric == domain.MetricBeneficiaries {
		shares = d.OrganizationsByBeneficiaries
	}
	fmt.Fprintf(w, "\nOrganizations by %s\n", metric)
	ranking := newTable(w, []string{"#", "Organization", "Value", "Share"})
	for i, s := range shares {
		ranking.Append([]string{
			strconv.Itoa(i + 1),
			s.Organization,
			humanize.Comma(s.Value),
			fmt.Sprintf("%.1f%%", s.Share*100),
		})
	}
	ranking.Render()

	daily := d.Daily
	if len(daily) > dailyTail {
		daily = daily[len(daily)-dailyTail:]
	}
	fmt.Fprintf(w, "\nDaily deliveries (last %d days with records)\n", len(daily))
	trend := newTable(w, []string{"Date", "Deliveries"})
	for _, p := range daily {
		trend.Append([]string{p.Date.Format(dateLayout), humanize.Comma(p.Deliveries)})
	}
	trend.Render()

	fmt.Fprintln(w, "\nRecent deliveries")
	recent := newTable(w, []string{"Date", "Region", "Organization", "Deliveries", "Beneficiaries", "Gap"})
	for _, r := range d.Recent {
		recent.Append([]string{
			r.Date.Format(dateLayout),
			r.Region,
			r.Organization,
			humanize.Comma(r.Deliveries),
			humanize.Comma(r.Beneficiaries),
			fmt.Sprintf("%.1f", r.GapScore),
		})
	}
	recent.Render()
}

func renderRegional(w io.Writer, summaries []domain.RegionalSummary) {
	t := newTable(w, []string{"Region", "Records", "Deliveries", "Beneficiaries", "Mean gap"})
	for _, s := range summaries {
		t.Append([]string{
			s.Region,
			strconv.Itoa(s.RecordCount),
			humanize.Comma(s.TotalDeliveries),
			humanize.Comma(s.TotalBeneficiaries),
			fmt.Sprintf("%.1f", s.MeanGapScore),
		})
	}
	t.Render()
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetHeader(header)
	t.SetAutoFormatHeaders(false)
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	return t
}

func scoreLabel(s domain.Score, format string) string {
	if s.NoData {
		return "no data"
	}
	return fmt.Sprintf(format, s.Value)
}

func joinOrNone(labels []string) string {
	if len(labels) == 0 {
		return "(none)"
	}
	return strings.Join(labels, ", ")
}
