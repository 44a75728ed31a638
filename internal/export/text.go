package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"runway-engine/internal/model"
)

// Mode controls how the runway table is rendered.
type Mode int

const (
	ASCII    Mode = iota // Fixed-width terminal table
	Markdown             // GitHub-flavoured Markdown table
)

// Currency formats an amount in whole dollars with thousands separators, e.g. $4,300,000.
func Currency(v float64) string {
	r := math.Round(v)
	if math.Abs(r) >= math.MaxInt64 || math.IsNaN(r) {
		return "$" + humanize.Commaf(r)
	}
	return "$" + humanize.Comma(int64(r))
}

// Percent formats a fraction as a percentage with two decimals, e.g. 30.07%.
func Percent(fraction float64) string {
	return fmt.Sprintf("%.2f%%", fraction*100)
}

// Summary renders the headline figures of a projection, one per line.
func Summary(p *model.Projection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Adjusted Raise Amount: %s\n", Currency(p.Dilution.AdjustedRaise))
	fmt.Fprintf(&b, "Post-Money Valuation: %s\n", Currency(p.Dilution.PostMoneyValuation))
	fmt.Fprintf(&b, "Ownership Sold: %s\n", Percent(p.Dilution.OwnershipSoldFraction))
	fmt.Fprintf(&b, "Capital Runs Out In: Month %d\n", p.Summary.ExhaustionMonth)
	fmt.Fprintf(&b, "Health Score: %.1f\n", p.Summary.HealthScore)
	fmt.Fprintf(&b, "Status: %s\n", p.Summary.Status)
	return b.String()
}

// Table renders the monthly runway series.
func Table(rows []model.RunwayRow, m Mode) string {
	w := table.NewWriter()
	if m == ASCII {
		w.SetStyle(table.StyleLight)
	}

	header := make(table.Row, len(CSVHeader))
	for i, h := range CSVHeader {
		header[i] = h
	}
	w.AppendHeader(header)

	for _, r := range rows {
		w.AppendRow(table.Row{
			r.Month,
			Currency(r.Burn),
			Currency(r.Revenue),
			Currency(r.NetBurn),
			Currency(r.CumulativeNetBurn),
		})
	}

	cfgs := make([]table.ColumnConfig, len(CSVHeader))
	for i := range cfgs {
		cfgs[i] = table.ColumnConfig{Number: i + 1, Align: text.AlignRight}
	}
	w.SetColumnConfigs(cfgs)

	if m == Markdown {
		return w.RenderMarkdown()
	}
	return w.Render()
}

// Report is the summary followed by the runway table.
func Report(p *model.Projection, m Mode) string {
	return Summary(p) + "\n" + Table(p.Rows, m) + "\n"
}
