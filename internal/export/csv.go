package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"runway-engine/internal/model"
)

// CSVHeader is the header row of the runway export.
var CSVHeader = []string{"Month", "Burn ($)", "Revenue ($)", "Net Burn ($)", "Cumulative Burn ($)"}

// WriteCSV writes the header and one record per month. Amounts are written as plain
// decimal numbers, unrounded and without thousands separators. A NaN or infinite
// amount stops the export with an error.
func WriteCSV(w io.Writer, rows []model.RunwayRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range rows {
		record := []string{strconv.Itoa(r.Month)}
		for _, v := range []float64{r.Burn, r.Revenue, r.NetBurn, r.CumulativeNetBurn} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("write csv month %d: non-finite amount %v", r.Month, v)
			}
			record = append(record, plainDecimal(v))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv month %d: %w", r.Month, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func plainDecimal(v float64) string {
	return decimal.NewFromFloat(v).String()
}
