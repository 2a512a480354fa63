package quotes

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/nzai/pubapi/constants"
)

// Table weekly quotes ordered by date
type Table []Quote

// Equal 是否相同
func (t Table) Equal(s Table) error {
	if len(t) != len(s) {
		return fmt.Errorf("table length %d is different from %d", len(t), len(s))
	}

	for index, quote := range t {
		err := quote.Equal(s[index])
		if err != nil {
			return fmt.Errorf("row %d: %w", index, err)
		}
	}

	return nil
}

func (t Table) Len() int {
	return len(t)
}
func (t Table) Swap(i, j int) {
	t[i], t[j] = t[j], t[i]
}
func (t Table) Less(i, j int) bool {
	return t[i].Date.Before(t[j].Date)
}

// Dates date index
func (t Table) Dates() []time.Time {
	dates := make([]time.Time, len(t))
	for index, quote := range t {
		dates[index] = quote.Date
	}

	return dates
}

// Closes close column
func (t Table) Closes() []float64 {
	closes := make([]float64, len(t))
	for index, quote := range t {
		closes[index] = quote.Close
	}

	return closes
}

// Print write one row per date
func (t Table) Print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(tw, "date\t%s\t\n", strings.Join(Columns, "\t"))
	for _, quote := range t {
		fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%.4f\t%.4f\t%.0f\t\n",
			quote.Date.Format(constants.DatePattern),
			quote.Open,
			quote.High,
			quote.Low,
			quote.Close,
			quote.Volume)
	}

	return tw.Flush()
}
