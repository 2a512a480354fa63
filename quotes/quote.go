package quotes

import (
	"fmt"
	"time"
)

// Columns table column order
var Columns = []string{"open", "high", "low", "close", "volume"}

// Quote weekly quote of one date
type Quote struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// Values return values in Columns order
func (q Quote) Values() []float64 {
	return []float64{q.Open, q.High, q.Low, q.Close, q.Volume}
}

// Equal 是否相同
func (q Quote) Equal(s Quote) error {
	if !q.Date.Equal(s.Date) {
		return fmt.Errorf("quote date %s is different from %s", q.Date.Format("2006-01-02"), s.Date.Format("2006-01-02"))
	}

	values, others := q.Values(), s.Values()
	for index, column := range Columns {
		if values[index] != others[index] {
			return fmt.Errorf("quote %s %.4f is different from %.4f", column, values[index], others[index])
		}
	}

	return nil
}
