package indexes

import (
	"fmt"
	"math"
	"time"

	"github.com/nzai/pubapi/quotes"
)

// EMA exponential moving average of close at Date
type EMA struct {
	Date  time.Time
	Value float64
}

// EMAIndex exponential moving average over Period weeks
type EMAIndex struct {
	Period int
}

// NewEMAIndex create ema index
func NewEMAIndex(period int) *EMAIndex {
	return &EMAIndex{Period: period}
}

// Calculate seed with the first close, then weight each close by 2/(Period+1).
// Values are rounded to cents.
func (s *EMAIndex) Calculate(table quotes.Table) ([]EMA, error) {
	if s.Period <= 0 {
		return nil, fmt.Errorf("invalid ema period: %d", s.Period)
	}

	emas := make([]EMA, 0, len(table))
	var value float64
	for index, q := range table {
		if index == 0 {
			value = q.Close
		} else {
			value = (q.Close*2 + float64(s.Period-1)*emas[index-1].Value) / float64(s.Period+1)
			// match round
			value = math.Round(value*100) / 100
		}

		emas = append(emas, EMA{Date: q.Date, Value: value})
	}

	return emas, nil
}
