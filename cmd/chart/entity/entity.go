package entity

import (
	"github.com/nzai/pubapi/constants"
	"github.com/nzai/pubapi/indexes"
	"github.com/nzai/pubapi/quotes"
)

// ChartData weekly quotes of one symbol
type ChartData struct {
	Symbol string  `json:"symbol"`
	Quotes *Quotes `json:"quotes"`
}

// Quotes column oriented quotes, ready for chart libraries
type Quotes struct {
	Timestamp []int64   `json:"timestamp"`
	Date      []string  `json:"date"`
	Open      []float64 `json:"open"`
	Close     []float64 `json:"close"`
	High      []float64 `json:"high"`
	Low       []float64 `json:"low"`
	Volume    []float64 `json:"volume"`
	EMA       []float64 `json:"ema,omitempty"`
}

// NewChartData convert table to columns, keeping the table order
func NewChartData(symbol string, table quotes.Table) ChartData {
	count := len(table)

	q := &Quotes{
		Timestamp: make([]int64, count),
		Date:      make([]string, count),
		Open:      make([]float64, count),
		Close:     make([]float64, count),
		High:      make([]float64, count),
		Low:       make([]float64, count),
		Volume:    make([]float64, count),
	}

	for index, quote := range table {
		q.Timestamp[index] = quote.Date.Unix()
		q.Date[index] = quote.Date.Format(constants.DatePattern)
		q.Open[index] = quote.Open
		q.Close[index] = quote.Close
		q.High[index] = quote.High
		q.Low[index] = quote.Low
		q.Volume[index] = quote.Volume
	}

	return ChartData{Symbol: symbol, Quotes: q}
}

// SetEMA add the ema column, emas follow the quote order
func (q *Quotes) SetEMA(emas []indexes.EMA) {
	q.EMA = make([]float64, len(emas))
	for index, ema := range emas {
		q.EMA[index] = ema.Value
	}
}
