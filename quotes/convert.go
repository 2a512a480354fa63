package quotes

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/nzai/pubapi/constants"
	"github.com/shopspring/decimal"
)

// ToTable convert a weekly series to a date ascending table.
// Fields are mapped to Columns by position; the labels and their numbered
// prefixes are ignored, so every record must carry exactly len(Columns) fields.
func ToTable(series Series) (Table, error) {
	table := make(Table, 0, len(series))
	for _, entry := range series {
		quote, err := entry.toQuote()
		if err != nil {
			return nil, err
		}

		table = append(table, quote)
	}

	sort.Stable(table)

	return table, nil
}

func (e Entry) toQuote() (Quote, error) {
	date, err := time.Parse(constants.DatePattern, strings.TrimSpace(e.Date))
	if err != nil {
		return Quote{}, fmt.Errorf("%w: date %q: %v", constants.ErrConversion, e.Date, err)
	}

	if len(e.Record) != len(Columns) {
		return Quote{}, fmt.Errorf("%w: %s has %d fields, want %d", constants.ErrConversion, e.Date, len(e.Record), len(Columns))
	}

	values := make([]float64, len(Columns))
	for index, column := range Columns {
		values[index], err = toFloat(e.Record[index].Value)
		if err != nil {
			return Quote{}, fmt.Errorf("%w: %s %s (%s): %v", constants.ErrConversion, e.Date, column, e.Record[index].Label, err)
		}
	}

	return Quote{
		Date:   date,
		Open:   values[0],
		High:   values[1],
		Low:    values[2],
		Close:  values[3],
		Volume: values[4],
	}, nil
}

// toFloat accept a json number or a numeric json string
func toFloat(raw json.RawMessage) (float64, error) {
	text := strings.TrimSpace(string(raw))
	if strings.HasPrefix(text, `"`) {
		var s string
		err := sonic.Unmarshal(raw, &s)
		if err != nil {
			return 0, err
		}
		text = strings.TrimSpace(s)
	}

	value, err := decimal.NewFromString(text)
	if err != nil {
		return 0, err
	}

	f, _ := value.Float64()
	return f, nil
}
