package quotes

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/nzai/pubapi/constants"
)

// RawResponse top-level object returned by the quote provider
type RawResponse map[string]json.RawMessage

// Field provider labeled value, eg: "1. open": "123.4500"
type Field struct {
	Label string
	Value json.RawMessage
}

// Record fields of one date, in provider order
type Record []Field

// Entry one date of a weekly series
type Entry struct {
	Date   string
	Record Record
}

// Series date keyed weekly quotes, in provider order
type Series []Entry

// UnmarshalJSON decode date keyed object, keeping key order of dates and fields.
// Field order matters because columns are mapped by position, not by label.
func (s *Series) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))

	series := make(Series, 0, 64)
	err := decodeObject(decoder, func(date string) error {
		record := make(Record, 0, len(Columns))
		err := decodeObject(decoder, func(label string) error {
			var value json.RawMessage
			err := decoder.Decode(&value)
			if err != nil {
				return err
			}

			record = append(record, Field{Label: label, Value: value})
			return nil
		})
		if err != nil {
			return fmt.Errorf("date %s: %w", date, err)
		}

		series = append(series, Entry{Date: date, Record: record})
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: decode weekly series: %v", constants.ErrConversion, err)
	}

	*s = series
	return nil
}

// decodeObject walk an object, calling fn after each key so fn can consume the value
func decodeObject(decoder *json.Decoder, fn func(key string) error) error {
	token, err := decoder.Token()
	if err != nil {
		return err
	}

	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expect object, got %v", token)
	}

	for decoder.More() {
		token, err = decoder.Token()
		if err != nil {
			return err
		}

		key, ok := token.(string)
		if !ok {
			return fmt.Errorf("expect object key, got %v", token)
		}

		err = fn(key)
		if err != nil {
			return err
		}
	}

	// closing brace
	_, err = decoder.Token()
	return err
}
