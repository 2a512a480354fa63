package quotes

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/nzai/pubapi/constants"
)

// alpha vantage answers 200 with one of these instead of data on bad symbol, bad key or rate limit
var providerMessageKeys = []string{"Error Message", "Note", "Information"}

// Extract pull the weekly series out of a raw provider response
func Extract(raw RawResponse) (Series, error) {
	data, found := raw[constants.WeeklySeriesKey]
	if !found {
		err := fmt.Errorf("%w: %q", constants.ErrMissingField, constants.WeeklySeriesKey)
		if message := raw.providerMessage(); message != "" {
			err = fmt.Errorf("%w: provider says %q", err, message)
		}

		return nil, err
	}

	var series Series
	err := series.UnmarshalJSON(data)
	if err != nil {
		return nil, err
	}

	return series, nil
}

func (r RawResponse) providerMessage() string {
	for _, key := range providerMessageKeys {
		data, found := r[key]
		if !found {
			continue
		}

		var message string
		if err := sonic.Unmarshal(data, &message); err == nil && message != "" {
			return message
		}
	}

	return ""
}
