package quotes

import (
	"testing"

	"github.com/nzai/pubapi/constants"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	series, err := Extract(mustRaw(t, weeklyResponse))
	require.NoError(t, err)
	require.Len(t, series, 2)
	require.Equal(t, "2021-02-07", series[0].Date)
	require.Len(t, series[0].Record, 5)
	require.Equal(t, "1. open", series[0].Record[0].Label)
}

func TestExtract_MissingKey(t *testing.T) {
	series, err := Extract(mustRaw(t, `{"Meta Data": {"2. Symbol": "MSFT"}}`))
	require.ErrorIs(t, err, constants.ErrMissingField)
	require.Contains(t, err.Error(), constants.WeeklySeriesKey)
	require.Nil(t, series)
}

func TestExtract_ProviderMessage(t *testing.T) {
	raw := mustRaw(t, `{"Note": "Thank you for using Alpha Vantage! Our standard API call frequency is 5 calls per minute."}`)

	_, err := Extract(raw)
	require.ErrorIs(t, err, constants.ErrMissingField)
	require.Contains(t, err.Error(), "5 calls per minute")
}

func TestExtract_EmptyResponse(t *testing.T) {
	_, err := Extract(RawResponse{})
	require.ErrorIs(t, err, constants.ErrMissingField)
}

func TestExtract_MalformedSeries(t *testing.T) {
	_, err := Extract(mustRaw(t, `{"Weekly Time Series": "oops"}`))
	require.ErrorIs(t, err, constants.ErrConversion)
}
