package sources_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nzai/pubapi/constants"
	"github.com/nzai/pubapi/quotes"
	"github.com/nzai/pubapi/sources"
	"github.com/nzai/pubapi/utils"
	"github.com/nzai/pubapi/utils/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const weeklyBody = `{
	"Meta Data": {"2. Symbol": "MSFT"},
	"Weekly Time Series": {
		"2021-02-14": {"1. open": "5.0", "2. high": "6.0", "3. low": "7.0", "4. close": "8.0", "5. volume": "100"},
		"2021-02-07": {"1. open": "1.0", "2. high": "2.0", "3. low": "3.0", "4. close": "4.0", "5. volume": "100"}
	}
}`

// compile time check
var _ sources.WeeklyDataSource = (*sources.AlphaVantage)(nil)

func TestAlphaVantage_Fetch(t *testing.T) {
	t.Parallel()

	// Arrange: a provider that checks the query
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "TIME_SERIES_WEEKLY", r.URL.Query().Get("function"))
		require.Equal(t, "MSFT", r.URL.Query().Get("symbol"))
		require.Equal(t, "secret", r.URL.Query().Get("apikey"))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, weeklyBody)
	}))
	defer server.Close()

	source := sources.NewAlphaVantage("secret", sources.WithBaseURL(server.URL))

	// Act
	raw, err := source.Fetch(context.Background(), "MSFT")

	// Assert: raw response carries the series untouched
	require.NoError(t, err)
	require.Contains(t, raw, "Meta Data")
	require.Contains(t, raw, constants.WeeklySeriesKey)

	series, err := quotes.Extract(raw)
	require.NoError(t, err)
	require.Len(t, series, 2)
	require.Equal(t, "2021-02-14", series[0].Date)
}

func TestAlphaVantage_Fetch_NonSuccessStatus(t *testing.T) {
	t.Parallel()

	for _, status := range []int{http.StatusBadRequest, http.StatusForbidden, http.StatusTooManyRequests, http.StatusInternalServerError} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", status)
		}))

		source := sources.NewAlphaVantage("secret", sources.WithBaseURL(server.URL))
		raw, err := source.Fetch(context.Background(), "MSFT")
		server.Close()

		require.ErrorIs(t, err, constants.ErrUpstream)
		require.Contains(t, err.Error(), http.StatusText(status))
		require.NotContains(t, err.Error(), "secret")
		require.Nil(t, raw)
	}
}

func TestAlphaVantage_Fetch_Timeout(t *testing.T) {
	t.Parallel()

	// Arrange: a provider slower than the client timeout
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	source := sources.NewAlphaVantage("secret",
		sources.WithBaseURL(server.URL),
		sources.WithHTTPClient(utils.NewHTTPClient(50*time.Millisecond)))

	// Act
	_, err := source.Fetch(context.Background(), "MSFT")

	// Assert
	require.ErrorIs(t, err, constants.ErrUpstream)
	require.NotContains(t, err.Error(), "secret")
}

func TestAlphaVantage_Fetch_TransportError(t *testing.T) {
	t.Parallel()

	// Arrange: a mock client failing like a deadline
	ctrl := gomock.NewController(t)
	httpClient := mocks.NewMockHTTPClient(ctrl)
	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			require.True(t, strings.HasPrefix(req.URL.String(), "http://quotes.test/query?"))
			return nil, context.DeadlineExceeded
		}).
		Times(1)

	source := sources.NewAlphaVantage("secret",
		sources.WithBaseURL("http://quotes.test/query"),
		sources.WithHTTPClient(httpClient))

	// Act
	raw, err := source.Fetch(context.Background(), "MSFT")

	// Assert: exactly one attempt, reported as upstream error
	require.ErrorIs(t, err, constants.ErrUpstream)
	require.Nil(t, raw)
}

func TestAlphaVantage_Fetch_InvalidBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html>maintenance</html>")
	}))
	defer server.Close()

	_, err := sources.NewAlphaVantage("secret", sources.WithBaseURL(server.URL)).Fetch(context.Background(), "MSFT")
	require.ErrorIs(t, err, constants.ErrUpstream)
}

func TestAlphaVantage_Fetch_EmptySymbol(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	httpClient := mocks.NewMockHTTPClient(ctrl)
	httpClient.EXPECT().Do(gomock.Any()).Times(0)

	_, err := sources.NewAlphaVantage("secret", sources.WithHTTPClient(httpClient)).Fetch(context.Background(), "  ")
	require.ErrorIs(t, err, constants.ErrConfig)
}
