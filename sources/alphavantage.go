package sources

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/nzai/pubapi/constants"
	"github.com/nzai/pubapi/quotes"
	"github.com/nzai/pubapi/utils"
	"go.uber.org/zap"
)

// AlphaVantage alpha vantage weekly quote source
type AlphaVantage struct {
	// baseURL is the query endpoint.
	baseURL string
	// apiKey is sent as the apikey query parameter.
	apiKey string
	// httpClient is the HTTP client.
	httpClient utils.HTTPClient
}

// AlphaVantageOption is a configuration option for the alpha vantage source.
type AlphaVantageOption func(*AlphaVantage)

// WithBaseURL sets the query endpoint.
func WithBaseURL(baseURL string) AlphaVantageOption {
	return func(s *AlphaVantage) {
		s.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(httpClient utils.HTTPClient) AlphaVantageOption {
	return func(s *AlphaVantage) {
		s.httpClient = httpClient
	}
}

// NewAlphaVantage create alpha vantage source
func NewAlphaVantage(apiKey string, options ...AlphaVantageOption) *AlphaVantage {
	source := &AlphaVantage{
		baseURL:    constants.AlphaVantageURL,
		apiKey:     apiKey,
		httpClient: utils.NewHTTPClient(constants.RequestTimeout),
	}

	for _, option := range options {
		option(source)
	}

	return source
}

// Fetch query TIME_SERIES_WEEKLY of symbol, one request, no retry
func (s AlphaVantage) Fetch(ctx context.Context, symbol string) (quotes.RawResponse, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return nil, fmt.Errorf("%w: empty symbol", constants.ErrConfig)
	}

	u, err := url.Parse(s.baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: alpha vantage endpoint %q: %v", constants.ErrConfig, s.baseURL, err)
	}

	query := u.Query()
	query.Set("function", constants.AlphaVantageWeeklyFunction)
	query.Set("symbol", symbol)
	query.Set("apikey", s.apiKey)
	u.RawQuery = query.Encode()

	raw, err := utils.GetJSON[quotes.RawResponse](ctx, s.httpClient, u.String())
	if err != nil {
		zap.L().Error("fetch weekly quotes failed", zap.Error(err), zap.String("symbol", symbol))
		return nil, err
	}

	zap.L().Debug("fetch weekly quotes success", zap.String("symbol", symbol), zap.Int("keys", len(raw)))

	return raw, nil
}
