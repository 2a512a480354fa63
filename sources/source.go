package sources

import (
	"context"

	"github.com/nzai/pubapi/quotes"
)

// WeeklyDataSource define weekly quote source
//
//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks WeeklyDataSource
type WeeklyDataSource interface {
	// Fetch raw weekly quote response of symbol
	Fetch(ctx context.Context, symbol string) (quotes.RawResponse, error)
}
