package pipelines

import (
	"context"

	"github.com/nzai/pubapi/quotes"
	"github.com/nzai/pubapi/sources"
	"go.uber.org/zap"
)

// Weekly fetch the weekly series of symbol from source and convert it to a date ascending table.
// Any stage failing returns its error and no table.
func Weekly(ctx context.Context, source sources.WeeklyDataSource, symbol string) (quotes.Table, error) {
	raw, err := source.Fetch(ctx, symbol)
	if err != nil {
		zap.L().Error("fetch weekly quotes failed", zap.Error(err), zap.String("symbol", symbol))
		return nil, err
	}

	series, err := quotes.Extract(raw)
	if err != nil {
		zap.L().Error("extract weekly series failed", zap.Error(err), zap.String("symbol", symbol))
		return nil, err
	}

	table, err := quotes.ToTable(series)
	if err != nil {
		zap.L().Error("convert weekly series failed", zap.Error(err), zap.String("symbol", symbol))
		return nil, err
	}

	zap.L().Debug("weekly quotes ready", zap.String("symbol", symbol), zap.Int("rows", len(table)))

	return table, nil
}
