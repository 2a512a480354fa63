package model

import (
	"bytes"
	"context"

	"github.com/nzai/pubapi/charts"
	"github.com/nzai/pubapi/cmd/chart/entity"
	"github.com/nzai/pubapi/indexes"
	"github.com/nzai/pubapi/pipelines"
	"github.com/nzai/pubapi/quotes"
	"github.com/nzai/pubapi/schedulers"
	"github.com/nzai/pubapi/sources"
	"go.uber.org/zap"
)

// WeeklyModel run the weekly pipeline for api handlers, one upstream fetch at a time
type WeeklyModel struct {
	source  sources.WeeklyDataSource
	limiter *schedulers.Limiter
	options []charts.Option
}

// NewWeeklyModel create weekly model, options apply to every rendered chart
func NewWeeklyModel(source sources.WeeklyDataSource, options ...charts.Option) *WeeklyModel {
	return &WeeklyModel{
		source:  source,
		limiter: schedulers.NewLimiter(1),
		options: options,
	}
}

func (m WeeklyModel) weekly(ctx context.Context, symbol string) (quotes.Table, error) {
	err := m.limiter.Acquire(ctx)
	if err != nil {
		zap.L().Warn("wait for upstream slot failed", zap.Error(err), zap.String("symbol", symbol))
		return nil, err
	}
	defer m.limiter.Release()

	return pipelines.Weekly(ctx, m.source, symbol)
}

// ChartData get the weekly quotes of symbol, with an ema column when emaPeriod > 0
func (m WeeklyModel) ChartData(ctx context.Context, symbol string, emaPeriod int) (*entity.ChartData, error) {
	table, err := m.weekly(ctx, symbol)
	if err != nil {
		return nil, err
	}

	data := entity.NewChartData(symbol, table)
	if emaPeriod > 0 {
		emas, err := indexes.NewEMAIndex(emaPeriod).Calculate(table)
		if err != nil {
			return nil, err
		}
		data.Quotes.SetEMA(emas)
	}

	return &data, nil
}

// ChartPNG get the weekly close chart of symbol as png
func (m WeeklyModel) ChartPNG(ctx context.Context, symbol string, emaPeriod int) ([]byte, error) {
	table, err := m.weekly(ctx, symbol)
	if err != nil {
		return nil, err
	}

	options := append([]charts.Option{}, m.options...)
	renderer := charts.NewRenderer(append(options, charts.WithEMA(emaPeriod), charts.WithOpener(nil))...)
	p, err := renderer.Render(table, symbol)
	if err != nil {
		return nil, err
	}

	buffer := new(bytes.Buffer)
	_, err = renderer.WriteTo(p, buffer)
	if err != nil {
		zap.L().Error("encode chart failed", zap.Error(err), zap.String("symbol", symbol))
		return nil, err
	}

	return buffer.Bytes(), nil
}
