package charts

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/nzai/pubapi/constants"
	"github.com/nzai/pubapi/indexes"
	"github.com/nzai/pubapi/quotes"
	"github.com/nzai/pubapi/utils"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	// XLabel x axis label
	XLabel = "Date"
	// YLabel y axis label
	YLabel = "Closing Price (USD)"
	// ImageFormat chart image format
	ImageFormat = "png"
)

// ErrEmptyTable nothing to plot
var ErrEmptyTable = errors.New("empty quote table")

// Title chart title for symbol
func Title(symbol string) string {
	return fmt.Sprintf("Weekly Quotes for %s", symbol)
}

// DefaultPath default chart file for symbol
func DefaultPath(symbol string) string {
	return fmt.Sprintf("%s_weekly.%s", symbol, ImageFormat)
}

// Renderer draw close against date
type Renderer struct {
	width  vg.Length
	height vg.Length
	path      string
	emaPeriod int
	opener    utils.Opener
}

// Option renderer option
type Option func(*Renderer)

// WithSize set chart size in inches
func WithSize(widthInch, heightInch float64) Option {
	return func(r *Renderer) {
		r.width = vg.Length(widthInch) * vg.Inch
		r.height = vg.Length(heightInch) * vg.Inch
	}
}

// WithPath set the file Show writes to, the default is DefaultPath(symbol)
func WithPath(path string) Option {
	return func(r *Renderer) {
		r.path = path
	}
}

// WithEMA overlay an exponential moving average of close, 0 disables it
func WithEMA(period int) Option {
	return func(r *Renderer) {
		r.emaPeriod = period
	}
}

// WithOpener set how Show displays the chart, nil only writes the file
func WithOpener(opener utils.Opener) Option {
	return func(r *Renderer) {
		r.opener = opener
	}
}

// NewRenderer create chart renderer
func NewRenderer(options ...Option) *Renderer {
	r := &Renderer{
		width:  10 * vg.Inch,
		height: 5 * vg.Inch,
		opener: utils.OpenViewer,
	}

	for _, option := range options {
		option(r)
	}

	return r
}

// Render build the line plot of table closes
func (r Renderer) Render(table quotes.Table, symbol string) (*plot.Plot, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("%w for %s", ErrEmptyTable, symbol)
	}

	p := plot.New()
	p.Title.Text = Title(symbol)
	p.X.Label.Text = XLabel
	p.Y.Label.Text = YLabel
	p.X.Tick.Marker = plot.TimeTicks{Format: constants.DatePattern}

	line, err := plotter.NewLine(points(table))
	if err != nil {
		zap.L().Error("create close line failed", zap.Error(err), zap.String("symbol", symbol))
		return nil, err
	}

	p.Add(plotter.NewGrid(), line)

	if r.emaPeriod > 0 {
		emaLine, err := r.emaLine(table)
		if err != nil {
			zap.L().Error("create ema line failed", zap.Error(err), zap.String("symbol", symbol), zap.Int("period", r.emaPeriod))
			return nil, err
		}

		p.Add(emaLine)
		p.Legend.Add("close", line)
		p.Legend.Add(fmt.Sprintf("EMA(%d)", r.emaPeriod), emaLine)
		p.Legend.Top = true
	}

	return p, nil
}

// Save write the plot to a png file
func (r Renderer) Save(p *plot.Plot, path string) error {
	err := p.Save(r.width, r.height, path)
	if err != nil {
		zap.L().Error("save chart failed", zap.Error(err), zap.String("path", path))
		return err
	}

	return nil
}

// WriteTo stream the plot as png
func (r Renderer) WriteTo(p *plot.Plot, w io.Writer) (int64, error) {
	writerTo, err := p.WriterTo(r.width, r.height, ImageFormat)
	if err != nil {
		return 0, err
	}

	return writerTo.WriteTo(w)
}

// Show render the table to a png file and open it, blocking until the viewer command returns.
// It returns the chart path.
func (r Renderer) Show(ctx context.Context, table quotes.Table, symbol string) (string, error) {
	p, err := r.Render(table, symbol)
	if err != nil {
		return "", err
	}

	path := r.path
	if path == "" {
		path = DefaultPath(symbol)
	}

	err = r.Save(p, path)
	if err != nil {
		return "", err
	}

	zap.L().Info("chart saved", zap.String("symbol", symbol), zap.String("path", path))

	if r.opener == nil {
		return path, nil
	}

	err = ctx.Err()
	if err != nil {
		return path, err
	}

	return path, r.opener(path)
}

func (r Renderer) emaLine(table quotes.Table) (*plotter.Line, error) {
	xys, err := emaPoints(table, r.emaPeriod)
	if err != nil {
		return nil, err
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	return line, nil
}

// points one point per row, x is unix seconds as plot.TimeTicks expects
func points(table quotes.Table) plotter.XYs {
	xys := make(plotter.XYs, len(table))
	for index, quote := range table {
		xys[index].X = float64(quote.Date.Unix())
		xys[index].Y = quote.Close
	}

	return xys
}

func emaPoints(table quotes.Table, period int) (plotter.XYs, error) {
	emas, err := indexes.NewEMAIndex(period).Calculate(table)
	if err != nil {
		return nil, err
	}

	xys := make(plotter.XYs, len(emas))
	for index, ema := range emas {
		xys[index].X = float64(ema.Date.Unix())
		xys[index].Y = ema.Value
	}

	return xys, nil
}
