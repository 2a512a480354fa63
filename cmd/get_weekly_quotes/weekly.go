package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/nzai/pubapi/charts"
	"github.com/nzai/pubapi/config"
	"github.com/nzai/pubapi/exports"
	"github.com/nzai/pubapi/pipelines"
	"github.com/nzai/pubapi/sources"
	"github.com/nzai/pubapi/utils"
	"github.com/urfave/cli/v3"
)

const name = "get_weekly_quotes"

// SourceFactory create the weekly data source bound to apiKey
type SourceFactory func(apiKey string, c *config.Config) sources.WeeklyDataSource

// WeeklyQuotes retrieve, print and plot weekly quotes of one symbol
type WeeklyQuotes struct {
	configPath string
	chartPath  string
	xlsxPath   string
	noShow     bool
	emaPeriod  int

	stdout    io.Writer
	newSource SourceFactory
	opener    utils.Opener
}

// NewWeeklyQuotes create command writing the table to stdout
func NewWeeklyQuotes(stdout io.Writer) *WeeklyQuotes {
	return &WeeklyQuotes{
		stdout:    stdout,
		newSource: newAlphaVantage,
		opener:    utils.OpenViewer,
	}
}

func newAlphaVantage(apiKey string, c *config.Config) sources.WeeklyDataSource {
	return sources.NewAlphaVantage(apiKey,
		sources.WithBaseURL(c.AlphaVantage.Endpoint),
		sources.WithHTTPClient(utils.NewHTTPClient(c.Timeout())))
}

func (w *WeeklyQuotes) Command() *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     "retrieve and plot weekly quotes for a stock",
		ArgsUsage: "SYMBOL",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "specify toml or yaml `config file`",
				Destination: &w.configPath,
			},
			&cli.StringFlag{
				Name:        "chart",
				Usage:       "specify chart `png path`, default SYMBOL_weekly.png",
				Destination: &w.chartPath,
			},
			&cli.StringFlag{
				Name:        "xlsx",
				Usage:       "also export the table to `xlsx path`",
				Destination: &w.xlsxPath,
			},
			&cli.IntFlag{
				Name:  "ema",
				Usage: "overlay an exponential moving average over `weeks`",
			},
			&cli.BoolFlag{
				Name:        "no-show",
				Usage:       "write the chart without opening a viewer",
				Destination: &w.noShow,
			},
		},
		Commands: []*cli.Command{
			versionCommand(w.stdout),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				fmt.Fprintf(w.stdout, "Usage: %s SYMBOL\n", name)
				return nil
			}

			w.emaPeriod = int(c.Int("ema"))
			return w.run(ctx, strings.TrimSpace(c.Args().First()))
		},
	}
}

func (w *WeeklyQuotes) run(ctx context.Context, symbol string) error {
	cfg, err := config.Parse(w.configPath)
	if err != nil {
		return err
	}

	err = utils.ReplaceLogger(cfg.Log)
	if err != nil {
		return err
	}

	apiKey, err := cfg.APIKey()
	if err != nil {
		return err
	}

	table, err := pipelines.Weekly(ctx, w.newSource(apiKey, cfg), symbol)
	if err != nil {
		return err
	}

	err = table.Print(w.stdout)
	if err != nil {
		return err
	}

	if w.xlsxPath != "" {
		err = exports.WriteXLSX(table, symbol, w.xlsxPath)
		if err != nil {
			return err
		}
	}

	opener := w.opener
	if w.noShow {
		opener = nil
	}

	renderer := charts.NewRenderer(
		charts.WithSize(cfg.Chart.WidthInch, cfg.Chart.HeightInch),
		charts.WithPath(w.chartPath),
		charts.WithEMA(w.emaPeriod),
		charts.WithOpener(opener))

	_, err = renderer.Show(ctx, table, symbol)
	return err
}

func versionCommand(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:    "version",
		Aliases: []string{"v"},
		Action: func(ctx context.Context, c *cli.Command) error {
			fmt.Fprintln(stdout, "v1.0.0")
			return nil
		},
	}
}
