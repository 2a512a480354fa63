package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/nzai/pubapi/charts"
	"github.com/nzai/pubapi/cmd/chart/api"
	"github.com/nzai/pubapi/cmd/chart/model"
	"github.com/nzai/pubapi/config"
	"github.com/nzai/pubapi/constants"
	"github.com/nzai/pubapi/sources"
	"github.com/nzai/pubapi/utils"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	undo := zap.ReplaceGlobals(logger)
	defer undo()

	var address, configPath string
	app := &cli.Command{
		Name:  "chart",
		Usage: "serve weekly quotes and charts over http",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "specify listen `address`",
				Value:       constants.DefaultChartAddress,
				Destination: &address,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "specify toml or yaml `config file`",
				Destination: &configPath,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			server, err := newServer(configPath)
			if err != nil {
				return err
			}

			go func() {
				err := server.Run(address)
				if err != nil {
					zap.L().Fatal("server stopped", zap.Error(err))
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit

			return nil
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		zap.L().Fatal(err.Error())
	}
}

func newServer(configPath string) (*api.Server, error) {
	cfg, err := config.Parse(configPath)
	if err != nil {
		return nil, err
	}

	err = utils.ReplaceLogger(cfg.Log)
	if err != nil {
		return nil, err
	}

	apiKey, err := cfg.APIKey()
	if err != nil {
		return nil, err
	}

	source := sources.NewAlphaVantage(apiKey,
		sources.WithBaseURL(cfg.AlphaVantage.Endpoint),
		sources.WithHTTPClient(utils.NewHTTPClient(cfg.Timeout())))
	return api.NewServer(model.NewWeeklyModel(source, charts.WithSize(cfg.Chart.WidthInch, cfg.Chart.HeightInch))), nil
}
