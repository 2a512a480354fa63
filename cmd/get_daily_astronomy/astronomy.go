package main

import (
	"context"
	"fmt"
	"io"

	"github.com/nzai/pubapi/astronomy"
	"github.com/nzai/pubapi/config"
	"github.com/nzai/pubapi/utils"
	"github.com/urfave/cli/v3"
)

// DailyAstronomy print and show the astronomy picture of the day
type DailyAstronomy struct {
	configPath string
	dir        string
	noShow     bool

	stdout  io.Writer
	options []astronomy.Option
}

// NewDailyAstronomy create command writing text to stdout
func NewDailyAstronomy(stdout io.Writer, options ...astronomy.Option) *DailyAstronomy {
	return &DailyAstronomy{stdout: stdout, options: options}
}

func (d *DailyAstronomy) Command() *cli.Command {
	return &cli.Command{
		Name:  "get_daily_astronomy",
		Usage: "read the astronomy picture of the day",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "specify toml or yaml `config file`",
				Destination: &d.configPath,
			},
			&cli.StringFlag{
				Name:        "dir",
				Usage:       "specify download `directory`, default [apod] output_dir",
				Destination: &d.dir,
			},
			&cli.BoolFlag{
				Name:        "no-show",
				Usage:       "download the image without opening a viewer",
				Destination: &d.noShow,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return d.run(ctx)
		},
	}
}

func (d *DailyAstronomy) run(ctx context.Context) error {
	cfg, err := config.Parse(d.configPath)
	if err != nil {
		return err
	}

	err = utils.ReplaceLogger(cfg.Log)
	if err != nil {
		return err
	}

	dir := d.dir
	if dir == "" {
		dir = cfg.Apod.OutputDir
	}

	options := []astronomy.Option{
		astronomy.WithBaseURL(cfg.Apod.Endpoint),
		astronomy.WithTimeout(cfg.Timeout()),
		astronomy.WithOutputDir(dir),
	}
	if d.noShow {
		options = append(options, astronomy.WithOpener(nil))
	}
	client := astronomy.NewClient(append(options, d.options...)...)

	picture, err := client.FetchDaily(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(d.stdout, picture.Title)
	fmt.Fprintln(d.stdout, picture.Explanation)

	if !picture.IsImage() {
		fmt.Fprintf(d.stdout, "today's %s: %s\n", picture.MediaType, picture.URL)
		return nil
	}

	_, err = client.DisplayImage(ctx, picture.URL)
	return err
}
