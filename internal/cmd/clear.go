package cmd

import (
	"context"
	"errors"
	"log/slog"

	"contentplan/internal/core"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"
)

var clearCmd = &cli.Command{
	Name:  "clear",
	Usage: "Delete every stored post",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "force",
			Usage: "Confirm wiping the whole collection",
		},
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		return run(ctx, c, pal.Provide(&wiper{cmd: c}))
	},
}

type wiper struct {
	Logger *slog.Logger
	Store  core.PostStore

	cmd *cli.Command
}

func (w *wiper) Run(ctx context.Context) error {
	if !w.cmd.Bool("force") {
		return errors.New("refusing to delete all posts without --force")
	}

	if err := w.Store.ClearAll(ctx); err != nil {
		return err
	}

	w.Logger.Info("all posts deleted")

	return nil
}
