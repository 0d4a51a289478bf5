package cmd

import (
	"context"
	"errors"
	"log/slog"

	"contentplan/internal/core"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"
)

var deleteCmd = &cli.Command{
	Name:      "delete",
	Usage:     "Delete a post",
	ArgsUsage: "<id>",
	Action: func(ctx context.Context, c *cli.Command) error {
		return run(ctx, c, pal.Provide(&deleter{cmd: c}))
	},
}

type deleter struct {
	Logger *slog.Logger
	Store  core.PostStore

	cmd *cli.Command
}

func (d *deleter) Run(ctx context.Context) error {
	id := d.cmd.Args().First()
	if id == "" {
		return errors.New("usage: contentplan delete <id>")
	}

	if err := d.Store.Delete(ctx, id); err != nil {
		return err
	}

	d.Logger.Debug("post deleted", "id", id)

	return nil
}
