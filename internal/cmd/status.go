package cmd

import (
	"context"
	"errors"
	"log/slog"

	"contentplan/internal/core"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"
)

var setStatusCmd = &cli.Command{
	Name:      "set-status",
	Usage:     "Change the status of a post",
	ArgsUsage: "<id> <Draft|Scheduled|Published>",
	Action: func(ctx context.Context, c *cli.Command) error {
		return run(ctx, c, pal.Provide(&statusSetter{cmd: c}))
	},
}

type statusSetter struct {
	Logger *slog.Logger
	Store  core.PostStore

	cmd *cli.Command
}

func (s *statusSetter) Run(ctx context.Context) error {
	args := s.cmd.Args()
	if args.Len() != 2 {
		return errors.New("usage: contentplan set-status <id> <status>")
	}

	status, err := core.ParseStatus(args.Get(1))
	if err != nil {
		return err
	}

	if err := s.Store.UpdateStatus(ctx, args.Get(0), status); err != nil {
		return err
	}

	s.Logger.Debug("status updated", "id", args.Get(0), "status", status)

	return nil
}
