package cmd

import (
	"context"
	"log/slog"
	"os"
	"slices"

	"contentplan/internal/core"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"
)

var listCmd = &cli.Command{
	Name:  "list",
	Usage: "List posts, optionally filtered by day or status",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "date",
			Usage: "Only posts scheduled on this day, YYYY-MM-DD",
		},
		&cli.StringFlag{
			Name:  "status",
			Usage: "Only posts with this status",
		},
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		return run(ctx, c, pal.Provide(&lister{cmd: c}))
	},
}

type lister struct {
	Logger *slog.Logger
	Store  core.PostStore

	cmd *cli.Command
}

func (l *lister) Run(ctx context.Context) error {
	var date core.DateKey
	if raw := l.cmd.String("date"); raw != "" {
		parsed, err := core.ParseDateKey(raw)
		if err != nil {
			return err
		}
		date = parsed
	}

	posts, err := l.Store.ByDate(ctx, date)
	if err != nil {
		return err
	}

	if raw := l.cmd.String("status"); raw != "" {
		status, err := core.ParseStatus(raw)
		if err != nil {
			return err
		}
		posts = lo.Filter(posts, func(p core.Post, _ int) bool {
			return p.Status == status
		})
	}

	// Newest scheduled first, same order as the original posts screen.
	slices.SortFunc(posts, func(a, b core.Post) int {
		return b.ScheduledDate.Compare(a.ScheduledDate)
	})

	printPosts(os.Stdout, posts)

	return nil
}
