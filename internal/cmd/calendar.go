package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"contentplan/internal/calendar"
	"contentplan/internal/core"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"
)

var calendarCmd = &cli.Command{
	Name:  "calendar",
	Usage: "Show a month calendar with per-day post markers",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "date",
			Usage: "Selected day, YYYY-MM-DD (default: today)",
		},
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		return run(ctx, c, pal.Provide(&monthViewer{cmd: c}))
	},
}

type monthViewer struct {
	Logger *slog.Logger
	Store  core.PostStore

	cmd *cli.Command
}

func (m *monthViewer) Run(ctx context.Context) error {
	selected := core.DateKeyOf(time.Now())
	if raw := m.cmd.String("date"); raw != "" {
		parsed, err := core.ParseDateKey(raw)
		if err != nil {
			return err
		}
		selected = parsed
	}

	posts, err := m.Store.All(ctx)
	if err != nil {
		return err
	}

	renderMonth(os.Stdout, selected, calendar.Project(posts, selected))

	dayPosts, err := m.Store.ByDate(ctx, selected)
	if err != nil {
		return err
	}

	noun := "posts"
	if len(dayPosts) == 1 {
		noun = "post"
	}
	fmt.Printf("\n%s, %d %s\n", selected.Time().Format("January 2, 2006"), len(dayPosts), noun)

	if len(dayPosts) > 0 {
		printPosts(os.Stdout, dayPosts)
	}

	return nil
}
