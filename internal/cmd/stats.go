package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"contentplan/internal/core"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"
)

var statsCmd = &cli.Command{
	Name:  "stats",
	Usage: "Show post counts by status and platform",
	Action: func(ctx context.Context, c *cli.Command) error {
		return run(ctx, c, pal.Provide(&statsPrinter{}))
	},
}

type statsPrinter struct {
	Logger *slog.Logger
	Store  core.PostStore
}

func (s *statsPrinter) Run(ctx context.Context) error {
	posts, err := s.Store.All(ctx)
	if err != nil {
		return err
	}

	byStatus := lo.CountValuesBy(posts, func(p core.Post) core.Status {
		return p.Status
	})
	byPlatform := lo.CountValuesBy(posts, func(p core.Post) core.Platform {
		return p.Platform
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "total\t%d\n", len(posts))
	for _, status := range core.Statuses {
		fmt.Fprintf(w, "%s\t%d\n", status, byStatus[status])
	}
	for _, platform := range core.Platforms {
		fmt.Fprintf(w, "%s\t%d\n", platform, byPlatform[platform])
	}

	return w.Flush()
}
