package cmd

import (
	"context"
	"fmt"
	"os"
	"syscall"
	"time"

	"contentplan/internal/cmd/flags"
	"contentplan/internal/config"
	"contentplan/internal/kv"
	"contentplan/internal/planner"
	"contentplan/pkg/clicfg"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"
)

const VERSION = "0.1.0"

var cmd = &cli.Command{
	Name:    "contentplan",
	Usage:   "Contentplan is a local-only planner for social media posts",
	Version: VERSION,
	Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
		if err := initLogger(c.String("log-level")); err != nil {
			return ctx, err
		}
		return ctx, nil
	},
	Flags: []cli.Flag{
		flags.LogLevel,
		flags.DataDir,
		flags.Backend,
		flags.NATSUrl,
	},
	Commands: []*cli.Command{
		addCmd,
		listCmd,
		calendarCmd,
		editCmd,
		setStatusCmd,
		deleteCmd,
		clearCmd,
		statsCmd,
	},
}

func Run() {
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, c *cli.Command, services ...pal.ServiceDef) error {
	cfg := config.Config{}
	if err := clicfg.Bind(c, &cfg); err != nil {
		return err
	}

	services = append(services,
		pal.Provide(&cfg),
		kv.Provide(cfg.Backend),
		planner.Provide(),
	)

	return pal.New(services...).
		InjectSlog().
		InitTimeout(5*time.Second).
		HealthCheckTimeout(1*time.Second).
		ShutdownTimeout(5*time.Second).
		Run(ctx, syscall.SIGINT, syscall.SIGTERM)
}
