package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"contentplan/internal/core"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"
)

var editCmd = &cli.Command{
	Name:      "edit",
	Usage:     "Update fields of an existing post",
	ArgsUsage: "<id>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "text",
			Aliases: []string{"t"},
			Usage:   "Post text, up to 280 characters",
		},
		&cli.StringFlag{
			Name:  "date",
			Usage: "Scheduled date, RFC 3339 or YYYY-MM-DD",
		},
		&cli.StringFlag{
			Name:    "platform",
			Aliases: []string{"p"},
			Usage:   "Facebook, Instagram or Twitter",
		},
		&cli.StringFlag{
			Name:  "hashtags",
			Usage: "Free-text hashtags",
		},
		&cli.StringFlag{
			Name:  "status",
			Usage: "Draft, Scheduled or Published",
		},
		&cli.StringFlag{
			Name:  "notes",
			Usage: "Internal notes, up to 500 characters",
		},
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		return run(ctx, c, pal.Provide(&editor{cmd: c}))
	},
}

type editor struct {
	Logger *slog.Logger
	Store  core.PostStore

	cmd *cli.Command
}

func (e *editor) Run(ctx context.Context) error {
	id := e.cmd.Args().First()
	if id == "" {
		return errors.New("usage: contentplan edit <id>")
	}

	posts, err := e.Store.All(ctx)
	if err != nil {
		return err
	}

	post, found := lo.Find(posts, func(p core.Post) bool {
		return p.ID == id
	})
	if !found {
		return fmt.Errorf("%w: %s", core.ErrPostNotFound, id)
	}

	if e.cmd.IsSet("text") {
		text := e.cmd.String("text")
		if err := validateLength("text", text, maxTextLength); err != nil {
			return err
		}
		post.Text = text
	}
	if e.cmd.IsSet("date") {
		scheduled, err := parseScheduledDate(e.cmd.String("date"))
		if err != nil {
			return err
		}
		post.ScheduledDate = scheduled
	}
	if e.cmd.IsSet("platform") {
		platform, err := core.ParsePlatform(e.cmd.String("platform"))
		if err != nil {
			return err
		}
		post.Platform = platform
	}
	if e.cmd.IsSet("hashtags") {
		post.Hashtags = e.cmd.String("hashtags")
	}
	if e.cmd.IsSet("status") {
		status, err := core.ParseStatus(e.cmd.String("status"))
		if err != nil {
			return err
		}
		post.Status = status
	}
	if e.cmd.IsSet("notes") {
		notes := e.cmd.String("notes")
		if err := validateLength("notes", notes, maxNotesLength); err != nil {
			return err
		}
		post.Notes = notes
	}

	if err := e.Store.Update(ctx, post); err != nil {
		return err
	}

	e.Logger.Debug("post updated", "id", id)

	return nil
}
