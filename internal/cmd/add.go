package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"contentplan/internal/core"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"
)

var addCmd = &cli.Command{
	Name:  "add",
	Usage: "Create a new post",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "text",
			Aliases:  []string{"t"},
			Usage:    "Post text, up to 280 characters",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "date",
			Usage: "Scheduled date, RFC 3339 or YYYY-MM-DD (default: now)",
		},
		&cli.StringFlag{
			Name:     "platform",
			Aliases:  []string{"p"},
			Usage:    "Facebook, Instagram or Twitter",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "hashtags",
			Usage: "Free-text hashtags",
		},
		&cli.StringFlag{
			Name:  "status",
			Usage: "Draft, Scheduled or Published",
			Value: string(core.StatusDraft),
		},
		&cli.StringFlag{
			Name:  "notes",
			Usage: "Internal notes, up to 500 characters",
		},
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		return run(ctx, c, pal.Provide(&adder{cmd: c}))
	},
}

type adder struct {
	Logger *slog.Logger
	Store  core.PostStore

	cmd *cli.Command
}

func (a *adder) Run(ctx context.Context) error {
	text := a.cmd.String("text")
	if err := validateLength("text", text, maxTextLength); err != nil {
		return err
	}
	notes := a.cmd.String("notes")
	if err := validateLength("notes", notes, maxNotesLength); err != nil {
		return err
	}

	scheduled := time.Now()
	if raw := a.cmd.String("date"); raw != "" {
		parsed, err := parseScheduledDate(raw)
		if err != nil {
			return err
		}
		scheduled = parsed
	}

	platform, err := core.ParsePlatform(a.cmd.String("platform"))
	if err != nil {
		return err
	}

	status, err := core.ParseStatus(a.cmd.String("status"))
	if err != nil {
		return err
	}

	now := time.Now()
	post := core.Post{
		ID:            uuid.NewString(),
		Text:          text,
		ScheduledDate: scheduled,
		Platform:      platform,
		Hashtags:      a.cmd.String("hashtags"),
		Status:        status,
		Notes:         notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := a.Store.Add(ctx, post); err != nil {
		return err
	}

	a.Logger.Debug("post created", "id", post.ID, "platform", post.Platform, "status", post.Status)
	fmt.Println(post.ID)

	return nil
}
