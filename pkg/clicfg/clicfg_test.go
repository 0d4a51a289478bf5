package clicfg_test

import (
	"context"
	"testing"

	"contentplan/pkg/clicfg"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

type testConfig struct {
	Name   string `flag:"name"`
	Force  bool   `flag:"force"`
	Silent string
}

func TestBind(t *testing.T) {
	t.Parallel()

	var got testConfig

	cmd := &cli.Command{
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name"},
			&cli.BoolFlag{Name: "force"},
		},
		Action: func(_ context.Context, c *cli.Command) error {
			return clicfg.Bind(c, &got)
		},
	}

	require.NoError(t, cmd.Run(t.Context(), []string{"test", "--name", "plan", "--force"}))
	require.Equal(t, testConfig{Name: "plan", Force: true}, got)
}

func TestBind_NotAPointer(t *testing.T) {
	t.Parallel()

	err := clicfg.Bind(&cli.Command{}, testConfig{})
	require.ErrorIs(t, err, clicfg.ErrCannotBindFlags)
}
