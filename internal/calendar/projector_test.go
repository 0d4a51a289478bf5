package calendar_test

import (
	"testing"
	"time"

	"contentplan/internal/calendar"
	"contentplan/internal/core"

	"github.com/stretchr/testify/require"
)

func scheduledOn(day string, status core.Status) core.Post {
	ts, err := time.Parse(core.DateKeyLayout, day)
	if err != nil {
		panic(err)
	}
	return core.Post{
		ID:            day + "-" + string(status),
		ScheduledDate: ts,
		Platform:      core.PlatformInstagram,
		Status:        status,
	}
}

func TestProject(t *testing.T) {
	t.Parallel()

	t.Run("published wins on a mixed day", func(t *testing.T) {
		t.Parallel()

		posts := []core.Post{
			scheduledOn("2025-06-01", core.StatusDraft),
			scheduledOn("2025-06-01", core.StatusPublished),
		}

		markings := calendar.Project(posts, "2025-06-01")
		require.Equal(t, map[core.DateKey]core.DateMarking{
			"2025-06-01": {HasPosts: true, DotColor: core.ColorPublished, Selected: true},
		}, markings)
	})

	t.Run("scheduled wins over draft", func(t *testing.T) {
		t.Parallel()

		posts := []core.Post{
			scheduledOn("2025-06-01", core.StatusScheduled),
			scheduledOn("2025-06-01", core.StatusDraft),
		}

		markings := calendar.Project(posts, "2025-06-02")
		require.Equal(t, core.ColorScheduled, markings["2025-06-01"].DotColor)
	})

	t.Run("published wins over scheduled regardless of order", func(t *testing.T) {
		t.Parallel()

		posts := []core.Post{
			scheduledOn("2025-06-01", core.StatusPublished),
			scheduledOn("2025-06-01", core.StatusScheduled),
			scheduledOn("2025-06-01", core.StatusDraft),
		}

		markings := calendar.Project(posts, "2025-06-02")
		require.Equal(t, core.ColorPublished, markings["2025-06-01"].DotColor)
	})

	t.Run("draft-only day gets the draft color", func(t *testing.T) {
		t.Parallel()

		posts := []core.Post{scheduledOn("2025-06-01", core.StatusDraft)}

		markings := calendar.Project(posts, "2025-06-02")
		require.Equal(t, core.ColorDraft, markings["2025-06-01"].DotColor)
	})

	t.Run("selected day without posts still appears", func(t *testing.T) {
		t.Parallel()

		markings := calendar.Project(nil, "2025-06-02")
		require.Equal(t, map[core.DateKey]core.DateMarking{
			"2025-06-02": {Selected: true},
		}, markings)
	})

	t.Run("only the selected day is selected", func(t *testing.T) {
		t.Parallel()

		posts := []core.Post{
			scheduledOn("2025-06-01", core.StatusDraft),
			scheduledOn("2025-06-03", core.StatusScheduled),
		}

		markings := calendar.Project(posts, "2025-06-05")
		require.Len(t, markings, 3)
		require.False(t, markings["2025-06-01"].Selected)
		require.False(t, markings["2025-06-03"].Selected)
		require.True(t, markings["2025-06-05"].Selected)
		require.False(t, markings["2025-06-05"].HasPosts)
	})

	t.Run("no selection", func(t *testing.T) {
		t.Parallel()

		posts := []core.Post{scheduledOn("2025-06-01", core.StatusDraft)}

		markings := calendar.Project(posts, "")
		require.Len(t, markings, 1)
		require.False(t, markings["2025-06-01"].Selected)
	})
}
