package core_test

import (
	"encoding/json"
	"testing"
	"time"

	"contentplan/internal/core"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func samplePost() core.Post {
	return core.Post{
		ID:            "42",
		Text:          "release announcement",
		ScheduledDate: time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC),
		Platform:      core.PlatformFacebook,
		Hashtags:      "#release",
		Status:        core.StatusScheduled,
		Notes:         "pin after publishing",
		CreatedAt:     time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC),
		UpdatedAt:     time.Date(2025, 5, 21, 12, 0, 0, 0, time.UTC),
	}
}

func TestPost_SerializedFieldNames(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(samplePost())
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))

	require.ElementsMatch(t,
		[]string{"id", "text", "scheduledDate", "platform", "hashtags", "status", "notes", "createdAt", "updatedAt"},
		lo.Keys(fields),
	)
	require.Equal(t, "Facebook", fields["platform"])
	require.Equal(t, "Scheduled", fields["status"])
	require.Equal(t, "2025-06-01T09:30:00Z", fields["scheduledDate"])
}

func TestPost_RoundTrip(t *testing.T) {
	t.Parallel()

	p := samplePost()

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var got core.Post
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Equal(t, p, got)
}

func TestParsePlatform(t *testing.T) {
	t.Parallel()

	for _, platform := range core.Platforms {
		got, err := core.ParsePlatform(string(platform))
		require.NoError(t, err)
		require.Equal(t, platform, got)
	}

	_, err := core.ParsePlatform("MySpace")
	require.ErrorIs(t, err, core.ErrInvalidPlatform)
}

func TestParseStatus(t *testing.T) {
	t.Parallel()

	for _, status := range core.Statuses {
		got, err := core.ParseStatus(string(status))
		require.NoError(t, err)
		require.Equal(t, status, got)
	}

	_, err := core.ParseStatus("Archived")
	require.ErrorIs(t, err, core.ErrInvalidStatus)
}

func TestStatus_Color(t *testing.T) {
	t.Parallel()

	require.Equal(t, core.ColorDraft, core.StatusDraft.Color())
	require.Equal(t, core.ColorScheduled, core.StatusScheduled.Color())
	require.Equal(t, core.ColorPublished, core.StatusPublished.Color())
}

func TestDateKeyOf(t *testing.T) {
	t.Parallel()

	t.Run("UTC", func(t *testing.T) {
		ts, err := time.Parse(time.RFC3339, "2025-06-01T10:00:00Z")
		require.NoError(t, err)
		require.Equal(t, core.DateKey("2025-06-01"), core.DateKeyOf(ts))
	})

	t.Run("keeps the literal day of offset timestamps", func(t *testing.T) {
		// 23:30 -07:00 is already June 2nd in UTC, but the written day wins.
		ts, err := time.Parse(time.RFC3339, "2025-06-01T23:30:00-07:00")
		require.NoError(t, err)
		require.Equal(t, core.DateKey("2025-06-01"), core.DateKeyOf(ts))
	})
}

func TestParseDateKey(t *testing.T) {
	t.Parallel()

	key, err := core.ParseDateKey("2025-06-01")
	require.NoError(t, err)
	require.Equal(t, core.DateKey("2025-06-01"), key)

	_, err = core.ParseDateKey("June 1st")
	require.ErrorIs(t, err, core.ErrInvalidDate)
}
