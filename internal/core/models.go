package core

import (
	"fmt"
	"time"
)

// Platform is the social network a post is planned for.
type Platform string

const (
	PlatformFacebook  Platform = "Facebook"
	PlatformInstagram Platform = "Instagram"
	PlatformTwitter   Platform = "Twitter"
)

var Platforms = []Platform{PlatformFacebook, PlatformInstagram, PlatformTwitter}

func ParsePlatform(s string) (Platform, error) {
	switch Platform(s) {
	case PlatformFacebook, PlatformInstagram, PlatformTwitter:
		return Platform(s), nil
	default:
		return "", fmt.Errorf("%w: %q, allowed values are: %v", ErrInvalidPlatform, s, Platforms)
	}
}

// Status is the lifecycle label of a post. It is advisory only: nothing is
// ever published anywhere, "Published" is set by hand. Any status may
// transition to any other.
type Status string

const (
	StatusDraft     Status = "Draft"
	StatusScheduled Status = "Scheduled"
	StatusPublished Status = "Published"
)

var Statuses = []Status{StatusDraft, StatusScheduled, StatusPublished}

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusDraft, StatusScheduled, StatusPublished:
		return Status(s), nil
	default:
		return "", fmt.Errorf("%w: %q, allowed values are: %v", ErrInvalidStatus, s, Statuses)
	}
}

// StatusColor is the hex color a calendar dot uses for a status.
type StatusColor string

const (
	ColorDraft     StatusColor = "#F59E0B"
	ColorScheduled StatusColor = "#3B82F6"
	ColorPublished StatusColor = "#10B981"
)

func (s Status) Color() StatusColor {
	switch s {
	case StatusScheduled:
		return ColorScheduled
	case StatusPublished:
		return ColorPublished
	default:
		return ColorDraft
	}
}

// Post is the sole persisted entity: one planned social-media content item.
// Field names in the serialized form are part of the storage contract and
// must not change.
type Post struct {
	ID            string    `json:"id"`
	Text          string    `json:"text"`
	ScheduledDate time.Time `json:"scheduledDate"`
	Platform      Platform  `json:"platform"`
	Hashtags      string    `json:"hashtags"`
	Status        Status    `json:"status"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// DateKeyLayout is the calendar-day form of a timestamp.
const DateKeyLayout = "2006-01-02"

// DateKey is the calendar-day component of a timestamp, used for grouping
// and filtering. Empty means "no day selected".
type DateKey string

func ParseDateKey(s string) (DateKey, error) {
	if _, err := time.Parse(DateKeyLayout, s); err != nil {
		return "", fmt.Errorf("%w: %q, expected %s", ErrInvalidDate, s, DateKeyLayout)
	}
	return DateKey(s), nil
}

func (k DateKey) Time() time.Time {
	t, _ := time.Parse(DateKeyLayout, string(k))
	return t
}

// DateKeyOf extracts the day portion of a timestamp as it was written,
// without converting to any other timezone.
func DateKeyOf(t time.Time) DateKey {
	return DateKey(t.Format(DateKeyLayout))
}

// DateKey returns the calendar day the post is scheduled on.
func (p Post) DateKey() DateKey {
	return DateKeyOf(p.ScheduledDate)
}

// DateMarking is the derived per-day summary a calendar view renders. It is
// never persisted, always recomputed from the post collection.
type DateMarking struct {
	HasPosts bool        `json:"marked"`
	DotColor StatusColor `json:"dotColor,omitempty"`
	Selected bool        `json:"selected,omitempty"`
}
