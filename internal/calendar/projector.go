// Package calendar projects a post collection onto per-day calendar
// markings. Projection is a pure function: no caching, no incremental
// updates, a fresh map on every call.
package calendar

import (
	"contentplan/internal/core"

	"github.com/samber/lo"
)

// Project summarizes posts per calendar day and flags the selected day.
//
// A day holding posts of mixed statuses gets a single dot color, chosen by
// priority: Published beats Scheduled beats Draft. The selected day is
// always present in the result, with HasPosts false when nothing is
// scheduled on it.
func Project(posts []core.Post, selected core.DateKey) map[core.DateKey]core.DateMarking {
	markings := make(map[core.DateKey]core.DateMarking, len(posts)+1)

	for day, group := range lo.GroupBy(posts, core.Post.DateKey) {
		markings[day] = core.DateMarking{
			HasPosts: true,
			DotColor: dotColor(group),
			Selected: day == selected,
		}
	}

	if _, ok := markings[selected]; !ok && selected != "" {
		markings[selected] = core.DateMarking{Selected: true}
	}

	return markings
}

// dotColor applies the status passes in fixed order: Draft is the base,
// Scheduled overrides it, Published overrides both.
func dotColor(group []core.Post) core.StatusColor {
	color := core.ColorDraft
	for _, status := range []core.Status{core.StatusScheduled, core.StatusPublished} {
		if lo.SomeBy(group, func(p core.Post) bool { return p.Status == status }) {
			color = status.Color()
		}
	}
	return color
}
