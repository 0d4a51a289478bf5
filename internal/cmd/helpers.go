package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"
	"unicode/utf8"

	"contentplan/internal/core"

	"github.com/mattn/go-isatty"
)

// The limits the original form enforced. The store itself does not
// re-validate, so the CLI is the place they live.
const (
	maxTextLength  = 280
	maxNotesLength = 500
)

func validateLength(field, value string, max int) error {
	if n := utf8.RuneCountInString(value); n > max {
		return fmt.Errorf("%s is %d characters, the limit is %d", field, n, max)
	}
	return nil
}

func parseScheduledDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(core.DateKeyLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q, expected RFC 3339 or %s", core.ErrInvalidDate, raw, core.DateKeyLayout)
	}
	return t, nil
}

func printPosts(w io.Writer, posts []core.Post) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSCHEDULED\tPLATFORM\tSTATUS\tTEXT")
	for _, p := range posts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			p.ID,
			p.ScheduledDate.Format("2006-01-02 15:04"),
			p.Platform,
			p.Status,
			truncate(p.Text, 48),
		)
	}
	tw.Flush()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// renderMonth prints the month containing the selected day. Days holding
// posts get a dot in the status color, the selected day is bracketed.
func renderMonth(w io.Writer, selected core.DateKey, markings map[core.DateKey]core.DateMarking) {
	day := selected.Time()
	first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)

	fmt.Fprintln(w, first.Format("January 2006"))
	fmt.Fprintln(w, "  Mo   Tu   We   Th   Fr   Sa   Su")

	col := (int(first.Weekday()) + 6) % 7 // Monday-first
	fmt.Fprint(w, strings.Repeat("     ", col))

	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		fmt.Fprint(w, cell(d.Day(), markings[core.DateKeyOf(d)]))
		col++
		if col == 7 {
			fmt.Fprintln(w)
			col = 0
		}
	}
	if col != 0 {
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "\n%s draft  %s scheduled  %s published\n",
		dot(core.ColorDraft), dot(core.ColorScheduled), dot(core.ColorPublished))
}

func cell(dayNum int, m core.DateMarking) string {
	left, right := " ", " "
	if m.Selected {
		left, right = "[", "]"
	}
	mark := " "
	if m.HasPosts {
		mark = dot(m.DotColor)
	}
	return fmt.Sprintf("%s%2d%s%s", left, dayNum, right, mark)
}

// dot renders a status-colored marker, falling back to plain glyphs when
// stdout is not a terminal.
func dot(color core.StatusColor) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		switch color {
		case core.ColorPublished:
			return "+"
		case core.ColorScheduled:
			return "*"
		default:
			return "."
		}
	}

	code := "33"
	switch color {
	case core.ColorScheduled:
		code = "34"
	case core.ColorPublished:
		code = "32"
	}
	return "\x1b[" + code + "m•\x1b[0m"
}
