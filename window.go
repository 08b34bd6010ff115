package main

import (
	"fmt"
	"time"
)

// weekSpan is the fixed width of one tally window.
const weekSpan = 7 * 24 * time.Hour

// WeekWindow is one seven-day tally interval. End is exclusive: a
// message belongs to the window when Start <= ts < End.
type WeekWindow struct {
	Start time.Time
	End   time.Time
}

// WindowAt derives the window for week index i anchored at now. Index 0
// is the week ending at now; each higher index steps one full week
// further into the past, so consecutive windows share a boundary and
// never overlap.
func WindowAt(now time.Time, i int) WeekWindow {
	end := now.Add(-time.Duration(i) * weekSpan)
	return WeekWindow{Start: end.Add(-weekSpan), End: end}
}

// WeeksBack returns the n most recent windows anchored at now, most
// recent first. n <= 0 yields no windows.
func WeeksBack(now time.Time, n int) []WeekWindow {
	if n <= 0 {
		return nil
	}
	windows := make([]WeekWindow, 0, n)
	for i := 0; i < n; i++ {
		windows = append(windows, WindowAt(now, i))
	}
	return windows
}

// Oldest returns the window start as a Slack "ts" value.
func (w WeekWindow) Oldest() string {
	return slackTS(w.Start)
}

// Latest returns the exclusive window end as a Slack "ts" value.
func (w WeekWindow) Latest() string {
	return slackTS(w.End)
}

// String renders the window the way the reports print it.
func (w WeekWindow) String() string {
	return fmt.Sprintf("%s to %s", w.Start.Format("2006-01-02"), w.End.Format("2006-01-02"))
}

// slackTS formats a time as the seconds.microseconds string the Slack
// API takes for oldest/latest bounds.
func slackTS(t time.Time) string {
	return fmt.Sprintf("%d.000000", t.Unix())
}
