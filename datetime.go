package irailmcp

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var dateLayouts = []string{"2006-01-02", "02/01/2006", "02.01.2006"}
var timeLayouts = []string{"15:04", "15:04:05", "3:04 PM", "3:04:05 PM"}

// parseWhen resolves the user-facing date and time arguments against now.
//
// Accepted dates: empty (today), "today", "tomorrow", "+N days", or one of
// dateLayouts. Accepted times: empty, or one of timeLayouts. Relative dates
// keep the current clock time unless a time is given; absolute dates
// without a time resolve to midnight. Malformed input is an error; nothing
// silently falls back to now.
func parseWhen(dateStr, timeStr string, now time.Time) (time.Time, error) {
	target, err := parseDate(strings.TrimSpace(dateStr), now)
	if err != nil {
		return time.Time{}, err
	}

	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return target, nil
	}
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, strings.ToUpper(timeStr))
		if err == nil {
			return time.Date(target.Year(), target.Month(), target.Day(),
				t.Hour(), t.Minute(), t.Second(), 0, target.Location()), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q (expected e.g. 14:30 or 2:30 PM)", timeStr)
}

func parseDate(dateStr string, now time.Time) (time.Time, error) {
	switch strings.ToLower(dateStr) {
	case "", "today":
		return now, nil
	case "tomorrow":
		return now.AddDate(0, 0, 1), nil
	}

	if strings.HasPrefix(dateStr, "+") {
		fields := strings.Fields(dateStr)
		days, err := strconv.Atoi(strings.TrimPrefix(fields[0], "+"))
		unit := "days"
		if len(fields) > 1 {
			unit = strings.ToLower(fields[1])
		}
		if err != nil || days < 0 || (unit != "day" && unit != "days") {
			return time.Time{}, fmt.Errorf("unrecognized relative date %q (expected e.g. \"+2 days\")", dateStr)
		}
		return now.AddDate(0, 0, days), nil
	}

	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, dateStr, now.Location())
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q (expected YYYY-MM-DD, DD/MM/YYYY, today, tomorrow or \"+N days\")", dateStr)
}
