package irailmcp

import (
	"testing"
	"time"
)

func TestParseWhen(t *testing.T) {
	now := time.Date(2026, 2, 7, 9, 15, 0, 0, time.Local)

	tests := []struct {
		name    string
		date    string
		time    string
		want    time.Time
		wantErr bool
	}{
		{name: "both empty", want: now},
		{name: "today keeps clock", date: "today", want: now},
		{name: "tomorrow", date: "tomorrow", want: now.AddDate(0, 0, 1)},
		{name: "plus two days", date: "+2 days", want: now.AddDate(0, 0, 2)},
		{name: "iso date", date: "2026-03-01", want: time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)},
		{name: "slash date", date: "01/03/2026", want: time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)},
		{name: "dot date", date: "01.03.2026", want: time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)},
		{name: "time only", time: "14:30", want: time.Date(2026, 2, 7, 14, 30, 0, 0, time.Local)},
		{name: "time with seconds", time: "14:30:45", want: time.Date(2026, 2, 7, 14, 30, 45, 0, time.Local)},
		{name: "twelve hour clock", time: "2:30 PM", want: time.Date(2026, 2, 7, 14, 30, 0, 0, time.Local)},
		{name: "lowercase meridiem", time: "2:30 pm", want: time.Date(2026, 2, 7, 14, 30, 0, 0, time.Local)},
		{name: "date and time", date: "tomorrow", time: "06:05", want: time.Date(2026, 2, 8, 6, 5, 0, 0, time.Local)},
		{name: "garbage date", date: "someday", wantErr: true},
		{name: "american date order rejected", date: "03-01-2026", wantErr: true},
		{name: "garbage time", time: "half past nine", wantErr: true},
		{name: "out of range time", time: "25:99", wantErr: true},
		{name: "negative relative", date: "+-1 days", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseWhen(tt.date, tt.time, now)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseWhen(%q, %q) = %v, want error", tt.date, tt.time, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseWhen(%q, %q): %v", tt.date, tt.time, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("parseWhen(%q, %q) = %v, want %v", tt.date, tt.time, got, tt.want)
			}
		})
	}
}
