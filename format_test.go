package irailmcp

import (
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/railtools/irail-mcp/irail"
	"github.com/railtools/irail-mcp/stations"
)

func epoch(t time.Time) string { return strconv.FormatInt(t.Unix(), 10) }

func TestFormatLiveboard(t *testing.T) {
	when := time.Date(2026, 2, 7, 14, 0, 0, 0, time.Local)
	dep := time.Date(2026, 2, 7, 14, 12, 0, 0, time.Local)

	resp := &irail.LiveboardResponse{
		Station:     "Leuven",
		StationInfo: irail.StationInfo{Name: "Leuven"},
		Departures: &irail.DepartureBoard{
			Number: "2",
			Departure: []irail.BoardEntry{
				{
					Time:        epoch(dep),
					Delay:       "300",
					Platform:    "4",
					Vehicle:     "BE.NMBS.IC538",
					StationInfo: irail.StationInfo{Name: "Oostende"},
				},
				{
					Time:        epoch(dep.Add(10 * time.Minute)),
					Delay:       "0",
					Platform:    "1",
					Vehicle:     "BE.NMBS.P8008",
					StationInfo: irail.StationInfo{Name: "Brussel-Zuid/Bruxelles-Midi"},
					Canceled:    "1",
				},
			},
		},
	}

	text, res := formatLiveboard(resp, false, when)

	if !strings.HasPrefix(text, "Departures at Leuven on 2026-02-07 14:00:") {
		t.Errorf("unexpected header: %q", text)
	}
	if !strings.Contains(text, "14:12 (+5min) to Oostende (Platform 4, BE.NMBS.IC538)") {
		t.Errorf("delayed departure not rendered: %q", text)
	}
	if !strings.Contains(text, "[CANCELED]") {
		t.Errorf("canceled flag not rendered: %q", text)
	}
	if res.Total != 2 || len(res.Entries) != 2 {
		t.Fatalf("structured entries = %d/%d", res.Total, len(res.Entries))
	}
	if res.Entries[0].DelayMinutes != 5 || res.Entries[0].Canceled {
		t.Errorf("entry 0 = %+v", res.Entries[0])
	}
	if !res.Entries[1].Canceled {
		t.Errorf("entry 1 should be canceled: %+v", res.Entries[1])
	}
}

func TestFormatLiveboardTruncation(t *testing.T) {
	board := &irail.DepartureBoard{}
	for i := 0; i < maxBoardEntries+7; i++ {
		board.Departure = append(board.Departure, irail.BoardEntry{
			Time:        epoch(time.Now()),
			StationInfo: irail.StationInfo{Name: fmt.Sprintf("Stop %d", i)},
		})
	}
	resp := &irail.LiveboardResponse{Station: "Gent-Sint-Pieters", Departures: board}

	text, res := formatLiveboard(resp, false, time.Now())
	if !strings.Contains(text, "... and 7 more") {
		t.Errorf("missing truncation marker: %q", text)
	}
	if len(res.Entries) != maxBoardEntries {
		t.Errorf("structured entries = %d, want %d", len(res.Entries), maxBoardEntries)
	}
	if res.Total != maxBoardEntries+7 {
		t.Errorf("total = %d", res.Total)
	}
}

func TestFormatLiveboardArrivalsEmpty(t *testing.T) {
	resp := &irail.LiveboardResponse{
		StationInfo: irail.StationInfo{Name: "Spa"},
		Arrivals:    &irail.ArrivalBoard{},
	}
	text, res := formatLiveboard(resp, true, time.Now())
	if !strings.Contains(text, "Arrivals at Spa") || !strings.Contains(text, "No arrivals found.") {
		t.Errorf("unexpected text: %q", text)
	}
	if res.Board != "arrivals" || res.Total != 0 {
		t.Errorf("structured = %+v", res)
	}
}

func TestFormatConnections(t *testing.T) {
	when := time.Date(2026, 2, 7, 8, 0, 0, 0, time.Local)
	dep := time.Date(2026, 2, 7, 8, 4, 0, 0, time.Local)
	arr := time.Date(2026, 2, 7, 9, 1, 0, 0, time.Local)

	resp := &irail.ConnectionsResponse{
		Connection: []irail.Connection{
			{
				Departure: irail.ConnectionEvent{
					Time: epoch(dep), Delay: "120", Platform: "11",
					Vehicle:     "BE.NMBS.IC1830",
					StationInfo: irail.StationInfo{Name: "Gent-Sint-Pieters"},
				},
				Arrival: irail.ConnectionEvent{
					Time: epoch(arr), Delay: "0", Platform: "5",
					Vehicle:     "BE.NMBS.IC1830",
					StationInfo: irail.StationInfo{Name: "Leuven"},
				},
				Duration: "3420",
				Vias:     &irail.Vias{Number: "1"},
			},
			{
				Departure: irail.ConnectionEvent{Time: epoch(dep.Add(30 * time.Minute)), StationInfo: irail.StationInfo{Name: "Gent-Sint-Pieters"}},
				Arrival:   irail.ConnectionEvent{Time: epoch(arr.Add(25 * time.Minute)), StationInfo: irail.StationInfo{Name: "Leuven"}},
				Duration:  "3300",
			},
		},
	}

	text, res := formatConnections(resp, "Gent-Sint-Pieters", "Leuven", when, false)

	if !strings.Contains(text, "Connections from Gent-Sint-Pieters to Leuven departing from 2026-02-07 08:00:") {
		t.Errorf("unexpected header: %q", text)
	}
	if !strings.Contains(text, "08:04 (+2min) -> 09:01 (57min, 1 transfer(s), Platform 11, BE.NMBS.IC1830)") {
		t.Errorf("connection line not rendered: %q", text)
	}
	if !strings.Contains(text, "Direct") {
		t.Errorf("direct connection not marked: %q", text)
	}
	if res.Connections[0].Transfers != 1 || res.Connections[0].DurationMinutes != 57 {
		t.Errorf("structured connection 0 = %+v", res.Connections[0])
	}
	if res.Connections[1].Transfers != 0 {
		t.Errorf("structured connection 1 = %+v", res.Connections[1])
	}
}

func TestFormatTrainInfo(t *testing.T) {
	day := time.Date(2026, 2, 7, 0, 0, 0, 0, time.Local)
	arr := time.Date(2026, 2, 7, 10, 31, 0, 0, time.Local)
	dep := time.Date(2026, 2, 7, 10, 33, 0, 0, time.Local)

	resp := &irail.VehicleResponse{
		Vehicle: "BE.NMBS.IC538",
		Stops: irail.StopList{
			Number: "2",
			Stop: []irail.Stop{
				{
					StationInfo:            irail.StationInfo{Name: "Brugge"},
					ScheduledArrivalTime:   epoch(arr),
					ScheduledDepartureTime: epoch(dep),
					DepartureDelay:         "180",
					Platform:               "7",
				},
				{
					StationInfo:       irail.StationInfo{Name: "Oostende"},
					Time:              epoch(dep.Add(14 * time.Minute)),
					DepartureCanceled: "1",
				},
			},
		},
	}

	text, res := formatTrainInfo(resp, "IC538", day)

	if !strings.HasPrefix(text, "Train BE.NMBS.IC538 on 2026-02-07") {
		t.Errorf("unexpected header: %q", text)
	}
	if !strings.Contains(text, "Brugge: 10:31 -> 10:33 (+3min) (Pl. 7)") {
		t.Errorf("stop not rendered: %q", text)
	}
	if !strings.Contains(text, "Oostende") || !strings.Contains(text, "[CANCELED]") {
		t.Errorf("canceled stop not rendered: %q", text)
	}
	if res.Stops[0].DelayMinutes != 3 || res.Stops[1].Canceled != true {
		t.Errorf("structured stops = %+v", res.Stops)
	}
}

func TestFormatDisturbances(t *testing.T) {
	resp := &irail.DisturbancesResponse{
		Disturbance: []irail.Disturbance{
			{Title: "Signal failure near Namur", Description: "Delays up to 30 minutes.", Timestamp: "1770000000"},
		},
	}
	text, res := formatDisturbances(resp)
	if !strings.Contains(text, "Disturbances:") || !strings.Contains(text, "Signal failure near Namur") {
		t.Errorf("disturbance not rendered: %q", text)
	}
	if !strings.Contains(text, "No planned works.") {
		t.Errorf("missing planned works placeholder: %q", text)
	}
	if len(res.Disturbances) != 1 || len(res.PlannedWorks) != 0 {
		t.Errorf("structured = %+v", res)
	}

	text, res = formatDisturbances(&irail.DisturbancesResponse{})
	if !strings.Contains(text, "No current disturbances.") {
		t.Errorf("empty case: %q", text)
	}
	if len(res.Disturbances) != 0 {
		t.Errorf("structured = %+v", res)
	}
}

func TestFormatStations(t *testing.T) {
	list := []stations.Station{
		{
			Name:          "Liège-Guillemins",
			AlternativeNL: "Luik-Guillemins",
			Latitude:      "50.62455",
			Longitude:     "5.566695",
			CountryCode:   "be",
			URI:           "http://irail.be/stations/NMBS/008841004",
		},
	}
	text, res := formatStations("liege", list)
	if !strings.Contains(text, `Found 1 station(s) matching "liege":`) {
		t.Errorf("header: %q", text)
	}
	if !strings.Contains(text, "Liège-Guillemins (Luik-Guillemins) - Coordinates: 50.62455, 5.566695") {
		t.Errorf("station line: %q", text)
	}
	if res.Stations[0].Alternatives["nl"] != "Luik-Guillemins" {
		t.Errorf("structured = %+v", res.Stations[0])
	}

	text, res = formatStations("nowhere", nil)
	if !strings.Contains(text, "No stations found") || res.Total != 0 {
		t.Errorf("empty case: %q %+v", text, res)
	}
}
