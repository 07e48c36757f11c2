package irailmcp

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/railtools/irail-mcp/irail"
	"github.com/railtools/irail-mcp/stations"
)

// Display limits for the text rendering. The structured payload carries the
// same truncated slices so both views agree.
const (
	maxStationResults     = 10
	maxBoardEntries       = 15
	maxConnectionResults  = 10
	maxStopResults        = 20
	maxDisturbanceResults = 5
)

// StationResult is the reshaped form of one station.
type StationResult struct {
	URI          string            `json:"uri,omitempty"`
	Name         string            `json:"name"`
	Alternatives map[string]string `json:"alternatives,omitempty"`
	Latitude     string            `json:"latitude,omitempty"`
	Longitude    string            `json:"longitude,omitempty"`
	Country      string            `json:"country,omitempty"`
}

// StationSearchResult is the structured payload of search_stations.
type StationSearchResult struct {
	Query    string          `json:"query"`
	Total    int             `json:"total"`
	Stations []StationResult `json:"stations"`
}

// BoardEntryResult is the reshaped form of one liveboard row.
type BoardEntryResult struct {
	Time         string `json:"time"`
	DelayMinutes int    `json:"delay_minutes"`
	Platform     string `json:"platform"`
	Station      string `json:"station"`
	Train        string `json:"train"`
	Canceled     bool   `json:"canceled"`
}

// LiveboardResult is the structured payload of get_liveboard.
type LiveboardResult struct {
	Station string             `json:"station"`
	Board   string             `json:"board"`
	Total   int                `json:"total"`
	Entries []BoardEntryResult `json:"entries"`
}

// LegResult is the departure or arrival half of a reshaped connection.
type LegResult struct {
	Station      string `json:"station"`
	Time         string `json:"time"`
	Platform     string `json:"platform"`
	DelayMinutes int    `json:"delay_minutes"`
	Train        string `json:"train,omitempty"`
}

// ConnectionResult is one reshaped journey option.
type ConnectionResult struct {
	Departure       LegResult `json:"departure"`
	Arrival         LegResult `json:"arrival"`
	DurationMinutes int       `json:"duration_minutes"`
	Transfers       int       `json:"transfers"`
}

// ConnectionsResult is the structured payload of find_connections.
type ConnectionsResult struct {
	From        string             `json:"from"`
	To          string             `json:"to"`
	Total       int                `json:"total"`
	Connections []ConnectionResult `json:"connections"`
}

// StopResult is one reshaped halt of a train.
type StopResult struct {
	Station      string `json:"station"`
	Arrival      string `json:"arrival,omitempty"`
	Departure    string `json:"departure,omitempty"`
	DelayMinutes int    `json:"delay_minutes"`
	Platform     string `json:"platform"`
	Canceled     bool   `json:"canceled"`
}

// TrainInfoResult is the structured payload of get_train_info.
type TrainInfoResult struct {
	Train string       `json:"train"`
	Date  string       `json:"date"`
	Total int          `json:"total_stops"`
	Stops []StopResult `json:"stops"`
}

// NoticeResult is one reshaped disturbance or planned work.
type NoticeResult struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link,omitempty"`
	Timestamp   string `json:"timestamp,omitempty"`
}

// DisturbancesResult is the structured payload of get_disturbances.
type DisturbancesResult struct {
	Disturbances []NoticeResult `json:"disturbances"`
	PlannedWorks []NoticeResult `json:"planned_works"`
}

// epochTime parses an iRail unix-timestamp string. The zero value means
// "unknown" and renders as --:--.
func epochTime(s string) time.Time {
	sec, err := strconv.ParseInt(s, 10, 64)
	if err != nil || sec <= 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0)
}

func clock(t time.Time) string {
	if t.IsZero() {
		return "--:--"
	}
	return t.Format("15:04")
}

func rfc3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

// delayMinutes converts an iRail delay (seconds, as string) to minutes.
func delayMinutes(s string) int {
	sec, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return sec / 60
}

func flagSet(s string) bool { return s == "1" }

func delaySuffix(minutes int) string {
	if minutes == 0 {
		return ""
	}
	return fmt.Sprintf(" (+%dmin)", minutes)
}

func andMore(n int) string {
	return fmt.Sprintf("  ... and %d more", n)
}

func formatStations(query string, list []stations.Station) (string, StationSearchResult) {
	res := StationSearchResult{Query: query, Total: len(list)}
	if len(list) == 0 {
		return fmt.Sprintf("No stations found matching %q.", query), res
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d station(s) matching %q:\n", len(list), query)
	shown := list
	if len(shown) > maxStationResults {
		shown = shown[:maxStationResults]
	}
	for _, s := range shown {
		alts := map[string]string{}
		for lang, name := range map[string]string{
			"fr": s.AlternativeFR, "nl": s.AlternativeNL,
			"de": s.AlternativeDE, "en": s.AlternativeEN,
		} {
			if name != "" {
				alts[lang] = name
			}
		}
		if len(alts) == 0 {
			alts = nil
		}
		res.Stations = append(res.Stations, StationResult{
			URI:          s.URI,
			Name:         s.Name,
			Alternatives: alts,
			Latitude:     s.Latitude,
			Longitude:    s.Longitude,
			Country:      s.CountryCode,
		})

		line := "  - " + s.Name
		if variants := s.Alternatives(); len(variants) > 0 {
			line += " (" + strings.Join(variants, ", ") + ")"
		}
		fmt.Fprintf(&b, "%s - Coordinates: %s, %s\n", line, s.Latitude, s.Longitude)
	}
	if len(list) > maxStationResults {
		b.WriteString(andMore(len(list)-maxStationResults) + "\n")
	}
	return strings.TrimRight(b.String(), "\n"), res
}

func formatLiveboard(resp *irail.LiveboardResponse, arrivals bool, when time.Time) (string, LiveboardResult) {
	board := "departures"
	direction := "to"
	var entries []irail.BoardEntry
	if arrivals {
		board = "arrivals"
		direction = "from"
		if resp.Arrivals != nil {
			entries = resp.Arrivals.Arrival
		}
	} else if resp.Departures != nil {
		entries = resp.Departures.Departure
	}

	stationName := resp.StationInfo.Name
	if stationName == "" {
		stationName = resp.Station
	}
	res := LiveboardResult{Station: stationName, Board: board, Total: len(entries)}

	var b strings.Builder
	caser := strings.ToUpper(board[:1]) + board[1:]
	fmt.Fprintf(&b, "%s at %s on %s:\n", caser, stationName, when.Format("2006-01-02 15:04"))

	if len(entries) == 0 {
		b.WriteString("No " + board + " found.")
		return b.String(), res
	}

	shown := entries
	if len(shown) > maxBoardEntries {
		shown = shown[:maxBoardEntries]
	}
	for _, e := range shown {
		t := epochTime(e.Time)
		delay := delayMinutes(e.Delay)
		other := e.StationInfo.Name
		if other == "" {
			other = e.Station
		}
		canceled := flagSet(e.Canceled)

		res.Entries = append(res.Entries, BoardEntryResult{
			Time:         rfc3339(t),
			DelayMinutes: delay,
			Platform:     e.Platform,
			Station:      other,
			Train:        e.Vehicle,
			Canceled:     canceled,
		})

		line := fmt.Sprintf("  %s%s %s %s (Platform %s, %s)",
			clock(t), delaySuffix(delay), direction, other, orUnknown(e.Platform), e.Vehicle)
		if canceled {
			line += " [CANCELED]"
		}
		b.WriteString(line + "\n")
	}
	if len(entries) > maxBoardEntries {
		b.WriteString(andMore(len(entries)-maxBoardEntries) + "\n")
	}
	return strings.TrimRight(b.String(), "\n"), res
}

func formatConnections(resp *irail.ConnectionsResponse, from, to string, when time.Time, arriveBy bool) (string, ConnectionsResult) {
	res := ConnectionsResult{From: from, To: to, Total: len(resp.Connection)}

	mode := "departing from"
	if arriveBy {
		mode = "arriving at"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Connections from %s to %s %s %s:\n", from, to, mode, when.Format("2006-01-02 15:04"))

	if len(resp.Connection) == 0 {
		b.WriteString("No connections found.")
		return b.String(), res
	}

	shown := resp.Connection
	if len(shown) > maxConnectionResults {
		shown = shown[:maxConnectionResults]
	}
	for _, c := range shown {
		dep := epochTime(c.Departure.Time)
		arr := epochTime(c.Arrival.Time)
		depDelay := delayMinutes(c.Departure.Delay)
		duration := 0
		if sec, err := strconv.Atoi(c.Duration); err == nil {
			duration = sec / 60
		}
		transfers := 0
		if c.Vias != nil {
			transfers, _ = strconv.Atoi(c.Vias.Number)
		}

		res.Connections = append(res.Connections, ConnectionResult{
			Departure: LegResult{
				Station:      c.Departure.StationInfo.Name,
				Time:         rfc3339(dep),
				Platform:     c.Departure.Platform,
				DelayMinutes: depDelay,
				Train:        c.Departure.Vehicle,
			},
			Arrival: LegResult{
				Station:      c.Arrival.StationInfo.Name,
				Time:         rfc3339(arr),
				Platform:     c.Arrival.Platform,
				DelayMinutes: delayMinutes(c.Arrival.Delay),
				Train:        c.Arrival.Vehicle,
			},
			DurationMinutes: duration,
			Transfers:       transfers,
		})

		transferStr := "Direct"
		if transfers > 0 {
			transferStr = fmt.Sprintf("%d transfer(s)", transfers)
		}
		fmt.Fprintf(&b, "  %s%s -> %s (%dmin, %s, Platform %s, %s)\n",
			clock(dep), delaySuffix(depDelay), clock(arr),
			duration, transferStr, orUnknown(c.Departure.Platform), c.Departure.Vehicle)
	}
	if len(resp.Connection) > maxConnectionResults {
		b.WriteString(andMore(len(resp.Connection)-maxConnectionResults) + "\n")
	}
	return strings.TrimRight(b.String(), "\n"), res
}

func formatTrainInfo(resp *irail.VehicleResponse, trainID string, when time.Time) (string, TrainInfoResult) {
	name := resp.Vehicle
	if name == "" {
		name = trainID
	}
	res := TrainInfoResult{
		Train: name,
		Date:  when.Format("2006-01-02"),
		Total: len(resp.Stops.Stop),
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Train %s on %s\n", name, res.Date)

	stops := resp.Stops.Stop
	if len(stops) == 0 {
		b.WriteString("No stops reported.")
		return b.String(), res
	}
	fmt.Fprintf(&b, "Stops (%d total):\n", len(stops))

	shown := stops
	if len(shown) > maxStopResults {
		shown = shown[:maxStopResults]
	}
	for _, s := range shown {
		arr := epochTime(firstNonEmpty(s.ScheduledArrivalTime, s.Time))
		dep := epochTime(firstNonEmpty(s.ScheduledDepartureTime, s.Time))
		delay := delayMinutes(firstNonEmpty(s.DepartureDelay, s.ArrivalDelay, s.Delay))
		canceled := flagSet(s.DepartureCanceled) || flagSet(s.ArrivalCanceled) || flagSet(s.Canceled)
		station := s.StationInfo.Name
		if station == "" {
			station = s.Station
		}

		res.Stops = append(res.Stops, StopResult{
			Station:      station,
			Arrival:      rfc3339(arr),
			Departure:    rfc3339(dep),
			DelayMinutes: delay,
			Platform:     s.Platform,
			Canceled:     canceled,
		})

		line := fmt.Sprintf("  - %s: %s -> %s%s (Pl. %s)",
			station, clock(arr), clock(dep), delaySuffix(delay), orUnknown(s.Platform))
		if canceled {
			line += " [CANCELED]"
		}
		b.WriteString(line + "\n")
	}
	if len(stops) > maxStopResults {
		b.WriteString(andMore(len(stops)-maxStopResults) + "\n")
	}
	return strings.TrimRight(b.String(), "\n"), res
}

func formatDisturbances(resp *irail.DisturbancesResponse) (string, DisturbancesResult) {
	var res DisturbancesResult

	var b strings.Builder
	b.WriteString("Current network status:\n")

	writeNotices := func(header, empty string, list []irail.Disturbance) []NoticeResult {
		var out []NoticeResult
		if len(list) == 0 {
			b.WriteString(empty + "\n")
			return nil
		}
		b.WriteString(header + "\n")
		shown := list
		if len(shown) > maxDisturbanceResults {
			shown = shown[:maxDisturbanceResults]
		}
		for _, d := range shown {
			out = append(out, NoticeResult{
				Title:       d.Title,
				Description: d.Description,
				Link:        d.Link,
				Timestamp:   rfc3339(epochTime(d.Timestamp)),
			})
			b.WriteString("  - " + d.Title + "\n")
			if d.Description != "" {
				b.WriteString("    " + d.Description + "\n")
			}
		}
		if len(list) > maxDisturbanceResults {
			b.WriteString(andMore(len(list)-maxDisturbanceResults) + "\n")
		}
		return out
	}

	res.Disturbances = writeNotices("Disturbances:", "No current disturbances.", resp.Disturbance)
	res.PlannedWorks = writeNotices("Planned works:", "No planned works.", resp.Planned)
	return strings.TrimRight(b.String(), "\n"), res
}

func orUnknown(s string) string {
	if s == "" {
		return "?"
	}
	return s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" && v != "0" {
			return v
		}
	}
	return ""
}
