package irail

// The iRail v1 API serializes nearly every scalar as a JSON string,
// including counters, unix timestamps and boolean flags ("0"/"1").
// The types below mirror the wire format as-is; interpretation happens
// in the presentation layer.

// StationInfo describes a station as embedded in most responses.
type StationInfo struct {
	ID           string `json:"id"`
	URI          string `json:"@id"`
	Name         string `json:"name"`
	StandardName string `json:"standardname"`
	LocationX    string `json:"locationX"`
	LocationY    string `json:"locationY"`
}

// VehicleInfo describes the train operating a departure or connection leg.
type VehicleInfo struct {
	Name      string `json:"name"`
	ShortName string `json:"shortname"`
	Number    string `json:"number"`
	Type      string `json:"type"`
	URI       string `json:"@id"`
}

// PlatformInfo carries the platform name and whether it is the planned one.
type PlatformInfo struct {
	Name   string `json:"name"`
	Normal string `json:"normal"`
}

// BoardEntry is one row of a liveboard, either a departure or an arrival.
type BoardEntry struct {
	ID           string       `json:"id"`
	Delay        string       `json:"delay"`
	Station      string       `json:"station"`
	StationInfo  StationInfo  `json:"stationinfo"`
	Time         string       `json:"time"`
	Vehicle      string       `json:"vehicle"`
	VehicleInfo  VehicleInfo  `json:"vehicleinfo"`
	Platform     string       `json:"platform"`
	PlatformInfo PlatformInfo `json:"platforminfo"`
	Canceled     string       `json:"canceled"`
	Left         string       `json:"left"`
}

// DepartureBoard is the "departures" object of a liveboard response.
type DepartureBoard struct {
	Number    string       `json:"number"`
	Departure []BoardEntry `json:"departure"`
}

// ArrivalBoard is the "arrivals" object of a liveboard response.
type ArrivalBoard struct {
	Number  string       `json:"number"`
	Arrival []BoardEntry `json:"arrival"`
}

// LiveboardResponse is the payload of GET /liveboard/.
type LiveboardResponse struct {
	Version     string          `json:"version"`
	Timestamp   string          `json:"timestamp"`
	Station     string          `json:"station"`
	StationInfo StationInfo     `json:"stationinfo"`
	Departures  *DepartureBoard `json:"departures,omitempty"`
	Arrivals    *ArrivalBoard   `json:"arrivals,omitempty"`
}

// ConnectionEvent is the departure or arrival half of a connection.
type ConnectionEvent struct {
	Delay       string       `json:"delay"`
	Station     string       `json:"station"`
	StationInfo StationInfo  `json:"stationinfo"`
	Time        string       `json:"time"`
	Vehicle     string       `json:"vehicle"`
	VehicleInfo VehicleInfo  `json:"vehicleinfo"`
	Platform    string       `json:"platform"`
	Canceled    string       `json:"canceled"`
	Walking     string       `json:"walking"`
	Direction    *Direction   `json:"direction,omitempty"`
	PlatformInfo PlatformInfo `json:"platforminfo"`
}

// Direction is the headsign of a leg.
type Direction struct {
	Name string `json:"name"`
}

// Via is one intermediate transfer of a connection.
type Via struct {
	ID          string          `json:"id"`
	Station     string          `json:"station"`
	StationInfo StationInfo     `json:"stationinfo"`
	Vehicle     string          `json:"vehicle"`
	Arrival     ConnectionEvent `json:"arrival"`
	Departure   ConnectionEvent `json:"departure"`
	TimeBetween string          `json:"timebetween"`
}

// Vias is the transfer list of a connection.
type Vias struct {
	Number string `json:"number"`
	Via    []Via  `json:"via"`
}

// Connection is one journey option between two stations.
type Connection struct {
	ID        string          `json:"id"`
	Departure ConnectionEvent `json:"departure"`
	Arrival   ConnectionEvent `json:"arrival"`
	Duration  string          `json:"duration"`
	Vias      *Vias           `json:"vias,omitempty"`
}

// ConnectionsResponse is the payload of GET /connections/.
type ConnectionsResponse struct {
	Version    string       `json:"version"`
	Timestamp  string       `json:"timestamp"`
	Connection []Connection `json:"connection"`
}

// Stop is one halt of a vehicle.
type Stop struct {
	ID                     string      `json:"id"`
	Station                string      `json:"station"`
	StationInfo            StationInfo `json:"stationinfo"`
	Time                   string      `json:"time"`
	Delay                  string      `json:"delay"`
	Platform               string      `json:"platform"`
	Canceled               string      `json:"canceled"`
	ScheduledArrivalTime   string      `json:"scheduledArrivalTime"`
	ScheduledDepartureTime string      `json:"scheduledDepartureTime"`
	ArrivalDelay           string      `json:"arrivalDelay"`
	DepartureDelay         string      `json:"departureDelay"`
	ArrivalCanceled        string      `json:"arrivalCanceled"`
	DepartureCanceled      string      `json:"departureCanceled"`
	Left                   string      `json:"left"`
	Arrived                string      `json:"arrived"`
	IsExtraStop            string      `json:"isExtraStop"`
}

// StopList is the "stops" object of a vehicle response.
type StopList struct {
	Number string `json:"number"`
	Stop   []Stop `json:"stop"`
}

// VehicleResponse is the payload of GET /vehicle/.
type VehicleResponse struct {
	Version     string      `json:"version"`
	Timestamp   string      `json:"timestamp"`
	Vehicle     string      `json:"vehicle"`
	VehicleInfo VehicleInfo `json:"vehicleinfo"`
	Stops       StopList    `json:"stops"`
}

// Disturbance is one disruption or planned work notice.
type Disturbance struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Type        string `json:"type"`
	Timestamp   string `json:"timestamp"`
}

// DisturbancesResponse is the payload of GET /disturbances/.
type DisturbancesResponse struct {
	Version     string        `json:"version"`
	Timestamp   string        `json:"timestamp"`
	Disturbance []Disturbance `json:"disturbance"`
	Planned     []Disturbance `json:"planned"`
}

// Station is one entry of the full station list.
type Station struct {
	ID           string `json:"id"`
	URI          string `json:"@id"`
	Name         string `json:"name"`
	StandardName string `json:"standardname"`
	LocationX    string `json:"locationX"`
	LocationY    string `json:"locationY"`
}

// StationsResponse is the payload of GET /stations/.
type StationsResponse struct {
	Version   string    `json:"version"`
	Timestamp string    `json:"timestamp"`
	Station   []Station `json:"station"`
}
