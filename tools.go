package irailmcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/railtools/irail-mcp/irail"
	"github.com/railtools/irail-mcp/stations"
)

// Toolset holds the shared dependencies of the tool handlers.
type Toolset struct {
	client *irail.Client
	index  *stations.Index
	lang   string
	now    func() time.Time
}

// NewToolset wires a toolset from its dependencies. defaultLang applies
// whenever a call omits the lang parameter.
func NewToolset(client *irail.Client, index *stations.Index, defaultLang string) *Toolset {
	if defaultLang == "" {
		defaultLang = irail.DefaultLanguage
	}
	return &Toolset{
		client: client,
		index:  index,
		lang:   defaultLang,
		now:    time.Now,
	}
}

func (ts *Toolset) language(lang string) string {
	if lang == "" {
		return ts.lang
	}
	return lang
}

// invalidArgument reports a validation failure as a tool-level error result
// without reaching the network.
func invalidArgument(err error) *mcp.CallToolResult {
	return errorResult(fmt.Sprintf("%s: %v", irail.KindInvalidArgument, err))
}

// upstreamError maps a client failure to a tool-level error result.
func upstreamError(action string, err error) *mcp.CallToolResult {
	var ie *irail.Error
	if errors.As(err, &ie) {
		return errorResult(fmt.Sprintf("%s: %s failed: %s", ie.Kind, action, ie.Msg))
	}
	return errorResult(fmt.Sprintf("%s failed: %v", action, err))
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: "Error: " + msg}},
	}
}

func textResult(text string, structured any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content:           []mcp.Content{&mcp.TextContent{Text: text}},
		StructuredContent: structured,
	}
}

func decodeArgs(req *mcp.CallToolRequest, out any) error {
	if len(req.Params.Arguments) == 0 {
		return nil
	}
	if err := json.Unmarshal(req.Params.Arguments, out); err != nil {
		return fmt.Errorf("malformed arguments: %w", err)
	}
	return nil
}

func (ts *Toolset) handleSearchStations(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args SearchStationsArgs
	if err := decodeArgs(req, &args); err != nil {
		return invalidArgument(err), nil
	}
	args.Query = strings.TrimSpace(args.Query)
	if err := validateArgs(args); err != nil {
		return invalidArgument(err), nil
	}

	matches := ts.index.Search(args.Query)
	if len(matches) == 0 {
		// The embedded dataset is curated; fall back to the full upstream
		// station list before reporting no results.
		remote, err := ts.remoteSearch(ctx, args.Query, ts.language(args.Lang))
		if err != nil {
			return upstreamError("station search", err), nil
		}
		matches = remote
	}

	text, structured := formatStations(args.Query, matches)
	return textResult(text, structured), nil
}

// remoteSearch filters the upstream /stations/ list with the same folded
// substring matching the offline index uses.
func (ts *Toolset) remoteSearch(ctx context.Context, query, lang string) ([]stations.Station, error) {
	resp, err := ts.client.Stations(ctx, lang)
	if err != nil {
		return nil, err
	}
	folded := stations.Fold(query)
	var matches []stations.Station
	for _, s := range resp.Station {
		if !strings.Contains(stations.Fold(s.Name+" "+s.StandardName), folded) {
			continue
		}
		matches = append(matches, stations.Station{
			URI:       s.URI,
			Name:      s.Name,
			Longitude: s.LocationX,
			Latitude:  s.LocationY,
		})
	}
	return matches, nil
}

func (ts *Toolset) handleGetLiveboard(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args LiveboardArgs
	if err := decodeArgs(req, &args); err != nil {
		return invalidArgument(err), nil
	}
	args.Station = strings.TrimSpace(args.Station)
	if err := validateArgs(args); err != nil {
		return invalidArgument(err), nil
	}
	when, err := parseWhen(args.Date, args.Time, ts.now())
	if err != nil {
		return invalidArgument(err), nil
	}

	resp, err := ts.client.Liveboard(ctx, args.Station, when, args.Arrival, ts.language(args.Lang))
	if err != nil {
		return upstreamError("liveboard lookup", err), nil
	}
	text, structured := formatLiveboard(resp, args.Arrival, when)
	return textResult(text, structured), nil
}

func (ts *Toolset) handleFindConnections(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args ConnectionsArgs
	if err := decodeArgs(req, &args); err != nil {
		return invalidArgument(err), nil
	}
	args.FromStation = strings.TrimSpace(args.FromStation)
	args.ToStation = strings.TrimSpace(args.ToStation)
	if err := validateArgs(args); err != nil {
		return invalidArgument(err), nil
	}
	when, err := parseWhen(args.Date, args.Time, ts.now())
	if err != nil {
		return invalidArgument(err), nil
	}

	resp, err := ts.client.Connections(ctx, args.FromStation, args.ToStation, when, args.ArrivalTime, ts.language(args.Lang))
	if err != nil {
		return upstreamError("connection search", err), nil
	}
	text, structured := formatConnections(resp, args.FromStation, args.ToStation, when, args.ArrivalTime)
	return textResult(text, structured), nil
}

func (ts *Toolset) handleGetTrainInfo(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args TrainInfoArgs
	if err := decodeArgs(req, &args); err != nil {
		return invalidArgument(err), nil
	}
	if err := validateArgs(args); err != nil {
		return invalidArgument(err), nil
	}
	trainID, err := normalizeTrainID(args.TrainID)
	if err != nil {
		return invalidArgument(err), nil
	}
	when, err := parseWhen(args.Date, "", ts.now())
	if err != nil {
		return invalidArgument(err), nil
	}

	resp, err := ts.client.Vehicle(ctx, trainID, when, ts.language(args.Lang))
	if err != nil {
		return upstreamError("train lookup", err), nil
	}
	text, structured := formatTrainInfo(resp, trainID, when)
	return textResult(text, structured), nil
}

func (ts *Toolset) handleGetDisturbances(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args DisturbancesArgs
	if err := decodeArgs(req, &args); err != nil {
		return invalidArgument(err), nil
	}
	if err := validateArgs(args); err != nil {
		return invalidArgument(err), nil
	}

	resp, err := ts.client.Disturbances(ctx, ts.language(args.Lang))
	if err != nil {
		return upstreamError("disturbances lookup", err), nil
	}
	text, structured := formatDisturbances(resp)
	return textResult(text, structured), nil
}

// logToolError is kept around the handlers so upstream failures show up on
// stderr even though they are returned, not raised.
func logToolError(tool string, res *mcp.CallToolResult) {
	if res == nil || !res.IsError || len(res.Content) == 0 {
		return
	}
	if tc, ok := res.Content[0].(*mcp.TextContent); ok {
		log.Printf("%s: %s", tool, tc.Text)
	}
}
