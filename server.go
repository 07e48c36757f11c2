package irailmcp

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/railtools/irail-mcp/config"
	"github.com/railtools/irail-mcp/irail"
	"github.com/railtools/irail-mcp/stations"
)

var langProperty = map[string]any{
	"type":        "string",
	"description": "Language code (en, nl, fr, de, it)",
}

// NewServer builds the MCP server and registers the five railway tools.
func NewServer(ts *Toolset, name string) *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{Name: name, Version: Version}, nil)

	register := func(tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest) (*mcp.CallToolResult, error)) {
		srv.AddTool(tool, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			res, err := handler(ctx, req)
			logToolError(tool.Name, res)
			return res, err
		})
	}

	register(&mcp.Tool{
		Name:        "search_stations",
		Description: "Search for railway stations in Belgium by name",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "Station name or partial name to search for (e.g., 'Brussels', 'Antwerp')",
				},
				"lang": langProperty,
			},
			"required": []string{"query"},
		},
	}, ts.handleSearchStations)

	register(&mcp.Tool{
		Name:        "get_liveboard",
		Description: "Get real-time departures or arrivals from a station",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"station": map[string]any{
					"type":        "string",
					"description": "Station name or URI (e.g., 'Brussels Central', 'Gent-Sint-Pieters')",
				},
				"date": map[string]any{
					"type":        "string",
					"description": "Date in format YYYY-MM-DD or relative (today, tomorrow, +2 days)",
				},
				"time": map[string]any{
					"type":        "string",
					"description": "Time in 24-hour format (e.g., '14:30')",
				},
				"arrival": map[string]any{
					"type":        "boolean",
					"description": "If true, show arrivals; if false, show departures (default: false)",
				},
				"lang": langProperty,
			},
			"required": []string{"station"},
		},
	}, ts.handleGetLiveboard)

	register(&mcp.Tool{
		Name:        "find_connections",
		Description: "Find routes between two stations with connection details",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"from_station": map[string]any{
					"type":        "string",
					"description": "Departure station name (e.g., 'Brussels')",
				},
				"to_station": map[string]any{
					"type":        "string",
					"description": "Destination station name (e.g., 'Antwerp')",
				},
				"date": map[string]any{
					"type":        "string",
					"description": "Date in format YYYY-MM-DD or relative (today, tomorrow, +2 days)",
				},
				"time": map[string]any{
					"type":        "string",
					"description": "Time in 24-hour format (e.g., '14:30')",
				},
				"arrival_time": map[string]any{
					"type":        "boolean",
					"description": "If true, time is arrival time; if false, time is departure time (default: false)",
				},
				"lang": langProperty,
			},
			"required": []string{"from_station", "to_station"},
		},
	}, ts.handleFindConnections)

	register(&mcp.Tool{
		Name:        "get_train_info",
		Description: "Get detailed information about a specific train including all stops and current delays",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"train_id": map[string]any{
					"type":        "string",
					"description": "Train ID from liveboard results (e.g., 'IC1234' or 'BE.NMBS.IC1234')",
				},
				"date": map[string]any{
					"type":        "string",
					"description": "Date in format YYYY-MM-DD (default: today)",
				},
				"lang": langProperty,
			},
			"required": []string{"train_id"},
		},
	}, ts.handleGetTrainInfo)

	register(&mcp.Tool{
		Name:        "get_disturbances",
		Description: "Get current network disruptions and planned maintenance works",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"lang": langProperty,
			},
		},
	}, ts.handleGetDisturbances)

	return srv
}

// NewToolsetFromConfig assembles the client, the offline station index and
// the toolset from the loaded application configuration.
func NewToolsetFromConfig() (*Toolset, error) {
	cfg := config.Config

	userAgent := cfg.Upstream.UserAgent
	if userAgent == "" {
		userAgent = fmt.Sprintf("%s/%s (github.com/railtools/irail-mcp)", cfg.Server.Name, Version)
	}

	client := irail.NewClient(irail.Options{
		BaseURL:           cfg.Upstream.BaseURL,
		UserAgent:         userAgent,
		Timeout:           time.Duration(cfg.Upstream.TimeoutSeconds) * time.Second,
		RequestsPerSecond: cfg.Upstream.RequestsPerSecond,
		Language:          cfg.Server.DefaultLanguage,
	})

	index, err := stations.NewIndex()
	if err != nil {
		return nil, fmt.Errorf("load station index: %w", err)
	}

	return NewToolset(client, index, cfg.Server.DefaultLanguage), nil
}

// Serve runs the MCP server on the stdio transport until ctx is canceled
// or the client disconnects.
func Serve(ctx context.Context) error {
	ts, err := NewToolsetFromConfig()
	if err != nil {
		return err
	}
	srv := NewServer(ts, config.Config.Server.Name)
	log.Printf("%s %s serving %d stations offline, upstream %s",
		config.Config.Server.Name, Version, ts.index.Len(), config.Config.Upstream.BaseURL)
	return srv.Run(ctx, &mcp.StdioTransport{})
}
