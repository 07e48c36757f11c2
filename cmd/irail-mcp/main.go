package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	irailmcp "github.com/railtools/irail-mcp"
	"github.com/railtools/irail-mcp/config"
	"github.com/railtools/irail-mcp/stations"
)

var rootCmd = &cobra.Command{
	Use:           "irail-mcp",
	Short:         "MCP server exposing Belgian railway data from the iRail API",
	Version:       irailmcp.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the railway tools over MCP stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		return irailmcp.Serve(cmd.Context())
	},
}

var updateOutput string

var updateStationsCmd = &cobra.Command{
	Use:   "update-stations",
	Short: "Regenerate the bundled station dataset from the iRail stations CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := &http.Client{Timeout: 30 * time.Second}
		n, err := stations.UpdateDataset(cmd.Context(), client, config.Config.Stations.CSVURL, updateOutput)
		if err != nil {
			return err
		}
		fmt.Printf("wrote %d stations to %s\n", n, updateOutput)
		return nil
	},
}

func main() {
	irailmcp.InitLogging()
	if err := config.LoadAppConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	updateStationsCmd.Flags().StringVarP(&updateOutput, "output", "o", "stations/data/stations.json", "output path for the generated JSON")
	rootCmd.AddCommand(serveCmd, updateStationsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
