package stations

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// DefaultCSVURL is the authoritative station list maintained by iRail.
const DefaultCSVURL = "https://raw.githubusercontent.com/iRail/stations/master/stations.csv"

// UpdateDataset downloads the stations CSV, converts it to the bundled JSON
// shape and writes it to outPath. Rows without a name are skipped. It
// returns the number of stations written.
func UpdateDataset(ctx context.Context, client *http.Client, csvURL, outPath string) (int, error) {
	if client == nil {
		client = http.DefaultClient
	}
	if csvURL == "" {
		csvURL = DefaultCSVURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, csvURL, nil)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch %s: %w", csvURL, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("HTTP %d from %s", resp.StatusCode, csvURL)
	}

	list, err := parseCSV(resp.Body)
	if err != nil {
		return 0, err
	}

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return 0, err
	}
	if err := os.WriteFile(outPath, append(data, '\n'), 0o644); err != nil {
		return 0, err
	}
	return len(list), nil
}

func parseCSV(r io.Reader) ([]Station, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}
	col := map[string]int{}
	for i, name := range header {
		col[name] = i
	}
	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var list []Station
	for {
		row, err := cr.Read()
		if err != nil {
			break
		}
		s := Station{
			URI:           field(row, "URI"),
			Name:          field(row, "name"),
			AlternativeFR: field(row, "alternative-fr"),
			AlternativeNL: field(row, "alternative-nl"),
			AlternativeDE: field(row, "alternative-de"),
			AlternativeEN: field(row, "alternative-en"),
			Longitude:     field(row, "longitude"),
			Latitude:      field(row, "latitude"),
			CountryCode:   field(row, "country-code"),
		}
		if s.Name == "" {
			continue
		}
		list = append(list, s)
	}
	return list, nil
}
