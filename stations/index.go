package stations

import (
	_ "embed"
	"encoding/json"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

//go:embed data/stations.json
var rawStations []byte

// Station is one entry of the bundled dataset.
type Station struct {
	URI           string `json:"uri"`
	Name          string `json:"name"`
	AlternativeFR string `json:"alternative_fr,omitempty"`
	AlternativeNL string `json:"alternative_nl,omitempty"`
	AlternativeDE string `json:"alternative_de,omitempty"`
	AlternativeEN string `json:"alternative_en,omitempty"`
	Longitude     string `json:"longitude"`
	Latitude      string `json:"latitude"`
	CountryCode   string `json:"country_code"`
}

// Alternatives returns the non-empty name variants of the station.
func (s Station) Alternatives() []string {
	var names []string
	for _, n := range []string{s.AlternativeFR, s.AlternativeNL, s.AlternativeDE, s.AlternativeEN} {
		if n != "" {
			names = append(names, n)
		}
	}
	return names
}

// Index is a searchable in-memory station list.
type Index struct {
	stations []Station
	folded   []string
}

// NewIndex builds the search index from the embedded dataset.
func NewIndex() (*Index, error) {
	return newIndexFrom(rawStations)
}

func newIndexFrom(data []byte) (*Index, error) {
	var list []Station
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	ix := &Index{
		stations: list,
		folded:   make([]string, len(list)),
	}
	for i, s := range list {
		names := append([]string{s.Name}, s.Alternatives()...)
		ix.folded[i] = Fold(strings.Join(names, " "))
	}
	return ix, nil
}

// Len returns the number of indexed stations.
func (ix *Index) Len() int { return len(ix.stations) }

// Search returns all stations whose name variants contain the query,
// ignoring case and accents. Exact name matches sort first.
func (ix *Index) Search(query string) []Station {
	query = Fold(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var exact, partial []Station
	for i, text := range ix.folded {
		if !strings.Contains(text, query) {
			continue
		}
		if Fold(ix.stations[i].Name) == query {
			exact = append(exact, ix.stations[i])
		} else {
			partial = append(partial, ix.stations[i])
		}
	}
	return append(exact, partial...)
}

var foldChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases s and strips diacritics ("Liège" -> "liege").
func Fold(s string) string {
	folded, _, err := transform.String(foldChain, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}
