// Package stations provides an offline index of Belgian railway stations.
//
// The dataset is embedded at build time and curated from the authoritative
// iRail/stations CSV. Lookups use accent-folded, case-insensitive substring
// matching across the Dutch/French/German/English name variants, so
// "liege" finds "Liège-Guillemins" and "brussel" finds both the Dutch and
// French spellings. UpdateDataset regenerates the embedded file.
package stations
