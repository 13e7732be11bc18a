// Package export writes dashboard data to files other tools can open.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ngmaloney/ecowatch-terminal/internal/dataset"
	"github.com/ngmaloney/ecowatch-terminal/internal/filter"
)

// Format is an export file format
type Format string

const (
	FormatCSV       Format = "csv"
	FormatJSON      Format = "json"
	FormatShapefile Format = "shp"
)

// Formats lists every supported format
var Formats = []Format{FormatCSV, FormatJSON, FormatShapefile}

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q (want csv, json or shp)", s)
}

// Extension returns the file extension for the format, with the dot
func (f Format) Extension() string {
	return "." + string(f)
}

// Snapshot writes the part of snap that suits the format to path: climate
// records as CSV, alerts as JSON, and vegetation plus alert map points as a
// shapefile. It returns the number of records written.
func Snapshot(f Format, path string, snap dataset.Snapshot) (int, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, fmt.Errorf("creating export directory: %w", err)
		}
	}

	switch f {
	case FormatShapefile:
		points := slices.Concat(snap.VegetationData, filter.MapPoints(snap.Alerts))
		if err := WriteShapefile(path, points); err != nil {
			return 0, err
		}
		return len(points), nil
	case FormatCSV, FormatJSON:
		file, err := os.Create(path)
		if err != nil {
			return 0, fmt.Errorf("creating %s: %w", path, err)
		}
		defer file.Close()

		if f == FormatCSV {
			if err := WriteClimateCSV(file, snap.ClimateData); err != nil {
				return 0, err
			}
			return len(snap.ClimateData), file.Close()
		}
		if err := WriteAlertsJSON(file, snap.Alerts); err != nil {
			return 0, err
		}
		return len(snap.Alerts), file.Close()
	default:
		return 0, fmt.Errorf("unknown export format %q", f)
	}
}
