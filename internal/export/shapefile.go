package export

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/ngmaloney/ecowatch-terminal/internal/models"
)

// Attribute columns, in DBF field order
const (
	fieldID = iota
	fieldRegion
	fieldNDVI
	fieldTemp
	fieldMoisture
	fieldRisk
	fieldVegType
)

var pointFields = []shp.Field{
	shp.StringField("ID", 16),
	shp.StringField("REGION", 64),
	shp.FloatField("NDVI", 8, 3),
	shp.FloatField("TEMP", 8, 1),
	shp.FloatField("MOISTURE", 8, 1),
	shp.StringField("RISK", 10),
	shp.StringField("VEGTYPE", 24),
}

// WriteShapefile writes points as a point shapefile. path names the .shp file;
// the .shx and .dbf files are written beside it.
func WriteShapefile(path string, points []models.VegetationDataItem) error {
	w, err := shp.Create(path, shp.POINT)
	if err != nil {
		return fmt.Errorf("creating shapefile: %w", err)
	}

	err = writePoints(w, points)
	w.Close()
	if err != nil {
		return err
	}
	return fixDBFName(path)
}

// fixDBFName moves the attribute table to <base>.dbf. go-shp v0.1.1 names it
// <base>dbf, without the dot.
func fixDBFName(path string) error {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	misnamed, want := base+"dbf", base+".dbf"

	if _, err := os.Stat(misnamed); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("checking attribute table: %w", err)
	}
	if err := os.Rename(misnamed, want); err != nil {
		return fmt.Errorf("renaming attribute table: %w", err)
	}
	return nil
}

func writePoints(w *shp.Writer, points []models.VegetationDataItem) error {
	if err := w.SetFields(pointFields); err != nil {
		return fmt.Errorf("setting shapefile fields: %w", err)
	}

	for _, p := range points {
		row := int(w.Write(&shp.Point{X: p.Coordinates.Longitude, Y: p.Coordinates.Latitude}))

		attrs := []struct {
			field int
			value interface{}
		}{
			{fieldID, p.ID},
			{fieldRegion, p.Region},
			{fieldNDVI, p.NDVIValue},
			{fieldTemp, p.Temperature},
			{fieldMoisture, p.SoilMoisture},
			{fieldRisk, string(p.RiskLevel)},
			{fieldVegType, p.VegetationType},
		}
		for _, a := range attrs {
			if err := w.WriteAttribute(row, a.field, a.value); err != nil {
				return fmt.Errorf("writing attribute %d of point %s: %w", a.field, p.ID, err)
			}
		}
	}

	return nil
}

// ReadShapefile reads points written by WriteShapefile. Dates are not stored.
func ReadShapefile(path string) ([]models.VegetationDataItem, error) {
	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening shapefile: %w", err)
	}
	defer r.Close()

	if n := len(r.Fields()); n < len(pointFields) {
		return nil, fmt.Errorf("shapefile has %d attribute fields, want %d", n, len(pointFields))
	}

	var points []models.VegetationDataItem
	for r.Next() {
		n, s := r.Shape()

		pt, ok := s.(*shp.Point)
		if !ok {
			return nil, fmt.Errorf("record %d is %T, want point", n, s)
		}

		attr := func(field int) string {
			return strings.Trim(r.ReadAttribute(n, field), " \x00")
		}
		num := func(field int) (float64, error) {
			v := attr(field)
			if v == "" {
				return 0, nil
			}
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return 0, fmt.Errorf("record %d field %d: %w", n, field, err)
			}
			return f, nil
		}

		ndvi, err := num(fieldNDVI)
		if err != nil {
			return nil, err
		}
		temp, err := num(fieldTemp)
		if err != nil {
			return nil, err
		}
		moisture, err := num(fieldMoisture)
		if err != nil {
			return nil, err
		}

		points = append(points, models.VegetationDataItem{
			ID:             attr(fieldID),
			Region:         attr(fieldRegion),
			NDVIValue:      ndvi,
			Temperature:    temp,
			SoilMoisture:   moisture,
			RiskLevel:      models.RiskLevel(attr(fieldRisk)),
			VegetationType: attr(fieldVegType),
			Coordinates:    models.Coordinates{Latitude: pt.Y, Longitude: pt.X},
		})
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("reading shapefile: %w", err)
	}

	return points, nil
}
