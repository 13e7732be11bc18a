package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ngmaloney/ecowatch-terminal/internal/models"
)

var climateHeader = []string{"date", "region", "temperature", "soil_moisture", "precipitation", "ndvi", "risk_level"}

// WriteClimateCSV writes records as CSV with a header row
func WriteClimateCSV(w io.Writer, records []models.ClimateRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(climateHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.Date.Format("2006-01-02"),
			string(r.Region),
			strconv.FormatFloat(r.Temperature, 'f', -1, 64),
			strconv.FormatFloat(r.SoilMoisture, 'f', -1, 64),
			strconv.FormatFloat(r.Precipitation, 'f', -1, 64),
			strconv.FormatFloat(r.NDVI, 'f', -1, 64),
			string(r.RiskLevel),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}
