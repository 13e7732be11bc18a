package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ngmaloney/ecowatch-terminal/internal/models"
)

// WriteAlertsJSON writes alerts as an indented JSON array
func WriteAlertsJSON(w io.Writer, alerts []models.Alert) error {
	if alerts == nil {
		alerts = []models.Alert{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(alerts); err != nil {
		return fmt.Errorf("encoding alerts: %w", err)
	}
	return nil
}
