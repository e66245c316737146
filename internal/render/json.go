package render

import (
	"encoding/json"

	"healthsnap/internal/models"
)

// JSON serializes a report in its machine-readable form.
func JSON(report models.Report) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
