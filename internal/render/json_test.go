package render

import (
	"encoding/json"
	"testing"
	"time"

	"healthsnap/internal/models"
)

func sampleReport() models.Report {
	used := 92.0
	free := 8.0
	return models.Report{
		GeneratedAt: time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC),
		Sections: []models.Section{
			{
				Title:    "System",
				Domain:   models.DomainSystem,
				Severity: models.SeverityInfo,
				Data:     &models.SystemInfo{ComputerName: "box", OSVersion: "linux 6.1", Uptime: "3d 1h 59m"},
			},
			{
				Title:    "Volumes: Critical (max used 92.0%, min free 8.0%, warn 85%, crit 90%)",
				Domain:   models.DomainVolumes,
				Severity: models.SeverityError,
				Data: map[string]models.VolumeStatus{
					"/": {TotalGB: 100, UsedGB: 92, FreeGB: 8, UsedPct: &used, FreePct: &free, Severity: models.SeverityError, Status: "Critical"},
				},
			},
		},
	}
}

func TestJSONContract(t *testing.T) {
	t.Parallel()

	payload, err := JSON(sampleReport())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	generated, ok := decoded["GeneratedAt"].(string)
	if !ok || generated != "2026-08-25T10:30:00Z" {
		t.Fatalf("GeneratedAt = %v", decoded["GeneratedAt"])
	}

	sections, ok := decoded["Sections"].([]interface{})
	if !ok || len(sections) != 2 {
		t.Fatalf("Sections = %v", decoded["Sections"])
	}

	first := sections[0].(map[string]interface{})
	for _, key := range []string{"Title", "Data", "Severity"} {
		if _, present := first[key]; !present {
			t.Fatalf("section missing key %q", key)
		}
	}
	if first["Severity"] != "info" {
		t.Fatalf("severity = %v", first["Severity"])
	}
	// The domain tag is internal and must stay off the wire.
	if _, present := first["Domain"]; present {
		t.Fatal("Domain leaked into the JSON form")
	}

	second := sections[1].(map[string]interface{})
	if second["Severity"] != "error" {
		t.Fatalf("severity = %v", second["Severity"])
	}
	volumes := second["Data"].(map[string]interface{})
	root := volumes["/"].(map[string]interface{})
	for _, key := range []string{"TotalGB", "UsedGB", "FreeGB", "UsedPct", "FreePct", "Severity", "Status"} {
		if _, present := root[key]; !present {
			t.Fatalf("volume record missing key %q", key)
		}
	}
	if root["UsedPct"].(float64) != 92 {
		t.Fatalf("UsedPct = %v", root["UsedPct"])
	}
}
