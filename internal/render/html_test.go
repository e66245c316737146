package render

import (
	"strings"
	"testing"
	"time"

	"healthsnap/internal/models"
)

func TestHTMLRendersSections(t *testing.T) {
	t.Parallel()

	page, err := HTML(sampleReport())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	html := string(page)

	if !strings.Contains(html, "<h2>System</h2>") {
		t.Fatal("system section title missing")
	}
	if !strings.Contains(html, "sev-info") || !strings.Contains(html, "sev-error") {
		t.Fatal("severity shading classes missing")
	}
	if !strings.Contains(html, "3d 1h 59m") {
		t.Fatal("system key/value rows missing")
	}
	// Volumes render as a grid with one row per mountpoint.
	if !strings.Contains(html, "<td>/</td>") || !strings.Contains(html, "<td>92.00%</td>") {
		t.Fatal("volume table row missing")
	}
	if !strings.Contains(html, "Critical") {
		t.Fatal("volume status missing")
	}
}

func TestHTMLRendersProbeError(t *testing.T) {
	t.Parallel()

	report := models.Report{
		GeneratedAt: time.Now(),
		Sections: []models.Section{
			{
				Title:    "Physical Disks",
				Domain:   models.DomainPhysicalDisks,
				Severity: models.SeverityWarn,
				Data: &models.ProbeError{
					Error:    true,
					Message:  "enumeration blew up",
					Category: "ProbeFault",
					Id:       "healthsnap.probe.physicaldisks",
				},
			},
		},
	}

	page, err := HTML(report)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	html := string(page)
	if !strings.Contains(html, "sev-warn") {
		t.Fatal("warn shading missing")
	}
	if !strings.Contains(html, "enumeration blew up") {
		t.Fatal("error message missing")
	}
}

func TestHTMLRendersCapabilityNote(t *testing.T) {
	t.Parallel()

	report := models.Report{
		GeneratedAt: time.Now(),
		Sections: []models.Section{
			{
				Title:    "Physical Disks",
				Domain:   models.DomainPhysicalDisks,
				Severity: models.SeverityInfo,
				Data:     models.CapabilityNote{Info: "smartctl not installed; physical disk health unavailable"},
			},
		},
	}

	page, err := HTML(report)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(string(page), "smartctl not installed") {
		t.Fatal("capability note missing")
	}
}

func TestHTMLJoinsPerCoreValues(t *testing.T) {
	t.Parallel()

	load := 45.0
	report := models.Report{
		GeneratedAt: time.Now(),
		Sections: []models.Section{
			{
				Title:    "CPU",
				Domain:   models.DomainCPU,
				Severity: models.SeverityInfo,
				Data: &models.CPUStatus{
					ProcessorName: "cpu0",
					CoreCount:     2,
					LoadPercent:   &load,
					PerCore:       []float64{40.5, 49.5},
				},
			},
		},
	}

	page, err := HTML(report)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(string(page), "40.5, 49.5") {
		t.Fatal("per-core values not joined comma-separated")
	}
}
