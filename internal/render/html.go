package render

import (
	"bytes"
	"fmt"
	"html/template"
	"sort"
	"strconv"
	"strings"
	"time"

	"healthsnap/internal/models"
)

// htmlSection is one report section flattened for the template: either a
// key/value listing or a tabular grid, chosen by the section's domain tag.
type htmlSection struct {
	Title string
	Class string
	Rows  [][2]string
	Table htmlTable
}

type htmlTable struct {
	Headers []string
	Rows    [][]string
}

type htmlReport struct {
	GeneratedAt string
	Sections    []htmlSection
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Host Health Report</title>
<style>
body { font-family: sans-serif; margin: 2em; background: #ffffff; color: #222; }
h1 { margin-bottom: 0.2em; }
p.generated { color: #666; margin-top: 0; }
div.section { border-radius: 6px; padding: 1em 1.2em; margin: 1em 0; }
div.sev-info { background: #f2f2f2; }
div.sev-warn { background: #fff3cd; }
div.sev-error { background: #f8d7da; }
h2 { margin: 0 0 0.5em 0; font-size: 1.1em; }
table { border-collapse: collapse; }
table.kv th { text-align: left; padding: 2px 14px 2px 0; font-weight: 600; }
table.kv td { padding: 2px 0; }
table.grid th, table.grid td { text-align: left; padding: 3px 14px 3px 0; }
table.grid th { border-bottom: 1px solid #999; }
</style>
</head>
<body>
<h1>Host Health Report</h1>
<p class="generated">Generated {{.GeneratedAt}}</p>
{{range .Sections}}<div class="section {{.Class}}">
<h2>{{.Title}}</h2>
{{if .Rows}}<table class="kv">
{{range .Rows}}<tr><th>{{index . 0}}</th><td>{{index . 1}}</td></tr>
{{end}}</table>
{{end}}{{if .Table.Headers}}<table class="grid">
<tr>{{range .Table.Headers}}<th>{{.}}</th>{{end}}</tr>
{{range .Table.Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</table>
{{end}}</div>
{{end}}</body>
</html>
`))

// HTML renders a report as a standalone severity-shaded document.
func HTML(report models.Report) ([]byte, error) {
	page := htmlReport{
		GeneratedAt: report.GeneratedAt.Format(time.RFC3339),
	}
	for _, section := range report.Sections {
		page.Sections = append(page.Sections, sectionView(section))
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, page); err != nil {
		return nil, fmt.Errorf("rendering report: %w", err)
	}
	return buf.Bytes(), nil
}

// severityClass maps a severity to the CSS class shading its block.
func severityClass(severity models.Severity) string {
	switch severity {
	case models.SeverityError:
		return "sev-error"
	case models.SeverityWarn:
		return "sev-warn"
	default:
		return "sev-info"
	}
}

func sectionView(section models.Section) htmlSection {
	view := htmlSection{
		Title: section.Title,
		Class: severityClass(section.Severity),
	}

	if failure, ok := section.Data.(*models.ProbeError); ok && failure != nil {
		view.Rows = [][2]string{
			{"Error", failure.Message},
			{"Category", failure.Category},
			{"Id", failure.Id},
		}
		return view
	}

	switch section.Domain {
	case models.DomainSystem:
		if info, ok := section.Data.(*models.SystemInfo); ok && info != nil {
			view.Rows = [][2]string{
				{"Computer Name", info.ComputerName},
				{"User Name", info.UserName},
				{"OS Version", info.OSVersion},
				{"Administrator", strconv.FormatBool(info.IsAdmin)},
				{"Uptime", info.Uptime},
				{"Timestamp", info.Timestamp},
			}
		}

	case models.DomainCPU:
		if status, ok := section.Data.(*models.CPUStatus); ok && status != nil {
			load := "n/a"
			if status.LoadPercent != nil {
				load = fmt.Sprintf("%.2f%%", *status.LoadPercent)
			}
			view.Rows = [][2]string{
				{"Processor", status.ProcessorName},
				{"Cores", strconv.Itoa(status.CoreCount)},
				{"Load", load},
				{"Per Core", joinPercents(status.PerCore)},
			}
		}

	case models.DomainMemory:
		if status, ok := section.Data.(*models.MemoryStatus); ok && status != nil {
			view.Rows = [][2]string{
				{"Total GB", formatGB(status.TotalGB)},
				{"Used GB", formatGB(status.UsedGB)},
				{"Free GB", formatGB(status.FreeGB)},
				{"Used %", fmt.Sprintf("%.2f%%", status.UsedPct)},
				{"Free %", fmt.Sprintf("%.2f%%", status.FreePct)},
				{"Status", status.Status},
			}
		}

	case models.DomainVolumes:
		if volumes, ok := section.Data.(map[string]models.VolumeStatus); ok {
			view.Table = volumesTable(volumes)
		}

	case models.DomainPhysicalDisks:
		if note, ok := section.Data.(models.CapabilityNote); ok {
			view.Rows = [][2]string{{"Info", note.Info}}
		} else if disks, ok := section.Data.(map[string]models.PhysicalDiskStatus); ok {
			view.Table = disksTable(disks)
		}
	}

	return view
}

func volumesTable(volumes map[string]models.VolumeStatus) htmlTable {
	table := htmlTable{
		Headers: []string{"Volume", "Total GB", "Used GB", "Free GB", "Used %", "Free %", "Status"},
	}
	for _, id := range sortedKeysVolumes(volumes) {
		volume := volumes[id]
		table.Rows = append(table.Rows, []string{
			id,
			formatGB(volume.TotalGB),
			formatGB(volume.UsedGB),
			formatGB(volume.FreeGB),
			formatPctPtr(volume.UsedPct),
			formatPctPtr(volume.FreePct),
			volume.Status,
		})
	}
	return table
}

func disksTable(disks map[string]models.PhysicalDiskStatus) htmlTable {
	table := htmlTable{
		Headers: []string{"Disk", "Health", "Operational", "Media Type", "Size GB"},
	}
	for _, name := range sortedKeysDisks(disks) {
		disk := disks[name]
		table.Rows = append(table.Rows, []string{
			name,
			disk.HealthStatus,
			disk.OperationalStatus,
			disk.MediaType,
			formatGB(disk.SizeGB),
		})
	}
	return table
}

func sortedKeysVolumes(volumes map[string]models.VolumeStatus) []string {
	keys := make([]string, 0, len(volumes))
	for key := range volumes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func sortedKeysDisks(disks map[string]models.PhysicalDiskStatus) []string {
	keys := make([]string, 0, len(disks))
	for key := range disks {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func formatGB(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}

func formatPctPtr(value *float64) string {
	if value == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", *value)
}

func joinPercents(values []float64) string {
	if len(values) == 0 {
		return "n/a"
	}
	parts := make([]string, len(values))
	for i, value := range values {
		parts[i] = fmt.Sprintf("%.1f", value)
	}
	return strings.Join(parts, ", ")
}
