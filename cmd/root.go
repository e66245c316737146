package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"healthsnap/internal/config"
	"healthsnap/internal/models"
	"healthsnap/internal/render"
	"healthsnap/internal/services"

	"github.com/spf13/cobra"
)

var (
	outputPath string
	asJSON     bool
	toStdout   bool
)

var rootCmd = &cobra.Command{
	Use:   "healthsnap",
	Short: "Collect local host health metrics and render a report",
	Long: `healthsnap probes the local host (system identity, CPU, memory, volumes,
physical disk health), classifies each metric against fixed thresholds and
writes a severity-shaded HTML report or its machine-readable JSON form.

The exit code reflects the worst severity found:
  0  everything normal
  2  at least one warning
  3  at least one critical finding`,
	SilenceUsage: true,
	RunE:         runReport,
}

func init() {
	rootCmd.Flags().BoolVar(&asJSON, "json", false, "Emit the machine-readable JSON form")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Report output path (default: ~/healthsnap-report.html)")
	rootCmd.Flags().BoolVar(&toStdout, "stdout", false, "Print the report to stdout instead of writing a file")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	report := services.BuildReport()

	var payload []byte
	if asJSON {
		payload, err = render.JSON(report)
	} else {
		payload, err = render.HTML(report)
	}
	if err != nil {
		return err
	}

	if toStdout {
		if _, err := cmd.OutOrStdout().Write(payload); err != nil {
			return err
		}
	} else {
		path, err := resolveOutputPath(outputPath, cfg, asJSON)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, payload, 0644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
	}

	if code := exitCodeFor(report.WorstSeverity()); code != 0 {
		os.Exit(code)
	}
	return nil
}

// exitCodeFor maps the report's worst severity onto the process exit code:
// 0 all normal, 2 warning present, 3 critical present.
func exitCodeFor(worst models.Severity) int {
	switch worst {
	case models.SeverityError:
		return 3
	case models.SeverityWarn:
		return 2
	default:
		return 0
	}
}

// resolveOutputPath picks the report destination: explicit flag, then
// config, then a home-relative default matching the output form.
func resolveOutputPath(flagPath string, cfg *config.Config, asJSON bool) (string, error) {
	if flagPath != "" {
		return config.ExpandHome(flagPath), nil
	}
	if cfg.OutputPath != "" {
		return config.ExpandHome(cfg.OutputPath), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	name := "healthsnap-report.html"
	if asJSON {
		name = "healthsnap-report.json"
	}
	return filepath.Join(home, name), nil
}
