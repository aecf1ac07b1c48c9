package cmd

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/conneroisu/pencraft/internal/config"
	"github.com/conneroisu/pencraft/internal/services"
	"github.com/conneroisu/pencraft/internal/version"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose configuration and document health",
	Long: `Check the configuration, the document and the generation passes, and
suggest what to run next.

Examples:
  pencraft doctor
  pencraft doctor -o yaml`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

var doctorFormat string

// DiagnosticResult is one line of the doctor report.
type DiagnosticResult struct {
	Name       string `json:"name" yaml:"name"`
	Category   string `json:"category" yaml:"category"`
	Status     string `json:"status" yaml:"status"` // "ok", "warning", "error", "info"
	Message    string `json:"message" yaml:"message"`
	Suggestion string `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// DoctorReport is the complete diagnostic report.
type DoctorReport struct {
	Timestamp   time.Time             `json:"timestamp" yaml:"timestamp"`
	Environment map[string]string     `json:"environment" yaml:"environment"`
	Results     []DiagnosticResult    `json:"results" yaml:"results"`
	Passes      []services.PassStatus `json:"passes,omitempty" yaml:"passes,omitempty"`
	Summary     ReportSummary         `json:"summary" yaml:"summary"`
}

// ReportSummary counts results by status.
type ReportSummary struct {
	Total    int `json:"total" yaml:"total"`
	OK       int `json:"ok" yaml:"ok"`
	Warnings int `json:"warnings" yaml:"warnings"`
	Errors   int `json:"errors" yaml:"errors"`
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	AddOutputFlag(doctorCmd, &doctorFormat, "text", "yaml")
}

func runDoctor(cmd *cobra.Command, args []string) error {
	report := &DoctorReport{
		Timestamp: time.Now(),
		Environment: map[string]string{
			"version":  version.GetBuildInfo().Short(),
			"go":       runtime.Version(),
			"platform": runtime.GOOS + "/" + runtime.GOARCH,
			"config":   viper.ConfigFileUsed(),
		},
	}

	a, err := loadApp(cmd)
	if err != nil {
		report.add(DiagnosticResult{
			Name:     "configuration",
			Category: "config",
			Status:   "error",
			Message:  err.Error(),
		})
		return finishDoctor(cmd.OutOrStdout(), report)
	}

	diagnoseConfig(a.config, report)
	diagnoseDocument(cmd, a, report)
	return finishDoctor(cmd.OutOrStdout(), report)
}

func diagnoseConfig(cfg *config.Config, report *DoctorReport) {
	result := config.ValidateConfigWithDetails(cfg)
	if !result.HasErrors() && !result.HasWarnings() {
		report.add(DiagnosticResult{Name: "configuration", Category: "config", Status: "ok", Message: "configuration is valid"})
	}
	for _, issue := range result.Errors {
		report.add(DiagnosticResult{Name: issue.Field, Category: "config", Status: "error", Message: issue.Message})
	}
	for _, issue := range result.Warnings {
		d := DiagnosticResult{Name: issue.Field, Category: "config", Status: "warning", Message: issue.Message}
		if len(issue.Suggestions) > 0 {
			d.Suggestion = issue.Suggestions[len(issue.Suggestions)-1]
		}
		report.add(d)
	}
}

func diagnoseDocument(cmd *cobra.Command, a *app, report *DoctorReport) {
	if !a.service.Store().Exists() {
		return
	}
	check, err := a.service.Check(cmd.Context(), services.CheckOptions{Bands: true})
	if err != nil {
		report.add(DiagnosticResult{
			Name:       "document",
			Category:   "document",
			Status:     "error",
			Message:    err.Error(),
			Suggestion: "pencraft generate --force",
		})
		return
	}
	report.Passes = check.Passes

	status := "ok"
	if check.HasErrors() {
		status = "error"
	}
	report.add(DiagnosticResult{
		Name:     "document",
		Category: "document",
		Status:   status,
		Message:  fmt.Sprintf("%s shape, %d pages, %d nodes, %d findings", check.Shape, check.Pages, check.Nodes, len(check.Findings)),
	})

	for _, p := range check.Passes {
		switch {
		case p.Done:
			report.add(DiagnosticResult{Name: p.Name, Category: "passes", Status: "ok", Message: "recorded in the ledger"})
		case p.Ready:
			report.add(DiagnosticResult{
				Name:       p.Name,
				Category:   "passes",
				Status:     "info",
				Message:    "ready to run",
				Suggestion: "pencraft extend " + p.Name,
			})
		default:
			report.add(DiagnosticResult{
				Name:     p.Name,
				Category: "passes",
				Status:   "info",
				Message:  fmt.Sprintf("waiting on %v", p.Missing),
			})
		}
	}
}

func (r *DoctorReport) add(d DiagnosticResult) {
	r.Results = append(r.Results, d)
	r.Summary.Total++
	switch d.Status {
	case "ok":
		r.Summary.OK++
	case "warning":
		r.Summary.Warnings++
	case "error":
		r.Summary.Errors++
	}
}

func finishDoctor(out io.Writer, report *DoctorReport) error {
	if doctorFormat == "yaml" {
		data, err := yaml.Marshal(report)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	icons := map[string]string{"ok": "✓", "warning": "!", "error": "✗", "info": "·"}
	category := ""
	for _, d := range report.Results {
		if d.Category != category {
			category = d.Category
			fmt.Fprintf(out, "\n%s\n", category)
		}
		fmt.Fprintf(out, "  %s %s: %s\n", icons[d.Status], d.Name, d.Message)
		if d.Suggestion != "" {
			fmt.Fprintf(out, "      → %s\n", d.Suggestion)
		}
	}
	fmt.Fprintf(out, "\n%d checks: %d ok, %d warnings, %d errors\n",
		report.Summary.Total, report.Summary.OK, report.Summary.Warnings, report.Summary.Errors)
	return nil
}
