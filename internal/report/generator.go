// Package report provides plan and result output for shamv runs.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/sivchari/shamv/internal/config"
	"github.com/sivchari/shamv/internal/rename"
)

// Status values for a file result.
const (
	StatusPlanned   = "planned"
	StatusRenamed   = "renamed"
	StatusUnchanged = "unchanged"
	StatusError     = "error"
)

// Generator handles report generation.
type Generator struct {
	config *config.Config
	out    io.Writer

	arrowStyle lipgloss.Style
	destStyle  lipgloss.Style
}

// Result is the outcome for one input file.
type Result struct {
	rename.Plan `yaml:",inline"`

	Status string `json:"status" yaml:"status"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Summary contains the complete results of a run.
type Summary struct {
	Algorithm  string     `json:"algorithm" yaml:"algorithm"`
	DryRun     bool       `json:"dryRun" yaml:"dryRun"`
	Results    []Result   `json:"results" yaml:"results"`
	Statistics Statistics `json:"statistics" yaml:"statistics"`
}

// Statistics contains aggregated counts per status.
type Statistics struct {
	Planned   int `json:"planned" yaml:"planned"`
	Renamed   int `json:"renamed" yaml:"renamed"`
	Unchanged int `json:"unchanged" yaml:"unchanged"`
	Errors    int `json:"errors" yaml:"errors"`
}

// New creates a new report generator writing to out.
func New(cfg *config.Config, out io.Writer) (*Generator, error) {
	switch cfg.OutputFormat {
	case config.FormatText, config.FormatJSON, config.FormatYAML:
	default:
		return nil, fmt.Errorf("%w %q", config.ErrInvalidFormat, cfg.OutputFormat)
	}

	return &Generator{
		config:     cfg,
		out:        out,
		arrowStyle: lipgloss.NewStyle().Faint(true),
		destStyle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
	}, nil
}

// Generate writes the summary in the configured format.
func (g *Generator) Generate(summary *Summary) error {
	summary.Statistics = calculateStatistics(summary.Results)

	switch g.config.OutputFormat {
	case config.FormatJSON:
		return g.generateJSON(summary)
	case config.FormatYAML:
		return g.generateYAML(summary)
	default:
		return g.generateText(summary)
	}
}

func calculateStatistics(results []Result) Statistics {
	stats := Statistics{}

	for _, result := range results {
		switch result.Status {
		case StatusPlanned:
			stats.Planned++
		case StatusRenamed:
			stats.Renamed++
		case StatusUnchanged:
			stats.Unchanged++
		case StatusError:
			stats.Errors++
		}
	}

	return stats
}

func (g *Generator) generateJSON(summary *Summary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	if _, err := fmt.Fprintln(g.out, string(data)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

func (g *Generator) generateYAML(summary *Summary) error {
	enc := yaml.NewEncoder(g.out)
	enc.SetIndent(2)

	if err := enc.Encode(summary); err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	return enc.Close()
}

// generateText prints one preview line per file in dry-run mode and stays
// silent in execute mode; failures are reported on stderr by the caller.
func (g *Generator) generateText(summary *Summary) error {
	if !summary.DryRun {
		return nil
	}

	for _, result := range summary.Results {
		if _, err := fmt.Fprintln(g.out, g.formatLine(result.Plan)); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	return nil
}

func (g *Generator) formatLine(plan rename.Plan) string {
	arrow, dest := "→", plan.Destination
	if g.config.Color {
		arrow = g.arrowStyle.Render(arrow)
		dest = g.destStyle.Render(dest)
	}

	return fmt.Sprintf("%s %s %s", plan.Source, arrow, dest)
}
