// internal/dashboard/dashboard.go
// Package dashboard runs the end-to-end pipeline: load the benchmark
// export, aggregate it and write the requested outputs.
package dashboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MMIthomas/SAE303/internal/appconfig"
	"github.com/MMIthomas/SAE303/internal/dataset"
	"github.com/MMIthomas/SAE303/internal/export"
	"github.com/MMIthomas/SAE303/internal/logging"
	"github.com/MMIthomas/SAE303/internal/metrics"
	"github.com/MMIthomas/SAE303/internal/report"
	"github.com/MMIthomas/SAE303/internal/util"
	"github.com/google/uuid"
	"github.com/k0kubun/pp"
	"gopkg.in/yaml.v3"
)

// Result lists what Build wrote.
type Result struct {
	ReportID     string
	HTMLPath     string
	AnalysisPath string
	Charts       []string
}

// LoadAnalysis reads the configured dataset and aggregates it. Schema
// problems are logged as warnings; rows that do not decode are skipped.
func LoadAnalysis(cfg appconfig.Config) (metrics.Analysis, error) {
	path := cfg.InputPath()
	raw, err := os.ReadFile(path)
	if err != nil {
		return metrics.Analysis{}, fmt.Errorf("unable to read dataset %s: %w", path, err)
	}

	if err := dataset.Validate(raw); err != nil {
		var verr *dataset.ValidationError
		if !errors.As(err, &verr) {
			return metrics.Analysis{}, fmt.Errorf("unable to check dataset %s: %w", path, err)
		}
		logging.Warn("dataset does not match the export schema", "path", path, "problems", len(verr.Problems))
		for _, p := range verr.Problems {
			logging.Debug("schema problem", "problem", p)
		}
	}

	doc, err := dataset.Parse(raw)
	if err != nil {
		return metrics.Analysis{}, fmt.Errorf("unable to parse dataset %s: %w", path, err)
	}
	records := dataset.TableResults(doc)
	logging.Debug("dataset loaded", "path", path, "sections", len(doc), "records", len(records))

	a := metrics.Analyze(records, metrics.Options{
		RadarSolvers:    cfg.RadarSolverList(),
		RadarFamilies:   cfg.RadarFamilyLimit(),
		HeatmapFamilies: cfg.HeatmapFamilyLimit(),
		ScatterLimit:    cfg.ScatterPointLimit(),
		Source:          doc.SourceName(),
	})
	logging.LogPayload("analysis summary", a.Summary)
	return a, nil
}

// Dump pretty-prints the headline figures of a for debugging.
func Dump(w io.Writer, a metrics.Analysis) {
	pp.Fprintln(w, a.Summary)
	pp.Fprintln(w, a.AverageTimes)
	pp.Fprintln(w, a.StatusCounts)
}

// Build loads the dataset named by cfg and writes the HTML dashboard, plus
// the analysis dump and static charts when configured. A line per written
// artefact is reported on out.
func Build(cfg appconfig.Config, out io.Writer) (Result, error) {
	layout, err := report.ParseLayout(cfg.LayoutName())
	if err != nil {
		return Result{}, err
	}
	var format export.Format
	if cfg.ChartsDir != "" {
		if format, err = export.ParseFormat(cfg.ChartFormatName()); err != nil {
			return Result{}, err
		}
	}

	a, err := LoadAnalysis(cfg)
	if err != nil {
		return Result{}, err
	}
	if cfg.Debug {
		Dump(out, a)
	}

	res := Result{ReportID: uuid.NewString(), HTMLPath: cfg.HTMLPath()}
	page, err := report.Generate(a, report.Options{
		Title:    cfg.Title,
		Layout:   layout,
		ReportID: res.ReportID,
	})
	if err != nil {
		return res, err
	}
	if err := util.WriteFile(res.HTMLPath, []byte(page)); err != nil {
		return res, fmt.Errorf("unable to write dashboard: %w", err)
	}
	logging.LogEvent("dashboard written to %s (layout %s, report %s)", res.HTMLPath, layout, res.ReportID)
	fmt.Fprintf(out, "Dashboard written to %s\n", res.HTMLPath)

	if p := strings.TrimSpace(cfg.AnalysisOutput); p != "" {
		if err := WriteAnalysis(p, a); err != nil {
			return res, err
		}
		res.AnalysisPath = p
		fmt.Fprintf(out, "Analysis written to %s\n", p)
	}

	if cfg.ChartsDir != "" {
		paths, err := export.Charts(a, cfg.ChartsDir, format)
		res.Charts = paths
		if err != nil {
			return res, err
		}
		fmt.Fprintf(out, "%d chart(s) exported to %s\n", len(paths), cfg.ChartsDir)
	}
	return res, nil
}

// WriteAnalysis writes a to path as YAML when the extension is .yaml or
// .yml and as indented JSON otherwise.
func WriteAnalysis(path string, a metrics.Analysis) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(a)
	default:
		data, err = json.MarshalIndent(a, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("encode analysis: %w", err)
	}
	if err := util.WriteFile(path, data); err != nil {
		return fmt.Errorf("unable to write analysis: %w", err)
	}
	return nil
}
