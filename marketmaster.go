// Package marketmaster reconciles marketplace catalog exports against
// the authoritative ERP inventory/price extract and produces updated
// export files in each marketplace's native layout.
//
// One call to Run executes one complete reconciliation: parse the
// marketplace export and the ERP extract, resolve prices, quantities
// and availability under the platform's policy, and emit the output
// artifact(s). A run either completes or fails as a whole; no partial
// artifact is ever written.
package marketmaster

import (
	"context"

	"github.com/agentstation/utc"

	"github.com/jugandoyeducando/marketmaster/internal/csvio"
	"github.com/jugandoyeducando/marketmaster/internal/spreadsheet"
	"github.com/jugandoyeducando/marketmaster/pkg/catalog"
	"github.com/jugandoyeducando/marketmaster/pkg/erp"
	"github.com/jugandoyeducando/marketmaster/pkg/errors"
	"github.com/jugandoyeducando/marketmaster/pkg/platforms"
	"github.com/jugandoyeducando/marketmaster/pkg/reconcile"
)

// RunSpec names the inputs and output of one reconciliation run.
type RunSpec struct {
	// Platform is the registered adapter id (see platforms.IDs).
	Platform string

	// InputPath is the marketplace export (xlsx or csv per platform).
	InputPath string

	// ERPPath is the ERP extract (semicolon-separated, Latin-1).
	ERPPath string

	// OutputPath is where the reconciled artifact is written. Chunked
	// platforms derive per-part names from it.
	OutputPath string
}

// RunResult reports a completed run.
type RunResult struct {
	RunID       string
	Platform    string
	Artifacts   []string
	Records     int // normalized ERP records
	Stats       reconcile.Stats
	StartedAt   utc.Time
	CompletedAt utc.Time
}

// Run executes one reconciliation run.
func Run(ctx context.Context, spec RunSpec, opts ...Option) (*RunResult, error) {
	c := defaultConfig()
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	cfg, err := c.resolvePlatform(spec.Platform)
	if err != nil {
		return nil, err
	}
	if spec.InputPath == "" || spec.ERPPath == "" || spec.OutputPath == "" {
		return nil, errors.NewConfigError("run", "input, erp and output paths are all required", nil)
	}

	table, err := readInput(spec.InputPath, cfg)
	if err != nil {
		return nil, err
	}

	records, err := erp.ParseFile(spec.ERPPath)
	if err != nil {
		return nil, err
	}

	engine, err := reconcile.New(cfg, reconcile.WithLogger(c.logger))
	if err != nil {
		return nil, err
	}

	result, err := engine.Reconcile(ctx, table, catalog.NewRecordSet(records))
	if err != nil {
		return nil, err
	}

	artifacts, err := emit(spec, cfg, result.Table)
	if err != nil {
		return nil, err
	}

	c.logger.Info().
		Str("run_id", result.RunID).
		Str("platform", cfg.ID).
		Strs("artifacts", artifacts).
		Msg("Run complete")

	return &RunResult{
		RunID:       result.RunID,
		Platform:    cfg.ID,
		Artifacts:   artifacts,
		Records:     len(records),
		Stats:       result.Stats,
		StartedAt:   result.StartedAt,
		CompletedAt: result.CompletedAt,
	}, nil
}

// readInput parses the marketplace export into a table whose rows carry
// their original input positions.
func readInput(path string, cfg platforms.Config) (*catalog.Table, error) {
	var cells [][]string
	var err error
	switch cfg.Format {
	case platforms.FormatExcel:
		cells, err = spreadsheet.Read(path, cfg.Sheet, cfg.HeaderSkipRows)
	case platforms.FormatCSV:
		cells, err = csvio.ReadFile(path, csvio.ReadOptions{
			Comma:    cfg.Delimiter,
			SkipRows: cfg.HeaderSkipRows,
		})
	default:
		err = errors.NewConfigError(cfg.ID, "unknown input format "+string(cfg.Format), nil)
	}
	if err != nil {
		return nil, err
	}
	return catalog.NewTable(cells), nil
}

// emit writes the reconciled table in the platform's native packaging:
// back into the uploaded workbook template at the configured row
// offset, or as (possibly chunked) CSV.
func emit(spec RunSpec, cfg platforms.Config, table *catalog.Table) ([]string, error) {
	rows := make([][]string, table.Len())
	for i := 0; i < table.Len(); i++ {
		rows[i] = table.Row(i).Cells
	}

	switch cfg.Format {
	case platforms.FormatExcel:
		err := spreadsheet.WriteTemplate(spec.InputPath, spec.OutputPath, cfg.Sheet, cfg.WriteStartRow(), rows, cfg.NumericColumns())
		if err != nil {
			return nil, err
		}
		return []string{spec.OutputPath}, nil
	case platforms.FormatCSV:
		return csvio.WriteChunks(spec.OutputPath, cfg.Columns, rows, cfg.ChunkSize, csvio.WriteOptions{
			Comma: cfg.Delimiter,
			BOM:   cfg.OutputBOM,
		})
	default:
		return nil, errors.NewConfigError(cfg.ID, "unknown output format "+string(cfg.Format), nil)
	}
}
