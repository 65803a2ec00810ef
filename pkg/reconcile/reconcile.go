// Package reconcile implements the reconciliation engine: matching
// marketplace export rows to ERP records by SKU and resolving final
// price, quantity and availability values under the owning platform's
// policy. Rows are edited in place and re-emitted in original input
// order; every column the rules do not touch passes through unchanged.
package reconcile

import (
	"context"
	"strings"

	"github.com/agentstation/utc"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jugandoyeducando/marketmaster/pkg/catalog"
	"github.com/jugandoyeducando/marketmaster/pkg/errors"
	"github.com/jugandoyeducando/marketmaster/pkg/logging"
	"github.com/jugandoyeducando/marketmaster/pkg/platforms"
)

// Stats summarizes one reconciliation run.
type Stats struct {
	// Rows is the number of marketplace rows processed.
	Rows int

	// Matched counts rows whose SKU found at least one ERP record.
	Matched int

	// Unmatched counts SKU-bearing rows resolved through fallbacks.
	Unmatched int

	// Groups counts listing groups (listing policy only).
	Groups int
}

// Result is the outcome of one run: the reconciled table in original
// input order, projected onto the platform's column schema.
type Result struct {
	RunID       string
	Platform    string
	Table       *catalog.Table
	Stats       Stats
	StartedAt   utc.Time
	CompletedAt utc.Time
}

// Engine reconciles one marketplace table against one ERP record set.
type Engine interface {
	Reconcile(ctx context.Context, table *catalog.Table, records *catalog.RecordSet) (*Result, error)
}

// engine is the default Engine implementation.
type engine struct {
	cfg platforms.Config
	log zerolog.Logger
}

// Option configures an Engine.
type Option func(*engine) error

// WithLogger sets the engine's logger.
func WithLogger(l zerolog.Logger) Option {
	return func(e *engine) error {
		e.log = l
		return nil
	}
}

// New creates an Engine for a platform configuration.
func New(cfg platforms.Config, opts ...Option) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &engine{
		cfg: cfg,
		log: *logging.Default(),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Reconcile runs the platform's resolution policy over the table. The
// table is modified in place; the returned result references it.
func (e *engine) Reconcile(ctx context.Context, table *catalog.Table, records *catalog.RecordSet) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if table == nil || records == nil {
		return nil, errors.NewConfigError(e.cfg.ID, "reconcile needs a table and a record set", nil)
	}

	runID := uuid.NewString()
	startedAt := utc.Now()
	log := e.log.With().
		Str("run_id", runID).
		Str("platform", e.cfg.ID).
		Logger()
	log.Info().
		Int("rows", table.Len()).
		Int("records", records.Len()).
		Msg("Reconciling export")

	var stats Stats
	switch e.cfg.Policy {
	case platforms.PolicyListing:
		stats = e.resolveListings(table, records)
	case platforms.PolicyStore:
		stats = e.resolveStores(table, records)
	case platforms.PolicyDirect:
		stats = e.resolveDirect(table, records)
	default:
		return nil, errors.NewConfigError(e.cfg.ID, "unknown policy "+string(e.cfg.Policy), nil)
	}

	e.position(table)

	completedAt := utc.Now()
	log.Info().
		Int("matched", stats.Matched).
		Int("unmatched", stats.Unmatched).
		Int("groups", stats.Groups).
		Dur("duration", completedAt.Sub(startedAt)).
		Msg("Reconciliation complete")

	return &Result{
		RunID:       runID,
		Platform:    e.cfg.ID,
		Table:       table,
		Stats:       stats,
		StartedAt:   startedAt,
		CompletedAt: completedAt,
	}, nil
}

// rowSKU extracts the row's normalized matching key: trimmed, seller
// prefix stripped. ok is false when the cell carries no SKU.
func (e *engine) rowSKU(row *catalog.Row) (string, bool) {
	sku, ok := catalog.NormalizeSKU(row.Cell(e.cfg.SKUCol))
	if !ok {
		return "", false
	}
	if e.cfg.SKUPrefix != "" {
		sku = strings.TrimPrefix(sku, e.cfg.SKUPrefix)
	}
	return sku, true
}
