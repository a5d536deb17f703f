// Package sink provides the append-only row stores a completed
// submission is written to.
package sink

import (
	"context"
	"fmt"

	"orderbot/pkg/config"
)

// RowSink accepts one ordered list of field values per submission.
type RowSink interface {
	AppendRow(ctx context.Context, row []string) error
}

// Factory obtains a sink handle. It is called per submission and may
// fail or return nil at any point; the pipeline treats both as a
// submission failure, never a startup failure.
type Factory func(ctx context.Context) (RowSink, error)

// NewFactory returns the factory for the configured backend.
func NewFactory(cfg config.Config) (Factory, error) {
	switch cfg.Sink.Backend {
	case config.SinkSheets:
		return NewSheetsFactory(cfg.Sheets), nil
	case config.SinkPostgres:
		return NewPostgresFactory(cfg.Database), nil
	default:
		return nil, fmt.Errorf("unknown sink backend %q", cfg.Sink.Backend)
	}
}
