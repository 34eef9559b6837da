package driving

import (
	"context"
	"time"

	"github.com/ledgerline-labs/harvest-cli/internal/core/domain"
)

// Ingestor drives the ingestion pipeline.
type Ingestor interface {
	// ProcessAllMarked runs one pass over all flagged principals.
	// Per-principal failures are recorded in the flagging store, not
	// returned; only selector or store-connection failures return an error.
	ProcessAllMarked(ctx context.Context) error

	// ProcessPrincipal runs the pipeline for a single principal and
	// returns the outcome. It does not touch the processing flag.
	ProcessPrincipal(ctx context.Context, login string) domain.ProcessingResult

	// Monitor loops ProcessAllMarked until ctx is cancelled, sleeping
	// interval between passes. Continuous execution is opt-in.
	Monitor(ctx context.Context, interval time.Duration) error
}
