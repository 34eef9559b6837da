package driven

import (
	"context"

	"github.com/ledgerline-labs/harvest-cli/internal/core/domain"
)

// PrincipalStore is the flagging store: it holds the principals marked
// for processing and records per-principal outcomes.
type PrincipalStore interface {
	// SelectPending returns all principals whose processing flag is set,
	// in insertion order so repeated runs make deterministic progress.
	SelectPending(ctx context.Context) ([]domain.Principal, error)

	// Get retrieves one principal by login.
	// Returns domain.ErrNotFound if the principal does not exist.
	Get(ctx context.Context, login string) (*domain.Principal, error)

	// List returns all principals in insertion order.
	List(ctx context.Context) ([]domain.Principal, error)

	// SetFlag sets or clears the processing flag, creating the principal
	// row if it does not exist yet.
	SetFlag(ctx context.Context, login string, requested bool) error

	// RecordResult writes back a run outcome: status, message, repository
	// count and last-processed time. The processing flag is always
	// cleared, regardless of outcome.
	RecordResult(ctx context.Context, result domain.ProcessingResult) error
}
