package driven

import (
	"context"

	"github.com/ledgerline-labs/harvest-cli/internal/core/domain"
)

// RepositoryService fetches repositories from the external API.
type RepositoryService interface {
	// ResolveAccountType determines whether a principal is an individual
	// or a group. Implementations default to individual on any failure so
	// pagination still attempts the more common endpoint shape.
	ResolveAccountType(ctx context.Context, login string) domain.AccountType

	// ListOwnerRepositories fetches all repositories for a principal,
	// most-recently-updated first. A principal unknown to the API yields
	// an empty slice and no error. A transient failure mid-pagination
	// yields the pages already accumulated and no error.
	ListOwnerRepositories(ctx context.Context, login string, typ domain.AccountType) ([]domain.Repository, error)
}
