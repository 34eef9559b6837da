package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ledgerline-labs/harvest-cli/internal/core/domain"
	"github.com/ledgerline-labs/harvest-cli/internal/core/ports/driven"
)

// principalStore implements driven.PrincipalStore.
type principalStore struct {
	store *Store
}

var _ driven.PrincipalStore = (*principalStore)(nil)

const principalColumns = `login, processing_requested, last_processed, repo_count,
	status, status_message, created_at, updated_at`

// SelectPending returns flagged principals in insertion order (rowid),
// so repeated passes make deterministic progress.
func (s *principalStore) SelectPending(ctx context.Context) ([]domain.Principal, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT `+principalColumns+`
		FROM principals WHERE processing_requested = 1
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("querying pending principals: %w", err)
	}
	defer rows.Close()

	return scanPrincipals(rows)
}

// Get retrieves one principal by login.
func (s *principalStore) Get(ctx context.Context, login string) (*domain.Principal, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT `+principalColumns+`
		FROM principals WHERE login = ?
	`, login)

	p, err := scanPrincipal(row)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// List returns all principals in insertion order.
func (s *principalStore) List(ctx context.Context) ([]domain.Principal, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT `+principalColumns+`
		FROM principals ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("querying principals: %w", err)
	}
	defer rows.Close()

	return scanPrincipals(rows)
}

// SetFlag sets or clears the processing flag, creating the row if the
// principal is unknown.
func (s *principalStore) SetFlag(ctx context.Context, login string, requested bool) error {
	if login == "" {
		return domain.ErrInvalidInput
	}

	now := time.Now().UTC().Format(timeFormat)
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO principals (login, processing_requested, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(login) DO UPDATE SET
			processing_requested = excluded.processing_requested,
			updated_at = excluded.updated_at
	`, login, boolToInt(requested), string(domain.StatusPending), now, now)

	if err != nil {
		return fmt.Errorf("setting flag for %s: %w", login, err)
	}
	return nil
}

// RecordResult writes back a run outcome. The processing flag is always
// cleared, success or not, so an unreachable principal is not retried
// until it is re-flagged.
func (s *principalStore) RecordResult(ctx context.Context, result domain.ProcessingResult) error {
	if result.Login == "" {
		return domain.ErrInvalidInput
	}

	status := domain.StatusSucceeded
	// A failed run keeps the last known repository count.
	var repoCount any
	if result.Success {
		repoCount = result.RepoCount
	} else {
		status = domain.StatusFailed
	}

	now := time.Now().UTC().Format(timeFormat)
	res, err := s.store.db.ExecContext(ctx, `
		UPDATE principals SET
			processing_requested = 0,
			status = ?,
			status_message = ?,
			repo_count = COALESCE(?, repo_count),
			last_processed = ?,
			updated_at = ?
		WHERE login = ?
	`, string(status), nullString(result.Message), repoCount, now, now, result.Login)

	if err != nil {
		return fmt.Errorf("recording result for %s: %w", result.Login, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("recording result for %s: %w", result.Login, err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --- scanning ---

type principalScanner interface {
	Scan(dest ...any) error
}

func scanPrincipal(row principalScanner) (*domain.Principal, error) {
	var (
		p             domain.Principal
		requested     int
		lastProcessed sql.NullString
		repoCount     sql.NullInt64
		statusMessage sql.NullString
		createdAt     string
		updatedAt     string
	)

	err := row.Scan(&p.Login, &requested, &lastProcessed, &repoCount,
		(*string)(&p.Status), &statusMessage, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	p.ProcessingRequested = requested != 0
	p.StatusMessage = statusMessage.String

	if p.LastProcessed, err = parseNullableTime(lastProcessed); err != nil {
		return nil, err
	}
	if repoCount.Valid {
		count := int(repoCount.Int64)
		p.RepoCount = &count
	}
	if p.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if p.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	return &p, nil
}

func scanPrincipals(rows *sql.Rows) ([]domain.Principal, error) {
	var principals []domain.Principal
	for rows.Next() {
		p, err := scanPrincipal(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning principal: %w", err)
		}
		principals = append(principals, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating principals: %w", err)
	}
	return principals, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
