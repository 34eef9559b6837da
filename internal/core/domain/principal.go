package domain

import "time"

// AccountType distinguishes the two listing endpoint families.
type AccountType string

const (
	// AccountIndividual is a personal account.
	AccountIndividual AccountType = "individual"

	// AccountGroup is an organisation account.
	AccountGroup AccountType = "group"
)

// ProcessingStatus is the recorded outcome of a principal's last run.
type ProcessingStatus string

const (
	StatusPending   ProcessingStatus = "pending"
	StatusSucceeded ProcessingStatus = "succeeded"
	StatusFailed    ProcessingStatus = "failed"
)

// Principal is an external account whose repositories are ingested.
// Rows are created by the flagging collaborator (or the flag command);
// the pipeline reads flagged principals and writes back outcomes.
type Principal struct {
	// Login is the stable external identifier.
	Login string

	// ProcessingRequested marks the principal for the next pass.
	// Always cleared when a result is recorded, success or not.
	ProcessingRequested bool

	// LastProcessed is when a result was last recorded. Nil until first run.
	LastProcessed *time.Time

	// RepoCount is the repository count from the last successful run.
	// Nil until first run.
	RepoCount *int

	// Status is the last recorded outcome.
	Status ProcessingStatus

	// StatusMessage holds the failure reason when Status is failed.
	StatusMessage string

	// CreatedAt is when the principal row was created.
	CreatedAt time.Time

	// UpdatedAt is when the principal row was last updated.
	UpdatedAt time.Time
}
