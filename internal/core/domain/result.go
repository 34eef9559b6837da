package domain

import "time"

// RunMetadata aggregates repository facts across one principal's run.
type RunMetadata struct {
	// TotalStars is the sum of stargazer counts.
	TotalStars int

	// TotalForks is the sum of fork counts.
	TotalForks int

	// Languages is the distinct set of primary languages seen.
	Languages []string
}

// ProcessingResult summarises one principal's run. It is transient and
// consumed only by the status recorder.
type ProcessingResult struct {
	// Login identifies the principal.
	Login string

	// Success is false only when fetching or storing failed.
	// A principal the API does not know is a successful empty run.
	Success bool

	// RepoCount is the number of repositories ingested.
	RepoCount int

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration

	// Message holds the failure reason when Success is false.
	Message string

	// Metadata holds aggregate repository facts. Nil on failure.
	Metadata *RunMetadata
}
