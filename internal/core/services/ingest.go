package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ledgerline-labs/harvest-cli/internal/core/domain"
	"github.com/ledgerline-labs/harvest-cli/internal/core/ports/driven"
	"github.com/ledgerline-labs/harvest-cli/internal/core/ports/driving"
	"github.com/ledgerline-labs/harvest-cli/internal/logger"
)

// DefaultPolitenessDelay is the pause between principals within a pass,
// so the external service is not hit in bursts.
const DefaultPolitenessDelay = 2 * time.Second

// Ingestor sequences the pipeline per principal: resolve account type,
// fetch repositories, classify, upsert, record outcome. Principals are
// processed sequentially; the quota gate's state is the only shared
// mutable resource and only one request is in flight at a time.
type Ingestor struct {
	principals driven.PrincipalStore
	knowledge  driven.KnowledgeStore
	repos      driven.RepositoryService
	delay      time.Duration
}

var _ driving.Ingestor = (*Ingestor)(nil)

// NewIngestor creates the pipeline orchestrator. delay < 0 selects
// DefaultPolitenessDelay; zero disables the pause (tests).
func NewIngestor(
	principals driven.PrincipalStore,
	knowledge driven.KnowledgeStore,
	repos driven.RepositoryService,
	delay time.Duration,
) *Ingestor {
	if delay < 0 {
		delay = DefaultPolitenessDelay
	}
	return &Ingestor{
		principals: principals,
		knowledge:  knowledge,
		repos:      repos,
		delay:      delay,
	}
}

// ProcessAllMarked runs one pass over all flagged principals.
// Per-principal outcomes, failures included, are recorded in the
// flagging store and never abort the batch.
func (s *Ingestor) ProcessAllMarked(ctx context.Context) error {
	pending, err := s.principals.SelectPending(ctx)
	if err != nil {
		return fmt.Errorf("selecting pending principals: %w", err)
	}

	if len(pending) == 0 {
		logger.Info("ingest: no principals flagged for processing")
		return nil
	}

	logger.Section("Processing flagged principals")
	logger.Info("ingest: %d principal(s) flagged", len(pending))

	for i, p := range pending {
		result := s.ProcessPrincipal(ctx, p.Login)

		if err := s.principals.RecordResult(ctx, result); err != nil {
			logger.Warn("ingest: recording result for %s: %v", p.Login, err)
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}

		// Politeness delay between principals, not after the last one.
		if i < len(pending)-1 && s.delay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(s.delay):
			}
		}
	}

	return nil
}

// ProcessPrincipal runs the pipeline for one principal. A principal the
// API does not know yields a successful empty result; only fetch
// cancellation and store write failures fail the run.
func (s *Ingestor) ProcessPrincipal(ctx context.Context, login string) domain.ProcessingResult {
	start := time.Now()

	typ := s.repos.ResolveAccountType(ctx, login)
	logger.Debug("ingest: %s resolved as %s", login, typ)

	repositories, err := s.repos.ListOwnerRepositories(ctx, login, typ)
	if err != nil {
		return failure(login, start, fmt.Errorf("fetching repositories: %w", err))
	}

	meta := domain.RunMetadata{}
	languages := map[string]bool{}

	for _, repo := range repositories {
		cls := Classify(repo)
		entry := BuildEntry(repo, cls)

		if err := s.knowledge.Upsert(ctx, entry); err != nil {
			return failure(login, start, fmt.Errorf("storing %s: %w", repo.FullName, err))
		}

		meta.TotalStars += repo.Stars
		meta.TotalForks += repo.Forks
		if repo.Language != "" {
			languages[repo.Language] = true
		}
	}

	for lang := range languages {
		meta.Languages = append(meta.Languages, lang)
	}
	sort.Strings(meta.Languages)

	logger.Info("ingest: %s done, %d repos in %s", login, len(repositories),
		time.Since(start).Round(time.Millisecond))

	return domain.ProcessingResult{
		Login:     login,
		Success:   true,
		RepoCount: len(repositories),
		Elapsed:   time.Since(start),
		Metadata:  &meta,
	}
}

// Monitor loops single passes until ctx is cancelled, sleeping interval
// between passes. Continuous execution is explicitly opt-in.
func (s *Ingestor) Monitor(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("%w: monitor interval must be positive", domain.ErrInvalidInput)
	}

	for {
		if err := s.ProcessAllMarked(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.Warn("ingest: pass failed: %v", err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}

func failure(login string, start time.Time, err error) domain.ProcessingResult {
	logger.Warn("ingest: %s failed: %v", login, err)
	return domain.ProcessingResult{
		Login:   login,
		Success: false,
		Elapsed: time.Since(start),
		Message: err.Error(),
	}
}
