package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v80/github"

	"github.com/ledgerline-labs/harvest-cli/internal/core/domain"
	"github.com/ledgerline-labs/harvest-cli/internal/logger"
)

// ListOwnerRepositories fetches all repositories for a principal,
// most-recently-updated first.
//
// Partial-failure policy: a principal unknown to the API is a normal
// empty result, and a transient error on page N returns pages 1..N-1
// without an error. Ordering beyond the requested sort is not assumed;
// the underlying data can mutate between page requests, so items
// straddling a page boundary follow at-least-once semantics.
func (c *Client) ListOwnerRepositories(
	ctx context.Context, login string, typ domain.AccountType,
) ([]domain.Repository, error) {
	var all []domain.Repository
	page := 1

	for {
		select {
		case <-ctx.Done():
			return all, ctx.Err()
		default:
		}

		if err := c.quota.Wait(ctx); err != nil {
			return all, fmt.Errorf("quota wait: %w", err)
		}

		repos, resp, err := c.listPage(ctx, login, typ, page)
		c.updateQuota(resp)
		if err != nil {
			if ctx.Err() != nil {
				return all, ctx.Err()
			}
			werr := c.wrapError(err, "list repositories")
			if IsNotFound(werr) {
				logger.Debug("github: principal %s not found, treating as empty", login)
				return all, nil
			}
			logger.Warn("github: page %d for %s failed, keeping %d fetched repos: %v",
				page, login, len(all), werr)
			return all, nil
		}

		if len(repos) == 0 {
			break
		}

		for _, r := range repos {
			all = append(all, mapRepository(login, r))
		}
		logger.Debug("github: fetched page %d for %s (%d repos so far)", page, login, len(all))
		page++
	}

	return all, nil
}

// listPage issues one listing request for the endpoint family matching
// the account type. The two families are not interchangeable.
func (c *Client) listPage(
	ctx context.Context, login string, typ domain.AccountType, page int,
) ([]*gh.Repository, *gh.Response, error) {
	list := gh.ListOptions{Page: page, PerPage: c.pageSize}

	if typ == domain.AccountGroup {
		opts := &gh.RepositoryListByOrgOptions{
			Sort:        "updated",
			ListOptions: list,
		}
		return c.gh.Repositories.ListByOrg(ctx, login, opts)
	}

	opts := &gh.RepositoryListByUserOptions{
		Sort:        "updated",
		ListOptions: list,
	}
	return c.gh.Repositories.ListByUser(ctx, login, opts)
}

// mapRepository converts the API response shape into the domain type
// at the boundary, so raw API structs never travel into the pipeline.
func mapRepository(login string, r *gh.Repository) domain.Repository {
	owner := r.GetOwner().GetLogin()
	if owner == "" {
		owner = login
	}

	return domain.Repository{
		Owner:         owner,
		Name:          r.GetName(),
		FullName:      r.GetFullName(),
		Description:   r.GetDescription(),
		URL:           r.GetHTMLURL(),
		Language:      r.GetLanguage(),
		Stars:         r.GetStargazersCount(),
		Forks:         r.GetForksCount(),
		Size:          r.GetSize(),
		Topics:        r.Topics,
		DefaultBranch: r.GetDefaultBranch(),
		Archived:      r.GetArchived(),
		Disabled:      r.GetDisabled(),
		Fork:          r.GetFork(),
		CreatedAt:     r.GetCreatedAt().Time,
		UpdatedAt:     r.GetUpdatedAt().Time,
		PushedAt:      r.GetPushedAt().Time,
	}
}
