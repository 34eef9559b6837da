package github

import (
	"context"

	"github.com/ledgerline-labs/harvest-cli/internal/core/domain"
	"github.com/ledgerline-labs/harvest-cli/internal/logger"
)

// accountTypeOrganization is the API's type value for organisations.
const accountTypeOrganization = "Organization"

// ResolveAccountType determines whether a principal is an individual or
// a group, once per principal before pagination starts.
//
// Fail-open: any lookup failure resolves to individual so pagination
// still attempts the more common endpoint shape.
func (c *Client) ResolveAccountType(ctx context.Context, login string) domain.AccountType {
	if err := c.quota.Wait(ctx); err != nil {
		logger.Warn("github: quota wait during type resolution for %s: %v", login, err)
		return domain.AccountIndividual
	}

	user, resp, err := c.gh.Users.Get(ctx, login)
	c.updateQuota(resp)
	if err != nil {
		logger.Warn("github: resolving type for %s failed, defaulting to individual: %v",
			login, c.wrapError(err, "get principal"))
		return domain.AccountIndividual
	}

	if user.GetType() == accountTypeOrganization {
		return domain.AccountGroup
	}
	return domain.AccountIndividual
}
