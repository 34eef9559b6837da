// Package github implements the external API adapter for the ingestion
// pipeline: principal type resolution, paginated repository listing and
// quota admission control.
//
// # Architecture
//
// The package implements the driven port [driven.RepositoryService]
// and comprises the following components:
//
//   - Client: go-github wrapper with error translation
//   - RateLimiter: dual-strategy quota gate (proactive token bucket plus
//     reactive header-driven low-water check)
//   - fetcher: page-cursor listing loop with partial-failure salvage
//   - resolver: individual/group account type resolution
//
// # Authentication
//
// A Personal Access Token raises the quota ceiling to 5,000 requests per
// hour. Without a token the client runs anonymously against 60 requests
// per hour; it never fails for lack of credentials.
//
// # Quota handling
//
// RateLimiter.Wait is called before every page request, and rate limit
// headers are recorded from every response. When the remaining budget
// drops below the low-water mark, Wait sleeps until the reported reset
// instant plus a small margin. All waits honour context cancellation.
package github
