// Package driven defines the driven ports: interfaces the core services
// depend on, implemented by adapters (storage, external API client).
package driven
