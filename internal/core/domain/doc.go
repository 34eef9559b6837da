// Package domain contains the core types of the ingestion pipeline:
// principals, repositories, knowledge entries and run results.
// The package is dependency-free; adapters map external representations
// into these types at their boundaries.
package domain
