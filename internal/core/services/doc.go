// Package services contains the core pipeline logic: the repository
// classifier, knowledge entry rendering and the ingestion orchestrator.
// Services depend only on domain types and the driven ports.
package services
