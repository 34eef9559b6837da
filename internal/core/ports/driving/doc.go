// Package driving defines the driving ports: the use-case interfaces
// exposed by core services to the CLI adapter.
package driving
