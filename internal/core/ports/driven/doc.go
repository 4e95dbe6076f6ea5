// Package driven defines the driven (outbound) port interfaces.
// These are implemented by adapters: the Google connectors and the
// config store. The core services depend on these interfaces only,
// never on the adapters themselves.
package driven
