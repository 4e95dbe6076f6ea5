// Package services implements the driving port interfaces.
// Services contain the core business logic: session lifecycle,
// request translation and partial-failure aggregation. They
// orchestrate calls to driven ports (adapters) and are pure Go
// with no external dependencies.
package services
