// Package driving defines the driving (inbound) port interfaces.
// The MCP adapter invokes the core exclusively through these.
package driving
