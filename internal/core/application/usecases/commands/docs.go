// Package commands contains the write operations of the system: account
// registration, order creation and lifecycle moves, availability toggles
// and location ingest. Each operation is a command object validated at
// construction plus a handler that loads aggregates, applies domain
// behavior, persists through the store ports and emits real-time events.
package commands
