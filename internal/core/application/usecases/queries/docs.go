// Package queries contains the read operations of the system: account
// listings, per-role order views and the customer tracking view. Query
// handlers read snapshots from the store ports and never mutate state;
// they serve as the pull backstop when the real-time channel is down.
package queries
