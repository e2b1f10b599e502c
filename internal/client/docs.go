// Package client implements the degraded-mode companions of the real-time
// channel: a Poller that re-fetches a read endpoint on a fixed cadence when
// no live connection is available, and a LocationPusher that reports
// partner positions over plain HTTP on its own schedule.
package client
