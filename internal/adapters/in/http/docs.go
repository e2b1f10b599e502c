// Package http exposes the REST surface of the tracker: login, account
// registration and listings, order creation and lifecycle moves,
// location ingest and the customer tracking view. Handlers translate
// between wire DTOs and the application use cases; domain errors are
// mapped to HTTP status codes in one place.
package http
