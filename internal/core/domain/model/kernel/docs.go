// Package kernel provides the shared value objects of the tracking domain:
// entity identifiers, participant roles and geographic coordinates.
//
// Everything in this package is immutable after construction. Zero values
// are invalid and fail Validate; use the constructor functions.
package kernel
