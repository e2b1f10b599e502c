// Package services provides domain services that coordinate business
// operations across multiple aggregates.
//
// The package includes:
//   - PartnerDispatcher: selects the best available delivery partner for an order
package services
