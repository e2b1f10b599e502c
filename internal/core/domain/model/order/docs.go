// Package order implements the order aggregate and its lifecycle state
// machine for the delivery tracking domain.
//
// The package includes:
//   - Order: the aggregate root holding items, addresses, coordinates,
//     the customer snapshot and the assignment to a delivery partner
//   - Status: a string enum with an explicit transition table
//   - Item: a validated order line
//
// Key business rules:
//   - Orders start in the pending status and end in delivered or cancelled;
//     terminal orders accept no further transitions
//   - Illegal transitions are rejected with a typed error, never clamped
//   - Cancellation is permitted from any non-terminal status
//   - UpdatedAt never decreases and equals CreatedAt right after creation
package order
