package queries

import (
	"errors"

	"tracker/internal/pkg/guard"
)

var ErrGetVendorsQueryIsNotConstructed = errors.New(
	"GetVendorsQuery must be created via NewGetVendorsQuery constructor",
)

// GetVendorsQuery retrieves all registered vendors.
type GetVendorsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetVendorsQuery creates a parameterless vendor listing query.
func NewGetVendorsQuery() GetVendorsQuery {
	return GetVendorsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetVendorsQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorsQueryIsNotConstructed)
}
