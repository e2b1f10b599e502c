package queries

import (
	"errors"

	"tracker/internal/pkg/guard"
)

var ErrGetPartnersQueryIsNotConstructed = errors.New(
	"GetPartnersQuery must be created via NewGetPartnersQuery constructor",
)

// GetPartnersQuery retrieves delivery partners, optionally narrowed to
// those currently accepting assignments.
type GetPartnersQuery struct {
	availableOnly bool

	guard guard.ConstructorGuard
}

// NewGetPartnersQuery creates a partner listing query.
func NewGetPartnersQuery(availableOnly bool) GetPartnersQuery {
	return GetPartnersQuery{
		availableOnly: availableOnly,
		guard:         guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetPartnersQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnersQueryIsNotConstructed)
}

// AvailableOnly reports whether offline partners are filtered out.
func (q GetPartnersQuery) AvailableOnly() bool {
	return q.availableOnly
}
