package kernel

import (
	"tracker/internal/pkg/errs"

	"github.com/google/uuid"
)

// ID is the opaque string identifier shared by all entities in the store.
// Fresh identifiers are random UUIDs; identifiers restored from seed data
// may be any non-empty string (the demo data set uses readable ids such as
// "vendor-1"). IDs are compared byte-wise and never reused.
type ID string

// NewID generates a fresh random identifier. Collisions with existing ids
// are ruled out by the underlying UUID version 4 generation.
func NewID() ID {
	return ID(uuid.NewString())
}

// ParseID wraps a caller-supplied identifier, rejecting the empty string.
func ParseID(s string) (ID, error) {
	id := ID(s)
	if err := id.Validate(); err != nil {
		return "", err
	}
	return id, nil
}

// Validate reports whether the identifier is usable. Only the empty string
// is invalid; ids are otherwise opaque.
func (id ID) Validate() error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	return nil
}

// IsZero reports whether the identifier is the empty string.
func (id ID) IsZero() bool {
	return id == ""
}

func (id ID) String() string {
	return string(id)
}
