package commands

import (
	"errors"

	"tracker/internal/pkg/guard"
)

var ErrDispatchPartnerCommandIsNotConstructed = errors.New(
	"DispatchPartnerCommand must be created via NewDispatchPartnerCommand constructor",
)

// DispatchPartnerCommand triggers automatic assignment of the oldest
// pending order to the best available delivery partner. It carries no
// parameters; the dispatch job fires it on a schedule.
type DispatchPartnerCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchPartnerCommand creates a command to trigger auto dispatch.
func NewDispatchPartnerCommand() DispatchPartnerCommand {
	return DispatchPartnerCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c DispatchPartnerCommand) Validate() error {
	return c.guard.Validate(ErrDispatchPartnerCommandIsNotConstructed)
}
