package commands

import (
	"errors"

	"tracker/internal/pkg/guard"
)

// SimulateMovementCommand advances every active delivery by one demo step:
// the assigned partner walks toward the pickup point, then toward the
// delivery point, and the order progresses through its lifecycle as the
// waypoints are reached. Parameterless batch command for the demo mode.
type SimulateMovementCommand struct {
	guard guard.ConstructorGuard
}

var ErrSimulateMovementCommandIsNotConstructed = errors.New(
	"SimulateMovementCommand must be created via NewSimulateMovementCommand constructor",
)

func NewSimulateMovementCommand() SimulateMovementCommand {
	return SimulateMovementCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c SimulateMovementCommand) Validate() error {
	return c.guard.Validate(ErrSimulateMovementCommandIsNotConstructed)
}
