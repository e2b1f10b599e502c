package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/pkg/errs"
)

// respondError maps the domain error taxonomy onto HTTP status codes.
// Internal failures never leak their message to the wire.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeError(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrUnauthorized):
		return writeError(ctx, http.StatusUnauthorized, err.Error())
	case errors.Is(err, errs.ErrIllegalTransition):
		return writeError(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, errs.ErrVersionConflict),
		errors.Is(err, commands.ErrEmailAlreadyInUse):
		return writeError(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return writeError(ctx, http.StatusBadRequest, err.Error())
	default:
		return writeError(ctx, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}
