package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"tracker/internal/auth"
	"tracker/internal/core/domain/model/kernel"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "token"

// Authenticate verifies the session token from the cookie or a bearer
// header and stores the principal in the request context. Requests
// without a valid token are rejected.
func Authenticate(tokens *auth.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			tokenStr := tokenFromRequest(ctx)
			if tokenStr == "" {
				return writeError(ctx, http.StatusUnauthorized, "missing session token")
			}

			principal, err := tokens.Parse(tokenStr)
			if err != nil {
				return writeError(ctx, http.StatusUnauthorized, "invalid session token")
			}

			request := ctx.Request()
			ctx.SetRequest(request.WithContext(auth.WithPrincipal(request.Context(), principal)))
			return next(ctx)
		}
	}
}

// RequireRole rejects authenticated callers whose role is not listed.
// Must run after Authenticate.
func RequireRole(roles ...kernel.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			principal, ok := auth.PrincipalFromContext(ctx.Request().Context())
			if !ok {
				return writeError(ctx, http.StatusUnauthorized, "missing session token")
			}
			for _, role := range roles {
				if principal.Role == role {
					return next(ctx)
				}
			}
			return writeError(ctx, http.StatusUnauthorized, "role not allowed")
		}
	}
}

func tokenFromRequest(ctx echo.Context) string {
	if cookie, err := ctx.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
