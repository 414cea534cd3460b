package middleware // middleware provides shared request processing for handlers

import (
    "net/http" // http package defines standard HTTP status codes

    "github.com/labstack/echo/v4" // echo provides middleware chaining and context
)

// ScopePerformancesRead grants read access to performance search.
const ScopePerformancesRead = "performances.read-only"

// RequireScope returns a middleware that lets a request through only when
// the token carries at least one of the given scopes.  It assumes JWTAuth
// has stored the token's scopes under "scopes".  Otherwise the request is
// aborted with 403 Forbidden.
func RequireScope(scopes ...string) echo.MiddlewareFunc {
    allowed := make(map[string]bool, len(scopes))
    for _, s := range scopes {
        allowed[s] = true
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            granted, _ := c.Get("scopes").([]string)
            for _, s := range granted {
                if allowed[s] {
                    return next(c)
                }
            }
            return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
        }
    }
}
