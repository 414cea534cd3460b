package middleware

// identity.go defines helper functions shared across middleware files.

import (
    "fmt"

    "github.com/labstack/echo/v4"
)

// userID returns the caller identity stored by JWTAuth, or "anon" for
// unauthenticated requests.
func userID(c echo.Context) string {
    switch v := c.Get("user_id").(type) {
    case string:
        if v != "" {
            return v
        }
    case nil:
    default:
        return fmt.Sprint(v)
    }
    return "anon"
}
