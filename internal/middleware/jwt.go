package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "net/http" // HTTP status codes for responses
    "strings"  // string utilities for prefix checking and trimming

    "github.com/golang-jwt/jwt/v5" // JWT library for parsing and validating tokens
    "github.com/labstack/echo/v4"  // Echo framework used for defining middleware and handlers
)

// JWTAuth returns an Echo middleware that validates an HS256 Bearer access
// token and injects the token's subject and scopes into the request
// context.  Handlers and downstream middleware read them via
// c.Get("user_id") and c.Get("scopes").  Scopes come from the OAuth style
// space separated "scope" claim.
func JWTAuth(secret string) echo.MiddlewareFunc {
    parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            auth := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(auth, "Bearer ") {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
            }
            raw := strings.TrimPrefix(auth, "Bearer ")

            claims := jwt.MapClaims{}
            tok, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
                return []byte(secret), nil
            })
            if err != nil || !tok.Valid {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
            }

            // Subject may be missing for client-credential tokens; the rate
            // limiter then keys on the client id instead.
            sub, _ := claims.GetSubject()
            if sub == "" {
                if cid, ok := claims["client_id"].(string); ok {
                    sub = cid
                }
            }
            scope, _ := claims["scope"].(string)
            c.Set("user_id", sub)
            c.Set("scopes", strings.Fields(scope))
            return next(c)
        }
    }
}
