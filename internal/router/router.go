package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/performance-search/internal/handler"    // handlers implementing each endpoint
	"github.com/iliyamo/performance-search/internal/middleware" // auth, cache and rate limit middleware
)

// RegisterRoutes registers routes that need no authentication.  Currently it
// exposes only a health check.
func RegisterRoutes(e *echo.Echo, health echo.HandlerFunc) {
	// Load balancers and monitors poll this endpoint.
	e.GET("/healthz", health)
}

// PerformanceOptions controls the middleware placed in front of the search
// route.  Nil middleware is skipped; an empty JWTSecret disables
// authentication, which is only meant for local development.
type PerformanceOptions struct {
	JWTSecret string
	RateLimit echo.MiddlewareFunc
	Cache     echo.MiddlewareFunc
}

// RegisterPerformances registers GET /performances.  When a JWT secret is
// configured, callers need a bearer token with the performances.read-only
// scope.  The rate limiter runs after authentication so it can key on the
// caller, and cached responses are only served after both.
func RegisterPerformances(e *echo.Echo, p *handler.PerformanceHandler, opts PerformanceOptions) {
	var mw []echo.MiddlewareFunc
	if opts.JWTSecret != "" {
		mw = append(mw,
			middleware.JWTAuth(opts.JWTSecret),
			middleware.RequireScope(middleware.ScopePerformancesRead),
		)
	}
	if opts.RateLimit != nil {
		mw = append(mw, opts.RateLimit)
	}
	if opts.Cache != nil {
		mw = append(mw, opts.Cache)
	}
	e.GET("/performances", p.Search, mw...)
}
