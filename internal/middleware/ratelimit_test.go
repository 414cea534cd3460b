package middleware

import (
    "net/http"
    "net/http/httptest"
    "testing"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/performance-search/internal/config"
)

func TestTokenBucket(t *testing.T) {
    rdb := newRedis(t)
    cfg := config.RateLimitConfig{
        Enabled:        true,
        Capacity:       1,
        RefillTokens:   1,
        RefillInterval: time.Minute,
        TTL:            10 * time.Minute,
        KeyStrategy:    "ip",
        Prefix:         "rl",
    }
    e := echo.New()
    e.GET("/performances", func(c echo.Context) error {
        return c.String(http.StatusOK, "ok")
    }, NewTokenBucket(cfg, rdb))

    do := func() *httptest.ResponseRecorder {
        req := httptest.NewRequest(http.MethodGet, "/performances", nil)
        req.RemoteAddr = "203.0.113.7:40000"
        rec := httptest.NewRecorder()
        e.ServeHTTP(rec, req)
        return rec
    }

    first := do()
    if first.Code != http.StatusOK {
        t.Fatalf("first request: expected 200, got %d", first.Code)
    }
    if first.Header().Get("X-RateLimit-Limit") != "1" || first.Header().Get("X-RateLimit-Remaining") != "0" {
        t.Fatalf("unexpected rate limit headers %v", first.Header())
    }
    second := do()
    if second.Code != http.StatusTooManyRequests {
        t.Fatalf("second request: expected 429, got %d", second.Code)
    }
    if second.Header().Get("Retry-After") == "" {
        t.Fatalf("expected Retry-After header")
    }
}

func TestTokenBucket_DisabledWithoutRedis(t *testing.T) {
    e := echo.New()
    e.GET("/x", func(c echo.Context) error { return c.String(http.StatusOK, "ok") },
        NewTokenBucket(config.RateLimitConfig{Enabled: true, Capacity: 1}, nil))
    for i := 0; i < 3; i++ {
        rec := httptest.NewRecorder()
        e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
        if rec.Code != http.StatusOK {
            t.Fatalf("request %d: expected 200, got %d", i, rec.Code)
        }
    }
}

func TestBuildRateKey(t *testing.T) {
    e := echo.New()
    req := httptest.NewRequest(http.MethodGet, "/performances", nil)
    req.RemoteAddr = "203.0.113.7:40000"
    c := e.NewContext(req, httptest.NewRecorder())
    c.SetPath("/performances")
    c.Set("user_id", "u1")

    cases := map[string]string{
        "ip":         "rl:ip:203.0.113.7",
        "user":       "rl:user:u1",
        "user_route": "rl:user:u1:route:GET /performances",
        "":           "rl:ip:203.0.113.7:user:u1:route:GET /performances",
    }
    for strategy, want := range cases {
        got := buildRateKey(config.RateLimitConfig{Prefix: "rl", KeyStrategy: strategy}, c)
        if got != want {
            t.Errorf("%q: expected %q, got %q", strategy, want, got)
        }
    }
}
