// Package handler exposes the HTTP handlers of the performance search API.
package handler

import (
    "context"
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/performance-search/internal/search"
)

// Searcher runs a parsed performance search.
type Searcher interface {
    Search(ctx context.Context, f search.FilterSet) (search.Response, error)
}

// PerformanceHandler serves performance search.
type PerformanceHandler struct {
    Searcher Searcher
}

// NewPerformanceHandler constructs a PerformanceHandler and panics if s is nil.
func NewPerformanceHandler(s Searcher) *PerformanceHandler {
    if s == nil {
        panic("nil searcher passed to NewPerformanceHandler")
    }
    return &PerformanceHandler{Searcher: s}
}

// Search handles GET /performances.  All query parameters are optional:
// limit, page, day, section, words, start_from, theater, screen,
// performanceId and wheelchair.
func (h *PerformanceHandler) Search(c echo.Context) error {
    f, err := search.ParseFilter(c.QueryParams())
    if err != nil {
        var ife *search.InvalidFilterError
        if errors.As(err, &ife) {
            return c.JSON(http.StatusBadRequest, echo.Map{
                "error":   "invalid_filter",
                "field":   ife.Field,
                "message": ife.Error(),
            })
        }
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid_filter", "message": err.Error()})
    }

    res, err := h.Searcher.Search(c.Request().Context(), f)
    if err != nil {
        c.Logger().Errorf("performance search: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{
            "error":   "database_error",
            "message": err.Error(),
        })
    }
    return c.JSON(http.StatusOK, res)
}
