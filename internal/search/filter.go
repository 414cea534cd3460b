package search

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// FilterSet is the parsed form of a performance search request.  Zero values
// mean "no filter": an empty string matches every value of the field, a zero
// Limit returns every match unpaged and a nil StartFrom applies no time
// window.
type FilterSet struct {
	Limit          int        // page size; 0 means unpaged
	Page           int        // 1-based page number, only used with Limit
	Day            string     // YYYYMMDD
	Section        string     // film section code
	FreeWords      []string   // tokens matched against film titles
	StartFrom      *time.Time // only performances from this instant on
	Theater        string
	Screen         string
	PerformanceID  string
	WantWheelchair bool // check for existing wheelchair reservations
}

// Skip returns the number of matches to skip for the requested page.  It
// saturates at math.MaxInt instead of overflowing.
func (f FilterSet) Skip() int {
	if f.Limit <= 0 || f.Page <= 1 {
		return 0
	}
	if f.Page-1 > math.MaxInt/f.Limit {
		return math.MaxInt
	}
	return (f.Page - 1) * f.Limit
}

// MaxLimit is the largest page size a request may ask for.
const MaxLimit = 1000

var errNotPositive = errors.New("must be a positive integer")
var errNotDay = errors.New("must be an 8-digit YYYYMMDD date")
var errLimitTooLarge = fmt.Errorf("must not exceed %d", MaxLimit)
var errPageTooLarge = errors.New("page is out of range")

// ParseFilter reads the recognized query parameters into a FilterSet.
// Absent and empty parameters are treated as not supplied.  A supplied value
// that cannot be parsed as its type yields an *InvalidFilterError.
func ParseFilter(q url.Values) (FilterSet, error) {
	f := FilterSet{Page: 1}

	if v := q.Get("limit"); v != "" {
		n, err := positiveInt("limit", v)
		if err != nil {
			return FilterSet{}, err
		}
		if n > MaxLimit {
			return FilterSet{}, &InvalidFilterError{Field: "limit", Value: v, Err: errLimitTooLarge}
		}
		f.Limit = n
	}
	if v := q.Get("page"); v != "" {
		n, err := positiveInt("page", v)
		if err != nil {
			return FilterSet{}, err
		}
		// skip = (page-1)*limit must fit in an int
		if f.Limit > 0 && n-1 > math.MaxInt/f.Limit {
			return FilterSet{}, &InvalidFilterError{Field: "page", Value: v, Err: errPageTooLarge}
		}
		f.Page = n
	}
	if v := q.Get("day"); v != "" {
		if !isDayCode(v) {
			return FilterSet{}, &InvalidFilterError{Field: "day", Value: v, Err: errNotDay}
		}
		f.Day = v
	}
	if v := q.Get("start_from"); v != "" {
		ms, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return FilterSet{}, &InvalidFilterError{Field: "start_from", Value: v, Err: err}
		}
		t := time.UnixMilli(ms)
		f.StartFrom = &t
	}

	f.Section = q.Get("section")
	f.FreeWords = Tokenize(q.Get("words"))
	f.Theater = q.Get("theater")
	f.Screen = q.Get("screen")
	f.PerformanceID = q.Get("performanceId")
	f.WantWheelchair = truthy(q.Get("wheelchair"))
	return f, nil
}

// Tokenize splits free words on whitespace, including full-width spaces.
// Leading and trailing whitespace is ignored and runs of whitespace count as
// one separator.  It returns nil when no token remains.
func Tokenize(words string) []string {
	tokens := strings.Fields(words)
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

func positiveInt(field, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, &InvalidFilterError{Field: field, Value: v, Err: err}
	}
	if n < 1 {
		return 0, &InvalidFilterError{Field: field, Value: v, Err: errNotPositive}
	}
	return n, nil
}

func isDayCode(v string) bool {
	if len(v) != 8 {
		return false
	}
	for i := 0; i < len(v); i++ {
		if v[i] < '0' || v[i] > '9' {
			return false
		}
	}
	return true
}

// truthy treats any non-empty value as true except the usual spellings of
// false ("0", "false", "no", "off", any case).  Older clients that relied on
// any non-empty value enabling the check must send e.g. "1" instead of
// "false".
func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false", "no", "off":
		return false
	}
	return true
}
