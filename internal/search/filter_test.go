package search

import (
	"errors"
	"math"
	"net/url"
	"strconv"
	"reflect"
	"testing"
	"time"
)

func TestParseFilter_Empty(t *testing.T) {
	f, err := ParseFilter(url.Values{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := FilterSet{Page: 1}
	if !reflect.DeepEqual(f, want) {
		t.Fatalf("expected %#v, got %#v", want, f)
	}
}

func TestParseFilter_EmptyStringsAreNoFilter(t *testing.T) {
	q := url.Values{}
	for _, k := range []string{"limit", "page", "day", "section", "words", "start_from", "theater", "screen", "performanceId", "wheelchair"} {
		q.Set(k, "")
	}
	f, err := ParseFilter(q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(f, FilterSet{Page: 1}) {
		t.Fatalf("expected no filters, got %#v", f)
	}
}

func TestParseFilter_AllFields(t *testing.T) {
	q := url.Values{
		"limit":         {"10"},
		"page":          {"2"},
		"day":           {"20240601"},
		"section":       {"01"},
		"words":         {" Alpha  Beta "},
		"start_from":    {"1717236000000"},
		"theater":       {"001"},
		"screen":        {"00101"},
		"performanceId": {"p1"},
		"wheelchair":    {"1"},
	}
	f, err := ParseFilter(q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Limit != 10 || f.Page != 2 || f.Skip() != 10 {
		t.Fatalf("unexpected paging: limit=%d page=%d skip=%d", f.Limit, f.Page, f.Skip())
	}
	if f.Day != "20240601" || f.Section != "01" || f.Theater != "001" || f.Screen != "00101" || f.PerformanceID != "p1" {
		t.Fatalf("unexpected string filters: %#v", f)
	}
	if !reflect.DeepEqual(f.FreeWords, []string{"Alpha", "Beta"}) {
		t.Fatalf("unexpected words: %q", f.FreeWords)
	}
	want := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	if f.StartFrom == nil || !f.StartFrom.Equal(want) {
		t.Fatalf("expected start_from %v, got %v", want, f.StartFrom)
	}
	if !f.WantWheelchair {
		t.Fatalf("expected wheelchair check")
	}
}

func TestParseFilter_Invalid(t *testing.T) {
	cases := []struct {
		key, value string
	}{
		{"limit", "ten"},
		{"limit", "0"},
		{"limit", "-5"},
		{"limit", "1001"},
		{"limit", "1000000000000"},
		{"page", "1.5"},
		{"page", "0"},
		{"start_from", "tomorrow"},
		{"day", "2024-06-01"},
		{"day", "2024061"},
	}
	for _, tc := range cases {
		_, err := ParseFilter(url.Values{tc.key: {tc.value}})
		var ife *InvalidFilterError
		if !errors.As(err, &ife) {
			t.Errorf("%s=%q: expected InvalidFilterError, got %v", tc.key, tc.value, err)
			continue
		}
		if ife.Field != tc.key || ife.Value != tc.value {
			t.Errorf("%s=%q: error names %s=%q", tc.key, tc.value, ife.Field, ife.Value)
		}
	}
}

func TestParseFilter_Wheelchair(t *testing.T) {
	cases := map[string]bool{
		"1":     true,
		"true":  true,
		"yes":   true,
		"x":     true,
		"0":     false,
		"false": false,
		"FALSE": false,
		"off":   false,
	}
	for in, want := range cases {
		f, err := ParseFilter(url.Values{"wheelchair": {in}})
		if err != nil {
			t.Fatalf("wheelchair=%q: unexpected error: %v", in, err)
		}
		if f.WantWheelchair != want {
			t.Errorf("wheelchair=%q: expected %v, got %v", in, want, f.WantWheelchair)
		}
	}
}

func TestTokenize(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"Alpha Beta", []string{"Alpha", "Beta"}},
		{" Alpha  Beta ", []string{"Alpha", "Beta"}},
		{"Alpha\tBeta\n", []string{"Alpha", "Beta"}},
		{"アルファ　ベータ", []string{"アルファ", "ベータ"}},
		{"   ", nil},
		{"", nil},
	}
	for _, tc := range cases {
		if got := Tokenize(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Tokenize(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestFilterSet_SkipWithoutLimit(t *testing.T) {
	f := FilterSet{Page: 3}
	if f.Skip() != 0 {
		t.Fatalf("expected no skip without limit, got %d", f.Skip())
	}
}

func TestParseFilter_LimitBounds(t *testing.T) {
	f, err := ParseFilter(url.Values{"limit": {strconv.Itoa(MaxLimit)}})
	if err != nil {
		t.Fatalf("limit=%d must be accepted: %v", MaxLimit, err)
	}
	if f.Limit != MaxLimit {
		t.Fatalf("expected limit %d, got %d", MaxLimit, f.Limit)
	}
}

func TestParseFilter_PageOverflow(t *testing.T) {
	q := url.Values{"limit": {"1000"}, "page": {strconv.Itoa(math.MaxInt)}}
	_, err := ParseFilter(q)
	var ife *InvalidFilterError
	if !errors.As(err, &ife) || ife.Field != "page" {
		t.Fatalf("expected InvalidFilterError for page, got %v", err)
	}

	// a large page without limit is harmless: paging is off
	f, err := ParseFilter(url.Values{"page": {strconv.Itoa(math.MaxInt)}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Skip() != 0 {
		t.Fatalf("expected no skip without limit, got %d", f.Skip())
	}
}

func TestFilterSet_SkipSaturates(t *testing.T) {
	f := FilterSet{Limit: math.MaxInt / 2, Page: 4}
	if got := f.Skip(); got != math.MaxInt {
		t.Fatalf("expected skip to saturate at MaxInt, got %d", got)
	}
	if got := (FilterSet{Limit: 10, Page: 3}).Skip(); got != 20 {
		t.Fatalf("expected skip 20, got %d", got)
	}
}
