package search

import (
	"reflect"
	"testing"
	"time"

	"github.com/iliyamo/performance-search/internal/model"
	"github.com/iliyamo/performance-search/internal/predicate"
)

func TestStartFromWindow_Nil(t *testing.T) {
	if p := StartFromWindow(nil, time.UTC); p != nil {
		t.Fatalf("expected no predicate, got %#v", p)
	}
}

func TestStartFromWindow_Shape(t *testing.T) {
	start := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	got := StartFromWindow(&start, time.UTC)
	want := predicate.Or{
		predicate.And{
			predicate.Eq{Field: model.PerformanceDay, Value: "20240601"},
			predicate.Gte{Field: model.PerformanceStartTime, Value: "1000"},
		},
		predicate.Gte{Field: model.PerformanceDay, Value: "20240602"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}

func TestStartFromWindow_Matches(t *testing.T) {
	start := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	window := StartFromWindow(&start, time.UTC)

	cases := []struct {
		day, start string
		want       bool
	}{
		{"20240601", "0900", false},
		{"20240601", "1000", true},
		{"20240601", "1100", true},
		{"20240602", "0000", true},
		{"20240603", "0900", true},
		{"20240531", "2300", false},
	}
	for _, tc := range cases {
		r := record{model.PerformanceDay: tc.day, model.PerformanceStartTime: tc.start}
		if got := match(window, r); got != tc.want {
			t.Errorf("%s %s: expected %v, got %v", tc.day, tc.start, tc.want, got)
		}
	}
}

func TestStartFromWindow_UsesLocation(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	start := time.Date(2024, 6, 1, 20, 30, 0, 0, time.UTC) // 05:30 on June 2nd in JST
	got := StartFromWindow(&start, jst)
	want := predicate.Or{
		predicate.And{
			predicate.Eq{Field: model.PerformanceDay, Value: "20240602"},
			predicate.Gte{Field: model.PerformanceStartTime, Value: "0530"},
		},
		predicate.Gte{Field: model.PerformanceDay, Value: "20240603"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}
