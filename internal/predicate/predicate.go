// Package predicate describes store queries as plain values.  A Predicate is
// a tree of field comparisons joined by And/Or.  Callers build trees with
// the constructors below; stores translate them into their own query
// language (see repository.Where for the SQL form).  Because predicates are
// plain structs, two trees can be compared with reflect.DeepEqual.
package predicate

// Predicate is one node of a query tree.  The concrete types are Eq, Gte,
// In, Contains, And and Or.
type Predicate interface {
	isPredicate()
}

// Eq matches records whose Field equals Value.
type Eq struct {
	Field string
	Value any
}

// Gte matches records whose Field is greater than or equal to Value.
// Values of day and time fields are fixed-width strings, so ordering is
// lexicographic.
type Gte struct {
	Field string
	Value any
}

// In matches records whose Field is one of Values.  An empty Values list
// matches nothing.
type In struct {
	Field  string
	Values []any
}

// Contains matches records whose Field contains Substr.  Matching is case
// sensitive.
type Contains struct {
	Field  string
	Substr string
}

// And matches records matching every child.  An empty And matches all.
type And []Predicate

// Or matches records matching at least one child.  An empty Or matches
// nothing.
type Or []Predicate

func (Eq) isPredicate()       {}
func (Gte) isPredicate()      {}
func (In) isPredicate()       {}
func (Contains) isPredicate() {}
func (And) isPredicate()      {}
func (Or) isPredicate()       {}

// Strings builds an In over string values.
func Strings(field string, values []string) In {
	vs := make([]any, 0, len(values))
	for _, v := range values {
		vs = append(vs, v)
	}
	return In{Field: field, Values: vs}
}
