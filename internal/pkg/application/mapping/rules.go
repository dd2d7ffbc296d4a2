package mapping

import (
	"github.com/diwise/opendata-crosswalk/internal/pkg/application/rdf"
)

// Rule is one row of a mapping table: where the value comes from, which
// predicate it becomes, and how it is converted.
type Rule[S any] struct {
	Source    string
	Predicate rdf.IRI
	values    func(S) []rdf.Term
}

// Scalar maps an optional single value.
func Scalar[S, V any](source string, predicate rdf.IRI, get func(S) *V, transform func(V) (rdf.Term, bool)) Rule[S] {
	return Rule[S]{
		Source:    source,
		Predicate: predicate,
		values: func(s S) []rdf.Term {
			if t := MapScalar(get(s), transform); t != nil {
				return []rdf.Term{*t}
			}
			return nil
		},
	}
}

// List maps an ordered, possibly empty, sequence of values.
func List[S, V any](source string, predicate rdf.IRI, get func(S) []V, transform func(V) (rdf.Term, bool)) Rule[S] {
	return Rule[S]{
		Source:    source,
		Predicate: predicate,
		values: func(s S) []rdf.Term {
			return MapList(get(s), transform)
		},
	}
}

// Derived lets a rule compute its objects from the whole source, for values
// that combine several fields or need context outside the record.
func Derived[S any](source string, predicate rdf.IRI, derive func(S) []rdf.Term) Rule[S] {
	return Rule[S]{
		Source:    source,
		Predicate: predicate,
		values:    derive,
	}
}

// Apply interprets a mapping table against src. Rules that yield nothing are
// skipped. It returns the number of rules that produced a value.
func Apply[S any](src S, rules []Rule[S], emit func(predicate rdf.IRI, objects []rdf.Term)) int {
	applied := 0

	for _, r := range rules {
		objects := r.values(src)
		if len(objects) == 0 {
			continue
		}

		emit(r.Predicate, objects)
		applied++
	}

	return applied
}
