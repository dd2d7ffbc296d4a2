// Package mapping contains the generic field mapper that the vocabulary
// specific mapping tables are interpreted with.
package mapping

import (
	"strings"
	"time"

	"github.com/diwise/opendata-crosswalk/internal/pkg/application/rdf"
	"github.com/diwise/opendata-crosswalk/internal/pkg/domain"
	"golang.org/x/exp/slices"
)

// MapScalar applies transform to v. Absent input gives absent output, as does
// a transform that reports the value as unrepresentable.
func MapScalar[S, T any](v *S, transform func(S) (T, bool)) *T {
	if v == nil {
		return nil
	}

	t, ok := transform(*v)
	if !ok {
		return nil
	}

	return &t
}

// MapList maps every element of src in order. An empty result is returned
// as nil so that callers can leave the target property out altogether.
func MapList[S, T any](src []S, transform func(S) (T, bool)) []T {
	if len(src) == 0 {
		return nil
	}

	result := make([]T, 0, len(src))
	for _, s := range src {
		if t, ok := transform(s); ok {
			result = append(result, t)
		}
	}

	if len(result) == 0 {
		return nil
	}

	return result
}

type Candidate[T any] struct {
	Value    *T
	Priority int
}

// Coalesce returns the present candidate with the lowest priority number.
// Candidates sharing a priority are considered in argument order.
func Coalesce[T any](candidates ...Candidate[T]) *T {
	ordered := slices.Clone(candidates)
	slices.SortStableFunc(ordered, func(a, b Candidate[T]) bool {
		return a.Priority < b.Priority
	})

	for _, c := range ordered {
		if c.Value != nil {
			return c.Value
		}
	}

	return nil
}

// RequireID fails with a ValidationError unless the record carries an identifier.
func RequireID(record *domain.DatasetRecord) error {
	if record == nil {
		return domain.NewValidationError("id", "no dataset record")
	}

	if strings.TrimSpace(record.ID()) == "" {
		return domain.NewValidationError("id", "dataset identifier is empty")
	}

	return nil
}

func Literal(s string) (rdf.Term, bool) {
	if strings.TrimSpace(s) == "" {
		return nil, false
	}
	return rdf.NewLiteral(s), true
}

func Resource(s string) (rdf.Term, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	return rdf.IRI(s), true
}

// ResourceOrLiteral turns http(s) URLs into resources and anything else into
// a plain literal.
func ResourceOrLiteral(s string) (rdf.Term, bool) {
	trimmed := strings.TrimSpace(s)
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return Resource(trimmed)
	}
	return Literal(s)
}

const (
	DateTimeLayout string = "2006-01-02T15:04:05"
	DateLayout     string = "2006-01-02"
)

func DateTime(t time.Time) (rdf.Term, bool) {
	if t.IsZero() {
		return nil, false
	}
	return rdf.NewTypedLiteral(t.UTC().Format(DateTimeLayout), rdf.XSDDateTime), true
}

func Date(t time.Time) (rdf.Term, bool) {
	if t.IsZero() {
		return nil, false
	}
	return rdf.NewTypedLiteral(t.UTC().Format(DateLayout), rdf.XSDDate), true
}
