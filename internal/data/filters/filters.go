// Package filters turns flat optional-field filter values into query
// predicates. Every filter field is statically bound to exactly one column
// and one comparison kind; there is no runtime field resolution, so a filter
// field can never silently miss or match an unintended column.
package filters

import "gorm.io/gorm"

type Kind int

const (
	// Equal compares the column for equality.
	Equal Kind = iota
	// Min compiles to column >= value.
	Min
	// Max compiles to column <= value.
	Max
)

// Predicate is one bound filter field with its value present.
type Predicate struct {
	Column string
	Kind   Kind
	Value  any
}

// Filter is implemented by each filter value object. Predicates must be
// returned in declaration order so compilation is deterministic.
type Filter interface {
	Predicates() []Predicate
}

// Apply compiles the filter onto the query, combining predicates with AND.
// A nil filter or one with no present fields returns the query unchanged.
func Apply(q *gorm.DB, f Filter) *gorm.DB {
	if f == nil {
		return q
	}
	for _, p := range f.Predicates() {
		switch p.Kind {
		case Min:
			q = q.Where(p.Column+" >= ?", p.Value)
		case Max:
			q = q.Where(p.Column+" <= ?", p.Value)
		default:
			q = q.Where(p.Column+" = ?", p.Value)
		}
	}
	return q
}

func appendString(preds []Predicate, column string, kind Kind, v *string) []Predicate {
	if v == nil {
		return preds
	}
	return append(preds, Predicate{Column: column, Kind: kind, Value: *v})
}

func appendFloat(preds []Predicate, column string, kind Kind, v *float64) []Predicate {
	if v == nil {
		return preds
	}
	return append(preds, Predicate{Column: column, Kind: kind, Value: *v})
}

func appendInt(preds []Predicate, column string, kind Kind, v *int) []Predicate {
	if v == nil {
		return preds
	}
	return append(preds, Predicate{Column: column, Kind: kind, Value: *v})
}
