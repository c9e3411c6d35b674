package database

import (
	"strings"

	"gorm.io/gorm"
)

// predicate is one optional WHERE clause of a Filter
type predicate struct {
	clause string
	args   []any
}

// Filter is an ordered set of predicates combined with AND, plus the sort
// order and row limit of a listing. A Filter is a value: every builder method
// returns a copy and leaves the receiver untouched, so partially built filters
// can be shared.
type Filter struct {
	predicates []predicate
	order      []string
	limit      int
}

// Where adds a predicate
func (f Filter) Where(clause string, args ...any) Filter {
	next := f.clone()
	next.predicates = append(next.predicates, predicate{clause: clause, args: args})
	return next
}

// WhereIf adds a predicate only when ok is true. Missing parameters mean "no
// constraint", never "exclude everything".
func (f Filter) WhereIf(ok bool, clause string, args ...any) Filter {
	if !ok {
		return f
	}
	return f.Where(clause, args...)
}

// OrderBy appends sort expressions
func (f Filter) OrderBy(columns ...string) Filter {
	next := f.clone()
	next.order = append(next.order, columns...)
	return next
}

// Limit caps the number of rows, n <= 0 means unlimited
func (f Filter) Limit(n int) Filter {
	next := f.clone()
	next.limit = n
	return next
}

// Len returns the number of predicates
func (f Filter) Len() int {
	return len(f.predicates)
}

// Clauses returns the predicate SQL fragments in order
func (f Filter) Clauses() []string {
	clauses := make([]string, 0, len(f.predicates))
	for _, p := range f.predicates {
		clauses = append(clauses, p.clause)
	}
	return clauses
}

// Apply adds the predicates, ordering and limit to a query
func (f Filter) Apply(db *gorm.DB) *gorm.DB {
	for _, p := range f.predicates {
		db = db.Where(p.clause, p.args...)
	}
	for _, o := range f.order {
		db = db.Order(o)
	}
	if f.limit > 0 {
		db = db.Limit(f.limit)
	}
	return db
}

func (f Filter) clone() Filter {
	return Filter{
		predicates: append([]predicate(nil), f.predicates...),
		order:      append([]string(nil), f.order...),
		limit:      f.limit,
	}
}

// containsPattern builds a case-insensitive LIKE pattern matching value
// anywhere in a column. Use with `LOWER(col) LIKE ? ESCAPE '\'`.
func containsPattern(value string) string {
	escaper := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + escaper.Replace(strings.ToLower(value)) + "%"
}
