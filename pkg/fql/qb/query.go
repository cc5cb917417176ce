package qb

import (
	"fmt"
	"strings"

	"github.com/sllt/fql/pkg/fql/schema"
)

// Query accumulates the clauses of one FQL SELECT statement.
//
// Mutators return the same *Query so calls can be chained. Once a mutator
// records an error, later mutators are ignored and Render returns that error.
type Query struct {
	registry *schema.Registry

	selectExpr string
	from       string
	where      []string
	sortBy     []string

	page, length string
	hasLimit     bool

	err error
}

// Select replaces the select expression. expr is either a string or a
// sequence of strings joined with ", ".
func (q *Query) Select(expr any) *Query {
	if q.err != nil {
		return q
	}

	columns, ok := toStrings(expr)
	if !ok {
		q.err = fmt.Errorf("%w: select expects a string or a sequence of strings, got %T", ErrInvalidArgument, expr)
		return q
	}

	q.selectExpr = strings.Join(columns, columnSeparator)

	return q
}

// From sets the source table. The table is only checked against the registry
// when a wildcard or count select has to be expanded.
func (q *Query) From(table any) *Query {
	if q.err != nil {
		return q
	}

	s, ok := toString(table)
	if !ok {
		q.err = fmt.Errorf("%w: from expects a string, got %T", ErrInvalidArgument, table)
		return q
	}

	q.from = s

	return q
}

// Where appends one predicate or a sequence of predicates. Predicates are
// joined with AND in insertion order.
func (q *Query) Where(predicate any) *Query {
	if q.err != nil {
		return q
	}

	predicates, ok := toStrings(predicate)
	if !ok {
		q.err = fmt.Errorf("%w: where expects a string or a sequence of strings, got %T", ErrInvalidArgument, predicate)
		return q
	}

	q.where = append(q.where, predicates...)

	return q
}

// SortBy appends "field direction" to the ORDER BY clause. direction defaults
// to ASC and is used verbatim.
func (q *Query) SortBy(field any, direction ...any) *Query {
	if q.err != nil {
		return q
	}

	f, ok := toString(field)
	if !ok {
		q.err = fmt.Errorf("%w: sort field must be a string, got %T", ErrInvalidArgument, field)
		return q
	}

	dir := DefaultDirection

	switch len(direction) {
	case 0:
	case 1:
		d, ok := toString(direction[0])
		if !ok {
			q.err = fmt.Errorf("%w: sort direction must be a string, got %T", ErrInvalidArgument, direction[0])
			return q
		}

		dir = d
	default:
		q.err = fmt.Errorf("%w: sort takes at most one direction, got %d", ErrInvalidArgument, len(direction))
		return q
	}

	q.sortBy = append(q.sortBy, f+" "+dir)

	return q
}

// Limit sets the page offset and the number of rows. Both must be numeric.
func (q *Query) Limit(page, length any) *Query {
	if q.err != nil {
		return q
	}

	p, ok := formatNumeric(page)
	if !ok {
		q.err = fmt.Errorf("%w: limit page must be numeric, got %v", ErrInvalidArgument, page)
		return q
	}

	l, ok := formatNumeric(length)
	if !ok {
		q.err = fmt.Errorf("%w: limit length must be numeric, got %v", ErrInvalidArgument, length)
		return q
	}

	q.page, q.length, q.hasLimit = p, l, true

	return q
}

// Err returns the first error recorded by a mutator.
func (q *Query) Err() error {
	return q.err
}

// Table returns the source table.
func (q *Query) Table() string {
	return q.from
}

// Clone returns an independent copy of q.
func (q *Query) Clone() *Query {
	c := *q
	c.where = append([]string(nil), q.where...)
	c.sortBy = append([]string(nil), q.sortBy...)

	return &c
}

// Render returns the FQL statement. Rendering does not modify q, so repeated
// calls return the same result.
func (q *Query) Render() (string, error) {
	if q.err != nil {
		return "", q.err
	}

	var where, sort, limit string

	if len(q.where) > 0 {
		where = "WHERE " + strings.Join(q.where, " AND ")
	}

	if len(q.sortBy) > 0 {
		sort = "ORDER BY " + strings.Join(q.sortBy, columnSeparator)
	}

	if q.hasLimit {
		limit = "LIMIT " + q.page + "," + q.length
	}

	selectExpr, err := q.expandSelect()
	if err != nil {
		return "", err
	}

	query := fmt.Sprintf("SELECT %s FROM %s %s %s %s;", selectExpr, q.from, where, sort, limit)

	// Only pairs of spaces collapse; longer runs left by several empty clauses
	// shrink but may not disappear.
	return strings.ReplaceAll(query, "  ", " "), nil
}

// String implements fmt.Stringer. It returns an empty string when Render fails.
func (q *Query) String() string {
	s, err := q.Render()
	if err != nil {
		return ""
	}

	return s
}

func (q *Query) expandSelect() (string, error) {
	switch q.selectExpr {
	case "", wildcard:
		columns, ok := q.registry.JoinedColumns(q.from, columnSeparator)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownTable, q.from)
		}

		return columns, nil
	case countAll:
		column, ok := q.registry.FirstColumn(q.from)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownTable, q.from)
		}

		return column, nil
	default:
		return q.selectExpr, nil
	}
}
