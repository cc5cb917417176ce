package qb

import (
	"errors"

	"github.com/sllt/fql/pkg/fql/schema"
)

var (
	// ErrInvalidArgument reports a builder call whose argument has the wrong shape.
	ErrInvalidArgument = errors.New("[builder] invalid argument")
	// ErrUnknownTable reports a wildcard or count select against a table missing from the registry.
	ErrUnknownTable = errors.New("[builder] unknown table")

	errNilRegistry = errors.New("[builder] registry is nil")
)

const (
	// DefaultDirection is the sort direction used when SortBy gets none.
	DefaultDirection = "ASC"

	wildcard        = "*"
	countAll        = "COUNT(*)"
	columnSeparator = ", "
)

// Builder creates queries bound to a schema registry.
type Builder struct {
	registry *schema.Registry
}

var defaultBuilder = &Builder{registry: schema.Facebook()}

// New returns a Builder that expands selects with the provided registry.
func New(registry *schema.Registry) (*Builder, error) {
	if registry == nil {
		return nil, errNilRegistry
	}

	return &Builder{registry: registry}, nil
}

// FromFile returns a Builder whose registry is the built-in one merged with
// the YAML schema file at path. An empty path yields the default builder.
func FromFile(path string) (*Builder, error) {
	if path == "" {
		return defaultBuilder, nil
	}

	registry, err := schema.Resolve(path)
	if err != nil {
		return nil, err
	}

	return New(registry)
}

// Default returns the builder bound to the built-in Facebook registry.
func Default() *Builder {
	return defaultBuilder
}

// Registry returns the registry the builder expands selects with.
func (b Builder) Registry() *schema.Registry {
	return b.registry
}

// Select starts a query on the default builder. See Builder.Select.
func Select(expr ...any) *Query {
	return defaultBuilder.Select(expr...)
}

// Select starts a new query.
// With no argument the query selects `*`. A single argument is handled like
// Query.Select; several arguments are treated as one column list.
func (b Builder) Select(expr ...any) *Query {
	q := &Query{registry: b.registry, selectExpr: wildcard}

	switch len(expr) {
	case 0:
	case 1:
		q.Select(expr[0])
	default:
		q.Select(expr)
	}

	return q
}
