// Package schema holds the table -> column registry used to expand wildcard
// and count selects into explicit FQL column lists.
//
// A Registry is immutable once constructed and can be shared by any number of
// builders and goroutines.
package schema

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	errEmptyTableName  = errors.New("[schema] table name cannot be empty")
	errNoColumns       = errors.New("[schema] table must declare at least one column")
	errEmptyColumnName = errors.New("[schema] column name cannot be empty")
	errDuplicateTable  = errors.New("[schema] duplicate table")
	errNilRegistry     = errors.New("[schema] registry is nil")
)

// Registry maps FQL table names to their ordered column lists.
type Registry struct {
	tables map[string][]string
}

// New builds a Registry from tables. The input is copied, so later changes to
// the map or its slices are not observed by the registry.
func New(tables map[string][]string) (*Registry, error) {
	copied := make(map[string][]string, len(tables))

	for name, columns := range tables {
		if strings.TrimSpace(name) == "" {
			return nil, errEmptyTableName
		}

		if len(columns) == 0 {
			return nil, fmt.Errorf("%w: %s", errNoColumns, name)
		}

		for _, c := range columns {
			if strings.TrimSpace(c) == "" {
				return nil, fmt.Errorf("%w: %s", errEmptyColumnName, name)
			}
		}

		copied[name] = append([]string(nil), columns...)
	}

	return &Registry{tables: copied}, nil
}

// MustNew is like New but panics on invalid input. It is meant for
// registries declared in code.
func MustNew(tables map[string][]string) *Registry {
	r, err := New(tables)
	if err != nil {
		panic(err)
	}

	return r
}

// Columns returns a copy of the columns registered for table.
func (r *Registry) Columns(table string) ([]string, bool) {
	if r == nil {
		return nil, false
	}

	columns, ok := r.tables[table]
	if !ok {
		return nil, false
	}

	return append([]string(nil), columns...), true
}

// FirstColumn returns the first column registered for table.
func (r *Registry) FirstColumn(table string) (string, bool) {
	if r == nil {
		return "", false
	}

	columns, ok := r.tables[table]
	if !ok {
		return "", false
	}

	return columns[0], true
}

// JoinedColumns returns the columns of table joined by sep without copying
// the underlying slice.
func (r *Registry) JoinedColumns(table, sep string) (string, bool) {
	if r == nil {
		return "", false
	}

	columns, ok := r.tables[table]
	if !ok {
		return "", false
	}

	return strings.Join(columns, sep), true
}

// Has reports whether table is registered.
func (r *Registry) Has(table string) bool {
	if r == nil {
		return false
	}

	_, ok := r.tables[table]

	return ok
}

// Tables returns the registered table names in lexical order.
func (r *Registry) Tables() []string {
	if r == nil {
		return nil
	}

	names := make([]string, 0, len(r.tables))
	for name := range r.tables {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Len returns the number of registered tables.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}

	return len(r.tables)
}

// Merge returns a new registry holding every table of base, with tables of
// overlay replacing same-named tables of base.
func Merge(base, overlay *Registry) (*Registry, error) {
	if base == nil || overlay == nil {
		return nil, errNilRegistry
	}

	merged := make(map[string][]string, base.Len()+overlay.Len())

	for name, columns := range base.tables {
		merged[name] = columns
	}

	for name, columns := range overlay.tables {
		merged[name] = columns
	}

	return New(merged)
}
