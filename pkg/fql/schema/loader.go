package schema

import (
	"io"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// document is the on-disk layout of a schema file:
//
//	tables:
//	  - name: friend
//	    columns: [uid1, uid2]
type document struct {
	Tables []tableSpec `yaml:"tables" validate:"required,min=1,dive"`
}

// Columns may repeat, as they do in the built-in stream table.
type tableSpec struct {
	Name    string   `yaml:"name" validate:"required"`
	Columns []string `yaml:"columns" validate:"required,min=1,dive,required"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	return validate
}

// Load reads a YAML schema document from r.
func Load(r io.Reader) (*Registry, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "[schema] read document")
	}

	var doc document

	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "[schema] decode document")
	}

	if err := getValidator().Struct(doc); err != nil {
		return nil, errors.Wrap(err, "[schema] invalid document")
	}

	tables := make(map[string][]string, len(doc.Tables))

	for _, t := range doc.Tables {
		if _, ok := tables[t.Name]; ok {
			return nil, errors.Wrapf(errDuplicateTable, "table %q", t.Name)
		}

		tables[t.Name] = t.Columns
	}

	return New(tables)
}

// LoadFile reads a YAML schema document from path.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[schema] open %s", path)
	}
	defer f.Close()

	r, err := Load(f)
	if err != nil {
		return nil, errors.WithMessagef(err, "load %s", path)
	}

	return r, nil
}

// Resolve returns the built-in Facebook registry, merged with the tables of
// the schema file at path when path is not empty.
func Resolve(path string) (*Registry, error) {
	if path == "" {
		return Facebook(), nil
	}

	overlay, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	return Merge(Facebook(), overlay)
}
