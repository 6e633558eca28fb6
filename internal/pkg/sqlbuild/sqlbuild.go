// Package sqlbuild builds INSERT and UPDATE statements from sparse,
// optional field sets. A column is included only when its value was
// actually supplied, and the column order of the generated SQL always
// matches the order in which fields were added.
package sqlbuild

import (
	"errors"

	"github.com/Masterminds/squirrel"
)

// ErrNoFields is returned when a statement would reference zero columns.
// Callers treat this as a no-op request and must not touch storage.
var ErrNoFields = errors.New("no fields supplied")

// psql builds statements with PostgreSQL dollar placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// FieldSet is an ordered collection of (column, value) pairs. Adding a
// nil pointer is a no-op, so handlers can feed every optional parameter
// through without checking presence themselves.
type FieldSet struct {
	cols []string
	args []interface{}
}

// New returns an empty FieldSet.
func New() *FieldSet {
	return &FieldSet{}
}

// String adds a text column when v is non-nil.
func (f *FieldSet) String(col string, v *string) *FieldSet {
	if v != nil {
		f.add(col, *v)
	}
	return f
}

// Int64 adds an integer column when v is non-nil.
func (f *FieldSet) Int64(col string, v *int64) *FieldSet {
	if v != nil {
		f.add(col, *v)
	}
	return f
}

// Float64 adds a numeric column when v is non-nil.
func (f *FieldSet) Float64(col string, v *float64) *FieldSet {
	if v != nil {
		f.add(col, *v)
	}
	return f
}

// Bool adds a boolean column when v is non-nil.
func (f *FieldSet) Bool(col string, v *bool) *FieldSet {
	if v != nil {
		f.add(col, *v)
	}
	return f
}

func (f *FieldSet) add(col string, v interface{}) {
	f.cols = append(f.cols, col)
	f.args = append(f.args, v)
}

// Empty reports whether no field was supplied.
func (f *FieldSet) Empty() bool {
	return len(f.cols) == 0
}

// Len returns the number of supplied fields.
func (f *FieldSet) Len() int {
	return len(f.cols)
}

// Columns returns the supplied column names in insertion order.
func (f *FieldSet) Columns() []string {
	return f.cols
}

// Insert builds an INSERT statement covering only the supplied columns.
// Placeholders are positional and bind to values in the same order the
// columns were added.
func (f *FieldSet) Insert(table string) (string, []interface{}, error) {
	if f.Empty() {
		return "", nil, ErrNoFields
	}

	return psql.Insert(table).
		Columns(f.cols...).
		Values(f.args...).
		ToSql()
}

// InsertReturning is Insert with a RETURNING clause for the given column,
// used when the caller needs the generated key back.
func (f *FieldSet) InsertReturning(table, returning string) (string, []interface{}, error) {
	if f.Empty() {
		return "", nil, ErrNoFields
	}

	return psql.Insert(table).
		Columns(f.cols...).
		Values(f.args...).
		Suffix("RETURNING " + returning).
		ToSql()
}

// Update builds an UPDATE statement whose SET clause covers only the
// supplied columns, followed by the given key predicate. The predicate's
// placeholders come after the update values. An empty set short-circuits
// with ErrNoFields before any SQL is produced.
func (f *FieldSet) Update(table string, where squirrel.Sqlizer) (string, []interface{}, error) {
	if f.Empty() {
		return "", nil, ErrNoFields
	}

	update := psql.Update(table)
	for i, col := range f.cols {
		update = update.Set(col, f.args[i])
	}

	return update.Where(where).ToSql()
}
