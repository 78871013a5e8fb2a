// Package querybuilder renders the small set of statements the repositories
// need, with PostgreSQL-style $N placeholders. go-sqlite3 accepts the same
// placeholders, so both storage drivers share the output.
package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// binder collects statement arguments and hands out their placeholders.
type binder struct {
	args []any
}

func (b *binder) bind(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

type Condition interface {
	render(sb *strings.Builder, b *binder)
}

type eq struct {
	column string
	value  any
}

func Eq(column string, value any) Condition {
	return eq{column: column, value: value}
}

func (c eq) render(sb *strings.Builder, b *binder) {
	sb.WriteString(c.column + " = " + b.bind(c.value))
}

type in struct {
	column string
	values []any
}

// In matches column against values. An empty list matches nothing.
func In(column string, values []any) Condition {
	return in{column: column, values: values}
}

func (c in) render(sb *strings.Builder, b *binder) {
	if len(c.values) == 0 {
		sb.WriteString("1=0")
		return
	}
	marks := make([]string, len(c.values))
	for i, v := range c.values {
		marks[i] = b.bind(v)
	}
	sb.WriteString(c.column + " IN (" + strings.Join(marks, ", ") + ")")
}

func renderWhere(sb *strings.Builder, b *binder, conds []Condition) {
	for i, c := range conds {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		c.render(sb, b)
	}
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (s *SelectBuilder) From(table string) *SelectBuilder {
	s.table = table
	return s
}

func (s *SelectBuilder) Where(conds ...Condition) *SelectBuilder {
	s.where = append(s.where, conds...)
	return s
}

func (s *SelectBuilder) OrderBy(terms ...string) *SelectBuilder {
	s.orderBy = append(s.orderBy, terms...)
	return s
}

// Limit caps the row count; n <= 0 means no limit.
func (s *SelectBuilder) Limit(n int) *SelectBuilder {
	s.limit = n
	return s
}

func (s *SelectBuilder) ToSQL() (string, []any, error) {
	switch {
	case len(s.columns) == 0:
		return "", nil, fmt.Errorf("select columns are required")
	case strings.TrimSpace(s.table) == "":
		return "", nil, fmt.Errorf("select table is required")
	}

	var (
		sb strings.Builder
		b  binder
	)
	sb.WriteString("SELECT " + strings.Join(s.columns, ", ") + " FROM " + s.table)
	renderWhere(&sb, &b, s.where)
	if len(s.orderBy) > 0 {
		sb.WriteString(" ORDER BY " + strings.Join(s.orderBy, ", "))
	}
	if s.limit > 0 {
		sb.WriteString(" LIMIT " + strconv.Itoa(s.limit))
	}
	return sb.String(), b.args, nil
}

type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (i *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	i.columns = append([]string(nil), columns...)
	return i
}

// Values appends one row; call it repeatedly for a multi-row insert.
func (i *InsertBuilder) Values(values ...any) *InsertBuilder {
	i.rows = append(i.rows, append([]any(nil), values...))
	return i
}

// Suffix is appended verbatim, e.g. "RETURNING id".
func (i *InsertBuilder) Suffix(sql string) *InsertBuilder {
	i.suffix = strings.TrimSpace(sql)
	return i
}

func (i *InsertBuilder) ToSQL() (string, []any, error) {
	switch {
	case strings.TrimSpace(i.table) == "":
		return "", nil, fmt.Errorf("insert table is required")
	case len(i.columns) == 0:
		return "", nil, fmt.Errorf("insert columns are required")
	case len(i.rows) == 0:
		return "", nil, fmt.Errorf("insert values are required")
	}

	var (
		sb strings.Builder
		b  = binder{args: make([]any, 0, len(i.rows)*len(i.columns))}
	)
	sb.WriteString("INSERT INTO " + i.table + " (" + strings.Join(i.columns, ", ") + ") VALUES ")
	marks := make([]string, len(i.columns))
	for n, row := range i.rows {
		if len(row) != len(i.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", n, len(row), len(i.columns))
		}
		for c, v := range row {
			marks[c] = b.bind(v)
		}
		if n > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(" + strings.Join(marks, ", ") + ")")
	}
	if i.suffix != "" {
		sb.WriteString(" " + i.suffix)
	}
	return sb.String(), b.args, nil
}

type assignment struct {
	column string
	value  any
	raw    string
}

type UpdateBuilder struct {
	table string
	sets  []assignment
	where []Condition
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (u *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	u.sets = append(u.sets, assignment{column: column, value: value})
	return u
}

// SetExpr assigns raw SQL such as CURRENT_TIMESTAMP.
func (u *UpdateBuilder) SetExpr(column, expr string) *UpdateBuilder {
	u.sets = append(u.sets, assignment{column: column, raw: expr})
	return u
}

func (u *UpdateBuilder) Where(conds ...Condition) *UpdateBuilder {
	u.where = append(u.where, conds...)
	return u
}

func (u *UpdateBuilder) ToSQL() (string, []any, error) {
	switch {
	case strings.TrimSpace(u.table) == "":
		return "", nil, fmt.Errorf("update table is required")
	case len(u.sets) == 0:
		return "", nil, fmt.Errorf("update sets are required")
	}

	var (
		sb strings.Builder
		b  binder
	)
	sb.WriteString("UPDATE " + u.table + " SET ")
	for n, a := range u.sets {
		if n > 0 {
			sb.WriteString(", ")
		}
		rhs := a.raw
		if rhs == "" {
			rhs = b.bind(a.value)
		}
		sb.WriteString(a.column + " = " + rhs)
	}
	renderWhere(&sb, &b, u.where)
	return sb.String(), b.args, nil
}

type DeleteBuilder struct {
	table string
	where []Condition
}

func DeleteFrom(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

func (d *DeleteBuilder) Where(conds ...Condition) *DeleteBuilder {
	d.where = append(d.where, conds...)
	return d
}

// ToSQL refuses to build an unfiltered delete.
func (d *DeleteBuilder) ToSQL() (string, []any, error) {
	switch {
	case strings.TrimSpace(d.table) == "":
		return "", nil, fmt.Errorf("delete table is required")
	case len(d.where) == 0:
		return "", nil, fmt.Errorf("delete conditions are required")
	}

	var (
		sb strings.Builder
		b  binder
	)
	sb.WriteString("DELETE FROM " + d.table)
	renderWhere(&sb, &b, d.where)
	return sb.String(), b.args, nil
}
