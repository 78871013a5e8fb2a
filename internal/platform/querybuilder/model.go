package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// Column tag options understood by the model helpers:
//
//	db:"id,readonly"  column is read back but never written (e.g. serial keys)
type modelColumn struct {
	name     string
	readonly bool
}

func InsertModel(table string, model any, suffix string) (string, []any, error) {
	cols, vals, err := writableColumns(model)
	if err != nil {
		return "", nil, err
	}
	return InsertInto(table).
		Columns(cols...).
		Values(vals...).
		Suffix(suffix).
		ToSQL()
}

// InsertModels builds one multi-row insert for models of the same type.
func InsertModels[T any](table string, models []T, suffix string) (string, []any, error) {
	if len(models) == 0 {
		return "", nil, fmt.Errorf("insert values are required")
	}

	builder := InsertInto(table).Suffix(suffix)
	for i, model := range models {
		cols, vals, err := writableColumns(model)
		if err != nil {
			return "", nil, err
		}
		if i == 0 {
			builder.Columns(cols...)
		}
		builder.Values(vals...)
	}
	return builder.ToSQL()
}

// UpdateModel starts an update that sets every writable column of model.
func UpdateModel(table string, model any) (*UpdateBuilder, error) {
	cols, vals, err := writableColumns(model)
	if err != nil {
		return nil, err
	}
	builder := Update(table)
	for i, col := range cols {
		builder.Set(col, vals[i])
	}
	return builder, nil
}

func writableColumns(model any) ([]string, []any, error) {
	columns, values, err := columnsAndValuesFromModel(model)
	if err != nil {
		return nil, nil, err
	}

	cols := make([]string, 0, len(columns))
	vals := make([]any, 0, len(values))
	for i, col := range columns {
		if col.readonly {
			continue
		}
		cols = append(cols, col.name)
		vals = append(vals, values[i])
	}
	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("model has no writable db columns")
	}
	return cols, vals, nil
}

func columnsAndValuesFromModel(model any) ([]modelColumn, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be struct")
	}

	typ := value.Type()
	cols := make([]modelColumn, 0, typ.NumField())
	vals := make([]any, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}
		tag := strings.TrimSpace(field.Tag.Get("db"))
		if tag == "" || tag == "-" {
			continue
		}
		parts := strings.Split(tag, ",")
		col := strings.TrimSpace(parts[0])
		if col == "" || col == "-" {
			continue
		}
		column := modelColumn{name: col}
		for _, opt := range parts[1:] {
			if strings.TrimSpace(opt) == "readonly" {
				column.readonly = true
			}
		}
		cols = append(cols, column)
		vals = append(vals, value.Field(i).Interface())
	}

	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("model has no db columns")
	}
	return cols, vals, nil
}
