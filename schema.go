package recordtable

import (
	"fmt"
	"reflect"

	"github.com/mattn/go-runewidth"
)

var fielderType = reflect.TypeFor[Fielder]()

// cellWidth measures cells with ambiguous-width runes counted as narrow,
// whatever RUNEWIDTH_EASTASIAN and the locale say, so the same records always
// produce the same table. Wide runes (CJK, most emoji) still count as two.
var cellWidth = &runewidth.Condition{EastAsianWidth: false}

func typeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// schema holds the columns of one render call and how to turn a record into
// its cells.
type schema struct {
	columns []Column
	cells   func(item any) ([]string, error)
}

func discover[T any](items []T) (*schema, error) {
	t := typeOf[T]()
	if t.Kind() == reflect.Interface {
		first, ok := firstNonNil(items)
		if !ok {
			return nil, fmt.Errorf("%w: every %s record is nil", ErrUnsupportedType, t)
		}
		if f, ok := first.(Fielder); ok {
			return fielderSchema(f)
		}
		return structSchema(reflect.TypeOf(first))
	}
	if t.Implements(fielderType) {
		first, ok := firstNonNil(items)
		if !ok {
			return nil, fmt.Errorf("%w: every %s record is nil", ErrUnsupportedType, t)
		}
		return fielderSchema(first.(Fielder))
	}
	return structSchema(t)
}

func firstNonNil[T any](items []T) (any, bool) {
	for _, item := range items {
		if v := any(item); !isNil(v) {
			return v, true
		}
	}
	return nil, false
}

func fielderSchema(first Fielder) (*schema, error) {
	fields := first.Fields()
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: %T", ErrNoColumns, first)
	}
	cols := make([]Column, len(fields))
	for i, f := range fields {
		cols[i] = Column{Name: f.Name, Kind: f.Kind}
	}
	s := &schema{columns: cols}
	s.cells = func(item any) ([]string, error) {
		cells := make([]string, len(cols))
		if isNil(item) {
			return cells, nil
		}
		fr, ok := item.(Fielder)
		if !ok {
			return nil, fmt.Errorf("%w: %T does not implement Fielder", ErrSchemaMismatch, item)
		}
		fields := fr.Fields()
		if len(fields) != len(cols) {
			return nil, fmt.Errorf("%w: %T has %d fields, want %d", ErrSchemaMismatch, item, len(fields), len(cols))
		}
		for i, f := range fields {
			if f.Name != cols[i].Name {
				return nil, fmt.Errorf("%w: field %d is %q, want %q", ErrSchemaMismatch, i, f.Name, cols[i].Name)
			}
			cells[i] = formatValue(f.Value)
		}
		return cells, nil
	}
	return s, nil
}

// structSchema builds columns from the exported scalar fields of t, which
// must be a struct or a pointer to one. Fields promoted from embedded structs
// appear where the embedded struct is declared.
func structSchema(t reflect.Type) (*schema, error) {
	base := t
	if base.Kind() == reflect.Pointer {
		base = base.Elem()
	}
	if base.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is not a struct and does not implement Fielder", ErrUnsupportedType, t)
	}

	var (
		cols    []Column
		indexes [][]int
	)
	for _, f := range reflect.VisibleFields(base) {
		if !f.IsExported() {
			continue
		}
		kind, ok := scalarKind(f.Type)
		if !ok {
			continue
		}
		cols = append(cols, Column{Name: f.Name, Kind: kind, Width: cellWidth.StringWidth(f.Name)})
		indexes = append(indexes, f.Index)
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoColumns, t)
	}

	s := &schema{columns: cols}
	s.cells = func(item any) ([]string, error) {
		cells := make([]string, len(cols))
		if item == nil {
			return cells, nil
		}
		v := reflect.ValueOf(item)
		if v.Type() != t {
			return nil, fmt.Errorf("%w: got %T, want %s", ErrSchemaMismatch, item, t)
		}
		if v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return cells, nil
			}
			v = v.Elem()
		}
		for i, index := range indexes {
			fv, err := v.FieldByIndexErr(index)
			if err != nil {
				// Promoted through a nil embedded pointer.
				continue
			}
			cells[i] = formatValue(fv.Interface())
		}
		return cells, nil
	}
	return s, nil
}

// scalarKind reports whether t (or the type t points to) is a scalar and how
// it aligns.
func scalarKind(t reflect.Type) (Kind, bool) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return KindText, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return KindNumeric, true
	case reflect.Bool, reflect.Complex64, reflect.Complex128:
		return KindOther, true
	default:
		return KindOther, false
	}
}

// measure formats every record once and widens the columns to fit. The
// returned rows hold unpadded cells in column order.
func measure[T any](s *schema, items []T) ([][]string, error) {
	for i := range s.columns {
		s.columns[i].Width = cellWidth.StringWidth(s.columns[i].Name)
	}
	rows := make([][]string, len(items))
	for i, item := range items {
		cells, err := s.cells(any(item))
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		for j, cell := range cells {
			if w := cellWidth.StringWidth(cell); w > s.columns[j].Width {
				s.columns[j].Width = w
			}
		}
		rows[i] = cells
	}
	return rows, nil
}

// formatValue converts a field value to its cell text. Absent values (nil
// interfaces and nil pointers) render as "". Pointers to scalars render as
// the value they point to.
func formatValue(v any) string {
	if isNil(v) {
		return ""
	}
	if _, ok := v.(fmt.Stringer); ok {
		return fmt.Sprint(v)
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer {
		return fmt.Sprint(rv.Elem().Interface())
	}
	return fmt.Sprint(v)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
