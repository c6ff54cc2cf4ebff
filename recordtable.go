package recordtable

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrNilCollection     = errors.New("nil collection")
	ErrNilWriter         = errors.New("nil writer")
	ErrEmptyCollection   = errors.New("empty collection")
	ErrUnsupportedType   = errors.New("unsupported record type")
	ErrNoColumns         = errors.New("record type has no scalar fields")
	ErrSchemaMismatch    = errors.New("record does not match table columns")
	ErrUnsupportedBorder = errors.New("unsupported border style")
)

// Kind classifies a field for alignment.
type Kind int

const (
	KindOther   Kind = iota // booleans, complex numbers
	KindNumeric             // integers and floats
	KindText                // strings
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindText:
		return "text"
	default:
		return "other"
	}
}

// Alignment controls how a cell is padded to its column width.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Field is one named, classified value of a record.
// A nil Value is absent and renders as an empty cell.
type Field struct {
	Name  string
	Kind  Kind
	Value any
}

// --- Optional Interfaces ---

// Fielder describes a record explicitly instead of through its struct fields.
// The first non-nil record's field names, order and kinds define the columns;
// every other record must report the same names in the same order. Kinds
// reported by later records are ignored, so a column keeps one alignment.
type Fielder interface {
	Fields() []Field
}

// Bordered controls the table border style. It is read from the first
// non-nil record. Default: BorderASCII.
type Bordered interface {
	Border() BorderStyle
}

// Column is the layout of one table column.
type Column struct {
	Name  string
	Kind  Kind
	Width int
}

// Alignment returns AlignLeft for text columns and AlignRight otherwise.
func (c Column) Alignment() Alignment {
	if c.Kind == KindText {
		return AlignLeft
	}
	return AlignRight
}

// WriteTable renders items as a ruled table and writes it to w.
//
// Arguments are validated before anything is written: a nil slice, a nil
// writer and an empty slice are rejected with [ErrNilCollection],
// [ErrNilWriter] and [ErrEmptyCollection]. Column discovery and width
// computation also finish before the first line is written, so those errors
// leave w untouched. An error from w is returned as is and whatever lines
// were already written stay written.
func WriteTable[T any](w io.Writer, items []T) error {
	if items == nil {
		return ErrNilCollection
	}
	if w == nil {
		return ErrNilWriter
	}
	if len(items) == 0 {
		return ErrEmptyCollection
	}

	s, err := discover(items)
	if err != nil {
		return err
	}
	rows, err := measure(s, items)
	if err != nil {
		return err
	}

	border := BorderASCII
	if first, ok := firstNonNil(items); ok {
		if b, ok := first.(Bordered); ok {
			border = b.Border()
		}
	}
	return renderTable(w, s.columns, rows, border)
}

// Marshal renders items as a table and returns the bytes.
func Marshal[T any](items []T) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, items); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Describe returns the columns discovered from the struct fields of T, with
// each width set to its header width. Types implementing [Fielder] are
// rejected because their columns are only known from a value.
func Describe[T any]() ([]Column, error) {
	t := typeOf[T]()
	if t.Implements(fielderType) {
		return nil, fmt.Errorf("%w: columns of %s come from its Fields method", ErrUnsupportedType, t)
	}
	s, err := structSchema(t)
	if err != nil {
		return nil, err
	}
	return s.columns, nil
}

// IsSupported reports whether values of type T can be rendered: T implements
// [Fielder], or T is a struct (or pointer to one) with at least one exported
// scalar field.
func IsSupported[T any]() bool {
	t := typeOf[T]()
	if t.Implements(fielderType) {
		return true
	}
	_, err := structSchema(t)
	return err == nil
}
