// Package recordtable renders a slice of same-typed records as a ruled text
// table.
//
// Columns are discovered when the table is written; nothing is declared up
// front. The central entry point is [WriteTable]:
//
//	type person struct {
//		ID   int
//		Name string
//	}
//
//	recordtable.WriteTable(os.Stdout, []person{{1, "Ann"}, {10, "Bo"}})
//
// prints
//
//	+----+------+
//	| ID | Name |
//	+----+------+
//	|  1 | Ann  |
//	+----+------+
//	| 10 | Bo   |
//	+----+------+
//
// # Columns
//
// For struct records every exported field with a scalar type becomes a
// column, in declaration order: strings, booleans, integers, floats and
// complex numbers, named types over those, and pointers to any of them.
// Fields promoted from embedded structs are included. Other fields (structs,
// slices, maps, interfaces) are skipped. Use [Describe] to see the columns a
// type produces and [IsSupported] to check a type up front.
//
// Records can instead describe themselves by implementing [Fielder], which
// returns an ordered list of named values with an explicit [Kind].
//
// # Cells
//
// Values are converted with fmt.Sprint, so a String method is honored. Nil
// pointers and nil values are absent and render as empty cells. Text columns
// are left-aligned; numeric and other columns are right-aligned. Headers are
// always left-aligned.
//
// # Borders
//
// The default border is plain ASCII. Implement [Bordered] to pick
// [BorderRounded], [BorderHeavy] or [BorderDouble]. [ParseBorder] converts a
// flag value into a [BorderStyle].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrNilCollection], [ErrNilWriter], [ErrEmptyCollection] — invalid arguments
//   - [ErrUnsupportedType] — records are neither structs nor [Fielder]
//   - [ErrNoColumns] — the record type has no renderable fields
//   - [ErrSchemaMismatch] — a record does not match the first record's columns
//   - [ErrUnsupportedBorder] — unknown border style name
//
// All of these are reported before anything is written. Errors from the
// writer are returned unchanged.
package recordtable
