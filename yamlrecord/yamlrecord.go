// Package yamlrecord decodes a YAML sequence of flat mappings into records
// that render with [recordtable.WriteTable].
//
// Mapping keys keep their document order and become column names. Scalar
// tags pick the column kind: !!int and !!float are numeric, !!bool is other,
// !!null is an absent value and everything else is text. A null takes the
// kind of the first non-null value under the same key. Cells show the
// scalar exactly as written in the document.
package yamlrecord

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/recordtable"
)

// Sentinel errors for programmatic error handling.
var (
	ErrNotSequence = errors.New("document is not a sequence")
	ErrNotMapping  = errors.New("item is not a mapping")
	ErrNestedValue = errors.New("value is not a scalar")
)

// Record is one mapping of the document.
type Record struct {
	fields []recordtable.Field
}

// Fields implements [recordtable.Fielder].
func (r Record) Fields() []recordtable.Field { return r.fields }

// Decode reads one YAML document from r. An empty document yields no records.
func Decode(r io.Reader) ([]Record, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []Record{}, nil
		}
		return nil, err
	}

	root := resolve(&doc)
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return []Record{}, nil
		}
		root = resolve(root.Content[0])
	}
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: line %d", ErrNotSequence, root.Line)
	}

	records := make([]Record, 0, len(root.Content))
	for _, item := range root.Content {
		rec, err := decodeRecord(resolve(item))
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	settleKinds(records)
	return records, nil
}

// settleKinds gives every field of a key the kind of that key's first
// non-null value, so a leading null does not decide a column's alignment.
func settleKinds(records []Record) {
	kinds := make(map[string]recordtable.Kind)
	for _, rec := range records {
		for _, f := range rec.fields {
			if _, ok := kinds[f.Name]; !ok && f.Value != nil {
				kinds[f.Name] = f.Kind
			}
		}
	}
	for _, rec := range records {
		for i, f := range rec.fields {
			if kind, ok := kinds[f.Name]; ok && f.Value == nil {
				rec.fields[i].Kind = kind
			}
		}
	}
}

func decodeRecord(n *yaml.Node) (Record, error) {
	if n.Kind != yaml.MappingNode {
		return Record{}, fmt.Errorf("%w: line %d", ErrNotMapping, n.Line)
	}
	fields := make([]recordtable.Field, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := resolve(n.Content[i]), resolve(n.Content[i+1])
		if key.Kind != yaml.ScalarNode {
			return Record{}, fmt.Errorf("%w: key at line %d", ErrNestedValue, key.Line)
		}
		if val.Kind != yaml.ScalarNode {
			return Record{}, fmt.Errorf("%w: %q at line %d", ErrNestedValue, key.Value, val.Line)
		}
		fields = append(fields, scalarField(key.Value, val))
	}
	return Record{fields: fields}, nil
}

func scalarField(name string, n *yaml.Node) recordtable.Field {
	f := recordtable.Field{Name: name, Value: n.Value}
	switch n.ShortTag() {
	case "!!null":
		f.Kind = recordtable.KindOther
		f.Value = nil
	case "!!int", "!!float":
		f.Kind = recordtable.KindNumeric
	case "!!bool":
		f.Kind = recordtable.KindOther
	default:
		f.Kind = recordtable.KindText
	}
	return f
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}
