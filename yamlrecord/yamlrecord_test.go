package yamlrecord_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/recordtable"
	"github.com/bjaus/recordtable/yamlrecord"
)

func TestDecode(t *testing.T) {
	t.Parallel()
	src := `
- id: 1
  name: Ann
  ratio: 0.5
  active: true
  note: ~
- id: 10
  name: Bo
  ratio: 1e3
  active: false
  note: "42"
`
	records, err := yamlrecord.Decode(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, []recordtable.Field{
		{Name: "id", Kind: recordtable.KindNumeric, Value: "1"},
		{Name: "name", Kind: recordtable.KindText, Value: "Ann"},
		{Name: "ratio", Kind: recordtable.KindNumeric, Value: "0.5"},
		{Name: "active", Kind: recordtable.KindOther, Value: "true"},
		{Name: "note", Kind: recordtable.KindText, Value: nil},
	}, records[0].Fields())
	assert.Equal(t, recordtable.Field{Name: "note", Kind: recordtable.KindText, Value: "42"}, records[1].Fields()[4])
}

func TestDecodeRender(t *testing.T) {
	t.Parallel()
	src := "- Id: 1\n  Name: Ann\n- Id: 10\n  Name: Bo\n"
	records, err := yamlrecord.Decode(strings.NewReader(src))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, recordtable.WriteTable(&buf, records))
	assert.Equal(t, `+----+------+
| Id | Name |
+----+------+
|  1 | Ann  |
+----+------+
| 10 | Bo   |
+----+------+
`, buf.String())
}

func TestDecodeAlias(t *testing.T) {
	t.Parallel()
	src := "- name: &n shared\n- name: *n\n"
	records, err := yamlrecord.Decode(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "shared", records[1].Fields()[0].Value)
}

func TestDecodeEmpty(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"no document":    "",
		"empty sequence": "[]\n",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			records, err := yamlrecord.Decode(strings.NewReader(src))
			require.NoError(t, err)
			assert.NotNil(t, records)
			assert.Empty(t, records)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		src    string
		target error
	}{
		"mapping root":   {src: "id: 1\n", target: yamlrecord.ErrNotSequence},
		"scalar root":    {src: "hello\n", target: yamlrecord.ErrNotSequence},
		"scalar item":    {src: "- 1\n- 2\n", target: yamlrecord.ErrNotMapping},
		"nested mapping": {src: "- id: 1\n  owner:\n    name: Ann\n", target: yamlrecord.ErrNestedValue},
		"nested list":    {src: "- id: 1\n  tags: [a, b]\n", target: yamlrecord.ErrNestedValue},
		"complex key":    {src: "- ? [a, b]\n  : 1\n", target: yamlrecord.ErrNestedValue},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := yamlrecord.Decode(strings.NewReader(tt.src))
			require.ErrorIs(t, err, tt.target)
		})
	}
}

func TestDecodeSyntaxError(t *testing.T) {
	t.Parallel()
	_, err := yamlrecord.Decode(strings.NewReader("- id: [1\n"))
	require.Error(t, err)
}

func TestRecordsWithDifferentKeys(t *testing.T) {
	t.Parallel()
	records, err := yamlrecord.Decode(strings.NewReader("- id: 1\n- name: Ann\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	err = recordtable.WriteTable(&buf, records)
	require.ErrorIs(t, err, recordtable.ErrSchemaMismatch)
	assert.Empty(t, buf.String())
}

func TestDecodeLeadingNullKeepsTextAlignment(t *testing.T) {
	t.Parallel()
	records, err := yamlrecord.Decode(strings.NewReader("- name: ~\n- name: Ann\n- name: Bo\n"))
	require.NoError(t, err)
	assert.Equal(t, recordtable.KindText, records[0].Fields()[0].Kind)
	assert.Nil(t, records[0].Fields()[0].Value)

	var buf bytes.Buffer
	require.NoError(t, recordtable.WriteTable(&buf, records))
	assert.Equal(t, `+------+
| name |
+------+
|      |
+------+
| Ann  |
+------+
| Bo   |
+------+
`, buf.String())
}

func TestDecodeAllNullColumn(t *testing.T) {
	t.Parallel()
	records, err := yamlrecord.Decode(strings.NewReader("- id: 1\n  note: ~\n- id: 2\n  note: ~\n"))
	require.NoError(t, err)
	assert.Equal(t, recordtable.KindOther, records[1].Fields()[1].Kind)
}
