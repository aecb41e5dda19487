package serialize_test

import (
	"bytes"
	"testing"

	"github.com/killzin666/ozone/field"
	"github.com/killzin666/ozone/serialize"
	"github.com/killzin666/ozone/store"
	"github.com/stretchr/testify/require"
)

func buildColorSizeStore(t *testing.T) *store.ColumnStore {
	t.Helper()
	colorDesc := field.NewDescriptor(field.TypeString,
		field.WithIdentifier("color"),
		field.WithDisplayName("Color"),
		field.WithDistinctValues(2))
	colorBuilder := field.NewIndexedFieldBuilder(colorDesc, field.IndexedFieldBuilderParams{})
	rows := []struct {
		row   int
		value string
	}{{0, "red"}, {1, "blue"}, {2, "red"}}
	for _, r := range rows {
		colorBuilder.OnRow(r.row, []interface{}{r.value})
	}
	colorField := colorBuilder.OnEnd()

	sizeDesc := field.NewDescriptor(field.TypeNumber,
		field.WithIdentifier("size"),
		field.WithPrecomputedRange(field.NumericRange{Min: 1, Max: 3, IntegerOnly: true}),
		field.WithDistinctValues(3))
	sizeBuilder := field.NewUnIndexedFieldBuilder(sizeDesc, field.UnIndexedFieldBuilderParams{})
	sizeBuilder.OnRow(0, "1")
	sizeBuilder.OnRow(1, "2")
	sizeBuilder.OnRow(2, "3")
	sizeField := sizeBuilder.OnEnd()

	return store.NewColumnStore(3, []string{"color", "size"}, map[string]store.Field{
		"color": colorField,
		"size":  sizeField,
	})
}

func TestRoundTrip(t *testing.T) {
	require := require.New(t)
	cs := buildColorSizeStore(t)

	var buf bytes.Buffer
	require.NoError(serialize.WriteStore(&buf, cs))

	restored, err := serialize.ReadStore(&buf)
	require.NoError(err)
	require.Equal(cs.Size(), restored.Size())

	require.Equal(2, restored.Partition("color")["red"].Size())
	require.Equal(1, restored.Partition("color")["blue"].Size())

	sizeField, ok := restored.Field("size")
	require.True(ok)
	require.Equal("2", sizeField.(interface{ Value(int) interface{} }).Value(1))
}

func TestRoundTripPreservesDescriptorMetadata(t *testing.T) {
	require := require.New(t)
	cs := buildColorSizeStore(t)

	data := serialize.ToStoreData(cs)
	var colorMeta, sizeMeta *serialize.FieldMetaData
	for i := range data.Fields {
		switch data.Fields[i].Identifier {
		case "color":
			colorMeta = &data.Fields[i]
		case "size":
			sizeMeta = &data.Fields[i]
		}
	}
	require.NotNil(colorMeta)
	require.NotNil(sizeMeta)
	require.Equal("indexed", colorMeta.Type)
	require.Equal("Color", colorMeta.DisplayName)
	require.Len(colorMeta.Values, 2)
	require.Equal("unindexed", sizeMeta.Type)
	require.NotNil(sizeMeta.Range)
	require.Equal(1.0, sizeMeta.Range.Min)
	require.Equal(3.0, sizeMeta.Range.Max)

	restored, err := serialize.FromStoreData(data)
	require.NoError(err)
	require.Equal(3, restored.Size())
}

func TestReadStoreRejectsMalformedIntSet(t *testing.T) {
	require := require.New(t)
	data := serialize.StoreData{
		Size: 1,
		Fields: []serialize.FieldMetaData{
			{
				Type:        "indexed",
				Identifier:  "color",
				TypeOfValue: "string",
				Values: []serialize.IndexedValueEntry{
					{Value: "red", Data: serialize.IntSetMetaData{Type: "range", Min: 5, Max: 1}},
				},
			},
		},
	}
	_, err := serialize.FromStoreData(data)
	require.Error(err)
}

func TestReadStoreRejectsMissingIdentifier(t *testing.T) {
	require := require.New(t)
	data := serialize.StoreData{
		Size:   1,
		Fields: []serialize.FieldMetaData{{Type: "unindexed"}},
	}
	_, err := serialize.FromStoreData(data)
	require.Error(err)
}

func TestReadStoreRejectsUnknownFieldType(t *testing.T) {
	require := require.New(t)
	data := serialize.StoreData{
		Size:   1,
		Fields: []serialize.FieldMetaData{{Identifier: "x", Type: "mystery"}},
	}
	_, err := serialize.FromStoreData(data)
	require.Error(err)
}

func TestEmptyIntSetRoundTrips(t *testing.T) {
	require := require.New(t)
	desc := field.NewDescriptor(field.TypeString, field.WithIdentifier("empty"), field.WithDistinctValues(1))
	b := field.NewIndexedFieldBuilder(desc, field.IndexedFieldBuilderParams{Values: []interface{}{"never-seen"}})
	fld := b.OnEnd()
	cs := store.NewColumnStore(0, []string{"empty"}, map[string]store.Field{"empty": fld})

	var buf bytes.Buffer
	require.NoError(serialize.WriteStore(&buf, cs))
	restored, err := serialize.ReadStore(&buf)
	require.NoError(err)
	require.Equal(0, restored.Size())
}
