package store_test

import (
	"testing"

	"github.com/killzin666/ozone/field"
	"github.com/killzin666/ozone/store"
	"github.com/stretchr/testify/require"
)

// buildColorSizeStore reproduces S1 from spec §8:
// CSV rows: red/1, blue/2, red/3.
func buildColorSizeStore(t *testing.T) *store.ColumnStore {
	colorDesc := field.NewDescriptor(field.TypeString, field.WithIdentifier("color"))
	colorBuilder := field.NewIndexedFieldBuilder(colorDesc, field.IndexedFieldBuilderParams{})
	colorBuilder.OnRow(0, []interface{}{"red"})
	colorBuilder.OnRow(1, []interface{}{"blue"})
	colorBuilder.OnRow(2, []interface{}{"red"})
	colorField := colorBuilder.OnEnd()

	sizeDesc := field.NewDescriptor(field.TypeNumber, field.WithIdentifier("size"))
	sizeBuilder := field.NewUnIndexedFieldBuilder(sizeDesc, field.UnIndexedFieldBuilderParams{})
	sizeBuilder.OnRow(0, 1.0)
	sizeBuilder.OnRow(1, 2.0)
	sizeBuilder.OnRow(2, 3.0)
	sizeField := sizeBuilder.OnEnd()

	fields := map[string]store.Field{
		"color": colorField,
		"size":  sizeField,
	}
	return store.NewColumnStore(3, []string{"color", "size"}, fields)
}

func TestS1PartitionAndFilter(t *testing.T) {
	require := require.New(t)
	cs := buildColorSizeStore(t)
	require.Equal(3, cs.Size())

	parts := cs.Partition("color")
	require.Len(parts, 2)
	require.Equal(2, parts["red"].Size())
	require.Equal(1, parts["blue"].Size())

	var redRows []int
	parts["red"].EachRow(func(row int) { redRows = append(redRows, row) })
	require.Equal([]int{0, 2}, redRows)

	require.Equal(2, cs.FilterByValue("color", "red").Size())
}

func TestS5RemoveFilterRestoresFullRange(t *testing.T) {
	require := require.New(t)
	cs := buildColorSizeStore(t)
	f := store.NewValueFilter("color", "red")
	view := cs.Filter(f).RemoveFilter(f)
	require.Equal(cs.Size(), view.Size())
	require.True(view.IntSet().Equals(cs.IntSet()))
}

func TestFilterIdempotence(t *testing.T) {
	require := require.New(t)
	cs := buildColorSizeStore(t)
	f := store.NewValueFilter("color", "red")
	once := cs.Filter(f)
	twice := once.Filter(f)
	require.Same(once, twice, "applying an already-present filter must be a no-op")
	require.Equal(once.Size(), cs.Filter(f).Size())
}

func TestFilterCommutativity(t *testing.T) {
	require := require.New(t)
	cs := buildColorSizeStore(t)
	fg := cs.Filter(store.NewValueFilter("color", "red")).Filter(store.NewValueFilter("size", 3.0))
	gf := cs.Filter(store.NewValueFilter("size", 3.0)).Filter(store.NewValueFilter("color", "red"))
	require.True(fg.IntSet().Equals(gf.IntSet()))
	require.Equal(fg.Size(), gf.Size())
}

func TestPartitionCompleteness(t *testing.T) {
	require := require.New(t)
	cs := buildColorSizeStore(t)
	parts := cs.Partition("color")

	var union []int
	seen := map[int]bool{}
	for _, v := range parts {
		v.EachRow(func(row int) {
			require.False(seen[row], "row %d appeared in more than one partition", row)
			seen[row] = true
			union = append(union, row)
		})
	}
	require.Len(union, cs.Size())
}

func TestUnknownFieldFilterYieldsEmptyView(t *testing.T) {
	require := require.New(t)
	cs := buildColorSizeStore(t)
	view := cs.FilterByValue("nonexistent", "x")
	require.Equal(0, view.Size())
}
