package ingest_test

import (
	"io"
	"strings"
	"testing"

	"github.com/killzin666/ozone/field"
	"github.com/killzin666/ozone/ingest"
	"github.com/stretchr/testify/require"
)

func TestCSVSourceBasic(t *testing.T) {
	require := require.New(t)
	src := ingest.NewCSVSource(strings.NewReader("color,size\nred,1\nblue,2\nred,3\n"))

	var rows []ingest.Row
	for {
		row, err := src.Next()
		if err != nil {
			break
		}
		rows = append(rows, row)
	}
	require.Len(rows, 3)
	require.Equal("red", rows[0]["color"])
	require.Equal("1", rows[0]["size"])
	require.Equal("blue", rows[1]["color"])
}

func TestCSVSourceQuotedFieldsAndEscapes(t *testing.T) {
	require := require.New(t)
	src := ingest.NewCSVSource(strings.NewReader(
		"name,note\n\"Smith, John\",\"He said \"\"hi\"\"\nand left\"\n"))
	row, err := src.Next()
	require.NoError(err)
	require.Equal("Smith, John", row["name"])
	require.Equal("He said \"hi\"\nand left", row["note"])
	_, err = src.Next()
	require.Equal(io.EOF, err)
}

func TestBuildFromStoreS1(t *testing.T) {
	require := require.New(t)
	src := ingest.NewCSVSource(strings.NewReader("color,size\nred,1\nblue,2\nred,3\n"))

	cs, err := ingest.BuildFromStore(src, ingest.BuildParams{
		Fields: []ingest.FieldSpec{
			{Identifier: "color", TypeOfValue: field.TypeString, Class: ingest.ClassIndexed},
			{Identifier: "size", TypeOfValue: field.TypeNumber, Class: ingest.ClassUnindexed},
		},
	})
	require.NoError(err)
	require.Equal(3, cs.Size())

	parts := cs.Partition("color")
	require.Len(parts, 2)
	require.Equal(2, parts["red"].Size())
	require.Equal(1, parts["blue"].Size())
	require.Equal(2, cs.FilterByValue("color", "red").Size())

	sizeField, ok := cs.Field("size")
	require.True(ok)
	require.Equal("1", sizeField.(interface {
		Value(int) interface{}
	}).Value(0))
}
