package ozone_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/killzin666/ozone/cmd/ozone"
	"github.com/stretchr/testify/require"
)

// runOzone executes the ozone root command with args, capturing stdout.
func runOzone(t *testing.T, args ...string) string {
	t.Helper()
	var stdout bytes.Buffer
	rc := ozone.NewRootCommand(strings.NewReader(""), &stdout, &stdout)
	rc.SetArgs(args)
	require.NoError(t, rc.Execute())
	return stdout.String()
}

func TestBuildFilterPartitionDescribePipeline(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "rows.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("color,size\nred,1\nblue,2\nred,3\n"), 0o644))
	storePath := filepath.Join(dir, "store.json")

	runOzone(t, "build", csvPath,
		"--field", "color:string:indexed",
		"--field", "size:number:unindexed",
		"--out", storePath)

	data, err := os.ReadFile(storePath)
	require.NoError(t, err)
	require.Contains(t, string(data), `"identifier": "color"`)

	partitionOut := runOzone(t, "partition", storePath, "color")
	require.Contains(t, partitionOut, "red\t2")
	require.Contains(t, partitionOut, "blue\t1")

	filterOut := runOzone(t, "filter", storePath, "color=red")
	require.Contains(t, filterOut, "rows: 2")

	describeOut := runOzone(t, "describe", storePath)
	require.Contains(t, describeOut, "color")
	require.Contains(t, describeOut, "indexed")
	require.Contains(t, describeOut, "size")
	require.Contains(t, describeOut, "unindexed")
}

func TestConfigCommandPrintsDefaults(t *testing.T) {
	out := runOzone(t, "config")
	require.Contains(t, out, "delimiter")
}

func TestBuildRequiresFieldSpec(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "rows.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("a,b\n1,2\n"), 0o644))

	var stdout bytes.Buffer
	rc := ozone.NewRootCommand(strings.NewReader(""), &stdout, &stdout)
	rc.SetArgs([]string{"build", csvPath})
	require.Error(t, rc.Execute())
}
