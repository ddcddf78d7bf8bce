package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleGraph = `<graph>
  <node id="Z"/>
  <node id="A"/>
  <node id="C"/>
  <edge source="Z" target="A" type="requirement" value="3"/>
  <edge source="A" target="C" type="contingent" labeledValue="LC(C):1"/>
  <edge source="C" target="A" type="contingent" labeledValue="UC(C):10"/>
</graph>`

func TestRunCheck_MorrisControllable(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.graphml")
	out := filepath.Join(dir, "out.graphml")
	require.NoError(t, os.WriteFile(in, []byte(sampleGraph), 0o644))

	rootCmd.SetArgs([]string{in, "-o", out, "-a", "Morris2014"})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(data), `id="Z"`)
}

func TestRunCheck_MalformedInputIsError(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "bad.graphml")
	require.NoError(t, os.WriteFile(in, []byte(`<graph><edge source="X" target="Y" type="requirement" value="1"/></graph>`), 0o644))

	rootCmd.SetArgs([]string{in})
	err := rootCmd.Execute()
	require.Error(t, err)
}
