package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/msan126/scaffoldmaker"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	out := bytes.NewBuffer(nil)
	cmd.SetOut(out)
	cmd.SetErr(bytes.NewBuffer(nil))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateJSON(t *testing.T) {
	out, err := run(t, "generate", "--format", "json")
	require.NoError(t, err)
	var r scaffoldmaker.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, scaffoldmaker.Name, r.Name)
	assert.Equal(t, 100, r.Nodes)
	assert.Equal(t, 40, r.Elements)
	assert.Len(t, r.Rings, 5)
	assert.Empty(t, r.Corrections)
	assert.Equal(t, scaffoldmaker.Defaults, r.Options)
}

func TestGenerateOverrides(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "segment.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("segment_length: 3\nelements_along: 2\n"), 0o644))
	svg := filepath.Join(dir, "rings.svg")

	out, err := run(t, "generate", "--config", cfg, "--set", "elements_around_non_mz=5", "--svg", svg)
	require.NoError(t, err)
	var r scaffoldmaker.Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, 3.0, r.Options.SegmentLength)
	assert.Equal(t, 2, r.Options.ElementsAlong)
	assert.Equal(t, 6, r.Options.ElementsAroundNonMZ)
	assert.Equal(t, []scaffoldmaker.Correction{{Key: "elements_around_non_mz", Old: 5, New: 6}}, r.Corrections)
	assert.Equal(t, 3*2*8, r.Nodes)
	assert.Len(t, r.Rings, 3)

	data, err := os.ReadFile(svg)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(string(data), "<path "))
}

func TestGenerateErrors(t *testing.T) {
	_, err := run(t, "generate", "--parameter-set", "Human 1")
	assert.Error(t, err)
	_, err = run(t, "generate", "--set", "colour=red")
	assert.Error(t, err)
	_, err = run(t, "generate", "--format", "xml")
	assert.Error(t, err)
	_, err = run(t, "generate", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestOptionsCommand(t *testing.T) {
	out, err := run(t, "options", "--parameter-set", "Mouse 1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, scaffoldmaker.Name+" (Mouse 1)\n"), out)
	for _, name := range scaffoldmaker.OrderedOptionNames() {
		assert.Contains(t, out, "  "+name+": ")
	}
	assert.Contains(t, out, "  Start inner radius: 0.094\n")

	out, err = run(t, "options", "--format", "json")
	require.NoError(t, err)
	var list []scaffoldmaker.Option
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	assert.Len(t, list, 20)
	assert.Equal(t, "elements_around_mz", list[0].Key)
	assert.Equal(t, 2.0, list[0].Value)
}
