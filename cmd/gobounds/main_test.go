package main

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/gobounds/pkg/analysis"
	"github.com/philipparndt/gobounds/pkg/bounds"
	"github.com/philipparndt/gobounds/pkg/geometry"
	"github.com/philipparndt/gobounds/pkg/stl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBox(t *testing.T, dir, name string, lower, upper geometry.Vector3) string {
	t.Helper()
	path := filepath.Join(dir, name)
	box := bounds.NewAlignedBox(lower, upper)
	require.NoError(t, stl.Save(path, stl.BoxMesh(name, box), false))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFitCommand(t *testing.T) {
	dir := t.TempDir()
	box := writeBox(t, dir, "box.stl", geometry.Vector3{}, geometry.NewVector3(2, 1, 0.5))

	t.Run("text", func(t *testing.T) {
		out, err := run(t, "fit", box, "--kind", "aabb")
		require.NoError(t, err)
		assert.Contains(t, out, "AABB:")
		assert.Contains(t, out, "Center: (1.000000, 0.500000, 0.250000)")
		assert.Contains(t, out, "Volume: 1.000000 cubic units")
		assert.Contains(t, out, "Vertices:")
	})

	t.Run("json", func(t *testing.T) {
		out, err := run(t, "fit", box, "--kind", "sphere", "-o", "json")
		require.NoError(t, err)

		var report analysis.VolumeReport
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		assert.Equal(t, "sphere", report.Kind)
		assert.InDelta(t, math.Sqrt(5.25)/2, report.Radius, 1e-6)
	})

	t.Run("export", func(t *testing.T) {
		target := filepath.Join(dir, "out", "obb.stl")
		_, err := run(t, "fit", box, "--kind", "obb", "--export", target)
		require.NoError(t, err)

		model, err := stl.Parse(target)
		require.NoError(t, err)
		assert.Equal(t, 12, model.TriangleCount())
		assert.InDelta(t, 1.0, model.Bounds().Volume(), 1e-4)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := run(t, "fit", box, "--kind", "cone")
		assert.ErrorIs(t, err, bounds.ErrUnknownKind)
	})

	t.Run("settings file picks the kind", func(t *testing.T) {
		config := filepath.Join(dir, "gobounds.toml")
		require.NoError(t, os.WriteFile(config, []byte("[fit]\nkind = \"sphere\"\n"), 0o644))

		out, err := run(t, "fit", box, "--config", config)
		require.NoError(t, err)
		assert.Contains(t, out, "SPHERE:")

		out, err = run(t, "fit", box, "--config", config, "--kind", "aabb")
		require.NoError(t, err)
		assert.Contains(t, out, "AABB:")
	})

	t.Run("zero epsilon", func(t *testing.T) {
		_, err := run(t, "fit", box, "--epsilon", "0")
		assert.ErrorContains(t, err, "epsilon")
	})

	t.Run("missing explicit config", func(t *testing.T) {
		_, err := run(t, "fit", box, "--config", filepath.Join(dir, "missing.toml"))
		assert.Error(t, err)
	})
}

func TestInfoCommand(t *testing.T) {
	box := writeBox(t, t.TempDir(), "box.stl", geometry.Vector3{}, geometry.NewVector3(2, 1, 0.5))

	out, err := run(t, "info", box)
	require.NoError(t, err)
	assert.Contains(t, out, "Triangles: 12")
	assert.Contains(t, out, "Vertices: 8")
	assert.Contains(t, out, "AABB:")
	assert.Contains(t, out, "SPHERE:")
	assert.Contains(t, out, "OBB:")
	assert.Contains(t, out, "Tightness: 100.00% of AABB")
}

func TestClassifyCommand(t *testing.T) {
	dir := t.TempDir()
	outer := writeBox(t, dir, "outer.stl", geometry.Vector3{}, geometry.NewVector3(4, 4, 4))
	inner := writeBox(t, dir, "inner.stl", geometry.NewVector3(1, 1, 1), geometry.NewVector3(2, 2, 2))
	far := writeBox(t, dir, "far.stl", geometry.NewVector3(10, 10, 10), geometry.NewVector3(11, 11, 11))

	out, err := run(t, "classify", outer, inner, "--kind", "aabb")
	require.NoError(t, err)
	assert.Contains(t, out, "B relative to A: INSIDE")
	assert.Contains(t, out, "A relative to B: ENCLOSING")
	assert.Contains(t, out, "Intersects: true")

	out, err = run(t, "classify", outer, far, "--kind", "sphere")
	require.NoError(t, err)
	assert.Contains(t, out, "B relative to A: OUTSIDE")
	assert.Contains(t, out, "Intersects: false")
}

func TestPointCommand(t *testing.T) {
	box := writeBox(t, t.TempDir(), "box.stl", geometry.Vector3{}, geometry.NewVector3(2, 1, 0.5))

	out, err := run(t, "point", box, "--kind", "aabb", "--x", "1", "--y", "0.5", "--z", "0.25")
	require.NoError(t, err)
	assert.Contains(t, out, "Classification: INSIDE")
	assert.Contains(t, out, "Distance: 0.000000")

	out, err = run(t, "point", box, "--kind", "aabb", "--x", "5", "--y", "0.5", "--z", "0.25")
	require.NoError(t, err)
	assert.Contains(t, out, "Classification: OUTSIDE")
	assert.Contains(t, out, "Distance: 3.000000")
}

func TestPlaneCommand(t *testing.T) {
	box := writeBox(t, t.TempDir(), "box.stl", geometry.Vector3{}, geometry.NewVector3(2, 1, 0.5))

	out, err := run(t, "plane", box, "--kind", "aabb", "--normal", "1,0,0", "--point", "5,0,0")
	require.NoError(t, err)
	assert.Contains(t, out, "Side: BEHIND")
	assert.Contains(t, out, "Side of negated plane: IN_FRONT_OF")
	assert.Contains(t, out, "Intersects: false")

	out, err = run(t, "plane", box, "--kind", "aabb", "--normal", "1,0,0", "--point", "1,0,0")
	require.NoError(t, err)
	assert.Contains(t, out, "Side: COINCIDENT")

	_, err = run(t, "plane", box, "--normal", "0,0,0")
	assert.ErrorIs(t, err, bounds.ErrDegeneratePlane)

	_, err = run(t, "plane", box, "--normal", "1,0")
	assert.Error(t, err)
}

func TestOctantsCommand(t *testing.T) {
	box := writeBox(t, t.TempDir(), "box.stl", geometry.Vector3{}, geometry.NewVector3(2, 2, 2))

	out, err := run(t, "octants", box)
	require.NoError(t, err)
	assert.Equal(t, 8, strings.Count(out, "vertices: 1\n"))
	for _, name := range octantNames {
		assert.Contains(t, out, name+":")
	}
}

func TestCompletionCommand(t *testing.T) {
	out, err := run(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "gobounds")

	_, err = run(t, "completion", "powershell")
	assert.Error(t, err)
}
