package loader

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/philipparndt/gobounds/pkg/bounds"
	"github.com/philipparndt/gobounds/pkg/geometry"
	"github.com/philipparndt/gobounds/pkg/stl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "box.STL")
	box := bounds.NewAlignedBox(geometry.Vector3{}, geometry.NewVector3(1, 1, 1))
	require.NoError(t, stl.Save(path, stl.BoxMesh("box", box), false))

	model, err := Load(context.Background(), path, nil)
	require.NoError(t, err)
	assert.Equal(t, 12, model.TriangleCount())
}

// fakeOpenSCAD puts an openscad stand-in on PATH that fails unless its
// input exists and otherwise writes a single triangle.
func fakeOpenSCAD(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script stand-in")
	}
	bin := t.TempDir()
	script := `#!/bin/sh
[ -f "$3" ] || { echo "cannot open $3" >&2; exit 1; }
cat > "$2" <<STL
solid rendered
facet normal 0 0 1
outer loop
vertex 0 0 0
vertex 1 0 0
vertex 0 1 0
endloop
endfacet
endsolid rendered
STL
`
	require.NoError(t, os.WriteFile(filepath.Join(bin, "openscad"), []byte(script), 0o755))
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestLoadSCADRelativePath(t *testing.T) {
	fakeOpenSCAD(t)
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "a.scad"), []byte("cube(1);\n"), 0o644))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	model, err := Load(context.Background(), filepath.Join("sub", "a.scad"), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, model.TriangleCount())
	assert.Equal(t, "rendered", model.Name)

	_, err = Load(context.Background(), filepath.Join("sub", "missing.scad"), nil)
	assert.ErrorContains(t, err, "cannot open")
}

func TestLoadUnsupported(t *testing.T) {
	_, err := Load(context.Background(), "model.obj", nil)
	assert.ErrorContains(t, err, "unsupported file type")
}

func TestWatchList(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "main.scad")
	lib := filepath.Join(dir, "lib.scad")
	require.NoError(t, os.WriteFile(src, []byte("use <lib.scad>\n"), 0o644))
	require.NoError(t, os.WriteFile(lib, []byte("module m() {}\n"), 0o644))

	files, err := WatchList(src)
	require.NoError(t, err)
	assert.Equal(t, []string{src, lib}, files)

	files, err = WatchList("model.stl")
	require.NoError(t, err)
	assert.Equal(t, []string{"model.stl"}, files)
}
