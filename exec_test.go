package seamcarver

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pipeName = "-"

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func decodeFile(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, _, err := image.Decode(f)
	require.NoError(t, err)
	return img
}

func TestExec_IsValidExtension(t *testing.T) {
	assert.True(t, isValidExtension(".png", validExtensions))
	assert.True(t, isValidExtension(".jpeg", validExtensions))
	assert.False(t, isValidExtension(".txt", validExtensions))
	assert.False(t, isValidExtension("", validExtensions))
}

func TestExec_WalkDir(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), newNoiseImage(4, 4, 1))
	writePNG(t, filepath.Join(dir, "sub", "c.jpg"), newNoiseImage(4, 4, 2))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("text"), 0644))

	done := make(chan struct{})
	defer close(done)

	paths, errc := walkDir(done, dir, validExtensions)

	var got []string
	for p := range paths {
		rel, err := filepath.Rel(dir, p)
		require.NoError(t, err)
		got = append(got, rel)
	}
	require.NoError(t, <-errc)

	sort.Strings(got)
	assert.Equal(t, []string{"a.png", filepath.Join("sub", "c.jpg")}, got)
}

func TestExec_SingleFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.png")
	dst := filepath.Join(dir, "out.png")
	writePNG(t, src, newNoiseImage(12, 10, 3))

	p := &Processor{NewWidth: 9, NewHeight: 8}
	err := p.Execute(&Ops{Src: src, Dst: dst, PipeName: pipeName})
	require.NoError(t, err)

	img := decodeFile(t, dst)
	assert.Equal(t, 9, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())
}

func TestExec_Directory(t *testing.T) {
	srcDir := t.TempDir()
	dstDir := filepath.Join(t.TempDir(), "out")
	writePNG(t, filepath.Join(srcDir, "a.png"), newNoiseImage(10, 10, 4))
	writePNG(t, filepath.Join(srcDir, "nested", "b.png"), newNoiseImage(12, 8, 5))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "notes.txt"), []byte("skip"), 0644))

	p := &Processor{NewWidth: 7}
	err := p.Execute(&Ops{Src: srcDir, Dst: dstDir, PipeName: pipeName, Workers: 2})
	require.NoError(t, err)

	a := decodeFile(t, filepath.Join(dstDir, "a.png"))
	assert.Equal(t, image.Rect(0, 0, 7, 10), a.Bounds())

	b := decodeFile(t, filepath.Join(dstDir, "b.png"))
	assert.Equal(t, image.Rect(0, 0, 7, 8), b.Bounds())

	_, err = os.Stat(filepath.Join(dstDir, "notes.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestExec_DirectoryReportsFailures(t *testing.T) {
	srcDir := t.TempDir()
	dstDir := t.TempDir()
	writePNG(t, filepath.Join(srcDir, "small.png"), newNoiseImage(4, 4, 6))

	// Enlarging is not supported, so every file fails.
	p := &Processor{NewWidth: 8}
	err := p.Execute(&Ops{Src: srcDir, Dst: dstDir, PipeName: pipeName, Workers: 1})
	assert.Error(t, err)

	_, err = os.Stat(filepath.Join(dstDir, "small.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestExec_UnsupportedDestination(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.png")
	writePNG(t, src, newNoiseImage(6, 6, 7))

	p := &Processor{NewWidth: 4}
	err := p.Execute(&Ops{Src: src, Dst: filepath.Join(dir, "out.tiff"), PipeName: pipeName})
	assert.Error(t, err)
}

func TestExec_MissingSource(t *testing.T) {
	dir := t.TempDir()

	p := &Processor{NewWidth: 4}
	err := p.Execute(&Ops{
		Src:      filepath.Join(dir, "missing.png"),
		Dst:      filepath.Join(dir, "out.png"),
		PipeName: pipeName,
	})
	assert.Error(t, err)
}
