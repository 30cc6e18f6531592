package misc

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestCheckFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")

	exists, err := CheckFileExists(path)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, os.WriteFile(path, []byte("a"), 0644))

	exists, err = CheckFileExists(path)
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = CheckFileExists(dir)
	assert.Error(t, err)
}

func TestUniqueFilename(t *testing.T) {
	dir := t.TempDir()

	first, err := UniqueFilename(dir, "pic", ".png")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, first), nil, 0644))

	second, err := UniqueFilename(dir, "pic", ".png")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, ".png", filepath.Ext(second))
}

func TestWritePNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(1, 1, color.NRGBA{255, 0, 0, 255})

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, WritePNG(path, img))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	decoded, err := png.Decode(file)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())

	r, _, _, _ := decoded.At(1, 1).RGBA()
	assert.Equal(t, uint32(0xffff), r)

	assert.Error(t, WritePNG(filepath.Join(t.TempDir(), "missing", "out.png"), img))
}

func TestUseLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	UseLogger(zap.New(core))
	t.Cleanup(func() { UseLogger(zap.NewNop()) })

	ErrLogger.Errorf("failed %d", 1)
	InfoLogger.Debugf("debug %s", "msg")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "fail", entries[0].LoggerName)
	assert.Equal(t, "failed 1", entries[0].Message)
	assert.Equal(t, "info", entries[1].LoggerName)
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")

	require.NoError(t, os.WriteFile(src, []byte("hello"), 0644))
	require.NoError(t, os.WriteFile(dst, []byte("something longer"), 0644))

	require.NoError(t, CopyFile(src, dst, 0644))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))

	assert.Error(t, CopyFile(filepath.Join(dir, "missing"), dst, 0644))
}

func TestCheckExeExists(t *testing.T) {
	assert.False(t, CheckExeExists("surely-there-is-no-such-program-installed"))
}

func TestGetScriptName(t *testing.T) {
	assert.Equal(t, "common_test.go", GetScriptName())
}
