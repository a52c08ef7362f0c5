package commands_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/biolib/cmd/biolib/commands"
	"github.com/macropower/biolib/pkg/fsutil"
)

func writeTestFile(t *testing.T, dir, name, data string) string {
	t.Helper()

	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(data), 0o600))

	return p
}

func TestCheckFileCmd(t *testing.T) {
	dir := t.TempDir()
	a := writeTestFile(t, dir, "a.fq", "@r\n")
	b := writeTestFile(t, dir, "b.fq", "@r\n")

	_, stderr, err := run(t, "", "check", "file", a, b)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	missing1 := filepath.Join(dir, "missing1.fq")
	missing2 := filepath.Join(dir, "missing2.fq")

	_, stderr, err = run(t, "", "check", "file", a, missing1, dir, missing2)
	require.ErrorIs(t, err, fsutil.ErrFileNotExist)
	assert.Contains(t, err.Error(), missing1)
	assert.Contains(t, err.Error(), missing2)
	assert.Contains(t, err.Error(), dir)
	assert.Contains(t, stderr, missing1)
	assert.Contains(t, stderr, "input file does not exist")
}

func TestCheckDirCmd(t *testing.T) {
	dir := t.TempDir()
	file := writeTestFile(t, dir, "a.fq", "@r\n")

	_, _, err := run(t, "", "check", "dir", dir)
	require.NoError(t, err)

	_, stderr, err := run(t, "", "--log_format", "json", "check", "dir", file)
	require.ErrorIs(t, err, fsutil.ErrDirNotExist)
	assert.Contains(t, stderr, `"level":"ERROR"`)
	assert.Contains(t, stderr, "input directory does not exist")
}

func TestCheckCmdRequiresPaths(t *testing.T) {
	_, _, err := run(t, "", "check", "file")
	require.Error(t, err)
}

func TestMkdirCmd(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "out", "align")
	b := filepath.Join(dir, "out", "bins")

	for range 2 {
		_, stderr, err := run(t, "", "mkdir", a, b)
		require.NoError(t, err)
		assert.Empty(t, stderr)
		assert.DirExists(t, a)
		assert.DirExists(t, b)
	}

	file := writeTestFile(t, dir, "taken", "")

	_, stderr, err := run(t, "", "mkdir", filepath.Join(dir, "ok"), file)
	require.ErrorIs(t, err, fsutil.ErrCreateDir)
	require.ErrorIs(t, err, fsutil.ErrNotDir)
	assert.Contains(t, stderr, file)
	assert.DirExists(t, filepath.Join(dir, "ok"))
}

func TestConcatCmd(t *testing.T) {
	dir := t.TempDir()
	a := writeTestFile(t, dir, "part1.fna", ">c1\nACGT\n")
	b := writeTestFile(t, dir, "part2.fna", ">c2\nTTGA\n")

	out := filepath.Join(dir, "nested", "genome.fna")

	stdout, stderr, err := run(t, "", "concat", "-o", out, a, b)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, ">c1\nACGT\n>c2\nTTGA\n", string(got))
}

func TestConcatCmdGzip(t *testing.T) {
	dir := t.TempDir()
	a := writeTestFile(t, dir, "lane1.fq", "@r1\nACGT\n+\nIIII\n")
	b := writeTestFile(t, dir, "lane2.fq", "@r2\nGGCC\n+\nIIII\n")

	out := filepath.Join(dir, "reads.fq.gz")

	_, _, err := run(t, "", "concat", "--output", out, a, b)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	gzr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)

	plain, err := io.ReadAll(gzr)
	require.NoError(t, err)
	assert.Equal(t, "@r1\nACGT\n+\nIIII\n@r2\nGGCC\n+\nIIII\n", string(plain))
}

func TestConcatCmdStdout(t *testing.T) {
	dir := t.TempDir()
	a := writeTestFile(t, dir, "a.txt", "abc")
	b := writeTestFile(t, dir, "b.txt", "def")

	stdout, _, err := run(t, "", "concat", a, b, a)
	require.NoError(t, err)
	assert.Equal(t, "abcdefabc", stdout)

	stdout, _, err = run(t, "", "concat", "-o", "-", b)
	require.NoError(t, err)
	assert.Equal(t, "def", stdout)
}

func TestConcatCmdMissingInput(t *testing.T) {
	dir := t.TempDir()
	a := writeTestFile(t, dir, "a.txt", "abc")
	out := filepath.Join(dir, "out.txt")

	_, _, err := run(t, "", "concat", "-o", out, a, filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, commands.ErrInvalidArgument)
	require.ErrorIs(t, err, fsutil.ErrFileNotExist)

	// Inputs are validated before the output is touched.
	assert.NoFileExists(t, out)
}
