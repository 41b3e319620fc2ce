package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clipboard/internal/clipboard"
)

type runResult struct {
	code   int
	stdout string
	stderr string
}

func runWith(t *testing.T, clip clipboard.Service, args ...string) runResult {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(args, Deps{
		Stdout:      &stdout,
		Stderr:      &stderr,
		Clipboard:   clip,
		DetectColor: func(io.Writer) bool { return false },
	})
	return runResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestNoEndpoints(t *testing.T) {
	mem := clipboard.NewMemoryWithText("text")
	res := runWith(t, mem)

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, "must specify either input and output file")
	assert.Equal(t, "Error: You must specify either input and output file.\n", res.stdout)
	assert.False(t, mem.Touched())
}

func TestMissingInputFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nonexistent.txt")
	res := runWith(t, clipboard.NewMemory(), "-i", missing)

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, "File could not be opened")
}

func TestHelp(t *testing.T) {
	for _, flag := range []string{"-h", "--help"} {
		t.Run(flag, func(t *testing.T) {
			mem := clipboard.NewMemoryWithText("text")
			res := runWith(t, mem, flag)

			assert.Equal(t, 0, res.code)
			assert.Contains(t, res.stdout, "clipboard [OPTIONS].. <file>")
			assert.Contains(t, res.stdout, "-i, --input file")
			assert.Contains(t, res.stdout, "Input file (clipboard if not specified)")
			assert.Contains(t, res.stdout, "-o, --output file")
			assert.Contains(t, res.stdout, "Print usage")
			assert.Contains(t, res.stdout, "Print version")
			assert.False(t, mem.Touched())
		})
	}
}

func TestHelpSkipsTransfer(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(in, []byte("data"), 0644))

	mem := clipboard.NewMemory()
	res := runWith(t, mem, "-i", in, "-o", out, "-h")

	assert.Equal(t, 0, res.code)
	assert.NoFileExists(t, out)
	assert.False(t, mem.Touched())
}

func TestVersion(t *testing.T) {
	for _, flag := range []string{"-v", "--version"} {
		mem := clipboard.NewMemory()
		res := runWith(t, mem, flag)

		assert.Equal(t, 0, res.code, flag)
		assert.Equal(t, "Version 0.1.0\n", res.stdout, flag)
		assert.False(t, mem.Touched(), flag)
	}
}

func TestFileToClipboard(t *testing.T) {
	in := filepath.Join(t.TempDir(), "in.txt")
	payload := "first line\r\nsecond line\n\x00tail"
	require.NoError(t, os.WriteFile(in, []byte(payload), 0644))

	mem := clipboard.NewMemory()
	res := runWith(t, mem, "-i", in)

	assert.Equal(t, 0, res.code)
	assert.Equal(t, "File copied to clipboard\n", res.stdout)
	assert.Equal(t, payload, mem.Text())
}

func TestClipboardToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.txt")
	payload := "pasted ✓\n"
	mem := clipboard.NewMemoryWithText(payload)

	res := runWith(t, mem, "--output", out)

	assert.Equal(t, 0, res.code)
	assert.Equal(t, "Clipboard copied to "+out+"\n", res.stdout)
	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, payload, string(got))
}

func TestFileToFile(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	payload := []byte{'a', 0x00, 0xff, '\r', '\n', 'z'}
	require.NoError(t, os.WriteFile(a, payload, 0644))

	mem := clipboard.NewMemoryWithText("keep me")
	res := runWith(t, mem, "-i", a, "-o", b)

	assert.Equal(t, 0, res.code)
	got, err := os.ReadFile(b)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
	assert.False(t, mem.Touched())
	assert.Equal(t, "keep me", mem.Text())
}

func TestEmptyClipboard(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.txt")
	res := runWith(t, clipboard.NewMemory(), "-o", out)

	assert.Equal(t, 1, res.code)
	assert.Equal(t, "Error: Clipboard doesn't contain text\n", res.stdout)
	assert.NoFileExists(t, out)
}

func TestClipboardWriteFailure(t *testing.T) {
	in := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(in, []byte("data"), 0644))

	mem := clipboard.NewMemory()
	mem.FailWrites(clipboard.ErrUnavailable)

	res := runWith(t, mem, "-i", in)
	assert.Equal(t, 0, res.code, "clipboard write failure is reported but not fatal by default")
	assert.Equal(t, "Error: Could not copy to clipboard\n", res.stdout)

	res = runWith(t, mem, "-i", in, "--strict")
	assert.Equal(t, 1, res.code)
	assert.Equal(t, "Error: Could not copy to clipboard\n", res.stdout)
}

func TestUnopenableOutputFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "no-such-dir", "out.txt")

	res := runWith(t, clipboard.NewMemoryWithText("data"), "-o", out)
	assert.Equal(t, 0, res.code, "unopenable output is skipped silently by default")
	assert.Empty(t, res.stdout)

	res = runWith(t, clipboard.NewMemoryWithText("data"), "-o", out, "--strict")
	assert.Equal(t, 1, res.code)
	assert.Equal(t, "Error: Could not write to file\n", res.stdout)
}

func TestUsageErrors(t *testing.T) {
	in := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(in, []byte("data"), 0644))

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown flag", []string{"--bogus"}, "unknown flag: --bogus"},
		{"positional argument", []string{"-i", in, "extra.txt"}, "unknown command"},
		{"missing flag value", []string{"-i"}, "flag needs an argument"},
		{"bad backend", []string{"-i", in, "--backend", "carrier-pigeon"}, "invalid backend"},
		{"bad log level", []string{"-i", in, "--log-level", "trace"}, "invalid log level"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mem := clipboard.NewMemory()
			res := runWith(t, mem, test.args...)

			assert.Equal(t, 1, res.code)
			assert.Contains(t, res.stdout, "Error: ")
			assert.Contains(t, res.stdout, test.want)
			assert.False(t, mem.Touched())
		})
	}
}

func TestDebugLogging(t *testing.T) {
	in := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(in, bytes.Repeat([]byte("x"), 2048), 0644))

	res := runWith(t, clipboard.NewMemory(), "-i", in, "--log-level", "debug")

	assert.Equal(t, 0, res.code)
	assert.Equal(t, "File copied to clipboard\n", res.stdout)
	assert.Contains(t, res.stderr, "Payload read.")
	assert.Contains(t, res.stderr, "size=\"2.0 kB\"")
}

func TestColorDecision(t *testing.T) {
	var stdout bytes.Buffer
	calls := 0
	code := Run(nil, Deps{
		Stdout:    &stdout,
		Stderr:    io.Discard,
		Clipboard: clipboard.NewMemory(),
		DetectColor: func(io.Writer) bool {
			calls++
			return true
		},
	})

	assert.Equal(t, 1, code)
	assert.Equal(t, 1, calls)
	assert.Contains(t, stdout.String(), "\x1b[31m")

	stdout.Reset()
	code = Run([]string{"--no-color"}, Deps{
		Stdout:      &stdout,
		Stderr:      io.Discard,
		Clipboard:   clipboard.NewMemory(),
		DetectColor: func(io.Writer) bool { return true },
	})
	assert.Equal(t, 1, code)
	assert.Equal(t, "Error: You must specify either input and output file.\n", stdout.String())
}

func TestDocsCommand(t *testing.T) {
	dir := t.TempDir()
	res := runWith(t, clipboard.NewMemory(), "docs", "--format", "md", "--output", dir)

	assert.Equal(t, 0, res.code)
	assert.FileExists(t, filepath.Join(dir, "clipboard.md"))
}
