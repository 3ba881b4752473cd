package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// run executes the CLI in-process. Package-level flag variables and cobra's
// per-flag Changed state survive between invocations, so both are reset
// first.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cfgPath = ""
	noColor = false
	unwrapInPlace = false
	unwrapOut = ""
	wrapRangesPath = ""
	wrapInPlace = false
	wrapOut = ""
	reset := func(f *pflag.Flag) { f.Changed = false }
	rootCmd.PersistentFlags().VisitAll(reset)
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(reset)
	}

	var out, errBuf bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(append([]string{"--no-color"}, args...))
	err = rootCmd.Execute()
	return out.String(), errBuf.String(), err
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestUnwrapFileToStdout(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.js", `let a /*: number */ = 1;`)

	stdout, stderr, err := run(t, "unwrap", path)
	require.NoError(t, err)
	require.Empty(t, stderr)
	require.Equal(t, `let a : number  = 1;`, stdout)
}

func TestUnwrapWriteInPlace(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.js", `/*:: type X = 1; */ let y = 2;`)

	stdout, _, err := run(t, "unwrap", "-w", path)
	require.NoError(t, err)
	require.Empty(t, stdout)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, ` type X = 1;  let y = 2;`, string(data))
}

func TestUnwrapDirUsesConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.js", `let a /*: A */;`)
	writeFile(t, dir, "skip.ts", `let b /*: B */;`)
	outDir := filepath.Join(t.TempDir(), "built")
	cfgFile := writeFile(t, t.TempDir(), "blts.yaml",
		"extensions: [\".js\"]\nout_dir: "+outDir+"\n")

	_, _, err := run(t, "-c", cfgFile, "unwrap", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outDir, "a.js"))
	require.NoError(t, err)
	require.Equal(t, `let a : A ;`, string(data))

	_, err = os.Stat(filepath.Join(outDir, "skip.ts"))
	require.True(t, os.IsNotExist(err))
}

func TestUnwrapWarnsOnUnterminated(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.js", `let a; /*:: type X`)

	stdout, stderr, err := run(t, "unwrap", path)
	require.NoError(t, err)
	require.Equal(t, `let a; /*:: type X`, stdout)
	require.Contains(t, stderr, "unterminated")
}

func TestUnwrapFailOnUnterminated(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.js", `let a; /*:: type X`)
	cfgFile := writeFile(t, dir, "blts.yaml", "fail_on_unterminated: true\n")

	_, _, err := run(t, "-c", cfgFile, "unwrap", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unterminated")
}

func TestSpansTable(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.js", `let a /*: number */ = 1;`)

	stdout, _, err := run(t, "spans", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "OPEN")
	fields := strings.Fields(lines[1])
	require.Equal(t, []string{"6", "9", "1", "18"}, fields[:4])
}

func TestSpansEmptyFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.js", `let a = 1;`)

	stdout, _, err := run(t, "spans", path)
	require.NoError(t, err)
	require.Contains(t, stdout, "no marker comments")
}

func TestTokensMarksMarkerTokens(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.js", `a /*:: b */ c`)

	stdout, _, err := run(t, "tokens", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 3)
	require.NotContains(t, lines[0], "[marker]")
	require.Contains(t, lines[1], "[marker]")
	require.NotContains(t, lines[2], "[marker]")
}

func TestWrapWithRanges(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.ts", `type X = 1; let y = 2;`)
	ranges := writeFile(t, dir, "ranges.yaml", "ranges:\n  - start: 0\n    end: 11\n")

	stdout, _, err := run(t, "wrap", "--ranges", ranges, path)
	require.NoError(t, err)
	require.Equal(t, `/*:: type X = 1; */ let y = 2;`, stdout)
}

func TestWrapRequiresRanges(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.ts", `type X = 1;`)

	_, _, err := run(t, "wrap", path)
	require.Error(t, err)
}
