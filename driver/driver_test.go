// SPDX-License-Identifier: MIT
package driver_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatmul/driver"
	"github.com/katalvlaran/lvmatmul/matrix"
	"github.com/katalvlaran/lvmatmul/matrixio"
)

var (
	turkishReport = regexp.MustCompile(`^Seri zaman: \d+\.\d{6} saniye\nParalel zaman: \d+\.\d{6} saniye\n$`)
	englishReport = regexp.MustCompile(`^Serial time: \d+\.\d{6} seconds\nParallel time: \d+\.\d{6} seconds\n$`)
)

// fixture lays out input files in a temp dir and returns their paths plus
// the (not yet existing) output path.
func fixture(t *testing.T, a, b string) (pathA, pathB, pathOut string) {
	t.Helper()
	dir := t.TempDir()
	pathA = filepath.Join(dir, "a.txt")
	pathB = filepath.Join(dir, "b.txt")
	pathOut = filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(pathA, []byte(a), 0o644))
	require.NoError(t, os.WriteFile(pathB, []byte(b), 0o644))

	return pathA, pathB, pathOut
}

// run invokes driver.Main and captures both streams.
func run(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = driver.Main(args, &out, &errOut)

	return code, out.String(), errOut.String()
}

func requireNoFile(t *testing.T, path string) {
	t.Helper()
	_, err := os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist, "output file must not exist")
}

func TestMainTwoByTwo(t *testing.T) {
	a, b, out := fixture(t, "2 2\n1 2\n3 4\n", "2 2\n5 6\n7 8\n")

	code, stdout, stderr := run(a, b, out)
	require.Equal(t, driver.ExitSuccess, code, stderr)
	require.Regexp(t, turkishReport, stdout)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "19.00 22.00 \n43.00 50.00 \n", string(got))
}

func TestMainRowTimesColumn(t *testing.T) {
	a, b, out := fixture(t, "1 3\n1 1 1\n", "3 1\n1\n1\n1\n")

	code, _, stderr := run("--workers", "2", "--verify", a, b, out)
	require.Equal(t, driver.ExitSuccess, code, stderr)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "3.00 \n", string(got))
}

func TestMainEnglishReport(t *testing.T) {
	a, b, out := fixture(t, "1 1\n2\n", "1 1\n3\n")

	code, stdout, stderr := run("--lang", "en", a, b, out)
	require.Equal(t, driver.ExitSuccess, code, stderr)
	require.Regexp(t, englishReport, stdout)
}

func TestMainDimensionMismatch(t *testing.T) {
	a, b, out := fixture(t, "2 3\n1 2 3\n4 5 6\n", "2 2\n1 0\n0 1\n")

	code, stdout, stderr := run(a, b, out)
	require.Equal(t, driver.ExitFailure, code)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "dimension_mismatch")
	requireNoFile(t, out)
}

func TestMainDimensionMismatchKeepsExistingOutput(t *testing.T) {
	a, b, out := fixture(t, "1 2\n1 2\n", "1 2\n1 2\n")
	require.NoError(t, os.WriteFile(out, []byte("previous\n"), 0o644))

	code, _, _ := run(a, b, out)
	require.Equal(t, driver.ExitFailure, code)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "previous\n", string(got))
}

func TestMainMalformedInput(t *testing.T) {
	a, b, out := fixture(t, "2 2\n1 2\n3\n", "2 2\n1 0\n0 1\n")

	code, stdout, stderr := run(a, b, out)
	require.Equal(t, driver.ExitFailure, code)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "format")
	require.Contains(t, stderr, a)
	requireNoFile(t, out)
}

func TestMainMissingInput(t *testing.T) {
	_, b, out := fixture(t, "1 1\n1\n", "1 1\n1\n")
	missing := filepath.Join(filepath.Dir(out), "missing.txt")

	code, _, stderr := run(missing, b, out)
	require.Equal(t, driver.ExitFailure, code)
	require.Contains(t, stderr, "kind=io")
	requireNoFile(t, out)
}

func TestMainUnwritableOutput(t *testing.T) {
	a, b, out := fixture(t, "1 1\n1\n", "1 1\n1\n")
	out = filepath.Join(filepath.Dir(out), "no-such-dir", "out.txt")

	code, stdout, stderr := run(a, b, out)
	require.Equal(t, driver.ExitFailure, code)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "kind=io")
}

func TestMainUsage(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"a.txt", "b.txt"},
		{"a.txt", "b.txt", "c.txt", "d.txt"},
		{"--no-such-flag", "a.txt", "b.txt", "c.txt"},
		{"--workers", "-1", "a.txt", "b.txt", "c.txt"},
		{"--lang", "fr", "a.txt", "b.txt", "c.txt"},
	} {
		t.Run(fmt.Sprint(args), func(t *testing.T) {
			code, stdout, stderr := run(args...)
			require.Equal(t, driver.ExitFailure, code)
			require.Empty(t, stdout)
			require.Contains(t, stderr, "kind=usage")
			require.Contains(t, stderr, "Usage:")
		})
	}
}

func TestRunReturnsTimings(t *testing.T) {
	a, b, out := fixture(t, "3 2\n1 2\n3 4\n5 6\n", "2 3\n1 0 1\n0 1 1\n")

	rep, err := driver.Run(driver.Config{PathA: a, PathB: b, PathOut: out, Workers: 4, Verify: true}, zerolog.Nop())
	require.NoError(t, err)
	require.GreaterOrEqual(t, rep.Serial, time.Duration(0))
	require.GreaterOrEqual(t, rep.Parallel, time.Duration(0))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "1.00 2.00 3.00 \n3.00 4.00 7.00 \n5.00 6.00 11.00 \n", string(got))
}

func TestClassify(t *testing.T) {
	cases := []struct {
		err  error
		want driver.Kind
	}{
		{nil, driver.KindNone},
		{fmt.Errorf("x: %w", driver.ErrUsage), driver.KindUsage},
		{fmt.Errorf("%w: %w", matrixio.ErrOpen, os.ErrNotExist), driver.KindIO},
		{fmt.Errorf("%w: out", matrixio.ErrCreate), driver.KindIO},
		{fmt.Errorf("%w: a.txt", matrixio.ErrFormat), driver.KindFormat},
		{fmt.Errorf("mul: %w", matrix.ErrDimensionMismatch), driver.KindDimensionMismatch},
		{driver.ErrVerify, driver.KindVerify},
		{errors.New("boom"), driver.KindInternal},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, driver.Classify(tc.err), "%v", tc.err)
		wantCode := driver.ExitFailure
		if tc.want == driver.KindNone {
			wantCode = driver.ExitSuccess
		}
		require.Equal(t, wantCode, driver.ExitCode(tc.err))
	}
	require.Equal(t, "dimension_mismatch", driver.KindDimensionMismatch.String())
	require.Equal(t, "unknown", driver.Kind(99).String())
}

func TestNewCommandHelp(t *testing.T) {
	var out bytes.Buffer
	cmd := driver.NewCommand(&out, io.Discard)
	cmd.SetArgs([]string{"--help"})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "--workers")
	require.Contains(t, out.String(), "--verify")
}
