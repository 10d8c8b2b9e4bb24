// SPDX-License-Identifier: MIT
package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvdm/distance"
	"github.com/katalvlaran/lvdm/dm"
	"github.com/katalvlaran/lvdm/internal/cli"
	"github.com/katalvlaran/lvdm/internal/dmfile"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run executes dmtool and returns the exit code, stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := cli.Execute(args, strings.NewReader(stdin), &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func newGolden(t *testing.T) *goldie.Goldie {
	t.Helper()

	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestValidate_ValidFiles(t *testing.T) {
	t.Parallel()

	code, out, _ := run(t, "", "validate", "testdata/dm_3x3.dm", "testdata/dm_2x2_asym.dm", "testdata/dm_1x1.dm")
	require.Equal(t, 0, code)
	require.Equal(t,
		"ok    testdata/dm_3x3.dm  DissimilarityMatrix 3x3\n"+
			"ok    testdata/dm_2x2_asym.dm  DissimilarityMatrix 2x2\n"+
			"ok    testdata/dm_1x1.dm  DissimilarityMatrix 1x1\n",
		out)
}

func TestValidate_ReportsEachFailureClass(t *testing.T) {
	t.Parallel()

	tests := []struct {
		file  string
		class string
	}{
		{"testdata/invalid_missing_data.dm", "format/missing data"},
		{"testdata/invalid_mismatched.dm", "format/mismatched id"},
		{"testdata/invalid_extra.dm", "format/extra data"},
		{"testdata/invalid_missing_rows.dm", "format/missing data"},
		{"testdata/invalid_empty.dm", "format/empty"},
		{"testdata/invalid_diagonal.dm", "invalid"},
		{"testdata/dm_2x2_asym.dm", "asymmetric"},
		{"testdata/does_not_exist.dm", "not-found"},
	}

	args := []string{"validate", "--distance", "--jobs", "3"}
	for _, tc := range tests {
		args = append(args, tc.file)
	}
	args = append(args, "testdata/dm_3x3.dm")

	code, out, errOut := run(t, "", args...)
	require.Equal(t, 1, code)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, len(tests)+1)
	for i, tc := range tests {
		require.True(t, strings.HasPrefix(lines[i], "FAIL  "+tc.file+"  "+tc.class+": "), lines[i])
	}
	require.Equal(t, "ok    testdata/dm_3x3.dm  DistanceMatrix 3x3", lines[len(tests)])

	require.Contains(t, errOut, "Error: 8 of 9 files failed validation")
	require.Contains(t, errOut, "Hint: the file is not in dm format")
}

func TestValidate_Stdin(t *testing.T) {
	t.Parallel()

	code, out, _ := run(t, "\ta\tb\na\t0\t1\nb\t1\t0\n", "validate", "--distance", "-")
	require.Equal(t, 0, code)
	require.Equal(t, "ok    -  DistanceMatrix 2x2\n", out)
}

func TestValidate_StdinAtMostOnce(t *testing.T) {
	t.Parallel()

	code, out, errOut := run(t, "\ta\na\t0\n", "validate", "-", "testdata/dm_1x1.dm", "-")
	require.Equal(t, 1, code)
	require.Empty(t, out)
	require.Contains(t, errOut, `Error: stdin ("-") given 2 times`)
	require.Contains(t, errOut, "Hint: pass - at most once")
}

func TestValidate_EpsilonFlag(t *testing.T) {
	t.Parallel()

	in := "\ta\tb\na\t0\t1\nb\t1.0000001\t0\n"
	code, _, _ := run(t, in, "validate", "--distance", "-")
	require.Equal(t, 1, code)

	code, _, _ = run(t, in, "validate", "--distance", "--epsilon", "1e-6", "-")
	require.Equal(t, 0, code)
}

func TestValidate_RequiresFiles(t *testing.T) {
	t.Parallel()

	code, _, errOut := run(t, "", "validate")
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "requires at least 1 arg")
}

func TestInfo_Golden(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"info_text", []string{"info", "testdata/dm_3x3.dm"}},
		{"info_text_1x1", []string{"info", "testdata/dm_1x1.dm"}},
		{"info_json", []string{"info", "--distance", "-o", "json", "testdata/dm_3x3.dm"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			code, out, errOut := run(t, "", tc.args...)
			require.Equal(t, 0, code, errOut)
			newGolden(t).Assert(t, tc.name, []byte(out))
		})
	}
}

func TestInfo_YAML(t *testing.T) {
	t.Parallel()

	code, out, errOut := run(t, "", "info", "--output", "yaml", "testdata/dm_2x2_asym.dm")
	require.Equal(t, 0, code, errOut)

	var s cli.Summary
	require.NoError(t, yaml.Unmarshal([]byte(out), &s))
	require.Equal(t, "testdata/dm_2x2_asym.dm", s.File)
	require.Equal(t, "DissimilarityMatrix", s.Kind)
	require.Equal(t, []string{"a", "b"}, s.Labels)
	require.False(t, s.Symmetric)
	require.NotNil(t, s.MinOffDiagonal)
	require.Equal(t, -2.0, *s.MinOffDiagonal)
	require.Equal(t, 1.0, *s.MaxOffDiagonal)
}

func TestInfo_JSONLargeValues(t *testing.T) {
	t.Parallel()

	in := "\ta\tb\na\t0\t1e308\nb\t1e308\t0\n"
	code, out, errOut := run(t, in, "info", "-o", "json", "-")
	require.Equal(t, 0, code, errOut)

	var s cli.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	require.NotNil(t, s.MeanOffDiagonal)
	require.Equal(t, 1e308, *s.MinOffDiagonal)
	require.Equal(t, 1e308, *s.MaxOffDiagonal)
	require.Equal(t, 1e308, *s.MeanOffDiagonal)
}

func TestInfo_Errors(t *testing.T) {
	t.Parallel()

	code, _, errOut := run(t, "", "info", "-o", "xml", "testdata/dm_3x3.dm")
	require.Equal(t, 1, code)
	require.Contains(t, errOut, `invalid output "xml"`)

	code, _, errOut = run(t, "", "info", "--distance", "testdata/dm_2x2_asym.dm")
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "read testdata/dm_2x2_asym.dm")
	require.Contains(t, errOut, "Hint: drop --distance")
}

func TestConvert_CompressedRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"out.dm", "out.dm.gz", "out.dm.zst"} {
		path := filepath.Join(dir, name)
		code, _, errOut := run(t, "", "convert", "--distance", "testdata/dm_3x3.dm", path)
		require.Equal(t, 0, code, errOut)

		r, err := dmfile.Open(path)
		require.NoError(t, err)
		got, err := dm.ReadDistance(r)
		require.NoError(t, err)
		require.NoError(t, r.Close())

		want, err := distance.NewDistance(
			[]string{"a", "b", "c"},
			[][]float64{{0, 0.01, 4.2}, {0.01, 0, 12}, {4.2, 12, 0}},
		)
		require.NoError(t, err)
		require.True(t, distance.Equal(want, got), name)

		code, out, _ := run(t, "", "validate", path)
		require.Equal(t, 0, code)
		require.Contains(t, out, "ok    "+path)
	}
}

func TestConvert_FilterToStdout(t *testing.T) {
	t.Parallel()

	code, out, errOut := run(t, "", "convert", "--ids", "c,a", "testdata/dm_3x3.dm", "-")
	require.Equal(t, 0, code, errOut)
	require.Equal(t, "\tc\ta\nc\t0\t4.2\na\t4.2\t0\n", out)
}

func TestConvert_StdinAndDelimiters(t *testing.T) {
	t.Parallel()

	in := ",x,y\nx,0,2\ny,3,0\n"
	code, out, errOut := run(t, in, "convert", "--delimiter", ",", "--out-delimiter", ";", "-", "-")
	require.Equal(t, 0, code, errOut)
	require.Equal(t, ";x;y\nx;0;2\ny;3;0\n", out)
}

func TestConvert_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	code, _, errOut := run(t, "", "convert", "--ids", "a,zzz", "testdata/dm_3x3.dm", filepath.Join(dir, "x.dm"))
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "unknown label")
	require.Contains(t, errOut, "Hint: every --ids entry")

	code, _, errOut = run(t, "", "convert", "testdata/invalid_extra.dm", filepath.Join(dir, "y.dm"))
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "extra data")
	_, err := os.Stat(filepath.Join(dir, "y.dm"))
	require.ErrorIs(t, err, os.ErrNotExist)

	// A label containing the output delimiter cannot be written; no partial file is left.
	out := filepath.Join(dir, "z.dm")
	code, _, errOut = run(t, ",a\tb,c\na\tb,0,1\nc,1,0\n", "convert", "--delimiter", ",", "--out-delimiter=\t", "-", out)
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "Hint: pick an --out-delimiter")
	_, err = os.Stat(out)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigFileFlag(t *testing.T) {
	t.Parallel()

	cfg := filepath.Join(t.TempDir(), "dmtool.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("[validate]\ndistance = true\n"), 0o644))

	code, out, _ := run(t, "", "--config", cfg, "validate", "testdata/dm_2x2_asym.dm")
	require.Equal(t, 1, code)
	require.Contains(t, out, "asymmetric")

	code, _, errOut := run(t, "", "--config", filepath.Join(t.TempDir(), "missing.toml"), "validate", "testdata/dm_1x1.dm")
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "Hint: check the --config path")
}
