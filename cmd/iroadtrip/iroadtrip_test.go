package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testBorders = "Alpha = Beta 10; Gamma 20;\n" +
		"Beta (Republic) = Alpha 10; Gamma 5;\n" +
		"Gamma = Alpha 20; Beta 5; Delta 1;\n" +
		"Delta = Gamma 1;\n" +
		"Island =\n"

	testCapdist = "numa,ida,numb,idb,kmdist,midist\n" +
		"1,AA,2,BB,500,310\n" +
		"2,BB,3,CC,100,62\n" +
		"1,AA,3,CC,900,559\n"

	testStateNames = "statenumber\tstateid\tcountryname\tstart\tend\n" +
		"1\tAA\tAlpha\t1816-01-01\t2020-12-31\n" +
		"2\tBB\tBeta\t1816-01-01\t2020-12-31\n" +
		"3\tCC\tGamma\t1816-01-01\t2020-12-31\n" +
		"4\tDD\tDelta\t1816-01-01\t2020-12-31\n"
)

func writeSources(t *testing.T) (dir string, paths []string) {
	t.Helper()
	dir = t.TempDir()
	for _, f := range []struct{ name, content string }{
		{"borders.txt", testBorders},
		{"capdist.csv", testCapdist},
		{"state_name.tsv", testStateNames},
	} {
		p := filepath.Join(dir, f.name)
		require.NoError(t, os.WriteFile(p, []byte(f.content), 0o644))
		paths = append(paths, p)
	}
	return dir, paths
}

func runCLI(t *testing.T, input string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(context.Background(), args, strings.NewReader(input), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestREPL_Route(t *testing.T) {
	_, paths := writeSources(t)

	code, out, _ := runCLI(t, "Alpha\nGamma\nexit\n", paths...)
	require.Equal(t, 0, code)

	assert.Contains(t, out, "Enter the name of the first country (type EXIT to quit): ")
	assert.Contains(t, out, "Enter the name of the second country (type EXIT to quit): ")
	assert.Contains(t, out, "Route from Alpha to Gamma:\n"+
		"* Alpha --> Beta (500 km.)\n"+
		"* Beta --> Gamma (100 km.)\n")
}

func TestREPL_InvalidNameRestarts(t *testing.T) {
	_, paths := writeSources(t)

	code, out, _ := runCLI(t, "Atlantis\nBeta (Republic)\nNowhere\nEXIT\n", paths...)
	require.Equal(t, 0, code)

	assert.Equal(t, 2, strings.Count(out, "Invalid country name. Please enter a valid country name."))
	assert.Equal(t, 3, strings.Count(out, "first country"))
	assert.Equal(t, 1, strings.Count(out, "second country"))
	assert.NotContains(t, out, "Route from")
}

func TestREPL_NoPath(t *testing.T) {
	_, paths := writeSources(t)

	code, out, _ := runCLI(t, "Alpha\nIsland\nGamma\nDelta\nAlpha\nAlpha\n", paths...)
	require.Equal(t, 0, code)

	assert.Contains(t, out, "No valid path exists between Alpha and Island\n")
	assert.Contains(t, out, "No valid path exists between Alpha and Alpha\n")

	// Delta has a code but no recorded distance to Gamma.
	assert.Contains(t, out, "No valid path exists between Gamma and Delta\n"+
		"(a border chain exists, but capital distances along it are unknown)\n")
}

func TestREPL_EOFEndsSession(t *testing.T) {
	_, paths := writeSources(t)

	code, _, _ := runCLI(t, "Alpha\n", paths...)
	assert.Equal(t, 0, code)
}

func TestLoadFailure(t *testing.T) {
	dir, paths := writeSources(t)
	paths[1] = filepath.Join(dir, "missing.csv")

	code, out, errOut := runCLI(t, "", paths...)
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "failed to load capital distances")
	assert.Contains(t, errOut, "missing.csv")
}

func TestMissingSources(t *testing.T) {
	code, _, errOut := runCLI(t, "")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "missing source paths: borders, capdist, state_names")
}

func TestWrongArgCount(t *testing.T) {
	code, _, errOut := runCLI(t, "", "only-one.txt")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "expected 0 or 3 source paths, got 1")
}

func TestFlagsAndConfigFile(t *testing.T) {
	dir, paths := writeSources(t)

	cfg := filepath.Join(dir, "roadtrip.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(
		"borders: "+paths[0]+"\n"+
			"capdist: /does/not/exist.csv\n"+
			"state_names: "+paths[2]+"\n"), 0o644))

	// The flag overrides the broken config entry.
	code, out, _ := runCLI(t, "", "distance", "Gamma", "Beta (Republic)", "--config", cfg, "--capdist", paths[1])
	require.Equal(t, 0, code)
	assert.Equal(t, "100\n", out)
}

func TestDistance_Unknown(t *testing.T) {
	_, paths := writeSources(t)

	args := append([]string{"distance", "Gamma", "Delta"}, paths...)
	code, out, _ := runCLI(t, "", args...)
	require.Equal(t, 0, code)
	assert.Equal(t, "-1\n", out)
}

func TestVerboseLogsLoad(t *testing.T) {
	_, paths := writeSources(t)

	args := append([]string{"--verbose", "distance", "Alpha", "Beta"}, paths...)
	code, out, errOut := runCLI(t, "", args...)
	require.Equal(t, 0, code)
	assert.Equal(t, "500\n", out)
	assert.Contains(t, errOut, "loaded borders")
	assert.Contains(t, errOut, "snapshot=2020-12-31")
}

func TestDump(t *testing.T) {
	_, paths := writeSources(t)

	args := append([]string{"dump"}, paths...)
	code, out, _ := runCLI(t, "", args...)
	require.Equal(t, 0, code)

	assert.True(t, strings.HasPrefix(out, "Country Borders:\n"+
		"Alpha borders: [Beta, Gamma]\n"+
		"Beta borders: [Alpha, Gamma]\n"+
		"Delta borders: [Gamma]\n"+
		"Gamma borders: [Alpha, Beta, Delta]\n"+
		"Island borders: []\n"), out)
	assert.Contains(t, out, "\nCountry Abbreviations:\nAlpha abbreviation: AA\n")
	assert.Contains(t, out, "\nCapital Distances:\nAA_BB distance: 500\nAA_CC distance: 900\n")
	assert.True(t, strings.HasSuffix(out, "CC_BB distance: 100\n"), out)
}
