package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestClassifyCommand(t *testing.T) {
	out, err := run(t, "", "classify", "A[TG]C")
	require.NoError(t, err)
	assert.Contains(t, out, "pattern:    A[GT]C")
	assert.Contains(t, out, "algorithm:  Gonnet")

	out, err = run(t, "", "classify", "--protein", "-m", "1", "C-x(2)-[DE]")
	require.NoError(t, err)
	assert.Contains(t, out, "algorithm:  TarhioUkkonen")
	assert.Contains(t, out, "mismatches: 1")

	_, err = run(t, "", "classify", "A[TG")
	assert.Error(t, err)
}

func TestSearchCommand(t *testing.T) {
	fasta := ">seq1 first\nAGCA\nTC\n>seq2\nttttt\n"
	out, err := run(t, fasta, "search", "A[TG]C")
	require.NoError(t, err)
	assert.Equal(t, "seq1\t0\t2\t3\t0\nseq1\t3\t5\t3\t0\n", out)

	out, err = run(t, "AGCATC", "search", "--begin", "1", "A[TG]C")
	require.NoError(t, err)
	assert.Equal(t, "stdin\t1\t3\t3\t0\nstdin\t4\t6\t3\t0\n", out)

	path := writeFile(t, "plasmid.txt", "ACCCCGTACCG\n")
	out, err = run(t, "", "search", "--no-regex", "AC(2,4)G", path)
	require.NoError(t, err)
	assert.Equal(t, "plasmid\t0\t5\t6\t0\nplasmid\t7\t10\t4\t0\n", out)
}

const enzymeTable = `# test enzymes
EcoRI  GAATTC 6 2 N 1 5 0 0
AbcI   GAATTC 6 2 N 1 5 0 0
EcoRV  GATATC 6 2 Y 3 3 0 0
`

func TestRestrictCommand(t *testing.T) {
	table := writeFile(t, "enzymes.txt", enzymeTable)
	seq := ">pUC\nGAATTCAAAAGATATCAAAA\n"

	out, err := run(t, seq, "restrict", "--enzymes", table, "--fragments")
	require.NoError(t, err)
	assert.Equal(t,
		"pUC\tAbcI\t0\t+\t0\t4\t.\t.\tEcoRI\n"+
			"pUC\tEcoRV\t10\t+\t12\t12\t.\t.\t.\n"+
			"pUC\tfragments\t1 12 7\n",
		out)

	out, err = run(t, seq, "restrict", "-e", table, "--only", "ecorv", "--circular")
	require.NoError(t, err)
	assert.Equal(t, "pUC\tEcoRV\t10\t+\t12\t12\t.\t.\t.\n", out)

	_, err = run(t, seq, "restrict")
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	cfg := writeFile(t, "seqmatch.yaml", "mismatches: 1\n")
	out, err := run(t, "ATC", "search", "--config", cfg, "AC")
	require.NoError(t, err)
	assert.Equal(t, "stdin\t0\t1\t2\t1\nstdin\t1\t2\t2\t1\n", out)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := run(t, "", "classify", "--log-level", "loud", "ACGT")
	assert.Error(t, err)
}

func TestReadRecords(t *testing.T) {
	recs, err := readRecords(strings.NewReader("ACGT\n>x desc\nAC GT\n\n>\nTT\n"), "file")
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, record{name: "file", seq: []byte("ACGT")}, recs[0])
	assert.Equal(t, record{name: "x", seq: []byte("ACGT")}, recs[1])
	assert.Equal(t, record{name: "file", seq: []byte("TT")}, recs[2])
}
