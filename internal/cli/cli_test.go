package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nucleo/pkg/api"
)

// run executes the command tree with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	logFile := filepath.Join(t.TempDir(), "nucleo.log")
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--log-file", logFile}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestComplementCmd(t *testing.T) {
	out, err := run(t, "complement", "--seq", "ACGG", "--no-header")
	require.NoError(t, err)
	assert.Equal(t, "seq\tDNA\tlinear\t4\tACGG\tTGCC\tC\tT\n", out)
}

func TestComplementCmd_RNAJSON(t *testing.T) {
	out, err := run(t, "complement", "--rna", "--seq", "aunGC", "--name", "r1", "-f", "json")
	require.NoError(t, err)

	var rows []api.ComplementV1
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "r1", rows[0].SequenceID)
	assert.Equal(t, "RNA", rows[0].Kind)
	assert.Equal(t, "aunGC", rows[0].Sequence)
	assert.Equal(t, "UANCG", rows[0].Complement)
}

func TestComplementCmd_RejectsIllegalBase(t *testing.T) {
	_, err := run(t, "complement", "--seq", "ACGU")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'U'")
}

func TestInputFlagsExclusive(t *testing.T) {
	_, err := run(t, "complement", "--seq", "ACGT", "--fasta", "x.fa")
	assert.Error(t, err)

	_, err = run(t, "complement")
	assert.Error(t, err)
}

func TestComplementCmd_FASTA(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.fa")
	require.NoError(t, os.WriteFile(path, []byte(">chr1 test\nACG\nGTT\n>chr2\nAAAA\n"), 0o644))

	out, err := run(t, "complement", "--fasta", path, "--no-header")
	require.NoError(t, err)
	assert.Equal(t, "chr1\tDNA\tlinear\t6\tACGGTT\tTGCCAA\tA\tT\n", out)
}

func TestSitesCmd(t *testing.T) {
	out, err := run(t, "sites", "--seq", "GAATTCAGAATTC", "-e", "ecori")
	require.NoError(t, err)
	want := "# sequence_id\tenzyme\tsite\tstart\tend\tcut\twraps\tmatch\n" +
		"seq\tEcoRI\tG^AATTC\t0\t6\t1\tno\tGAATTC\n" +
		"seq\tEcoRI\tG^AATTC\t7\t13\t8\tno\tGAATTC\n"
	assert.Equal(t, want, out)
}

func TestSitesCmd_CircularWrap(t *testing.T) {
	out, err := run(t, "sites", "--seq", "AATTCG", "--circular", "-e", "EcoRI", "-f", "jsonl")
	require.NoError(t, err)

	var s api.SiteV1
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out)), &s))
	assert.Equal(t, api.SiteV1{
		SequenceID: "seq",
		Enzyme:     "EcoRI",
		Site:       "G^AATTC",
		Start:      5,
		End:        5,
		Cut:        0,
		Wraps:      true,
		Match:      "GAATTC",
	}, s)

	out, err = run(t, "sites", "--seq", "AATTCG", "-e", "EcoRI", "--no-header")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSitesCmd_Pretty(t *testing.T) {
	out, err := run(t, "sites", "--seq", "AAGAATTCAA", "-e", "EcoRI", "--pretty")
	require.NoError(t, err)
	assert.Equal(t, "#  1 AAGAATTCAA\n#       ^\n# EcoRI cut 3 (G^AATTC at 2)\n", out)
}

func TestSitesCmd_Errors(t *testing.T) {
	_, err := run(t, "sites", "--seq", "ACGT")
	assert.Error(t, err)

	_, err = run(t, "sites", "--seq", "ACGT", "-e", "NoSuchEnzyme")
	assert.Error(t, err)

	_, err = run(t, "sites", "--seq", "ACGT", "-e", "EcoRI", "-f", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestDigestCmd(t *testing.T) {
	out, err := run(t, "digest", "--seq", "GAATTCAGAATTC", "-e", "EcoRI", "--no-header", "--seqs")
	require.NoError(t, err)
	want := "seq\t0\t1\t1\tno\tG\n" +
		"seq\t1\t8\t7\tno\tAATTCAG\n" +
		"seq\t8\t13\t5\tno\tAATTC\n"
	assert.Equal(t, want, out)

	out, err = run(t, "digest", "--seq", "GAATTCAGAATTC", "-e", "EcoRI", "--no-header", "--min", "2", "--max", "6")
	require.NoError(t, err)
	assert.Equal(t, "seq\t8\t13\t5\tno\t\n", out)

	_, err = run(t, "digest", "--seq", "GAATTC", "-e", "EcoRI", "--min", "9", "--max", "3")
	assert.Error(t, err)
}

func TestDigestCmd_Circular(t *testing.T) {
	out, err := run(t, "digest", "--seq", "AATTCG", "--circular", "-e", "EcoRI", "-f", "json")
	require.NoError(t, err)

	var rows []api.FragmentV1
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, 6, rows[0].Length)
	assert.True(t, rows[0].Wraps)
}

func TestEnzymesCmd(t *testing.T) {
	out, err := run(t, "enzymes", "ecor", "-f", "json")
	require.NoError(t, err)

	var rows []api.EnzymeV1
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, api.EnzymeV1{Name: "EcoRI", Recognition: "G^AATTC", Site: "GAATTC", Cut: 1, Palindromic: true}, rows[0])
	assert.Equal(t, "EcoRII", rows[1].Name)
	assert.Equal(t, "EcoRV", rows[2].Name)

	out, err = run(t, "enzymes", "--no-header", "bsrbi")
	require.NoError(t, err)
	assert.Equal(t, "BsrBI\tCCG^CTC\tCCGCTC\t3\tno\n", out)
}

func TestEnzymeFileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.tsv")
	require.NoError(t, os.WriteFile(path, []byte("# custom\nMyCutter  ACGNNCGT  4\n"), 0o644))

	out, err := run(t, "sites", "--seq", "TTACGAACGTTT", "-e", "mycutter", "--enzyme-file", path, "--no-header")
	require.NoError(t, err)
	assert.Equal(t, "seq\tMyCutter\tACGN^NCGT\t2\t10\t6\tno\tACGAACGT\n", out)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "nucleo.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("output:\n  format: jsonl\n"), 0o644))

	out, err := run(t, "--config", cfg, "complement", "--seq", "A")
	require.NoError(t, err)
	assert.Equal(t, `{"sequence_id":"seq","kind":"DNA","shape":"linear","length":1,"sequence":"A","complement":"T","five_prime_bottom":"T","three_prime_bottom":"T"}`+"\n", out)

	out, err = run(t, "--config", cfg, "-f", "text", "--no-header", "complement", "--seq", "A")
	require.NoError(t, err)
	assert.Equal(t, "seq\tDNA\tlinear\t1\tA\tT\tT\tT\n", out)

	_, err = run(t, "--config", filepath.Join(dir, "missing.yaml"), "version")
	assert.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "nucleo "), out)
}

func TestSplitNames(t *testing.T) {
	assert.Equal(t, []string{"EcoRI", "BamHI", "hind"}, splitNames([]string{"EcoRI, BamHI", " hind ", ","}))
	assert.Nil(t, splitNames(nil))
}
