package lookup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "addresses.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFilePlain(t *testing.T) {
	path := writeFile(t, "stake1abc\nstake1def\n\nstake1ghi\n")
	addrs, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"stake1abc", "stake1def", "stake1ghi"}, addrs)
}

func TestLoadFileTSVWithHeader(t *testing.T) {
	path := writeFile(t, "address\tbalance\nstake1abc\t1000\nstake1def\t0\n")
	addrs, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"stake1abc", "stake1def"}, addrs)
}

func TestLoadFileSkipsNonStakeLines(t *testing.T) {
	path := writeFile(t, "# comment\naddr1notastakeaddress\nstake1abc\n")
	addrs, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"stake1abc"}, addrs)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
