package fstype

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_TempDir(t *testing.T) {
	name, err := Lookup(t.TempDir())
	require.NoError(t, err)
	assert.NotEmpty(t, name)
}

func TestLookup_FileAndParentAgree(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "data.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	fromDir, err := Lookup(dir)
	require.NoError(t, err)
	fromFile, err := Lookup(file)
	require.NoError(t, err)

	assert.Equal(t, fromDir, fromFile)
}

func TestLookup_MissingPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does", "not", "exist")

	name, err := Lookup(missing)
	require.Error(t, err)
	assert.Empty(t, name)

	var lowLevel *LowLevelError
	require.True(t, errors.As(err, &lowLevel))
	assert.Equal(t, missing, lowLevel.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.NotContains(t, err.Error(), missing, "message should be the system description only")
}

func TestLowLevelError_NilCause(t *testing.T) {
	err := &LowLevelError{Path: "/x"}
	assert.Equal(t, "statfs /x failed", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}

func TestInfo_String(t *testing.T) {
	assert.Equal(t, "apfs", Info{Name: "apfs"}.String())
	assert.Equal(t, "ext4 (0xef53)", Info{Name: "ext4", Magic: 0xef53}.String())
}

func TestStat_MagicOnStatfsPlatforms(t *testing.T) {
	switch runtime.GOOS {
	case "linux", "darwin", "freebsd":
	default:
		t.Skipf("statfs is not supported on %s", runtime.GOOS)
	}

	info, err := Stat(t.TempDir())
	require.NoError(t, err)
	assert.NotZero(t, info.Magic, "f_type is reported on %s", runtime.GOOS)
	assert.Contains(t, info.String(), "(0x")
}
