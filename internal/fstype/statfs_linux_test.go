//go:build linux

package fstype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameForMagic(t *testing.T) {
	tests := []struct {
		magic uint32
		want  string
	}{
		{0xef53, "ext4"},
		{0x01021994, "tmpfs"},
		{0x58465342, "xfs"},
		{0x9123683e, "btrfs"},
		{0x794c7630, "overlay"},
		{0x9fa0, "proc"},
		{0xdeadbeef, "unknown (0xdeadbeef)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, NameForMagic(tt.magic))
		})
	}
}

func TestStat_ProcIsProcfs(t *testing.T) {
	info, err := Stat("/proc/self")
	if err != nil {
		t.Skipf("procfs not available: %v", err)
	}
	assert.Equal(t, "proc", info.Name)
	assert.Equal(t, uint32(0x9fa0), info.Magic)
}
