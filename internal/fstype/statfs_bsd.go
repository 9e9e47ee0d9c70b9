//go:build darwin || freebsd

package fstype

import "golang.org/x/sys/unix"

func statfs(path string) (Info, error) {
	var buf unix.Statfs_t
	if err := unix.Statfs(path, &buf); err != nil {
		return Info{}, &LowLevelError{Path: path, Err: err}
	}

	return Info{Name: unix.ByteSliceToString(buf.Fstypename[:]), Magic: buf.Type}, nil
}
