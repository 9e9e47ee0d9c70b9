//go:build !linux && !darwin && !freebsd

package fstype

import "errors"

func statfs(path string) (Info, error) {
	return Info{}, &LowLevelError{Path: path, Err: errors.ErrUnsupported}
}
