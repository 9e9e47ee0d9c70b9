// Package fstype reports the type of the filesystem backing a path.
//
// The lookup is a thin wrapper over statfs(2). BSD-derived kernels (including
// Darwin) report the filesystem name directly; Linux reports a magic number,
// which is translated through a table of well-known filesystems.
package fstype
