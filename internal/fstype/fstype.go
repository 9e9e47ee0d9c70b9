package fstype

import "fmt"

// Info describes the filesystem backing a path.
type Info struct {
	// Name is the filesystem type name (e.g. "ext4", "apfs").
	Name string
	// Magic is the raw type identifier reported by the kernel: f_type on
	// Linux and the BSDs. Zero when the platform reports no identifier.
	Magic uint32
}

// String renders the name, with the magic number appended when known.
func (i Info) String() string {
	if i.Magic == 0 {
		return i.Name
	}
	return fmt.Sprintf("%s (0x%x)", i.Name, i.Magic)
}

// Lookup returns the filesystem type name for path.
// Failures are returned as *LowLevelError.
func Lookup(path string) (string, error) {
	info, err := Stat(path)
	if err != nil {
		return "", err
	}
	return info.Name, nil
}

// Stat returns the filesystem information for path.
func Stat(path string) (Info, error) {
	return statfs(path)
}
