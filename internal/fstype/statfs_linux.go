//go:build linux

package fstype

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// linuxMagic maps f_type values from statfs(2) to filesystem names.
// Values from linux/magic.h and the individual filesystem headers.
var linuxMagic = map[uint32]string{
	0x0000adf5: "adfs",
	0x0000adff: "affs",
	0x00000187: "autofs",
	0x62646576: "bdevfs",
	0x42465331: "befs",
	0x1badface: "bfs",
	0xcafe4a11: "bpf",
	0x9123683e: "btrfs",
	0x0027e0eb: "cgroup",
	0x63677270: "cgroup2",
	0xff534d42: "cifs",
	0x73757245: "coda",
	0x28cd3d45: "cramfs",
	0x64626720: "debugfs",
	0x00001373: "devfs",
	0x00001cd1: "devpts",
	0x0000f15f: "ecryptfs",
	0xde5e81e4: "efivarfs",
	0x00414a53: "efs",
	0x2011bab0: "exfat",
	0x0000ef53: "ext4",
	0xf2f52010: "f2fs",
	0x65735546: "fuse",
	0x65735543: "fusectl",
	0x01161970: "gfs2",
	0x958458f6: "hugetlbfs",
	0x00009660: "isofs",
	0x000072b6: "jffs2",
	0x3153464a: "jfs",
	0x00004d44: "msdos",
	0x19800202: "mqueue",
	0x0000564c: "ncp",
	0x00006969: "nfs",
	0x6e667364: "nfsd",
	0x00003434: "nilfs",
	0x5346544e: "ntfs",
	0x7461636f: "ocfs2",
	0x794c7630: "overlay",
	0x50495045: "pipefs",
	0x00009fa0: "proc",
	0x6165676c: "pstore",
	0x0000002f: "qnx4",
	0x858458f6: "ramfs",
	0x52654973: "reiserfs",
	0x00007275: "romfs",
	0x73636673: "securityfs",
	0xf97cff8c: "selinuxfs",
	0x43415d53: "smackfs",
	0x0000517b: "smb",
	0xfe534d42: "smb2",
	0x534f434b: "sockfs",
	0x73717368: "squashfs",
	0x62656572: "sysfs",
	0x012ff7b7: "sysv4",
	0x01021994: "tmpfs",
	0x74726163: "tracefs",
	0x15013346: "udf",
	0x00011954: "ufs",
	0x24051905: "ubifs",
	0x01021997: "v9fs",
	0xa501fcf5: "vxfs",
	0xabba1974: "xenfs",
	0x58465342: "xfs",
	0x2fc12fc1: "zfs",
}

// NameForMagic returns the filesystem name for a Linux statfs magic number.
func NameForMagic(magic uint32) string {
	if name, ok := linuxMagic[magic]; ok {
		return name
	}
	return fmt.Sprintf("unknown (0x%x)", magic)
}

func statfs(path string) (Info, error) {
	var buf unix.Statfs_t
	if err := unix.Statfs(path, &buf); err != nil {
		return Info{}, &LowLevelError{Path: path, Err: err}
	}

	magic := uint32(buf.Type)
	return Info{Name: NameForMagic(magic), Magic: magic}, nil
}
