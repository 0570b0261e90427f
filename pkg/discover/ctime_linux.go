//go:build linux

package discover

import (
	"io/fs"
	"syscall"
	"time"
)

// changeTime reads the inode change time from the stat result. Falls back
// to the modification time when the platform data is missing.
func changeTime(info fs.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(int64(st.Ctim.Sec), int64(st.Ctim.Nsec))
	}
	return info.ModTime()
}
