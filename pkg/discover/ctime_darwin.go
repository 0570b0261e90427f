//go:build darwin

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
		return time.Unix(int64(st.Ctimespec.Sec), int64(st.Ctimespec.Nsec))
	}
	return info.ModTime()
}
