//go:build !linux && !darwin

package discover

import (
	"io/fs"
	"time"
)

// changeTime has no portable source on this platform; the modification
// time stands in so ctime sorting still orders deterministically.
func changeTime(info fs.FileInfo) time.Time {
	return info.ModTime()
}
