package execute

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

// 🔑 tempPrefix marks names staged mid-rename. Discovery skips anything
// carrying it, so a crashed run's leftovers never become rename
// candidates.
const tempPrefix = "__tmp_rename__"

// 🔍 IsTempName reports whether name is a staging artifact of an apply run.
func IsTempName(name string) bool {
	return strings.HasPrefix(name, tempPrefix)
}

// 🏭 newTempTag derives one staging tag per apply run, unique enough that
// concurrent runs in the same directory cannot collide.
func newTempTag() string {
	var b [4]byte
	_, _ = rand.Read(b[:])
	return tempPrefix + hex.EncodeToString(b[:]) + "__"
}
