// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package plan

import (
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🎯 Validator checks proposed names against filesystem naming rules.
// The zero value enforces the portable baseline; WindowsSafe adds the
// Windows reserved characters, trailing dot/space, and device names.
type Validator struct {
	WindowsSafe bool
}

// 🔑 Reserved device basenames on Windows, matched case-insensitively
// against the part before the first dot.
var windowsReserved = map[string]bool{
	"con": true, "prn": true, "aux": true, "nul": true,
	"com1": true, "com2": true, "com3": true, "com4": true, "com5": true,
	"com6": true, "com7": true, "com8": true, "com9": true,
	"lpt1": true, "lpt2": true, "lpt3": true, "lpt4": true, "lpt5": true,
	"lpt6": true, "lpt7": true, "lpt8": true, "lpt9": true,
}

// 📝 Validate returns why name cannot be a file name, or nil when it can.
func (v Validator) Validate(name string) error {
	switch name {
	case "":
		return errors.New("empty name")
	case ".", "..":
		return errors.Errorf("%q is a directory reference", name)
	}
	for _, r := range name {
		switch {
		case r == '/':
			return errors.New("contains a path separator")
		case r == 0:
			return errors.New("contains NUL")
		case r < 0x20 || r == 0x7f:
			return errors.Errorf("contains control character %q", r)
		}
	}
	if !v.WindowsSafe {
		return nil
	}
	if i := strings.IndexAny(name, `\:*?"<>|`); i >= 0 {
		return errors.Errorf("contains %q, reserved on Windows", name[i])
	}
	if strings.HasSuffix(name, ".") || strings.HasSuffix(name, " ") {
		return errors.New("ends with a dot or space, not allowed on Windows")
	}
	base := name
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	if windowsReserved[strings.ToLower(base)] {
		return errors.Errorf("%q is a reserved device name on Windows", base)
	}
	return nil
}

// 📝 ValidateFragment returns why s cannot appear inside a file name.
// Fragments are pieces the planner inserts itself, like the dedup-suffix
// separator; positional rules (empty, trailing dot) do not apply because
// a fragment never stands alone.
func (v Validator) ValidateFragment(s string) error {
	for _, r := range s {
		switch {
		case r == '/':
			return errors.New("contains a path separator")
		case r == 0:
			return errors.New("contains NUL")
		case r < 0x20 || r == 0x7f:
			return errors.Errorf("contains control character %q", r)
		}
	}
	if !v.WindowsSafe {
		return nil
	}
	if i := strings.IndexAny(s, `\:*?"<>|`); i >= 0 {
		return errors.Errorf("contains %q, reserved on Windows", s[i])
	}
	return nil
}
