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
	"fmt"
	"sort"
	"strings"
)

// 🔑 Sort keys accepted by Order.
const (
	SortByName  = "name"
	SortByMTime = "mtime"
	SortByCTime = "ctime"
)

// 🔑 Sort directions accepted by Order.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// 📝 Order sorts files for planning and assigns the ordinal order the
// sequence counter follows. The sort is stable: ties keep their listing
// order under both directions. Name comparison is case-insensitive.
// Files whose metadata could not be read sort last regardless of
// direction under the time keys, each with a warning; never fatal.
func Order(files []File, key, direction string) ([]File, []string, error) {
	switch key {
	case SortByName, SortByMTime, SortByCTime:
	default:
		return nil, nil, &SortKeyError{Field: "key", Value: key}
	}
	var desc bool
	switch direction {
	case OrderAsc:
	case OrderDesc:
		desc = true
	default:
		return nil, nil, &SortKeyError{Field: "direction", Value: direction}
	}

	out := make([]File, len(files))
	copy(out, files)

	var warnings []string
	if key != SortByName {
		for _, f := range out {
			if f.MetaErr != nil {
				warnings = append(warnings, fmt.Sprintf("metadata unreadable for %s, ordering it last: %v", f.Name, f.MetaErr))
			}
		}
	}

	less := lessFunc(key)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if key != SortByName {
			// Unreadable metadata sinks to the bottom in either direction.
			if (a.MetaErr != nil) != (b.MetaErr != nil) {
				return b.MetaErr != nil
			}
			if a.MetaErr != nil {
				return false // ties among unreadable entries keep listing order
			}
		}
		if desc {
			return less(b, a)
		}
		return less(a, b)
	})
	return out, warnings, nil
}

func lessFunc(key string) func(a, b File) bool {
	switch key {
	case SortByMTime:
		return func(a, b File) bool { return a.ModTime.Before(b.ModTime) }
	case SortByCTime:
		return func(a, b File) bool { return a.ChangeTime.Before(b.ChangeTime) }
	default:
		return func(a, b File) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}
}
