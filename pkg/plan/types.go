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

import "time"

// 📦 File is one rename candidate as discovered: its current name plus the
// metadata the orderer and template need. Index is the position in the
// deterministic directory listing, which breaks sort ties.
type File struct {
	Name       string
	ModTime    time.Time
	ChangeTime time.Time
	MetaErr    error // non-nil when stat failed; degrades ordering, never fatal
	Index      int
}

// 📦 Input is everything Build needs for one directory: the rename
// candidates in listing order, plus every name currently present in the
// directory (candidates included) for the existing-file collision check.
type Input struct {
	Dir      string
	Files    []File
	Existing []string
}

// 🔑 Status classifies a plan entry after conflict resolution.
type Status string

const (
	StatusPlanned  Status = "planned"           // will be applied as proposed
	StatusSkipped  Status = "skipped-collision" // dropped by the skip policy, stays at its source name
	StatusSuffixed Status = "suffixed"          // renamed to a numbered variant by the suffix policy
)

// 📦 Entry is one file's row in the plan. Source and Proposed are bare
// names; rename targets live in the plan's directory. Proposed never
// contains path separators or control characters.
type Entry struct {
	Source   string `json:"source"`
	Proposed string `json:"target"`
	Ordinal  int    `json:"ordinal"`
	Status   Status `json:"status"`
	Changed  bool   `json:"changed"`
	Reason   string `json:"reason"`
}

// 🎯 Plan is the complete, ordered outcome of planning one directory.
// Proposed names of non-skipped entries are pairwise distinct. The plan is
// computed fully in memory before any filesystem mutation.
type Plan struct {
	Dir      string   `json:"dir"`
	Entries  []Entry  `json:"entries"`
	Warnings []string `json:"warnings,omitempty"`
}

// 🔍 Pending returns the entries an executor should apply, in plan order:
// changed and not dropped by the skip policy.
func (p *Plan) Pending() []Entry {
	var out []Entry
	for _, e := range p.Entries {
		if e.Changed && e.Status != StatusSkipped {
			out = append(out, e)
		}
	}
	return out
}

// 🔍 Counts tallies the plan for summaries: entries that will move,
// entries already named correctly, and entries dropped by collisions.
func (p *Plan) Counts() (changed, unchanged, skipped int) {
	for _, e := range p.Entries {
		switch {
		case e.Status == StatusSkipped:
			skipped++
		case e.Changed:
			changed++
		default:
			unchanged++
		}
	}
	return changed, unchanged, skipped
}
