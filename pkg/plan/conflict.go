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
	"strings"

	"github.com/walteh/renamerc/pkg/template"
)

// 🔑 Conflict policies accepted by the builder.
const (
	ConflictFail   = "fail"
	ConflictSkip   = "skip"
	ConflictSuffix = "suffix"
)

// 📦 claim records who holds a name while conflicts are resolved. A claim
// with an empty holder belongs to a file outside the batch.
type claim struct {
	name   string // the name as it will exist on disk
	holder string // plan source that claimed it, "" for existing files
}

func (c claim) label() string {
	if c.holder == "" {
		return "existing file " + c.name
	}
	return c.holder
}

// 🔄 resolveConflicts applies one conflict policy over the built entries,
// in ordinal order. Names are claimed case-insensitively unless
// opts.CaseSensitive. Three kinds of claims exist before any changed entry
// is placed: files outside the batch (unless opts.NoExistingCheck), files
// the batch leaves untouched, and - as entries are skipped - sources that
// turned out to stay put. Under the fail policy every contested name is
// gathered before the error returns.
func resolveConflicts(entries []Entry, existing []string, opts Options) ([]Entry, error) {
	fold := foldFunc(opts.CaseSensitive)

	changedSources := make(map[string]bool)
	for _, e := range entries {
		if e.Changed {
			changedSources[fold(e.Source)] = true
		}
	}

	claimed := make(map[string]claim)
	if !opts.NoExistingCheck {
		for _, name := range existing {
			if changedSources[fold(name)] {
				continue // vacated by the batch
			}
			claimed[fold(name)] = claim{name: name}
		}
	}
	for _, e := range entries {
		if !e.Changed {
			claimed[fold(e.Source)] = claim{name: e.Source, holder: e.Source}
		}
	}

	out := make([]Entry, len(entries))
	copy(out, entries)

	var collisions []Collision
	collisionIdx := make(map[string]int)

	for i := range out {
		e := &out[i]
		if !e.Changed {
			continue
		}
		key := fold(e.Proposed)
		prev, taken := claimed[key]
		if !taken {
			claimed[key] = claim{name: e.Proposed, holder: e.Source}
			continue
		}

		switch opts.Conflict {
		case ConflictFail:
			idx, seen := collisionIdx[key]
			if !seen {
				idx = len(collisions)
				collisionIdx[key] = idx
				col := Collision{Name: prev.name, Existing: prev.holder == ""}
				if prev.holder != "" {
					col.Sources = append(col.Sources, prev.holder)
				}
				collisions = append(collisions, col)
			}
			collisions[idx].Sources = append(collisions[idx].Sources, e.Source)

		case ConflictSkip:
			e.Status = StatusSkipped
			e.Reason = fmt.Sprintf("collision with %s", prev.label())
			// The entry stays at its source name, which is taken again.
			claimed[fold(e.Source)] = claim{name: e.Source, holder: e.Source}

		case ConflictSuffix:
			stem, ext := template.SplitName(e.Proposed)
			n := 1
			candidate := fmt.Sprintf("%s%s%d%s", stem, opts.SuffixSep, n, ext)
			for {
				if _, t := claimed[fold(candidate)]; !t {
					break
				}
				n++
				candidate = fmt.Sprintf("%s%s%d%s", stem, opts.SuffixSep, n, ext)
			}
			e.Proposed = candidate
			e.Status = StatusSuffixed
			e.Reason = "dedup-suffix"
			e.Changed = e.Proposed != e.Source
			claimed[fold(candidate)] = claim{name: candidate, holder: e.Source}
		}
	}

	if len(collisions) > 0 {
		return nil, &CollisionError{Collisions: collisions}
	}

	// A skip can invalidate an earlier placement: the skipped entry keeps
	// its source name, which an earlier entry may have counted on being
	// vacated. Demote such entries too, until the plan is consistent.
	if opts.Conflict == ConflictSkip {
		for {
			retained := make(map[string]string)
			for _, e := range out {
				if !e.Changed || e.Status == StatusSkipped {
					retained[fold(e.Source)] = e.Source
				}
			}
			demoted := false
			for i := range out {
				e := &out[i]
				if !e.Changed || e.Status == StatusSkipped {
					continue
				}
				key := fold(e.Proposed)
				if key == fold(e.Source) {
					continue
				}
				if name, taken := retained[key]; taken {
					e.Status = StatusSkipped
					e.Reason = fmt.Sprintf("collision with %s", name)
					demoted = true
				}
			}
			if !demoted {
				break
			}
		}
	}
	return out, nil
}

func foldFunc(caseSensitive bool) func(string) string {
	if caseSensitive {
		return func(s string) string { return s }
	}
	return strings.ToLower
}
