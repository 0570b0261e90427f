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
)

// 🎯 SortKeyError reports an unrecognized sort key or direction. Surfaced
// before any file is touched; a caller error, not a data error.
type SortKeyError struct {
	Field string // "key" or "direction"
	Value string
}

func (e *SortKeyError) Error() string {
	return fmt.Sprintf("unrecognized sort %s %q", e.Field, e.Value)
}

// 📦 Collision is one contested proposed name and everyone who wanted it.
type Collision struct {
	Name     string   // the name as it would exist on disk
	Sources  []string // plan entries that proposed it
	Existing bool     // a file outside the batch already holds it
}

func (c Collision) String() string {
	if c.Existing {
		return fmt.Sprintf("%q already exists (wanted by %s)", c.Name, strings.Join(c.Sources, ", "))
	}
	return fmt.Sprintf("%q wanted by %s", c.Name, strings.Join(c.Sources, ", "))
}

// 🎯 CollisionError aborts planning under the fail policy. Every contested
// name is listed; no partial plan is produced.
type CollisionError struct {
	Collisions []Collision
}

func (e *CollisionError) Error() string {
	parts := make([]string, 0, len(e.Collisions))
	for _, c := range e.Collisions {
		parts = append(parts, c.String())
	}
	return fmt.Sprintf("plan has %d colliding name(s): %s", len(e.Collisions), strings.Join(parts, "; "))
}

// 🎯 NameError reports a proposed name the target filesystem cannot
// accept. Fatal at plan time: a template that renders illegal names is a
// caller error, caught before any mutation.
type NameError struct {
	Source   string // the file whose rendering produced the name
	Proposed string // the rejected name
	Reason   string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("invalid proposed name %q for %s: %s", e.Proposed, e.Source, e.Reason)
}
