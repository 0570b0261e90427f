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

package template

// 🎯 Template is a compiled naming template: an ordered list of literal
// and placeholder segments. Compiling never touches the filesystem and a
// compiled Template is safe for concurrent Render calls.
type Template struct {
	src      string
	segments []segment
	refsExt  bool
	refsSeq  bool
}

// 📝 String returns the source text the template was compiled from.
func (t *Template) String() string {
	return t.src
}

// 🔍 ReferencesExtension reports whether any placeholder resolves {ext}.
// The plan builder uses this to decide extension auto-append.
func (t *Template) ReferencesExtension() bool {
	return t.refsExt
}

// 🔍 ReferencesSequence reports whether any placeholder resolves {seq} or
// {seq_raw}. Entries whose template never references the sequence do not
// consume a value.
func (t *Template) ReferencesSequence() bool {
	return t.refsSeq
}

// 📦 segment is one compiled element: a literal run when ph is nil,
// otherwise a placeholder.
type segment struct {
	literal string
	ph      *placeholder
}

// 🔑 placeholderKind discriminates the placeholder variants.
type placeholderKind int

const (
	kindVariable  placeholderKind = iota // reserved name: stem, ext, name, seq, seq_raw, mtime, ctime
	kindIndex                            // {N}, 1-based, negative from the end
	kindRange                            // {N:M}, inclusive
	kindOpenRange                        // {N+}, from N through the last segment
	kindGroup                            // named capture group of the configured pattern
	kindUnknown                          // structurally valid but unaddressable, always resolves empty
)

// 📦 placeholder is one {key|filter|...} expression.
type placeholder struct {
	kind    placeholderKind
	name    string // kindVariable: reserved name; kindGroup: group name
	start   int    // kindIndex, kindRange, kindOpenRange
	end     int    // kindRange
	filters []filterCall
}

// 🔑 reservedVars are the variable names resolved from file facts rather
// than positional segments or capture groups.
var reservedVars = map[string]bool{
	"stem":    true,
	"ext":     true,
	"name":    true,
	"seq":     true,
	"seq_raw": true,
	"mtime":   true,
	"ctime":   true,
}

func (t *Template) noteReferences(ph *placeholder) {
	if ph.kind != kindVariable {
		return
	}
	switch ph.name {
	case "ext":
		t.refsExt = true
	case "seq", "seq_raw":
		t.refsSeq = true
	}
}
