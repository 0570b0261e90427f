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

import (
	"regexp"
	"strings"
	"time"

	"gitlab.com/tozd/go/errors"
)

// 🕐 timeLayout renders {mtime}/{ctime}: ISO-8601 at seconds precision.
const timeLayout = "2006-01-02T15:04:05"

// 🔑 compoundSuffixes are multi-part extensions recognized as a unit, so
// "dump.tar.gz" splits into "dump" + ".tar.gz". Matched case-insensitively.
var compoundSuffixes = []string{
	".tar.gz",
	".tar.bz2",
	".tar.xz",
	".tar.zst",
	".tar.lz4",
	".tar.br",
}

// 🎯 FileContext is the immutable set of per-file facts a template
// resolves against. Build one per input file, after sorting.
type FileContext struct {
	Name       string            // full file name, extension included
	Stem       string            // name without the extension
	Ext        string            // extension with leading dot, "" when none
	Segments   []string          // stem split by the run's delimiter
	Joiner     string            // joins range and open-range selections
	Groups     map[string]string // named captures, nil when no pattern or no match
	ModTime    time.Time         // zero renders as ""
	ChangeTime time.Time         // zero renders as ""
	Ordinal    int               // position in the plan, 0-based
}

// 🎯 Splitter fixes the parsing rules shared by every file in a run: the
// segment delimiter, the joiner used to recombine ranges, and an optional
// named-capture pattern matched against the stem.
type Splitter struct {
	Delimiter string         // "" keeps the stem as a single segment
	Joiner    string         // "" defaults to Delimiter
	Pattern   *regexp.Regexp // typically from CompilePattern
}

// 🏭 Context derives the per-file evaluation context for name.
func (sp Splitter) Context(name string, modTime, changeTime time.Time, ordinal int) *FileContext {
	stem, ext := SplitName(name)
	joiner := sp.Joiner
	if joiner == "" {
		joiner = sp.Delimiter
	}
	fc := &FileContext{
		Name:       name,
		Stem:       stem,
		Ext:        ext,
		Segments:   splitSegments(stem, sp.Delimiter),
		Joiner:     joiner,
		ModTime:    modTime,
		ChangeTime: changeTime,
		Ordinal:    ordinal,
	}
	if sp.Pattern != nil {
		fc.Groups = captureGroups(sp.Pattern, stem)
	}
	return fc
}

// 🔍 SplitName splits a file name into stem and extension. The extension
// is the final dot-segment, unless the tail matches a known compound
// suffix. A leading dot never starts an extension, so ".bashrc" is all stem.
func SplitName(name string) (stem, ext string) {
	lower := strings.ToLower(name)
	for _, suffix := range compoundSuffixes {
		if len(name) > len(suffix) && strings.HasSuffix(lower, suffix) {
			cut := len(name) - len(suffix)
			return name[:cut], name[cut:]
		}
	}
	if dot := strings.LastIndexByte(name, '.'); dot > 0 && dot < len(name)-1 {
		return name[:dot], name[dot:]
	}
	return name, ""
}

// 🏭 CompilePattern compiles a named-capture pattern. The pattern is
// anchored at the start of the stem; use a leading `.*` to match later.
func CompilePattern(expr string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(`\A(?:` + expr + `)`)
	if err != nil {
		return nil, errors.Errorf("compiling capture pattern: %w", err)
	}
	return re, nil
}

func splitSegments(stem, delim string) []string {
	if delim == "" {
		return []string{stem}
	}
	return strings.Split(stem, delim)
}

func captureGroups(re *regexp.Regexp, stem string) map[string]string {
	m := re.FindStringSubmatch(stem)
	if m == nil {
		return nil
	}
	groups := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if name != "" && i < len(m) {
			groups[name] = m[i]
		}
	}
	return groups
}

// segmentAt resolves a single 1-based position; negatives count from the
// end. Position 0 and out-of-range positions resolve empty.
func (fc *FileContext) segmentAt(idx int) string {
	if idx == 0 {
		return ""
	}
	if idx < 0 {
		idx = len(fc.Segments) + 1 + idx
	}
	if idx < 1 || idx > len(fc.Segments) {
		return ""
	}
	return fc.Segments[idx-1]
}

// joinFrom joins segments from a 1-based start through the last one.
func (fc *FileContext) joinFrom(start int) string {
	if start == 0 {
		return ""
	}
	if start < 0 {
		start = len(fc.Segments) + 1 + start
	}
	if start < 1 {
		start = 1
	}
	if start > len(fc.Segments) {
		return ""
	}
	return strings.Join(fc.Segments[start-1:], fc.Joiner)
}

// joinRange joins the inclusive 1-based range start..end. Ends are
// clamped to the segment list; an inverted or unaddressable range is empty.
func (fc *FileContext) joinRange(start, end int) string {
	n := len(fc.Segments)
	if start == 0 || end == 0 {
		return ""
	}
	if start < 0 {
		start = n + 1 + start
	}
	if end < 0 {
		end = n + 1 + end
	}
	if start < 1 {
		start = 1
	}
	if end > n {
		end = n
	}
	if start > end {
		return ""
	}
	return strings.Join(fc.Segments[start-1:end], fc.Joiner)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(timeLayout)
}
