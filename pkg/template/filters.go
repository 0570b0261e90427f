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
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gosimple/slug"
	"gitlab.com/tozd/go/errors"
)

// 🔑 argMode says whether a filter accepts an =argument.
type argMode int

const (
	argNone     argMode = iota // bare name only
	argRequired                // name=arg, arg may be empty
)

// 📦 filterSpec couples compile-time validation with the apply function.
type filterSpec struct {
	arg   argMode
	check func(arg string) error
	apply func(value, arg string) string
}

// 📦 filterCall is one validated invocation in a placeholder's chain.
type filterCall struct {
	name  string
	arg   string
	apply func(value, arg string) string
}

// 🎯 filterTable is the full filter vocabulary. Filters are total at
// apply time: every validation that can fail happens at compile time.
var filterTable = map[string]filterSpec{
	"lower": {arg: argNone, apply: func(v, _ string) string { return strings.ToLower(v) }},
	"upper": {arg: argNone, apply: func(v, _ string) string { return strings.ToUpper(v) }},
	"title": {arg: argNone, apply: func(v, _ string) string { return titleCase(v) }},
	"strip": {arg: argNone, apply: func(v, _ string) string { return strings.TrimSpace(v) }},
	"slug":  {arg: argNone, apply: func(v, _ string) string { return slug.Make(v) }},
	"pad":   {arg: argRequired, check: checkPadArg, apply: zeroPad},
	"zfill": {arg: argRequired, check: checkPadArg, apply: zeroPad},
	"prefix": {arg: argRequired, apply: func(v, arg string) string {
		return arg + v
	}},
	"suffix": {arg: argRequired, apply: func(v, arg string) string {
		return v + arg
	}},
	"replace": {arg: argRequired, check: checkReplaceArg, apply: replaceAll},
}

// 🔄 titleCase uppercases every letter that follows a non-letter and
// lowercases the rest, so "foo-bar baz" becomes "Foo-Bar Baz".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}

// 🔄 zeroPad left-pads with '0' to the requested width. Values already at
// or past the width pass through unchanged; padding never truncates.
func zeroPad(v, arg string) string {
	n, _ := strconv.Atoi(arg)
	if missing := n - utf8.RuneCountInString(v); missing > 0 {
		return strings.Repeat("0", missing) + v
	}
	return v
}

// 🔄 replaceAll substitutes all non-overlapping occurrences of old with
// new, where arg is "old:new". An empty old leaves the value untouched.
func replaceAll(v, arg string) string {
	old, repl, _ := strings.Cut(arg, ":")
	if old == "" {
		return v
	}
	return strings.ReplaceAll(v, old, repl)
}

func checkPadArg(arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return errors.Errorf("want a non-negative integer width, got %q", arg)
	}
	return nil
}

func checkReplaceArg(arg string) error {
	if !strings.Contains(arg, ":") {
		return errors.Errorf("want old:new, got %q", arg)
	}
	return nil
}
