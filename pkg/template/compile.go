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
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// 🎯 SyntaxError reports a malformed template. Offset is the byte offset
// of the offending token in the template source.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("template syntax error at offset %d: %s", e.Offset, e.Msg)
}

// 🏭 Compile parses a template string into a reusable Template. Braces are
// always delimiters (there is no escape); a stray brace, an empty key, an
// unknown filter name, or a malformed filter argument is a SyntaxError.
// Positional and group keys are not validated here - they resolve per file.
func Compile(src string) (*Template, error) {
	t := &Template{src: src}
	for i := 0; i < len(src); {
		switch src[i] {
		case '{':
			end := strings.IndexByte(src[i+1:], '}')
			if end < 0 {
				return nil, &SyntaxError{Offset: i, Msg: "missing closing '}'"}
			}
			body := src[i+1 : i+1+end]
			if open := strings.IndexByte(body, '{'); open >= 0 {
				return nil, &SyntaxError{Offset: i + 1 + open, Msg: "nested '{' inside placeholder"}
			}
			ph, err := parsePlaceholder(body, i+1)
			if err != nil {
				return nil, err
			}
			t.noteReferences(ph)
			t.segments = append(t.segments, segment{ph: ph})
			i += end + 2
		case '}':
			return nil, &SyntaxError{Offset: i, Msg: "unmatched '}'"}
		default:
			j := i + 1
			for j < len(src) && src[j] != '{' && src[j] != '}' {
				j++
			}
			t.segments = append(t.segments, segment{literal: src[i:j]})
			i = j
		}
	}
	return t, nil
}

// 🔧 parsePlaceholder parses the body between braces: a key followed by
// zero or more |filter invocations. base is the byte offset of the body in
// the template source, used for error offsets.
func parsePlaceholder(body string, base int) (*placeholder, error) {
	parts := strings.Split(body, "|")
	key := parts[0]
	if strings.TrimSpace(key) == "" {
		return nil, &SyntaxError{Offset: base, Msg: "empty placeholder key"}
	}
	ph := classifyKey(key)

	off := base + len(key)
	for _, tok := range parts[1:] {
		off++ // consume the '|'
		call, err := parseFilter(tok, off)
		if err != nil {
			return nil, err
		}
		ph.filters = append(ph.filters, call)
		off += len(tok)
	}
	return ph, nil
}

// 🔍 classifyKey maps a key to its placeholder kind. Reserved names win;
// then integer forms ({N}, {N+}, {N:M}); then identifiers become capture
// group lookups. Anything else compiles to the unknown kind, which always
// resolves to the empty string rather than failing the batch.
func classifyKey(raw string) *placeholder {
	key := strings.TrimSpace(raw)
	if reservedVars[key] {
		return &placeholder{kind: kindVariable, name: key}
	}
	if n, ok := parseIndex(key); ok {
		return &placeholder{kind: kindIndex, start: n}
	}
	if open, ok := strings.CutSuffix(key, "+"); ok {
		if n, ok := parseIndex(open); ok {
			return &placeholder{kind: kindOpenRange, start: n}
		}
	}
	if s, e, ok := strings.Cut(key, ":"); ok {
		start, okS := parseIndex(s)
		end, okE := parseIndex(e)
		if okS && okE {
			return &placeholder{kind: kindRange, start: start, end: end}
		}
	}
	if isIdentifier(key) {
		return &placeholder{kind: kindGroup, name: key}
	}
	return &placeholder{kind: kindUnknown}
}

// 🔧 parseFilter parses one name or name=arg token and validates it
// against the filter table. off is the token's byte offset in the source.
func parseFilter(tok string, off int) (filterCall, error) {
	name, arg, hasArg := strings.Cut(tok, "=")
	name = strings.TrimSpace(name)
	if name == "" {
		return filterCall{}, &SyntaxError{Offset: off, Msg: "empty filter name"}
	}
	spec, ok := filterTable[name]
	if !ok {
		return filterCall{}, &SyntaxError{Offset: off, Msg: fmt.Sprintf("unknown filter %q", name)}
	}
	switch {
	case spec.arg == argNone && hasArg:
		return filterCall{}, &SyntaxError{Offset: off, Msg: fmt.Sprintf("filter %q takes no argument", name)}
	case spec.arg == argRequired && !hasArg:
		return filterCall{}, &SyntaxError{Offset: off, Msg: fmt.Sprintf("filter %q requires an argument", name)}
	}
	if spec.check != nil {
		if err := spec.check(arg); err != nil {
			return filterCall{}, &SyntaxError{Offset: off, Msg: fmt.Sprintf("filter %q: %s", name, err)}
		}
	}
	return filterCall{name: name, arg: arg, apply: spec.apply}, nil
}

func parseIndex(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func isIdentifier(s string) bool {
	for i, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return s != ""
}
