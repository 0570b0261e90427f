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

import "strings"

// 📝 Render resolves the template against one file's context. Rendering is
// total: data a placeholder cannot reach (no pattern configured, group
// unmatched, index out of range, zero timestamp) becomes the empty string.
// frame supplies {seq}/{seq_raw}; a nil frame resolves both to "".
func (t *Template) Render(fc *FileContext, frame *Frame) string {
	var b strings.Builder
	b.Grow(len(t.src))
	for _, seg := range t.segments {
		if seg.ph == nil {
			b.WriteString(seg.literal)
			continue
		}
		b.WriteString(seg.ph.render(fc, frame))
	}
	return b.String()
}

func (p *placeholder) render(fc *FileContext, frame *Frame) string {
	v := p.resolve(fc, frame)
	for _, call := range p.filters {
		v = call.apply(v, call.arg)
	}
	return v
}

// resolve produces the pre-filter value. Ranges and open ranges join their
// selected segments with the context's joiner before any filter runs, so a
// chain like {2+|upper|prefix=ID-} transforms the joined value once.
func (p *placeholder) resolve(fc *FileContext, frame *Frame) string {
	switch p.kind {
	case kindVariable:
		return resolveVariable(p.name, fc, frame)
	case kindIndex:
		return fc.segmentAt(p.start)
	case kindRange:
		return fc.joinRange(p.start, p.end)
	case kindOpenRange:
		return fc.joinFrom(p.start)
	case kindGroup:
		return fc.Groups[p.name]
	default:
		return ""
	}
}

func resolveVariable(name string, fc *FileContext, frame *Frame) string {
	switch name {
	case "stem":
		return fc.Stem
	case "ext":
		return fc.Ext
	case "name":
		return fc.Name
	case "seq":
		if frame == nil {
			return ""
		}
		return frame.Value()
	case "seq_raw":
		if frame == nil {
			return ""
		}
		return frame.Raw()
	case "mtime":
		return formatTime(fc.ModTime)
	case "ctime":
		return formatTime(fc.ChangeTime)
	}
	return ""
}
