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
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/renamerc/pkg/template"
)

func proposals(p *Plan) []string {
	out := make([]string, len(p.Entries))
	for i, e := range p.Entries {
		out[i] = e.Proposed
	}
	return out
}

func mustBuild(t *testing.T, opts Options, in Input) *Plan {
	t.Helper()
	b, err := NewBuilder(opts)
	require.NoError(t, err, "NewBuilder should succeed")
	p, err := b.Build(context.Background(), in)
	require.NoError(t, err, "Build should succeed")
	return p
}

func TestBuild_mtimeAscendingSequence(t *testing.T) {
	// Oldest to newest is C, B, A; the plan must follow mtime, not name.
	in := Input{Dir: "/photos", Files: []File{
		{Name: "A", ModTime: at(30), Index: 0},
		{Name: "B", ModTime: at(20), Index: 1},
		{Name: "C", ModTime: at(10), Index: 2},
	}}

	p := mustBuild(t, Options{
		Template: "frame_{seq}",
		SortKey:  SortByMTime,
		SeqStart: 1, SeqStep: 1, SeqPad: 4,
	}, in)

	require.Len(t, p.Entries, 3, "one entry per file")
	assert.Equal(t, "C", p.Entries[0].Source, "oldest file comes first")
	assert.Equal(t, []string{"frame_0001", "frame_0002", "frame_0003"}, proposals(p), "sequence should follow mtime order")
	for i, e := range p.Entries {
		assert.Equal(t, i, e.Ordinal, "ordinals should be assigned in plan order")
	}
}

func TestBuild_seqAndRawShareOneDraw(t *testing.T) {
	in := Input{Files: []File{{Name: "a"}, {Name: "b"}, {Name: "c"}}}

	p := mustBuild(t, Options{
		Template: "{seq}-{seq_raw}",
		SeqStart: 1, SeqStep: 1, SeqPad: 4,
	}, in)

	assert.Equal(t, []string{"0001-1", "0002-2", "0003-3"}, proposals(p), "both renderings should read the same drawn value")
}

func TestBuild_zeroSequenceStart(t *testing.T) {
	in := Input{Files: []File{{Name: "a"}, {Name: "b"}}}

	p := mustBuild(t, Options{
		Template: "frame_{seq}",
		SeqStart: 0, SeqStep: 1, SeqPad: 4,
	}, in)

	assert.Equal(t, []string{"frame_0000", "frame_0001"}, proposals(p), "the first draw must return the configured start, zero included")
}

func TestBuild_autoExtensionPolicy(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		file string
		want string
	}{
		{
			name: "appended_when_template_never_mentions_ext",
			opts: Options{Template: "img_{seq}", SeqStart: 1, SeqStep: 1, SeqPad: 3},
			file: "photo.jpg",
			want: "img_001.jpg",
		},
		{
			name: "not_appended_when_ext_is_referenced",
			opts: Options{Template: "img_{seq}{ext}", SeqStart: 1, SeqStep: 1, SeqPad: 3},
			file: "photo.jpg",
			want: "img_001.jpg",
		},
		{
			name: "not_appended_when_output_already_has_an_extension",
			opts: Options{Template: "{stem}.bak"},
			file: "photo.jpg",
			want: "photo.bak",
		},
		{
			name: "never_appended_under_no_auto_ext",
			opts: Options{Template: "img_{seq}", NoAutoExt: true, SeqStart: 1, SeqStep: 1, SeqPad: 3},
			file: "photo.jpg",
			want: "img_001",
		},
		{
			name: "compound_suffix_is_carried_whole",
			opts: Options{Template: "backup_{seq}", SeqStart: 1, SeqStep: 1, SeqPad: 2},
			file: "dump.tar.gz",
			want: "backup_01.tar.gz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustBuild(t, tt.opts, Input{Files: []File{{Name: tt.file}}})
			assert.Equal(t, tt.want, p.Entries[0].Proposed, "auto-extension policy should match")
		})
	}
}

func TestBuild_positionalAndGroupKeys(t *testing.T) {
	p := mustBuild(t, Options{
		Template:  "{2}-{1}",
		Delimiter: "-",
	}, Input{Files: []File{{Name: "A-B-C.jpg"}}})
	assert.Equal(t, "B-A.jpg", p.Entries[0].Proposed, "positional swap should work")

	p = mustBuild(t, Options{
		Template: "{b}_{a}",
		Pattern:  `(?P<a>[a-z]+)-(?P<b>\d+)`,
	}, Input{Files: []File{{Name: "trip-042.jpg"}}})
	assert.Equal(t, "042_trip.jpg", p.Entries[0].Proposed, "capture groups should resolve")
}

func TestBuild_planningIsIdempotent(t *testing.T) {
	opts := Options{
		Template: "{mtime}_{seq}",
		SortKey:  SortByMTime,
		Conflict: ConflictSuffix,
		SeqStart: 1, SeqStep: 1, SeqPad: 4,
	}
	in := Input{Dir: "/d", Files: []File{
		{Name: "b.jpg", ModTime: at(10), Index: 0},
		{Name: "a.jpg", ModTime: at(10), Index: 1},
	}}

	b, err := NewBuilder(opts)
	require.NoError(t, err, "NewBuilder should succeed")

	first, err := b.Build(context.Background(), in)
	require.NoError(t, err, "first Build should succeed")
	second, err := b.Build(context.Background(), in)
	require.NoError(t, err, "second Build should succeed")

	assert.Equal(t, first, second, "rebuilding the same input must give an identical plan")
}

func TestBuild_unchangedEntries(t *testing.T) {
	p := mustBuild(t, Options{Template: "{stem}{ext}"}, Input{Files: []File{{Name: "keep.txt"}}})

	e := p.Entries[0]
	assert.False(t, e.Changed, "identity rename is unchanged")
	assert.Equal(t, "no-change", e.Reason, "reason should say so")
	assert.Empty(t, p.Pending(), "unchanged entries are not pending")
}

func TestBuild_illegalRenderedNameIsFatal(t *testing.T) {
	b, err := NewBuilder(Options{Template: "sub/dir_{seq}"})
	require.NoError(t, err, "templates with separators in literals still compile")

	_, err = b.Build(context.Background(), Input{Files: []File{{Name: "a.txt"}}})
	require.Error(t, err, "a proposed name with a separator must abort the build")
	var nameErr *NameError
	require.True(t, errors.As(err, &nameErr), "error should be a NameError")
	assert.Equal(t, "a.txt", nameErr.Source, "error should name the source file")
}

func TestBuild_windowsSafeValidation(t *testing.T) {
	b, err := NewBuilder(Options{Template: "CON", WindowsSafe: true, NoAutoExt: true})
	require.NoError(t, err, "NewBuilder should succeed")
	_, err = b.Build(context.Background(), Input{Files: []File{{Name: "x.txt"}}})
	require.Error(t, err, "reserved device names are rejected in windows-safe mode")

	// The same template is fine without windows-safe.
	p := mustBuild(t, Options{Template: "CON", NoAutoExt: true}, Input{Files: []File{{Name: "x.txt"}}})
	assert.Equal(t, "CON", p.Entries[0].Proposed, "portable baseline accepts CON")
}

func TestBuild_skipPolicyNeverRefundsSequence(t *testing.T) {
	// The middle file's proposal collides with a file outside the batch
	// and is skipped, but the third file still draws 3, not 2.
	p := mustBuild(t, Options{
		Template:  "{seq_raw}",
		NoAutoExt: true,
		Conflict:  ConflictSkip,
		SeqStart:  1, SeqStep: 1,
	}, Input{
		Files:    []File{{Name: "a"}, {Name: "b"}, {Name: "c"}},
		Existing: []string{"a", "b", "c", "2"},
	})

	assert.Equal(t, []string{"1", "2", "3"}, proposals(p), "sequence values are consumed in plan order, skips included")
	assert.Equal(t, StatusSkipped, p.Entries[1].Status, "colliding entry is skipped")
	assert.Equal(t, StatusPlanned, p.Entries[2].Status, "later entry keeps its own value")
}

func TestNewBuilder_rejectsBadOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{name: "bad_sort_key", opts: Options{SortKey: "size"}},
		{name: "bad_sort_direction", opts: Options{SortOrder: "sideways"}},
		{name: "bad_conflict_policy", opts: Options{Conflict: "overwrite"}},
		{name: "bad_template", opts: Options{Template: "{stem"}},
		{name: "bad_filter", opts: Options{Template: "{stem|rot13}"}},
		{name: "bad_pattern", opts: Options{Pattern: "(?P<a"}},
		{name: "suffix_sep_with_separator", opts: Options{SuffixSep: "a/b"}},
		{name: "suffix_sep_with_control_char", opts: Options{SuffixSep: "\t"}},
		{name: "suffix_sep_windows_reserved", opts: Options{SuffixSep: ":", WindowsSafe: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBuilder(tt.opts)
			require.Error(t, err, "bad options must fail before any planning")
		})
	}

	var serr *template.SyntaxError
	_, err := NewBuilder(Options{Template: "{stem"})
	require.True(t, errors.As(err, &serr), "template errors should stay typed through the builder")

	_, err = NewBuilder(Options{SuffixSep: ":"})
	require.NoError(t, err, "a colon separator is fine outside windows-safe mode")
}
