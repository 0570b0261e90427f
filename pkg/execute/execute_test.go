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

package execute

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/renamerc/pkg/plan"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0644), "writing fixture should succeed")
	}
}

func dirNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err, "reading directory should succeed")
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name()
	}
	sort.Strings(out)
	return out
}

func planOf(dir string, pairs ...[2]string) *plan.Plan {
	p := &plan.Plan{Dir: dir}
	for i, pair := range pairs {
		p.Entries = append(p.Entries, plan.Entry{
			Source:   pair[0],
			Proposed: pair[1],
			Ordinal:  i,
			Status:   plan.StatusPlanned,
			Changed:  pair[0] != pair[1],
			Reason:   "ok",
		})
	}
	return p
}

func TestApply_roundTrip(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "c.jpg", "b.jpg", "a.jpg")

	p := planOf(dir,
		[2]string{"a.jpg", "frame_0001.jpg"},
		[2]string{"b.jpg", "frame_0002.jpg"},
		[2]string{"c.jpg", "frame_0003.jpg"},
	)

	res := Apply(context.Background(), p, Options{})

	assert.Equal(t, 3, res.Renamed, "every entry should rename")
	assert.Zero(t, res.Failed, "nothing should fail")
	assert.Zero(t, res.Aborted, "nothing should abort")
	assert.Equal(t, []string{"frame_0001.jpg", "frame_0002.jpg", "frame_0003.jpg"}, dirNames(t, dir), "exactly the proposed names exist, no side files")

	// Content followed the rename.
	content, err := os.ReadFile(filepath.Join(dir, "frame_0001.jpg"))
	require.NoError(t, err, "target should be readable")
	assert.Equal(t, "a.jpg", string(content), "content should follow its file")
}

func TestApply_swapIsSafe(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.txt", "b.txt")

	p := planOf(dir,
		[2]string{"a.txt", "b.txt"},
		[2]string{"b.txt", "a.txt"},
	)

	res := Apply(context.Background(), p, Options{})

	assert.Equal(t, 2, res.Renamed, "both sides of the swap should rename")
	assert.Equal(t, []string{"a.txt", "b.txt"}, dirNames(t, dir), "names are swapped in place")

	content, err := os.ReadFile(filepath.Join(dir, "b.txt"))
	require.NoError(t, err, "swapped target should be readable")
	assert.Equal(t, "a.txt", string(content), "b.txt now holds a.txt's content")
}

func TestApply_skipsUnchangedAndSkippedEntries(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "keep.txt", "move.txt")

	p := &plan.Plan{Dir: dir, Entries: []plan.Entry{
		{Source: "keep.txt", Proposed: "keep.txt", Ordinal: 0, Status: plan.StatusPlanned, Changed: false, Reason: "no-change"},
		{Source: "move.txt", Proposed: "moved.txt", Ordinal: 1, Status: plan.StatusPlanned, Changed: true, Reason: "ok"},
		{Source: "ghost.txt", Proposed: "taken.txt", Ordinal: 2, Status: plan.StatusSkipped, Changed: true, Reason: "collision"},
	}}

	res := Apply(context.Background(), p, Options{})

	assert.Equal(t, 1, res.Renamed, "only the pending entry renames")
	assert.Len(t, res.Outcomes, 1, "non-pending entries never reach the executor")
	assert.Equal(t, []string{"keep.txt", "moved.txt"}, dirNames(t, dir), "unchanged files are untouched")
}

func TestApply_extraneousTargetAbortsRemaining(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.txt", "b.txt", "c.txt")

	p := planOf(dir,
		[2]string{"a.txt", "renamed_a.txt"},
		[2]string{"b.txt", "intruder.txt"},
		[2]string{"c.txt", "renamed_c.txt"},
	)

	// A file appears at b's target between planning and applying.
	touch(t, dir, "intruder.txt")

	res := Apply(context.Background(), p, Options{})

	assert.Equal(t, 1, res.Renamed, "entries staged before the intruder complete")
	assert.Equal(t, 2, res.Aborted, "the intruder's entry and everything after it abort")
	assert.Equal(t, OutcomeRenamed, res.Outcomes[0].Status, "first entry completed")
	assert.Equal(t, OutcomeAborted, res.Outcomes[1].Status, "blocked entry aborted")
	assert.Contains(t, res.Outcomes[1].Error, "intruder.txt", "error should name the unexpected file")
	assert.Equal(t, OutcomeAborted, res.Outcomes[2].Status, "later entries aborted too")

	assert.Equal(t, []string{"b.txt", "c.txt", "intruder.txt", "renamed_a.txt"}, dirNames(t, dir), "aborted sources stay put, the intruder is untouched")
}

func TestApply_noVerifyTrustsThePlan(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.txt", "intruder.txt")

	p := planOf(dir, [2]string{"a.txt", "intruder.txt"})

	res := Apply(context.Background(), p, Options{NoVerify: true})

	assert.Equal(t, 1, res.Renamed, "verification disabled, the rename overwrites")
	assert.Equal(t, []string{"intruder.txt"}, dirNames(t, dir), "only the target remains")
}

func TestApply_missingSourceFailsThatEntryOnly(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "b.txt")

	p := planOf(dir,
		[2]string{"vanished.txt", "x.txt"},
		[2]string{"b.txt", "y.txt"},
	)

	res := Apply(context.Background(), p, Options{})

	assert.Equal(t, 1, res.Failed, "the missing source fails")
	assert.Equal(t, 1, res.Renamed, "the rest of the batch continues")
	assert.Equal(t, OutcomeFailed, res.Outcomes[0].Status, "first outcome is the failure")
	assert.NotEmpty(t, res.Outcomes[0].Error, "failure should carry its reason")
	assert.Equal(t, []string{"y.txt"}, dirNames(t, dir), "the healthy entry still applied")
}

func TestApply_cancellationAbortsUnstagedEntries(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.txt", "b.txt")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := planOf(dir,
		[2]string{"a.txt", "x.txt"},
		[2]string{"b.txt", "y.txt"},
	)

	res := Apply(ctx, p, Options{})

	assert.Zero(t, res.Renamed, "nothing staged after cancellation")
	assert.Equal(t, 2, res.Aborted, "every entry aborts cleanly")
	assert.Equal(t, []string{"a.txt", "b.txt"}, dirNames(t, dir), "no temp files are left behind")
}

func TestIsTempName(t *testing.T) {
	assert.True(t, IsTempName("__tmp_rename__a1b2c3d4__photo.jpg"), "staging names are recognized")
	assert.False(t, IsTempName("photo.jpg"), "ordinary names are not")

	tag := newTempTag()
	assert.True(t, IsTempName(tag+"anything"), "generated tags are recognized")
	assert.NotEqual(t, tag, newTempTag(), "tags differ across runs")
}
