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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(sec int) time.Time {
	return time.Date(2024, 6, 1, 12, 0, sec, 0, time.UTC)
}

func names(files []File) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Name
	}
	return out
}

func TestOrder(t *testing.T) {
	tests := []struct {
		name      string
		files     []File
		key       string
		direction string
		want      []string
	}{
		{
			name: "name_ascending_case_insensitive",
			files: []File{
				{Name: "b.txt"}, {Name: "A.txt"}, {Name: "c.txt"},
			},
			key: SortByName, direction: OrderAsc,
			want: []string{"A.txt", "b.txt", "c.txt"},
		},
		{
			name: "name_descending",
			files: []File{
				{Name: "b.txt"}, {Name: "A.txt"}, {Name: "c.txt"},
			},
			key: SortByName, direction: OrderDesc,
			want: []string{"c.txt", "b.txt", "A.txt"},
		},
		{
			name: "mtime_ascending",
			files: []File{
				{Name: "newest.jpg", ModTime: at(30)},
				{Name: "oldest.jpg", ModTime: at(10)},
				{Name: "middle.jpg", ModTime: at(20)},
			},
			key: SortByMTime, direction: OrderAsc,
			want: []string{"oldest.jpg", "middle.jpg", "newest.jpg"},
		},
		{
			name: "mtime_descending",
			files: []File{
				{Name: "newest.jpg", ModTime: at(30)},
				{Name: "oldest.jpg", ModTime: at(10)},
				{Name: "middle.jpg", ModTime: at(20)},
			},
			key: SortByMTime, direction: OrderDesc,
			want: []string{"newest.jpg", "middle.jpg", "oldest.jpg"},
		},
		{
			name: "ctime_ascending",
			files: []File{
				{Name: "b.jpg", ChangeTime: at(2)},
				{Name: "a.jpg", ChangeTime: at(1)},
			},
			key: SortByCTime, direction: OrderAsc,
			want: []string{"a.jpg", "b.jpg"},
		},
		{
			name: "equal_mtimes_keep_listing_order_ascending",
			files: []File{
				{Name: "z.jpg", ModTime: at(10)},
				{Name: "a.jpg", ModTime: at(10)},
				{Name: "m.jpg", ModTime: at(10)},
			},
			key: SortByMTime, direction: OrderAsc,
			want: []string{"z.jpg", "a.jpg", "m.jpg"},
		},
		{
			name: "equal_mtimes_keep_listing_order_descending",
			files: []File{
				{Name: "z.jpg", ModTime: at(10)},
				{Name: "a.jpg", ModTime: at(10)},
				{Name: "m.jpg", ModTime: at(10)},
			},
			key: SortByMTime, direction: OrderDesc,
			want: []string{"z.jpg", "a.jpg", "m.jpg"},
		},
		{
			name: "case_folded_name_ties_keep_listing_order",
			files: []File{
				{Name: "A.txt"}, {Name: "a.txt"},
			},
			key: SortByName, direction: OrderDesc,
			want: []string{"A.txt", "a.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, warnings, err := Order(tt.files, tt.key, tt.direction)
			require.NoError(t, err, "Order should succeed")
			assert.Empty(t, warnings, "no warnings expected")
			assert.Equal(t, tt.want, names(got), "order should match")
		})
	}
}

func TestOrder_unreadableMetadataSortsLast(t *testing.T) {
	files := []File{
		{Name: "broken.jpg", MetaErr: errors.New("stat failed")},
		{Name: "b.jpg", ModTime: at(20)},
		{Name: "a.jpg", ModTime: at(10)},
	}

	asc, warnings, err := Order(files, SortByMTime, OrderAsc)
	require.NoError(t, err, "Order should succeed")
	assert.Equal(t, []string{"a.jpg", "b.jpg", "broken.jpg"}, names(asc), "broken entry should sort last ascending")
	require.Len(t, warnings, 1, "one warning per unreadable file")
	assert.Contains(t, warnings[0], "broken.jpg", "warning should name the file")

	desc, _, err := Order(files, SortByMTime, OrderDesc)
	require.NoError(t, err, "Order should succeed")
	assert.Equal(t, []string{"b.jpg", "a.jpg", "broken.jpg"}, names(desc), "broken entry should sort last descending too")
}

func TestOrder_nameKeyIgnoresMetadataErrors(t *testing.T) {
	files := []File{
		{Name: "b.jpg", MetaErr: errors.New("stat failed")},
		{Name: "a.jpg"},
	}

	got, warnings, err := Order(files, SortByName, OrderAsc)
	require.NoError(t, err, "Order should succeed")
	assert.Empty(t, warnings, "name ordering never consults metadata")
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, names(got), "order should ignore MetaErr")
}

func TestOrder_rejectsUnknownKeyAndDirection(t *testing.T) {
	_, _, err := Order(nil, "size", OrderAsc)
	require.Error(t, err, "unknown key should fail")
	var keyErr *SortKeyError
	require.True(t, errors.As(err, &keyErr), "error should be a SortKeyError")
	assert.Equal(t, "key", keyErr.Field, "field should be key")
	assert.Equal(t, "size", keyErr.Value, "value should be the rejected key")

	_, _, err = Order(nil, SortByName, "sideways")
	require.Error(t, err, "unknown direction should fail")
	require.True(t, errors.As(err, &keyErr), "error should be a SortKeyError")
	assert.Equal(t, "direction", keyErr.Field, "field should be direction")
}

func TestOrder_doesNotMutateInput(t *testing.T) {
	files := []File{
		{Name: "b.jpg", ModTime: at(20)},
		{Name: "a.jpg", ModTime: at(10)},
	}

	_, _, err := Order(files, SortByMTime, OrderAsc)
	require.NoError(t, err, "Order should succeed")
	assert.Equal(t, []string{"b.jpg", "a.jpg"}, names(files), "input slice should keep its order")
}
