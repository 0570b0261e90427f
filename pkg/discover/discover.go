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

package discover

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/renamerc/pkg/execute"
	"github.com/walteh/renamerc/pkg/plan"
)

// 🔧 Options narrow which directory entries become rename candidates.
// Include and Exclude are doublestar globs matched against the
// slash-separated path relative to the listed root; Exts is a
// case-insensitive extension allowlist (".jpg", ".tar.gz").
type Options struct {
	Recursive bool
	Include   []string
	Exclude   []string
	Exts      []string
}

// 📦 Listing is one directory's discovery result: the rename candidates
// in deterministic listing order, plus every name present in the
// directory for the existing-file collision check.
type Listing struct {
	Dir      string
	Files    []plan.File
	Existing []string
}

// 📝 List discovers rename candidates under root. Non-recursive reads one
// directory; recursive walks subdirectories, each yielding its own
// Listing (plans never span directories). Entries come back in lexical
// order, which is the listing order sort ties preserve. Regular files and
// symlinks are candidates, directories never; leftover executor temp
// files are always skipped. A failed stat degrades to zero timestamps
// plus a MetaErr, never an error from List.
func List(ctx context.Context, root string, opts Options) ([]Listing, error) {
	zerolog.Ctx(ctx).Debug().
		Str("root", root).
		Bool("recursive", opts.Recursive).
		Msg("discovering rename candidates")

	if !opts.Recursive {
		listing, err := listDir(root, root, opts)
		if err != nil {
			return nil, err
		}
		return []Listing{listing}, nil
	}

	var listings []Listing
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Errorf("walking %s: %w", path, err)
		}
		if !d.IsDir() {
			return nil
		}
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		listing, lerr := listDir(root, path, opts)
		if lerr != nil {
			return lerr
		}
		listings = append(listings, listing)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return listings, nil
}

// listDir reads one directory. os.ReadDir returns entries sorted by name,
// which is the deterministic listing order the planner's stable sort
// keys off.
func listDir(root, dir string, opts Options) (Listing, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Listing{}, errors.Errorf("reading directory %s: %w", dir, err)
	}

	listing := Listing{Dir: dir}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		listing.Existing = append(listing.Existing, name)

		if execute.IsTempName(name) {
			continue
		}
		ok, err := matches(root, dir, name, opts)
		if err != nil {
			return Listing{}, err
		}
		if !ok {
			continue
		}

		f := plan.File{Name: name, Index: len(listing.Files)}
		if info, serr := os.Stat(filepath.Join(dir, name)); serr != nil {
			f.MetaErr = serr
		} else {
			f.ModTime = info.ModTime()
			f.ChangeTime = changeTime(info)
		}
		listing.Files = append(listing.Files, f)
	}
	return listing, nil
}

// matches applies the extension allowlist and the include/exclude globs.
// Exclude wins over include; an empty include list admits everything.
func matches(root, dir, name string, opts Options) (bool, error) {
	if len(opts.Exts) > 0 && !extAllowed(name, opts.Exts) {
		return false, nil
	}

	rel, err := filepath.Rel(root, filepath.Join(dir, name))
	if err != nil {
		return false, errors.Errorf("relativizing %s: %w", name, err)
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range opts.Exclude {
		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			return false, errors.Errorf("bad exclude pattern %q: %w", pattern, err)
		}
		if matched {
			return false, nil
		}
	}
	if len(opts.Include) == 0 {
		return true, nil
	}
	for _, pattern := range opts.Include {
		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			return false, errors.Errorf("bad include pattern %q: %w", pattern, err)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}

func extAllowed(name string, exts []string) bool {
	lower := strings.ToLower(name)
	for _, ext := range exts {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}
