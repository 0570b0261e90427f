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

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/renamerc/pkg/template"
)

// 🎯 Options is the full planning surface. String enums left empty select
// the defaults noted on each field.
type Options struct {
	Template    string // naming template, default "{stem}"
	Delimiter   string // stem segmentation, "" keeps the stem whole
	SliceJoiner string // joins {N+}/{N:M} selections, "" falls back to Delimiter
	Pattern     string // optional named-capture pattern, anchored at the stem start

	SortKey   string // name | mtime | ctime, default name
	SortOrder string // asc | desc, default asc

	SeqStart int // first {seq} value
	SeqStep  int // increment per drawn value; 0 means 1
	SeqPad   int // zero-padded width of {seq}; <= 0 disables padding

	Conflict  string // fail | skip | suffix, default skip
	SuffixSep string // separator before the dedup number, default "_"

	CaseSensitive   bool // compare proposed names exactly instead of case-folded
	NoExistingCheck bool // skip collision checks against files outside the batch
	NoAutoExt       bool // never auto-append the source extension
	WindowsSafe     bool // validate proposed names against Windows rules too
}

// 🎯 Builder turns ordered directory listings into rename plans. One
// Builder serves every directory in a run; each Build call is an
// independent plan with its own sequence counter.
type Builder struct {
	opts     Options
	tmpl     *template.Template
	splitter template.Splitter
	check    Validator
}

// 🏭 NewBuilder compiles the template and capture pattern and validates
// every enum up front, so planning can only fail on per-file data.
func NewBuilder(opts Options) (*Builder, error) {
	if opts.Template == "" {
		opts.Template = "{stem}"
	}
	if opts.SortKey == "" {
		opts.SortKey = SortByName
	}
	if opts.SortOrder == "" {
		opts.SortOrder = OrderAsc
	}
	if opts.Conflict == "" {
		opts.Conflict = ConflictSkip
	}
	if opts.SuffixSep == "" {
		opts.SuffixSep = "_"
	}
	if opts.SeqStep == 0 {
		opts.SeqStep = 1
	}

	switch opts.SortKey {
	case SortByName, SortByMTime, SortByCTime:
	default:
		return nil, &SortKeyError{Field: "key", Value: opts.SortKey}
	}
	switch opts.SortOrder {
	case OrderAsc, OrderDesc:
	default:
		return nil, &SortKeyError{Field: "direction", Value: opts.SortOrder}
	}
	switch opts.Conflict {
	case ConflictFail, ConflictSkip, ConflictSuffix:
	default:
		return nil, errors.Errorf("unrecognized conflict policy %q", opts.Conflict)
	}
	// The separator ends up inside suffixed names after per-name
	// validation already ran, so it must be a clean fragment itself.
	if err := (Validator{WindowsSafe: opts.WindowsSafe}).ValidateFragment(opts.SuffixSep); err != nil {
		return nil, errors.Errorf("suffix separator %q: %w", opts.SuffixSep, err)
	}

	tmpl, err := template.Compile(opts.Template)
	if err != nil {
		return nil, errors.Errorf("compiling template: %w", err)
	}

	splitter := template.Splitter{Delimiter: opts.Delimiter, Joiner: opts.SliceJoiner}
	if opts.Pattern != "" {
		re, err := template.CompilePattern(opts.Pattern)
		if err != nil {
			return nil, err
		}
		splitter.Pattern = re
	}

	return &Builder{
		opts:     opts,
		tmpl:     tmpl,
		splitter: splitter,
		check:    Validator{WindowsSafe: opts.WindowsSafe},
	}, nil
}

// 📝 Build computes the rename plan for one directory: order the files,
// render each proposed name, validate it, then resolve collisions. The
// plan is complete before anything on disk changes; rebuilding from the
// same input yields the same plan.
func (b *Builder) Build(ctx context.Context, in Input) (*Plan, error) {
	zerolog.Ctx(ctx).Debug().
		Str("dir", in.Dir).
		Int("files", len(in.Files)).
		Str("template", b.tmpl.String()).
		Msg("building rename plan")

	ordered, warnings, err := Order(in.Files, b.opts.SortKey, b.opts.SortOrder)
	if err != nil {
		return nil, err
	}

	seq := template.NewSequence(b.opts.SeqStart, b.opts.SeqStep, b.opts.SeqPad)

	entries := make([]Entry, 0, len(ordered))
	for i, f := range ordered {
		if err := ctx.Err(); err != nil {
			return nil, errors.Errorf("planning interrupted: %w", err)
		}

		fc := b.splitter.Context(f.Name, f.ModTime, f.ChangeTime, i)
		proposed := b.tmpl.Render(fc, seq.Frame())
		if b.shouldAppendExt(proposed) {
			proposed += fc.Ext
		}

		if verr := b.check.Validate(proposed); verr != nil {
			return nil, &NameError{Source: f.Name, Proposed: proposed, Reason: verr.Error()}
		}

		changed := proposed != f.Name
		reason := "ok"
		if !changed {
			reason = "no-change"
		}
		entries = append(entries, Entry{
			Source:   f.Name,
			Proposed: proposed,
			Ordinal:  i,
			Status:   StatusPlanned,
			Changed:  changed,
			Reason:   reason,
		})
	}

	resolved, err := resolveConflicts(entries, in.Existing, b.opts)
	if err != nil {
		return nil, err
	}

	plan := &Plan{Dir: in.Dir, Entries: resolved, Warnings: warnings}
	changed, unchanged, skipped := plan.Counts()
	zerolog.Ctx(ctx).Debug().
		Int("changed", changed).
		Int("unchanged", unchanged).
		Int("skipped", skipped).
		Msg("rename plan ready")
	return plan, nil
}

// shouldAppendExt decides extension auto-append: only when the template
// never references {ext} and the rendered name carries no extension of
// its own.
func (b *Builder) shouldAppendExt(proposed string) bool {
	if b.opts.NoAutoExt || b.tmpl.ReferencesExtension() {
		return false
	}
	_, ext := template.SplitName(proposed)
	return ext == ""
}
