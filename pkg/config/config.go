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

package config

import (
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/renamerc/pkg/plan"
)

// 📚 Config is the complete renaming surface: what to match, how to order
// it, what to render, and how to resolve collisions. Every field can also
// be set by a CLI flag; flags win over the loaded file.
type Config struct {
	// Template rendering
	Template    string `json:"template,omitempty" yaml:"template,omitempty" toml:"template" hcl:"template,optional"`
	Delimiter   string `json:"delimiter,omitempty" yaml:"delimiter,omitempty" toml:"delimiter" hcl:"delimiter,optional"`
	SliceJoiner string `json:"slice_joiner,omitempty" yaml:"slice_joiner,omitempty" toml:"slice_joiner" hcl:"slice_joiner,optional"`
	Regex       string `json:"regex,omitempty" yaml:"regex,omitempty" toml:"regex" hcl:"regex,optional"`

	// Discovery
	Recursive bool     `json:"recursive,omitempty" yaml:"recursive,omitempty" toml:"recursive" hcl:"recursive,optional"`
	Include   []string `json:"include,omitempty" yaml:"include,omitempty" toml:"include" hcl:"include,optional"`
	Exclude   []string `json:"exclude,omitempty" yaml:"exclude,omitempty" toml:"exclude" hcl:"exclude,optional"`
	Exts      []string `json:"exts,omitempty" yaml:"exts,omitempty" toml:"exts" hcl:"exts,optional"`

	// Ordering
	SortKey   string `json:"sort_key,omitempty" yaml:"sort_key,omitempty" toml:"sort_key" hcl:"sort_key,optional"`
	SortOrder string `json:"sort_order,omitempty" yaml:"sort_order,omitempty" toml:"sort_order" hcl:"sort_order,optional"`

	// Sequence counter. SeqStart nil selects the default of 1; an
	// explicit zero start (file or flag) is honored as-is.
	SeqStart *int `json:"seq_start,omitempty" yaml:"seq_start,omitempty" toml:"seq_start" hcl:"seq_start,optional"`
	SeqStep  int `json:"seq_step,omitempty" yaml:"seq_step,omitempty" toml:"seq_step" hcl:"seq_step,optional"`
	SeqPad   int `json:"seq_pad,omitempty" yaml:"seq_pad,omitempty" toml:"seq_pad" hcl:"seq_pad,optional"`

	// Collision handling
	Conflict        string `json:"conflict,omitempty" yaml:"conflict,omitempty" toml:"conflict" hcl:"conflict,optional"`
	SuffixSep       string `json:"suffix_sep,omitempty" yaml:"suffix_sep,omitempty" toml:"suffix_sep" hcl:"suffix_sep,optional"`
	CaseSensitive   bool   `json:"case_sensitive,omitempty" yaml:"case_sensitive,omitempty" toml:"case_sensitive" hcl:"case_sensitive,optional"`
	NoExistingCheck bool   `json:"no_existing_check,omitempty" yaml:"no_existing_check,omitempty" toml:"no_existing_check" hcl:"no_existing_check,optional"`
	NoAutoExt       bool   `json:"no_auto_ext,omitempty" yaml:"no_auto_ext,omitempty" toml:"no_auto_ext" hcl:"no_auto_ext,optional"`
	WindowsSafe     bool   `json:"windows_safe,omitempty" yaml:"windows_safe,omitempty" toml:"windows_safe" hcl:"windows_safe,optional"`

	// Output
	PreviewLimit int    `json:"preview_limit,omitempty" yaml:"preview_limit,omitempty" toml:"preview_limit" hcl:"preview_limit,optional"`
	Export       string `json:"export,omitempty" yaml:"export,omitempty" toml:"export" hcl:"export,optional"`
	Journal      string `json:"journal,omitempty" yaml:"journal,omitempty" toml:"journal" hcl:"journal,optional"`
	Async        bool   `json:"async,omitempty" yaml:"async,omitempty" toml:"async" hcl:"async,optional"`
}

// 🔍 Validate applies defaults and rejects bad enum values. Validation
// happens once, after loading and flag layering, before any planning.
func (cfg *Config) Validate() error {
	if cfg.Template == "" {
		cfg.Template = "{stem}"
	}
	if cfg.SortKey == "" {
		cfg.SortKey = plan.SortByName
	}
	if cfg.SortOrder == "" {
		cfg.SortOrder = plan.OrderAsc
	}
	if cfg.Conflict == "" {
		cfg.Conflict = plan.ConflictSkip
	}
	if cfg.SuffixSep == "" {
		cfg.SuffixSep = "_"
	}
	if cfg.SeqStart == nil {
		start := 1
		cfg.SeqStart = &start
	}
	if cfg.SeqStep == 0 {
		cfg.SeqStep = 1
	}
	if cfg.SeqPad == 0 {
		cfg.SeqPad = 4
	}

	switch cfg.SortKey {
	case plan.SortByName, plan.SortByMTime, plan.SortByCTime:
	default:
		return errors.Errorf("sort_key must be one of name, mtime, ctime; got %q", cfg.SortKey)
	}
	switch cfg.SortOrder {
	case plan.OrderAsc, plan.OrderDesc:
	default:
		return errors.Errorf("sort_order must be asc or desc; got %q", cfg.SortOrder)
	}
	switch cfg.Conflict {
	case plan.ConflictFail, plan.ConflictSkip, plan.ConflictSuffix:
	default:
		return errors.Errorf("conflict must be one of fail, skip, suffix; got %q", cfg.Conflict)
	}
	if err := (plan.Validator{WindowsSafe: cfg.WindowsSafe}).ValidateFragment(cfg.SuffixSep); err != nil {
		return errors.Errorf("suffix_sep %q: %w", cfg.SuffixSep, err)
	}
	if cfg.SeqPad < 0 {
		return errors.Errorf("seq_pad must not be negative; got %d", cfg.SeqPad)
	}
	if cfg.PreviewLimit < 0 {
		return errors.Errorf("preview_limit must not be negative; got %d", cfg.PreviewLimit)
	}
	for _, path := range []string{cfg.Export, cfg.Journal} {
		if path == "" {
			continue
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".json", ".csv":
		default:
			return errors.Errorf("export paths must end in .json or .csv; got %q", path)
		}
	}
	return nil
}

// 🎯 PlanOptions maps the config onto the planner's option surface.
func (cfg *Config) PlanOptions() plan.Options {
	start := 1
	if cfg.SeqStart != nil {
		start = *cfg.SeqStart
	}
	return plan.Options{
		Template:        cfg.Template,
		Delimiter:       cfg.Delimiter,
		SliceJoiner:     cfg.SliceJoiner,
		Pattern:         cfg.Regex,
		SortKey:         cfg.SortKey,
		SortOrder:       cfg.SortOrder,
		SeqStart:        start,
		SeqStep:         cfg.SeqStep,
		SeqPad:          cfg.SeqPad,
		Conflict:        cfg.Conflict,
		SuffixSep:       cfg.SuffixSep,
		CaseSensitive:   cfg.CaseSensitive,
		NoExistingCheck: cfg.NoExistingCheck,
		NoAutoExt:       cfg.NoAutoExt,
		WindowsSafe:     cfg.WindowsSafe,
	}
}
