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

// Package execute applies finalized rename plans. Renames run in ordinal
// order through a two-phase scheme (source -> staging name -> target) so
// intra-batch swaps and case-only renames are safe on any filesystem.
// Application is best-effort, not transactional: a single failure is
// reported and the rest of the batch continues, while an extraneous file
// discovered at a target path aborts the entries not yet staged.
package execute

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/walteh/renamerc/pkg/plan"
)

// 🔧 Options tune apply behavior. The zero value verifies every target
// before staging; NoVerify trusts the plan and lets os.Rename decide.
type Options struct {
	NoVerify bool
}

// 🔑 OutcomeStatus classifies what happened to one entry at apply time.
type OutcomeStatus string

const (
	OutcomeRenamed OutcomeStatus = "renamed" // fully applied
	OutcomeFailed  OutcomeStatus = "failed"  // a rename syscall failed; rest of the batch continued
	OutcomeAborted OutcomeStatus = "aborted" // never staged: extraneous target file or cancellation
)

// 📦 Outcome is one entry's apply result.
type Outcome struct {
	Source string        `json:"source"`
	Target string        `json:"target"`
	Status OutcomeStatus `json:"status"`
	Error  string        `json:"error,omitempty"`
}

// 📦 Result summarizes one apply run.
type Result struct {
	Dir      string    `json:"dir"`
	Outcomes []Outcome `json:"outcomes"`
	Renamed  int       `json:"renamed"`
	Failed   int       `json:"failed"`
	Aborted  int       `json:"aborted"`
}

// staged is one entry that made it through phase one.
type staged struct {
	outcome *Outcome
	temp    string
	target  string
}

// 📝 Apply executes the plan's pending entries in ordinal order.
//
// Phase one renames each source to a run-unique staging name; phase two
// renames staged files to their targets. Unless opts.NoVerify, each
// target is checked before staging: a file at the target path that is
// neither the entry's own source nor a source this batch vacates appeared
// after planning, and aborts every entry not yet staged. Entries already
// staged are still completed. Context cancellation between entries
// behaves the same way: staged work finishes, the rest is aborted.
func Apply(ctx context.Context, p *plan.Plan, opts Options) *Result {
	pending := p.Pending()
	res := &Result{Dir: p.Dir, Outcomes: make([]Outcome, len(pending))}
	for i, e := range pending {
		res.Outcomes[i] = Outcome{Source: e.Source, Target: e.Proposed}
	}

	vacated := make(map[string]bool, len(pending))
	for _, e := range pending {
		vacated[e.Source] = true
	}

	tag := newTempTag()
	log := zerolog.Ctx(ctx)
	log.Debug().Str("dir", p.Dir).Int("pending", len(pending)).Msg("applying rename plan")

	var stagedEntries []staged
	abort := "" // non-empty once the remaining batch must not be staged

	for i, e := range pending {
		out := &res.Outcomes[i]
		if abort != "" {
			out.Status = OutcomeAborted
			out.Error = abort
			res.Aborted++
			continue
		}
		if err := ctx.Err(); err != nil {
			abort = "interrupted: " + err.Error()
			out.Status = OutcomeAborted
			out.Error = abort
			res.Aborted++
			continue
		}

		// Case-only self-renames are exempt from verification: on a
		// case-insensitive filesystem the file at the target path is the
		// source itself.
		target := filepath.Join(p.Dir, e.Proposed)
		if !opts.NoVerify && !strings.EqualFold(e.Proposed, e.Source) && !vacated[e.Proposed] {
			if _, err := os.Lstat(target); err == nil {
				abort = "unexpected file at " + e.Proposed
				out.Status = OutcomeAborted
				out.Error = abort
				res.Aborted++
				log.Warn().Str("target", e.Proposed).Msg("target appeared after planning, aborting remaining entries")
				continue
			}
		}

		temp := filepath.Join(p.Dir, tag+e.Source)
		if err := os.Rename(filepath.Join(p.Dir, e.Source), temp); err != nil {
			out.Status = OutcomeFailed
			out.Error = err.Error()
			res.Failed++
			log.Warn().Err(err).Str("source", e.Source).Msg("staging rename failed")
			continue
		}
		stagedEntries = append(stagedEntries, staged{outcome: out, temp: temp, target: target})
	}

	for _, s := range stagedEntries {
		if err := os.Rename(s.temp, s.target); err != nil {
			s.outcome.Status = OutcomeFailed
			s.outcome.Error = err.Error()
			res.Failed++
			log.Warn().Err(err).Str("target", s.outcome.Target).Msg("final rename failed")
			continue
		}
		s.outcome.Status = OutcomeRenamed
		res.Renamed++
	}

	log.Debug().
		Int("renamed", res.Renamed).
		Int("failed", res.Failed).
		Int("aborted", res.Aborted).
		Msg("apply complete")
	return res
}
