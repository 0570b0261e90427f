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

package operation

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/renamerc/pkg/config"
	"github.com/walteh/renamerc/pkg/discover"
	"github.com/walteh/renamerc/pkg/execute"
	"github.com/walteh/renamerc/pkg/export"
	"github.com/walteh/renamerc/pkg/log"
	"github.com/walteh/renamerc/pkg/plan"
)

// 🎯 Operation is one unit of work the runner schedules. Operations for
// different directories are independent and may run concurrently.
type Operation interface {
	// Dir returns the directory this operation works on
	Dir() string
	// Execute runs the operation
	Execute(ctx context.Context) error
}

// 🔧 Options wires one Rename operation
type Options struct {
	Listing discover.Listing
	Config  *config.Config
	Builder *plan.Builder
	Console *log.Logger
	User    *log.UserLogger // required when Apply is set
	Apply   bool
	// Seq/Total place this operation in the run, used to derive
	// per-directory export paths when a run spans directories.
	Seq   int
	Total int
}

// 🏭 NewRename creates a plan-or-apply operation for one directory
func NewRename(opts Options) (Operation, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if opts.Builder == nil {
		return nil, errors.New("plan builder is required")
	}
	if opts.Console == nil {
		return nil, errors.New("console logger is required")
	}
	if opts.Apply && opts.User == nil {
		return nil, errors.New("user logger is required to apply")
	}
	return &renameOp{opts: opts}, nil
}

// 🎮 renameOp implements Operation for one directory
type renameOp struct {
	opts Options
}

func (o *renameOp) Dir() string {
	return o.opts.Listing.Dir
}

func (o *renameOp) Execute(ctx context.Context) error {
	cfg := o.opts.Config
	zerolog.Ctx(ctx).Debug().
		Str("dir", o.Dir()).
		Bool("apply", o.opts.Apply).
		Msg("executing rename operation")

	p, err := o.opts.Builder.Build(ctx, plan.Input{
		Dir:      o.opts.Listing.Dir,
		Files:    o.opts.Listing.Files,
		Existing: o.opts.Listing.Existing,
	})
	if err != nil {
		return errors.Errorf("planning %s: %w", o.Dir(), err)
	}

	o.opts.Console.StartPlan(ctx, p.Dir, cfg.Template)
	o.opts.Console.LogPlan(ctx, p, cfg.PreviewLimit)

	if cfg.Export != "" {
		path := o.fanPath(cfg.Export)
		if err := export.WritePlanFile(path, p); err != nil {
			return errors.Errorf("exporting plan: %w", err)
		}
		o.opts.Console.Infof("plan exported to %s", path)
	}

	if !o.opts.Apply {
		return nil
	}

	changed, _, skipped := p.Counts()
	if changed == 0 {
		o.opts.Console.Warningf("nothing to apply in %s", o.Dir())
		return nil
	}
	o.opts.User.LogValidation(skipped == 0,
		fmt.Sprintf("plan for %s: %d to rename, %d skipped", o.Dir(), changed, skipped), nil)
	o.opts.Console.LogNewline()

	res := execute.Apply(ctx, p, execute.Options{NoVerify: cfg.NoExistingCheck})
	for _, out := range res.Outcomes {
		o.opts.User.LogOutcome(out)
	}
	o.opts.User.LogSummary(res)

	if cfg.Journal != "" {
		path := o.fanPath(cfg.Journal)
		if err := export.WriteResultFile(path, res); err != nil {
			return errors.Errorf("writing journal: %w", err)
		}
		o.opts.Console.Infof("journal written to %s", path)
	}
	if res.Failed > 0 || res.Aborted > 0 {
		return errors.Errorf("apply finished with %d failed and %d aborted entries in %s",
			res.Failed, res.Aborted, o.Dir())
	}
	return nil
}

// fanPath derives this operation's output path. A single-directory run
// uses the configured path as-is; a multi-directory run inserts the
// operation's position before the extension so directories never clobber
// each other's exports.
func (o *renameOp) fanPath(path string) string {
	if o.opts.Total <= 1 {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), o.opts.Seq+1, ext)
}
