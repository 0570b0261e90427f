package commands

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/renamerc/cmd/renamerc/opts"
	"github.com/walteh/renamerc/pkg/config"
	"github.com/walteh/renamerc/pkg/discover"
	"github.com/walteh/renamerc/pkg/operation"
	"github.com/walteh/renamerc/pkg/plan"
)

// runRename is the shared pipeline behind plan and apply: validate the
// layered config, compile the template once, discover each directory
// argument, and hand one operation per discovered directory to the
// runner. Every fatal error surfaces here, before any rename happens.
func runRename(ctx context.Context, ro *opts.RootOpts, cfg *config.Config, dirs []string, apply bool) error {
	if apply {
		ro.Console.Header("applying renames")
	} else {
		ro.Console.Header("plan preview")
	}

	if err := cfg.Validate(); err != nil {
		return errors.Errorf("invalid configuration: %w", err)
	}

	builder, err := plan.NewBuilder(cfg.PlanOptions())
	if err != nil {
		return err
	}

	if len(dirs) == 0 {
		dirs = []string{"."}
	}

	var listings []discover.Listing
	for _, dir := range dirs {
		found, err := discover.List(ctx, dir, discover.Options{
			Recursive: cfg.Recursive,
			Include:   cfg.Include,
			Exclude:   cfg.Exclude,
			Exts:      cfg.Exts,
		})
		if err != nil {
			return errors.Errorf("discovering %s: %w", dir, err)
		}
		listings = append(listings, found...)
	}

	ops := make([]operation.Operation, 0, len(listings))
	for i, listing := range listings {
		op, err := operation.NewRename(operation.Options{
			Listing: listing,
			Config:  cfg,
			Builder: builder,
			Console: ro.Console,
			User:    ro.User,
			Apply:   apply,
			Seq:     i,
			Total:   len(listings),
		})
		if err != nil {
			return err
		}
		ops = append(ops, op)
	}

	logger := zerolog.Ctx(ctx)
	runner := operation.NewRunner(logger, cfg.Async)
	return runner.Run(ctx, ops)
}
