package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/renamerc/cmd/renamerc/opts"
)

// NewPlanCmd creates a new plan command
func NewPlanCmd(ro *opts.RootOpts) *cobra.Command {
	flags := &renameFlags{}
	cmd := &cobra.Command{
		Use:   "plan [flags] [DIR...]",
		Short: "Preview the rename plan without touching any file",
		Long: `Plan computes the full rename plan for each directory and prints it.
It will:
1. Discover rename candidates in deterministic listing order
2. Sort them by the configured key and direction
3. Render each proposed name from the template
4. Resolve collisions under the configured policy

Nothing on disk changes; re-running on an unchanged directory prints an
identical plan.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "plan").Logger().WithContext(ctx)

			cfg := ro.Config
			flags.overlay(cmd, cfg)
			if err := runRename(ctx, ro, cfg, args, false); err != nil {
				return errors.Errorf("planning: %w", err)
			}
			return nil
		},
	}
	addRenameFlags(cmd, flags)
	return cmd
}
