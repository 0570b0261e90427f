package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/renamerc/cmd/renamerc/opts"
)

// NewApplyCmd creates a new apply command
func NewApplyCmd(ro *opts.RootOpts) *cobra.Command {
	flags := &renameFlags{}
	var journal string

	cmd := &cobra.Command{
		Use:   "apply [flags] [DIR...]",
		Short: "Plan and execute the renames",
		Long: `Apply computes the rename plan and then executes it in plan order.
Renames are two-phase (source to staging name, then to target) so swaps
and case-only renames are safe. A file that appeared at a target path
since planning aborts the entries not yet staged; individual failures are
reported and the rest of the batch continues.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "apply").Logger().WithContext(ctx)

			cfg := ro.Config
			flags.overlay(cmd, cfg)
			if cmd.Flags().Changed("journal") {
				cfg.Journal = journal
			}
			if err := runRename(ctx, ro, cfg, args, true); err != nil {
				return errors.Errorf("applying: %w", err)
			}
			return nil
		},
	}
	addRenameFlags(cmd, flags)
	cmd.Flags().StringVar(&journal, "journal", "", "write the apply journal to this .json file")
	return cmd
}
