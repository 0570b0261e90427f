package commands

import (
	"github.com/spf13/cobra"

	"github.com/walteh/renamerc/pkg/config"
)

// renameFlags mirrors the config surface one to one. Only flags the user
// actually changed are layered over the loaded config, so a config file
// and flags compose instead of clobbering each other.
type renameFlags struct {
	cfg config.Config

	// seqStart lives outside cfg because Config.SeqStart is a pointer:
	// nil means "use the default", while --seq-start=0 must stay zero.
	seqStart int
}

func addRenameFlags(cmd *cobra.Command, f *renameFlags) {
	fl := cmd.Flags()
	fl.StringVarP(&f.cfg.Template, "template", "t", "{stem}", "naming template, e.g. 'frame_{seq}' or '{mtime}_{stem|slug}'")
	fl.StringVar(&f.cfg.Delimiter, "delimiter", "", "delimiter for positional segments like {1} and {2+}")
	fl.StringVar(&f.cfg.SliceJoiner, "slice-joiner", "", "joiner for range selections, defaults to the delimiter")
	fl.StringVar(&f.cfg.Regex, "regex", "", "pattern with named groups, matched against each stem")

	fl.BoolVarP(&f.cfg.Recursive, "recursive", "r", false, "plan subdirectories too, one plan per directory")
	fl.StringSliceVar(&f.cfg.Include, "include", nil, "glob patterns files must match")
	fl.StringSliceVar(&f.cfg.Exclude, "exclude", nil, "glob patterns that exclude files")
	fl.StringSliceVar(&f.cfg.Exts, "exts", nil, "extension allowlist, e.g. .jpg,.png")

	fl.StringVar(&f.cfg.SortKey, "sort-key", "name", "processing order key: name, mtime, or ctime")
	fl.StringVar(&f.cfg.SortOrder, "sort-order", "asc", "processing order direction: asc or desc")

	fl.IntVar(&f.seqStart, "seq-start", 1, "first {seq} value")
	fl.IntVar(&f.cfg.SeqStep, "seq-step", 1, "{seq} increment, may be negative")
	fl.IntVar(&f.cfg.SeqPad, "seq-pad", 4, "zero-padded width of {seq}")

	fl.StringVar(&f.cfg.Conflict, "conflict", "skip", "collision policy: fail, skip, or suffix")
	fl.StringVar(&f.cfg.SuffixSep, "suffix-sep", "_", "separator before the dedup number under the suffix policy")
	fl.BoolVar(&f.cfg.CaseSensitive, "case-sensitive", false, "compare proposed names exactly")
	fl.BoolVar(&f.cfg.NoExistingCheck, "no-existing-check", false, "skip collision checks against files outside the batch")
	fl.BoolVar(&f.cfg.NoAutoExt, "no-auto-ext", false, "never auto-append the source extension")
	fl.BoolVar(&f.cfg.WindowsSafe, "windows-safe", false, "reject names Windows cannot accept")

	fl.IntVar(&f.cfg.PreviewLimit, "preview-limit", 0, "max plan entries to display, 0 shows all (plans and exports are never truncated)")
	fl.StringVar(&f.cfg.Export, "export", "", "write the plan to this .json or .csv file")
	fl.BoolVar(&f.cfg.Async, "async", false, "plan directories concurrently")
}

// overlay copies every changed flag onto cfg.
func (f *renameFlags) overlay(cmd *cobra.Command, cfg *config.Config) {
	set := map[string]func(){
		"template":          func() { cfg.Template = f.cfg.Template },
		"delimiter":         func() { cfg.Delimiter = f.cfg.Delimiter },
		"slice-joiner":      func() { cfg.SliceJoiner = f.cfg.SliceJoiner },
		"regex":             func() { cfg.Regex = f.cfg.Regex },
		"recursive":         func() { cfg.Recursive = f.cfg.Recursive },
		"include":           func() { cfg.Include = f.cfg.Include },
		"exclude":           func() { cfg.Exclude = f.cfg.Exclude },
		"exts":              func() { cfg.Exts = f.cfg.Exts },
		"sort-key":          func() { cfg.SortKey = f.cfg.SortKey },
		"sort-order":        func() { cfg.SortOrder = f.cfg.SortOrder },
		"seq-start":         func() { cfg.SeqStart = &f.seqStart },
		"seq-step":          func() { cfg.SeqStep = f.cfg.SeqStep },
		"seq-pad":           func() { cfg.SeqPad = f.cfg.SeqPad },
		"conflict":          func() { cfg.Conflict = f.cfg.Conflict },
		"suffix-sep":        func() { cfg.SuffixSep = f.cfg.SuffixSep },
		"case-sensitive":    func() { cfg.CaseSensitive = f.cfg.CaseSensitive },
		"no-existing-check": func() { cfg.NoExistingCheck = f.cfg.NoExistingCheck },
		"no-auto-ext":       func() { cfg.NoAutoExt = f.cfg.NoAutoExt },
		"windows-safe":      func() { cfg.WindowsSafe = f.cfg.WindowsSafe },
		"preview-limit":     func() { cfg.PreviewLimit = f.cfg.PreviewLimit },
		"export":            func() { cfg.Export = f.cfg.Export },
		"async":             func() { cfg.Async = f.cfg.Async },
	}
	for name, apply := range set {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
}
