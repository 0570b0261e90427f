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

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/walteh/renamerc/cmd/renamerc/commands"
	"github.com/walteh/renamerc/cmd/renamerc/opts"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := log.WithContext(context.Background())

	ro := &opts.RootOpts{}

	rootCmd := &cobra.Command{
		Use:   "renamerc",
		Short: "Rename batches of files from a naming template",
		Long: `renamerc plans and applies bulk renames driven by a template of
placeholders ({stem}, {ext}, {seq}, {mtime}, positional segments, regex
groups) with filter chains. Plans are deterministic and fully reviewable
before anything on disk moves.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return newRootOpts(cmd.Context(), ro)
		},
	}

	addRootFlags(rootCmd)

	rootCmd.AddCommand(
		commands.NewPlanCmd(ro),
		commands.NewApplyCmd(ro),
		commands.NewVersionCmd(),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if ro.Console != nil {
			ro.Console.Errorf("%v", err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
