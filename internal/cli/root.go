/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package cli implements the errcodes command: a catalogue tool that lists
// the registered error codes, runs the registry self-check and explains how
// a code resolves to transport statuses.
package cli

import (
	"github.com/spf13/cobra"

	"dirpx.dev/apperr/apis"
	"dirpx.dev/apperr/config"
)

// NewRootCommand returns the errcodes command tree. Output goes to the
// command's configured writers, so tests can capture it with SetOut.
func NewRootCommand() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "errcodes",
		Short: "Inspect the application error code catalogue",
		Long: `errcodes inspects the registered application error codes.

Commands:
  list      List registered codes with their resolved HTTP and gRPC statuses
  check     Run the registry self-check
  explain   Show how a single code resolves to transport statuses

Status overrides are read from the file given with --config. Environment
variables with the APPERR_ prefix override file values.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file with status overrides (YAML)")

	load := func() (apis.Mapper, error) {
		cfg, err := config.Load(cfgFile, config.DefaultEnvPrefix)
		if err != nil {
			return nil, err
		}
		return cfg.Status.Mapper()
	}

	root.AddCommand(newListCommand(load), newCheckCommand(), newExplainCommand(load))
	return root
}
