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

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"dirpx.dev/apperr/code"
)

func newCheckCommand() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the registry self-check",
		Long: `Verify category ranges, code uniqueness and category membership of every
registered code.

Registered codes whose explicit HTTP status differs from the range-based
fallback are counted; --strict lists each of them. The explicit status always
wins, so these are warnings, not failures.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := code.Check(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "registry OK: %d codes in %d categories\n", len(code.All()), len(code.Categories()))

			ds := code.Discrepancies()
			if !strict {
				if len(ds) > 0 {
					_, _ = fmt.Fprintf(out, "%d codes differ from the range fallback status (use --strict to list)\n", len(ds))
				}
				return nil
			}
			for _, d := range ds {
				_, _ = fmt.Fprintf(out, "warning: %s (%d) status %d differs from range fallback %d\n",
					d.Definition.Name, int(d.Definition.Code), d.Definition.HTTPStatus, d.Fallback)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "list every status discrepancy")
	return cmd
}
