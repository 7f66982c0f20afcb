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

	"dirpx.dev/apperr/apis"
	"dirpx.dev/apperr/code"
)

func newExplainCommand(load func() (apis.Mapper, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "explain CODE",
		Short: "Show how a code resolves to transport statuses",
		Long: `Explain which rule of the status mapper produced the HTTP and gRPC status
of a code. CODE is a name (any case, '-' or '_') or a number.

Example:
  errcodes explain data-not-found
  errcodes explain 2000 --config apperr.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := code.Parse(args[0])
			if err != nil {
				return err
			}
			m, err := load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, m.Explain(c))
			_, _ = fmt.Fprintf(out, "message: %s\n", c.Message())
			return nil
		},
	}
}
