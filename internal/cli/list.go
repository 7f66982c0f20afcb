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
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"google.golang.org/grpc/codes"
	"gopkg.in/yaml.v3"

	"dirpx.dev/apperr/adapter"
	"dirpx.dev/apperr/apis"
	"dirpx.dev/apperr/code"
)

func newListCommand(load func() (apis.Mapper, error)) *cobra.Command {
	var category, format string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered codes",
		Long: `List every registered code in catalogue order together with the HTTP
and gRPC statuses the configured mapper resolves for it.

Example:
  errcodes list --category validation --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cat code.Category
			if category != "" {
				c, err := code.ParseCategory(category)
				if err != nil {
					return err
				}
				cat = c
			}
			m, err := load()
			if err != nil {
				return err
			}
			return writeCatalogue(cmd.OutOrStdout(), format, adapter.Catalogue(m, cat))
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only list codes of this category (name or label)")
	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json or yaml")
	return cmd
}

func writeCatalogue(w io.Writer, format string, ds []apis.ErrorDescriptor) error {
	switch format {
	case "table":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(tw, "CODE\tNAME\tCATEGORY\tHTTP\tGRPC\tMESSAGE")
		for _, d := range ds {
			_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\n",
				d.Code, d.Name, d.Category, d.HTTPStatus, codes.Code(d.GRPCCode), d.Message)
		}
		return tw.Flush()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(ds)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ds); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want table, json or yaml)", format)
	}
}
