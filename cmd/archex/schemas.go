package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/archibald-tools/archex/internal/schemas"
)

var schemasCmd = &cobra.Command{
	Use:   "schemas",
	Short: "List the known document types and their layouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TYPE\tCYCLE\tANCHOR\tPRIMARY KEY\tFIELDS")
		for _, name := range schemas.Names() {
			sch, err := schemas.Get(name, schemas.Options{})
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%d\n",
				sch.Name, sch.DefaultCycle, sch.AnchorLabel,
				sch.PrimaryKey, len(sch.OutputFieldNames()))
		}
		return w.Flush()
	},
}
