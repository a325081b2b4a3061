package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func suppliersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suppliers",
		Short: "List supplier stalls",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			suppliers, err := wire.Catalog.Suppliers(cmd.Context())
			if err != nil {
				return err
			}
			if len(suppliers) == 0 {
				fmt.Println("No suppliers yet. Try `micromarket seed` against a fresh backend.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSTALL\tLOCATION\tRATING\tDELIVERY")
			for _, s := range suppliers {
				fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%.1f\n",
					s.ID, s.StallName, s.Location, s.Rating, s.DeliveryRating)
			}
			return w.Flush()
		},
	}
}
