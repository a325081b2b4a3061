package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"micromarket/internal/domain"
)

func productsCmd() *cobra.Command {
	var qty int
	cmd := &cobra.Command{
		Use:   "products <supplier-id>",
		Short: "List a supplier's catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := wire.Catalog.SupplierProducts(
				cmd.Context(), domain.SupplierID(args[0]),
			)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tUNIT\tAVAILABLE")
			for _, p := range products {
				price := p.PricePerUnit
				if qty > 1 {
					price = p.PriceFor(qty)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\t%d\n",
					p.ID, p.Name, p.Category, price, p.Unit, p.QuantityAvailable)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if qty > 1 {
				fmt.Printf("Prices shown are per unit at quantity %d (bulk tiers applied).\n", qty)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&qty, "qty", 1, "quantity to price bulk discount tiers at")
	return cmd
}
