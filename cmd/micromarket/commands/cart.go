package commands

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"micromarket/internal/domain"
)

func cartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Inspect and mutate your cart",
	}
	cmd.AddCommand(cartAddCmd(), cartShowCmd(), cartPullCmd())
	return cmd
}

// cart add <supplier-id> <product-id>: resolve the product from the
// supplier's catalog, then add it locally and mirror to the backend.
func cartAddCmd() *cobra.Command {
	var qty int
	cmd := &cobra.Command{
		Use:   "add <supplier-id> <product-id>",
		Short: "Add a product to your cart",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			supplierID := domain.SupplierID(args[0])
			productID := domain.ProductID(args[1])

			products, err := wire.Catalog.SupplierProducts(cmd.Context(), supplierID)
			if err != nil {
				return err
			}
			var product *domain.Product
			for i := range products {
				if products[i].ID == productID {
					product = &products[i]
					break
				}
			}
			if product == nil {
				return fmt.Errorf("supplier %q has no product %q", supplierID, productID)
			}

			err = wire.Cart.AddItem(cmd.Context(), *product, qty)
			var mirror *domain.MirrorError
			switch {
			case errors.As(err, &mirror):
				// Local cart already updated; the backend write can retry later.
				fmt.Fprintf(os.Stderr, "warning: %v\n", mirror)
			case err != nil:
				return err
			}

			fmt.Printf("Added %d x %s\n", qty, product.Name)
			return printCart()
		},
	}
	cmd.Flags().IntVar(&qty, "qty", 1, "units to add")
	return cmd
}

func cartShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the local cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printCart()
		},
	}
}

// cart pull: adopt the server-side cart as the local view.
func cartPullCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Fetch the cart stored on the backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Cart.Pull(cmd.Context()); err != nil {
				return err
			}
			return printCart()
		},
	}
}

func printCart() error {
	items := wire.Cart.Items()
	if len(items) == 0 {
		fmt.Println("Cart is empty")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRODUCT\tNAME\tQTY\tUNIT PRICE\tSUBTOTAL")
	for _, li := range items {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\t%.2f\n",
			li.ProductID, li.Name, li.Quantity, li.UnitPrice, li.Subtotal())
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("Total: %.2f\n", wire.Cart.TotalAmount())
	return nil
}
