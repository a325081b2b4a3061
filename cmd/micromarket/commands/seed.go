package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Ask the backend to create demo suppliers and products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := wire.Catalog.SeedDemo(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}
}
