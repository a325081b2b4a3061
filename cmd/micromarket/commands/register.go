package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"micromarket/internal/domain"
)

func registerCmd() *cobra.Command {
	var (
		name     string
		role     string
		password string
	)
	cmd := &cobra.Command{
		Use:   "register <email>",
		Short: "Create an account and log in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := wire.Sessions.Register(
				cmd.Context(), name, args[0], password, domain.Role(role),
			)
			if err != nil {
				return err
			}
			user := wire.Sessions.Current().User
			fmt.Printf("Welcome, %s! You are registered as a %s.\n", user.Name, user.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "your full name")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleVendor),
		"account role: vendor (buys produce) or supplier (sells produce)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
