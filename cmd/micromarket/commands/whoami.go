package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := wire.Sessions.Current()
			if !sess.Authenticated() {
				fmt.Println("Not logged in")
				return nil
			}
			fmt.Printf("%s <%s> (%s)\n", sess.User.Name, sess.User.Email, sess.User.Role)
			return nil
		},
	}
}
