package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"spana-admin/display"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List platform users",
	RunE: func(cmd *cobra.Command, args []string) error {
		users, err := app.Users.Fetch(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tTYPE\tSTATUS\tJOINED")
		for _, u := range users {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				u.ID, u.Name, u.Email, u.Type, display.UserStatus(u.Status), u.Joined)
		}
		return w.Flush()
	},
}
