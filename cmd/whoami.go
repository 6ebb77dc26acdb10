package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"spana-admin/utils"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	Run: func(cmd *cobra.Command, args []string) {
		sess := app.Session
		switch {
		case sess.IsAuthenticated():
			fmt.Println("Status: authenticated")
			if user := sess.User(); user != nil {
				fmt.Printf("User:   %s <%s> (id %s)\n", user.Name, user.Email, user.ID)
			}
			// The token is opaque to the client, but when it happens to be
			// a JWT we can show its expiry as a hint.
			if claims, err := utils.PeekClaims(sess.Token()); err == nil {
				if exp, ok := claims["exp"].(float64); ok {
					fmt.Printf("Expiry: %s\n", time.Unix(int64(exp), 0).Format(time.RFC1123))
				}
			}
		case sess.PendingEmail() != "":
			fmt.Printf("Status: awaiting one-time code for %s\n", sess.PendingEmail())
		default:
			fmt.Println("Status: not logged in")
		}
	},
}
