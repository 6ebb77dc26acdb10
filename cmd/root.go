// Package cmd wires the admin console's commands. The stores are built once
// at startup and handed to the commands by reference; nothing in here is a
// package-level singleton beyond cobra's own command tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"spana-admin/api"
	"spana-admin/config"
	"spana-admin/session"
	"spana-admin/store"
	"spana-admin/utils"
)

// App bundles the services the commands operate on.
type App struct {
	Session  *session.Store
	Users    *store.Users
	Bookings *store.Bookings
	Services *store.Services
}

var app *App

func newApp() *App {
	config.LoadConfig()
	logger := utils.GetLogger()
	cfg := config.AppConfig

	client := api.NewClient(logger)
	sess := session.NewStore(client, logger, session.Options{
		LoginURL:    cfg.LoginURL,
		OTPURL:      cfg.OTPURL,
		SessionFile: config.SessionFilePath(),
	})

	return &App{
		Session:  sess,
		Users:    store.NewUsers(sess, client, cfg.UsersURL, logger),
		Bookings: store.NewBookings(sess, client, cfg.BookingsURL, logger),
		Services: store.NewServices(sess, client, cfg.ServicesURL, logger),
	}
}

var rootCmd = &cobra.Command{
	Use:           "spana-admin",
	Short:         "Admin console for the Spana services marketplace",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		app = newApp()
	},
}

func init() {
	rootCmd.AddCommand(
		loginCmd,
		logoutCmd,
		whoamiCmd,
		usersCmd,
		bookingsCmd,
		servicesCmd,
		devserverCmd,
	)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
