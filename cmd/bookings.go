package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"spana-admin/display"
)

var bookingsCmd = &cobra.Command{
	Use:   "bookings",
	Short: "List bookings",
	RunE: func(cmd *cobra.Command, args []string) error {
		bookings, err := app.Bookings.Fetch(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCLIENT\tSERVICE\tDATE\tPRICE\tSTATUS\tPAYMENT")
		for _, b := range bookings {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\t%s\t%s\n",
				b.ID, b.ClientName, b.ServiceName, b.BookingDate, b.Price,
				display.BookingStatus(b.Status),
				display.PaymentStatus(b.Payment.Status()))
		}
		return w.Flush()
	},
}
