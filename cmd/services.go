package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"spana-admin/display"
	"spana-admin/store"
)

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "Manage the service catalogue",
}

var servicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List services",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := app.Services.Fetch(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tPRICE\tSTATUS\tDESCRIPTION")
		for _, s := range services {
			fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\t%s\n",
				s.ID, s.Title, s.Price, display.ServiceStatus(s.Status), s.Description)
		}
		return w.Flush()
	},
}

var (
	createTitle       string
	createDescription string
	createPrice       float64
	createMediaURL    string
)

var servicesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a service",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := app.Services.Create(cmd.Context(), store.ServiceInput{
			Title:       createTitle,
			Description: createDescription,
			Price:       createPrice,
			MediaURL:    createMediaURL,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Service %q created.\n", createTitle)
		return nil
	},
}

var servicesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a service",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := app.Services.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Service %s deleted.\n", args[0])
		return nil
	},
}

func init() {
	servicesCreateCmd.Flags().StringVar(&createTitle, "title", "", "service title")
	servicesCreateCmd.Flags().StringVar(&createDescription, "description", "", "service description")
	servicesCreateCmd.Flags().Float64Var(&createPrice, "price", 0, "service price")
	servicesCreateCmd.Flags().StringVar(&createMediaURL, "media-url", "", "optional media URL")

	servicesCmd.AddCommand(servicesListCmd, servicesCreateCmd, servicesDeleteCmd)
}
