package cmd

import (
	"github.com/spf13/cobra"

	"spana-admin/config"
	"spana-admin/devserver"
	"spana-admin/utils"
)

var devserverCmd = &cobra.Command{
	Use:   "devserver",
	Short: "Run a local stub of the Spana admin API",
	RunE: func(cmd *cobra.Command, args []string) error {
		srv, err := devserver.New(utils.GetLogger())
		if err != nil {
			return err
		}
		defer srv.Close()
		return srv.Run(":" + config.AppConfig.DevPort)
	},
}
