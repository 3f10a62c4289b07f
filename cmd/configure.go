package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// configureCmd writes ~/.surfmap.yaml interactively so the map can start
// without exporting environment variables.
var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Interactively set the feed URL and access token",
	RunE: func(cmd *cobra.Command, args []string) error {
		base := viper.GetString("feed.base")
		token := viper.GetString("feed.token")

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Feed base URL").
					Description("Where beaches.geojson, summary.json and history_72h.json live").
					Value(&base),
				huh.NewInput().
					Title("Feed access token").
					EchoMode(huh.EchoModePassword).
					Value(&token),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
		if strings.TrimSpace(token) == "" {
			return fmt.Errorf("access token is required; the map does not start without one")
		}

		viper.Set("feed.base", strings.TrimRight(strings.TrimSpace(base), "/"))
		viper.Set("feed.token", strings.TrimSpace(token))

		path := viper.ConfigFileUsed()
		if path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return err
			}
			path = filepath.Join(home, ".surfmap.yaml")
		}
		if err := viper.WriteConfigAs(path); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Wrote", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configureCmd)
}
