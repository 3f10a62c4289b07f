/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/sumwatshade/surfmap/cmd/spots"
)

var cfgFile string

// defaultFeedBase is where the conditions build publishes its documents.
const defaultFeedBase = "https://sumwatshade.github.io/surfmap/data"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "surfmap",
	Short: "Interactive map of live surf conditions",
	Long: `Renders the published surf-conditions dataset as an interactive map:
spots colored by a selectable metric (quality, waves, wind, tide), with
hover tooltips, click popups and a 72h trend chart. The dataset refreshes
itself every five minutes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		token := viper.GetString("feed.token")
		svc := spots.NewService(viper.GetString("feed.base"), token)
		p := tea.NewProgram(
			initialModel(svc, token == ""),
			tea.WithAltScreen(),
			tea.WithMouseAllMotion(),
		)

		_, err := p.Run()

		return err
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.surfmap.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".surfmap" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".surfmap")
	}

	viper.SetDefault("feed.base", defaultFeedBase)

	// SURFMAP_FEED_TOKEN and friends override the config file.
	viper.SetEnvPrefix("surfmap")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
