/*
Copyright © 2026 Kariann Harris
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dungeon-crawlr",
	Short: "A turn-based dungeon crawl in your terminal",
	Long: `dungeon-crawlr is a single-player, turn-based dungeon crawl.

Explore a fixed graph of rooms, fight what lives there, loot chests of
variable temperament, trade at the emporium, tempt the tavern dice, and
walk out with the warlord's amulet.

Use 'dungeon-crawlr play' to start or resume a session.`,
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

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.dungeon-crawlr.yaml)")
	rootCmd.PersistentFlags().String("data_dir", "", "directory with rooms.yaml, items.yaml, enemies.yaml (default: embedded dungeon)")
	rootCmd.PersistentFlags().String("save_path", "", "save file location (default is $HOME/.dungeon-crawlr/save_game.json)")

	_ = viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data_dir"))
	_ = viper.BindPFlag("save_path", rootCmd.PersistentFlags().Lookup("save_path"))
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

		// Search config in home directory with name ".dungeon-crawlr" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".dungeon-crawlr")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
