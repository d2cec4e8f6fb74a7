/*
Copyright © 2026 Kariann Harris
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kariannharris-star/dungeon-crawlr/internal/catalog"
	"github.com/kariannharris-star/dungeon-crawlr/internal/engine"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	playerName string
	playSeed   int64
	resumeSave bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an interactive dungeon session",
	Long: `Starts the interactive terminal session.

A fresh session begins at the dungeon entrance. Pass --load to resume
from the save file instead, or --seed for a reproducible run.`,
	Run: func(cmd *cobra.Command, args []string) {
		eng, err := bootstrapEngine()
		if err != nil {
			fmt.Printf("Failed to start session: %v\n", err)
			os.Exit(1)
		}

		if resumeSave {
			if _, err := eng.Do(engine.Action{Verb: engine.VerbLoad}); err != nil {
				fmt.Printf("Failed to load save: %v\n", err)
				os.Exit(1)
			}
		}

		if err := RunTUI(eng); err != nil {
			fmt.Printf("Session error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().StringVarP(&playerName, "name", "n", "", "player name (default from config, else \"Adventurer\")")
	playCmd.Flags().Int64Var(&playSeed, "seed", 0, "RNG seed for a reproducible session (default: time-based)")
	playCmd.Flags().BoolVar(&resumeSave, "load", false, "resume from the save file")
}

// bootstrapEngine wires the configured catalog, player name, seed, and
// save path into a fresh Engine.
func bootstrapEngine() (*engine.Engine, error) {
	var dataDirs []string
	if dir := viper.GetString("data_dir"); dir != "" {
		dataDirs = append(dataDirs, dir)
	}
	cat, err := catalog.NewLoader(dataDirs).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}

	name := playerName
	if name == "" {
		name = viper.GetString("player_name")
	}
	if name == "" {
		name = "Adventurer"
	}

	seed := playSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	eng, err := engine.New(cat, name, engine.NewSource(seed))
	if err != nil {
		return nil, err
	}
	eng.SavePath = savePath()
	return eng, nil
}

// savePath resolves the configured save location, defaulting under the
// user's home directory.
func savePath() string {
	if p := viper.GetString("save_path"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "save_game.json"
	}
	return filepath.Join(home, ".dungeon-crawlr", "save_game.json")
}
