/*
Copyright © 2026 Kariann Harris
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/kariannharris-star/dungeon-crawlr/internal/save"

	"github.com/spf13/cobra"
)

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "Inspect the save file",
	Long:  `Shows the saved session at the configured save path, if one exists.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := savePath()
		info, err := os.Stat(path)
		if err != nil {
			fmt.Printf("No save file at %s\n", path)
			return
		}

		doc, err := save.Read(path)
		if err != nil {
			fmt.Printf("Save file at %s is unreadable: %v\n", path, err)
			return
		}

		visited := 0
		for _, rs := range doc.RoomStates {
			if rs.Visited {
				visited++
			}
		}
		fmt.Printf("Save file: %s (%d bytes, modified %s)\n", path, info.Size(), info.ModTime().Format("2006-01-02 15:04"))
		fmt.Printf("  Version:  %s\n", doc.Version)
		fmt.Printf("  Player:   %s, level %d, %d/%d HP, %d gold\n",
			doc.Player.Name, doc.Player.Level, doc.Player.HP, doc.Player.MaxHP, doc.Player.Gold)
		fmt.Printf("  Location: %s (%d rooms visited)\n", doc.CurrentRoom, visited)
	},
}

func init() {
	rootCmd.AddCommand(savesCmd)
}
