/*
Copyright © 2026 Kariann Harris
*/
package main

import "github.com/kariannharris-star/dungeon-crawlr/cmd"

func main() {
	cmd.Execute()
}
