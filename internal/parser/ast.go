// Package parser turns raw player input into structured engine Actions.
// The grammar is declared in struct tags and compiled once; unparseable
// input maps to a per-command usage hint instead of a participle trace.
package parser

import (
	"fmt"

	"github.com/kariannharris-star/dungeon-crawlr/internal/engine"
)

// Command represents one parsed line of player input.
type Command struct {
	Move      *MoveCmd      `parser:"( @@"`
	Look      *LookCmd      `parser:"| @@"`
	Take      *TakeCmd      `parser:"| @@"`
	Drop      *DropCmd      `parser:"| @@"`
	Use       *UseCmd       `parser:"| @@"`
	Equip     *EquipCmd     `parser:"| @@"`
	Unequip   *UnequipCmd   `parser:"| @@"`
	Open      *OpenCmd      `parser:"| @@"`
	Attack    *AttackCmd    `parser:"| @@"`
	Flee      *FleeCmd      `parser:"| @@"`
	Inventory *InventoryCmd `parser:"| @@"`
	Stats     *StatsCmd     `parser:"| @@"`
	Map       *MapCmd       `parser:"| @@"`
	Save      *SaveCmd      `parser:"| @@"`
	Load      *LoadCmd      `parser:"| @@"`
	Buy       *BuyCmd       `parser:"| @@"`
	Sell      *SellCmd      `parser:"| @@"`
	Shop      *ShopCmd      `parser:"| @@"`
	Drink     *DrinkCmd     `parser:"| @@"`
	Gamble    *GambleCmd    `parser:"| @@"`
	Help      *HelpCmd      `parser:"| @@"`
	Quit      *QuitCmd      `parser:"| @@"`
	Dir       *DirCmd       `parser:"| @@ )"`
}

// MoveCmd is "move <direction>" or "go <direction>".
type MoveCmd struct {
	Keyword   string `parser:"@(\"move\"|\"go\"|\"walk\")"`
	Direction string `parser:"@(\"north\"|\"south\"|\"east\"|\"west\"|\"up\"|\"down\")"`
}

// DirCmd is a bare direction, shorthand for move.
type DirCmd struct {
	Direction string `parser:"@(\"north\"|\"south\"|\"east\"|\"west\"|\"up\"|\"down\")"`
}

// LookCmd is "look" with an optional target.
type LookCmd struct {
	Keyword string `parser:"@(\"look\"|\"examine\")"`
	Target  string `parser:"@Ident?"`
}

// TakeCmd is "take <item>" or "take all".
type TakeCmd struct {
	Keyword string `parser:"@(\"take\"|\"get\"|\"grab\")"`
	Target  string `parser:"@Ident"`
}

type DropCmd struct {
	Keyword string `parser:"@\"drop\""`
	Target  string `parser:"@Ident"`
}

type UseCmd struct {
	Keyword string `parser:"@\"use\""`
	Target  string `parser:"@Ident"`
}

type EquipCmd struct {
	Keyword string `parser:"@(\"equip\"|\"wield\"|\"wear\")"`
	Target  string `parser:"@Ident"`
}

type UnequipCmd struct {
	Keyword string `parser:"@(\"unequip\"|\"remove\")"`
	Slot    string `parser:"@(\"weapon\"|\"armor\")"`
}

type OpenCmd struct {
	Keyword string `parser:"@\"open\""`
	Target  string `parser:"@Ident?"`
}

type AttackCmd struct {
	Keyword string `parser:"@(\"attack\"|\"fight\"|\"hit\")"`
	Target  string `parser:"@Ident?"`
}

type FleeCmd struct {
	Keyword string `parser:"@(\"flee\"|\"run\"|\"escape\")"`
}

type InventoryCmd struct {
	Keyword string `parser:"@(\"inventory\"|\"inv\"|\"i\")"`
}

type StatsCmd struct {
	Keyword string `parser:"@(\"stats\"|\"status\")"`
}

type MapCmd struct {
	Keyword string `parser:"@\"map\""`
}

type SaveCmd struct {
	Keyword string `parser:"@\"save\""`
}

type LoadCmd struct {
	Keyword string `parser:"@\"load\""`
}

type BuyCmd struct {
	Keyword string `parser:"@\"buy\""`
	Target  string `parser:"@Ident"`
}

type SellCmd struct {
	Keyword string `parser:"@\"sell\""`
	Target  string `parser:"@Ident"`
}

type ShopCmd struct {
	Keyword string `parser:"@(\"shop\"|\"wares\"|\"browse\")"`
}

type DrinkCmd struct {
	Keyword string `parser:"@\"drink\""`
}

// GambleCmd is "gamble <game> <bet> [choice]"; choice applies to highlow.
type GambleCmd struct {
	Keyword string `parser:"@(\"gamble\"|\"bet\"|\"play\")"`
	Game    string `parser:"@(\"highlow\"|\"skulls\"|\"glory\")"`
	Bet     int    `parser:"@Int"`
	Choice  string `parser:"@(\"high\"|\"low\"|\"seven\")?"`
}

type HelpCmd struct {
	Keyword string `parser:"@(\"help\"|\"commands\")"`
}

type QuitCmd struct {
	Keyword string `parser:"@(\"quit\"|\"exit\")"`
}

// Action converts a parsed command into the engine action it names.
// Help and Quit have no engine action; callers check those fields first.
func (c *Command) Action() (engine.Action, error) {
	switch {
	case c.Move != nil:
		return engine.Action{Verb: engine.VerbMove, Direction: c.Move.Direction}, nil
	case c.Dir != nil:
		return engine.Action{Verb: engine.VerbMove, Direction: c.Dir.Direction}, nil
	case c.Look != nil:
		return engine.Action{Verb: engine.VerbLook, Target: c.Look.Target}, nil
	case c.Take != nil:
		if c.Take.Target == "all" {
			return engine.Action{Verb: engine.VerbTakeAll}, nil
		}
		return engine.Action{Verb: engine.VerbTake, Target: c.Take.Target}, nil
	case c.Drop != nil:
		return engine.Action{Verb: engine.VerbDrop, Target: c.Drop.Target}, nil
	case c.Use != nil:
		return engine.Action{Verb: engine.VerbUse, Target: c.Use.Target}, nil
	case c.Equip != nil:
		return engine.Action{Verb: engine.VerbEquip, Target: c.Equip.Target}, nil
	case c.Unequip != nil:
		return engine.Action{Verb: engine.VerbUnequip, Target: c.Unequip.Slot}, nil
	case c.Open != nil:
		return engine.Action{Verb: engine.VerbOpen, Target: c.Open.Target}, nil
	case c.Attack != nil:
		return engine.Action{Verb: engine.VerbAttack, Target: c.Attack.Target}, nil
	case c.Flee != nil:
		return engine.Action{Verb: engine.VerbFlee}, nil
	case c.Inventory != nil:
		return engine.Action{Verb: engine.VerbInventory}, nil
	case c.Stats != nil:
		return engine.Action{Verb: engine.VerbStats}, nil
	case c.Map != nil:
		return engine.Action{Verb: engine.VerbMap}, nil
	case c.Save != nil:
		return engine.Action{Verb: engine.VerbSave}, nil
	case c.Load != nil:
		return engine.Action{Verb: engine.VerbLoad}, nil
	case c.Buy != nil:
		return engine.Action{Verb: engine.VerbBuy, Target: c.Buy.Target}, nil
	case c.Sell != nil:
		return engine.Action{Verb: engine.VerbSell, Target: c.Sell.Target}, nil
	case c.Shop != nil:
		return engine.Action{Verb: engine.VerbShop}, nil
	case c.Drink != nil:
		return engine.Action{Verb: engine.VerbDrink}, nil
	case c.Gamble != nil:
		return engine.Action{
			Verb:   engine.VerbGamble,
			Game:   c.Gamble.Game,
			Bet:    c.Gamble.Bet,
			Choice: c.Gamble.Choice,
		}, nil
	default:
		return engine.Action{}, fmt.Errorf("command has no engine action")
	}
}
