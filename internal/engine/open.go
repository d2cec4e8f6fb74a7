package engine

import (
	"fmt"
	"strings"

	"github.com/kariannharris-star/dungeon-crawlr/internal/catalog"
)

// openChest runs the chest state machine for the current room's chest.
// Opening is one-shot: trap damage, mimic reveal, and the loot roll all
// resolve on the first successful open, and the chest stays opened
// forever after. Loot goes to the pack; overflow spills onto the floor.
func (e *Engine) openChest(target string) (Outcome, error) {
	if target != "" && target != "chest" {
		return Outcome{}, fmt.Errorf("%w: you can't open %q", ErrInvalidTarget, target)
	}
	room := e.world.CurrentRoom()
	chest := room.Chest
	if chest == nil {
		return Outcome{}, fmt.Errorf("%w: there is no chest here", ErrItemNotFound)
	}
	if chest.Opened {
		return Outcome{}, fmt.Errorf("%w: the chest is already open and empty", ErrAlreadyOpened)
	}

	out := Outcome{Verb: VerbOpen}

	switch chest.Def.State {
	case catalog.ChestLocked:
		if !e.player.Has(chest.Def.KeyRequired) {
			return Outcome{}, fmt.Errorf("%w: the chest is locked; you need %s", ErrLockedExit, e.cat.ItemName(chest.Def.KeyRequired))
		}
		out.Text = fmt.Sprintf("You unlock the chest with %s.\n", e.cat.ItemName(chest.Def.KeyRequired))

	case catalog.ChestTrapped:
		dmg := chest.Def.TrapDamage
		e.player.Damage(dmg)
		out.DamageTaken = dmg
		out.Text = fmt.Sprintf("A needle trap springs! You take %d damage.\n", dmg)
		if !e.player.IsAlive() {
			chest.Opened = true
			e.terminal = TerminalDefeated
			out.Terminal = TerminalDefeated
			out.Text += "The trap proves fatal. You have been slain!"
			return out, nil
		}

	case catalog.ChestMimic:
		// The chest was never a chest. It opens only when the mimic dies.
		// A fled-from mimic is still the same wounded creature, not a
		// fresh spawn.
		if room.Enemy == nil {
			room.Enemy = NewEnemy(e.cat.Enemy(chest.Def.MimicEnemy))
			out.Text = fmt.Sprintf("The chest sprouts teeth! The %s attacks!", room.Enemy.Name)
		} else if room.Enemy.IsAlive() {
			out.Text = fmt.Sprintf("The %s snaps at you again!", room.Enemy.Name)
		}
		if room.Enemy.IsAlive() {
			e.engageIfHostile(room)
			out.InCombat = true
			out.EnemyID = room.Enemy.ID
			return out, nil
		}
		// A dead mimic over an unopened chest only happens through a
		// hand-edited save; let its gullet open like an empty chest.
		out.Text = "The dead mimic's maw sags open.\n"
	}

	chest.Opened = true
	out.Text += e.awardLoot(&out, chest)
	e.checkWin(&out)
	return out, nil
}

// awardLoot resolves a chest's fixed loot plus one tier roll, moving
// items into the pack and describing what happened. Items that do not
// fit land on the floor instead of vanishing.
func (e *Engine) awardLoot(out *Outcome, chest *Chest) string {
	room := e.world.CurrentRoom()

	var gained, spilled []string
	award := func(itemID string) {
		if err := e.player.AddItem(itemID, 1); err != nil {
			room.AddItem(itemID)
			spilled = append(spilled, e.cat.ItemName(itemID))
			return
		}
		out.ItemsGained = append(out.ItemsGained, itemID)
		gained = append(gained, e.cat.ItemName(itemID))
	}

	for _, id := range chest.Def.FixedLoot {
		award(id)
	}
	if chest.Def.LootTier != "" {
		itemID, gold, ok := RollTier(chest.Def.LootTier, e.rng)
		switch {
		case !ok:
			// empty roll
		case itemID != "":
			award(itemID)
		default:
			e.player.Gold += gold
			out.GoldDelta += gold
		}
	}

	var b strings.Builder
	b.WriteString("Inside the chest")
	switch {
	case len(gained) == 0 && len(spilled) == 0 && out.GoldDelta == 0:
		b.WriteString(" you find nothing but dust.")
	default:
		b.WriteString(" you find:")
		for _, n := range gained {
			fmt.Fprintf(&b, " %s.", n)
		}
		if out.GoldDelta > 0 {
			fmt.Fprintf(&b, " %d gold.", out.GoldDelta)
		}
	}
	if len(spilled) > 0 {
		fmt.Fprintf(&b, " Your pack is full; %s falls to the floor.", strings.Join(spilled, ", "))
	}
	return b.String()
}
