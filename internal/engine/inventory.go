package engine

import (
	"fmt"

	"github.com/kariannharris-star/dungeon-crawlr/internal/catalog"
)

// use consumes one unit of a consumable. Healing is capped at MaxHP.
// During combat a damage consumable hits the engaged enemy and the use
// still costs the enemy's turn, so chugging a potion is never free.
func (e *Engine) use(itemID string) (Outcome, error) {
	if e.player.Count(itemID) == 0 {
		return Outcome{}, fmt.Errorf("%w: you don't carry %q", ErrItemNotFound, itemID)
	}
	it := e.cat.Item(itemID)
	if it == nil || it.Type != catalog.ItemConsumable {
		return Outcome{}, fmt.Errorf("%w: %s is not something you can use", ErrInvalidTarget, e.cat.ItemName(itemID))
	}

	out := Outcome{Verb: VerbUse, ItemsLost: []string{itemID}}

	switch it.Effect {
	case catalog.EffectHeal:
		healed := e.player.Heal(it.EffectAmount)
		out.Text = fmt.Sprintf("You use %s and recover %d HP (%d/%d).", it.Name, healed, e.player.HP, e.player.MaxHP)
	case catalog.EffectCure:
		if e.player.Cursed {
			e.player.Cursed = false
			e.player.Attack += curseAttackPenalty
			out.Text = fmt.Sprintf("You use %s. The curse lifts and your strength returns.", it.Name)
		} else {
			out.Text = fmt.Sprintf("You use %s. Nothing ailed you, but it tasted awful.", it.Name)
		}
	case catalog.EffectDamage:
		if !e.InCombat() {
			return Outcome{}, fmt.Errorf("%w: there is nothing to use %s on", ErrNotInCombat, it.Name)
		}
		enemy := e.combat.Enemy
		enemy.Damage(it.EffectAmount)
		out.DamageDealt = it.EffectAmount
		out.EnemyID = enemy.ID
		out.Text = fmt.Sprintf("You hurl %s at the %s for %d damage.", it.Name, enemy.Name, it.EffectAmount)
	default:
		return Outcome{}, fmt.Errorf("%w: %s has no effect", ErrInvalidTarget, it.Name)
	}

	if err := e.player.RemoveItem(itemID, 1); err != nil {
		return Outcome{}, err
	}

	if e.InCombat() {
		if !e.combat.Enemy.IsAlive() {
			e.resolveVictory(&out)
		} else {
			e.enemyTurn(&out)
		}
	}
	return out, nil
}

// equip moves a weapon or armor from the pack into its slot. A displaced
// item returns to the pack; when the pack cannot hold it the swap is
// rolled back and the action fails cleanly.
func (e *Engine) equip(itemID string) (Outcome, error) {
	if e.player.Count(itemID) == 0 {
		return Outcome{}, fmt.Errorf("%w: you don't carry %q", ErrItemNotFound, itemID)
	}
	it := e.cat.Item(itemID)
	if it == nil || (it.Type != catalog.ItemWeapon && it.Type != catalog.ItemArmor) {
		return Outcome{}, fmt.Errorf("%w: you can't equip %s", ErrInvalidTarget, e.cat.ItemName(itemID))
	}

	slot := &e.player.EquippedWeapon
	if it.Type == catalog.ItemArmor {
		slot = &e.player.EquippedArmor
	}
	displaced := *slot

	if err := e.player.RemoveItem(itemID, 1); err != nil {
		return Outcome{}, err
	}
	if displaced != "" {
		if err := e.player.AddItem(displaced, 1); err != nil {
			// Undo the removal so the failed swap leaves no trace.
			_ = e.player.AddItem(itemID, 1)
			return Outcome{}, fmt.Errorf("%w: no room to stow %s", ErrInventoryFull, e.cat.ItemName(displaced))
		}
	}
	*slot = itemID

	out := Outcome{Verb: VerbEquip, Text: fmt.Sprintf("You equip %s.", it.Name)}
	if displaced != "" {
		out.Text += fmt.Sprintf(" You stow %s.", e.cat.ItemName(displaced))
	}
	return out, nil
}

// unequip clears the named slot ("weapon" or "armor") back into the pack.
func (e *Engine) unequip(slot string) (Outcome, error) {
	var itemID *string
	switch slot {
	case "weapon":
		itemID = &e.player.EquippedWeapon
	case "armor":
		itemID = &e.player.EquippedArmor
	default:
		return Outcome{}, fmt.Errorf("%w: %q is not an equipment slot", ErrInvalidTarget, slot)
	}
	if *itemID == "" {
		return Outcome{}, fmt.Errorf("%w: nothing is equipped there", ErrItemNotFound)
	}
	if err := e.player.AddItem(*itemID, 1); err != nil {
		return Outcome{}, fmt.Errorf("%w: no room to stow %s", ErrInventoryFull, e.cat.ItemName(*itemID))
	}
	name := e.cat.ItemName(*itemID)
	*itemID = ""
	return Outcome{Verb: VerbUnequip, Text: fmt.Sprintf("You unequip %s.", name)}, nil
}
