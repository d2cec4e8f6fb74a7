package engine

import (
	"fmt"
	"strings"

	"github.com/kariannharris-star/dungeon-crawlr/internal/catalog"
)

// CombatState tracks where the combat state machine sits. Only
// CombatPlayerTurn accepts combat actions; the other states are resting
// points the machine settles into between encounters.
type CombatState int

const (
	NotEngaged CombatState = iota
	CombatPlayerTurn
	CombatVictory
	CombatDefeat
	CombatFled
)

const (
	critChance     = 0.10
	critMultiplier = 1.5
	fleeChance     = 0.50
)

// Combat is one engagement between the player and a single enemy.
// MimicChest, when set, is the chest that sprang this enemy; it opens
// on victory.
type Combat struct {
	Enemy      *Enemy
	State      CombatState
	MimicChest *Chest
}

// attack resolves one full combat round: player strike, then the enemy's
// counter if it survives. Critical hits multiply the raw damage before
// the minimum-damage floor applies, so a crit can punch through heavy
// defense that would otherwise reduce the hit to a scratch. An explicit
// attack after a successful flee re-engages the room's living enemy.
func (e *Engine) attack() (Outcome, error) {
	if !e.InCombat() && !e.engageIfHostile(e.world.CurrentRoom()) {
		return Outcome{}, fmt.Errorf("%w: there is nothing to fight here", ErrNotInCombat)
	}
	enemy := e.combat.Enemy

	dmg := e.player.Attack + e.weaponBonus() - enemy.Defense
	crit := e.rng.Float64() < critChance
	if crit {
		dmg = int(float64(dmg) * critMultiplier)
	}
	if dmg < 1 {
		dmg = 1
	}
	enemy.Damage(dmg)

	out := Outcome{
		Verb:        VerbAttack,
		EnemyID:     enemy.ID,
		DamageDealt: dmg,
		Critical:    crit,
	}
	if crit {
		out.Text = fmt.Sprintf("Critical hit! You strike the %s for %d damage.", enemy.Name, dmg)
	} else {
		out.Text = fmt.Sprintf("You strike the %s for %d damage.", enemy.Name, dmg)
	}

	if !enemy.IsAlive() {
		e.resolveVictory(&out)
		return out, nil
	}

	e.enemyTurn(&out)
	return out, nil
}

// flee attempts an escape. Failure forfeits the round: the enemy gets a
// free strike and combat continues.
func (e *Engine) flee() (Outcome, error) {
	if !e.InCombat() {
		return Outcome{}, fmt.Errorf("%w: there is nothing to flee from", ErrNotInCombat)
	}
	enemy := e.combat.Enemy

	out := Outcome{Verb: VerbFlee, EnemyID: enemy.ID}
	if e.rng.Float64() < fleeChance {
		e.combat.State = CombatFled
		e.combat = nil
		out.Fled = true
		out.Text = fmt.Sprintf("You slip away from the %s.", enemy.Name)
		return out, nil
	}

	out.Text = fmt.Sprintf("The %s blocks your escape!", enemy.Name)
	e.enemyTurn(&out)
	return out, nil
}

// enemyTurn applies the enemy's counterattack and handles player death.
func (e *Engine) enemyTurn(out *Outcome) {
	enemy := e.combat.Enemy
	dmg := enemy.Attack - (e.player.Defense + e.armorBonus())
	if dmg < 1 {
		dmg = 1
	}
	e.player.Damage(dmg)
	out.DamageTaken += dmg
	out.InCombat = true
	out.Text += fmt.Sprintf("\nThe %s hits you for %d damage.", enemy.Name, dmg)

	if !e.player.IsAlive() {
		e.combat.State = CombatDefeat
		e.combat = nil
		e.terminal = TerminalDefeated
		out.Terminal = TerminalDefeated
		out.InCombat = false
		out.Text += fmt.Sprintf("\nThe %s strikes you down. You have been slain!", enemy.Name)
	}
}

// resolveVictory pays out the encounter: XP and gold rewards, the
// level-up cascade, and the drop table. Drops land in the room, not the
// pack; the player picks them up on their own terms.
func (e *Engine) resolveVictory(out *Outcome) {
	enemy := e.combat.Enemy
	room := e.world.CurrentRoom()

	out.Text += fmt.Sprintf("\nThe %s is defeated!", enemy.Name)

	e.player.Gold += enemy.GoldReward
	out.GoldDelta += enemy.GoldReward
	out.XPGained = enemy.XPReward
	levels := e.player.GainXP(enemy.XPReward)
	out.LevelsGained = levels
	out.Text += fmt.Sprintf("\nYou gain %d XP and %d gold.", enemy.XPReward, enemy.GoldReward)
	if levels > 0 {
		out.Text += fmt.Sprintf("\nYou reach level %d! You feel stronger.", e.player.Level)
	}

	drops := enemy.RollDrops(e.rng)
	if enemy.Boss {
		drops = e.guaranteeQuestDrops(enemy, drops)
	}
	for _, id := range drops {
		room.AddItem(id)
	}
	if len(drops) > 0 {
		names := make([]string, len(drops))
		for i, id := range drops {
			names[i] = e.cat.ItemName(id)
		}
		out.Text += fmt.Sprintf("\nThe %s dropped: %s.", enemy.Name, strings.Join(names, ", "))
	}

	if e.combat.MimicChest != nil {
		e.combat.MimicChest.Opened = true
	}

	e.combat.State = CombatVictory
	e.combat = nil
	out.InCombat = false
	e.checkWin(out)
}

// guaranteeQuestDrops forces a boss's victory-required quest drops past
// the dice: whatever the table rolled, the items the run cannot be won
// without always land in the room.
func (e *Engine) guaranteeQuestDrops(enemy *Enemy, drops []string) []string {
	for _, entry := range enemy.DropTable {
		it := e.cat.Item(entry.ItemID)
		if it == nil || it.Type != catalog.ItemQuest || !it.Required {
			continue
		}
		dropped := false
		for _, id := range drops {
			if id == entry.ItemID {
				dropped = true
				break
			}
		}
		if !dropped {
			drops = append(drops, entry.ItemID)
		}
	}
	return drops
}

func (e *Engine) weaponBonus() int {
	if e.player.EquippedWeapon == "" {
		return 0
	}
	if it := e.cat.Item(e.player.EquippedWeapon); it != nil {
		return it.AttackBonus
	}
	return 0
}

func (e *Engine) armorBonus() int {
	if e.player.EquippedArmor == "" {
		return 0
	}
	if it := e.cat.Item(e.player.EquippedArmor); it != nil {
		return it.DefenseBonus
	}
	return 0
}
