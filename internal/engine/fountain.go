package engine

import "fmt"

const (
	fountainHealMin     = 30
	fountainHealMax     = 60
	fountainGoldMin     = 10
	fountainGoldMax     = 40
	fountainBuff        = 3
	fountainDefenseBuff = 2
	fountainDamage      = 20

	curseAttackPenalty = 2
)

// drink takes one draught from the room's fountain. Each fountain grants
// exactly one effect per session, chosen uniformly from its authored
// effect list, then runs dry.
func (e *Engine) drink() (Outcome, error) {
	room := e.world.CurrentRoom()
	if !room.Def.HasFountain {
		return Outcome{}, fmt.Errorf("%w: there is nothing here to drink from", ErrNoFountain)
	}
	if room.FountainDry {
		return Outcome{}, fmt.Errorf("%w: the fountain has run dry", ErrFountainDry)
	}
	effects := room.Def.FountainEffects
	if len(effects) == 0 {
		return Outcome{}, fmt.Errorf("%w: the water is stale and inert", ErrFountainDry)
	}
	room.FountainDry = true

	out := Outcome{Verb: VerbDrink}
	switch effect := effects[e.rng.Intn(len(effects))]; effect {
	case "heal":
		amount := fountainHealMin + e.rng.Intn(fountainHealMax-fountainHealMin+1)
		healed := e.player.Heal(amount)
		out.Text = fmt.Sprintf("The water glows warm. You recover %d HP (%d/%d).", healed, e.player.HP, e.player.MaxHP)
	case "restore":
		healed := e.player.Heal(e.player.MaxHP)
		out.Text = fmt.Sprintf("Light pours through your veins. Every wound closes (+%d HP).", healed)
	case "damage":
		// Burns but never kills: the water stops short of the last hit point.
		dmg := fountainDamage
		if dmg >= e.player.HP {
			dmg = e.player.HP - 1
		}
		e.player.Damage(dmg)
		out.DamageTaken = dmg
		out.Text = fmt.Sprintf("The water burns like acid! You take %d damage and barely stay standing.", dmg)
	case "buff_attack":
		e.player.Attack += fountainBuff
		out.Text = fmt.Sprintf("Strength floods your arms. Attack rises by %d.", fountainBuff)
	case "buff_defense":
		e.player.Defense += fountainDefenseBuff
		out.Text = fmt.Sprintf("Your skin hardens like stone. Defense rises by %d.", fountainDefenseBuff)
	case "gold":
		amount := fountainGoldMin + e.rng.Intn(fountainGoldMax-fountainGoldMin+1)
		e.player.Gold += amount
		out.GoldDelta = amount
		out.Text = fmt.Sprintf("Coins glitter at the bottom. You fish out %d gold.", amount)
	case "curse":
		if !e.player.Cursed {
			e.player.Cursed = true
			e.player.Attack -= curseAttackPenalty
		}
		out.Text = "The water turns black in your mouth. A curse saps your strength."
	case "level_up":
		// Grant exactly the XP that remains to the next threshold.
		e.player.GainXP(e.player.XPToNext - e.player.XP)
		out.LevelsGained = 1
		out.Text = fmt.Sprintf("The fountain grants you wisdom. You reach level %d!", e.player.Level)
	}
	return out, nil
}
