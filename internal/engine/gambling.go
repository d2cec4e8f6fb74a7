package engine

import (
	"fmt"
)

// Tavern dice games. Payouts are expressed as the total returned on a
// winning stake; the net change to the gold counter is payout minus bet.

func (e *Engine) d6() int  { return e.rng.Intn(6) + 1 }
func (e *Engine) d20() int { return e.rng.Intn(20) + 1 }

// gamble plays one round of the named game for bet gold.
func (e *Engine) gamble(game string, bet int, choice string) (Outcome, error) {
	room := e.world.CurrentRoom()
	if !room.Def.IsTavern {
		return Outcome{}, fmt.Errorf("%w: no one here is running a game", ErrNotATavern)
	}
	if bet < 1 {
		return Outcome{}, fmt.Errorf("%w: the house takes bets of 1 gold or more", ErrInvalidBet)
	}
	if e.player.Gold < bet {
		return Outcome{}, fmt.Errorf("%w: you have %d gold, not %d", ErrCannotAfford, e.player.Gold, bet)
	}

	switch game {
	case "highlow":
		return e.gambleHighLow(bet, choice)
	case "skulls":
		return e.gambleSkulls(bet)
	case "glory":
		return e.gambleGlory(bet)
	default:
		return Outcome{}, fmt.Errorf("%w: the house doesn't know %q", ErrInvalidBet, game)
	}
}

// gambleHighLow rolls 2d6 against a called band: low is 2-6, high is
// 8-12, and calling seven exactly pays 4 to 1.
func (e *Engine) gambleHighLow(bet int, choice string) (Outcome, error) {
	switch choice {
	case "high", "low", "seven":
	default:
		return Outcome{}, fmt.Errorf("%w: call high, low, or seven", ErrInvalidBet)
	}

	a, b := e.d6(), e.d6()
	total := a + b

	var payout int
	switch {
	case choice == "seven" && total == 7:
		payout = bet * 4
	case choice == "low" && total < 7:
		payout = bet * 2
	case choice == "high" && total > 7:
		payout = bet * 2
	}

	net := payout - bet
	e.player.Gold += net

	out := Outcome{Verb: VerbGamble, GoldDelta: net}
	out.Text = fmt.Sprintf("The dice come up %d and %d: %d.", a, b, total)
	if net > 0 {
		out.Text += fmt.Sprintf(" You called %s and win %d gold!", choice, net)
	} else {
		out.Text += fmt.Sprintf(" You called %s and lose your %d gold.", choice, bet)
	}
	return out, nil
}

// gambleSkulls rolls 3d6: a pair returns the stake and half again
// (floored), three of a kind pays 5 to 1, and triple sixes pay 10 to 1.
func (e *Engine) gambleSkulls(bet int) (Outcome, error) {
	a, b, c := e.d6(), e.d6(), e.d6()

	var payout int
	var verdict string
	switch {
	case a == b && b == c && a == 6:
		payout = bet * 10
		verdict = "Triple skulls!"
	case a == b && b == c:
		payout = bet * 5
		verdict = "Three of a kind!"
	case a == b || b == c || a == c:
		payout = bet * 3 / 2
		verdict = "A pair."
	default:
		verdict = "Nothing."
	}

	net := payout - bet
	e.player.Gold += net

	out := Outcome{Verb: VerbGamble, GoldDelta: net}
	out.Text = fmt.Sprintf("You roll %d, %d, %d. %s", a, b, c, verdict)
	if net > 0 {
		out.Text += fmt.Sprintf(" You win %d gold.", net)
	} else if net == 0 {
		out.Text += " You break even."
	} else {
		out.Text += fmt.Sprintf(" You lose %d gold.", -net)
	}
	return out, nil
}

// gambleGlory rolls a single d20 with the stakes tripled at both ends:
// a 1 loses three times the bet, 2-10 loses the bet, 11-19 wins the bet,
// and a 20 pays 3 to 1. Playing requires three times the bet on hand.
func (e *Engine) gambleGlory(bet int) (Outcome, error) {
	if e.player.Gold < bet*3 {
		return Outcome{}, fmt.Errorf("%w: death-or-glory needs %d gold on hand", ErrCannotAfford, bet*3)
	}

	roll := e.d20()
	var net int
	var verdict string
	switch {
	case roll == 1:
		net = -bet * 3
		verdict = "Death. The house takes triple."
	case roll <= 10:
		net = -bet
		verdict = "A grim roll."
	case roll <= 19:
		net = bet
		verdict = "A strong roll."
	default:
		net = bet * 3
		verdict = "Glory! The table erupts."
	}
	e.player.Gold += net

	out := Outcome{Verb: VerbGamble, GoldDelta: net}
	out.Text = fmt.Sprintf("The d20 lands on %d. %s", roll, verdict)
	if net > 0 {
		out.Text += fmt.Sprintf(" You win %d gold.", net)
	} else {
		out.Text += fmt.Sprintf(" You lose %d gold.", -net)
	}
	return out, nil
}
