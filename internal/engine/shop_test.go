package engine

import (
	"errors"
	"testing"

	"github.com/kariannharris-star/dungeon-crawlr/internal/catalog"
)

func marketEngine(t *testing.T, rng Source) *Engine {
	t.Helper()
	eng := newTestEngine(t, rng)
	if _, err := eng.Do(Action{Verb: VerbMove, Direction: "west"}); err != nil {
		t.Fatal(err)
	}
	return eng
}

func TestBuyAndSell(t *testing.T) {
	eng := marketEngine(t, &ScriptedSource{})
	eng.Player().Gold = 20

	out, err := eng.Do(Action{Verb: VerbBuy, Target: "tonic"})
	if err != nil {
		t.Fatal(err)
	}
	if out.GoldDelta != -8 || eng.Player().Gold != 12 {
		t.Errorf("gold delta %d balance %d, want -8 and 12", out.GoldDelta, eng.Player().Gold)
	}
	if eng.Player().Count("tonic") != 1 {
		t.Error("purchase not in the pack")
	}

	// Sells at half value, floored.
	out, err = eng.Do(Action{Verb: VerbSell, Target: "tonic"})
	if err != nil {
		t.Fatal(err)
	}
	if out.GoldDelta != 4 || eng.Player().Gold != 16 {
		t.Errorf("gold delta %d balance %d, want +4 and 16", out.GoldDelta, eng.Player().Gold)
	}
}

func TestBuyCannotAfford(t *testing.T) {
	eng := marketEngine(t, &ScriptedSource{})
	eng.Player().Gold = 3

	_, err := eng.Do(Action{Verb: VerbBuy, Target: "tonic"})
	if !errors.Is(err, ErrCannotAfford) {
		t.Errorf("got %v, want ErrCannotAfford", err)
	}
	if eng.Player().Gold != 3 {
		t.Error("gold changed on refused purchase")
	}
}

func TestSellEquippedRefused(t *testing.T) {
	eng := marketEngine(t, &ScriptedSource{})
	eng.Player().EquippedWeapon = "dagger"

	_, err := eng.Do(Action{Verb: VerbSell, Target: "dagger"})
	if !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("got %v, want ErrInvalidTarget", err)
	}
}

func TestSellQuestItemRefused(t *testing.T) {
	eng := marketEngine(t, &ScriptedSource{})
	if err := eng.Player().AddItem("idol", 1); err != nil {
		t.Fatal(err)
	}
	_, err := eng.Do(Action{Verb: VerbSell, Target: "idol"})
	if !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("got %v, want ErrInvalidTarget", err)
	}
}

func TestShopActionsOutsideShop(t *testing.T) {
	eng := newTestEngine(t, &ScriptedSource{})
	for _, a := range []Action{
		{Verb: VerbBuy, Target: "tonic"},
		{Verb: VerbSell, Target: "tonic"},
		{Verb: VerbShop},
	} {
		if _, err := eng.Do(a); !errors.Is(err, ErrNotAShop) {
			t.Errorf("%s outside shop: got %v, want ErrNotAShop", a.Verb, err)
		}
	}
}

func TestFountainOneDraughtPerSession(t *testing.T) {
	// effects list is [heal buff_attack gold curse]; Intn 1 -> buff.
	eng := newTestEngine(t, &ScriptedSource{Ints: []int{1}})

	out, err := eng.Do(Action{Verb: VerbDrink})
	if err != nil {
		t.Fatal(err)
	}
	if eng.Player().Attack != startAttack+fountainBuff {
		t.Errorf("attack %d, want %d", eng.Player().Attack, startAttack+fountainBuff)
	}
	if out.Text == "" {
		t.Error("no narrative for the drink")
	}

	_, err = eng.Do(Action{Verb: VerbDrink})
	if !errors.Is(err, ErrFountainDry) {
		t.Errorf("second drink: got %v, want ErrFountainDry", err)
	}
}

func TestFountainCurseAndCure(t *testing.T) {
	// Intn 3 -> curse.
	eng := newTestEngine(t, &ScriptedSource{Ints: []int{3}})

	if _, err := eng.Do(Action{Verb: VerbDrink}); err != nil {
		t.Fatal(err)
	}
	p := eng.Player()
	if !p.Cursed || p.Attack != startAttack-curseAttackPenalty {
		t.Fatalf("cursed=%v attack=%d after curse", p.Cursed, p.Attack)
	}

	eng.Catalog().Items["antidote"] = &catalog.Item{
		ID: "antidote", Name: "Antidote", Type: catalog.ItemConsumable,
		Effect: catalog.EffectCure, Value: 6,
	}
	if err := p.AddItem("antidote", 1); err != nil {
		t.Fatal(err)
	}
	if _, err := eng.Do(Action{Verb: VerbUse, Target: "antidote"}); err != nil {
		t.Fatal(err)
	}
	if p.Cursed || p.Attack != startAttack {
		t.Errorf("cursed=%v attack=%d after cure", p.Cursed, p.Attack)
	}
}

func TestFountainRestoreAndDefenseBuff(t *testing.T) {
	eng := newTestEngine(t, &ScriptedSource{Ints: []int{0, 1}})
	room := eng.CurrentRoom()
	room.Def.FountainEffects = []string{"restore", "buff_defense"}

	eng.Player().HP = 5
	if _, err := eng.Do(Action{Verb: VerbDrink}); err != nil {
		t.Fatal(err)
	}
	if eng.Player().HP != eng.Player().MaxHP {
		t.Errorf("hp %d after restore, want full %d", eng.Player().HP, eng.Player().MaxHP)
	}

	room.FountainDry = false
	if _, err := eng.Do(Action{Verb: VerbDrink}); err != nil {
		t.Fatal(err)
	}
	if eng.Player().Defense != startDefense+fountainDefenseBuff {
		t.Errorf("defense %d, want %d", eng.Player().Defense, startDefense+fountainDefenseBuff)
	}
}

func TestFountainDamageNeverKills(t *testing.T) {
	eng := newTestEngine(t, &ScriptedSource{Ints: []int{0, 0}})
	room := eng.CurrentRoom()
	room.Def.FountainEffects = []string{"damage"}

	out, err := eng.Do(Action{Verb: VerbDrink})
	if err != nil {
		t.Fatal(err)
	}
	if out.DamageTaken != fountainDamage {
		t.Errorf("took %d, want the full %d", out.DamageTaken, fountainDamage)
	}
	if eng.Player().HP != startHP-fountainDamage {
		t.Errorf("hp %d, want %d", eng.Player().HP, startHP-fountainDamage)
	}

	// Below the damage amount the water stops at the last hit point.
	room.FountainDry = false
	eng.Player().HP = 12
	out, err = eng.Do(Action{Verb: VerbDrink})
	if err != nil {
		t.Fatal(err)
	}
	if eng.Player().HP != 1 {
		t.Errorf("hp %d, want the 1-hp floor", eng.Player().HP)
	}
	if out.DamageTaken != 11 {
		t.Errorf("took %d, want 11", out.DamageTaken)
	}
	if eng.Terminal() != TerminalNone {
		t.Error("fountain damage ended the session")
	}
}

func TestFountainLevelGrant(t *testing.T) {
	eng := newTestEngine(t, &ScriptedSource{Ints: []int{0}})
	eng.CurrentRoom().Def.FountainEffects = []string{"level_up"}
	eng.Player().XP = 20

	out, err := eng.Do(Action{Verb: VerbDrink})
	if err != nil {
		t.Fatal(err)
	}
	p := eng.Player()
	if p.Level != 2 || p.XP != 0 || out.LevelsGained != 1 {
		t.Errorf("level %d xp %d gained %d, want 2 0 1", p.Level, p.XP, out.LevelsGained)
	}
	if p.Attack != startAttack+levelAttackGain {
		t.Errorf("attack %d, want the level-up growth applied", p.Attack)
	}
}

func TestDrinkWithoutFountain(t *testing.T) {
	eng := marketEngine(t, &ScriptedSource{})
	_, err := eng.Do(Action{Verb: VerbDrink})
	if !errors.Is(err, ErrNoFountain) {
		t.Errorf("got %v, want ErrNoFountain", err)
	}
}
