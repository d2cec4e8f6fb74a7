package engine

import (
	"errors"
	"testing"

	"github.com/kariannharris-star/dungeon-crawlr/internal/catalog"
)

func enterArena(t *testing.T, eng *Engine) {
	t.Helper()
	if _, err := eng.Do(Action{Verb: VerbMove, Direction: "north"}); err != nil {
		t.Fatalf("enter arena: %v", err)
	}
	if !eng.InCombat() {
		t.Fatal("expected combat in the arena")
	}
}

func TestAttackRoundNumbers(t *testing.T) {
	// Base player (atk 10) vs goblin (def 1, atk 5) with no gear:
	// 9 out, 3 back per round.
	rng := &ScriptedSource{Floats: []float64{0.9}}
	eng := newTestEngine(t, rng)
	enterArena(t, eng)

	out, err := eng.Do(Action{Verb: VerbAttack})
	if err != nil {
		t.Fatalf("attack: %v", err)
	}
	if out.DamageDealt != 9 {
		t.Errorf("dealt %d, want 9", out.DamageDealt)
	}
	if out.DamageTaken != 3 {
		t.Errorf("took %d, want 3", out.DamageTaken)
	}
	if out.Critical {
		t.Error("0.9 roll reported as critical")
	}
	if !out.InCombat {
		t.Error("combat ended after one round")
	}
}

func TestCriticalMultipliesBeforeFloor(t *testing.T) {
	// Against heavy defense a non-crit is floored to 1, but the crit
	// multiplier applies to the raw difference first.
	cat := testCatalog(t)
	cat.Enemies["goblin"].Defense = 30
	eng, err := New(cat, "Tess", &ScriptedSource{Floats: []float64{0.9, 0.05}})
	if err != nil {
		t.Fatal(err)
	}
	enterArena(t, eng)

	out, err := eng.Do(Action{Verb: VerbAttack})
	if err != nil {
		t.Fatal(err)
	}
	if out.DamageDealt != 1 {
		t.Errorf("non-crit vs def 30: dealt %d, want floor of 1", out.DamageDealt)
	}

	// raw = 10-30 = -20, crit -> -30, floored to 1.
	out, err = eng.Do(Action{Verb: VerbAttack})
	if err != nil {
		t.Fatal(err)
	}
	if !out.Critical || out.DamageDealt != 1 {
		t.Errorf("crit vs def 30: crit=%v dealt %d, want crit floor of 1", out.Critical, out.DamageDealt)
	}
}

func TestCriticalDamage(t *testing.T) {
	// raw = 10-1 = 9, crit -> int(13.5) = 13.
	rng := &ScriptedSource{Floats: []float64{0.05}}
	eng := newTestEngine(t, rng)
	enterArena(t, eng)

	out, err := eng.Do(Action{Verb: VerbAttack})
	if err != nil {
		t.Fatal(err)
	}
	if !out.Critical || out.DamageDealt != 13 {
		t.Errorf("crit=%v dealt %d, want crit 13", out.Critical, out.DamageDealt)
	}
}

func TestVictoryPaysOutAndDropsToRoom(t *testing.T) {
	// Three non-crit rounds kill the goblin; the drop roll (0.1 < 0.3)
	// lands a tonic on the floor, not in the pack.
	rng := &ScriptedSource{Floats: []float64{0.9, 0.9, 0.9, 0.1}}
	eng := newTestEngine(t, rng)
	enterArena(t, eng)

	var out Outcome
	var err error
	for eng.InCombat() {
		out, err = eng.Do(Action{Verb: VerbAttack})
		if err != nil {
			t.Fatal(err)
		}
	}

	if out.XPGained != 15 || out.GoldDelta != 10 {
		t.Errorf("xp %d gold %d, want 15 and 10", out.XPGained, out.GoldDelta)
	}
	if eng.Player().Count("tonic") != 0 {
		t.Error("drop went straight into the pack")
	}
	if !eng.CurrentRoom().HasItem("tonic") {
		t.Error("drop missing from the room")
	}
	if eng.Terminal() != TerminalNone {
		t.Errorf("terminal %q after routine victory", eng.Terminal())
	}
}

func TestFleeSuccessAndFailure(t *testing.T) {
	// First flee fails (0.9 >= 0.5): free enemy strike, combat continues.
	// Second flee succeeds (0.1 < 0.5).
	rng := &ScriptedSource{Floats: []float64{0.9, 0.1}}
	eng := newTestEngine(t, rng)
	enterArena(t, eng)

	out, err := eng.Do(Action{Verb: VerbFlee})
	if err != nil {
		t.Fatal(err)
	}
	if out.Fled || out.DamageTaken != 3 {
		t.Errorf("failed flee: fled=%v took %d, want free strike of 3", out.Fled, out.DamageTaken)
	}
	if !eng.InCombat() {
		t.Error("combat ended on failed flee")
	}

	out, err = eng.Do(Action{Verb: VerbFlee})
	if err != nil {
		t.Fatal(err)
	}
	if !out.Fled || eng.InCombat() {
		t.Errorf("successful flee: fled=%v inCombat=%v", out.Fled, eng.InCombat())
	}

	// The enemy is still alive; re-entry re-engages.
	if _, err := eng.Do(Action{Verb: VerbMove, Direction: "south"}); err != nil {
		t.Fatal(err)
	}
	if _, err := eng.Do(Action{Verb: VerbMove, Direction: "north"}); err != nil {
		t.Fatal(err)
	}
	if !eng.InCombat() {
		t.Error("fled-from enemy did not re-engage on re-entry")
	}
}

func TestDefeatIsTerminalNotError(t *testing.T) {
	rng := &ScriptedSource{Floats: []float64{0.9, 0.9, 0.9, 0.9, 0.9, 0.9, 0.9}}
	eng := newTestEngine(t, rng)
	eng.Player().HP = 3
	enterArena(t, eng)

	out, err := eng.Do(Action{Verb: VerbAttack})
	if err != nil {
		t.Fatalf("losing round returned error: %v", err)
	}
	if out.Terminal != TerminalDefeated {
		t.Fatalf("terminal %q, want defeated", out.Terminal)
	}
	if eng.Terminal() != TerminalDefeated {
		t.Error("engine did not record the terminal state")
	}

	_, err = eng.Do(Action{Verb: VerbAttack})
	if !errors.Is(err, ErrSessionOver) {
		t.Errorf("post-defeat action: got %v, want ErrSessionOver", err)
	}
}

func TestDamageConsumableInCombat(t *testing.T) {
	// Bomb for 25 kills the goblin outright; the throw consumes the
	// item and victory resolves in the same outcome.
	rng := &ScriptedSource{Floats: []float64{0.9}}
	eng := newTestEngine(t, rng)
	if err := eng.Player().AddItem("bomb", 1); err != nil {
		t.Fatal(err)
	}
	enterArena(t, eng)

	out, err := eng.Do(Action{Verb: VerbUse, Target: "bomb"})
	if err != nil {
		t.Fatal(err)
	}
	if out.DamageDealt != 25 {
		t.Errorf("dealt %d, want 25", out.DamageDealt)
	}
	if eng.InCombat() {
		t.Error("combat survived a lethal bomb")
	}
	if eng.Player().Count("bomb") != 0 {
		t.Error("bomb not consumed")
	}
}

func TestDamageConsumableOutsideCombat(t *testing.T) {
	eng := newTestEngine(t, &ScriptedSource{})
	if err := eng.Player().AddItem("bomb", 1); err != nil {
		t.Fatal(err)
	}
	_, err := eng.Do(Action{Verb: VerbUse, Target: "bomb"})
	if !errors.Is(err, ErrNotInCombat) {
		t.Errorf("got %v, want ErrNotInCombat", err)
	}
	if eng.Player().Count("bomb") != 1 {
		t.Error("bomb consumed by a refused throw")
	}
}

func TestMimicChestFlow(t *testing.T) {
	// Opening the mimic chest spawns the mimic; killing it marks the
	// chest opened with no loot of its own.
	rng := &ScriptedSource{Floats: []float64{0.9, 0.9}}
	eng := newTestEngine(t, rng)

	if _, err := eng.Do(Action{Verb: VerbMove, Direction: "east"}); err != nil {
		t.Fatal(err)
	}
	out, err := eng.Do(Action{Verb: VerbOpen})
	if err != nil {
		t.Fatal(err)
	}
	if !out.InCombat || out.EnemyID != "mimic" {
		t.Fatalf("open mimic chest: inCombat=%v enemy=%q", out.InCombat, out.EnemyID)
	}
	if eng.CurrentRoom().Chest.Opened {
		t.Error("chest marked opened before the mimic died")
	}

	// Mimic: 10 hp, our 9-damage round kills on the second hit.
	for eng.InCombat() {
		if _, err := eng.Do(Action{Verb: VerbAttack}); err != nil {
			t.Fatal(err)
		}
	}
	if !eng.CurrentRoom().Chest.Opened {
		t.Error("chest not opened after the mimic died")
	}

	_, err = eng.Do(Action{Verb: VerbOpen})
	if !errors.Is(err, ErrAlreadyOpened) {
		t.Errorf("reopen: got %v, want ErrAlreadyOpened", err)
	}
}

func TestAttackReengagesAfterFlee(t *testing.T) {
	// Flee succeeds on 0.1; an explicit attack picks the fight back up.
	rng := &ScriptedSource{Floats: []float64{0.1, 0.9}}
	eng := newTestEngine(t, rng)
	enterArena(t, eng)

	out, err := eng.Do(Action{Verb: VerbFlee})
	if err != nil {
		t.Fatalf("flee: %v", err)
	}
	if !out.Fled || eng.InCombat() {
		t.Fatal("flee did not disengage")
	}

	out, err = eng.Do(Action{Verb: VerbAttack})
	if err != nil {
		t.Fatalf("attack after flee: %v", err)
	}
	if out.DamageDealt != 9 {
		t.Errorf("dealt %d, want 9", out.DamageDealt)
	}
	if !eng.InCombat() {
		t.Error("attack did not re-engage the goblin")
	}
	if eng.CombatEnemy().HP != 11 {
		t.Errorf("goblin at %d hp, want 11", eng.CombatEnemy().HP)
	}
}

func TestMimicChestOpensAfterFleeAndReturn(t *testing.T) {
	// Flee the mimic on 0.1, walk out and back, then kill it in two
	// non-crit rounds. The chest must still open on victory.
	rng := &ScriptedSource{Floats: []float64{0.1, 0.9, 0.9}}
	eng := newTestEngine(t, rng)

	if _, err := eng.Do(Action{Verb: VerbMove, Direction: "east"}); err != nil {
		t.Fatal(err)
	}
	if _, err := eng.Do(Action{Verb: VerbOpen}); err != nil {
		t.Fatal(err)
	}
	if _, err := eng.Do(Action{Verb: VerbFlee}); err != nil {
		t.Fatal(err)
	}
	if _, err := eng.Do(Action{Verb: VerbMove, Direction: "west"}); err != nil {
		t.Fatal(err)
	}
	if _, err := eng.Do(Action{Verb: VerbMove, Direction: "east"}); err != nil {
		t.Fatal(err)
	}
	if !eng.InCombat() {
		t.Fatal("mimic did not re-engage on re-entry")
	}

	for eng.InCombat() {
		if _, err := eng.Do(Action{Verb: VerbAttack}); err != nil {
			t.Fatal(err)
		}
	}
	if !eng.CurrentRoom().Chest.Opened {
		t.Error("chest not marked opened after the mimic died")
	}
	if _, err := eng.Do(Action{Verb: VerbOpen}); !errors.Is(err, ErrAlreadyOpened) {
		t.Errorf("reopen: got %v, want ErrAlreadyOpened", err)
	}
}

func TestOpenAfterFleeResumesWoundedMimic(t *testing.T) {
	// One round wounds the mimic to 2 hp; after a flee, opening the
	// chest again resumes against the same creature, not a fresh one.
	rng := &ScriptedSource{Floats: []float64{0.9, 0.1, 0.9}}
	eng := newTestEngine(t, rng)

	if _, err := eng.Do(Action{Verb: VerbMove, Direction: "east"}); err != nil {
		t.Fatal(err)
	}
	if _, err := eng.Do(Action{Verb: VerbOpen}); err != nil {
		t.Fatal(err)
	}
	if _, err := eng.Do(Action{Verb: VerbAttack}); err != nil {
		t.Fatal(err)
	}
	if _, err := eng.Do(Action{Verb: VerbFlee}); err != nil {
		t.Fatal(err)
	}

	out, err := eng.Do(Action{Verb: VerbOpen})
	if err != nil {
		t.Fatalf("reopen fled mimic chest: %v", err)
	}
	if !out.InCombat {
		t.Fatal("reopening did not re-engage the mimic")
	}
	if eng.CombatEnemy().HP != 2 {
		t.Errorf("mimic at %d hp, want the wounded 2", eng.CombatEnemy().HP)
	}

	if _, err := eng.Do(Action{Verb: VerbAttack}); err != nil {
		t.Fatal(err)
	}
	if !eng.CurrentRoom().Chest.Opened {
		t.Error("chest not marked opened after the resumed fight")
	}
}

func TestBossGuaranteesQuestDrop(t *testing.T) {
	cat := testCatalog(t)
	cat.Enemies["goblin"].Boss = true
	cat.Enemies["goblin"].DropTable = []catalog.DropEntry{
		{ItemID: "tonic", Chance: 0.3},
		{ItemID: "idol", Chance: 0},
	}
	// Three non-crit rounds kill the goblin; both drop rolls miss.
	rng := &ScriptedSource{Floats: []float64{0.9, 0.9, 0.9, 0.9, 0.9}}
	eng, err := New(cat, "Tess", rng)
	if err != nil {
		t.Fatal(err)
	}
	enterArena(t, eng)

	for eng.InCombat() {
		if _, err := eng.Do(Action{Verb: VerbAttack}); err != nil {
			t.Fatal(err)
		}
	}
	room := eng.CurrentRoom()
	if !room.HasItem("idol") {
		t.Error("required quest drop missing after boss kill")
	}
	if room.HasItem("tonic") {
		t.Error("non-quest drop landed despite a missed roll")
	}
}

func TestWinConditionEndsSession(t *testing.T) {
	cat := testCatalog(t)
	cat.WinCondition = `'idol' in inventory`
	eng, err := New(cat, "Tess", &ScriptedSource{})
	if err != nil {
		t.Fatal(err)
	}
	eng.CurrentRoom().AddItem("idol")

	out, err := eng.Do(Action{Verb: VerbTake, Target: "idol"})
	if err != nil {
		t.Fatal(err)
	}
	if out.Terminal != TerminalWon {
		t.Fatalf("terminal %q, want won", out.Terminal)
	}
	if _, err := eng.Do(Action{Verb: VerbStats}); !errors.Is(err, ErrSessionOver) {
		t.Errorf("post-win action: got %v, want ErrSessionOver", err)
	}
}
