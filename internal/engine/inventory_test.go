package engine

import (
	"errors"
	"testing"

	"github.com/kariannharris-star/dungeon-crawlr/internal/catalog"
)

func TestEquipRemovesFromLooseInventory(t *testing.T) {
	eng := newTestEngine(t, &ScriptedSource{})
	if _, err := eng.Do(Action{Verb: VerbTake, Target: "dagger"}); err != nil {
		t.Fatal(err)
	}

	if _, err := eng.Do(Action{Verb: VerbEquip, Target: "dagger"}); err != nil {
		t.Fatal(err)
	}
	p := eng.Player()
	if p.EquippedWeapon != "dagger" {
		t.Fatalf("equipped %q, want dagger", p.EquippedWeapon)
	}
	if p.Count("dagger") != 0 {
		t.Error("equipped dagger still occupies a loose slot")
	}
	if eng.weaponBonus() != 2 {
		t.Errorf("weapon bonus %d, want 2", eng.weaponBonus())
	}
}

func TestEquipSwapReturnsDisplaced(t *testing.T) {
	cat := testCatalog(t)
	cat.Items["buckler"] = &catalog.Item{
		ID: "buckler", Name: "Buckler", Type: catalog.ItemArmor, DefenseBonus: 1, Value: 5,
	}
	eng, err := New(cat, "Tess", &ScriptedSource{})
	if err != nil {
		t.Fatal(err)
	}
	p := eng.Player()
	p.EquippedArmor = "buckler"
	if err := p.AddItem("shield", 1); err != nil {
		t.Fatal(err)
	}

	if _, err := eng.Do(Action{Verb: VerbEquip, Target: "shield"}); err != nil {
		t.Fatal(err)
	}
	if p.EquippedArmor != "shield" {
		t.Errorf("armor slot %q, want shield", p.EquippedArmor)
	}
	if p.Count("buckler") != 1 {
		t.Error("displaced armor not returned to the pack")
	}
	if p.Count("shield") != 0 {
		t.Error("equipped shield still occupies a loose slot")
	}
}

func TestEquipSwapRollsBackWhenPackFull(t *testing.T) {
	eng := newTestEngine(t, &ScriptedSource{})
	p := eng.Player()
	p.MaxSlots = 1
	p.EquippedWeapon = "dagger"

	// The pack's only slot holds a stack of the replacement weapon, so
	// the slot stays occupied after one is taken out and the displaced
	// dagger has nowhere to go.
	if err := p.AddItem("bomb", 2); err != nil {
		t.Fatal(err)
	}
	eng.Catalog().Items["bomb"].Type = catalog.ItemWeapon

	_, err := eng.Do(Action{Verb: VerbEquip, Target: "bomb"})
	if !errors.Is(err, ErrInventoryFull) {
		t.Fatalf("got %v, want ErrInventoryFull", err)
	}
	if p.EquippedWeapon != "dagger" {
		t.Errorf("slot %q after rollback, want dagger", p.EquippedWeapon)
	}
	if p.Count("bomb") != 2 {
		t.Error("replacement item lost in the rollback")
	}
}

func TestUnequipRoundTrip(t *testing.T) {
	eng := newTestEngine(t, &ScriptedSource{})
	p := eng.Player()
	p.EquippedWeapon = "dagger"

	if _, err := eng.Do(Action{Verb: VerbUnequip, Target: "weapon"}); err != nil {
		t.Fatal(err)
	}
	if p.EquippedWeapon != "" || p.Count("dagger") != 1 {
		t.Errorf("weapon=%q count=%d after unequip", p.EquippedWeapon, p.Count("dagger"))
	}

	_, err := eng.Do(Action{Verb: VerbUnequip, Target: "weapon"})
	if !errors.Is(err, ErrItemNotFound) {
		t.Errorf("empty slot: got %v, want ErrItemNotFound", err)
	}
}

func TestHealingConsumableIsCapped(t *testing.T) {
	eng := newTestEngine(t, &ScriptedSource{})
	p := eng.Player()
	p.HP = 90
	if err := p.AddItem("tonic", 1); err != nil {
		t.Fatal(err)
	}

	if _, err := eng.Do(Action{Verb: VerbUse, Target: "tonic"}); err != nil {
		t.Fatal(err)
	}
	if p.HP != p.MaxHP {
		t.Errorf("hp %d, want capped at %d", p.HP, p.MaxHP)
	}
	if p.Count("tonic") != 0 {
		t.Error("tonic not consumed")
	}
}

func TestUseNonConsumableRefused(t *testing.T) {
	eng := newTestEngine(t, &ScriptedSource{})
	if err := eng.Player().AddItem("shield", 1); err != nil {
		t.Fatal(err)
	}
	_, err := eng.Do(Action{Verb: VerbUse, Target: "shield"})
	if !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("got %v, want ErrInvalidTarget", err)
	}
}
