package engine

import (
	"fmt"
	"strings"

	"github.com/kariannharris-star/dungeon-crawlr/internal/catalog"
)

// Shops buy at half the listed value, rounded down.
const sellDivisor = 2

func (e *Engine) shopRoom() (*Room, error) {
	room := e.world.CurrentRoom()
	if !room.Def.IsShop {
		return nil, fmt.Errorf("%w: there is no one here to trade with", ErrNotAShop)
	}
	return room, nil
}

// shopOutcome lists the shop's stock with prices.
func (e *Engine) shopOutcome() (Outcome, error) {
	room, err := e.shopRoom()
	if err != nil {
		return Outcome{}, err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "The shopkeeper shows you the wares. You have %d gold.\nFor sale:", e.player.Gold)
	for _, id := range room.Def.ShopInventory {
		it := e.cat.Item(id)
		fmt.Fprintf(&b, "\n  %s — %d gold", it.Name, it.Value)
	}
	return Outcome{Verb: VerbShop, Text: b.String()}, nil
}

// buy purchases one unit of a stocked item. Shop stock never depletes.
func (e *Engine) buy(itemID string) (Outcome, error) {
	room, err := e.shopRoom()
	if err != nil {
		return Outcome{}, err
	}
	stocked := false
	for _, id := range room.Def.ShopInventory {
		if id == itemID {
			stocked = true
			break
		}
	}
	if !stocked {
		return Outcome{}, fmt.Errorf("%w: the shop doesn't sell %q", ErrItemNotFound, itemID)
	}
	it := e.cat.Item(itemID)
	if e.player.Gold < it.Value {
		return Outcome{}, fmt.Errorf("%w: %s costs %d gold and you have %d", ErrCannotAfford, it.Name, it.Value, e.player.Gold)
	}
	if err := e.player.AddItem(itemID, 1); err != nil {
		return Outcome{}, fmt.Errorf("%w: your pack has no room", err)
	}
	e.player.Gold -= it.Value

	out := Outcome{
		Verb:        VerbBuy,
		ItemsGained: []string{itemID},
		GoldDelta:   -it.Value,
		Text:        fmt.Sprintf("You buy %s for %d gold.", it.Name, it.Value),
	}
	e.checkWin(&out)
	return out, nil
}

// sell trades one unit from the pack for half its value. Equipped gear,
// required quest items, and worthless items are refused.
func (e *Engine) sell(itemID string) (Outcome, error) {
	if _, err := e.shopRoom(); err != nil {
		return Outcome{}, err
	}
	if e.player.Count(itemID) == 0 {
		if e.player.EquippedWeapon == itemID || e.player.EquippedArmor == itemID {
			return Outcome{}, fmt.Errorf("%w: unequip %s before selling it", ErrInvalidTarget, e.cat.ItemName(itemID))
		}
		return Outcome{}, fmt.Errorf("%w: you don't carry %q", ErrItemNotFound, itemID)
	}
	it := e.cat.Item(itemID)
	if it.Type == catalog.ItemQuest && it.Required {
		return Outcome{}, fmt.Errorf("%w: the shopkeeper wants no part of %s", ErrInvalidTarget, it.Name)
	}
	price := it.Value / sellDivisor
	if price <= 0 {
		return Outcome{}, fmt.Errorf("%w: %s is worthless to the shopkeeper", ErrInvalidTarget, it.Name)
	}
	if err := e.player.RemoveItem(itemID, 1); err != nil {
		return Outcome{}, err
	}
	e.player.Gold += price

	return Outcome{
		Verb:      VerbSell,
		ItemsLost: []string{itemID},
		GoldDelta: price,
		Text:      fmt.Sprintf("You sell %s for %d gold.", it.Name, price),
	}, nil
}
