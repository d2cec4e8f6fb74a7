package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kariannharris-star/dungeon-crawlr/internal/catalog"
)

func (e *Engine) move(direction string) (Outcome, error) {
	room := e.world.CurrentRoom()
	target, ok := room.Def.Exits[direction]
	if !ok {
		return Outcome{}, fmt.Errorf("%w: there is no exit to the %s", ErrInvalidTarget, direction)
	}

	if key, locked := room.Def.LockedExits[direction]; locked && !e.player.Has(key) {
		return Outcome{}, fmt.Errorf("%w: the way %s is locked; you need %s", ErrLockedExit, direction, e.cat.ItemName(key))
	}

	e.world.Current = target
	dest := e.world.CurrentRoom()
	first := !dest.Visited
	dest.Visited = true

	out := Outcome{
		Verb:       VerbMove,
		RoomID:     target,
		FirstVisit: first,
		Text:       e.describeRoom(dest, first),
	}
	if key, locked := room.Def.LockedExits[direction]; locked {
		out.Text = fmt.Sprintf("You unlock the way with %s.\n", e.cat.ItemName(key)) + out.Text
	}

	// Entry traps fire on every entry, before the combat check.
	if dest.Def.EntryTrap > 0 {
		e.player.Damage(dest.Def.EntryTrap)
		out.DamageTaken += dest.Def.EntryTrap
		out.Text += fmt.Sprintf("\nThe room turns against you! You take %d damage.", dest.Def.EntryTrap)
		if !e.player.IsAlive() {
			e.terminal = TerminalDefeated
			out.Terminal = TerminalDefeated
			out.Text += "\nYou have been slain!"
			return out, nil
		}
	}

	if e.engageIfHostile(dest) {
		out.InCombat = true
		out.EnemyID = dest.Enemy.ID
		out.Text += fmt.Sprintf("\nThe %s attacks! You are in combat.", dest.Enemy.Name)
	}
	return out, nil
}

func (e *Engine) look(target string) (Outcome, error) {
	room := e.world.CurrentRoom()
	if target == "" {
		return Outcome{
			Verb:   VerbLook,
			RoomID: room.Def.ID,
			Text:   e.describeRoom(room, true),
		}, nil
	}

	for _, id := range room.Items {
		if id == target {
			return Outcome{Verb: VerbLook, Text: e.cat.Item(id).Description}, nil
		}
	}
	if room.Enemy != nil && room.Enemy.IsAlive() && (room.Enemy.ID == target || strings.EqualFold(room.Enemy.Name, target)) {
		return Outcome{Verb: VerbLook, Text: room.Enemy.Description}, nil
	}
	if room.Chest != nil && target == "chest" {
		if room.Chest.Opened {
			return Outcome{Verb: VerbLook, Text: "An opened chest, already emptied."}, nil
		}
		return Outcome{Verb: VerbLook, Text: "A sturdy chest. It might open, if you dare."}, nil
	}
	if it := e.cat.Item(target); it != nil && e.player.Has(target) {
		return Outcome{Verb: VerbLook, Text: it.Description}, nil
	}
	return Outcome{}, fmt.Errorf("%w: you don't see %q here", ErrInvalidTarget, target)
}

func (e *Engine) take(itemID string) (Outcome, error) {
	room := e.world.CurrentRoom()
	if !room.HasItem(itemID) {
		return Outcome{}, fmt.Errorf("%w: there is no %q here", ErrItemNotFound, itemID)
	}
	if err := e.player.AddItem(itemID, 1); err != nil {
		return Outcome{}, fmt.Errorf("%w: your pack has no room", err)
	}
	room.RemoveItem(itemID)

	out := Outcome{
		Verb:        VerbTake,
		ItemsGained: []string{itemID},
		Text:        fmt.Sprintf("You pick up %s.", e.cat.ItemName(itemID)),
	}
	e.checkWin(&out)
	return out, nil
}

func (e *Engine) takeAll() (Outcome, error) {
	room := e.world.CurrentRoom()
	if len(room.Items) == 0 {
		return Outcome{}, fmt.Errorf("%w: there is nothing here to pick up", ErrItemNotFound)
	}

	var taken, left []string
	for _, id := range append([]string(nil), room.Items...) {
		if err := e.player.AddItem(id, 1); err != nil {
			left = append(left, e.cat.ItemName(id))
			continue
		}
		room.RemoveItem(id)
		taken = append(taken, id)
	}
	if len(taken) == 0 {
		return Outcome{}, fmt.Errorf("%w: your pack has no room", ErrInventoryFull)
	}

	names := make([]string, len(taken))
	for i, id := range taken {
		names[i] = e.cat.ItemName(id)
	}
	out := Outcome{
		Verb:        VerbTake,
		ItemsGained: taken,
		Text:        fmt.Sprintf("You pick up: %s.", strings.Join(names, ", ")),
	}
	if len(left) > 0 {
		out.Text += fmt.Sprintf(" Your pack is full; you leave behind: %s.", strings.Join(left, ", "))
	}
	e.checkWin(&out)
	return out, nil
}

func (e *Engine) drop(itemID string) (Outcome, error) {
	if e.player.Count(itemID) == 0 {
		if e.player.EquippedWeapon == itemID || e.player.EquippedArmor == itemID {
			return Outcome{}, fmt.Errorf("%w: you must unequip %s first", ErrInvalidTarget, e.cat.ItemName(itemID))
		}
		return Outcome{}, fmt.Errorf("%w: you don't carry %q", ErrItemNotFound, itemID)
	}
	if it := e.cat.Item(itemID); it != nil && it.Type == catalog.ItemQuest && it.Required {
		return Outcome{}, fmt.Errorf("%w: %s is too important to leave behind", ErrInvalidTarget, it.Name)
	}
	if err := e.player.RemoveItem(itemID, 1); err != nil {
		return Outcome{}, err
	}
	e.world.CurrentRoom().AddItem(itemID)
	return Outcome{
		Verb:      VerbDrop,
		ItemsLost: []string{itemID},
		Text:      fmt.Sprintf("You drop %s.", e.cat.ItemName(itemID)),
	}, nil
}

func (e *Engine) inventoryOutcome() (Outcome, error) {
	p := e.player
	var b strings.Builder
	fmt.Fprintf(&b, "Gold: %d. Slots: %d/%d.\n", p.Gold, len(p.Inventory), p.MaxSlots)
	if p.EquippedWeapon != "" {
		fmt.Fprintf(&b, "Wielding: %s.\n", e.cat.ItemName(p.EquippedWeapon))
	} else {
		b.WriteString("Wielding: bare hands.\n")
	}
	if p.EquippedArmor != "" {
		fmt.Fprintf(&b, "Wearing: %s.\n", e.cat.ItemName(p.EquippedArmor))
	}
	if len(p.Inventory) == 0 {
		b.WriteString("Your pack is empty.")
	} else {
		b.WriteString("Carrying:")
		for _, s := range p.Inventory {
			if s.Count > 1 {
				fmt.Fprintf(&b, "\n  %s x%d", e.cat.ItemName(s.ItemID), s.Count)
			} else {
				fmt.Fprintf(&b, "\n  %s", e.cat.ItemName(s.ItemID))
			}
		}
	}
	return Outcome{Verb: VerbInventory, Text: b.String()}, nil
}

func (e *Engine) statsOutcome() (Outcome, error) {
	p := e.player
	text := fmt.Sprintf(
		"%s — Level %d\nHP: %d/%d\nAttack: %d (+%d weapon)\nDefense: %d (+%d armor)\nXP: %d/%d\nGold: %d",
		p.Name, p.Level, p.HP, p.MaxHP,
		p.Attack, e.weaponBonus(), p.Defense, e.armorBonus(),
		p.XP, p.XPToNext, p.Gold,
	)
	return Outcome{Verb: VerbStats, Text: text}, nil
}

func (e *Engine) mapOutcome() (Outcome, error) {
	visited := e.world.VisitedIDs()
	sort.Strings(visited)

	var b strings.Builder
	b.WriteString("Places you have been:")
	for _, id := range visited {
		marker := "  "
		if id == e.world.Current {
			marker = "* "
		}
		fmt.Fprintf(&b, "\n%s%s", marker, e.cat.Room(id).Name)
	}
	return Outcome{Verb: VerbMap, Text: b.String()}, nil
}

// describeRoom renders the long description on a first visit (or explicit
// look) and the short form otherwise, followed by whatever is present.
func (e *Engine) describeRoom(room *Room, long bool) string {
	var b strings.Builder
	b.WriteString(room.Def.Name)
	b.WriteString("\n")
	if long {
		b.WriteString(room.Def.Description)
	} else {
		b.WriteString(room.Def.ShortDescription)
	}
	if len(room.Items) > 0 {
		names := make([]string, len(room.Items))
		for i, id := range room.Items {
			names[i] = e.cat.ItemName(id)
		}
		fmt.Fprintf(&b, "\nYou see: %s.", strings.Join(names, ", "))
	}
	if room.Chest != nil && !room.Chest.Opened {
		b.WriteString("\nThere is a chest here.")
	}
	if room.Def.HasFountain && !room.FountainDry {
		b.WriteString("\nA fountain murmurs invitingly.")
	}
	if len(room.Def.Exits) > 0 {
		dirs := make([]string, 0, len(room.Def.Exits))
		for dir := range room.Def.Exits {
			dirs = append(dirs, dir)
		}
		sort.Strings(dirs)
		fmt.Fprintf(&b, "\nExits: %s.", strings.Join(dirs, ", "))
	}
	return b.String()
}
