package engine

import (
	"fmt"

	"github.com/kariannharris-star/dungeon-crawlr/internal/save"
)

// Snapshot captures the full mutable session state as a save document.
func (e *Engine) Snapshot() *save.State {
	p := e.player
	ps := save.PlayerState{
		Name:           p.Name,
		HP:             p.HP,
		MaxHP:          p.MaxHP,
		Attack:         p.Attack,
		Defense:        p.Defense,
		Level:          p.Level,
		XP:             p.XP,
		XPToNext:       p.XPToNext,
		Gold:           p.Gold,
		EquippedWeapon: p.EquippedWeapon,
		EquippedArmor:  p.EquippedArmor,
		Cursed:         p.Cursed,
	}
	for _, s := range p.Inventory {
		ps.Inventory = append(ps.Inventory, save.InventoryStack{ItemID: s.ItemID, Count: s.Count})
	}

	states := make(map[string]save.RoomState, len(e.world.Rooms))
	for id, room := range e.world.Rooms {
		rs := save.RoomState{
			Visited:     room.Visited,
			Items:       append([]string(nil), room.Items...),
			FountainDry: room.FountainDry,
		}
		if room.Chest != nil {
			rs.ChestOpened = room.Chest.Opened
		}
		if room.Enemy != nil {
			rs.EnemyDefeated = room.Enemy.Defeated
			rs.EnemyHP = room.Enemy.HP
		}
		states[id] = rs
	}

	return &save.State{
		Player:      ps,
		CurrentRoom: e.world.Current,
		RoomStates:  states,
	}
}

// Restore replaces the session's mutable state from a save document.
// Every reference is validated against the catalog first; on any error
// the in-memory session is left untouched.
func (e *Engine) Restore(s *save.State) error {
	if err := e.validateSnapshot(s); err != nil {
		return err
	}

	p := NewPlayer(s.Player.Name)
	if p.Name == "" {
		p.Name = e.player.Name
	}
	if s.Player.MaxHP > 0 {
		p.MaxHP = s.Player.MaxHP
	}
	// Terminal sessions are never saved; a missing or zero hp field means
	// the field was absent, so default to full health.
	p.HP = s.Player.HP
	if p.HP <= 0 {
		p.HP = p.MaxHP
	}
	if s.Player.Attack > 0 {
		p.Attack = s.Player.Attack
	}
	if s.Player.Defense > 0 {
		p.Defense = s.Player.Defense
	}
	if s.Player.Level > 0 {
		p.Level = s.Player.Level
	}
	p.XP = s.Player.XP
	if s.Player.XPToNext > 0 {
		p.XPToNext = s.Player.XPToNext
	}
	p.Gold = s.Player.Gold
	p.EquippedWeapon = s.Player.EquippedWeapon
	p.EquippedArmor = s.Player.EquippedArmor
	p.Cursed = s.Player.Cursed
	for _, st := range s.Player.Inventory {
		p.Inventory = append(p.Inventory, Stack{ItemID: st.ItemID, Count: st.Count})
	}

	world := NewWorld(e.cat)
	world.Current = s.CurrentRoom
	for id, rs := range s.RoomStates {
		room := world.Rooms[id]
		room.Visited = rs.Visited
		room.Items = append([]string(nil), rs.Items...)
		room.FountainDry = rs.FountainDry
		if room.Chest != nil {
			room.Chest.Opened = rs.ChestOpened
		}
		if room.Enemy != nil {
			room.Enemy.Defeated = rs.EnemyDefeated
			if rs.EnemyDefeated {
				room.Enemy.HP = 0
			} else if rs.EnemyHP > 0 {
				room.Enemy.HP = rs.EnemyHP
			}
		}
	}

	e.player = p
	e.world = world
	e.combat = nil
	e.terminal = TerminalNone
	e.engageIfHostile(world.CurrentRoom())
	return nil
}

// validateSnapshot cross-checks every id the document references against
// the catalog before any session state is replaced.
func (e *Engine) validateSnapshot(s *save.State) error {
	if e.cat.Room(s.CurrentRoom) == nil {
		return fmt.Errorf("%w: room %q", save.ErrUnknownContent, s.CurrentRoom)
	}
	checkItem := func(id string) error {
		if id != "" && e.cat.Item(id) == nil {
			return fmt.Errorf("%w: item %q", save.ErrUnknownContent, id)
		}
		return nil
	}
	for _, st := range s.Player.Inventory {
		if err := checkItem(st.ItemID); err != nil {
			return err
		}
	}
	if err := checkItem(s.Player.EquippedWeapon); err != nil {
		return err
	}
	if err := checkItem(s.Player.EquippedArmor); err != nil {
		return err
	}
	for id, rs := range s.RoomStates {
		if e.cat.Room(id) == nil {
			return fmt.Errorf("%w: room %q", save.ErrUnknownContent, id)
		}
		for _, itemID := range rs.Items {
			if err := checkItem(itemID); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Engine) saveOutcome() (Outcome, error) {
	if e.SavePath == "" {
		return Outcome{}, fmt.Errorf("%w: no save path configured", save.ErrSaveIO)
	}
	if err := save.Write(e.SavePath, e.Snapshot()); err != nil {
		return Outcome{}, err
	}
	return Outcome{Verb: VerbSave, Text: fmt.Sprintf("Game saved to %s.", e.SavePath)}, nil
}

func (e *Engine) loadOutcome() (Outcome, error) {
	if e.SavePath == "" {
		return Outcome{}, fmt.Errorf("%w: no save path configured", save.ErrSaveIO)
	}
	doc, err := save.Read(e.SavePath)
	if err != nil {
		return Outcome{}, err
	}
	if err := e.Restore(doc); err != nil {
		return Outcome{}, err
	}
	room := e.world.CurrentRoom()
	out := Outcome{
		Verb:   VerbLoad,
		RoomID: e.world.Current,
		Text:   fmt.Sprintf("Game loaded.\n%s", e.describeRoom(room, false)),
	}
	if e.InCombat() {
		out.InCombat = true
		out.EnemyID = e.combat.Enemy.ID
		out.Text += fmt.Sprintf("\nThe %s is still waiting. You are in combat.", e.combat.Enemy.Name)
	}
	return out, nil
}
