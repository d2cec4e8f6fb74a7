package engine

// Starting stats and the level-up growth curve.
const (
	startHP       = 100
	startAttack   = 10
	startDefense  = 2
	startXPToNext = 50
	maxSlots      = 10

	levelHPGain      = 10
	levelAttackGain  = 2
	levelDefenseGain = 1
	xpCurveFactor    = 1.5
)

// Stack is one inventory slot: an item id and how many are held.
// A stack of any size occupies exactly one slot.
type Stack struct {
	ItemID string
	Count  int
}

// Player is the sole player-character record for a session.
// EquippedWeapon and EquippedArmor are item ids; the empty string is the
// bare-hands / no-armor sentinel. Equipped items are never simultaneously
// present in the loose Inventory stacks.
type Player struct {
	Name     string
	HP       int
	MaxHP    int
	Attack   int
	Defense  int
	Level    int
	XP       int
	XPToNext int
	Gold     int

	// Cursed marks the fountain's curse: attack is reduced until cured.
	Cursed bool

	Inventory      []Stack
	MaxSlots       int
	EquippedWeapon string
	EquippedArmor  string
}

// NewPlayer creates a level-1 player with starting stats and an empty pack.
func NewPlayer(name string) *Player {
	return &Player{
		Name:     name,
		HP:       startHP,
		MaxHP:    startHP,
		Attack:   startAttack,
		Defense:  startDefense,
		Level:    1,
		XPToNext: startXPToNext,
		MaxSlots: maxSlots,
	}
}

// IsAlive reports whether the player has hit points remaining.
func (p *Player) IsAlive() bool {
	return p.HP > 0
}

// Heal restores up to amount hit points, capped at MaxHP, and returns
// the amount actually restored.
func (p *Player) Heal(amount int) int {
	old := p.HP
	p.HP += amount
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
	return p.HP - old
}

// Damage subtracts amount from HP, clamped at zero.
func (p *Player) Damage(amount int) {
	p.HP -= amount
	if p.HP < 0 {
		p.HP = 0
	}
}

// Count returns how many of item id the player holds in loose inventory.
func (p *Player) Count(itemID string) int {
	for _, s := range p.Inventory {
		if s.ItemID == itemID {
			return s.Count
		}
	}
	return 0
}

// Has reports whether the player holds item id, loose or equipped.
// Keys and quest checks treat an equipped item as carried.
func (p *Player) Has(itemID string) bool {
	return p.Count(itemID) > 0 || p.EquippedWeapon == itemID || p.EquippedArmor == itemID
}

// FreeSlot reports whether another distinct stack can be added, or an
// existing stack of id can absorb the addition.
func (p *Player) FreeSlot(itemID string) bool {
	return p.Count(itemID) > 0 || len(p.Inventory) < p.MaxSlots
}

// AddItem merges count into an existing stack of id, or opens a new slot.
// Fails with ErrInventoryFull when no slot is free and no stack matches.
func (p *Player) AddItem(itemID string, count int) error {
	for i := range p.Inventory {
		if p.Inventory[i].ItemID == itemID {
			p.Inventory[i].Count += count
			return nil
		}
	}
	if len(p.Inventory) >= p.MaxSlots {
		return ErrInventoryFull
	}
	p.Inventory = append(p.Inventory, Stack{ItemID: itemID, Count: count})
	return nil
}

// RemoveItem decrements a stack by count, dropping the slot at zero.
// Fails with ErrItemNotFound when the stack is absent or too small.
func (p *Player) RemoveItem(itemID string, count int) error {
	for i := range p.Inventory {
		if p.Inventory[i].ItemID != itemID {
			continue
		}
		if p.Inventory[i].Count < count {
			return ErrItemNotFound
		}
		p.Inventory[i].Count -= count
		if p.Inventory[i].Count == 0 {
			p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
		}
		return nil
	}
	return ErrItemNotFound
}

// GainXP awards xp and resolves every level-up the award crosses in one
// step. The loop matters: a single large grant can cross several
// thresholds. Each level adds max hp (healing by the same amount, capped),
// attack, and defense, then raises the next threshold.
func (p *Player) GainXP(amount int) int {
	p.XP += amount
	levels := 0
	for p.XP >= p.XPToNext {
		p.XP -= p.XPToNext
		p.Level++
		p.MaxHP += levelHPGain
		p.Heal(levelHPGain)
		p.Attack += levelAttackGain
		p.Defense += levelDefenseGain
		p.XPToNext = int(float64(p.XPToNext) * xpCurveFactor)
		levels++
	}
	return levels
}
