package engine

import "github.com/kariannharris-star/dungeon-crawlr/internal/catalog"

// Enemy is a runtime instance stamped from a catalog template. Each room
// gets its own instance; instances are never shared.
type Enemy struct {
	ID          string
	Name        string
	Description string
	HP          int
	MaxHP       int
	Attack      int
	Defense     int
	XPReward    int
	GoldReward  int
	DropTable   []catalog.DropEntry
	Boss        bool
	Defeated    bool
}

// NewEnemy instantiates an enemy from its catalog template at full health.
func NewEnemy(def *catalog.Enemy) *Enemy {
	return &Enemy{
		ID:          def.ID,
		Name:        def.Name,
		Description: def.Description,
		HP:          def.MaxHP,
		MaxHP:       def.MaxHP,
		Attack:      def.Attack,
		Defense:     def.Defense,
		XPReward:    def.XPReward,
		GoldReward:  def.GoldReward,
		DropTable:   def.DropTable,
		Boss:        def.Boss,
	}
}

// IsAlive reports whether the enemy still blocks the room.
func (e *Enemy) IsAlive() bool {
	return e.HP > 0 && !e.Defeated
}

// Damage subtracts amount from HP, marking the enemy defeated at zero.
func (e *Enemy) Damage(amount int) {
	e.HP -= amount
	if e.HP <= 0 {
		e.HP = 0
		e.Defeated = true
	}
}

// RollDrops rolls each drop-table entry independently against its chance
// and returns the item ids that dropped, in table order.
func (e *Enemy) RollDrops(rng Source) []string {
	var drops []string
	for _, entry := range e.DropTable {
		if rng.Float64() < entry.Chance {
			drops = append(drops, entry.ItemID)
		}
	}
	return drops
}
