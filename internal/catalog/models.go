// Package catalog holds the authored, read-only content definitions:
// rooms, items, and enemy templates, keyed by stable string identifiers.
// A Catalog is loaded once per session and never mutated afterwards.
package catalog

// ItemType discriminates the item variants. Behavior (equip effect, use
// effect) dispatches on this tag.
type ItemType string

const (
	ItemWeapon     ItemType = "weapon"
	ItemArmor      ItemType = "armor"
	ItemConsumable ItemType = "consumable"
	ItemKey        ItemType = "key"
	ItemQuest      ItemType = "quest"
)

// EffectType names what a consumable does when used.
type EffectType string

const (
	EffectHeal   EffectType = "heal"
	EffectDamage EffectType = "damage"
	EffectCure   EffectType = "cure"
)

// Item is the tagged variant over weapon/armor/consumable/key/quest.
// The base fields are shared; the payload fields only apply to their tag.
type Item struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Type        ItemType `yaml:"type"`
	Value       int      `yaml:"value"`

	// Weapon
	AttackBonus int `yaml:"attack_bonus,omitempty"`
	// Armor
	DefenseBonus int `yaml:"defense_bonus,omitempty"`
	// Consumable
	Effect       EffectType `yaml:"effect,omitempty"`
	EffectAmount int        `yaml:"effect_amount,omitempty"`
	// Key
	Unlocks string `yaml:"unlocks,omitempty"`
	// Quest items marked required cannot be dropped or sold.
	Required bool `yaml:"required,omitempty"`
}

// DropEntry is one enemy drop-table row: the item and its independent
// drop probability in [0,1].
type DropEntry struct {
	ItemID string  `yaml:"item_id"`
	Chance float64 `yaml:"chance"`
}

// Enemy is the template an in-room enemy instance is created from.
type Enemy struct {
	ID          string      `yaml:"id"`
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	MaxHP       int         `yaml:"max_hp"`
	Attack      int         `yaml:"attack"`
	Defense     int         `yaml:"defense"`
	XPReward    int         `yaml:"xp_reward"`
	GoldReward  int         `yaml:"gold_reward"`
	DropTable   []DropEntry `yaml:"drop_table,omitempty"`
	Boss        bool        `yaml:"boss,omitempty"`
}

// ChestState is the chest's authored disposition.
type ChestState string

const (
	ChestUnlocked ChestState = "unlocked"
	ChestLocked   ChestState = "locked"
	ChestTrapped  ChestState = "trapped"
	ChestMimic    ChestState = "mimic"
)

// Chest describes a room's chest. Locked chests require KeyRequired,
// trapped chests deal TrapDamage on opening, mimic chests spawn MimicEnemy.
type Chest struct {
	ID          string     `yaml:"id"`
	State       ChestState `yaml:"state"`
	KeyRequired string     `yaml:"key_required,omitempty"`
	TrapDamage  int        `yaml:"trap_damage,omitempty"`
	LootTier    string     `yaml:"loot_tier,omitempty"`
	FixedLoot   []string   `yaml:"fixed_loot,omitempty"`
	MimicEnemy  string     `yaml:"mimic_enemy,omitempty"`
}

// Room is an authored node of the dungeon graph. Exits map direction to
// a destination room id; LockedExits map direction to the key item that
// grants passage.
type Room struct {
	ID               string            `yaml:"id"`
	Name             string            `yaml:"name"`
	Description      string            `yaml:"description"`
	ShortDescription string            `yaml:"short_description"`
	Exits            map[string]string `yaml:"exits,omitempty"`
	LockedExits      map[string]string `yaml:"locked_exits,omitempty"`
	Items            []string          `yaml:"items,omitempty"`
	EnemyID          string            `yaml:"enemy,omitempty"`
	Chest            *Chest            `yaml:"chest,omitempty"`

	// EntryTrap deals fixed damage each time the room is entered.
	EntryTrap int `yaml:"entry_trap,omitempty"`

	// Shop rooms trade against ShopInventory.
	IsShop        bool     `yaml:"is_shop,omitempty"`
	ShopInventory []string `yaml:"shop_inventory,omitempty"`

	// Fountain rooms offer one drink per session from FountainEffects.
	HasFountain     bool     `yaml:"has_fountain,omitempty"`
	FountainEffects []string `yaml:"fountain_effects,omitempty"`

	// Tavern rooms host the dice games.
	IsTavern bool `yaml:"is_tavern,omitempty"`
}

// Catalog aggregates the three keyed collections plus session-level
// authored settings.
type Catalog struct {
	StartingRoom string `yaml:"starting_room"`

	// WinCondition is a CEL expression over the player/world snapshot;
	// when it evaluates true the session is won.
	WinCondition string `yaml:"win_condition"`

	Rooms   map[string]*Room
	Items   map[string]*Item
	Enemies map[string]*Enemy
}

// Item returns the item definition for id, or nil.
func (c *Catalog) Item(id string) *Item {
	return c.Items[id]
}

// ItemName returns the display name for id, falling back to the id for
// unknown references so narrative text never goes blank.
func (c *Catalog) ItemName(id string) string {
	if it := c.Items[id]; it != nil {
		return it.Name
	}
	return id
}

// Room returns the room definition for id, or nil.
func (c *Catalog) Room(id string) *Room {
	return c.Rooms[id]
}

// Enemy returns the enemy template for id, or nil.
func (c *Catalog) Enemy(id string) *Enemy {
	return c.Enemies[id]
}
