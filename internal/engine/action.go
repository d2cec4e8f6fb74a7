package engine

// Verb is the closed set of actions the engine accepts. The parser/CLI
// layer produces one Action per player turn; the engine resolves it to
// completion and returns one Outcome.
type Verb string

const (
	VerbMove      Verb = "move"
	VerbLook      Verb = "look"
	VerbTake      Verb = "take"
	VerbTakeAll   Verb = "take_all"
	VerbDrop      Verb = "drop"
	VerbUse       Verb = "use"
	VerbEquip     Verb = "equip"
	VerbUnequip   Verb = "unequip"
	VerbOpen      Verb = "open"
	VerbAttack    Verb = "attack"
	VerbFlee      Verb = "flee"
	VerbInventory Verb = "inventory"
	VerbStats     Verb = "stats"
	VerbMap       Verb = "map"
	VerbSave      Verb = "save"
	VerbLoad      Verb = "load"
	VerbBuy       Verb = "buy"
	VerbSell      Verb = "sell"
	VerbShop      Verb = "shop"
	VerbDrink     Verb = "drink"
	VerbGamble    Verb = "gamble"
)

// Action is one structured player intent.
type Action struct {
	Verb      Verb
	Direction string // move
	Target    string // item id, look target, or equip slot for unequip
	Game      string // gamble: highlow, skulls, glory
	Bet       int    // gamble
	Choice    string // gamble highlow: high, low, seven
}

// Terminal marks a session-ending condition carried on an Outcome.
type Terminal string

const (
	TerminalNone     Terminal = ""
	TerminalDefeated Terminal = "defeated"
	TerminalWon      Terminal = "won"
)

// Outcome is the structured result of one Action. Text carries the
// narrative; the remaining fields let the rendering layer react without
// inspecting engine internals.
type Outcome struct {
	Verb Verb
	Text string

	RoomID     string
	FirstVisit bool

	DamageDealt  int
	DamageTaken  int
	Critical     bool
	Fled         bool
	InCombat     bool
	EnemyID      string
	ItemsGained  []string
	ItemsLost    []string
	GoldDelta    int
	XPGained     int
	LevelsGained int

	Terminal Terminal
}
