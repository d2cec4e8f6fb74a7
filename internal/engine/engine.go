// Package engine implements the game state engine: the room graph and
// traversal rules, the entity and item model, combat resolution, the
// inventory and equipment subsystem, chest and loot resolution, leveling,
// and the save/load contract. The Engine facade is the sole entry point
// consumed by the CLI layer: one Action in, one Outcome out, fully
// resolved before control returns.
package engine

import (
	"fmt"
	"sort"

	"github.com/kariannharris-star/dungeon-crawlr/internal/catalog"
	"github.com/kariannharris-star/dungeon-crawlr/internal/rules"
)

// Engine owns exactly one World and one Player for the life of a session.
// All randomness flows through the injected Source.
type Engine struct {
	cat      *catalog.Catalog
	world    *World
	player   *Player
	rng      Source
	combat   *Combat
	registry *rules.Registry

	// SavePath is where VerbSave writes and VerbLoad reads.
	SavePath string

	terminal Terminal
}

// New starts a fresh session: new player, freshly stamped world, starting
// room marked visited.
func New(cat *catalog.Catalog, playerName string, rng Source) (*Engine, error) {
	registry, err := rules.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize rules registry: %w", err)
	}
	if err := validateLootTables(cat); err != nil {
		return nil, fmt.Errorf("catalog loot tables: %w", err)
	}
	e := &Engine{
		cat:      cat,
		world:    NewWorld(cat),
		player:   NewPlayer(playerName),
		rng:      rng,
		registry: registry,
	}
	start := e.world.CurrentRoom()
	start.Visited = true
	e.engageIfHostile(start)
	return e, nil
}

// Player exposes the player record for rendering. Callers must not
// mutate it; all state changes go through Do.
func (e *Engine) Player() *Player { return e.player }

// World exposes the room graph for rendering.
func (e *Engine) World() *World { return e.world }

// Catalog exposes the immutable content definitions.
func (e *Engine) Catalog() *catalog.Catalog { return e.cat }

// CurrentRoom returns the room the player occupies.
func (e *Engine) CurrentRoom() *Room { return e.world.CurrentRoom() }

// Terminal reports the session's terminal state, if any.
func (e *Engine) Terminal() Terminal { return e.terminal }

// InCombat reports whether an undefeated enemy holds the player's turn.
func (e *Engine) InCombat() bool {
	return e.combat != nil && e.combat.State == CombatPlayerTurn
}

// CombatEnemy returns the engaged enemy, or nil outside combat.
func (e *Engine) CombatEnemy() *Enemy {
	if e.combat == nil {
		return nil
	}
	return e.combat.Enemy
}

// Do resolves one Action to completion, including any chained combat
// round, loot roll, and level-up cascade, and returns the Outcome.
// Recoverable conditions come back as errors wrapping the taxonomy
// sentinels; on error, game state is unchanged.
func (e *Engine) Do(a Action) (Outcome, error) {
	if e.terminal != TerminalNone && a.Verb != VerbLoad {
		return Outcome{}, fmt.Errorf("%w: the session has ended", ErrSessionOver)
	}

	if e.InCombat() {
		switch a.Verb {
		case VerbAttack, VerbUse, VerbFlee:
		default:
			return Outcome{}, fmt.Errorf("%w: the %s demands your attention", ErrEngagedInCombat, e.combat.Enemy.Name)
		}
	}

	switch a.Verb {
	case VerbMove:
		return e.move(a.Direction)
	case VerbLook:
		return e.look(a.Target)
	case VerbTake:
		return e.take(a.Target)
	case VerbTakeAll:
		return e.takeAll()
	case VerbDrop:
		return e.drop(a.Target)
	case VerbUse:
		return e.use(a.Target)
	case VerbEquip:
		return e.equip(a.Target)
	case VerbUnequip:
		return e.unequip(a.Target)
	case VerbOpen:
		return e.openChest(a.Target)
	case VerbAttack:
		return e.attack()
	case VerbFlee:
		return e.flee()
	case VerbInventory:
		return e.inventoryOutcome()
	case VerbStats:
		return e.statsOutcome()
	case VerbMap:
		return e.mapOutcome()
	case VerbSave:
		return e.saveOutcome()
	case VerbLoad:
		return e.loadOutcome()
	case VerbBuy:
		return e.buy(a.Target)
	case VerbSell:
		return e.sell(a.Target)
	case VerbShop:
		return e.shopOutcome()
	case VerbDrink:
		return e.drink()
	case VerbGamble:
		return e.gamble(a.Game, a.Bet, a.Choice)
	default:
		return Outcome{}, fmt.Errorf("%w: unknown action %q", ErrInvalidTarget, a.Verb)
	}
}

// engageIfHostile forces the combat state machine into the player's turn
// when the room holds a living enemy. The boundary between exploring and
// engaged is a first-class state, not a per-action re-check. When the
// enemy sprang from the room's mimic chest, the engagement keeps the
// chest link so any victorious resolution marks it opened, including a
// re-engagement after a successful flee.
func (e *Engine) engageIfHostile(room *Room) bool {
	if room.Enemy == nil || !room.Enemy.IsAlive() {
		return false
	}
	c := &Combat{Enemy: room.Enemy, State: CombatPlayerTurn}
	if chest := room.Chest; chest != nil && !chest.Opened &&
		chest.Def.State == catalog.ChestMimic && chest.Def.MimicEnemy == room.Enemy.ID {
		c.MimicChest = chest
	}
	e.combat = c
	return true
}

// checkWin evaluates the catalog's win condition against the current
// snapshot and transitions the session to Won when it holds.
func (e *Engine) checkWin(out *Outcome) {
	if e.cat.WinCondition == "" || e.terminal != TerminalNone {
		return
	}
	won, err := e.registry.EvalBool(e.cat.WinCondition, e.snapshotContext())
	if err != nil || !won {
		return
	}
	e.terminal = TerminalWon
	out.Terminal = TerminalWon
	out.Text += "\nA surge of power runs through you. The dungeon's hold is broken. You have won!"
}

// snapshotContext flattens the session into the variables the rules
// registry binds for CEL evaluation.
func (e *Engine) snapshotContext() map[string]any {
	inventory := make([]string, 0, len(e.player.Inventory)+2)
	for _, s := range e.player.Inventory {
		inventory = append(inventory, s.ItemID)
	}
	if e.player.EquippedWeapon != "" {
		inventory = append(inventory, e.player.EquippedWeapon)
	}
	if e.player.EquippedArmor != "" {
		inventory = append(inventory, e.player.EquippedArmor)
	}

	var defeated []string
	for _, room := range e.world.Rooms {
		if room.Enemy != nil && room.Enemy.Defeated {
			defeated = append(defeated, room.Enemy.ID)
		}
	}
	sort.Strings(defeated)

	return map[string]any{
		"inventory":    inventory,
		"gold":         e.player.Gold,
		"level":        e.player.Level,
		"hp":           e.player.HP,
		"current_room": e.world.Current,
		"defeated":     defeated,
	}
}
