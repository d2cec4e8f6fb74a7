package engine

import "errors"

// Recoverable condition taxonomy. Every one of these leaves game state
// unchanged; callers discriminate with errors.Is and render the wrapped
// message. Defeat is not an error: it is reported as a terminal Outcome.
var (
	ErrItemNotFound    = errors.New("item not found")
	ErrInventoryFull   = errors.New("inventory full")
	ErrLockedExit      = errors.New("locked exit")
	ErrEngagedInCombat = errors.New("engaged in combat")
	ErrNotInCombat     = errors.New("not in combat")
	ErrInvalidTarget   = errors.New("invalid target")
	ErrAlreadyOpened   = errors.New("already opened")
	ErrNotAShop        = errors.New("not a shop")
	ErrCannotAfford    = errors.New("cannot afford")
	ErrNoFountain      = errors.New("no fountain")
	ErrFountainDry     = errors.New("fountain depleted")
	ErrNotATavern      = errors.New("not a tavern")
	ErrInvalidBet      = errors.New("invalid bet")
	ErrSessionOver     = errors.New("session over")
)
