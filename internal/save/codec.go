// Package save implements the versioned save-file codec: a JSON document
// carrying the full mutable session state, written atomically via a
// temporary file so a crash never leaves a corrupt save behind.
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Version is the schema version stamped on every document this codec
// writes. Readers accept any "1." prefixed version; additive fields are
// tolerated, unknown majors are not.
const Version = "1.1"

var (
	ErrSaveIO         = errors.New("save io failure")
	ErrSaveFormat     = errors.New("unsupported save format")
	ErrUnknownContent = errors.New("unknown content reference")
)

// InventoryStack is one serialized inventory slot.
type InventoryStack struct {
	ItemID string `json:"item_id"`
	Count  int    `json:"count"`
}

// PlayerState is the serialized player record.
type PlayerState struct {
	Name           string           `json:"name"`
	HP             int              `json:"hp"`
	MaxHP          int              `json:"max_hp"`
	Attack         int              `json:"attack"`
	Defense        int              `json:"defense"`
	Level          int              `json:"level"`
	XP             int              `json:"xp"`
	XPToNext       int              `json:"xp_to_next"`
	Gold           int              `json:"gold"`
	Inventory      []InventoryStack `json:"inventory"`
	EquippedWeapon string           `json:"equipped_weapon,omitempty"`
	EquippedArmor  string           `json:"equipped_armor,omitempty"`
	Cursed         bool             `json:"cursed,omitempty"`
}

// RoomState is the serialized mutable state of one room.
type RoomState struct {
	Visited       bool     `json:"visited,omitempty"`
	Items         []string `json:"items,omitempty"`
	ChestOpened   bool     `json:"chest_opened,omitempty"`
	EnemyDefeated bool     `json:"enemy_defeated,omitempty"`
	EnemyHP       int      `json:"enemy_hp,omitempty"`
	FountainDry   bool     `json:"fountain_dry,omitempty"`
}

// State is the complete save document.
type State struct {
	Version     string               `json:"version"`
	Player      PlayerState          `json:"player"`
	CurrentRoom string               `json:"current_room"`
	RoomStates  map[string]RoomState `json:"room_states"`
}

// Write serializes the state and atomically replaces the file at path.
// The document lands in a temporary file first and only renames over the
// target after a successful flush, so the prior save survives any failure.
func Write(path string, s *State) error {
	s.Version = Version
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSaveIO, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrSaveIO, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSaveIO, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", ErrSaveIO, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", ErrSaveIO, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrSaveIO, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: %v", ErrSaveIO, err)
	}
	return nil
}

// Read parses the document at path and checks the schema version. A
// malformed document or unsupported version is reported, never panicked.
func Read(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSaveIO, err)
	}
	return Decode(data)
}

// Decode parses a raw save document.
func Decode(data []byte) (*State, error) {
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSaveFormat, err)
	}
	if !strings.HasPrefix(s.Version, "1.") {
		return nil, fmt.Errorf("%w: version %q", ErrSaveFormat, s.Version)
	}
	if s.RoomStates == nil {
		s.RoomStates = map[string]RoomState{}
	}
	return &s, nil
}
