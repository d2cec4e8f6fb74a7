package engine

import "github.com/kariannharris-star/dungeon-crawlr/internal/catalog"

// Room is the mutable runtime state layered over an authored room
// definition: the items currently present, the enemy and chest instances,
// and the visited and fountain-use flags.
type Room struct {
	Def         *catalog.Room
	Items       []string
	Enemy       *Enemy
	Chest       *Chest
	Visited     bool
	FountainDry bool
}

// HasItem reports whether the room currently contains item id.
func (r *Room) HasItem(itemID string) bool {
	for _, id := range r.Items {
		if id == itemID {
			return true
		}
	}
	return false
}

// AddItem appends an item to the room's ordered item set.
func (r *Room) AddItem(itemID string) {
	r.Items = append(r.Items, itemID)
}

// RemoveItem deletes one occurrence of item id, preserving order.
func (r *Room) RemoveItem(itemID string) bool {
	for i, id := range r.Items {
		if id == itemID {
			r.Items = append(r.Items[:i], r.Items[i+1:]...)
			return true
		}
	}
	return false
}

// World owns the runtime room graph and the current-room pointer.
// Exactly one World exists per session, owned by the Engine.
type World struct {
	Rooms   map[string]*Room
	Current string
}

// NewWorld instantiates runtime rooms from the catalog: item lists are
// copied, enemies are stamped from their templates, chests get their own
// mutable opened flag.
func NewWorld(cat *catalog.Catalog) *World {
	w := &World{
		Rooms:   make(map[string]*Room, len(cat.Rooms)),
		Current: cat.StartingRoom,
	}
	for id, def := range cat.Rooms {
		room := &Room{Def: def}
		room.Items = append([]string(nil), def.Items...)
		if def.EnemyID != "" {
			room.Enemy = NewEnemy(cat.Enemy(def.EnemyID))
		}
		if def.Chest != nil {
			room.Chest = NewChest(def.Chest)
		}
		w.Rooms[id] = room
	}
	return w
}

// CurrentRoom returns the room the player occupies.
func (w *World) CurrentRoom() *Room {
	return w.Rooms[w.Current]
}

// VisitedIDs returns the ids of every visited room, for the map view.
func (w *World) VisitedIDs() []string {
	var ids []string
	for id, room := range w.Rooms {
		if room.Visited {
			ids = append(ids, id)
		}
	}
	return ids
}
