package catalog

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed content/*.yaml
var embedded embed.FS

// Loader reads catalog files from an ordered data directory fallback
// chain, with the embedded default dungeon as the last resort.
type Loader struct {
	dataDirs []string
}

// NewLoader initializes a Loader with the given fallback hierarchy.
// A nil or empty list means only the embedded content is consulted.
func NewLoader(dataDirs []string) *Loader {
	return &Loader{dataDirs: dataDirs}
}

type roomsFile struct {
	StartingRoom string  `yaml:"starting_room"`
	WinCondition string  `yaml:"win_condition"`
	Rooms        []*Room `yaml:"rooms"`
}

type itemsFile struct {
	Items []*Item `yaml:"items"`
}

type enemiesFile struct {
	Enemies []*Enemy `yaml:"enemies"`
}

// Load reads rooms.yaml, items.yaml, and enemies.yaml, builds the
// Catalog, and validates referential integrity across the three
// collections. Validation failure is a load-time error, not a warning.
func (l *Loader) Load() (*Catalog, error) {
	var rf roomsFile
	if err := l.read("rooms.yaml", &rf); err != nil {
		return nil, err
	}
	var inf itemsFile
	if err := l.read("items.yaml", &inf); err != nil {
		return nil, err
	}
	var ef enemiesFile
	if err := l.read("enemies.yaml", &ef); err != nil {
		return nil, err
	}

	cat := &Catalog{
		StartingRoom: rf.StartingRoom,
		WinCondition: rf.WinCondition,
		Rooms:        make(map[string]*Room, len(rf.Rooms)),
		Items:        make(map[string]*Item, len(inf.Items)),
		Enemies:      make(map[string]*Enemy, len(ef.Enemies)),
	}

	for _, it := range inf.Items {
		if _, dup := cat.Items[it.ID]; dup {
			return nil, fmt.Errorf("duplicate item id %q", it.ID)
		}
		cat.Items[it.ID] = it
	}
	for _, en := range ef.Enemies {
		if _, dup := cat.Enemies[en.ID]; dup {
			return nil, fmt.Errorf("duplicate enemy id %q", en.ID)
		}
		cat.Enemies[en.ID] = en
	}
	for _, rm := range rf.Rooms {
		if _, dup := cat.Rooms[rm.ID]; dup {
			return nil, fmt.Errorf("duplicate room id %q", rm.ID)
		}
		cat.Rooms[rm.ID] = rm
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

func (l *Loader) read(ref string, target any) error {
	for _, dir := range l.dataDirs {
		path := filepath.Join(dir, ref)
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(target); err != nil {
			return fmt.Errorf("failed to decode %s: %w", path, err)
		}
		return nil
	}

	data, err := embedded.ReadFile("content/" + ref)
	if err != nil {
		return fmt.Errorf("no %s in any data directory and no embedded fallback: %w", ref, err)
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to decode embedded %s: %w", ref, err)
	}
	return nil
}
