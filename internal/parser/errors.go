package parser

import (
	"fmt"
	"strings"
)

// MapError takes a raw input and a participle error, and returns a human-friendly guidance message.
func MapError(input string, err error) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("I wasn't able to understand your command")
	}

	parts := strings.Fields(strings.ToLower(input))
	cmd := parts[0]

	switch cmd {
	case "move", "go", "walk":
		return fmt.Errorf("The command move must be: move <north|south|east|west|up|down>")
	case "look", "examine":
		return fmt.Errorf("The command look must be: look [target]")
	case "take", "get", "grab":
		return fmt.Errorf("The command take must be: take <item|all>")
	case "drop":
		return fmt.Errorf("The command drop must be: drop <item>")
	case "use":
		return fmt.Errorf("The command use must be: use <item>")
	case "equip", "wield", "wear":
		return fmt.Errorf("The command equip must be: equip <item>")
	case "unequip", "remove":
		return fmt.Errorf("The command unequip must be: unequip <weapon|armor>")
	case "open":
		return fmt.Errorf("The command open must be: open [chest]")
	case "buy":
		return fmt.Errorf("The command buy must be: buy <item>")
	case "sell":
		return fmt.Errorf("The command sell must be: sell <item>")
	case "gamble", "bet", "play":
		return fmt.Errorf("The command gamble must be: gamble <highlow|skulls|glory> <bet> [high|low|seven]")
	}

	return fmt.Errorf("I wasn't able to understand your command")
}
