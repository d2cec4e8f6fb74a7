package cmd

import (
	"fmt"
	"strings"

	"github.com/kariannharris-star/dungeon-crawlr/internal/engine"
	"github.com/kariannharris-star/dungeon-crawlr/internal/parser"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			MarginBottom(1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999"))

	statusBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(0, 2)

	logBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(0, 1)

	combatStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF5F5F"))

	autocompleteStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#F25D94"))
)

type suggestion string

func (s suggestion) Title() string       { return string(s) }
func (s suggestion) Description() string { return "" }
func (s suggestion) FilterValue() string { return string(s) }

type gameModel struct {
	eng         *engine.Engine
	textInput   textinput.Model
	viewport    viewport.Model
	suggestions list.Model
	history     []string
	historyIdx  int
	logContent  string
	width       int
	height      int
	showList    bool
}

func newGameModel(eng *engine.Engine) gameModel {
	ti := textinput.New()
	ti.Placeholder = "Enter command (e.g., go north, open chest)..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	vp := viewport.New(0, 0)

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetHeight(1)
	delegate.SetSpacing(0)
	sugList := list.New([]list.Item{}, delegate, 50, 7)
	sugList.SetShowTitle(false)
	sugList.SetShowStatusBar(false)
	sugList.SetFilteringEnabled(false)
	sugList.SetShowHelp(false)

	room := eng.CurrentRoom()
	welcome := fmt.Sprintf("Welcome, %s.\nType 'help' for commands, 'quit' to leave.\n\n%s\n%s",
		eng.Player().Name, room.Def.Name, room.Def.Description)
	vp.SetContent(welcome)

	return gameModel{
		eng:         eng,
		textInput:   ti,
		viewport:    vp,
		suggestions: sugList,
		history:     []string{},
		historyIdx:  -1,
		logContent:  welcome,
	}
}

func (m *gameModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *gameModel) updateSuggestions() {
	val := m.textInput.Value()
	var items []list.Item

	defer func() {
		m.suggestions.SetItems(items)
		m.showList = len(items) > 0
		if m.showList {
			h := len(items)
			if h > 7 {
				h = 7
			}
			if h < 4 {
				h = 4
			}
			m.suggestions.SetHeight(h)
			m.suggestions.ResetSelected()
		}
	}()

	if val == "" {
		return
	}

	baseCmds := []string{
		"go north", "go south", "go east", "go west", "go up", "go down",
		"look ", "take ", "take all", "drop ", "use ", "equip ", "unequip weapon",
		"unequip armor", "open chest", "attack", "flee", "inventory", "stats",
		"map", "save", "load", "buy ", "sell ", "shop", "drink",
		"gamble highlow ", "gamble skulls ", "gamble glory ", "help", "quit",
	}
	for _, c := range baseCmds {
		if strings.HasPrefix(c, strings.ToLower(val)) && len(val) < len(c) {
			items = append(items, suggestion(c))
		}
	}

	// Item completion for verbs that take a carried or visible item.
	fields := strings.Fields(strings.ToLower(val))
	if len(fields) >= 1 {
		switch fields[0] {
		case "take", "look", "buy":
			prefix := ""
			if len(fields) == 2 {
				prefix = fields[1]
			}
			room := m.eng.CurrentRoom()
			candidates := append([]string(nil), room.Items...)
			candidates = append(candidates, room.Def.ShopInventory...)
			for _, id := range candidates {
				if strings.HasPrefix(id, prefix) {
					items = append(items, suggestion(fields[0]+" "+id))
				}
			}
		case "use", "drop", "equip", "sell":
			prefix := ""
			if len(fields) == 2 {
				prefix = fields[1]
			}
			for _, s := range m.eng.Player().Inventory {
				if strings.HasPrefix(s.ItemID, prefix) {
					items = append(items, suggestion(fields[0]+" "+s.ItemID))
				}
			}
		}
	}
}

func (m *gameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		lsCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyUp:
			if m.showList {
				m.suggestions, lsCmd = m.suggestions.Update(msg)
			} else if len(m.history) > 0 {
				if m.historyIdx == -1 {
					m.historyIdx = len(m.history) - 1
				} else if m.historyIdx > 0 {
					m.historyIdx--
				}
				m.textInput.SetValue(m.history[m.historyIdx])
				m.updateSuggestions()
			}

		case tea.KeyDown:
			if m.showList {
				m.suggestions, lsCmd = m.suggestions.Update(msg)
			} else if len(m.history) > 0 && m.historyIdx != -1 {
				if m.historyIdx < len(m.history)-1 {
					m.historyIdx++
					m.textInput.SetValue(m.history[m.historyIdx])
				} else {
					m.historyIdx = -1
					m.textInput.SetValue("")
				}
				m.updateSuggestions()
			}

		case tea.KeyTab:
			if m.showList {
				if i, ok := m.suggestions.SelectedItem().(suggestion); ok {
					m.textInput.SetValue(string(i))
					m.textInput.SetCursor(len(string(i)))
					m.updateSuggestions()
				}
			}

		case tea.KeyEnter:
			val := strings.TrimSpace(m.textInput.Value())
			if val != "" {
				if len(m.history) == 0 || m.history[len(m.history)-1] != val {
					m.history = append(m.history, val)
				}
				m.historyIdx = -1
				m.textInput.SetValue("")
				m.updateSuggestions()

				m.logContent += fmt.Sprintf("\n\n> %s\n", val)
				quit := m.execute(val)
				m.viewport.SetContent(m.logContent)
				m.viewport.GotoBottom()
				if quit {
					return m, tea.Quit
				}
			}

		default:
			m.textInput, tiCmd = m.textInput.Update(msg)
			m.updateSuggestions()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 20
		if m.viewport.Height < 5 {
			m.viewport.Height = 5
		}
		m.suggestions.SetWidth(msg.Width - 6)
	}

	m.viewport, vpCmd = m.viewport.Update(msg)

	titleH := lipgloss.Height(titleStyle.Render("Dummy"))
	statusH := lipgloss.Height(m.renderStatus())
	inputH := 1
	listAreaHeight := 0
	if m.showList {
		listAreaHeight = m.suggestions.Height() + 2
	}
	infoH := lipgloss.Height(infoStyle.Render("Dummy"))
	overhead := titleH + statusH + inputH + listAreaHeight + infoH + 8

	m.viewport.Height = m.height - overhead
	if m.viewport.Height < 4 {
		m.viewport.Height = 4
	}

	return m, tea.Batch(tiCmd, vpCmd, lsCmd)
}

// execute parses one line, runs it through the engine, and appends the
// narrative. Returns true when the session should end.
func (m *gameModel) execute(val string) bool {
	cmd, err := parser.Parse(val)
	if err != nil {
		m.logContent += fmt.Sprintf("Error: %v", err)
		return false
	}
	if cmd.Quit != nil {
		return true
	}
	if cmd.Help != nil {
		m.logContent += helpText
		return false
	}

	action, err := cmd.Action()
	if err != nil {
		m.logContent += fmt.Sprintf("Error: %v", err)
		return false
	}
	out, err := m.eng.Do(action)
	if err != nil {
		m.logContent += fmt.Sprintf("%v", err)
		return false
	}
	m.logContent += out.Text
	if out.Terminal != engine.TerminalNone {
		m.logContent += "\n\nThe session is over. Type 'load' to restore a save, or 'quit' to leave."
	}
	return false
}

func (m *gameModel) renderStatus() string {
	p := m.eng.Player()
	line := fmt.Sprintf("%s  Lv %d  HP %d/%d  XP %d/%d  Gold %d",
		p.Name, p.Level, p.HP, p.MaxHP, p.XP, p.XPToNext, p.Gold)
	if p.Cursed {
		line += "  [cursed]"
	}
	if m.eng.InCombat() {
		enemy := m.eng.CombatEnemy()
		line += "\n" + combatStyle.Render(fmt.Sprintf("In combat: %s (%d/%d HP)", enemy.Name, enemy.HP, enemy.MaxHP))
	}
	return statusBoxStyle.Width(m.width - 4).Render(line)
}

func (m *gameModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	title := titleStyle.Render(fmt.Sprintf(" dungeon-crawlr | %s ", m.eng.CurrentRoom().Def.Name))
	statusBox := m.renderStatus()
	logBox := logBoxStyle.Width(m.width - 4).Render(m.viewport.View())

	var inputArea string
	if m.showList {
		inputArea = fmt.Sprintf("%s\n%s", m.textInput.View(), autocompleteStyle.Render(m.suggestions.View()))
	} else {
		inputArea = m.textInput.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		statusBox,
		logBox,
		"\n",
		inputArea,
		infoStyle.Render("(esc to quit, tab to complete, up/down history)"),
	)
}

const helpText = `Commands:
  go <direction>        move (north, south, east, west, up, down)
  look [target]         describe the room or a thing in it
  take <item|all>       pick things up      drop <item>   leave one behind
  use <item>            drink/throw a consumable
  equip <item>          wield or wear       unequip <weapon|armor>
  open chest            try your luck
  attack / flee         combat
  inventory / stats / map
  save / load
  buy <item> / sell <item> / shop   (at the emporium)
  drink                 (at a fountain)
  gamble <highlow|skulls|glory> <bet> [high|low|seven]   (at the tavern)`

// RunTUI starts the interactive session over the given engine.
func RunTUI(eng *engine.Engine) error {
	m := newGameModel(eng)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
