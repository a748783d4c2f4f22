package main

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/oregontales/roadtrip/pkg/engine"
	"github.com/oregontales/roadtrip/pkg/state"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Padding(0, 1)

	statsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	locationStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			Padding(0, 1)

	menuStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Padding(0, 1)

	eventStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("220")).
			Padding(1, 2)

	gameOverStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(1, 2)
)

type uiMode int

const (
	modeMenu uiMode = iota
	modeTravel
	modeActivity
)

type snapshotMsg struct {
	snap *engine.Snapshot
	err  error
}

type actionDoneMsg struct {
	result *engine.ActionResult
	err    error
}

// ConsoleUI is the interactive game client. It renders the session
// snapshot and translates key presses into API calls.
type ConsoleUI struct {
	cfg      *ConsoleConfig
	client   *http.Client
	snap     *engine.Snapshot
	viewport viewport.Model
	mode     uiMode
	busy     bool
	errMsg   string
	width    int
	height   int
	ready    bool
}

func NewConsoleUI(cfg *ConsoleConfig, client *http.Client, snap *engine.Snapshot) *ConsoleUI {
	return &ConsoleUI{
		cfg:    cfg,
		client: client,
		snap:   snap,
	}
}

func (ui *ConsoleUI) Init() tea.Cmd {
	return nil
}

func (ui *ConsoleUI) refreshCmd() tea.Cmd {
	id := ui.snap.ID
	return func() tea.Msg {
		snap, err := getGame(ui.client, ui.cfg.APIBaseURL, id)
		return snapshotMsg{snap: snap, err: err}
	}
}

func (ui *ConsoleUI) actionCmd(action string, body any) tea.Cmd {
	id := ui.snap.ID
	return func() tea.Msg {
		result, err := postAction(ui.client, ui.cfg.APIBaseURL, id, action, body)
		return actionDoneMsg{result: result, err: err}
	}
}

func (ui *ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		ui.width = msg.Width
		ui.height = msg.Height
		logHeight := msg.Height - 10
		if logHeight < 3 {
			logHeight = 3
		}
		if !ui.ready {
			ui.viewport = viewport.New(msg.Width-2, logHeight)
			ui.ready = true
		} else {
			ui.viewport.Width = msg.Width - 2
			ui.viewport.Height = logHeight
		}
		ui.setLogContent()
		return ui, nil

	case snapshotMsg:
		ui.busy = false
		if msg.err != nil {
			ui.errMsg = msg.err.Error()
			return ui, nil
		}
		ui.snap = msg.snap
		ui.setLogContent()
		return ui, nil

	case actionDoneMsg:
		if msg.err != nil {
			ui.busy = false
			ui.errMsg = msg.err.Error()
			return ui, nil
		}
		// Pull the full snapshot so location and activities stay current.
		return ui, ui.refreshCmd()

	case tea.KeyMsg:
		return ui.handleKey(msg)
	}

	var cmd tea.Cmd
	ui.viewport, cmd = ui.viewport.Update(msg)
	return ui, cmd
}

func (ui *ConsoleUI) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" || key == "q" {
		return ui, tea.Quit
	}
	if ui.busy {
		return ui, nil
	}
	ui.errMsg = ""

	// A pending event blocks everything until acknowledged.
	if ui.snap.Event != nil {
		if key == "enter" || key == "esc" {
			ui.busy = true
			return ui, ui.actionCmd("ack", nil)
		}
		return ui, nil
	}

	if ui.snap.GameOver != state.ReasonNone {
		if key == "R" {
			ui.busy = true
			ui.mode = modeMenu
			return ui, ui.actionCmd("restart", nil)
		}
		return ui, nil
	}

	switch ui.mode {
	case modeTravel:
		return ui.handlePick(key, ui.travelChoices(), func(id string) tea.Cmd {
			return ui.actionCmd("travel", map[string]string{"destination": id})
		})
	case modeActivity:
		return ui.handlePick(key, ui.activityChoices(), func(id string) tea.Cmd {
			return ui.actionCmd("activity", map[string]string{"activity_id": id})
		})
	}

	switch key {
	case "t":
		if len(ui.travelChoices()) > 0 {
			ui.mode = modeTravel
		}
	case "a":
		if len(ui.activityChoices()) > 0 {
			ui.mode = modeActivity
		}
	case "r":
		ui.busy = true
		return ui, ui.actionCmd("rest", nil)
	case "s":
		ui.busy = true
		return ui, ui.actionCmd("save", nil)
	case "R":
		ui.busy = true
		return ui, ui.actionCmd("restart", nil)
	case "up", "down", "pgup", "pgdown":
		var cmd tea.Cmd
		ui.viewport, cmd = ui.viewport.Update(msg)
		return ui, cmd
	}
	return ui, nil
}

type choice struct {
	id    string
	label string
}

func (ui *ConsoleUI) handlePick(key string, choices []choice, act func(id string) tea.Cmd) (tea.Model, tea.Cmd) {
	if key == "esc" {
		ui.mode = modeMenu
		return ui, nil
	}
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		idx := int(key[0] - '1')
		if idx < len(choices) {
			ui.mode = modeMenu
			ui.busy = true
			return ui, act(choices[idx].id)
		}
	}
	return ui, nil
}

func (ui *ConsoleUI) travelChoices() []choice {
	if ui.snap.Location == nil {
		return nil
	}
	choices := make([]choice, 0, len(ui.snap.Location.Connections))
	for _, destID := range sortedKeys(ui.snap.Location.Connections) {
		cost := ui.snap.Location.Connections[destID]
		choices = append(choices, choice{id: destID, label: fmt.Sprintf("%s (%d fuel)", destID, cost)})
	}
	return choices
}

func (ui *ConsoleUI) activityChoices() []choice {
	choices := make([]choice, 0, len(ui.snap.Activities))
	for _, a := range ui.snap.Activities {
		choices = append(choices, choice{id: a.ID, label: fmt.Sprintf("%s %s", a.Icon, a.Name)})
	}
	return choices
}

func (ui *ConsoleUI) setLogContent() {
	if !ui.ready {
		return
	}
	var b strings.Builder
	for _, line := range ui.snap.Log {
		b.WriteString(wordwrap.String(line, ui.viewport.Width))
		b.WriteString("\n")
	}
	ui.viewport.SetContent(b.String())
	ui.viewport.GotoBottom()
}

func (ui *ConsoleUI) View() string {
	if !ui.ready {
		return "Loading..."
	}

	var sections []string
	sections = append(sections, titleStyle.Render("🚗 Oregon Tales"))
	sections = append(sections, statsStyle.Render(ui.statsLine()))
	sections = append(sections, locationStyle.Render(ui.locationLine()))
	sections = append(sections, ui.viewport.View())

	switch {
	case ui.snap.Event != nil:
		sections = append(sections, ui.eventModal())
	case ui.snap.GameOver != state.ReasonNone:
		sections = append(sections, ui.gameOverModal())
	default:
		sections = append(sections, menuStyle.Render(ui.helpLine()))
	}

	if ui.errMsg != "" {
		sections = append(sections, errorStyle.Render("Error: "+ui.errMsg))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (ui *ConsoleUI) statsLine() string {
	p := ui.snap.State
	return fmt.Sprintf("⛽ %d  🪙 $%d  🍿 %d  ✨ %d  🔧 %d  📅 Day %d (%s)",
		p.Fuel, p.Money, p.Snacks, p.Vibes, p.CarHealth, p.DaysTraveled, p.TimeOfDay)
}

func (ui *ConsoleUI) locationLine() string {
	loc := ui.snap.Location
	if loc == nil {
		return "📍 Unknown"
	}
	return fmt.Sprintf("📍 %s %s - %s", loc.Icon, loc.Name, loc.Description)
}

func (ui *ConsoleUI) helpLine() string {
	switch ui.mode {
	case modeTravel:
		return pickHelp("Travel to", ui.travelChoices())
	case modeActivity:
		return pickHelp("Do", ui.activityChoices())
	}
	if ui.busy {
		return "..."
	}
	return "[t] travel  [a] activity  [r] rest  [s] save  [R] restart  [q] quit"
}

func pickHelp(verb string, choices []choice) string {
	var b strings.Builder
	b.WriteString(verb + ": ")
	for i, c := range choices {
		if i > 0 {
			b.WriteString("  ")
		}
		fmt.Fprintf(&b, "[%d] %s", i+1, c.label)
	}
	b.WriteString("  [esc] back")
	return b.String()
}

func (ui *ConsoleUI) eventModal() string {
	ev := ui.snap.Event
	icon := ev.Icon
	if icon == "" {
		icon = "💬"
	}
	body := fmt.Sprintf("%s EVENT\n\n%s\n\n[enter] continue", icon, wordwrap.String(ev.Message, 50))
	return eventStyle.Render(body)
}

func (ui *ConsoleUI) gameOverModal() string {
	var reason string
	switch ui.snap.GameOver {
	case state.ReasonLostVibes:
		reason = "The road trip spirit is gone. Vibes hit rock bottom."
	case state.ReasonLostFuelCash:
		reason = "Stranded! No fuel and not enough money to fill up."
	case state.ReasonLostCar:
		reason = "The car has given up the ghost."
	default:
		reason = "The journey has ended."
	}
	body := fmt.Sprintf("GAME OVER\n\n%s\n\n[R] restart  [q] quit", reason)
	return gameOverStyle.Render(body)
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
