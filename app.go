package main

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"gridlife/model"
	"gridlife/utils"
)

// historyLen bounds how many generation hashes are kept for stagnation checks.
const historyLen = 5

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// tickMsg triggers one simulation tick.
type tickMsg time.Time

// tickCmd schedules the next tick message after the configured delay.
func tickCmd(rate time.Duration) tea.Cmd {
	return tea.Tick(rate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// app drives the terminal UI: it holds the current generation, advances it
// once per tick while running, and renders grid plus status every frame.
type app struct {
	config   utils.Config
	rng      *rand.Rand
	grid     *model.Grid
	renderer model.Renderer
	stats    *utils.Stats

	history       []string // hashes of recent generations, newest last
	running       bool
	cycles        int
	stagnantCount int
	lastStep      time.Time
}

func newApp(config utils.Config, rng *rand.Rand) (*app, error) {
	grid, err := model.NewRandom(config.Width, config.Height, config.AliveProbability, rng)
	if err != nil {
		return nil, errors.Wrap(err, "[newApp] failed to build initial grid")
	}

	aliveGlyph, deadGlyph := config.Glyphs()
	return &app{
		config:   config,
		rng:      rng,
		grid:     grid,
		renderer: model.NewRenderer(aliveGlyph, deadGlyph),
		stats:    utils.NewStats(),
		lastStep: time.Now(),
	}, nil
}

// Init starts the tick loop.
func (a *app) Init() tea.Cmd {
	return tickCmd(a.config.TickRate)
}

// Update handles tick and key messages.
func (a *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if a.running {
			a.step()
		}
		return a, tickCmd(a.config.TickRate)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "r":
			a.running = true
		case "s":
			a.running = false
		case " ":
			a.running = !a.running
		case "n":
			if !a.running {
				a.step()
			}
		case "?":
			a.reseed()
		}
	}
	return a, nil
}

// step advances the simulation by one generation.
func (a *app) step() {
	a.history = append(a.history, a.grid.Hash())
	if len(a.history) > historyLen {
		a.history = a.history[1:]
	}

	next := a.grid.UpdateStates()
	a.cycles++
	a.stats.Update(a.cycles, next.Population(), time.Since(a.lastStep))
	a.lastStep = time.Now()

	if a.repeatsRecentGeneration(next) {
		a.stagnantCount++
	} else {
		a.stagnantCount = 0
	}
	a.grid = next
}

// repeatsRecentGeneration reports whether g matches one of the last few
// generations, which catches static boards and short-period oscillators.
func (a *app) repeatsRecentGeneration(g *model.Grid) bool {
	hash := g.Hash()
	for i := len(a.history) - 1; i >= 0 && i >= len(a.history)-3; i-- {
		if a.history[i] == hash {
			return true
		}
	}
	return false
}

// reseed replaces the board with a fresh random generation and resets the
// cycle counter and stagnation history.
func (a *app) reseed() {
	grid, err := model.NewRandom(a.config.Width, a.config.Height, a.config.AliveProbability, a.rng)
	if err != nil {
		// Config was validated at startup, so this cannot happen; keep the
		// current board rather than crash the UI.
		return
	}
	a.grid = grid
	a.cycles = 0
	a.history = nil
	a.stagnantCount = 0
	a.stats = utils.NewStats()
}

// status summarizes the board for the footer.
func (a *app) status() string {
	switch {
	case a.grid.Population() == 0:
		return "Extinct"
	case a.stagnantCount >= a.config.StagnationThreshold:
		return "Stagnant"
	case !a.running:
		return "Paused"
	default:
		return "Active"
	}
}

// View renders the title, the grid, and a status footer with key bindings.
func (a *app) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(" Game of Life "))
	b.WriteByte('\n')
	b.WriteString(a.renderer.Render(a.grid))
	b.WriteString(fmt.Sprintf("Gen: %d | Population: %d | %.1f gen/sec | Status: %s\n",
		a.cycles, a.grid.Population(), a.stats.GenerationsPerSecond, statusStyle.Render(a.status())))
	b.WriteString(helpLine())
	b.WriteByte('\n')
	return b.String()
}

// helpLine lists the key bindings in the footer.
func helpLine() string {
	bindings := []struct{ key, action string }{
		{"q", "quit"},
		{"r", "run"},
		{"s", "stop"},
		{"space", "pause/resume"},
		{"n", "step"},
		{"?", "reseed"},
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, fmt.Sprintf("%s %s", keyStyle.Render("<"+b.key+">"), b.action))
	}
	return strings.Join(parts, "  ")
}
