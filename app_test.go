package main

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gridlife/model"
	"gridlife/utils"
)

func testApp(t *testing.T) *app {
	t.Helper()

	config := utils.DefaultConfig()
	config.Width = 10
	config.Height = 8

	a, err := newApp(config, rand.New(rand.NewPCG(1, 0)))
	if err != nil {
		t.Fatalf("newApp: %v", err)
	}
	return a
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{key("q"), {Type: tea.KeyCtrlC}} {
		a := testApp(t)
		_, cmd := a.Update(msg)
		if cmd == nil {
			t.Fatalf("key %q produced no command, want quit", msg.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("key %q produced %T, want tea.QuitMsg", msg.String(), cmd())
		}
	}
}

func TestRunStopAndToggleKeys(t *testing.T) {
	a := testApp(t)

	a.Update(key("r"))
	if !a.running {
		t.Fatal("'r' did not start the simulation")
	}

	a.Update(key("s"))
	if a.running {
		t.Fatal("'s' did not stop the simulation")
	}

	a.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	if !a.running {
		t.Fatal("space did not resume the simulation")
	}
	a.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	if a.running {
		t.Fatal("space did not pause the simulation")
	}
}

func TestStepKeyAdvancesOneGenerationWhilePaused(t *testing.T) {
	a := testApp(t)
	before := a.grid.Hash()

	a.Update(key("n"))
	if a.cycles != 1 {
		t.Fatalf("cycles = %d after 'n', want 1", a.cycles)
	}
	if a.grid.Hash() == before {
		t.Fatal("'n' did not advance the grid")
	}

	// While running, ticks own the clock and 'n' is ignored.
	a.running = true
	a.Update(key("n"))
	if a.cycles != 1 {
		t.Fatalf("cycles = %d, want 1: 'n' must be a no-op while running", a.cycles)
	}
}

func TestTickAdvancesOnlyWhileRunning(t *testing.T) {
	a := testApp(t)

	_, cmd := a.Update(tickMsg(time.Now()))
	if a.cycles != 0 {
		t.Fatalf("paused tick advanced the grid to cycle %d", a.cycles)
	}
	if cmd == nil {
		t.Fatal("tick did not reschedule itself")
	}

	a.running = true
	a.Update(tickMsg(time.Now()))
	if a.cycles != 1 {
		t.Fatalf("cycles = %d after running tick, want 1", a.cycles)
	}
}

func TestReseedKeyResetsTheRun(t *testing.T) {
	a := testApp(t)
	a.Update(key("n"))
	a.Update(key("n"))
	if a.cycles != 2 {
		t.Fatalf("cycles = %d, want 2", a.cycles)
	}

	a.Update(key("?"))
	if a.cycles != 0 {
		t.Fatalf("cycles = %d after reseed, want 0", a.cycles)
	}
	if len(a.history) != 0 {
		t.Fatal("reseed did not clear the stagnation history")
	}
	if a.grid.Width() != 10 || a.grid.Height() != 8 {
		t.Fatalf("reseeded grid is %dx%d, want 10x8", a.grid.Width(), a.grid.Height())
	}
}

func TestStagnationDetection(t *testing.T) {
	a := testApp(t)
	a.config.StagnationThreshold = 2
	a.running = true

	// A block still life repeats itself every generation.
	block, err := model.NewEmpty(10, 8)
	if err != nil {
		t.Fatalf("NewEmpty: %v", err)
	}
	for _, p := range [][2]int{{2, 2}, {3, 2}, {2, 3}, {3, 3}} {
		if err := block.Set(p[0], p[1], model.Alive); err != nil {
			t.Fatalf("Set(%d, %d): %v", p[0], p[1], err)
		}
	}
	a.grid = block

	for range 5 {
		a.step()
	}
	if a.stagnantCount < a.config.StagnationThreshold {
		t.Fatalf("stagnant count = %d, want >= %d", a.stagnantCount, a.config.StagnationThreshold)
	}
	if a.status() != "Stagnant" {
		t.Fatalf("status = %q, want Stagnant", a.status())
	}
}

func TestExtinctStatus(t *testing.T) {
	a := testApp(t)

	// A lone cell dies of isolation in one generation.
	lone, err := model.NewEmpty(10, 8)
	if err != nil {
		t.Fatalf("NewEmpty: %v", err)
	}
	if err := lone.Set(4, 4, model.Alive); err != nil {
		t.Fatalf("Set: %v", err)
	}
	a.grid = lone

	a.step()
	if a.grid.Population() != 0 {
		t.Fatalf("population = %d, want 0", a.grid.Population())
	}
	if a.status() != "Extinct" {
		t.Fatalf("status = %q, want Extinct", a.status())
	}
}

func TestViewContainsGridAndStatus(t *testing.T) {
	a := testApp(t)
	view := a.View()

	if !strings.Contains(view, "Game of Life") {
		t.Fatal("view is missing the title")
	}
	if !strings.Contains(view, "Population:") {
		t.Fatal("view is missing the status footer")
	}
	if !strings.Contains(view, "pause/resume") {
		t.Fatal("view is missing the key bindings")
	}
}
