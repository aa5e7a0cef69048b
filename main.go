package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gridlife/utils"
)

const defaultConfigPath = "config.json"

func main() {
	// Optional config file layered over defaults; flags override both.
	config, err := utils.LoadConfig(defaultConfigPath)
	if err != nil {
		config = utils.DefaultConfig()
	}

	fs := flag.NewFlagSet("gridlife", flag.ExitOnError)
	config.Bind(fs)
	if err = fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if err = config.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewPCG(uint64(seed), 0))

	game, err := newApp(config, rng)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if _, err = tea.NewProgram(game, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
