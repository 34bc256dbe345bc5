package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/conwaypad/go-life/model"
	"github.com/conwaypad/go-life/utils"
)

const configFileName = "golife.yaml"

// Process exit codes
const (
	exitSuccess = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run wires configuration, board loading and the interactive loop together
// and maps every failure onto an exit code. Errors surface exactly once,
// here, after the screen has been torn down.
func run(args []string) int {
	config, err := utils.LoadConfig(configFileName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitFailure
	}

	if err = config.ParseArgs(args); err != nil {
		if errors.Is(err, utils.ErrUsage) {
			printUsage()
			return exitUsage
		}
		fmt.Fprintln(os.Stderr, err)
		return exitFailure
	}

	grid, err := model.LoadBoard(config.FilePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitFailure
	}

	if err = runScreen(config, grid); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitFailure
	}

	return exitSuccess
}

// runScreen owns the tcell screen lifecycle around the game loop
func runScreen(config utils.Config, grid *model.Grid) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err = screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	runGame(screen, config, grid)
	return nil
}
