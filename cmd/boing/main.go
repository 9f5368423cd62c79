package main

import (
	"fmt"
	"os"

	"github.com/diegok/boing/internal/app"
	"github.com/diegok/boing/internal/config"
	"github.com/diegok/boing/internal/logging"
)

func main() {
	cfg, err := config.Load(os.Args[1:], config.DefaultEnvFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	logFile, err := logging.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	application := app.NewApp(cfg)
	runErr := application.Run()
	logFile.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  boing [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --points <n>        Points to win, 1-99 (default: 10)")
	fmt.Fprintln(os.Stderr, "  --volume <v>        Sound volume, 0-1 (default: 0.3)")
	fmt.Fprintln(os.Stderr, "  --mute              Disable sound")
	fmt.Fprintln(os.Stderr, "  --log <file>        Write logs to file")
	fmt.Fprintln(os.Stderr, "  --log-level <lvl>   debug, info, warn or error (default: info)")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Defaults can also come from BOING_POINTS, BOING_VOLUME, BOING_MUTE,")
	fmt.Fprintln(os.Stderr, "BOING_LOG and BOING_LOG_LEVEL, in the environment or a .env file.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls:")
	fmt.Fprintln(os.Stderr, "  Player 1            Up/Down arrows, A/Z or W/S")
	fmt.Fprintln(os.Stderr, "  Player 2            K/M")
	fmt.Fprintln(os.Stderr, "  Start / continue    Space or Enter")
	fmt.Fprintln(os.Stderr, "  Quit                Q or Esc")
}
