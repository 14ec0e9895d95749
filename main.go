// ascii-rogue is a single-player terminal dungeon crawl. Find and kill the
// Ancient Dragon in the last room to win.
//
// Usage:
//
//	ascii-rogue [-config rogue.yaml] [-seed N] [-log rogue.log]
//
// Settings are read from defaults, then the YAML file, then ROGUE_*
// environment variables, then -seed.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"ascii-rogue/internal/config"
	"ascii-rogue/internal/game"
	"ascii-rogue/internal/tui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	seed := flag.Int64("seed", 0, "Dungeon seed (0 picks one at random)")
	logPath := flag.String("log", "", "Write diagnostics to this file")
	flag.Parse()

	closeLog, err := setupLog(*logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(*configPath, *seed); err != nil {
		log.Printf("fatal: %v", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

func run(configPath string, seed int64) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if err := cfg.ResolveSeed(); err != nil {
		return err
	}
	log.Printf("config: file=%q seed=%d grid=%dx%d attempts=%d", configPath, cfg.Seed, cfg.Width, cfg.Height, cfg.MaxRooms)

	session, err := game.New(cfg.Game())
	if errors.Is(err, game.ErrGenerationExhausted) {
		return fmt.Errorf("seed %d: %w", cfg.Seed, err)
	}
	if err != nil {
		return err
	}
	log.Printf("dungeon: %d rooms, %d monsters, %d items",
		len(session.Map().Rooms), len(session.Monsters()), len(session.Items()))

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	status := tui.New(screen).Play(session)
	screen.Fini()

	rl := session.RunLog()
	log.Printf("finished: status=%s seed=%d turns=%d kills=%d dealt=%d taken=%d",
		status, rl.Seed, rl.TurnsPlayed, rl.TotalKills(), rl.DamageDealt, rl.DamageTaken)
	fmt.Printf("%s after %d turns (seed %d)\n", status, rl.TurnsPlayed, rl.Seed)
	return nil
}

// setupLog points the standard logger at path, or discards output when path
// is empty. The terminal belongs to the game while it runs.
func setupLog(path string) (func(), error) {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}
