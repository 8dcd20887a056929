package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"go.uber.org/zap"

	"basement/pkg/engine/input"
	"basement/pkg/engine/terminal"
	"basement/pkg/engine/world"
	"basement/pkg/game/behavior"
	"basement/pkg/game/config"
	"basement/pkg/game/content"
	"basement/pkg/game/devtools"
	"basement/pkg/game/gameplay"
	"basement/pkg/game/generator"
	"basement/pkg/game/level"
	"basement/pkg/game/state"
)

// statusLines is the height taken by everything drawn below the map
const statusLines = 9

func main() {
	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log, err := cfg.Logger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Error("basement exited", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	if !cfg.Color || !terminal.IsTerminal() {
		color.Disable()
	}

	tables, err := loadTables(cfg.ContentPath)
	if err != nil {
		return err
	}
	registry := behavior.Default()
	if err := registry.Validate(tables); err != nil {
		return err
	}

	seed := cfg.SeedValue(time.Now)
	if cfg.Soak > 0 {
		return soak(cfg, tables, registry, seed, log)
	}

	l, err := buildLevel(cfg, tables, registry, seed, log)
	if err != nil {
		return err
	}
	log.Info("level ready", zap.Int64("seed", seed), zap.Int("rooms", len(l.TileMap().Rooms())))

	if cfg.Dump || cfg.DumpPath != "" {
		return dump(cfg, l)
	}
	return play(cfg, l, os.Stdin, os.Stdout)
}

func loadTables(path string) (*content.Tables, error) {
	if path == "" {
		return content.Default()
	}
	return content.LoadFile(path)
}

// buildLevel generates a map from seed and populates a level on it
func buildLevel(cfg config.Config, tables *content.Tables, registry *behavior.Registry, seed int64, log *zap.Logger) (*level.Level, error) {
	tm, err := generator.Generate(generator.Options{
		Size:             world.Size{W: cfg.Width, H: cfg.Height},
		DoorsOpen:        cfg.DoorsOpen,
		EngraveDivisions: cfg.Debug,
		Tables:           tables,
		Rand:             rand.New(rand.NewSource(seed)),
		Logger:           log,
	})
	if err != nil {
		return nil, fmt.Errorf("generating level with seed %d: %w", seed, err)
	}
	return level.New(tm, tables, registry, level.Options{
		SightRadius: cfg.SightRadius,
		Rand:        rand.New(rand.NewSource(seed + 1)),
		Logger:      log,
	})
}

func dump(cfg config.Config, l *level.Level) error {
	if cfg.DumpPath != "" {
		path, err := devtools.DumpToFile(l, cfg.DumpPath)
		if err != nil {
			return err
		}
		fmt.Println("Map dump written to", path)
		return nil
	}
	fmt.Print(devtools.RenderMap(l.TileMap(), devtools.RenderOptions{Color: cfg.Color, Debug: cfg.Debug}))
	return nil
}

// play runs the turn loop until the session ends or input runs out
func play(cfg config.Config, l *level.Level, in io.Reader, out io.Writer) error {
	g := state.NewGame(l)
	reader := input.NewReader(in)

	for {
		frame(cfg, g, out, reader.Interactive())
		if g.Over() {
			return nil
		}

		intent, err := reader.Next()
		if errors.Is(err, io.EOF) || errors.Is(err, input.ErrInterrupted) {
			return nil
		}
		if err != nil {
			return err
		}
		g.ClearMessages()
		gameplay.ProcessIntent(g, intent)
	}
}

func frame(cfg config.Config, g *state.Game, out io.Writer, interactive bool) {
	if interactive {
		fmt.Fprint(out, "\x1b[H\x1b[2J")
	}
	w, h := terminal.GetSize()
	fmt.Fprint(out, devtools.RenderLevel(g.Level, devtools.RenderOptions{
		Color:  cfg.Color,
		Fog:    true,
		Width:  w,
		Height: h - statusLines,
		Debug:  cfg.Debug,
	}))

	player := g.Level.Player()
	fmt.Fprintf(out, "\nHP %d/%d  Gold %d  Turn %d\n\n",
		player.State.HP, player.Stats.HPMax, g.Level.Score(), g.Turn)
	fmt.Fprintln(out, strings.Join(g.Messages, "\n"))
	if !g.Over() {
		fmt.Fprintf(out, "\n%s\n> ", gotext.Get("PROMPT"))
	}
}
