// Command hexboard renders a Chinese-checkers board to a PNG file.
//
// Settings come from an optional config file (JSON, YAML or TOML), then
// HEXBOARD_* environment variables, then command-line flags.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/checkers"
	"github.com/gogpu/checkers/canvas"
	"github.com/gogpu/checkers/internal/config"
)

func main() {
	var (
		configPath = flag.String("config", "", "config file (json, yaml or toml)")
		size       = flag.Int("size", 640, "board size in pixels")
		output     = flag.String("output", "hexboard.png", "output file")
		labels     = flag.Bool("labels", false, "draw slot labels")
		identity   = flag.String("identity", "cell", "slot identity: cell or legacy-xy")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Explicit flags win over the file and the environment.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			cfg.Size = *size
		case "output":
			cfg.Output = *output
		case "labels":
			cfg.Labels = *labels
		case "identity":
			cfg.SlotIdentity = *identity
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	level, _ := cfg.Level()
	checkers.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := render(cfg); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	log.Printf("Board saved to %s (%dx%d)\n", cfg.Output, cfg.Size, cfg.Size)
}

func render(cfg *config.Config) error {
	background, err := canvas.ParseColor(cfg.Background)
	if err != nil {
		return err
	}
	slotColor, err := canvas.ParseColor(cfg.SlotColor)
	if err != nil {
		return err
	}
	border, err := canvas.ParseColor(cfg.Border)
	if err != nil {
		return err
	}
	identity, err := checkers.ParseSlotIdentity(cfg.SlotIdentity)
	if err != nil {
		return err
	}

	canvasOpts := []canvas.Option{canvas.WithBackground(background)}
	boardOpts := []checkers.BoardOption{
		checkers.WithSlotColor(slotColor),
		checkers.WithSlotIdentity(identity),
	}
	if cfg.Labels {
		canvasOpts = append(canvasOpts, canvas.WithLabelFont(cfg.LabelSize))
		boardOpts = append(boardOpts, checkers.WithLabels())
	}

	cv, err := canvas.New(cfg.Size, cfg.Size, canvasOpts...)
	if err != nil {
		return err
	}
	defer func() { _ = cv.Close() }()

	board, err := checkers.NewBoard(cv, boardOpts...)
	if err != nil {
		return err
	}
	if err := board.Generate(border); err != nil {
		return err
	}

	for _, p := range cfg.Players {
		camp := checkers.Camp(p.Quad)
		if camp == nil {
			return fmt.Errorf("player quad %d out of range [0, %d)", p.Quad, checkers.Quads)
		}
		for _, c := range camp {
			if err := drop(board, c, p.Color); err != nil {
				return err
			}
		}
	}
	for _, p := range cfg.Checkers {
		c, err := checkers.ParseCoordinate(p.At)
		if err != nil {
			return err
		}
		if err := drop(board, c, p.Color); err != nil {
			return err
		}
	}

	if err := board.NewGame(); err != nil {
		return err
	}
	return cv.SavePNG(cfg.Output)
}

func drop(board *checkers.Board, at checkers.Coordinate, name string) error {
	col, err := canvas.ParseColor(name)
	if err != nil {
		return err
	}
	ch, err := checkers.NewChecker(board, col)
	if err != nil {
		return err
	}
	if err := ch.Drop(at); err != nil {
		return fmt.Errorf("drop %v: %w", at, err)
	}
	return nil
}
