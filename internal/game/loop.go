// Package game runs puzzle rounds: load the pool, generate, render.
package game

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/f3rmion/fourzi/internal/fourzi"
	"github.com/f3rmion/fourzi/internal/generator"
	"github.com/f3rmion/fourzi/internal/phrases"
	"github.com/f3rmion/fourzi/internal/pinyin"
	"github.com/f3rmion/fourzi/internal/render"
)

// RoundGenerator produces puzzle rounds, with or without their answers.
type RoundGenerator interface {
	generator.WordsGenerator
	GenerateRound() fourzi.Round
}

// GeneratorFactory builds a generator for a loaded pool.
type GeneratorFactory func(pool fourzi.Pool) RoundGenerator

// Settings controls what a Loop prints per round.
type Settings struct {
	Rounds int  // Rounds to play; values below 1 play one round
	Reveal bool // Print the hidden phrases after the grid
	Pinyin bool // Annotate revealed phrases with readings
	Copy   bool // Copy the plain grid to the clipboard
}

// Loop wires a phrase source, a generator and a renderer together.
type Loop struct {
	loader    phrases.Loader
	build     GeneratorFactory
	renderer  render.Renderer
	out       io.Writer
	settings  Settings
	clipboard func(string) error
}

// NewLoop creates a game loop writing to out.
func NewLoop(loader phrases.Loader, build GeneratorFactory, renderer render.Renderer, out io.Writer, settings Settings) *Loop {
	return &Loop{
		loader:   loader,
		build:    build,
		renderer: renderer,
		out:      out,
		settings: settings,
	}
}

// SetClipboard sets the function used when Settings.Copy is on.
func (l *Loop) SetClipboard(fn func(string) error) {
	l.clipboard = fn
}

// Run loads the pool once and plays the configured number of rounds. It
// returns the rounds played.
func (l *Loop) Run(ctx context.Context) ([]fourzi.Round, error) {
	pool, err := l.loader.LoadPhrases(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading phrases: %w", err)
	}
	log.Debug().Int("phrases", len(pool)).Msg("loaded phrase pool")

	gen := l.build(pool)

	var ann *pinyin.Annotator
	if l.settings.Pinyin {
		ann = pinyin.NewAnnotator()
	}

	total := max(l.settings.Rounds, 1)
	rounds := make([]fourzi.Round, 0, total)
	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return rounds, err
		}

		round := gen.GenerateRound()
		rounds = append(rounds, round)
		log.Debug().
			Int("round", i).
			Int("selected", len(round.Selected)).
			Int("rows", round.Grid.Rows()).
			Msg("generated round")

		if err := l.show(i, total, round, ann); err != nil {
			return rounds, err
		}
	}

	return rounds, nil
}

func (l *Loop) show(i, total int, round fourzi.Round, ann *pinyin.Annotator) error {
	if total > 1 {
		if _, err := fmt.Fprintf(l.out, "Round %d/%d\n", i, total); err != nil {
			return err
		}
	}

	if err := l.renderer.Render(l.out, round.Grid); err != nil {
		return fmt.Errorf("rendering grid: %w", err)
	}

	if l.settings.Reveal {
		if err := render.Answers(l.out, round, ann); err != nil {
			return fmt.Errorf("rendering answers: %w", err)
		}
	}

	if l.settings.Copy && l.clipboard != nil {
		if err := l.clipboard(round.Grid.String()); err != nil {
			log.Warn().Err(err).Msg("could not copy grid to clipboard")
		}
	}

	if total > 1 && i < total {
		_, err := fmt.Fprintln(l.out)
		return err
	}
	return nil
}
