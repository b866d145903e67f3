package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/f3rmion/fourzi/internal/clipboard"
	"github.com/f3rmion/fourzi/internal/config"
	"github.com/f3rmion/fourzi/internal/fourzi"
	"github.com/f3rmion/fourzi/internal/game"
	"github.com/f3rmion/fourzi/internal/generator"
	"github.com/f3rmion/fourzi/internal/phrases"
	"github.com/f3rmion/fourzi/internal/render"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one or more rounds",
	Long: `Draw idioms from the phrase pool, shuffle their characters into a
square grid and print it.

The phrase pool comes from --phrases (.yaml, .jsonl or a sqlite database
created with 'fourzi import'); without it the built-in list is used.

Examples:
  fourzi play
  fourzi play --pinyin --reveal
  fourzi play -n 4 -s 4 --style plain
  fourzi play --seed 42 --rounds 3`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var playSeed uint64

func init() {
	rootCmd.AddCommand(playCmd)

	f := playCmd.Flags()
	f.StringP("phrases", "p", "", "phrase file or sqlite database (default is the built-in list)")
	f.IntP("count", "n", 0, "number of idioms hidden per round (default 9)")
	f.IntP("side", "s", 0, "grid width (default 6)")
	f.IntP("rounds", "r", 0, "number of rounds to play (default 1)")
	f.String("style", "", "grid style: plain, table, big (default table)")
	f.Bool("pinyin", false, "show pinyin readings")
	f.Bool("reveal", false, "print the hidden idioms after the grid")
	f.Bool("copy", false, "copy the grid to the clipboard")
	f.Bool("exclusive-bound", false, "always fill the requested idiom count when the pool is large enough")
	f.Uint64Var(&playSeed, "seed", 0, "seed for a reproducible round (0 is random)")

	v.BindPFlag("phrases.path", f.Lookup("phrases"))
	v.BindPFlag("game.num_phrases", f.Lookup("count"))
	v.BindPFlag("game.side_size", f.Lookup("side"))
	v.BindPFlag("game.rounds", f.Lookup("rounds"))
	v.BindPFlag("game.exclusive_bound", f.Lookup("exclusive-bound"))
	v.BindPFlag("render.style", f.Lookup("style"))
	v.BindPFlag("render.pinyin", f.Lookup("pinyin"))
	v.BindPFlag("render.reveal", f.Lookup("reveal"))
	v.BindPFlag("render.copy", f.Lookup("copy"))

	// 'fourzi' alone plays, so it takes the same flags.
	rootCmd.Flags().AddFlagSet(f)
}

func runPlay(cmd *cobra.Command, args []string) error {
	loader, err := phrases.Open(cfg.Phrases.Path)
	if err != nil {
		return err
	}

	var font *render.BlockFont
	if cfg.Render.Style == config.StyleBig {
		font, err = render.LoadBlockFont(render.DefaultFontPaths...)
		if err != nil {
			log.Debug().Err(err).Msg("big style unavailable")
		}
	}

	renderer, err := render.New(render.Options{
		Style:  cfg.Render.Style,
		Pinyin: cfg.Render.Pinyin,
		Font:   font,
	})
	if err != nil {
		return err
	}

	loop := game.NewLoop(loader, generatorFactory(cfg.Game, playSeed), renderer, cmd.OutOrStdout(), game.Settings{
		Rounds: cfg.Game.Rounds,
		Reveal: cfg.Render.Reveal,
		Pinyin: cfg.Render.Pinyin,
		Copy:   cfg.Render.Copy,
	})
	if cfg.Render.Copy {
		if clipboard.Available() {
			loop.SetClipboard(clipboard.Write)
		} else {
			log.Warn().Msg("no clipboard tool found, --copy ignored")
		}
	}

	_, err = loop.Run(cmd.Context())
	return err
}

// generatorFactory builds generators from the game settings. A non-zero
// seed makes every round of the run reproducible.
func generatorFactory(gc config.GameConfig, seed uint64) game.GeneratorFactory {
	opts := []generator.Option{
		generator.WithNumPhrases(gc.NumPhrases),
		generator.WithSideSize(gc.SideSize),
	}

	switch {
	case seed != 0:
		next, shuffle := generator.Seeded(seed, gc.ExclusiveBound)
		opts = append(opts, generator.WithIndexSource(next), generator.WithShuffleFunc(shuffle))
	case gc.ExclusiveBound:
		opts = append(opts, generator.WithIndexSource(generator.ExclusiveIndex))
	}

	return func(pool fourzi.Pool) game.RoundGenerator {
		return generator.NewRandomGenerator(pool, opts...)
	}
}
