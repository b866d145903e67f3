package cmd

import (
	"fmt"
	"strconv"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/f3rmion/fourzi/internal/phrases"
	"github.com/f3rmion/fourzi/internal/pinyin"
)

var phrasesCmd = &cobra.Command{
	Use:   "phrases",
	Short: "List the phrase pool",
	Long: `List every idiom in the phrase pool with its score.

Examples:
  fourzi phrases
  fourzi phrases --pinyin
  fourzi phrases -p idioms.db`,
	Args: cobra.NoArgs,
	RunE: runPhrases,
}

var phrasesPinyin bool

func init() {
	rootCmd.AddCommand(phrasesCmd)
	phrasesCmd.Flags().StringP("phrases", "p", "", "phrase file or sqlite database (default is the built-in list)")
	phrasesCmd.Flags().BoolVar(&phrasesPinyin, "pinyin", false, "show pinyin readings")
}

func runPhrases(cmd *cobra.Command, args []string) error {
	path := cfg.Phrases.Path
	if f := cmd.Flags().Lookup("phrases"); f.Changed {
		path = f.Value.String()
	}

	loader, err := phrases.Open(path)
	if err != nil {
		return err
	}
	pool, err := loader.LoadPhrases(cmd.Context())
	if err != nil {
		return err
	}

	var ann *pinyin.Annotator
	if phrasesPinyin {
		ann = pinyin.NewAnnotator()
	}

	out := cmd.OutOrStdout()
	numWidth := len(strconv.Itoa(len(pool)))
	for i, e := range pool {
		line := fmt.Sprintf("%*d  %s", numWidth, i+1, e.Phrase)
		if ann != nil {
			line += "  " + runewidth.FillRight(ann.Phrase(e.Phrase), 24)
		}
		fmt.Fprintf(out, "%s  %6d\n", line, e.Score)
	}
	fmt.Fprintf(out, "\n%d phrases\n", len(pool))

	return nil
}
