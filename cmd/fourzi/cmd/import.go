package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/f3rmion/fourzi/internal/phrases"
)

var importCmd = &cobra.Command{
	Use:   "import <source> <database>",
	Short: "Import a phrase file into a sqlite database",
	Long: `Import idioms from a .yaml or .jsonl phrase file into a sqlite
database. The database is created if needed; existing idioms keep their
position and take the new score.

Examples:
  fourzi import idioms.yaml idioms.db
  fourzi play -p idioms.db`,
	Args: cobra.ExactArgs(2),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	src, dst := args[0], args[1]

	loader, err := phrases.Open(src)
	if err != nil {
		return err
	}
	pool, err := loader.LoadPhrases(ctx)
	if err != nil {
		return err
	}

	store, err := phrases.OpenStore(ctx, dst)
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Import(ctx, pool)
	if err != nil {
		return fmt.Errorf("importing into %s: %w", dst, err)
	}
	total, err := store.Count(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d phrases into %s (%d total)\n", n, dst, total)
	return nil
}
