package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/f3rmion/fourzi/internal/config"
	"github.com/f3rmion/fourzi/internal/phrases"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize fourzi configuration",
	Long: `Initialize fourzi configuration in your config directory.

This creates:
  - config.yaml   (grid size, idiom count, display style)
  - phrases.yaml  (a starter list of idioms with scores)

config.yaml points at phrases.yaml, so edit that file to add your own idioms.`,
	Args: cobra.NoArgs,
	// An existing config.yaml may be the broken file --force is meant to replace.
	PersistentPreRunE: setupLogging,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()
	configPath := filepath.Join(configDir, config.FileName)
	phrasesPath := filepath.Join(configDir, "phrases.yaml")

	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("config already exists: %s\nUse --force to overwrite", configPath)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initializing fourzi configuration in %s\n\n", configDir)

	pool, err := phrases.Embedded().LoadPhrases(cmd.Context())
	if err != nil {
		return err
	}
	if err := phrases.SaveYAML(phrasesPath, pool); err != nil {
		return err
	}
	fmt.Fprintf(out, "  Created %s\n", filepath.Base(phrasesPath))

	c := config.Default()
	c.Phrases.Path = phrasesPath
	if err := config.Save(configPath, c); err != nil {
		return err
	}
	fmt.Fprintf(out, "  Created %s\n", config.FileName)

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Add your own idioms to phrases.yaml")
	fmt.Fprintln(out, "  2. Run 'fourzi' to play a round")
	fmt.Fprintln(out, "  3. Run 'fourzi play --reveal' to check the answers")

	return nil
}
