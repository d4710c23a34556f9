package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-compendium/internal/bundle"
)

var validateCmd = &cobra.Command{
	Use:   "validate [path...]",
	Short: "Validate YAML content bundles without a server",
	Long: `Parse monster and magic item bundles and report every record that
fails validation. Directories are searched for .yaml and .yml files.`,
	Args: cobra.MinimumNArgs(1),
	RunE: validateBundles,
}

func validateBundles(cmd *cobra.Command, args []string) error {
	b, err := bundle.Load(args...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, name := range b.Replaced {
		fmt.Fprintf(out, "warning: %s is defined more than once; the last definition wins\n", name)
	}
	for _, p := range b.Problems {
		fmt.Fprintf(out, "invalid: %s\n", p.Error())
	}
	fmt.Fprintf(out, "%d monsters, %d magic items, %d problems\n",
		b.Monsters.Len(), len(b.MagicItems), len(b.Problems))

	if !b.OK() {
		return fmt.Errorf("%d invalid records", len(b.Problems))
	}
	return nil
}
