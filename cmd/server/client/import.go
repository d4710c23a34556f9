package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-compendium/internal/bundle"
	compendiumv1alpha1 "github.com/KirkDiggler/rpg-compendium/internal/handlers/compendium/v1alpha1"
)

var importBundleCmd = &cobra.Command{
	Use:   "import-bundle [path...]",
	Short: "Create monsters and magic items from YAML bundles",
	Long: `Validate YAML bundles locally, then create every record on the server.
Nothing is sent when a bundle has invalid records. Records whose names
already exist are reported and skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: importBundle,
}

var importSRDCmd = &cobra.Command{
	Use:   "import-srd [weapon-category]",
	Short: "Import SRD weapons as magic items",
	Long: `Import every weapon in an SRD equipment category. Example:

  import-srd martial-weapons`,
	Args: cobra.ExactArgs(1),
	RunE: importSRD,
}

func importBundle(cmd *cobra.Command, args []string) error {
	b, err := bundle.Load(args...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !b.OK() {
		for _, p := range b.Problems {
			fmt.Fprintf(out, "invalid: %s\n", p.Error())
		}
		return fmt.Errorf("%d invalid records; nothing imported", len(b.Problems))
	}

	client, cleanup, err := createCompendiumClient()
	if err != nil {
		return err
	}
	defer cleanup()

	var created, failed int
	for _, m := range b.Monsters.List() {
		ctx, cancel := requestContext()
		_, err := client.CreateMonster(ctx, &compendiumv1alpha1.CreateMonsterRequest{
			Monster: compendiumv1alpha1.MonsterToMessage(m),
		})
		cancel()
		if err != nil {
			failed++
			fmt.Fprintf(out, "skipped monster %s: %v\n", m.Name(), err)
			continue
		}
		created++
	}
	for _, item := range b.MagicItems {
		ctx, cancel := requestContext()
		_, err := client.CreateMagicItem(ctx, &compendiumv1alpha1.CreateMagicItemRequest{
			Item: compendiumv1alpha1.MagicItemToMessage(item),
		})
		cancel()
		if err != nil {
			failed++
			fmt.Fprintf(out, "skipped magic item %s: %v\n", item.Name(), err)
			continue
		}
		created++
	}

	fmt.Fprintf(out, "%d created, %d skipped\n", created, failed)
	return nil
}

func importSRD(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createCompendiumClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.ImportSRDWeapons(ctx, &compendiumv1alpha1.ImportSRDWeaponsRequest{Category: args[0]})
	if err != nil {
		return fmt.Errorf("failed to import weapons: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, item := range resp.Imported {
		fmt.Fprintf(out, "imported %-25s %s\n", item.Name, item.Summary)
	}
	for _, s := range resp.Skipped {
		fmt.Fprintf(out, "skipped  %-25s %s\n", s.Name, s.Reason)
	}
	fmt.Fprintf(out, "\n%d imported, %d skipped\n", len(resp.Imported), len(resp.Skipped))
	return nil
}
