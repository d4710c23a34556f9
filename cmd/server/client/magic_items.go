package client

import (
	"fmt"

	"github.com/spf13/cobra"

	compendiumv1alpha1 "github.com/KirkDiggler/rpg-compendium/internal/handlers/compendium/v1alpha1"
)

var listMagicItemsCmd = &cobra.Command{
	Use:   "list-magic-items",
	Short: "List magic items",
	Args:  cobra.NoArgs,
	RunE:  listMagicItems,
}

var (
	itemRarity string
	itemsMine  bool
)

func init() {
	listMagicItemsCmd.Flags().StringVar(&itemRarity, "rarity", "", "Only list items of this rarity (e.g. rare, very rare)")
	listMagicItemsCmd.Flags().BoolVar(&itemsMine, "mine", false, "Only list items you own (needs --token)")
}

func listMagicItems(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createCompendiumClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.ListMagicItems(ctx, &compendiumv1alpha1.ListMagicItemsRequest{
		Mine:   itemsMine,
		Rarity: itemRarity,
	})
	if err != nil {
		return fmt.Errorf("failed to list magic items: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(resp.Items) == 0 {
		fmt.Fprintln(out, "No magic items found")
		return nil
	}
	for _, item := range resp.Items {
		fmt.Fprintf(out, "%-30s %-10s %s\n", item.Name, item.Rarity, item.Summary)
	}
	fmt.Fprintf(out, "\n%d magic items\n", len(resp.Items))
	return nil
}
