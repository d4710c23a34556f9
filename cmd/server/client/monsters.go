package client

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	compendiumv1alpha1 "github.com/KirkDiggler/rpg-compendium/internal/handlers/compendium/v1alpha1"
)

var getMonsterCmd = &cobra.Command{
	Use:   "get-monster [name]",
	Short: "Show one monster",
	Args:  cobra.ExactArgs(1),
	RunE:  getMonster,
}

var listMonstersCmd = &cobra.Command{
	Use:   "list-monsters",
	Short: "List monsters by name",
	Args:  cobra.NoArgs,
	RunE:  listMonsters,
}

var searchMonstersCmd = &cobra.Command{
	Use:   "search-monsters [query]",
	Short: "Search monsters by name and tags",
	Long: `Search monsters. Plain words match names; +tag requires a tag and
-tag excludes one. Examples:

  search-monsters gnoll
  search-monsters "+humanoid -medium"`,
	Args: cobra.ExactArgs(1),
	RunE: searchMonsters,
}

var monsterStatsCmd = &cobra.Command{
	Use:   "monster-stats [name]",
	Short: "Show derived statistics for a monster",
	Args:  cobra.ExactArgs(1),
	RunE:  monsterStats,
}

var deleteMonsterCmd = &cobra.Command{
	Use:   "delete-monster [name]",
	Short: "Delete a monster you own",
	Args:  cobra.ExactArgs(1),
	RunE:  deleteMonster,
}

var listMine bool

func init() {
	listMonstersCmd.Flags().BoolVar(&listMine, "mine", false, "Only list monsters you own (needs --token)")
}

func getMonster(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createCompendiumClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.GetMonster(ctx, &compendiumv1alpha1.GetMonsterRequest{Name: args[0]})
	if err != nil {
		return fmt.Errorf("failed to get monster: %w", err)
	}

	printMonster(cmd.OutOrStdout(), resp.Monster)
	return nil
}

func listMonsters(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createCompendiumClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.ListMonsters(ctx, &compendiumv1alpha1.ListMonstersRequest{Mine: listMine})
	if err != nil {
		return fmt.Errorf("failed to list monsters: %w", err)
	}

	printMonsterTable(cmd.OutOrStdout(), resp.Monsters)
	return nil
}

func searchMonsters(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createCompendiumClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.SearchMonsters(ctx, &compendiumv1alpha1.SearchMonstersRequest{Query: args[0]})
	if err != nil {
		return fmt.Errorf("failed to search monsters: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Query: %q\n\n", resp.Query)
	printMonsterTable(out, resp.Monsters)
	return nil
}

func monsterStats(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createCompendiumClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.GetMonsterStats(ctx, &compendiumv1alpha1.GetMonsterStatsRequest{Name: args[0]})
	if err != nil {
		return fmt.Errorf("failed to get monster stats: %w", err)
	}

	stats := resp.Stats
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (CR %s)\n", stats.Name, stats.ChallengeRating)
	fmt.Fprintf(out, "  Hit Dice: %s (average %.1f hp)\n", stats.HitDice, stats.AverageHitPoints)
	fmt.Fprintf(out, "  Proficiency Bonus: %+d\n", stats.ProficiencyBonus)
	fmt.Fprintf(out, "  Experience: %d XP\n", stats.ExperiencePoints)
	for _, a := range stats.Abilities {
		fmt.Fprintf(out, "  %-12s %2d (%+d)\n", a.Ability, a.Score, a.Modifier)
	}
	return nil
}

func deleteMonster(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createCompendiumClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.DeleteMonster(ctx, &compendiumv1alpha1.DeleteMonsterRequest{Name: args[0]})
	if err != nil {
		return fmt.Errorf("failed to delete monster: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s; removed from %d favorite lists\n",
		resp.Monster.Name, resp.FavoritesRemoved)
	return nil
}

func printMonster(out io.Writer, m *compendiumv1alpha1.Monster) {
	fmt.Fprintf(out, "%s\n", m.Name)
	fmt.Fprintf(out, "%s\n", strings.Repeat("=", len(m.Name)))
	fmt.Fprintf(out, "ID: %s\n", m.ID)
	if m.OwnerID != "" {
		fmt.Fprintf(out, "Owner: %s\n", m.OwnerID)
	}
	fmt.Fprintf(out, "Size: %s  AC: %d  Hit Dice: %d  Speed: %d ft.  CR: %s\n",
		m.Size, m.ArmorClass, m.HitDiceCount, m.Speed, m.ChallengeRating)
	a := m.AbilityScores
	fmt.Fprintf(out, "STR %d  DEX %d  CON %d  INT %d  WIS %d  CHA %d\n",
		a.Strength, a.Dexterity, a.Constitution, a.Intelligence, a.Wisdom, a.Charisma)
	if len(m.Tags) > 0 {
		fmt.Fprintf(out, "Tags: %s\n", strings.Join(m.Tags, ", "))
	}
	if m.RawDescription != "" {
		fmt.Fprintf(out, "\n%s\n", m.RawDescription)
	}
	for _, entry := range m.Information {
		switch entry.Kind {
		case compendiumv1alpha1.InformationKindHeader:
			fmt.Fprintf(out, "\n%s\n", entry.Text)
		case compendiumv1alpha1.InformationKindSeparator:
			fmt.Fprintf(out, "---\n")
		default:
			if entry.Title != "" {
				fmt.Fprintf(out, "  %s. %s\n", entry.Title, entry.Text)
			} else {
				fmt.Fprintf(out, "  %s\n", entry.Text)
			}
		}
	}
}

func printMonsterTable(out io.Writer, monsters []*compendiumv1alpha1.Monster) {
	if len(monsters) == 0 {
		fmt.Fprintln(out, "No monsters found")
		return
	}
	for _, m := range monsters {
		fmt.Fprintf(out, "%-30s %-10s CR %-4s %s\n", m.Name, m.Size, m.ChallengeRating, strings.Join(m.Tags, ", "))
	}
	fmt.Fprintf(out, "\n%d monsters\n", len(monsters))
}
