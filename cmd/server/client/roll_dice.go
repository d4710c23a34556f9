package client

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/KirkDiggler/rpg-api-protos/gen/go/clients/api/v1alpha1"
)

var rollDiceCmd = &cobra.Command{
	Use:   "roll-dice [notation] [entity-id] [context]",
	Short: "Roll dice using dice notation",
	Long: `Roll dice and see individual results. Examples:

  roll-dice 4d6 char-123 ability-scores
  roll-dice 1d20 char-456 attack
  roll-dice 2d8 char-789 damage --ttl 300`,
	Args: cobra.ExactArgs(3),
	RunE: rollDice,
}

var (
	rollTTLSeconds  int32
	rollDescription string
)

func init() {
	rollDiceCmd.Flags().Int32Var(&rollTTLSeconds, "ttl", 0, "Session lifetime in seconds; 0 uses the server default")
	rollDiceCmd.Flags().StringVar(&rollDescription, "description", "", "Description stored with the roll")
}

func rollDice(cmd *cobra.Command, args []string) error {
	notation := args[0]
	entityID := args[1]
	rollContext := args[2]

	client, cleanup, err := createDiceClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Rolling %s for entity %s (context: %s)...\n", notation, entityID, rollContext)

	resp, err := client.RollDice(ctx, &apiv1alpha1.RollDiceRequest{
		EntityId:            entityID,
		Context:             rollContext,
		Notation:            notation,
		TtlSeconds:          rollTTLSeconds,
		ModifierDescription: rollDescription,
	})
	if err != nil {
		return fmt.Errorf("failed to roll dice: %w", err)
	}

	fmt.Fprintf(out, "\nDice Roll Results:\n")
	fmt.Fprintf(out, "==================\n")
	printRolls(out, resp.Rolls)

	fmt.Fprintf(out, "\nSession expires at: %d\n", resp.ExpiresAt)
	fmt.Fprintf(out, "Total rolls in session: %d\n", len(resp.Rolls))

	return nil
}

func printRolls(out io.Writer, rolls []*apiv1alpha1.DiceRoll) {
	for i, roll := range rolls {
		fmt.Fprintf(out, "\nRoll %d:\n", i+1)
		fmt.Fprintf(out, "  Roll ID: %s\n", roll.RollId)
		fmt.Fprintf(out, "  Notation: %s\n", roll.Notation)
		fmt.Fprintf(out, "  Individual Dice: %v\n", roll.Dice)
		fmt.Fprintf(out, "  Total: %d\n", roll.Total)
		if len(roll.Dropped) > 0 {
			fmt.Fprintf(out, "  Dropped: %v\n", roll.Dropped)
		}
		if roll.Description != "" {
			fmt.Fprintf(out, "  Description: %s\n", roll.Description)
		}
	}
}
