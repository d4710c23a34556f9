package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/KirkDiggler/rpg-api-protos/gen/go/clients/api/v1alpha1"
)

var getRollSessionCmd = &cobra.Command{
	Use:   "get-roll-session [entity-id] [context]",
	Short: "Get existing dice roll session",
	Long: `Retrieve all dice rolls for a specific entity and context. Examples:

  get-roll-session char-123 ability-scores
  get-roll-session char-456 attack`,
	Args: cobra.ExactArgs(2),
	RunE: getRollSession,
}

var clearRollSessionCmd = &cobra.Command{
	Use:   "clear-roll-session [entity-id] [context]",
	Short: "Delete a dice roll session",
	Args:  cobra.ExactArgs(2),
	RunE:  clearRollSession,
}

func getRollSession(cmd *cobra.Command, args []string) error {
	entityID := args[0]
	rollContext := args[1]

	client, cleanup, err := createDiceClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Getting roll session for entity %s (context: %s)...\n", entityID, rollContext)

	resp, err := client.GetRollSession(ctx, &apiv1alpha1.GetRollSessionRequest{
		EntityId: entityID,
		Context:  rollContext,
	})
	if err != nil {
		return fmt.Errorf("failed to get roll session: %w", err)
	}

	fmt.Fprintf(out, "\nRoll Session:\n")
	fmt.Fprintf(out, "=============\n")
	fmt.Fprintf(out, "Created: %s\n", time.Unix(resp.CreatedAt, 0).Format(time.DateTime))
	fmt.Fprintf(out, "Expires: %s\n", time.Unix(resp.ExpiresAt, 0).Format(time.DateTime))
	fmt.Fprintf(out, "Total Rolls: %d\n", len(resp.Rolls))
	printRolls(out, resp.Rolls)

	return nil
}

func clearRollSession(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createDiceClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.ClearRollSession(ctx, &apiv1alpha1.ClearRollSessionRequest{
		EntityId: args[0],
		Context:  args[1],
	})
	if err != nil {
		return fmt.Errorf("failed to clear roll session: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (%d rolls cleared)\n", resp.Message, resp.RollsCleared)
	return nil
}
