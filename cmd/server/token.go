package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-compendium/internal/auth"
	"github.com/KirkDiggler/rpg-compendium/internal/config"
	"github.com/KirkDiggler/rpg-compendium/internal/pkg/clock"
)

var tokenCmd = &cobra.Command{
	Use:   "token [user-id]",
	Short: "Issue a bearer token",
	Long: `Issue a signed bearer token for a user, using the same COMPENDIUM_AUTH_*
settings as the server. Pass it to client commands with --token.`,
	Args: cobra.ExactArgs(1),
	RunE: issueToken,
}

var displayName string

func init() {
	tokenCmd.Flags().StringVar(&displayName, "name", "", "display name carried in the token")
}

func issueToken(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	issuer, err := auth.NewIssuer(&auth.Config{
		Secret:   []byte(cfg.Auth.Secret),
		Issuer:   cfg.Auth.Issuer,
		Audience: cfg.Auth.Audience,
		TokenTTL: cfg.Auth.TokenTTL,
		Clock:    clock.New(),
	})
	if err != nil {
		return err
	}

	token, err := issuer.Issue(args[0], displayName)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, token.Value)
	fmt.Fprintf(out, "# expires %s\n", token.ExpiresAt.Format(time.RFC3339))
	return nil
}
