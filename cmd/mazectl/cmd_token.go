package main

import (
	"fmt"
	"time"

	"github.com/ilhamhanifan/maze-solver/api/identity"
	"github.com/ilhamhanifan/maze-solver/config"
	"github.com/ilhamhanifan/maze-solver/infrastruture/token"
	"github.com/spf13/cobra"
)

var (
	tokenSubject string
	tokenTTL     time.Duration
	tokenScopes  []string
)

var commandToken = &cobra.Command{
	Use:   "token",
	Short: "Mint an API token signed with JWT_SECRET",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if tokenSubject == "" {
			return fmt.Errorf("--subject is required")
		}
		secret, issuer := config.TokenConfig()
		signed, err := token.NewJwtService(secret, issuer).Generate(tokenSubject, tokenScopes, tokenTTL)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), signed)
		return err
	},
}

func init() {
	commandToken.Flags().StringVar(&tokenSubject, "subject", "", "client the token is issued to")
	commandToken.Flags().DurationVar(&tokenTTL, "ttl", 30*24*time.Hour, "token lifetime")
	commandToken.Flags().StringSliceVar(&tokenScopes, "scope", []string{identity.ScopeWriteMazes}, "granted scopes")
	mainCommand.AddCommand(commandToken)
}
