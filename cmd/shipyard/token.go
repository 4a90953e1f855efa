package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"space-catalog/shipyard/internal/auth"
	"space-catalog/shipyard/internal/errors"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token for the write routes",
	Long:  `Signs a write-scoped HS256 token with auth.jwt_secret and prints it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Auth.JWTSecret == "" {
			return errors.New("auth.jwt_secret is not set; write routes are open")
		}

		subject, _ := cmd.Flags().GetString("subject")
		ttl, _ := cmd.Flags().GetDuration("ttl")

		token, err := auth.NewTokenService(cfg.Auth.JWTSecret).Issue(subject, ttl)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringP("subject", "s", "operator", "token subject")
	tokenCmd.Flags().Duration("ttl", 24*time.Hour, "token lifetime")
}
