package commands

import (
	"fmt"
	"time"

	"KonkurRankPredictor/internal/auth"
	"KonkurRankPredictor/internal/config"

	"github.com/spf13/cobra"
)

var (
	tokenClient *string
	tokenTTL    *time.Duration
)

func init() {
	tokenClient = tokenCmd.Flags().String("client", "", "Name of the client the token is issued to.")
	tokenTTL = tokenCmd.Flags().Duration("ttl", 24*time.Hour, "How long the token stays valid.")
	tokenCmd.MarkFlagRequired("client")
	rootCmd.AddCommand(tokenCmd)
}

var tokenCmd = &cobra.Command{
	Use:   "token --client <name> [--ttl 24h]",
	Short: "Issues a bearer token signed with AUTH_JWT_SECRET (read from the environment or .env).",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		token, err := auth.GenerateToken(cfg.JWTSecret, *tokenClient, *tokenTTL)
		if err != nil {
			return fmt.Errorf("failed to generate token: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}
