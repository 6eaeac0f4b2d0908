package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/SscSPs/invest_gateway/internal/platform/config"
	"github.com/SscSPs/invest_gateway/internal/utils"
	"github.com/spf13/cobra"
)

const (
	clientFlagName = "client"
	ttlFlagName    = "ttl"
)

var rootCmd = &cobra.Command{
	Use:          "gateway_token",
	Short:        "Issues X-Token credentials for gateway clients",
	Long:         "Signs an HS256 token with GATEWAY_JWT_SECRET. The token is sent by clients in the X-Token header.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		clientID, err := cmd.Flags().GetString(clientFlagName)
		if err != nil {
			return err
		}
		ttl, err := cmd.Flags().GetDuration(ttlFlagName)
		if err != nil {
			return err
		}
		if ttl <= 0 {
			return fmt.Errorf("%s must be positive", ttlFlagName)
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		if cfg.GatewayJWTSecret == "" {
			return errors.New("GATEWAY_JWT_SECRET is not set")
		}

		token, err := utils.GenerateGatewayToken(clientID, cfg.GatewayJWTSecret, ttl)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	rootCmd.Flags().String(clientFlagName, "", "Client id written into the token subject")
	rootCmd.Flags().Duration(ttlFlagName, 30*24*time.Hour, "Token lifetime")
	_ = rootCmd.MarkFlagRequired(clientFlagName)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
