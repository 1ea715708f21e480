package cli

import (
	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Interact with access tokens",
}

var tokenInspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Acquire an access token and print its decoded claims",
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := getConnection()
		if err != nil {
			return err
		}

		claims, err := conn.AccessTokenClaims(cmd.Context())
		if err != nil {
			return err
		}

		return printJSON(claims)
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.AddCommand(tokenInspectCmd)
}
