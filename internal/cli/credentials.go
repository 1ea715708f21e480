package cli

import (
	"github.com/spf13/cobra"

	"github.com/attestra/attestra-go/pkg/idvsdk"
)

var (
	credentialsListPage     int
	credentialsListPerPage  int
	credentialsListPartyIDs []string

	credentialsResolveQuery   string
	credentialsResolvePartyID string

	credentialsAccessPartyID   string
	credentialsAccessProviders []string
)

var credentialsCmd = &cobra.Command{
	Use:   "credentials",
	Short: "Look up and manage credentials",
}

var credentialsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List credentials, paginated or filtered by party IDs",
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := getConnection()
		if err != nil {
			return err
		}

		resp, err := conn.ListCredentials(cmd.Context(), &idvsdk.ListOptions{
			Page:     credentialsListPage,
			PerPage:  credentialsListPerPage,
			PartyIDs: credentialsListPartyIDs,
		})
		if err != nil {
			return err
		}

		return printJSON(resp)
	},
}

var credentialsGetCmd = &cobra.Command{
	Use:   "get <party-id>",
	Short: "Get all credentials held by one party",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := getConnection()
		if err != nil {
			return err
		}

		creds, err := conn.GetCredentials(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		return printJSON(creds)
	},
}

var credentialsResolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve credentials by free-text query (forward) or party ID (reverse)",
	Long: `Resolve credentials. Supply exactly one of:

  --query     forward lookup starting from an email or username
  --party-id  reverse lookup starting from a party ID`,
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := getConnection()
		if err != nil {
			return err
		}

		resp, err := conn.ResolveCredentials(cmd.Context(), idvsdk.ResolveRequest{
			Query:   credentialsResolveQuery,
			PartyID: credentialsResolvePartyID,
		})
		if err != nil {
			return err
		}

		return printJSON(resp)
	},
}

var credentialsRequestAccessCmd = &cobra.Command{
	Use:   "request-access",
	Short: "Ask providers to share a party's credentials with the institution",
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := getConnection()
		if err != nil {
			return err
		}

		if err := conn.RequestCredentialsAccess(
			cmd.Context(),
			credentialsAccessPartyID,
			credentialsAccessProviders,
		); err != nil {
			return err
		}

		return printJSON(map[string]string{"status": "accepted"})
	},
}

func init() {
	rootCmd.AddCommand(credentialsCmd)
	credentialsCmd.AddCommand(credentialsListCmd)
	credentialsCmd.AddCommand(credentialsGetCmd)
	credentialsCmd.AddCommand(credentialsResolveCmd)
	credentialsCmd.AddCommand(credentialsRequestAccessCmd)

	credentialsListCmd.Flags().IntVar(&credentialsListPage, "page", 0, "Page number (1-based)")
	credentialsListCmd.Flags().IntVar(&credentialsListPerPage, "per-page", 0, "Page size")
	credentialsListCmd.Flags().StringSliceVar(&credentialsListPartyIDs, "party-id", nil, "Filter by party ID (repeatable)")

	credentialsResolveCmd.Flags().StringVar(&credentialsResolveQuery, "query", "", "Free-text query (email/username)")
	credentialsResolveCmd.Flags().StringVar(&credentialsResolvePartyID, "party-id", "", "Party ID")

	credentialsRequestAccessCmd.Flags().StringVar(&credentialsAccessPartyID, "party-id", "", "Party ID")
	credentialsRequestAccessCmd.Flags().StringSliceVar(&credentialsAccessProviders, "provider", nil, "Provider to request from (repeatable)")
}
