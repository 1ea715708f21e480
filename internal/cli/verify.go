package cli

import (
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/attestra/attestra-go/pkg/idvsdk"
)

var verifyBatchContractIDs []string

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Generate verification links and check verification status",
}

var verifyLinkCmd = &cobra.Command{
	Use:   "link <contract-id>",
	Short: "Generate a verification link for one credential contract",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := getConnection()
		if err != nil {
			return err
		}

		link, err := conn.GenerateVerificationLink(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		return printJSON(link)
	},
}

var verifyBatchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate verification links for up to 100 contracts in one call",
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := getConnection()
		if err != nil {
			return err
		}

		requests := make([]idvsdk.VerificationLinkRequest, 0, len(verifyBatchContractIDs))
		for _, id := range verifyBatchContractIDs {
			requests = append(requests, idvsdk.VerificationLinkRequest{ContractID: id})
		}

		resp, err := conn.GenerateVerificationLinksBatch(cmd.Context(), requests)
		if err != nil {
			return err
		}

		return printJSON(resp)
	},
}

var verifyCheckCmd = &cobra.Command{
	Use:   "check <token>",
	Short: "Check the status of a verification attempt (no credentials needed)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Unauthenticated endpoint; works without a credential pair.
		status, err := newClient().CheckVerificationStatus(cmd.Context(), args[0])
		if errors.Is(err, idvsdk.ErrVerificationNotFound) {
			log.Warn().Msg("verification token not found or expired")
			return printJSON(map[string]string{"status": "not_found"})
		}
		if err != nil {
			return err
		}

		return printJSON(status)
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.AddCommand(verifyLinkCmd)
	verifyCmd.AddCommand(verifyBatchCmd)
	verifyCmd.AddCommand(verifyCheckCmd)

	verifyBatchCmd.Flags().StringSliceVar(&verifyBatchContractIDs, "contract-id", nil, "Contract ID to generate a link for (repeatable)")
}
