package cli

import (
	"github.com/spf13/cobra"

	"github.com/attestra/attestra-go/pkg/idvsdk"
)

var (
	humanScoresListPage     int
	humanScoresListPerPage  int
	humanScoresListPartyIDs []string
)

var humanScoresCmd = &cobra.Command{
	Use:   "human-scores",
	Short: "Look up human scores",
}

var humanScoresListCmd = &cobra.Command{
	Use:   "list",
	Short: "List human scores, paginated or filtered by party IDs",
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := getConnection()
		if err != nil {
			return err
		}

		resp, err := conn.ListHumanScores(cmd.Context(), &idvsdk.ListOptions{
			Page:     humanScoresListPage,
			PerPage:  humanScoresListPerPage,
			PartyIDs: humanScoresListPartyIDs,
		})
		if err != nil {
			return err
		}

		return printJSON(resp)
	},
}

var humanScoresGetCmd = &cobra.Command{
	Use:   "get <party-id>",
	Short: "Get the human score of one party",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := getConnection()
		if err != nil {
			return err
		}

		score, err := conn.GetHumanScore(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		return printJSON(score)
	},
}

func init() {
	rootCmd.AddCommand(humanScoresCmd)
	humanScoresCmd.AddCommand(humanScoresListCmd)
	humanScoresCmd.AddCommand(humanScoresGetCmd)

	humanScoresListCmd.Flags().IntVar(&humanScoresListPage, "page", 0, "Page number (1-based)")
	humanScoresListCmd.Flags().IntVar(&humanScoresListPerPage, "per-page", 0, "Page size")
	humanScoresListCmd.Flags().StringSliceVar(&humanScoresListPartyIDs, "party-id", nil, "Filter by party ID (repeatable)")
}
