package cli

import (
	"github.com/spf13/cobra"

	"github.com/attestra/attestra-go/pkg/idvsdk"
)

var (
	usersListPage    int
	usersListPerPage int
	usersListEmail   string
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Interact with institution users",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the institution's enrolled users",
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := getConnection()
		if err != nil {
			return err
		}

		resp, err := conn.ListUsers(cmd.Context(), &idvsdk.ListUsersOptions{
			Page:    usersListPage,
			PerPage: usersListPerPage,
			Email:   usersListEmail,
		})
		if err != nil {
			return err
		}

		return printJSON(resp)
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersListCmd)

	usersListCmd.Flags().IntVar(&usersListPage, "page", 0, "Page number (1-based)")
	usersListCmd.Flags().IntVar(&usersListPerPage, "per-page", 0, "Page size")
	usersListCmd.Flags().StringVar(&usersListEmail, "email", "", "Filter by email address")
}
