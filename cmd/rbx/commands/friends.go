package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rbxweb/rbxweb/internal/constants"
)

// NewFriendsCommand creates the friends command group.
func NewFriendsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "friends",
		Short: "Look up friend lists",
	}

	cmd.AddCommand(newFriendsListCommand())
	cmd.AddCommand(newFriendsCountCommand())

	return cmd
}

func newFriendsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list <user-id>",
		Short: "List a user's friends",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID(args[0], constants.ErrInvalidUserID)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			friends, err := client.Friends().List(context.Background(), userID)
			if err != nil {
				return err
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(friends)
			case OutputFormatYAML:
				return renderYAML(friends)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Username", "Online")

				for _, friend := range friends {
					_ = table.Append(strconv.FormatInt(friend.ID, 10), friend.Name, strconv.FormatBool(friend.IsOnline))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func newFriendsCountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "count <user-id>",
		Short: "Show a user's friend count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID(args[0], constants.ErrInvalidUserID)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			count, err := client.Friends().Count(context.Background(), userID)
			if err != nil {
				return err
			}

			fmt.Println(count)

			return nil
		},
	}
}
