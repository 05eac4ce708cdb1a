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
	"github.com/rbxweb/rbxweb/pkg/rbx"
)

// NewUsersCommand creates the users command group.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Look up Roblox users",
		Long:  "Fetch user profiles, search by keyword, and resolve usernames",
	}

	cmd.AddCommand(newUsersGetCommand())
	cmd.AddCommand(newUsersSearchCommand())
	cmd.AddCommand(newUsersLookupCommand())
	cmd.AddCommand(newUsersHistoryCommand())
	cmd.AddCommand(newUsersWhoamiCommand())

	return cmd
}

func newUsersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <user-id>",
		Short: "Get a user profile",
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

			user, err := client.Users().Get(context.Background(), userID)
			if err != nil {
				return err
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(user)
			case OutputFormatYAML:
				return renderYAML(user)
			default:
				return renderUserTable(user)
			}
		},
	}
}

func renderUserTable(user *rbx.User) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Field", "Value")

	_ = table.Append("ID", strconv.FormatInt(user.ID, 10))
	_ = table.Append("Name", user.Name)
	_ = table.Append("Display Name", user.DisplayName)
	_ = table.Append("Created", user.Created.Format("2006-01-02"))
	_ = table.Append("Banned", strconv.FormatBool(user.IsBanned))
	_ = table.Append("Verified Badge", strconv.FormatBool(user.HasVerifiedBadge))

	description := user.Description
	if len(description) > constants.DescriptionDisplayLength {
		description = description[:constants.DescriptionDisplayLength] + "..."
	}

	_ = table.Append("Description", description)

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newUsersSearchCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search users by keyword",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return constants.ErrKeywordRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := rbx.NewQueryParams().WithLimit(limit)

			page, err := client.Users().Search(context.Background(), args[0], params)
			if err != nil {
				return err
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(page)
			case OutputFormatYAML:
				return renderYAML(page)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Username", "Display Name")

				for _, user := range page.Data {
					_ = table.Append(strconv.FormatInt(user.ID, 10), user.Name, user.DisplayName)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				if page.HasNext() {
					fmt.Printf("\nNext cursor: %s\n", *page.NextPageCursor)
				}

				return nil
			}
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "results per page (10, 25, 50, or 100)")

	return cmd
}

func newUsersLookupCommand() *cobra.Command {
	var excludeBanned bool

	cmd := &cobra.Command{
		Use:   "lookup <username>...",
		Short: "Resolve usernames to user IDs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			users, err := client.Users().GetByUsernames(context.Background(), args, excludeBanned)
			if err != nil {
				return err
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(users)
			case OutputFormatYAML:
				return renderYAML(users)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Requested", "ID", "Username")

				for _, user := range users {
					_ = table.Append(user.RequestedUsername, strconv.FormatInt(user.ID, 10), user.Name)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}

	cmd.Flags().BoolVar(&excludeBanned, "exclude-banned", false, "exclude banned users from results")

	return cmd
}

func newUsersHistoryCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history <user-id>",
		Short: "List a user's previous usernames",
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

			page, err := client.Users().UsernameHistory(context.Background(), userID,
				rbx.NewQueryParams().WithLimit(limit))
			if err != nil {
				return err
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(page)
			case OutputFormatYAML:
				return renderYAML(page)
			default:
				if len(page.Data) == 0 {
					fmt.Println("No previous usernames")

					return nil
				}

				for _, record := range page.Data {
					fmt.Println(record.Name)
				}

				if page.HasNext() {
					fmt.Printf("\nNext cursor: %s\n", *page.NextPageCursor)
				}

				return nil
			}
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "results per page (10, 25, 50, or 100)")

	return cmd
}

func newUsersWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			user, err := client.Users().GetAuthenticated(context.Background())
			if err != nil {
				return err
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(user)
			case OutputFormatYAML:
				return renderYAML(user)
			default:
				fmt.Printf("%s (%d)\n", user.Name, user.ID)

				return nil
			}
		},
	}
}
