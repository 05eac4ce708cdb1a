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

// NewBadgesCommand creates the badges command group.
func NewBadgesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "badges",
		Short: "Look up Roblox badges",
	}

	cmd.AddCommand(newBadgesGetCommand())
	cmd.AddCommand(newBadgesUserCommand())

	return cmd
}

func newBadgesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <badge-id>",
		Short: "Get badge details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			badgeID, err := parseID(args[0], constants.ErrInvalidBadgeID)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			badge, err := client.Badges().Get(context.Background(), badgeID)
			if err != nil {
				return err
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(badge)
			case OutputFormatYAML:
				return renderYAML(badge)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Field", "Value")

				_ = table.Append("ID", strconv.FormatInt(badge.ID, 10))
				_ = table.Append("Name", badge.Name)
				_ = table.Append("Enabled", strconv.FormatBool(badge.Enabled))

				if badge.Statistics != nil {
					_ = table.Append("Awarded", strconv.FormatInt(badge.Statistics.AwardedCount, 10))
					_ = table.Append("Win Rate", fmt.Sprintf("%.2f%%", badge.Statistics.WinRatePercentage*100))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func newBadgesUserCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "user <user-id>",
		Short: "List badges awarded to a user",
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

			page, err := client.Badges().ListForUser(context.Background(), userID,
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
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Enabled")

				for _, badge := range page.Data {
					_ = table.Append(strconv.FormatInt(badge.ID, 10), badge.Name, strconv.FormatBool(badge.Enabled))
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
