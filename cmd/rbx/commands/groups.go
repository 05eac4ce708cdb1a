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

// NewGroupsCommand creates the groups command group.
func NewGroupsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Look up Roblox groups",
		Long:  "Fetch group details, role ladders, and member listings",
	}

	cmd.AddCommand(newGroupsGetCommand())
	cmd.AddCommand(newGroupsRolesCommand())
	cmd.AddCommand(newGroupsMembersCommand())

	return cmd
}

func newGroupsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <group-id>",
		Short: "Get group details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			groupID, err := parseID(args[0], constants.ErrInvalidGroupID)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			group, err := client.Groups().Get(context.Background(), groupID)
			if err != nil {
				return err
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(group)
			case OutputFormatYAML:
				return renderYAML(group)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Field", "Value")

				_ = table.Append("ID", strconv.FormatInt(group.ID, 10))
				_ = table.Append("Name", group.Name)
				_ = table.Append("Members", strconv.FormatInt(group.MemberCount, 10))

				owner := constants.NotAvailable
				if group.Owner != nil {
					owner = group.Owner.Name
				}

				_ = table.Append("Owner", owner)

				if group.Shout != nil {
					_ = table.Append("Shout", group.Shout.Body)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func newGroupsRolesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "roles <group-id>",
		Short: "List a group's role ladder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			groupID, err := parseID(args[0], constants.ErrInvalidGroupID)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			roles, err := client.Groups().GetRoles(context.Background(), groupID)
			if err != nil {
				return err
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(roles)
			case OutputFormatYAML:
				return renderYAML(roles)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Rank", "Name", "Members")

				for _, role := range roles {
					_ = table.Append(strconv.Itoa(role.Rank), role.Name, strconv.FormatInt(role.MemberCount, 10))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func newGroupsMembersCommand() *cobra.Command {
	var (
		limit  int
		cursor string
	)

	cmd := &cobra.Command{
		Use:   "members <group-id>",
		Short: "List group members",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			groupID, err := parseID(args[0], constants.ErrInvalidGroupID)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := rbx.NewQueryParams().WithLimit(limit)
			if cursor != "" {
				params = params.WithCursor(cursor)
			}

			page, err := client.Groups().ListMembers(context.Background(), groupID, params)
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
				table.Header("ID", "Username", "Role")

				for _, member := range page.Data {
					_ = table.Append(strconv.FormatInt(member.User.ID, 10), member.User.Name, member.Role.Name)
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
	cmd.Flags().StringVar(&cursor, "cursor", "", "page cursor from a previous listing")

	return cmd
}
