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

// NewAssetsCommand creates the assets command group.
func NewAssetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assets",
		Short: "Look up Roblox assets",
		Long:  "Fetch asset details and resale data for limited items",
	}

	cmd.AddCommand(newAssetsGetCommand())
	cmd.AddCommand(newAssetsResaleCommand())

	return cmd
}

func newAssetsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <asset-id>",
		Short: "Get asset details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			assetID, err := parseID(args[0], constants.ErrInvalidAssetID)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			details, err := client.Assets().GetDetails(context.Background(), assetID)
			if err != nil {
				return err
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(details)
			case OutputFormatYAML:
				return renderYAML(details)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Field", "Value")

				_ = table.Append("ID", strconv.FormatInt(details.AssetID, 10))
				_ = table.Append("Name", details.Name)
				_ = table.Append("Creator", details.Creator.Name)
				_ = table.Append("Sales", strconv.FormatInt(details.Sales, 10))
				_ = table.Append("For Sale", strconv.FormatBool(details.IsForSale))
				_ = table.Append("Limited", strconv.FormatBool(details.IsLimited || details.IsLimitedUnique))

				price := constants.NotAvailable
				if details.PriceInRobux != nil {
					price = strconv.FormatInt(*details.PriceInRobux, 10)
				}

				_ = table.Append("Price (Robux)", price)

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func newAssetsResaleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resale <asset-id>",
		Short: "Get resale data for a limited asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			assetID, err := parseID(args[0], constants.ErrInvalidAssetID)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			data, err := client.Economy().ResaleData(context.Background(), assetID)
			if err != nil {
				return err
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(data)
			case OutputFormatYAML:
				return renderYAML(data)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Field", "Value")

				_ = table.Append("Sales", strconv.FormatInt(data.Sales, 10))
				_ = table.Append("Recent Average Price", strconv.FormatInt(data.RecentAveragePrice, 10))

				original := constants.NotAvailable
				if data.OriginalPrice != nil {
					original = strconv.FormatInt(*data.OriginalPrice, 10)
				}

				_ = table.Append("Original Price", original)

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}
