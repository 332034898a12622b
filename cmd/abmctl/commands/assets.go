package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/octobees/marketing-ops/api/internal/entity"
	"github.com/octobees/marketing-ops/api/internal/freepik"
)

func assetsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assets",
		Short: "Search and download stock assets",
	}
	cmd.AddCommand(assetSearchCmd(app), assetDownloadCmd(app))
	return cmd
}

func assetSearchCmd(app *App) *cobra.Command {
	var (
		params    freepik.SearchParams
		assetType string
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the asset catalogue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params.Query = args[0]
			params.Type = entity.MediaKind(assetType)
			if params.Type != "" && !params.Type.Valid() {
				return fmt.Errorf("unsupported asset type %q", assetType)
			}
			page, err := app.Assets.SearchAssets(cmd.Context(), params)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), page)
		},
	}
	cmd.Flags().StringVar(&assetType, "type", "", "asset type (photo, vector, psd)")
	cmd.Flags().IntVar(&params.Page, "page", 0, "result page")
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "results per page")
	cmd.Flags().StringVar(&params.Orientation, "orientation", "", "orientation filter")
	cmd.Flags().StringVar(&params.Category, "category", "", "category filter")
	cmd.Flags().StringVar(&params.Color, "color", "", "dominant colour filter")
	cmd.Flags().StringVar(&params.People, "people", "", "people filter")
	return cmd
}

func assetDownloadCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "download <asset-id>",
		Short: "Resolve a download URL for an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			link, err := app.Assets.DownloadAsset(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), link)
		},
	}
}
