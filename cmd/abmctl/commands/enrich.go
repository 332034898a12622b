package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/octobees/marketing-ops/api/internal/entity"
)

var errNoProfile = errors.New("no enrichment data available")

func enrichCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "enrich <domain>",
		Short: "Print the firmographic profile for a company domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile := app.Enricher.EnrichCompany(cmd.Context(), args[0])
			if profile == nil {
				return errNoProfile
			}
			return printJSON(cmd.OutOrStdout(), profile)
		},
	}
}

func prospectsCmd(app *App) *cobra.Command {
	var criteria entity.ProspectCriteria

	cmd := &cobra.Command{
		Use:   "prospects <organization-id>",
		Short: "List contacts at an enriched organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prospects := app.Prospects.FindProspects(cmd.Context(), args[0], criteria)
			return printJSON(cmd.OutOrStdout(), prospects)
		},
	}
	cmd.Flags().StringSliceVar(&criteria.Titles, "title", nil, "job title filter (repeatable)")
	cmd.Flags().StringSliceVar(&criteria.Seniorities, "seniority", nil, "seniority filter (repeatable)")
	return cmd
}
