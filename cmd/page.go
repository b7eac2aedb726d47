package cmd

import (
	"fmt"

	"github.com/bnema/multicart-cli/internal/adapters/render/page"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newPageCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "page",
		Short: "Open the interactive bulk cart page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			products, err := app.catalog.Products(ctx)
			if err != nil {
				return err
			}

			session, err := app.openCartSession(ctx)
			if err != nil {
				return err
			}
			defer app.closeCartSession(ctx, session)

			model := page.NewModel(ctx, page.Options{
				Cart:     session.service,
				Feedback: session.presenter,
				Products: products,
				Logger:   app.logger,
			})

			p := tea.NewProgram(model,
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run cart page: %w", err)
			}

			return nil
		},
	}
}
