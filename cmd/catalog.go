package cmd

import (
	"fmt"

	"github.com/bnema/multicart-cli/internal/application"
	"github.com/bnema/multicart-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the products added by cart add-all",
	}

	cmd.AddCommand(
		newCatalogListCmd(app),
		newCatalogAddCmd(app),
		newCatalogRemoveCmd(app),
	)

	return cmd
}

func newCatalogListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			products, err := app.catalog.Products(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), products)
			}

			if len(products) == 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No products in %s\n", app.catalogPath)
				return nil
			}
			for _, product := range products {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", product.ID, product.Name)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newCatalogAddCmd(app *app) *cobra.Command {
	var id int64
	var name string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add or rename a catalog product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			product, err := app.catalog.AddProduct(cmd.Context(), application.AddProductCommand{
				ID:   domain.ProductID(id),
				Name: name,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Saved product %d (%s)\n", product.ID, product.Name)
			return err
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "Storefront product ID")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newCatalogRemoveCmd(app *app) *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a catalog product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.catalog.RemoveProduct(cmd.Context(), application.RemoveProductCommand{ID: domain.ProductID(id)}); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Removed product %d\n", id)
			return err
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "Storefront product ID")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}
