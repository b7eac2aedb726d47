package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/bnema/multicart-cli/internal/adapters/render/banner"
	"github.com/bnema/multicart-cli/internal/application"
	"github.com/bnema/multicart-cli/internal/domain"
	"github.com/spf13/cobra"
)

type cartOperationResult struct {
	Operation        string               `json:"operation"`
	OK               bool                 `json:"ok"`
	Feedback         domain.FeedbackState `json:"feedback"`
	RemoveAllVisible bool                 `json:"removeAllVisible"`
	Error            string               `json:"error,omitempty"`
}

func newCartCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Synchronize the storefront cart with the catalog",
	}

	cmd.AddCommand(
		newCartAddAllCmd(app),
		newCartRemoveAllCmd(app),
		newCartStatusCmd(app),
		newCartShowCmd(app),
	)

	return cmd
}

func newCartAddAllCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "add-all",
		Short: "Add one of every catalog product to the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			products, err := app.catalog.Products(cmd.Context())
			if err != nil {
				return err
			}

			return runBulkOperation(cmd, app, application.OperationAddAll, "Adding all items to your cart...", asJSON,
				func(ctx context.Context, service *application.CartService) error {
					return service.AddAll(ctx, products)
				})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newCartRemoveAllCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "remove-all",
		Short: "Remove every physical line item from the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBulkOperation(cmd, app, application.OperationRemoveAll, "Removing all items from your cart...", asJSON,
				func(ctx context.Context, service *application.CartService) error {
					return service.RemoveAll(ctx)
				})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func runBulkOperation(
	cmd *cobra.Command,
	app *app,
	operation string,
	label string,
	asJSON bool,
	run func(context.Context, *application.CartService) error,
) error {
	ctx := cmd.Context()

	session, err := app.openCartSession(ctx)
	if err != nil {
		return err
	}
	defer app.closeCartSession(ctx, session)

	op := func(ctx context.Context) error {
		return run(ctx, session.service)
	}

	var opErr error
	if asJSON {
		opErr = op(ctx)
	} else {
		opErr = runCartSpinner(ctx, cmd.ErrOrStderr(), label, op)
	}

	// The banner may already be dismissed when the operation returns.
	feedback, shown := session.presenter.LastShown()
	result := cartOperationResult{
		Operation:        operation,
		OK:               opErr == nil,
		Feedback:         feedback,
		RemoveAllVisible: session.presenter.RemoveAllVisible(),
	}
	if opErr != nil {
		result.Error = opErr.Error()
	}

	if asJSON {
		if err := writeJSON(cmd.OutOrStdout(), result); err != nil {
			return err
		}
		return opErr
	}

	switch {
	case shown:
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), banner.Render(feedback, 0))
	case opErr == nil:
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No cart for this session.")
	}

	return opErr
}

func newCartStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check whether the cart holds any line items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			session, err := app.openCartSession(ctx)
			if err != nil {
				return err
			}
			defer app.closeCartSession(ctx, session)

			occupancy, err := session.service.RefreshOccupancy(ctx)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), occupancy)
			}

			visibility := "hidden"
			if session.presenter.RemoveAllVisible() {
				visibility = "shown"
			}
			cartID := occupancy.CartID
			if cartID == "" {
				cartID = "none"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "cart: %s\nline items: %d\nremove-all: %s\n", cartID, occupancy.LineItems, visibility)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newCartShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display the cart with its line items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			session, err := app.openCartSession(ctx)
			if err != nil {
				return err
			}
			defer app.closeCartSession(ctx, session)

			snapshot, err := session.service.Snapshot(ctx)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), snapshot)
			}

			rendered, err := app.cartRenderer(snapshot)
			if err != nil {
				return fmt.Errorf("render cart: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func writeJSON(w io.Writer, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json output: %w", err)
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}
