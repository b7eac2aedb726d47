package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/multicart-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage the stored storefront session credential",
	}

	cmd.AddCommand(
		newSessionSetCmd(app),
		newSessionShowCmd(app),
		newSessionClearCmd(app),
	)

	return cmd
}

func newSessionSetCmd(app *app) *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store the session cookie value for the configured storefront",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token = strings.TrimSpace(token)
			if token == "" {
				return errors.New("session token must not be empty")
			}

			key, err := app.sessionKey()
			if err != nil {
				return err
			}
			if err := app.secretStore.Put(cmd.Context(), key, token); err != nil {
				return fmt.Errorf("store session credential: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Stored session credential as %s\n", key)
			return err
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Session cookie value")
	_ = cmd.MarkFlagRequired("token")

	return cmd
}

func newSessionShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show whether a session credential is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := app.sessionKey()
			if err != nil {
				return err
			}

			token, err := app.secretStore.Get(cmd.Context(), key)
			if err != nil {
				if errors.Is(err, domain.ErrSecretNotFound) {
					_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: no session stored\n", key)
					return err
				}
				return fmt.Errorf("load session credential: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", key, maskToken(token))
			return err
		},
	}
}

func newSessionClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget the stored session credential",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := app.sessionKey()
			if err != nil {
				return err
			}
			if err := app.secretStore.Delete(cmd.Context(), key); err != nil {
				return fmt.Errorf("delete session credential: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Cleared %s\n", key)
			return err
		},
	}
}

func maskToken(token string) string {
	const visible = 4
	if len(token) <= visible {
		return strings.Repeat("*", len(token))
	}

	return token[:visible] + strings.Repeat("*", len(token)-visible)
}
