package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/kaosom/zipquote/internal/domain/entities"
	"github.com/kaosom/zipquote/internal/usecase"

	"github.com/spf13/cobra"
)

const migratePrompt = "This will send all local estimates to your account and clear them from this device. Continue? [y/N] "

func newLoginCmd(opts *globalOptions) *cobra.Command {
	var userID, token string
	var premium bool
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store the session issued by the zipquote API",
		Args:  cobra.NoArgs,
		RunE: withApp(opts, func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
			prev := a.sessions.CurrentSession(ctx)
			if err := a.provider.SignIn(entities.Session{UserID: userID, AccessToken: token, Premium: premium}); err != nil {
				return err
			}
			cur := a.sessions.CurrentSession(ctx)
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", cur.UserID)

			offer, err := a.sync.OnSessionChanged(ctx, entities.SessionChanged{Previous: prev, Current: cur})
			if err != nil {
				return err
			}
			printOffer(cmd.OutOrStdout(), offer)
			return nil
		}),
	}
	cmd.Flags().StringVar(&userID, "user-id", "", "Account id (JWT subject)")
	cmd.Flags().StringVar(&token, "token", "", "Bearer token")
	cmd.Flags().BoolVar(&premium, "premium", false, "Account is on the premium plan")
	_ = cmd.MarkFlagRequired("user-id")
	_ = cmd.MarkFlagRequired("token")
	return cmd
}

func newLogoutCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session; account estimates stay in the account",
		Args:  cobra.NoArgs,
		RunE: withApp(opts, func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
			if err := a.provider.SignOut(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		}),
	}
}

func newMigrateCmd(opts *globalOptions) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Upload the estimates kept on this device to your account",
		Args:  cobra.NoArgs,
		RunE: withApp(opts, func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
			if a.sessions.CurrentSession(ctx).IsAnonymous() {
				return usecase.ErrNotAuthenticated
			}
			if !yes && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), migratePrompt) {
				fmt.Fprintln(cmd.OutOrStdout(), "Migration cancelled, nothing was changed")
				return nil
			}

			res, err := a.sync.MigrateLocalToRemote(ctx)
			if err != nil {
				if res.Total > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %d of %d estimates before failing; local estimates were kept\n", res.Migrated, res.Total)
				}
				return err
			}
			if res.Total == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No local estimates to migrate")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Migrated %d estimates to your account\n", res.Migrated)
			return nil
		}),
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func newWatchCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch for sign-in and offer to migrate local estimates",
		Args:  cobra.NoArgs,
		RunE: withApp(opts, func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
			defer stop()

			events, err := a.provider.Subscribe(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Watching %s (Ctrl+C to stop)\n", a.provider.Path())
			err = a.sync.WatchSessions(ctx, events, func(offer usecase.MigrationOffer) {
				printOffer(cmd.OutOrStdout(), offer)
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}),
	}
}

func printOffer(w io.Writer, offer usecase.MigrationOffer) {
	if !offer.Available {
		return
	}
	fmt.Fprintf(w, "%d estimates are saved on this device. Run `zipquote migrate` to upload them to %s.\n", offer.LocalCount, offer.Session.UserID)
}

func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
