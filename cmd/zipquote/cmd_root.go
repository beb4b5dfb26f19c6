package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:   "zipquote",
		Short: "Build contractor estimates on this device or in your account",
		Long: `zipquote builds line-item estimates and keeps them on this device while
you are signed out (up to 5 on the free plan) or in your account once you sign in.

Configuration:
  ZIPQUOTE_HOME     data directory (default ~/.zipquote)
  ZIPQUOTE_API_URL  account API base url`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.home, "home", "", "Data directory (default: $ZIPQUOTE_HOME or ~/.zipquote)")
	root.PersistentFlags().StringVar(&opts.apiURL, "api-url", "", "API base url (default: $ZIPQUOTE_API_URL)")

	root.AddCommand(
		newListCmd(opts),
		newNewCmd(opts),
		newEditCmd(opts),
		newShowCmd(opts),
		newDeleteCmd(opts),
		newQuotaCmd(opts),
		newExportCmd(opts),
		newLoginCmd(opts),
		newLogoutCmd(opts),
		newMigrateCmd(opts),
		newWatchCmd(opts),
	)
	return root
}
