// Package cmd implements the bilidl command-line interface.
package cmd

import (
	"github.com/bilidl/bilidl/interactive"
	"github.com/bilidl/bilidl/menu"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(menuCmd)

	menuCmd.Flags().BoolP("aria2", "a", false, "Use aria2c for segmented downloads without asking")
	menuCmd.Flags().StringP("dir", "d", "", "Download directory, skips the directory prompt")
}

// menuCmd runs the looping main menu.
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Show a menu to download repeatedly and manage the cookie file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signalContext(cmd)
		defer stop()

		handleErr(menu.Run(ctx, menu.Options{
			Base: interactive.Options{
				Aria2: lo.Must(cmd.Flags().GetBool("aria2")),
				Dir:   lo.Must(cmd.Flags().GetString("dir")),
			},
		}))
	},
}
