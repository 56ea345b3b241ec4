// Package cmd implements the bilidl command-line interface.
package cmd

import (
	"github.com/bilidl/bilidl/extractor"
	"github.com/bilidl/bilidl/icon"
	"github.com/bilidl/bilidl/tools"
	"github.com/bilidl/bilidl/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(updateCmd)
}

// updateCmd self-updates the yt-dlp found in PATH, installing one first when there is none.
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update yt-dlp to its latest release",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signalContext(cmd)
		defer stop()

		erase := util.PrintErasable(icon.Get(icon.Progress) + " Updating yt-dlp...")
		version, err := extractor.New(extractor.Options{Executable: tools.Detect().YtDlp}).Update(ctx)
		erase()
		handleErr(err)

		cmd.Printf("%s yt-dlp %s\n", icon.Get(icon.Success), version)
	},
}
