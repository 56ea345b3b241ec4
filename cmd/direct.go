// Package cmd implements the bilidl command-line interface.
package cmd

import (
	"os"

	"github.com/bilidl/bilidl/cookie"
	"github.com/bilidl/bilidl/icon"
	"github.com/bilidl/bilidl/tools"
	"github.com/bilidl/bilidl/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(directCmd)

	directCmd.Flags().StringP("dir", "d", "", "Download directory")
	directCmd.Flags().StringP("cookies", "c", "", "Cookie file passed to aria2c")
}

// directCmd fetches a file URL with aria2c alone, bypassing yt-dlp.
var directCmd = &cobra.Command{
	Use:   "direct url",
	Short: "Download a direct file URL with aria2c",
	Long:  "Download a direct media or file URL with aria2c, without extraction. Useful for links yt-dlp does not support.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		found := tools.Detect()
		if found.Aria2c.IsAbsent() {
			cmd.PrintErrln(tools.MissingBanner("aria2c"))
			handleErr(tools.ErrNoAria2)
		}

		dir := lo.Must(cmd.Flags().GetString("dir"))
		if dir == "" {
			dir = where.Downloads()
		}

		cookiePath := mo.None[string]()
		if flag := lo.Must(cmd.Flags().GetString("cookies")); flag != "" {
			path, err := cookie.Resolve(flag)
			handleErr(err)
			cookiePath = mo.Some(path)
		}

		ctx, stop := signalContext(cmd)
		defer stop()

		handleErr(tools.RunAria2(ctx, found.Aria2c, args[0], dir, cookiePath, os.Stdout))
		cmd.Printf("%s Saved into %s\n", icon.Get(icon.Success), dir)
	},
}
