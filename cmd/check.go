// Package cmd implements the bilidl command-line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/bilidl/bilidl/color"
	"github.com/bilidl/bilidl/constant"
	"github.com/bilidl/bilidl/icon"
	"github.com/bilidl/bilidl/style"
	"github.com/bilidl/bilidl/tools"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

// checkCmd reports which external programs are installed.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that yt-dlp, aria2c and ffmpeg are installed",
	Run: func(cmd *cobra.Command, args []string) {
		found := tools.Detect()

		for _, tool := range []lo.Tuple2[string, mo.Option[string]]{
			lo.T2(constant.YtDlp, found.YtDlp),
			lo.T2(constant.Aria2c, found.Aria2c),
			lo.T2(constant.FFmpeg, found.FFmpeg),
		} {
			name := style.New().Bold(true).Foreground(color.Purple).Render(tool.A)
			if path, ok := tool.B.Get(); ok {
				fmt.Printf("%s %s %s\n", icon.Get(icon.Success), name, style.Faint(path))
			} else {
				fmt.Printf("%s %s %s\n", icon.Get(icon.Fail), name, style.Fg(color.Red)("not found"))
			}
		}

		missing := found.Missing()
		for _, dep := range missing {
			fmt.Println(tools.MissingBanner(dep))
		}

		if len(missing) > 0 {
			os.Exit(1)
		}
	},
}
