// Package cmd implements the bilidl command-line interface.
package cmd

import (
	"github.com/bilidl/bilidl/color"
	"github.com/bilidl/bilidl/cookie"
	"github.com/bilidl/bilidl/icon"
	"github.com/bilidl/bilidl/style"
	"github.com/bilidl/bilidl/where"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cookiesCmd)
	cookiesCmd.AddCommand(cookiesDirsCmd)
}

// cookiesCmd lists the detected cookie files and what they contain.
var cookiesCmd = &cobra.Command{
	Use:   "cookies [file]",
	Short: "Inspect detected cookie files",
	Long:  "Inspect the given cookie file, or every cookie file found in the search directories.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var files []string

		if len(args) == 1 {
			path, err := cookie.Resolve(args[0])
			handleErr(err)
			files = []string{path}
		} else {
			files = cookie.Find()
		}

		if len(files) == 0 {
			cmd.Printf("%s No cookie files found. See %s\n", icon.Get(icon.Warn), style.Fg(color.Yellow)("bilidl cookies dirs"))
			return
		}

		preferred := cookie.Detect().OrEmpty()
		for _, path := range files {
			name := style.New().Bold(true).Foreground(color.Purple).Render(path)
			if path == preferred {
				name += style.Fg(color.Green)(" (default)")
			}
			cmd.Println(name)

			report, err := cookie.Inspect(path)
			if err != nil {
				cmd.Printf("  %s %v\n", icon.Get(icon.Fail), err)
				continue
			}

			cmd.Printf("  %s %s\n", icon.Get(icon.Cookie), report)
			if !report.Session {
				cmd.Printf("  %s %s\n", icon.Get(icon.Warn), style.Faint("Without "+cookie.SessionCookie+" only guest formats are available."))
			}
		}
	},
}

// cookiesDirsCmd lists the directories scanned for cookie files.
var cookiesDirsCmd = &cobra.Command{
	Use:   "dirs",
	Short: "List the directories searched for cookie files",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, dir := range where.CookieSearchDirs() {
			cmd.Println(dir)
		}
	},
}
