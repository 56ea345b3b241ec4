// Package cmd implements the bilidl command-line interface.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/bilidl/bilidl/color"
	"github.com/bilidl/bilidl/constant"
	"github.com/bilidl/bilidl/icon"
	"github.com/bilidl/bilidl/interactive"
	"github.com/bilidl/bilidl/key"
	"github.com/bilidl/bilidl/log"
	"github.com/bilidl/bilidl/query"
	"github.com/bilidl/bilidl/style"
	"github.com/bilidl/bilidl/version"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, square)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().BoolP("write-history", "H", true, "Record finished downloads in the local history")
	lo.Must0(viper.BindPFlag(key.HistorySave, rootCmd.PersistentFlags().Lookup("write-history")))

	rootCmd.Flags().StringP("cookies", "c", "", "Cookie file in Netscape format, skips detection")
	rootCmd.Flags().Bool("no-cookies", false, "Never use a cookie file")
	rootCmd.MarkFlagsMutuallyExclusive("cookies", "no-cookies")

	rootCmd.Flags().BoolP("aria2", "a", false, "Use aria2c for segmented downloads without asking")
	rootCmd.Flags().StringP("dir", "d", "", "Download directory, skips the directory prompt")
	rootCmd.Flags().StringP("format", "f", "", "yt-dlp format selector, skips the format prompt")
	rootCmd.Flags().BoolP("update", "u", false, "Update yt-dlp before downloading without asking")
	rootCmd.Flags().BoolP("expand-playlists", "p", false, "Download every entry of playlist URLs")
	lo.Must0(viper.BindPFlag(key.PlaylistExpand, rootCmd.Flags().Lookup("expand-playlists")))

	lo.Must0(rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{constant.FormatBest, constant.FormatAudio, constant.FormatVideo}, cobra.ShellCompDirectiveNoFileComp
	}))

	rootCmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify(contextOf(cmd))
	})
}

// rootCmd runs the interactive downloader.
var rootCmd = &cobra.Command{
	Use:   constant.App + " [urls...]",
	Short: "An interactive BiliBili downloader built on yt-dlp",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - An interactive BiliBili downloader built on yt-dlp, aria2c and ffmpeg"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		options := &interactive.Options{
			URLs:            args,
			Cookie:          lo.Must(cmd.Flags().GetString("cookies")),
			NoCookies:       lo.Must(cmd.Flags().GetBool("no-cookies")),
			Aria2:           lo.Must(cmd.Flags().GetBool("aria2")),
			Dir:             lo.Must(cmd.Flags().GetString("dir")),
			Format:          lo.Must(cmd.Flags().GetString("format")),
			Update:          lo.Must(cmd.Flags().GetBool("update")),
			ExpandPlaylists: viper.GetBool(key.PlaylistExpand),
		}

		ctx, stop := signalContext(cmd)
		defer stop()

		result, err := interactive.Run(ctx, options)
		handleErr(err)

		if result != nil && len(result.Failed) > 0 {
			os.Exit(1)
		}
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// signalContext is cancelled on Ctrl+C so that yt-dlp and aria2c are stopped with us.
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(contextOf(cmd), os.Interrupt)
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
