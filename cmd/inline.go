// Package cmd implements the bilidl command-line interface.
package cmd

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/bilidl/bilidl/cookie"
	"github.com/bilidl/bilidl/extractor"
	"github.com/bilidl/bilidl/filesystem"
	"github.com/bilidl/bilidl/inline"
	"github.com/bilidl/bilidl/key"
	"github.com/bilidl/bilidl/query"
	"github.com/bilidl/bilidl/tools"
	"github.com/bilidl/bilidl/where"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("format", "f", "", "Format selector to pick")
	inlineCmd.Flags().StringP("formats", "F", "", "Filter for the listed formats")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as JSON, one document per URL")
	inlineCmd.Flags().BoolP("download", "D", false, "Download the picked format, best when none is picked")
	inlineCmd.Flags().StringP("dir", "d", "", "Download directory")
	inlineCmd.Flags().BoolP("aria2", "a", false, "Use aria2c for segmented downloads when installed")
	inlineCmd.Flags().StringP("cookies", "c", "", "Cookie file in Netscape format")
	inlineCmd.Flags().Bool("no-cookies", false, "Never use a cookie file")
	inlineCmd.Flags().IntP("limit", "l", 0, "Maximum number of formats listed, 0 for all")
	inlineCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	inlineCmd.MarkFlagsMutuallyExclusive("cookies", "no-cookies")

	inlineCmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}
}

// inlineCmd lists or downloads formats without prompting.
var inlineCmd = &cobra.Command{
	Use:   "inline urls...",
	Short: "List or download formats without prompts",
	Long: `Run non-interactively, for scripts.

Format selectors:
  best, audio, video - the download presets
  [number] - select a format by its index in the listing (starting from 1)
  id:[format] - pass a yt-dlp format selector unchanged

Format filters:
  all - list every format
  video+audio, video, audio - list formats of that kind
  @[substring]@ - list formats whose note contains substring

Without --download the picked selector, or the format table, is printed.`,
	Example: "  bilidl inline https://www.bilibili.com/video/BV1xx411c7mD --json\n" +
		"  bilidl inline https://b23.tv/abc123 --format 1 --download",
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		output := lo.Must(cmd.Flags().GetString("output"))
		var writer io.Writer
		if output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer file.Close()
			writer = file
		} else {
			writer = os.Stdout
		}

		formatPicker := mo.None[inline.FormatPicker]()
		if flag := lo.Must(cmd.Flags().GetString("format")); flag != "" {
			fn, err := inline.ParseFormatPicker(flag)
			handleErr(err)
			formatPicker = mo.Some(fn)
		}

		formatsFilter := mo.None[inline.FormatsFilter]()
		if flag := lo.Must(cmd.Flags().GetString("formats")); flag != "" {
			fn, err := inline.ParseFormatsFilter(flag)
			handleErr(err)
			formatsFilter = mo.Some(fn)
		}

		found := tools.Detect()

		cookiePath := mo.None[string]()
		if !lo.Must(cmd.Flags().GetBool("no-cookies")) {
			if flag := lo.Must(cmd.Flags().GetString("cookies")); flag != "" {
				path, err := cookie.Resolve(flag)
				handleErr(err)
				cookiePath = mo.Some(path)
			} else {
				cookiePath = cookie.Detect()
			}
		}

		dir := lo.Must(cmd.Flags().GetString("dir"))
		if dir == "" {
			dir = where.Downloads()
		}

		limit := lo.Must(cmd.Flags().GetInt("limit"))
		if !cmd.Flags().Changed("limit") {
			limit = viper.GetInt(key.FormatsLimit)
		}

		aria2 := lo.Must(cmd.Flags().GetBool("aria2")) && found.Aria2c.IsPresent()

		ctx, stop := signalContext(cmd)
		defer stop()

		options := &inline.Options{
			Out: writer,
			Err: os.Stderr,
			Extractor: extractor.New(extractor.Options{
				Executable: found.YtDlp,
				Cookie:     cookiePath,
				FFmpeg:     found.FFmpeg,
			}),
			URLs:          args,
			Json:          lo.Must(cmd.Flags().GetBool("json")),
			Download:      lo.Must(cmd.Flags().GetBool("download")),
			Dir:           dir,
			Aria2:         aria2,
			Limit:         limit,
			FormatPicker:  formatPicker,
			FormatsFilter: formatsFilter,
		}

		handleErr(inline.Run(ctx, options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

// inlineSchemaCmd generates the JSON schema of the inline output.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema of the structured inline output",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "format", "output":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&inline.Output{})))
	},
}
