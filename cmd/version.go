// Package cmd implements the bilidl command-line interface.
package cmd

import (
	"os"
	"runtime"
	"strings"
	"text/template"

	"github.com/bilidl/bilidl/color"
	"github.com/bilidl/bilidl/constant"
	"github.com/bilidl/bilidl/style"
	"github.com/bilidl/bilidl/tools"
	"github.com/bilidl/bilidl/version"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// toolPaths lists the external programs for the version report.
func toolPaths(found tools.Tools) []lo.Tuple2[string, string] {
	path := func(o mo.Option[string]) string {
		return o.OrElse(style.Fg(color.Red)("not found"))
	}

	return []lo.Tuple2[string, string]{
		lo.T2(constant.YtDlp, path(found.YtDlp)),
		lo.T2(constant.Aria2c, path(found.Aria2c)),
		lo.T2(constant.FFmpeg, path(found.FFmpeg)),
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Display only the version string without metadata")
}

// versionCmd displays application version and build metadata.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version, build metadata and external program locations",
	Long:  "Display the current application version, build revision, platform architecture, and related metadata.",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		defer version.Notify(contextOf(cmd))

		versionInfo := struct {
			Version  string
			OS       string
			Arch     string
			BuiltAt  string
			BuiltBy  string
			Revision string
			App      string
			Tools    []lo.Tuple2[string, string]
		}{
			Version:  constant.Version,
			App:      constant.App,
			OS:       runtime.GOOS,
			Arch:     runtime.GOARCH,
			BuiltAt:  strings.TrimSpace(constant.BuiltAt),
			BuiltBy:  constant.BuiltBy,
			Revision: constant.Revision,
			Tools:    toolPaths(tools.Detect()),
		}

		t, err := template.New("version").Funcs(map[string]any{
			"faint":   style.Faint,
			"bold":    style.Bold,
			"magenta": style.Fg(color.Purple),
			"green":   style.Fg(color.Green),
			"repeat":  strings.Repeat,
			"pad": func(s string) string {
				return s + strings.Repeat(" ", 16-len(s))
			},
		}).Parse(`{{ magenta "▇▇▇" }} {{ magenta .App }} 

  {{ faint "Version" }}         {{ bold .Version }}
  {{ faint "Git Commit" }}      {{ bold .Revision }} 
  {{ faint "Build Date" }}  	  {{ bold .BuiltAt }}
  {{ faint "Built By" }}        {{ bold .BuiltBy }}
  {{ faint "Platform" }}        {{ bold .OS }}/{{ bold .Arch }}
{{ range .Tools }}  {{ faint (pad .A) }}{{ .B }}
{{ end }}`)
		handleErr(err)
		handleErr(t.Execute(cmd.OutOrStdout(), versionInfo))
	},
}
