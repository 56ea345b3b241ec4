// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/bilidl/bilidl/color"
	"github.com/bilidl/bilidl/constant"
	"github.com/bilidl/bilidl/key"
	"github.com/bilidl/bilidl/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.App + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	case []int:
		return "[]int"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	// register validates and adds a new configuration field to the global registry.
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		f := Field{Key: k, Value: v, Description: desc}
		Default[k] = f
		EnvExposed = append(EnvExposed, k)
	}

	register(key.DownloadsPath, "", "Directory to save downloads into.\nWhen empty the first writable of ~/storage/downloads, ~/storage/shared, ~/downloads and ~ is used")
	register(key.DownloadsOutputTemplate, "%(title)s.%(ext)s", "yt-dlp output template, relative to the download directory")
	register(key.DownloadsMergeFormat, "mp4", "Container used when separate video and audio streams are merged")
	register(key.DownloadsOpenAfter, false, "Open the download directory when all tasks are complete")
	register(key.FormatsLimit, 30, "Number of formats shown in the format table")
	register(key.FormatsMaxAttempts, 3, "Invalid selections allowed before falling back to the best format")
	register(key.CookiesAutoDetect, true, "Search well-known directories for a cookies file")
	register(key.CookiesNames, []string{"cookies.txt", "bili_cookies.txt", "cookies2.txt", "bilibili_cookies.txt", "cookie.txt"}, "File names recognized as cookie files")
	register(key.CookiesSearchPaths, []string{}, "Extra directories searched for cookie files")
	register(key.Aria2Args, []string{"-x", "16", "-s", "16", "-k", "1M", "--file-allocation=none"}, "Arguments passed to aria2c when it is used as the external downloader")
	register(key.Aria2Prompt, true, "Ask whether to use aria2c when it is installed")
	register(key.ExtractorCacheTTL, 10, "Minutes extracted metadata is reused for the same URL. 0 disables the cache")
	register(key.ExtractorUpdatePrompt, true, "Offer to update yt-dlp before downloading")
	register(key.ExtractorFFmpegPath, "", "Explicit ffmpeg location handed to yt-dlp.\nWhen empty ffmpeg is looked up in PATH")
	register(key.ProgressThrottle, 180, "Minimum milliseconds between progress line updates")
	register(key.ProgressBar, true, "Draw a progress bar in front of the progress line")
	register(key.PlaylistExpand, false, "Download every entry of YouTube playlists instead of the first one")
	register(key.PlaylistLimit, 0, "Maximum number of playlist entries to expand. 0 means no limit")
	register(key.HistorySave, false, "Record finished downloads in the history file")
	register(key.HistorySuggestURLs, true, "Suggest previously entered URLs at the URL prompt")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, plain, squares, nerd (nerd-font required)")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.LogsMaxSize, 5, "Megabytes a log file may grow to before it is rotated")
	register(key.LogsMaxBackups, 3, "Number of rotated log files to keep")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Enable automatic version check")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
