// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bilidl/bilidl/constant"
	"github.com/bilidl/bilidl/filesystem"
	"github.com/bilidl/bilidl/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "BILIDL_CONFIG_PATH"

// ensureDir guarantees the existence of a directory at the specified path, creating it if necessary.
func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the primary application configuration directory.
// It prioritizes the XDG_CONFIG_HOME specification on Linux and equivalent user profile paths on Darwin and Windows.
// Direct override: The path resolution can be explicitly specified via the BILIDL_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// Cache resolves the absolute path to the application's persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.App))
}

// Logs resolves the absolute path to the directory used for application diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// History resolves the absolute path to the download history file.
func History() string {
	return filepath.Join(Config(), "history.json")
}

// Queries resolves the absolute path to the entered URL registry used for prompt suggestions.
func Queries() string {
	return filepath.Join(Cache(), "urls.json")
}

// Metadata resolves the directory holding cached extraction results.
func Metadata() string {
	return ensureDir(filepath.Join(Cache(), "metadata"))
}

// Location is a named application path printed by the where command.
type Location struct {
	Name string
	Path func() string
	// Listed locations are printed when no name is asked for.
	Listed bool
}

// Locations returns the named application paths in display order.
func Locations() []Location {
	return []Location{
		{"config", Config, true},
		{"downloads", Downloads, true},
		{"logs", Logs, true},
		{"history", History, true},
		{"cache", Cache, false},
		{"metadata", Metadata, false},
		{"queries", Queries, false},
	}
}

// Lookup finds a location by name, ignoring case.
func Lookup(name string) (Location, bool) {
	return lo.Find(Locations(), func(l Location) bool {
		return strings.EqualFold(l.Name, strings.TrimSpace(name))
	})
}

// home returns the user's home directory, or "." when it cannot be determined.
func home() string {
	h, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return h
}

// DownloadCandidates lists the directories probed for downloads, in order of preference.
// Termux exposes shared storage under ~/storage, which is why those come first.
func DownloadCandidates() []string {
	h := home()
	return []string{
		filepath.Join(h, "storage", "downloads"),
		filepath.Join(h, "storage", "shared"),
		filepath.Join(h, "downloads"),
		h,
	}
}

// Downloads resolves the directory finished files are written to.
// A configured downloads.path always wins and is created on demand; otherwise
// the first existing writable candidate is used, falling back to the working directory.
func Downloads() string {
	if custom := viper.GetString(key.DownloadsPath); custom != "" {
		return ensureDir(custom)
	}

	for _, candidate := range DownloadCandidates() {
		if writable(candidate) {
			return candidate
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// CookieSearchDirs lists the directories scanned for cookie files.
func CookieSearchDirs() []string {
	h := home()
	dirs := []string{
		h,
		filepath.Join(h, "storage", "downloads"),
		filepath.Join(h, "storage", "shared"),
		filepath.Join(h, "Download"),
		"/sdcard/Download",
		"/sdcard",
	}

	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}

	dirs = append(dirs, viper.GetStringSlice(key.CookiesSearchPaths)...)
	return lo.Uniq(dirs)
}

// writable reports whether path is an existing directory that accepts new files.
func writable(path string) bool {
	fs := filesystem.API()

	isDir, err := fs.IsDir(path)
	if err != nil || !isDir {
		return false
	}

	probe, err := fs.TempFile(path, "."+constant.App+"-probe-")
	if err != nil {
		return false
	}

	name := probe.Name()
	_ = probe.Close()
	_ = fs.Remove(name)
	return true
}
