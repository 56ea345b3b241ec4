// Package cookie locates and inspects Netscape-format cookie files handed to the extractor.
package cookie

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bilidl/bilidl/filesystem"
	"github.com/bilidl/bilidl/key"
	"github.com/bilidl/bilidl/log"
	"github.com/bilidl/bilidl/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// looseNamePattern matches ad-hoc exports such as cookie_bili.txt or Cookies-2024.txt.
const looseNamePattern = "cookie*.txt"

// sharedStorageMarkers identify Android shared storage, which is where browser exports usually land.
var sharedStorageMarkers = []string{"/storage", "/sdcard"}

// Find lists every cookie file found in the search directories, in search order.
func Find() []string {
	var (
		fs    = filesystem.API()
		names = viper.GetStringSlice(key.CookiesNames)
		found []string
	)

	for _, dir := range where.CookieSearchDirs() {
		entries, err := fs.ReadDir(dir)
		if err != nil {
			log.Tracef("skipping cookie search dir %s: %v", dir, err)
			continue
		}

		for _, name := range names {
			candidate := filepath.Join(dir, name)
			if isFile(candidate) {
				found = append(found, candidate)
			}
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}

			ok, _ := filepath.Match(looseNamePattern, strings.ToLower(entry.Name()))
			if ok {
				found = append(found, filepath.Join(dir, entry.Name()))
			}
		}
	}

	return lo.Uniq(found)
}

// Detect picks the cookie file to suggest. Files on shared storage are preferred.
func Detect() mo.Option[string] {
	if !viper.GetBool(key.CookiesAutoDetect) {
		return mo.None[string]()
	}

	found := Find()
	if len(found) == 0 {
		return mo.None[string]()
	}

	if preferred, ok := lo.Find(found, onSharedStorage); ok {
		return mo.Some(preferred)
	}

	return mo.Some(found[0])
}

// Resolve expands a user-supplied path and checks that it names a regular file.
func Resolve(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("empty cookie file path")
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand home: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}

	if !isFile(path) {
		return "", fmt.Errorf("cookie file not found: %s", path)
	}

	return path, nil
}

func onSharedStorage(path string) bool {
	return lo.SomeBy(sharedStorageMarkers, func(marker string) bool {
		return strings.Contains(filepath.ToSlash(path), marker)
	})
}

func isFile(path string) bool {
	stat, err := filesystem.API().Stat(path)
	return err == nil && stat.Mode().IsRegular()
}
