// Package playlist expands YouTube playlist URLs into the watch URLs of their videos.
package playlist

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bilidl/bilidl/key"
	"github.com/bilidl/bilidl/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/ytget/ytdlp/v2"
)

const (
	watchURLTemplate = "https://www.youtube.com/watch?v=%s"
	listParam        = "list"
	expandTimeout    = 60 * time.Second
)

var youtubeHosts = []string{"youtube.com", "www.youtube.com", "m.youtube.com", "music.youtube.com", "youtu.be"}

// ErrNotPlaylist is returned for URLs without a playlist id.
var ErrNotPlaylist = errors.New("not a playlist URL")

// Item is a single playlist entry.
type Item struct {
	ID    string
	Title string
	URL   string
}

// fetchItems is swapped in tests.
var fetchItems = func(ctx context.Context, id string, limit int) ([]Item, error) {
	items, err := ytdlp.New().GetPlaylistItemsAll(ctx, id, limit)
	if err != nil {
		return nil, err
	}

	var result []Item
	for _, it := range items {
		result = append(result, Item{
			ID:    it.VideoID,
			Title: it.Title,
			URL:   fmt.Sprintf(watchURLTemplate, it.VideoID),
		})
	}
	return result, nil
}

// ID extracts the playlist id of a YouTube URL.
func ID(raw string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}

	if !lo.Contains(youtubeHosts, strings.ToLower(u.Hostname())) {
		return "", false
	}

	id := u.Query().Get(listParam)
	return id, id != ""
}

// IsPlaylist reports whether raw can be expanded.
func IsPlaylist(raw string) bool {
	_, ok := ID(raw)
	return ok
}

// Expand enumerates a playlist, capped by playlist.limit when it is positive.
func Expand(ctx context.Context, raw string) ([]Item, error) {
	id, ok := ID(raw)
	if !ok {
		return nil, ErrNotPlaylist
	}

	ctx, cancel := context.WithTimeout(ctx, expandTimeout)
	defer cancel()

	limit := max(viper.GetInt(key.PlaylistLimit), 0)
	items, err := fetchItems(ctx, id, limit)
	if err != nil {
		return nil, fmt.Errorf("expand playlist %s: %w", id, err)
	}

	items = lo.Filter(items, func(it Item, _ int) bool { return it.ID != "" })
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	log.Infof("playlist %s expanded into %d items", id, len(items))
	return items, nil
}

// URLs returns the watch URLs of items.
func URLs(items []Item) []string {
	return lo.Map(items, func(it Item, _ int) string { return it.URL })
}
