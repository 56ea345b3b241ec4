// Package history records finished downloads when history.save is enabled.
package history

import (
	"time"

	"github.com/bilidl/bilidl/filesystem"
	"github.com/bilidl/bilidl/key"
	"github.com/bilidl/bilidl/where"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

var cacher = gache.New[map[string]*Record](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// now is swapped in tests.
var now = time.Now

// Get returns every recorded download keyed by URL.
func Get() (map[string]*Record, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Record), nil
	}
	return cached, nil
}

// List returns the records newest first.
func List() ([]*Record, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	records := lo.Values(saved)
	slices.SortFunc(records, func(a, b *Record) int {
		return b.Time.Compare(a.Time)
	})
	return records, nil
}

// Save records a finished download. It is a no-op unless history.save is set.
// Downloading the same URL again replaces the entry and bumps its count.
func Save(record Record) error {
	if !viper.GetBool(key.HistorySave) {
		return nil
	}

	saved, err := Get()
	if err != nil {
		return err
	}

	record.Time = now()
	record.Count = 1
	if existing, ok := saved[record.encode()]; ok {
		record.Count = existing.Count + 1
	}

	saved[record.encode()] = &record
	return cacher.Set(saved)
}

// Remove deletes a single record.
func Remove(record *Record) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, record.encode())
	return cacher.Set(saved)
}

// Clear forgets every record.
func Clear() error {
	return cacher.Set(make(map[string]*Record))
}
