package filesystem

import (
	"io"
	"os"
	"path/filepath"
)

// WriteAtomic writes through a temporary sibling file that is renamed over path,
// so readers never observe a half-written document.
func WriteAtomic(path string, write func(io.Writer) error) error {
	fs := API()
	if err := fs.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}

	tmp := path + ".tmp"
	f, err := fs.Create(tmp)
	if err != nil {
		return err
	}

	if err := write(f); err != nil {
		_ = f.Close()
		_ = fs.Remove(tmp)
		return err
	}

	if err := f.Close(); err != nil {
		_ = fs.Remove(tmp)
		return err
	}

	return fs.Rename(tmp, path)
}
