package discovery

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ryanuber/go-glob"
)

type ListOptions struct {
	// Recurse descends into subdirectories. Defaults off; use DefaultOptions
	// for the recursive variant.
	Recurse bool

	// Folders restricts the search to the named subfolders of the root.
	// Entries may be glob patterns ("speaker_*").
	Folders []string
}

func DefaultOptions() ListOptions {
	return ListOptions{Recurse: true}
}

// ListFiles enumerates files under root whose extension matches a known audio
// type. Order follows filesystem enumeration order - no guarantee beyond that.
func ListFiles(root string, opts ListOptions) ([]string, error) {
	roots := make([]string, 0)
	if len(opts.Folders) > 0 {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if !e.IsDir() {
				continue
			}
			for _, pattern := range opts.Folders {
				if glob.Glob(pattern, e.Name()) {
					roots = append(roots, filepath.Join(root, e.Name()))
					break
				}
			}
		}
	} else {
		roots = append(roots, root)
	}

	found := make([]string, 0)
	for _, r := range roots {
		if opts.Recurse {
			err := filepath.WalkDir(r, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if d.IsDir() {
					return nil
				}
				if IsAudioPath(p) {
					found = append(found, p)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
		} else {
			entries, err := os.ReadDir(r)
			if err != nil {
				return nil, err
			}
			for _, e := range entries {
				if e.IsDir() {
					continue
				}
				p := filepath.Join(r, e.Name())
				if IsAudioPath(p) {
					found = append(found, p)
				}
			}
		}
	}

	return found, nil
}

// Getter builds a file-lister partial that searches the given path suffix
// under whatever root it is later handed.
func Getter(suffix string, opts ListOptions) func(root string) ([]string, error) {
	return func(root string) ([]string, error) {
		return ListFiles(filepath.Join(root, suffix), opts)
	}
}
