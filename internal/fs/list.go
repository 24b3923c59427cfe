package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/unicode/norm"

	"github.com/wend-cli/wend/internal/store"
)

// List reads dir and refills es with its entries: directories first, then
// files and symlinks, each group in the order os.ReadDir returned it.
// Hidden entries are dropped here, at population time, when showHidden is
// false. Names are NFC-normalized. On a read error es is left untouched so
// the caller can keep showing the previous listing.
func List(dir string, showHidden bool, es *store.EntryStore) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("cannot read directory %s: %w", dir, err)
	}

	es.Clear()

	type pending struct {
		name string
		kind store.Kind
	}
	rest := make([]pending, 0, len(entries))

	for _, e := range entries {
		rawName := e.Name()
		fullPath := filepath.Join(dir, rawName)

		if ShouldHideFromListing(fullPath, rawName) {
			continue
		}
		if !showHidden && IsHidden(fullPath, rawName) {
			continue
		}

		isDir := e.IsDir()
		isSymlink := e.Type()&os.ModeSymlink != 0

		// For symlinks, the target decides whether it navigates like a
		// directory. Broken links count as files.
		if isSymlink {
			if targetInfo, err := os.Stat(fullPath); err == nil {
				isDir = targetInfo.IsDir()
			} else {
				isDir = false
			}
		}

		name := norm.NFC.String(rawName)
		kind := classify(isDir, isSymlink)
		if kind.IsDir() {
			es.Append(name, kind)
		} else {
			rest = append(rest, pending{name: name, kind: kind})
		}
	}

	for _, p := range rest {
		es.Append(p.name, p.kind)
	}
	return nil
}

func classify(isDir, isSymlink bool) store.Kind {
	switch {
	case isDir && isSymlink:
		return store.KindSymlinkDir
	case isDir:
		return store.KindDir
	case isSymlink:
		return store.KindSymlink
	default:
		return store.KindFile
	}
}
