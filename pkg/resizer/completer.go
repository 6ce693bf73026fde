package resizer

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dixieflatline76/Resizer/util"
)

// Completer suggests filesystem paths for a partially typed image path.
type Completer struct {
	root  string
	exts  []string
	limit int
}

// NewCompleter creates a Completer that resolves relative input against root
// and only offers files with one of exts.
func NewCompleter(root string, exts []string, limit int) *Completer {
	return &Completer{root: root, exts: exts, limit: limit}
}

// Complete returns absolute paths matching text. Directories come first and
// carry a trailing separator.
func (c *Completer) Complete(text string) []string {
	resolved := util.ResolvePath(text, c.root)
	if resolved == "" {
		return nil
	}

	dir, prefix := filepath.Split(resolved)
	if strings.HasSuffix(text, "/") || strings.HasSuffix(text, string(filepath.Separator)) {
		dir, prefix = resolved, ""
	}
	if dir == "" {
		dir = c.root
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var dirs, files []string
	showHidden := strings.HasPrefix(prefix, ".")
	lowerPrefix := strings.ToLower(prefix)
	for _, e := range entries {
		name := e.Name()
		if !showHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if !strings.HasPrefix(strings.ToLower(name), lowerPrefix) {
			continue
		}
		full := filepath.Join(dir, name)
		if isDir(e, full) {
			dirs = append(dirs, full+string(filepath.Separator))
		} else if util.HasExtension(name, c.exts) {
			files = append(files, full)
		}
	}

	byName := func(s []string) {
		sort.Slice(s, func(i, j int) bool { return strings.ToLower(s[i]) < strings.ToLower(s[j]) })
	}
	byName(dirs)
	byName(files)

	out := append(dirs, files...)
	if c.limit > 0 && len(out) > c.limit {
		out = out[:c.limit]
	}
	return out
}

// isDir follows symlinks so linked folders are offered as folders.
func isDir(e os.DirEntry, full string) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(full)
	return err == nil && info.IsDir()
}
