package util

import (
	"os"
	"path/filepath"
	"strings"
)

// HomeDir returns the user's home directory, falling back to the working directory.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		if wd, werr := os.Getwd(); werr == nil {
			return wd
		}
		return "."
	}
	return home
}

// ResolvePath expands a leading "~" and anchors relative paths at root.
// Blank input resolves to the empty string.
func ResolvePath(p, root string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	if p == "~" {
		return root
	}
	if strings.HasPrefix(p, "~/") || strings.HasPrefix(p, "~"+string(filepath.Separator)) {
		return filepath.Join(root, p[2:])
	}
	if !filepath.IsAbs(p) {
		return filepath.Join(root, p)
	}
	return p
}

// HasExtension reports whether name ends with one of exts, ignoring case.
func HasExtension(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}
