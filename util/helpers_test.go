package util

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePath(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "home", "user")
	abs := filepath.Join(string(filepath.Separator), "tmp", "a.png")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Empty", "", ""},
		{"Blank", "   ", ""},
		{"Tilde", "~", root},
		{"Tilde child", "~/pics/a.png", filepath.Join(root, "pics", "a.png")},
		{"Relative", "pics/a.png", filepath.Join(root, "pics", "a.png")},
		{"Absolute", abs, abs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolvePath(tt.input, root))
		})
	}
}

func TestHasExtension(t *testing.T) {
	exts := []string{".png", ".jpg"}
	assert.True(t, HasExtension("a.png", exts))
	assert.True(t, HasExtension("B.JPG", exts))
	assert.False(t, HasExtension("c.gif", exts))
	assert.False(t, HasExtension("noext", exts))
}

func TestHomeDirNotEmpty(t *testing.T) {
	assert.NotEmpty(t, HomeDir())
}
