package resizer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleter(t *testing.T) {
	root := t.TempDir()
	sep := string(filepath.Separator)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Pictures", "holiday"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "pets"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".cache"), 0755))
	for _, name := range []string{"photo.png", "Portrait.JPG", "plan.pdf", "other.png"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), nil, 0644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "Pictures", "cat.jpg"), nil, 0644))

	c := NewCompleter(root, []string{".png", ".jpg"}, 10)

	t.Run("Prefix in root", func(t *testing.T) {
		assert.Equal(t, []string{
			filepath.Join(root, "pets") + sep,
			filepath.Join(root, "Pictures") + sep,
			filepath.Join(root, "photo.png"),
			filepath.Join(root, "Portrait.JPG"),
		}, c.Complete("p"))
	})

	t.Run("Directory listing", func(t *testing.T) {
		assert.Equal(t, []string{
			filepath.Join(root, "Pictures", "holiday") + sep,
			filepath.Join(root, "Pictures", "cat.jpg"),
		}, c.Complete(filepath.Join(root, "Pictures")+sep))
	})

	t.Run("Tilde", func(t *testing.T) {
		assert.Equal(t, []string{filepath.Join(root, "other.png")}, c.Complete("~/o"))
	})

	t.Run("Hidden only on dot", func(t *testing.T) {
		assert.Empty(t, c.Complete("c"))
		assert.Equal(t, []string{filepath.Join(root, ".cache") + sep}, c.Complete(".c"))
	})

	t.Run("Empty and missing", func(t *testing.T) {
		assert.Nil(t, c.Complete(""))
		assert.Nil(t, c.Complete(filepath.Join(root, "nope", "x")))
	})

	t.Run("Limit", func(t *testing.T) {
		limited := NewCompleter(root, []string{".png", ".jpg"}, 2)
		assert.Len(t, limited.Complete("p"), 2)
	})
}
