package resizer

import (
	"bytes"
	"errors"
	"image/jpeg"
	"math"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitDimensionWithoutImage(t *testing.T) {
	s := NewSession()
	_, err := s.CommitDimension(AxisWidth, "10")
	assert.ErrorIs(t, err, ErrNoImage)
}

func TestCommitDimension(t *testing.T) {
	s := NewSession()
	s.SetSource("src.png", gradient(200, 100))

	tests := []struct {
		name   string
		axis   Axis
		lock   bool
		text   string
		want   Commit
		hasErr error
	}{
		{"Width linked", AxisWidth, true, "50", Commit{Axis: AxisWidth, Value: 50, Linked: 25}, nil},
		{"Height linked", AxisHeight, true, "30", Commit{Axis: AxisHeight, Value: 30, Linked: 60}, nil},
		{"Width unlocked", AxisWidth, false, "50", Commit{Axis: AxisWidth, Value: 50}, nil},
		{"Width at limit", AxisWidth, true, "200", Commit{Axis: AxisWidth, Value: 200, Linked: 100}, nil},
		{"Width over limit", AxisWidth, true, "201", Commit{Axis: AxisWidth, Value: 200, Clamp: ClampMax}, nil},
		{"Height over limit", AxisHeight, true, "5000", Commit{Axis: AxisHeight, Value: 100, Clamp: ClampMax}, nil},
		{"Zero", AxisWidth, true, "0", Commit{Axis: AxisWidth, Value: 1, Clamp: ClampMin}, nil},
		{"Negative", AxisHeight, false, "-4", Commit{Axis: AxisHeight, Value: 1, Clamp: ClampMin}, nil},
		{"Spaces", AxisWidth, true, " 80 ", Commit{Axis: AxisWidth, Value: 80, Linked: 40}, nil},
		{"Text", AxisWidth, true, "abc", Commit{Axis: AxisWidth}, ErrInvalidNumber},
		{"Fraction", AxisHeight, true, "12.5", Commit{Axis: AxisHeight}, ErrInvalidNumber},
		{"Empty", AxisHeight, true, "", Commit{Axis: AxisHeight}, ErrInvalidNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.AspectLock = tt.lock
			got, err := s.CommitDimension(tt.axis, tt.text)
			if tt.hasErr != nil {
				assert.ErrorIs(t, err, tt.hasErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommitWidthFollowsProportion(t *testing.T) {
	s := NewSession()
	s.SetSource("src.png", gradient(37, 23))

	for w := 1; w <= 37; w++ {
		c, err := s.CommitDimension(AxisWidth, strconv.Itoa(w))
		require.NoError(t, err)
		want := int(math.Round(float64(w) * 23 / 37))
		if want < 1 {
			want = 1
		}
		assert.Equal(t, want, c.Linked, "width %d", w)
	}
}

func TestSessionResizeAndSave(t *testing.T) {
	dir := t.TempDir()
	p := NewProcessor()
	s := NewSession()

	_, err := s.Resize(p, 10, 10)
	assert.ErrorIs(t, err, ErrNoImage)

	src, err := p.Load(writeImage(t, dir, "square.png", 300, 300))
	require.NoError(t, err)
	s.SetSource(filepath.Join(dir, "square.png"), src)

	out := filepath.Join(dir, "small.png")
	assert.ErrorIs(t, s.Save(p, out), ErrEncodeFailure, "save before resize")

	resized, err := s.Resize(p, 100, 100)
	require.NoError(t, err)
	assert.Same(t, resized, s.Resized)

	require.NoError(t, s.Save(p, out))
	back, err := p.Load(out)
	require.NoError(t, err)
	assert.Equal(t, 100, back.Bounds().Dx())
	assert.Equal(t, 100, back.Bounds().Dy())

	s.SetSource("other.png", gradient(10, 10))
	assert.Nil(t, s.Resized, "a new source drops the previous result")
}

// bufferCloser records what was written and whether it was closed.
type bufferCloser struct {
	bytes.Buffer
	closed   bool
	closeErr error
}

func (b *bufferCloser) Close() error {
	b.closed = true
	return b.closeErr
}

func TestSessionSaveTo(t *testing.T) {
	p := NewProcessor()
	s := NewSession()
	s.SetSource("square.png", gradient(40, 40))

	t.Run("Before resize", func(t *testing.T) {
		out := &bufferCloser{}
		assert.ErrorIs(t, s.SaveTo(p, out, "small.png"), ErrEncodeFailure)
		assert.True(t, out.closed)
		assert.Zero(t, out.Len())
	})

	_, err := s.Resize(p, 20, 20)
	require.NoError(t, err)

	t.Run("JPEG", func(t *testing.T) {
		out := &bufferCloser{}
		require.NoError(t, s.SaveTo(p, out, "small.jpg"))
		assert.True(t, out.closed)
		back, err := jpeg.Decode(&out.Buffer)
		require.NoError(t, err)
		assert.Equal(t, 20, back.Bounds().Dx())
	})

	t.Run("Unsupported name", func(t *testing.T) {
		out := &bufferCloser{}
		assert.ErrorIs(t, s.SaveTo(p, out, "small.webp"), ErrEncodeFailure)
		assert.True(t, out.closed)
		assert.Zero(t, out.Len())
	})

	t.Run("Close failure", func(t *testing.T) {
		out := &bufferCloser{closeErr: errors.New("disk full")}
		assert.ErrorIs(t, s.SaveTo(p, out, "small.png"), ErrEncodeFailure)
	})
}

func TestSessionMode(t *testing.T) {
	s := NewSession()
	assert.True(t, s.AspectLock)
	assert.Equal(t, ResizeModeFit, s.Mode())
	s.AspectLock = false
	assert.Equal(t, ResizeModeStretch, s.Mode())
}
