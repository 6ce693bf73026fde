package resizer

import (
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"

	"github.com/dixieflatline76/Resizer/util/log"
)

// Axis identifies one of the two dimension fields.
type Axis int

const (
	// AxisWidth is the width field.
	AxisWidth Axis = iota
	// AxisHeight is the height field.
	AxisHeight
)

func (a Axis) String() string {
	if a == AxisHeight {
		return "height"
	}
	return "width"
}

// Clamp describes why a committed value was replaced.
type Clamp int

const (
	// ClampNone means the value was accepted as typed.
	ClampNone Clamp = iota
	// ClampMax means the value exceeded the source dimension.
	ClampMax
	// ClampMin means the value was below one pixel.
	ClampMin
)

// Commit is the outcome of committing a dimension field.
type Commit struct {
	Axis   Axis
	Value  int   // value to show in the committed field
	Clamp  Clamp // set when Value differs from the typed number
	Linked int   // recomputed value of the other field; 0 when it must stay unchanged
}

// Session holds the state of one resizer window.
type Session struct {
	Path       string
	Source     image.Image
	Resized    image.Image
	AspectLock bool
}

// NewSession creates an empty session with the aspect ratio locked.
func NewSession() *Session {
	return &Session{AspectLock: true}
}

// HasSource reports whether an image has been loaded.
func (s *Session) HasSource() bool {
	return s.Source != nil
}

// SourceSize returns the pixel size of the source image, or 0x0 when none is loaded.
func (s *Session) SourceSize() (int, int) {
	if s.Source == nil {
		return 0, 0
	}
	b := s.Source.Bounds()
	return b.Dx(), b.Dy()
}

// SetSource replaces the source image and drops any previous resize result.
func (s *Session) SetSource(path string, img image.Image) {
	s.Path = path
	s.Source = img
	s.Resized = nil
}

// Mode returns the resize mode implied by the aspect lock.
func (s *Session) Mode() ResizeMode {
	if s.AspectLock {
		return ResizeModeFit
	}
	return ResizeModeStretch
}

// CommitDimension validates text typed into the field for axis.
// Out-of-range values are clamped and leave the other field alone; accepted
// values recompute the other field when the aspect ratio is locked.
func (s *Session) CommitDimension(axis Axis, text string) (Commit, error) {
	c := Commit{Axis: axis}
	if !s.HasSource() {
		return c, ErrNoImage
	}

	v, err := ParseDimension(text)
	if err != nil {
		return c, err
	}

	srcW, srcH := s.SourceSize()
	limit, num, den := srcW, srcH, srcW
	if axis == AxisHeight {
		limit, num, den = srcH, srcW, srcH
	}

	switch {
	case v > limit:
		c.Value, c.Clamp = limit, ClampMax
	case v < 1:
		c.Value, c.Clamp = 1, ClampMin
	default:
		c.Value = v
		if s.AspectLock {
			c.Linked = Proportional(v, num, den)
		}
	}
	log.Debugf("Committed %s=%q -> %+v", axis, text, c)
	return c, nil
}

// Resize scales the source image to width x height and stores the result.
func (s *Session) Resize(p *Processor, width, height int) (image.Image, error) {
	if !s.HasSource() {
		return nil, ErrNoImage
	}
	out, err := p.Scale(s.Source, width, height, s.Mode())
	if err != nil {
		return nil, fmt.Errorf("resizing %s: %w", s.Path, err)
	}
	s.Resized = out
	return out, nil
}

// Save writes the last resize result to path.
func (s *Session) Save(p *Processor, path string) error {
	if s.Resized == nil {
		return fmt.Errorf("%w: nothing resized yet", ErrEncodeFailure)
	}
	return p.Save(s.Resized, path)
}

// SaveTo writes the last resize result to out, a file already opened for name.
// out is closed in every case.
func (s *Session) SaveTo(p *Processor, out io.WriteCloser, name string) error {
	var err error
	if s.Resized == nil {
		err = fmt.Errorf("%w: nothing resized yet", ErrEncodeFailure)
	} else {
		err = p.Encode(s.Resized, out, name)
	}
	if cerr := out.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("%w: closing %s: %w", ErrEncodeFailure, name, cerr)
	}
	return err
}

// ParseDimension parses a whole number of pixels, ignoring surrounding spaces.
func ParseDimension(text string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, text)
	}
	return v, nil
}
