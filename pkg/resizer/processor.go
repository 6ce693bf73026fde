package resizer

import (
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"math"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP decoder

	"github.com/dixieflatline76/Resizer/util/log"
)

// ResizeMode selects how the target width and height are honoured.
type ResizeMode int

const (
	// ResizeModeFit scales to the largest size inside the target box, keeping the source aspect ratio.
	ResizeModeFit ResizeMode = iota
	// ResizeModeStretch scales to exactly the target size, ignoring the source aspect ratio.
	ResizeModeStretch
)

func (m ResizeMode) String() string {
	switch m {
	case ResizeModeFit:
		return "fit"
	case ResizeModeStretch:
		return "stretch"
	default:
		return fmt.Sprintf("ResizeMode(%d)", int(m))
	}
}

// jpegQuality is used when the destination extension is .jpg or .jpeg.
const jpegQuality = 95

// Processor loads, scales and saves images.
type Processor struct {
	resampler imaging.ResampleFilter
}

// NewProcessor creates a Processor using a smooth bicubic resampler.
func NewProcessor() *Processor {
	return &Processor{resampler: imaging.CatmullRom}
}

// CheckPath verifies that path names an existing regular file.
func (p *Processor) CheckPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	return nil
}

// Load validates path and decodes the image stored there.
func (p *Processor) Load(path string) (image.Image, error) {
	if err := p.CheckPath(path); err != nil {
		return nil, err
	}
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeFailure, err)
	}
	b := img.Bounds()
	log.Debugf("Loaded %s (%dx%d)", path, b.Dx(), b.Dy())
	return img, nil
}

// Scale resizes img to width x height according to mode.
// In fit mode the output may be smaller than requested along one axis.
func (p *Processor) Scale(img image.Image, width, height int, mode ResizeMode) (image.Image, error) {
	if img == nil {
		return nil, ErrNoImage
	}
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: target size %dx%d", ErrInvalidNumber, width, height)
	}

	if mode == ResizeModeFit {
		b := img.Bounds()
		width, height = FitSize(b.Dx(), b.Dy(), width, height)
	}
	log.Debugf("Scaling to %dx%d (%s)", width, height, mode)
	return imaging.Resize(img, width, height, p.resampler), nil
}

// Save encodes img to path in the format implied by the path's extension.
// Nothing is written when the extension names no supported format.
func (p *Processor) Save(img image.Image, path string) error {
	if _, err := saveFormat(img, path); err != nil {
		return err
	}
	if err := imaging.Save(img, path, imaging.JPEGQuality(jpegQuality)); err != nil {
		return fmt.Errorf("%w: %w", ErrEncodeFailure, err)
	}
	log.Printf("Saved image to %s", path)
	return nil
}

// Encode writes img to out in the format implied by name's extension.
// The format is checked before the first byte reaches out.
func (p *Processor) Encode(img image.Image, out io.Writer, name string) error {
	format, err := saveFormat(img, name)
	if err != nil {
		return err
	}
	if err := imaging.Encode(out, img, format, imaging.JPEGQuality(jpegQuality)); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncodeFailure, name, err)
	}
	log.Printf("Saved image to %s", name)
	return nil
}

func saveFormat(img image.Image, name string) (imaging.Format, error) {
	if img == nil {
		return 0, fmt.Errorf("%w: %w", ErrEncodeFailure, ErrNoImage)
	}
	format, err := imaging.FormatFromFilename(name)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrEncodeFailure, name, err)
	}
	return format, nil
}

// FitSize returns the largest size inside w x h that keeps the srcW:srcH ratio,
// rounded to whole pixels and never below 1x1.
func FitSize(srcW, srcH, w, h int) (int, int) {
	if srcW <= 0 || srcH <= 0 || w <= 0 || h <= 0 {
		return 0, 0
	}
	if fh := Proportional(w, srcH, srcW); fh <= h {
		return w, fh
	}
	fw := Proportional(h, srcW, srcH)
	if fw > w {
		fw = w
	}
	return fw, h
}

// Proportional returns round(value * num / den), floored at 1.
func Proportional(value, num, den int) int {
	if den == 0 {
		return 1
	}
	r := int(math.Round(float64(value) * float64(num) / float64(den)))
	if r < 1 {
		return 1
	}
	return r
}
