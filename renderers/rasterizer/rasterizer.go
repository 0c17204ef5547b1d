// Package rasterizer draws charts directly onto an RGBA image, which is encoded as PNG, JPG, GIF or TIFF depending on the filename extension.
package rasterizer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tdewolff/bezier"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/tiff"
)

// Encoder writes an image in a specific file format.
type Encoder func(io.Writer, image.Image) error

// PNGEncoder writes the image as a PNG file.
func PNGEncoder(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// JPGEncoder writes the image as a JPG file.
func JPGEncoder(opts *jpeg.Options) Encoder {
	return func(w io.Writer, img image.Image) error {
		return jpeg.Encode(w, img, opts)
	}
}

// GIFEncoder writes the image as a GIF file.
func GIFEncoder(opts *gif.Options) Encoder {
	return func(w io.Writer, img image.Image) error {
		return gif.Encode(w, img, opts)
	}
}

// TIFFEncoder writes the image as a TIFF file.
func TIFFEncoder(opts *tiff.Options) Encoder {
	return func(w io.Writer, img image.Image) error {
		return tiff.Encode(w, img, opts)
	}
}

// EncoderFor returns the encoder for the extension of filename.
func EncoderFor(filename string) (Encoder, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".png":
		return PNGEncoder, nil
	case ".jpg", ".jpeg":
		return JPGEncoder(&jpeg.Options{Quality: 90}), nil
	case ".gif":
		return GIFEncoder(nil), nil
	case ".tif", ".tiff":
		return TIFFEncoder(&tiff.Options{Compression: tiff.Deflate}), nil
	default:
		return nil, fmt.Errorf("unknown file extension: %v", ext)
	}
}

var goRegular = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// Backend creates surfaces backed by an in-memory image.
type Backend struct {
	Background color.RGBA
	Foreground color.RGBA // axes and labels
	Grid       color.RGBA
	FontSize   float64 // in pixels
}

// New returns a backend that draws black axes and light gray grid lines on a white background.
func New() *Backend {
	return &Backend{
		Background: bezier.White,
		Foreground: bezier.Black,
		Grid:       bezier.Lightgray,
		FontSize:   12.0,
	}
}

// NewSurface returns a surface of width by height pixels filled with the background color.
func (b *Backend) NewSurface(filename string, width, height int) (bezier.Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid image size %dx%d", bezier.ErrChartConstruction, width, height)
	}
	encoder, err := EncoderFor(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", bezier.ErrChartConstruction, err)
	}

	f, err := goRegular()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", bezier.ErrChartConstruction, err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    b.FontSize,
		DPI:     72.0, // one point per pixel
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", bezier.ErrChartConstruction, err)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(b.Background), image.Point{}, draw.Src)
	return &Surface{
		backend:  b,
		img:      img,
		filename: filename,
		encoder:  encoder,
		face:     face,
	}, nil
}

// Surface is an image that is encoded to its file when presented.
type Surface struct {
	backend   *Backend
	img       *image.RGBA
	filename  string
	encoder   Encoder
	face      font.Face
	presented bool
}

// Image returns the image drawn so far.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// BuildChart returns a chart with its plotting area positioned by the layout.
func (s *Surface) BuildChart(layout bezier.Layout) (bezier.Chart, error) {
	size := s.img.Bounds().Size()
	if err := layout.Validate(size.X, size.Y); err != nil {
		return nil, err
	}
	return &Chart{
		s:      s,
		layout: layout,
		area:   layout.PlotArea(size.X, size.Y),
	}, nil
}

// Present writes the image to the file. The file is only created here, so that failed drawing leaves no file behind.
func (s *Surface) Present() error {
	if s.presented {
		return fmt.Errorf("%w: %s: already presented", bezier.ErrIO, s.filename)
	}
	s.presented = true

	f, err := os.Create(s.filename)
	if err != nil {
		return fmt.Errorf("%w: %v", bezier.ErrIO, err)
	}
	if err := s.encoder(f, s.img); err != nil {
		f.Close()
		return fmt.Errorf("%w: %s: %v", bezier.ErrIO, s.filename, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", bezier.ErrIO, err)
	}
	return s.face.Close()
}

var errNonFinite = errors.New("non-finite coordinate")
