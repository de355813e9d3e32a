// Package imagesrc loads a raster image from disk and samples it down
// to a codel Grid: one representative pixel per C×C block, classified
// through codel.Classify. It opens the file and validates its
// dimensions before handing back a usable grid.
package imagesrc

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/bdwalton/pietvm/codel"
	"github.com/bdwalton/pietvm/grid"
	"golang.org/x/image/bmp"
	"golang.org/x/image/webp"
)

// Load opens path, decodes it as PNG, GIF, JPEG, BMP, or WebP
// (image.Decode picks the format from the file's leading bytes), and
// samples it into a codel Grid using codelSize as the block edge
// length in pixels.
//
// The image's width and height must each be an exact multiple of
// codelSize; any other colour than the 20 enumerated palette entries
// classifies as codel.Invalid, which the navigator treats as black.
func Load(path string, codelSize int) (*grid.Grid, error) {
	if codelSize <= 0 {
		return nil, fmt.Errorf("codel size must be positive, got %d", codelSize)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open image %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("couldn't decode image %q: %w", path, err)
	}

	return FromImage(img, codelSize)
}

// FromImage samples a decoded image into a codel Grid, without
// touching the filesystem. Exposed separately from Load so callers
// that already hold a decoded image (or a synthetic one built for
// testing) can skip the file-opening step entirely.
func FromImage(img image.Image, codelSize int) (*grid.Grid, error) {
	if codelSize <= 0 {
		return nil, fmt.Errorf("codel size must be positive, got %d", codelSize)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w%codelSize != 0 || h%codelSize != 0 {
		return nil, fmt.Errorf("image dimensions %dx%d are not exact multiples of codel size %d", w, h, codelSize)
	}

	gw, gh := w/codelSize, h/codelSize
	cells := make([]codel.Cell, gw*gh)

	for y := 0; y < gh; y++ {
		for x := 0; x < gw; x++ {
			px := b.Min.X + x*codelSize
			py := b.Min.Y + y*codelSize
			r, g, bl, _ := sampleRGB(img, px, py)
			cells[y*gw+x] = codel.Classify(r, g, bl)
		}
	}

	return grid.New(gw, gh, cells), nil
}

// sampleRGB reads the RGB triple at (x, y) regardless of the
// decoded image's native colour model, obtaining the bytes directly
// from a color.NRGBA conversion rather than unpacking a packed
// indexed-palette byte by hand, which would tie correctness to host
// endianness.
func sampleRGB(img image.Image, x, y int) (r, g, b, a uint8) {
	c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	return c.R, c.G, c.B, c.A
}

func init() {
	// image/png, image/gif and image/jpeg self-register via their own
	// init funcs on blank import; bmp and webp need the same explicit
	// registration as any golang.org/x/image codec.
	image.RegisterFormat("bmp", "BM", bmp.Decode, bmp.DecodeConfig)
	image.RegisterFormat("webp", "RIFF", webp.Decode, webp.DecodeConfig)
}
