package imagesrc

import (
	"image"
	"image/color"
	"testing"

	"github.com/bdwalton/pietvm/codel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// solidBlocks builds an RGBA image of gw*codelSize x gh*codelSize
// pixels, filled block-by-block from colours laid out row-major.
func solidBlocks(gw, gh, codelSize int, colours []color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, gw*codelSize, gh*codelSize))
	for by := 0; by < gh; by++ {
		for bx := 0; bx < gw; bx++ {
			c := colours[by*gw+bx]
			for dy := 0; dy < codelSize; dy++ {
				for dx := 0; dx < codelSize; dx++ {
					img.Set(bx*codelSize+dx, by*codelSize+dy, c)
				}
			}
		}
	}
	return img
}

func TestFromImageSamplesOnePixelPerBlock(t *testing.T) {
	img := solidBlocks(2, 1, 3, []color.Color{
		color.RGBA{0xFF, 0xC0, 0xC0, 0xFF}, // light red
		color.RGBA{0x00, 0x00, 0x00, 0xFF}, // black
	})

	g, err := FromImage(img, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Width())
	assert.Equal(t, 1, g.Height())
	assert.True(t, g.At(0, 0).SameBlock(codel.NewColour(codel.Red, codel.Light)))
	assert.True(t, g.At(1, 0).IsBlack())
}

func TestFromImageRejectsNonMultipleDimensions(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 5, 4))
	_, err := FromImage(img, 3)
	assert.Error(t, err)
}

func TestFromImageRejectsNonPositiveCodelSize(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	_, err := FromImage(img, 0)
	assert.Error(t, err)
}

func TestFromImageUnknownColourIsInvalid(t *testing.T) {
	img := solidBlocks(1, 1, 1, []color.Color{color.RGBA{0x12, 0x34, 0x56, 0xFF}})

	g, err := FromImage(img, 1)
	require.NoError(t, err)
	assert.True(t, g.At(0, 0).IsInvalid())
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load("/nonexistent/path/does-not-exist.png", 1)
	assert.Error(t, err)
}
