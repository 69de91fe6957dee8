package card

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Canvas is the mutable pixel surface a card is composited onto
type Canvas struct {
	rgba *image.RGBA
}

func NewCanvas(width, height int) *Canvas {
	return &Canvas{rgba: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// DrawImage composites img over the canvas with its top-left corner at
// (x, y), blended at the given opacity (0..1).
func (c *Canvas) DrawImage(img image.Image, x, y int, opacity float64) {
	bounds := img.Bounds()
	target := image.Rect(x, y, x+bounds.Dx(), y+bounds.Dy())

	if opacity >= 1 {
		draw.Draw(c.rgba, target, img, bounds.Min, draw.Over)
		return
	}

	alpha := image.NewUniform(color.Alpha{A: uint8(math.Round(opacity * 255))})
	draw.DrawMask(c.rgba, target, img, bounds.Min, alpha, image.Point{}, draw.Over)
}

// DrawMaskedImage composites img through the alpha channel of mask, with the
// mask shifted horizontally by maskOffsetX before it is applied. The masked
// sprite is optionally mirrored and then drawn at (x, y).
func (c *Canvas) DrawMaskedImage(img, mask image.Image, maskOffsetX, x, y int, flip bool) {
	bounds := img.Bounds()
	sprite := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	if mask == nil {
		draw.Draw(sprite, sprite.Bounds(), img, bounds.Min, draw.Src)
	} else {
		maskPoint := mask.Bounds().Min.Sub(image.Pt(maskOffsetX, 0))
		draw.DrawMask(sprite, sprite.Bounds(), img, bounds.Min, mask, maskPoint, draw.Src)
	}

	if flip {
		sprite = flipHorizontal(sprite)
	}

	draw.Draw(c.rgba, sprite.Bounds().Add(image.Pt(x, y)), sprite, image.Point{}, draw.Over)
}

// DrawText renders text with its top-left corner at (x, y)
func (c *Canvas) DrawText(fnt *opentype.Font, size float64, text string, x, y int) error {
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return err
	}
	defer face.Close()

	drawer := &font.Drawer{
		Dst:  c.rgba,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	drawer.DrawString(text)
	return nil
}

// EncodePNG serializes the current canvas contents
func (c *Canvas) EncodePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, c.rgba); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// At reports the pixel at (x, y)
func (c *Canvas) At(x, y int) color.Color {
	return c.rgba.At(x, y)
}

func flipHorizontal(src *image.RGBA) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(bounds)
	for yy := bounds.Min.Y; yy < bounds.Max.Y; yy++ {
		for xx := bounds.Min.X; xx < bounds.Max.X; xx++ {
			dst.Set(bounds.Max.X-1-(xx-bounds.Min.X), yy, src.At(xx, yy))
		}
	}
	return dst
}
