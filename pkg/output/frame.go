// Package output holds the finished 8-bit image and writes it to disk.
package output

import (
	"image"
	"image/color"
)

// RGB is one quantized pixel
type RGB struct {
	R, G, B uint8
}

// Frame is a row-major grid of quantized pixels. Row 0 is the top of the image.
//
// Each pixel is written once by the goroutine that owns its row; Frame does
// no locking of its own.
type Frame struct {
	Width  int
	Height int
	Pixels []RGB
}

// NewFrame allocates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]RGB, width*height),
	}
}

// Set stores the pixel at (row, col)
func (f *Frame) Set(row, col int, c RGB) {
	f.Pixels[row*f.Width+col] = c
}

// Get returns the pixel at (row, col)
func (f *Frame) Get(row, col int) RGB {
	return f.Pixels[row*f.Width+col]
}

// Row returns the backing slice for one row
func (f *Frame) Row(row int) []RGB {
	return f.Pixels[row*f.Width : (row+1)*f.Width]
}

// ColorModel implements image.Image
func (f *Frame) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.Width, f.Height)
}

// At implements image.Image
func (f *Frame) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(f.Bounds())) {
		return color.RGBA{}
	}
	p := f.Get(y, x)
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 255}
}
