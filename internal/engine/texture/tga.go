// Package texture provides TGA decoding and texture resource management.
package texture

import (
	"errors"
	"fmt"
)

// TGA decode errors.
var (
	ErrUnsupportedTGAType   = errors.New("unsupported TGA type: only uncompressed true-color (type 2) supported")
	ErrInvalidTGADimensions = errors.New("invalid TGA dimensions or pixel depth")
	ErrTruncatedTGAData     = errors.New("truncated TGA data")
)

const (
	tgaHeaderSize    = 18
	tgaTypeTrueColor = 2
)

// Image is a decoded TGA image. Pix holds tightly packed RGB or RGBA
// bytes, Channels is 3 or 4.
type Image struct {
	Pix      []byte
	Width    int
	Height   int
	Channels int
}

// DecodeTGA decodes an uncompressed true-color TGA byte stream.
//
// Header layout: 1-byte id-length, 1-byte color-map flag, 1-byte image
// type, 5-byte color-map spec, 2-byte x/y origin, 2-byte width/height,
// 1-byte pixel depth; multi-byte fields are little-endian. Pixel data is
// stored B-G-R(-A) and is swapped to R-G-B(-A) on decode.
func DecodeTGA(data []byte) (*Image, error) {
	if len(data) < tgaHeaderSize {
		return nil, ErrTruncatedTGAData
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	// bytes 3-7: color-map spec, bytes 8-11: x/y origin
	width := int(int16(uint16(data[12]) | uint16(data[13])<<8))
	height := int(int16(uint16(data[14]) | uint16(data[15])<<8))
	depth := int(data[16])

	if colorMapType != 0 || imageType != tgaTypeTrueColor {
		return nil, fmt.Errorf("%w (got type %d, color map %d)",
			ErrUnsupportedTGAType, imageType, colorMapType)
	}
	if width <= 0 || height <= 0 || (depth != 24 && depth != 32) {
		return nil, fmt.Errorf("%w (%dx%d at %d bpp)",
			ErrInvalidTGADimensions, width, height, depth)
	}

	bytesPerPixel := depth / 8
	offset := tgaHeaderSize + idLength
	size := width * height * bytesPerPixel
	if offset+size > len(data) {
		return nil, fmt.Errorf("%w (want %d pixel bytes)", ErrTruncatedTGAData, size)
	}

	pix := make([]byte, size)
	copy(pix, data[offset:offset+size])

	// BGR(A) -> RGB(A): swap byte 0 and byte 2 of every pixel.
	for i := 0; i < size; i += bytesPerPixel {
		pix[i], pix[i+2] = pix[i+2], pix[i]
	}

	return &Image{
		Pix:      pix,
		Width:    width,
		Height:   height,
		Channels: bytesPerPixel,
	}, nil
}
