package texture

import (
	"bytes"
	"errors"
	"testing"
)

// makeTGA builds a TGA byte stream with the given header fields and
// raw pixel payload.
func makeTGA(imageType byte, width, height int16, depth byte, pix []byte) []byte {
	header := make([]byte, tgaHeaderSize)
	header[2] = imageType
	header[12] = byte(width)
	header[13] = byte(width >> 8)
	header[14] = byte(height)
	header[15] = byte(height >> 8)
	header[16] = depth
	return append(header, pix...)
}

func TestDecodeTGA_RoundTrip24(t *testing.T) {
	// 2x2, 24 bpp, stored BGR. Each pixel chosen so the swap is visible.
	pix := []byte{
		1, 2, 3, // -> 3, 2, 1
		10, 20, 30, // -> 30, 20, 10
		100, 110, 120, // -> 120, 110, 100
		200, 210, 220, // -> 220, 210, 200
	}
	img, err := DecodeTGA(makeTGA(2, 2, 2, 24, pix))
	if err != nil {
		t.Fatalf("DecodeTGA() error: %v", err)
	}

	if img.Width != 2 || img.Height != 2 {
		t.Errorf("dimensions = %dx%d, want 2x2", img.Width, img.Height)
	}
	if img.Channels != 3 {
		t.Errorf("channels = %d, want 3", img.Channels)
	}
	want := []byte{
		3, 2, 1,
		30, 20, 10,
		120, 110, 100,
		220, 210, 200,
	}
	if !bytes.Equal(img.Pix, want) {
		t.Errorf("pixels = %v, want %v", img.Pix, want)
	}
}

func TestDecodeTGA_RoundTrip32(t *testing.T) {
	// 1x1, 32 bpp, stored BGRA; alpha must survive untouched.
	img, err := DecodeTGA(makeTGA(2, 1, 1, 32, []byte{1, 2, 3, 4}))
	if err != nil {
		t.Fatalf("DecodeTGA() error: %v", err)
	}
	if img.Channels != 4 {
		t.Errorf("channels = %d, want 4", img.Channels)
	}
	want := []byte{3, 2, 1, 4}
	if !bytes.Equal(img.Pix, want) {
		t.Errorf("pixels = %v, want %v", img.Pix, want)
	}
}

func TestDecodeTGA_SkipsImageID(t *testing.T) {
	data := makeTGA(2, 1, 1, 24, append([]byte("id"), 9, 8, 7))
	data[0] = 2 // id length
	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA() error: %v", err)
	}
	if !bytes.Equal(img.Pix, []byte{7, 8, 9}) {
		t.Errorf("pixels = %v, want [7 8 9]", img.Pix)
	}
}

func TestDecodeTGA_Rejection(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{
			name:    "empty data",
			data:    nil,
			wantErr: ErrTruncatedTGAData,
		},
		{
			name:    "short header",
			data:    make([]byte, 10),
			wantErr: ErrTruncatedTGAData,
		},
		{
			name:    "RLE type 10",
			data:    makeTGA(10, 1, 1, 24, []byte{0, 0, 0}),
			wantErr: ErrUnsupportedTGAType,
		},
		{
			name:    "color-mapped type 1",
			data:    makeTGA(1, 1, 1, 24, []byte{0, 0, 0}),
			wantErr: ErrUnsupportedTGAType,
		},
		{
			name: "color map flag set",
			data: func() []byte {
				d := makeTGA(2, 1, 1, 24, []byte{0, 0, 0})
				d[1] = 1
				return d
			}(),
			wantErr: ErrUnsupportedTGAType,
		},
		{
			name:    "zero width",
			data:    makeTGA(2, 0, 1, 24, nil),
			wantErr: ErrInvalidTGADimensions,
		},
		{
			name:    "negative height",
			data:    makeTGA(2, 1, -1, 24, nil),
			wantErr: ErrInvalidTGADimensions,
		},
		{
			name:    "16 bpp",
			data:    makeTGA(2, 1, 1, 16, []byte{0, 0}),
			wantErr: ErrInvalidTGADimensions,
		},
		{
			name:    "truncated pixels",
			data:    makeTGA(2, 2, 2, 24, []byte{1, 2, 3}),
			wantErr: ErrTruncatedTGAData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := DecodeTGA(tt.data)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("DecodeTGA() error = %v, want %v", err, tt.wantErr)
			}
			if img != nil {
				t.Error("expected nil image on decode failure")
			}
		})
	}
}
