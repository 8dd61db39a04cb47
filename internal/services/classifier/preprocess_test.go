package classifier

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
	"time"

	"github.com/deepgram/neuroscan/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func uniformImage(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestPreprocess(t *testing.T) {
	tests := []struct {
		name  string
		image image.Image
		want  [3]float32
	}{
		{
			name:  "Small RGB image is upscaled",
			image: uniformImage(32, 48, color.NRGBA{R: 255, G: 0, B: 51, A: 255}),
			want:  [3]float32{1, 0, 0.2},
		},
		{
			name:  "Large image is downscaled without keeping aspect",
			image: uniformImage(640, 300, color.NRGBA{R: 102, G: 102, B: 102, A: 255}),
			want:  [3]float32{0.4, 0.4, 0.4},
		},
		{
			name: "Grayscale image gains three channels",
			image: func() image.Image {
				img := image.NewGray(image.Rect(0, 0, 10, 10))
				for i := range img.Pix {
					img.Pix[i] = 204
				}
				return img
			}(),
			want: [3]float32{0.8, 0.8, 0.8},
		},
		{
			name:  "Transparent pixels keep their colour",
			image: uniformImage(20, 20, color.NRGBA{R: 255, G: 255, B: 0, A: 0}),
			want:  [3]float32{1, 1, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tensor, err := Preprocess(encodePNG(t, tt.image), config.DefaultMaxImagePixels)
			require.NoError(t, err)

			assert.Equal(t, []int64{1, ImageSize, ImageSize, Channels}, tensor.Shape)
			require.Len(t, tensor.Data, ImageSize*ImageSize*Channels)

			for i, v := range tensor.Data {
				if v < 0 || v > 1 {
					t.Fatalf("value %v at %d outside [0,1]", v, i)
				}
			}

			// sample the corners and the centre
			for _, px := range []int{0, ImageSize - 1, ImageSize*ImageSize/2 + ImageSize/2, ImageSize*ImageSize - 1} {
				for c := 0; c < Channels; c++ {
					assert.InDelta(t, tt.want[c], tensor.Data[px*Channels+c], 1.0/255)
				}
			}
		})
	}
}

func TestPreprocessJPEG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, uniformImage(64, 64, color.NRGBA{R: 128, G: 128, B: 128, A: 255}), nil))

	tensor, err := Preprocess(buf.Bytes(), config.DefaultMaxImagePixels)
	require.NoError(t, err)
	assert.Len(t, tensor.Data, ImageSize*ImageSize*Channels)
}

func TestPreprocessRejectsInvalidPayloads(t *testing.T) {
	valid := encodePNG(t, uniformImage(8, 8, color.White))

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{name: "Empty payload", data: nil, wantErr: ErrDecode},
		{name: "Plain text", data: []byte("definitely not an image"), wantErr: ErrUnsupportedImage},
		{name: "PDF document", data: []byte("%PDF-1.4\n%âãÏÓ\n"), wantErr: ErrUnsupportedImage},
		{name: "Truncated PNG", data: valid[:24], wantErr: ErrDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Preprocess(tt.data, config.DefaultMaxImagePixels)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestResizeIgnoresAspectRatio(t *testing.T) {
	img := Resize(uniformImage(400, 100, color.Black), ImageSize, ImageSize)

	assert.Equal(t, ImageSize, img.Bounds().Dx())
	assert.Equal(t, ImageSize, img.Bounds().Dy())
}

// pngHeader returns a PNG signature and IHDR chunk declaring an 8-bit
// grayscale image of the given size, with no pixel data
func pngHeader(width, height uint32) []byte {
	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")

	chunk := make([]byte, 0, 17)
	chunk = append(chunk, "IHDR"...)
	chunk = binary.BigEndian.AppendUint32(chunk, width)
	chunk = binary.BigEndian.AppendUint32(chunk, height)
	chunk = append(chunk, 8, 0, 0, 0, 0)

	_ = binary.Write(&buf, binary.BigEndian, uint32(len(chunk)-4))
	buf.Write(chunk)
	_ = binary.Write(&buf, binary.BigEndian, crc32.ChecksumIEEE(chunk))
	return buf.Bytes()
}

func TestPreprocessRejectsOversizedImages(t *testing.T) {
	tests := []struct {
		name      string
		data      []byte
		maxPixels int
	}{
		{name: "Header declares 50000x50000", data: pngHeader(50000, 50000), maxPixels: config.DefaultMaxImagePixels},
		{name: "Header declares one huge row", data: pngHeader(1<<30, 1), maxPixels: config.DefaultMaxImagePixels},
		{name: "Real image above a small cap", data: encodePNG(t, uniformImage(101, 100, color.White)), maxPixels: 100 * 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := time.Now()
			_, err := Preprocess(tt.data, tt.maxPixels)

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrDecode), "got %v", err)
			assert.Less(t, time.Since(start), time.Second)
		})
	}
}

func TestPreprocessAcceptsImageAtCap(t *testing.T) {
	tensor, err := Preprocess(encodePNG(t, uniformImage(100, 100, color.White)), 100*100)

	require.NoError(t, err)
	assert.Len(t, tensor.Data, ImageSize*ImageSize*Channels)
}

func TestToRGB(t *testing.T) {
	offset := uniformImage(10, 10, color.NRGBA{R: 10, G: 20, B: 30, A: 40}).SubImage(image.Rect(2, 3, 6, 8))

	gray := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := range gray.Pix {
		gray.Pix[i] = 77
	}

	ycbcr := image.NewYCbCr(image.Rect(0, 0, 4, 4), image.YCbCrSubsampleRatio444)
	for i := range ycbcr.Y {
		ycbcr.Y[i], ycbcr.Cb[i], ycbcr.Cr[i] = 128, 128, 128
	}

	translucent := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(translucent.Pix); i += 4 {
		copy(translucent.Pix[i:], []byte{50, 100, 0, 128})
	}

	tests := []struct {
		name string
		img  image.Image
		want color.NRGBA
	}{
		{name: "NRGBA sub-image keeps colour", img: offset, want: color.NRGBA{R: 10, G: 20, B: 30, A: 255}},
		{name: "Gray expands to three channels", img: gray, want: color.NRGBA{R: 77, G: 77, B: 77, A: 255}},
		{name: "YCbCr converts to RGB", img: ycbcr, want: color.NRGBA{R: 128, G: 128, B: 128, A: 255}},
		{name: "Translucent RGBA is unpremultiplied", img: translucent, want: color.NRGBA{R: 100, G: 199, B: 0, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToRGB(tt.img)
			b := tt.img.Bounds()

			assert.Equal(t, image.Rect(0, 0, b.Dx(), b.Dy()), got.Bounds())
			for y := 0; y < b.Dy(); y++ {
				for x := 0; x < b.Dx(); x++ {
					c := got.NRGBAAt(x, y)
					assert.InDelta(t, tt.want.R, c.R, 1)
					assert.InDelta(t, tt.want.G, c.G, 1)
					assert.InDelta(t, tt.want.B, c.B, 1)
					assert.Equal(t, uint8(255), c.A)
				}
			}
		})
	}
}
