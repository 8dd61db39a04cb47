package classifier

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/deepgram/neuroscan/internal/config"
	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const (
	ImageSize = 240
	Channels  = 3
)

// Tensor is a channels-last float32 batch of shape [1, ImageSize, ImageSize, Channels]
type Tensor struct {
	Shape []int64
	Data  []float32
}

// Preprocess decodes raw bytes into the tensor the classifier expects.
// Images whose declared area exceeds maxPixels are rejected before decoding.
func Preprocess(data []byte, maxPixels int) (Tensor, error) {
	img, err := Decode(data, maxPixels)
	if err != nil {
		return Tensor{}, err
	}
	return ToTensor(Resize(ToRGB(img), ImageSize, ImageSize)), nil
}

// Decode sniffs the payload, checks the declared dimensions against
// maxPixels and only then decodes it as a raster image
func Decode(data []byte, maxPixels int) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrDecode)
	}
	if maxPixels <= 0 {
		maxPixels = config.DefaultMaxImagePixels
	}

	mime := mimetype.Detect(data).String()
	if !strings.HasPrefix(mime, "image/") {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedImage, mime)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: empty image %dx%d", ErrDecode, cfg.Width, cfg.Height)
	}
	if int64(cfg.Width)*int64(cfg.Height) > int64(maxPixels) {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrDecode, cfg.Width, cfg.Height, maxPixels)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, nil
}

// ToRGB copies img into an opaque NRGBA image. Alpha is dropped, not composited.
func ToRGB(img image.Image) *image.NRGBA {
	b := img.Bounds()
	rect := image.Rect(0, 0, b.Dx(), b.Dy())

	if src, ok := img.(*image.NRGBA); ok {
		dst := image.NewNRGBA(rect)
		for y := 0; y < rect.Dy(); y++ {
			row := dst.Pix[y*dst.Stride : y*dst.Stride+rect.Dx()*4]
			copy(row, src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):])
		}
		for i := 3; i < len(dst.Pix); i += 4 {
			dst.Pix[i] = 0xff
		}
		return dst
	}

	// opaque pixels are identical in RGBA and NRGBA, and draw has fast paths for RGBA
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		rgba := image.NewRGBA(rect)
		draw.Draw(rgba, rect, img, b.Min, draw.Src)
		return &image.NRGBA{Pix: rgba.Pix, Stride: rgba.Stride, Rect: rgba.Rect}
	}

	dst := image.NewNRGBA(rect)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			c.A = 0xff
			dst.SetNRGBA(x-b.Min.X, y-b.Min.Y, c)
		}
	}
	return dst
}

// Resize scales img to exactly width x height; aspect ratio is not preserved
func Resize(img image.Image, width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

// ToTensor rescales the RGB channels from [0,255] to [0,1] and adds the batch dimension
func ToTensor(img *image.NRGBA) Tensor {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	data := make([]float32, 0, w*h*Channels)
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			px := row[x*4 : x*4+4]
			data = append(data,
				float32(px[0])/255.0,
				float32(px[1])/255.0,
				float32(px[2])/255.0,
			)
		}
	}
	return Tensor{
		Shape: []int64{1, int64(h), int64(w), Channels},
		Data:  data,
	}
}
