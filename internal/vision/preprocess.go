package vision

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"strings"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ErrNoImageData means a data URL had no payload after its comma.
var ErrNoImageData = errors.New("no image data after data URL header")

var base64Encodings = []*base64.Encoding{
	base64.StdEncoding,
	base64.RawStdEncoding,
	base64.URLEncoding,
	base64.RawURLEncoding,
}

// DecodeDataURL returns the bytes of a "<meta>,<base64>" payload.
// Only the segment between the first and second comma is decoded.
func DecodeDataURL(payload string) ([]byte, error) {
	parts := strings.SplitN(payload, ",", 3)
	if len(parts) < 2 {
		return nil, ErrNoImageData
	}
	encoded := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\n', '\r', '\t':
			return -1
		}
		return r
	}, parts[1])
	if encoded == "" {
		return nil, ErrNoImageData
	}

	var lastErr error
	for _, enc := range base64Encodings {
		data, err := enc.DecodeString(encoded)
		if err == nil {
			return data, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func decodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Preprocess resizes img to size x size with nearest-neighbour sampling, drops
// alpha and scales every RGB value into [0, 1]. The result carries a batch
// dimension of 1 in the given layout.
//
// Sampling uses the corner-aligned rule src = floor(dst * srcLen / dstLen)
// of the model's training pipeline, not pixel-centre sampling.
func Preprocess(img image.Image, size int, layout Layout) []float32 {
	b := img.Bounds()
	src := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(src, src.Bounds(), img, b.Min, draw.Src)

	out := make([]float32, 3*size*size)
	if b.Empty() {
		return out
	}
	plane := size * size
	for y := 0; y < size; y++ {
		sy := nearestIndex(y, b.Dy(), size)
		for x := 0; x < size; x++ {
			c := src.NRGBAAt(nearestIndex(x, b.Dx(), size), sy)
			r, g, bl := float32(c.R)/255.0, float32(c.G)/255.0, float32(c.B)/255.0
			idx := y*size + x
			if layout == LayoutNCHW {
				out[idx] = r
				out[plane+idx] = g
				out[2*plane+idx] = bl
				continue
			}
			out[idx*3] = r
			out[idx*3+1] = g
			out[idx*3+2] = bl
		}
	}
	return out
}

func nearestIndex(d, srcLen, dstLen int) int {
	i := int(math.Floor(float64(d) * (float64(srcLen) / float64(dstLen))))
	if i > srcLen-1 {
		i = srcLen - 1
	}
	return i
}
