package vision

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

type fakeScorer struct {
	scores []float32
	err    error
	got    []float32
	closed bool
}

func (f *fakeScorer) Score(input []float32) ([]float32, error) {
	f.got = input
	if f.err != nil {
		return nil, f.err
	}
	return f.scores, nil
}

func (f *fakeScorer) Close() error {
	f.closed = true
	return nil
}

var errBoom = errors.New("boom")

func solidPNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}
