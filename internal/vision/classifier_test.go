package vision

import (
	"errors"
	"image/color"
	"testing"
)

var leafLabels = []string{"Healthy", "Fungal Disease", "Bacterial Disease", "Nutrient Deficiency"}

func TestArgmax_FirstMaximumWins(t *testing.T) {
	cases := []struct {
		scores []float32
		want   int
	}{
		{[]float32{0.1, 0.7, 0.1, 0.1}, 1},
		{[]float32{0.4, 0.1, 0.4, 0.1}, 0},
		{[]float32{0.1, 0.3, 0.3, 0.3}, 1},
		{[]float32{0.25, 0.25, 0.25, 0.25}, 0},
		{[]float32{-3, -2, -1, -1}, 2},
		{nil, -1},
	}
	for _, tc := range cases {
		if got := Argmax(tc.scores); got != tc.want {
			t.Fatalf("Argmax(%v)=%d, want %d", tc.scores, got, tc.want)
		}
	}
}

func TestClassify_PicksLabelAndFeedsTensor(t *testing.T) {
	scorer := &fakeScorer{scores: []float32{0.05, 0.10, 0.80, 0.05}}
	c := NewClassifier(scorer, LayoutNHWC, 0, leafLabels)

	pred, err := c.Classify(solidPNG(t, 10, 6, color.NRGBA{R: 255, G: 0, B: 51, A: 255}))
	if err != nil {
		t.Fatalf("Classify error: %v", err)
	}
	if pred.Label != "Bacterial Disease" || pred.Index != 2 {
		t.Fatalf("unexpected prediction: %+v", pred)
	}
	if pred.Score != 0.80 {
		t.Fatalf("expected raw score 0.80, got=%v", pred.Score)
	}
	if len(scorer.got) != 3*DefaultImageSize*DefaultImageSize {
		t.Fatalf("expected %d inputs, got=%d", 3*DefaultImageSize*DefaultImageSize, len(scorer.got))
	}
	if scorer.got[0] != 1 || scorer.got[1] != 0 || scorer.got[2] != 0.2 {
		t.Fatalf("unexpected first pixel: %v", scorer.got[:3])
	}
}

func TestClassify_DecodeError(t *testing.T) {
	c := NewClassifier(&fakeScorer{scores: []float32{1, 0, 0, 0}}, LayoutNHWC, 8, leafLabels)
	if _, err := c.Classify([]byte("not an image")); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestClassify_ScorerError(t *testing.T) {
	c := NewClassifier(&fakeScorer{err: errBoom}, LayoutNHWC, 8, leafLabels)
	_, err := c.Classify(solidPNG(t, 2, 2, color.White))
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected wrapped scorer error, got=%v", err)
	}
}

func TestClassify_ScoreCountMismatch(t *testing.T) {
	c := NewClassifier(&fakeScorer{scores: []float32{1, 0}}, LayoutNHWC, 8, leafLabels)
	if _, err := c.Classify(solidPNG(t, 2, 2, color.White)); err == nil {
		t.Fatalf("expected mismatch error")
	}
}

func TestHandle_PresentAndAbsent(t *testing.T) {
	if _, ok := Unavailable().Classifier(); ok {
		t.Fatalf("unavailable handle must report absent")
	}
	if Loaded(nil).Available() {
		t.Fatalf("nil classifier must be unavailable")
	}

	scorer := &fakeScorer{}
	h := Loaded(NewClassifier(scorer, LayoutNHWC, 8, leafLabels))
	if _, ok := h.Classifier(); !ok {
		t.Fatalf("expected loaded classifier")
	}
	if err := h.Close(); err != nil {
		t.Fatalf("close error: %v", err)
	}
	if !scorer.closed {
		t.Fatalf("expected scorer to be closed")
	}
}
