package vision

import (
	"fmt"
)

// DefaultImageSize is the spatial resolution the leaf model was trained on.
const DefaultImageSize = 224

// Layout is the memory order of the model's image input.
type Layout int

const (
	// LayoutNHWC is [1, H, W, 3], the order of TF/Keras exported models.
	LayoutNHWC Layout = iota
	// LayoutNCHW is [1, 3, H, W], the order of torchvision exported models.
	LayoutNCHW
)

func (l Layout) String() string {
	if l == LayoutNCHW {
		return "NCHW"
	}
	return "NHWC"
}

// Scorer runs a single forward pass over a preprocessed input tensor.
type Scorer interface {
	Score(input []float32) ([]float32, error)
	Close() error
}

// Prediction is the winning label of one classification.
type Prediction struct {
	Label string
	Index int
	Score float32
}

// Classifier maps images to one of a fixed set of labels.
type Classifier struct {
	scorer Scorer
	layout Layout
	size   int
	labels []string
}

// NewClassifier wraps a scorer whose output vector is ordered like labels.
func NewClassifier(scorer Scorer, layout Layout, size int, labels []string) *Classifier {
	if size <= 0 {
		size = DefaultImageSize
	}
	return &Classifier{
		scorer: scorer,
		layout: layout,
		size:   size,
		labels: append([]string(nil), labels...),
	}
}

// Layout returns the tensor layout the classifier feeds to its scorer.
func (c *Classifier) Layout() Layout { return c.layout }

// Size returns the square input resolution.
func (c *Classifier) Size() int { return c.size }

// Classify decodes imageData, preprocesses it, runs inference and returns the top label.
func (c *Classifier) Classify(imageData []byte) (Prediction, error) {
	img, err := decodeImage(imageData)
	if err != nil {
		return Prediction{}, fmt.Errorf("decode image: %w", err)
	}

	scores, err := c.scorer.Score(Preprocess(img, c.size, c.layout))
	if err != nil {
		return Prediction{}, fmt.Errorf("inference: %w", err)
	}
	if len(scores) != len(c.labels) {
		return Prediction{}, fmt.Errorf("model returned %d scores for %d labels", len(scores), len(c.labels))
	}

	idx := Argmax(scores)
	return Prediction{
		Label: c.labels[idx],
		Index: idx,
		Score: scores[idx],
	}, nil
}

// Close releases the underlying scorer.
func (c *Classifier) Close() error {
	if c.scorer == nil {
		return nil
	}
	return c.scorer.Close()
}

// Argmax returns the first index holding the maximum score, or -1 for an empty slice.
func Argmax(scores []float32) int {
	if len(scores) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return best
}
