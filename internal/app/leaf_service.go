package app

import (
	"errors"
	"fmt"
	"log"
	"math"
	"math/big"
	"time"

	"agroassist/internal/model"
	"agroassist/internal/platform/metrics"
	"agroassist/internal/vision"
)

// LeafModelNotLoaded is the degraded status returned while no model is loaded.
const LeafModelNotLoaded = "⚠️ ML model not loaded. Add model in /model folder."

var errNotText = errors.New("leafImage is not a string")

const (
	msgNoImage          = "No image provided"
	msgPredictionFailed = "Prediction failed"
)

type LeafService struct {
	model   vision.Handle
	metrics *metrics.Metrics
}

func NewLeafService(handle vision.Handle, m *metrics.Metrics) *LeafService {
	return &LeafService{model: handle, metrics: m}
}

// Predict classifies the data-URL image in req.LeafImage.
func (s *LeafService) Predict(req model.LeafRequest) (model.LeafResponse, error) {
	const op = "leaf.predict"
	if !req.LeafImage.Provided {
		return model.LeafResponse{}, newError(op, KindInvalidInput, msgNoImage, nil)
	}

	classifier, ok := s.model.Classifier()
	if !ok {
		return model.LeafResponse{LeafStatus: LeafModelNotLoaded}, nil
	}

	if !req.LeafImage.IsText {
		log.Printf("prediction error: %v", errNotText)
		return model.LeafResponse{}, newError(op, KindPredictionFailed, msgPredictionFailed, errNotText)
	}

	data, err := vision.DecodeDataURL(req.LeafImage.Data)
	if err != nil {
		log.Printf("prediction error: %v", err)
		return model.LeafResponse{}, newError(op, KindPredictionFailed, msgPredictionFailed, err)
	}

	start := time.Now()
	pred, err := classifier.Classify(data)
	s.metrics.ObserveInference(time.Since(start))
	if err != nil {
		log.Printf("prediction error: %v", err)
		return model.LeafResponse{}, newError(op, KindPredictionFailed, msgPredictionFailed, err)
	}

	return model.LeafResponse{
		LeafStatus: pred.Label,
		Confidence: formatConfidence(pred.Score),
	}, nil
}

// formatConfidence renders score with two decimals, rounding the exact
// binary value half away from zero. strconv rounds half to even, which
// turns 0.125 into "0.12".
func formatConfidence(score float32) string {
	v := float64(score)
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	scaled := new(big.Float).SetPrec(256).SetFloat64(v)
	scaled.Mul(scaled, big.NewFloat(100))
	scaled.Add(scaled, big.NewFloat(0.5))
	cents, _ := scaled.Int(nil)

	whole, frac := new(big.Int).QuoRem(cents, big.NewInt(100), new(big.Int))
	return fmt.Sprintf("%s%s.%02d", sign, whole.String(), frac.Int64())
}
