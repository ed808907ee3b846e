package vision

import (
	"fmt"
	"log"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// LoadConfig locates the model artifact and the onnxruntime shared library.
type LoadConfig struct {
	ModelPath         string
	ONNXSharedLibPath string
	Labels            []string
}

// onnxScorer owns one AdvancedSession bound to fixed input/output tensors.
// The tensors are shared, so Score serialises runs.
type onnxScorer struct {
	mu sync.Mutex

	session *ort.AdvancedSession
	input   *ort.Tensor[float32]
	output  *ort.Tensor[float32]
}

// onnxruntime entry points, replaced in tests.
var (
	ortIsInitialized = ort.IsInitialized
	ortInitialize    = func() error { return ort.InitializeEnvironment() }
	ortDestroy       = func() error { return ort.DestroyEnvironment() }

	ortInputOutputInfo = func(path string) ([]ort.InputOutputInfo, []ort.InputOutputInfo, error) {
		return ort.GetInputOutputInfo(path)
	}
)

// Load initialises onnxruntime and builds a Classifier for the model at
// cfg.ModelPath. The model must emit exactly len(cfg.Labels) scores.
// If Load initialised the environment and then fails, it tears it down again.
func Load(cfg LoadConfig) (clf *Classifier, err error) {
	if len(cfg.Labels) == 0 {
		return nil, fmt.Errorf("no labels configured")
	}
	if cfg.ONNXSharedLibPath != "" {
		ort.SetSharedLibraryPath(cfg.ONNXSharedLibPath)
	}
	if !ortIsInitialized() {
		if err := ortInitialize(); err != nil {
			return nil, fmt.Errorf("onnx init environment: %w", err)
		}
		defer func() {
			if err != nil {
				if derr := ortDestroy(); derr != nil {
					log.Printf("onnx destroy environment: %v", derr)
				}
			}
		}()
	}

	inputs, outputs, err := ortInputOutputInfo(cfg.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("onnx get input/output info: %w", err)
	}
	if len(inputs) == 0 || len(outputs) == 0 {
		return nil, fmt.Errorf("onnx model has no inputs or outputs")
	}

	inputShape := fixedImageShape(inputs[0].Dimensions)
	outputShape := fixedShape(outputs[0].Dimensions)
	layout, size, err := inspectInput(inputShape)
	if err != nil {
		return nil, err
	}
	if n := outputShape.FlattenedSize(); n != int64(len(cfg.Labels)) {
		return nil, fmt.Errorf("model output has %d values, expected %d", n, len(cfg.Labels))
	}

	inputTensor, err := ort.NewEmptyTensor[float32](inputShape)
	if err != nil {
		return nil, fmt.Errorf("onnx new input tensor: %w", err)
	}
	outputTensor, err := ort.NewEmptyTensor[float32](outputShape)
	if err != nil {
		inputTensor.Destroy()
		return nil, fmt.Errorf("onnx new output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(cfg.ModelPath,
		[]string{inputs[0].Name}, []string{outputs[0].Name},
		[]ort.Value{inputTensor}, []ort.Value{outputTensor}, nil)
	if err != nil {
		outputTensor.Destroy()
		inputTensor.Destroy()
		return nil, fmt.Errorf("onnx new session: %w", err)
	}

	scorer := &onnxScorer{
		session: session,
		input:   inputTensor,
		output:  outputTensor,
	}
	return NewClassifier(scorer, layout, size, cfg.Labels), nil
}

func (s *onnxScorer) Score(input []float32) ([]float32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inData := s.input.GetData()
	if len(inData) != len(input) {
		return nil, fmt.Errorf("input tensor size %d != preprocessed %d", len(inData), len(input))
	}
	copy(inData, input)
	if err := s.session.Run(); err != nil {
		return nil, fmt.Errorf("onnx run: %w", err)
	}
	return append([]float32(nil), s.output.GetData()...), nil
}

func (s *onnxScorer) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var closeErr error
	if s.session != nil {
		if err := s.session.Destroy(); err != nil {
			closeErr = err
		}
		s.session = nil
	}
	if s.output != nil {
		if err := s.output.Destroy(); err != nil {
			closeErr = err
		}
		s.output = nil
	}
	if s.input != nil {
		if err := s.input.Destroy(); err != nil {
			closeErr = err
		}
		s.input = nil
	}
	if err := ortDestroy(); err != nil {
		closeErr = err
	}
	return closeErr
}

// fixedShape replaces dynamic (negative) dimensions with 1.
func fixedShape(dims ort.Shape) ort.Shape {
	out := make(ort.Shape, len(dims))
	for i, d := range dims {
		if d <= 0 {
			d = 1
		}
		out[i] = d
	}
	return out
}

// fixedImageShape pins a dynamic batch to 1 and dynamic spatial dims to
// DefaultImageSize.
func fixedImageShape(dims ort.Shape) ort.Shape {
	out := fixedShape(dims)
	for i := 1; i < len(dims); i++ {
		if dims[i] <= 0 {
			out[i] = DefaultImageSize
		}
	}
	return out
}

// inspectInput reads layout and resolution from a rank-4 image input shape.
func inspectInput(shape ort.Shape) (Layout, int, error) {
	if len(shape) != 4 {
		return LayoutNHWC, 0, fmt.Errorf("expected rank-4 image input, got shape %v", shape)
	}
	if shape[1] == 3 && shape[3] != 3 {
		if shape[2] != shape[3] {
			return LayoutNCHW, 0, fmt.Errorf("non-square input %v", shape)
		}
		return LayoutNCHW, int(shape[2]), nil
	}
	if shape[3] != 3 {
		return LayoutNHWC, 0, fmt.Errorf("expected 3 channels, got shape %v", shape)
	}
	if shape[1] != shape[2] {
		return LayoutNHWC, 0, fmt.Errorf("non-square input %v", shape)
	}
	return LayoutNHWC, int(shape[1]), nil
}
