package onnx

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog/log"
	ort "github.com/yalue/onnxruntime_go"
)

var envMu sync.Mutex

// InitializeEnvironment points onnxruntime_go at the shared library and
// initialises the process-wide runtime environment. Calling it again is a no-op.
func InitializeEnvironment(libPath string) error {
	envMu.Lock()
	defer envMu.Unlock()

	if ort.IsInitialized() {
		return nil
	}

	if libPath != "" {
		ort.SetSharedLibraryPath(libPath)
	}

	if err := ort.InitializeEnvironment(); err != nil {
		return fmt.Errorf("onnxruntime environment: %w", err)
	}

	log.Info().Str("lib_path", libPath).Msg("ONNX Runtime environment initialised")
	return nil
}

// DestroyEnvironment releases the runtime environment
func DestroyEnvironment() error {
	envMu.Lock()
	defer envMu.Unlock()

	if !ort.IsInitialized() {
		return nil
	}
	return ort.DestroyEnvironment()
}

// Session wraps a dynamic onnxruntime session with a single float32 input and output.
// Run calls are serialised.
type Session struct {
	mu         sync.Mutex
	session    *ort.DynamicAdvancedSession
	inputName  string
	outputName string
}

// NewSession loads the model at modelPath. Empty tensor names are resolved
// to the model's first input and first output.
func NewSession(modelPath, inputName, outputName string) (*Session, error) {
	if _, err := os.Stat(modelPath); err != nil {
		return nil, fmt.Errorf("model file: %w", err)
	}

	if inputName == "" || outputName == "" {
		inputs, outputs, err := ort.GetInputOutputInfo(modelPath)
		if err != nil {
			return nil, fmt.Errorf("inspect model: %w", err)
		}
		if len(inputs) == 0 || len(outputs) == 0 {
			return nil, errors.New("model declares no inputs or outputs")
		}
		if inputName == "" {
			inputName = inputs[0].Name
		}
		if outputName == "" {
			outputName = outputs[0].Name
		}
	}

	sess, err := ort.NewDynamicAdvancedSession(modelPath, []string{inputName}, []string{outputName}, nil)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	log.Info().
		Str("model_path", modelPath).
		Str("input", inputName).
		Str("output", outputName).
		Msg("ONNX session created")

	return &Session{
		session:    sess,
		inputName:  inputName,
		outputName: outputName,
	}, nil
}

// Run feeds data with the given shape through the model and returns a copy of the output
func (s *Session) Run(shape []int64, data []float32) ([]float32, error) {
	input, err := ort.NewTensor[float32](ort.NewShape(shape...), data)
	if err != nil {
		return nil, fmt.Errorf("input tensor: %w", err)
	}
	defer input.Destroy()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, errors.New("session closed")
	}

	// leave the output nil so the runtime allocates it
	outputs := make([]ort.Value, 1)
	if err := s.session.Run([]ort.Value{input}, outputs); err != nil {
		return nil, fmt.Errorf("run session: %w", err)
	}
	defer outputs[0].Destroy()

	out, ok := outputs[0].(*ort.Tensor[float32])
	if !ok {
		return nil, fmt.Errorf("unexpected output type %T", outputs[0])
	}

	result := make([]float32, len(out.GetData()))
	copy(result, out.GetData())
	return result, nil
}

// Close destroys the underlying session
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil
	}
	err := s.session.Destroy()
	s.session = nil
	return err
}
