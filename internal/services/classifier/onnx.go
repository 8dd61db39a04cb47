package classifier

import (
	"context"
	"errors"
	"fmt"

	"github.com/deepgram/neuroscan/internal/config"
	"github.com/deepgram/neuroscan/internal/infrastructure/onnx"
)

// ONNXModel scores tensors with a pretrained model exported to ONNX
type ONNXModel struct {
	session *onnx.Session
}

// LoadONNXModel initialises the runtime and loads the model once.
// The caller treats an error as fatal.
func LoadONNXModel(cfg config.ClassifierConfig) (*ONNXModel, error) {
	if err := onnx.InitializeEnvironment(cfg.LibPath); err != nil {
		return nil, err
	}

	session, err := onnx.NewSession(cfg.ModelPath, cfg.InputName, cfg.OutputName)
	if err != nil {
		_ = onnx.DestroyEnvironment()
		return nil, fmt.Errorf("load classifier %s: %w", cfg.ModelPath, err)
	}

	return &ONNXModel{session: session}, nil
}

func (m *ONNXModel) Score(ctx context.Context, tensor Tensor) (float32, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	out, err := m.session.Run(tensor.Shape, tensor.Data)
	if err != nil {
		return 0, err
	}
	if len(out) == 0 {
		return 0, errors.New("model returned an empty output")
	}
	return out[0], nil
}

// Close releases the session and the runtime environment
func (m *ONNXModel) Close() error {
	return errors.Join(m.session.Close(), onnx.DestroyEnvironment())
}
