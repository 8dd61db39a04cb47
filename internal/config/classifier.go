package config

const (
	DefaultClassifierModelPath = "models/cnn-parameters-improvement-10-0.88.onnx"

	// DefaultMaxImagePixels bounds the declared width*height of an upload
	// before any pixel data is decoded
	DefaultMaxImagePixels = 40_000_000
)

func GetClassifierModelPath() string {
	return GetEnvOrDefault("CLASSIFIER_MODEL_PATH", DefaultClassifierModelPath)
}

// GetONNXRuntimeLibPath returns the onnxruntime shared library location.
// Empty leaves the runtime's own default in place.
func GetONNXRuntimeLibPath() string {
	return GetEnvOrDefault("ONNXRUNTIME_LIB_PATH", "")
}

// GetClassifierInputName returns the model input tensor name; empty means discover it from the model
func GetClassifierInputName() string {
	return GetEnvOrDefault("CLASSIFIER_INPUT_NAME", "")
}

// GetClassifierOutputName returns the model output tensor name; empty means discover it from the model
func GetClassifierOutputName() string {
	return GetEnvOrDefault("CLASSIFIER_OUTPUT_NAME", "")
}

// GetMaxImagePixels returns the largest image area /predict will decode
func GetMaxImagePixels() int {
	return parseEnvInt("MAX_IMAGE_PIXELS", DefaultMaxImagePixels)
}
