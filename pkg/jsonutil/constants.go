package jsonutil

const (
	// JSON Encoding/Decoding
	DefaultJSONIndent = "  "
	DefaultJSONPrefix = ""

	// Buffer Sizes
	DefaultBufferSize = 4096
	MaxJSONSize       = 10 * 1024 * 1024 // 10MB
)
