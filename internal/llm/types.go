package llm

import "time"

type GenerateRequest struct {
	Model  string
	Prompt string
}

type GenerateResult struct {
	Answer string
}

// ModelInfo describes one model installed on the inference server.
type ModelInfo struct {
	Name       string
	SizeBytes  int64
	ModifiedAt time.Time
}
