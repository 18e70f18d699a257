package models

// StatusResponse is the liveness body served at the root path.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Usage   string `json:"usage"`
}

// AskResponse echoes the resolved request fields alongside the answer so
// the client can render what was actually asked.
type AskResponse struct {
	Model    string `json:"model"`
	Question string `json:"question"`
	Filename string `json:"filename"`
	Answer   string `json:"answer"`
}

// ModelDescriptor is the reformatted view of one upstream model entry.
type ModelDescriptor struct {
	Name     string  `json:"name"`
	SizeGB   float64 `json:"size_gb"`
	Modified string  `json:"modified"`
}

// ModelsResponse lists installed models, configured default first.
type ModelsResponse struct {
	Default string            `json:"default"`
	Models  []ModelDescriptor `json:"models"`
}

// Action is a preset question the UI can offer instead of free text.
type Action struct {
	Name   string `json:"name"`
	Label  string `json:"label"`
	Prompt string `json:"prompt"`
}

// ActionsResponse lists the configured preset actions.
type ActionsResponse struct {
	Default string   `json:"default"`
	Actions []Action `json:"actions"`
}
