package config

// ActionsConfig holds the preset questions offered by the UI and the one
// used when the caller submits a blank question.
type ActionsConfig struct {
	Default string   `yaml:"default"`
	Actions []Action `yaml:"actions"`
}

// Action is one canned question.
type Action struct {
	Name   string `yaml:"name"`
	Label  string `yaml:"label"`
	Prompt string `yaml:"prompt"`
}

// DefaultPrompt resolves the prompt of the default action.
func (c *ActionsConfig) DefaultPrompt() string {
	for _, a := range c.Actions {
		if a.Name == c.Default {
			return a.Prompt
		}
	}
	return fallbackAction.Prompt
}
