package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

var fallbackAction = Action{
	Name:   "explain",
	Label:  "Explain",
	Prompt: "Explain this code, find bugs, and suggest improvements.",
}

// LoadActionsConfig reads the preset actions from YAML. A missing file is
// not an error: the built-in explain action is served instead, so the
// service runs without any config on disk.
func LoadActionsConfig() (*ActionsConfig, error) {
	path := os.Getenv("ACTIONS_CONFIG_PATH")
	if path == "" {
		path = "configs/actions.yaml"
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := &ActionsConfig{}
		applyDefaults(cfg)
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg ActionsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *ActionsConfig) {
	if len(cfg.Actions) == 0 {
		cfg.Actions = []Action{fallbackAction}
	}
	if cfg.Default == "" {
		cfg.Default = cfg.Actions[0].Name
	}
}

func (c *ActionsConfig) Validate() error {
	seen := map[string]bool{}
	for _, a := range c.Actions {
		if a.Name == "" {
			return errors.New("action with empty name")
		}
		if a.Prompt == "" {
			return fmt.Errorf("action %q has no prompt", a.Name)
		}
		if seen[a.Name] {
			return fmt.Errorf("duplicate action name %q", a.Name)
		}
		seen[a.Name] = true
	}
	for _, a := range c.Actions {
		if a.Name == c.Default {
			return nil
		}
	}
	return fmt.Errorf("default action %q not defined", c.Default)
}
