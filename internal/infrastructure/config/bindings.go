package config

import "fmt"

// BindingsConfig is the root config for bindings.yaml
type BindingsConfig struct {
	Deadzone float64                  `yaml:"deadzone"`
	Actions  map[string]ActionBinding `yaml:"actions"`
}

// ActionBinding lists the physical sources of one input signal
type ActionBinding struct {
	Keys    []string `yaml:"keys"`
	Gamepad []string `yaml:"gamepad"`
}

// Action returns the binding for a signal name
func (b *BindingsConfig) Action(name string) (ActionBinding, error) {
	a, ok := b.Actions[name]
	if !ok {
		return ActionBinding{}, fmt.Errorf("no binding for %s", name)
	}
	return a, nil
}
