package save

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Prefs holds player settings that persist independently of any one save
// slot — SCRIPT/VERBOSE/BRIEF toggles and the last-used save name — written
// as YAML beside the JSON saves since it's hand-editable config, not state.
type Prefs struct {
	Verbose     bool   `yaml:"verbose"`
	ScriptOn    bool   `yaml:"script_on"`
	LastSaveName string `yaml:"last_save_name"`
}

// LoadPrefs reads prefs from path, returning zero-value Prefs if the file
// doesn't exist yet.
func LoadPrefs(path string) (Prefs, error) {
	var p Prefs
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return p, nil
	}
	if err != nil {
		return p, err
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, err
	}
	return p, nil
}

// SavePrefs writes prefs to path as YAML.
func SavePrefs(path string, p Prefs) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
