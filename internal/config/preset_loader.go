package config

import (
	"embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed presets/*.yaml
var presetFS embed.FS

// presetDelta is the on-disk shape of a preset file: a name plus whichever
// Settings fields it overrides. Decoding into Settings directly (rather
// than a bespoke delta struct) means a preset author can override any
// settings field without a loader code change.
type presetDelta struct {
	Name     string `yaml:"name"`
	Settings `yaml:",inline"`
}

var loadedPresets map[Technology]presetDelta

func init() {
	loadedPresets = make(map[Technology]presetDelta)
	entries, err := presetFS.ReadDir("presets")
	if err != nil {
		panic(fmt.Sprintf("config: embedded presets unreadable: %v", err))
	}
	for _, e := range entries {
		data, err := presetFS.ReadFile("presets/" + e.Name())
		if err != nil {
			panic(fmt.Sprintf("config: reading preset %s: %v", e.Name(), err))
		}
		var d presetDelta
		if err := yaml.Unmarshal(data, &d); err != nil {
			panic(fmt.Sprintf("config: parsing preset %s: %v", e.Name(), err))
		}
		loadedPresets[d.Technology] = d
	}
}

// PresetNames returns the closed catalogue of technology preset names,
// sorted for deterministic CLI listing.
func PresetNames() []string {
	names := make([]string, 0, len(loadedPresets))
	for t := range loadedPresets {
		names = append(names, string(t))
	}
	sort.Strings(names)
	return names
}

// ApplyPreset returns DefaultSettings with the named technology preset's
// delta merged on top, per spec.md §6: "a preset is a settings delta
// applied on top of defaults."
func ApplyPreset(t Technology) (Settings, error) {
	d, ok := loadedPresets[t]
	if !ok {
		return Settings{}, fmt.Errorf("config: unknown technology preset %q", t)
	}
	base := DefaultSettings()
	base.Technology = t
	merged := base.Merge(d.Settings)
	return merged, nil
}
