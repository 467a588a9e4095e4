// Package settings loads machine settings and batch files from YAML or JSON
// and from CLI flag strings.
//
// Files are decoded into untyped values first so that shape problems (a
// plugboard that is not a list, a rotor entry that is not a mapping) surface
// as the same *enigma.ConfigError kinds the machine itself reports.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"enigma/pkg/enigma"
)

// LoadFromPath reads a settings file (YAML or JSON).
// Format is detected by extension (.yaml/.yml → YAML, .json → JSON) or by content.
func LoadFromPath(path string) (enigma.Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return enigma.Settings{}, fmt.Errorf("read settings: %w", err)
	}
	return Load(data, filepath.Ext(path))
}

// Load parses settings from bytes. ext is a format hint; empty = detect from content.
func Load(data []byte, ext string) (enigma.Settings, error) {
	doc, err := decodeDocument(data, ext)
	if err != nil {
		return enigma.Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	return FromMap(doc)
}

// decodeDocument unmarshals a YAML or JSON document into a string-keyed map.
// An empty document yields an empty map.
func decodeDocument(data []byte, ext string) (map[string]any, error) {
	ext = strings.ToLower(ext)
	if ext == ".yml" {
		ext = ".yaml"
	}
	if ext == "" && strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
		ext = ".json"
	}

	var doc map[string]any
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("yaml: %w", err)
		}
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}

// FromMap converts an untyped settings document into enigma.Settings.
// Absent keys are left zero so that the machine reports them as missing;
// an explicitly empty plugboard list stays a non-nil empty slice.
func FromMap(doc map[string]any) (enigma.Settings, error) {
	var s enigma.Settings

	if raw, ok := doc["plugboard"]; ok && raw != nil {
		list, ok := raw.([]any)
		if !ok {
			return s, shapeError(enigma.ComponentPlugboard, enigma.KindNotAnArray,
				"plugboard settings must be a list of letter pairs")
		}
		s.Plugboard = make([]string, 0, len(list))
		for _, item := range list {
			s.Plugboard = append(s.Plugboard, scalar(item))
		}
	}

	if raw, ok := doc["reflector"]; ok {
		s.Reflector = scalar(raw)
	}

	if raw, ok := doc["rotors"]; ok && raw != nil {
		list, ok := raw.([]any)
		if !ok {
			return s, shapeError(enigma.ComponentRotors, enigma.KindNotAnArray,
				"rotors settings must be a list")
		}
		s.Rotors = make([]enigma.RotorSetting, 0, len(list))
		for i, item := range list {
			entry, ok := item.(map[string]any)
			if !ok {
				return s, shapeError(enigma.ComponentRotors, enigma.KindWrongArity,
					fmt.Sprintf("invalid rotors settings: rotor %d must have type, position and offset", i+1))
			}
			s.Rotors = append(s.Rotors, enigma.RotorSetting{
				Type:     scalar(entry["type"]),
				Position: scalar(entry["position"]),
				Offset:   scalar(entry["offset"]),
			})
		}
	}

	return s, nil
}

// scalar renders a decoded YAML/JSON scalar as the string the machine parses.
// Numbers keep their decimal form so 1-based indexes survive; nil is "".
func scalar(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}

func shapeError(component string, kind enigma.ErrorKind, msg string) error {
	return &enigma.ConfigError{Component: component, Kind: kind, Msg: msg}
}
