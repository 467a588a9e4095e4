package settings

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"

	"enigma/pkg/enigma"
)

// Message is one entry of a batch file with its effective settings.
type Message struct {
	ID       string
	Text     string
	Settings enigma.Settings
}

// LoadBatchFromPath reads a batch file (YAML or JSON).
func LoadBatchFromPath(path string) ([]Message, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch: %w", err)
	}
	return LoadBatch(data, filepath.Ext(path))
}

// LoadBatch parses a batch document:
//
//	settings: {plugboard: [...], reflector: B, rotors: [...]}
//	messages:
//	  - {id: m1, text: HELLO}
//	  - {id: m2, text: WORLD, settings: {reflector: C}}
//
// Per-message settings override the top-level keys they name. Messages
// without an id are numbered from 1.
func LoadBatch(data []byte, ext string) ([]Message, error) {
	doc, err := decodeDocument(data, ext)
	if err != nil {
		return nil, fmt.Errorf("parse batch: %w", err)
	}

	defaults := map[string]any{}
	if raw, ok := doc["settings"]; ok && raw != nil {
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("parse batch: settings must be a mapping")
		}
		defaults = m
	}

	rawMessages, ok := doc["messages"].([]any)
	if !ok {
		return nil, fmt.Errorf("parse batch: messages must be a list")
	}

	messages := make([]Message, 0, len(rawMessages))
	for i, item := range rawMessages {
		entry, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("parse batch: message %d must be a mapping", i+1)
		}
		id := scalar(entry["id"])
		if id == "" {
			id = fmt.Sprintf("%d", i+1)
		}

		effective := maps.Clone(defaults)
		if raw, ok := entry["settings"]; ok && raw != nil {
			own, ok := raw.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("parse batch: message %s: settings must be a mapping", id)
			}
			maps.Copy(effective, own)
		}
		s, err := FromMap(effective)
		if err != nil {
			return nil, fmt.Errorf("parse batch: message %s: %w", id, err)
		}
		messages = append(messages, Message{ID: id, Text: scalar(entry["text"]), Settings: s})
	}
	return messages, nil
}
