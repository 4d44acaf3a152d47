package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/floorplan/pkg/floor"
)

// WriteJSON encodes a plan as indented JSON.
func WriteJSON(p *floor.Plan, w io.Writer) error {
	return writeJSON(p, w)
}

// WriteSnapshot encodes a saved snapshot as indented JSON.
func WriteSnapshot(s floor.Snapshot, w io.Writer) error {
	return writeJSON(s, w)
}

func writeJSON(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteTOML encodes a plan as TOML.
func WriteTOML(p *floor.Plan, w io.Writer) error {
	doc := tomlPlan{Name: p.Name, Tables: p.Tables}
	for _, e := range p.Elements {
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("encode element %s: %w", e.ID, err)
		}
		var m map[string]any
		if err := json.Unmarshal(data, &m); err != nil {
			return fmt.Errorf("encode element %s: %w", e.ID, err)
		}
		doc.Elements = append(doc.Elements, m)
	}
	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Write encodes a plan in the given format.
func Write(p *floor.Plan, w io.Writer, f Format) error {
	if f == FormatTOML {
		return WriteTOML(p, w)
	}
	return WriteJSON(p, w)
}

// ExportFile writes a plan file, choosing the format from its extension.
func ExportFile(p *floor.Plan, path string) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(p, f, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SaveSnapshot writes a snapshot to a JSON file.
func SaveSnapshot(s floor.Snapshot, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteSnapshot(s, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
