package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/floor"
)

// Format is a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFor returns the format implied by a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported plan file %q (want .json or .toml)", path)
}

// ReadJSON decodes a plan from r. Missing collections decode as empty.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*floor.Plan, error) {
	var p floor.Plan
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode plan")
	}
	return normalize(&p), nil
}

type tomlPlan struct {
	Name     string           `toml:"name,omitempty"`
	Tables   []floor.Table    `toml:"tables"`
	Elements []map[string]any `toml:"elements"`
}

// ReadTOML decodes a plan from TOML. Element tables are converted through
// their JSON form so both formats share one decoder.
func ReadTOML(r io.Reader) (*floor.Plan, error) {
	var doc tomlPlan
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode plan")
	}
	if undecoded := unknownKeys(md); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown plan keys: %v", undecoded)
	}

	p := &floor.Plan{Name: doc.Name, Tables: doc.Tables}
	for i, raw := range doc.Elements {
		data, err := json.Marshal(raw)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidElement, err, "element %d", i)
		}
		var e floor.Element
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidElement, err, "element %d", i)
		}
		p.Elements = append(p.Elements, e)
	}
	return normalize(p), nil
}

// unknownKeys lists keys the TOML decoder did not consume. Keys under
// elements are left to the strict JSON pass, which rejects anything an
// element does not define.
func unknownKeys(md toml.MetaData) []toml.Key {
	var keys []toml.Key
	for _, k := range md.Undecoded() {
		if len(k) > 0 && k[0] == "elements" {
			continue
		}
		keys = append(keys, k)
	}
	return keys
}

// Read decodes a plan in the given format.
func Read(r io.Reader, f Format) (*floor.Plan, error) {
	if f == FormatTOML {
		return ReadTOML(r)
	}
	return ReadJSON(r)
}

// ImportFile reads a plan file, choosing the format from its extension.
func ImportFile(path string) (*floor.Plan, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "plan file %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, format)
}

func normalize(p *floor.Plan) *floor.Plan {
	if p.Tables == nil {
		p.Tables = []floor.Table{}
	}
	if p.Elements == nil {
		p.Elements = []floor.Element{}
	}
	return p
}
