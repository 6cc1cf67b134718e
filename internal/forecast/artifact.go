package forecast

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Decode reads a model artifact whose format is chosen by the extension of name.
// Supports: .yaml/.yml, .json, .toml
// Unknown keys are rejected in every format. The returned model is prepared
// and ready for Predict.
func Decode(name string, r io.Reader) (*AdditiveModel, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read artifact %s: %w", name, err)
	}
	var m AdditiveModel
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		err = dec.Decode(&m)
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		err = dec.Decode(&m)
	case ".toml":
		err = toml.NewDecoder(bytes.NewReader(b)).DisallowUnknownFields().Decode(&m)
	default:
		return nil, fmt.Errorf("unsupported artifact extension: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode artifact %s: %w", name, err)
	}
	if m.Name == "" {
		m.Name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}
	if err := m.Prepare(); err != nil {
		return nil, err
	}
	return &m, nil
}
