// Package output serializes template inspections.
package output

import (
	"bytes"
	"encoding/json"

	"github.com/ukaji3/cbamatrix-go/pkg/cbamatrix/models"
	"gopkg.in/yaml.v3"
)

// ToJSON serializes an inspection to JSON.
func ToJSON(in *models.Inspection, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(in, "", "  ")
	}
	return json.Marshal(in)
}

// ToYAML serializes an inspection to YAML with two-space indentation.
func ToYAML(in *models.Inspection) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(in); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Format is an inspection output format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Marshal serializes in using format.
func Marshal(in *models.Inspection, format Format, pretty bool) ([]byte, error) {
	if format == FormatYAML {
		return ToYAML(in)
	}
	return ToJSON(in, pretty)
}
