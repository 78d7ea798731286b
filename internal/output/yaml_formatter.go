package output

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/TwistedSD/Financial-Calculators/internal/domain"
)

// YAMLFormatter serializes the batch result as YAML, the same shape request files use.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(results *domain.BatchResult) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(results); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
