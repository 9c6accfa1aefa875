package output

import (
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/ukfiscal/lifetax/internal/domain"
)

// JSONFormatter emits the full result document: rows under "data", then
// the lifetime summary.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}

// YAMLFormatter emits the same document as YAML, for piping back into an
// input file or diffing against one.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	return yaml.Marshal(result)
}
