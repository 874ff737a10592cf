package document

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/actionflow/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrInvalidDocument is wrapped by every syntax and validation failure of a document.
var ErrInvalidDocument = errors.New("invalid pipeline document")

// pipelineMetadata is the decoded shape of YAML and JSON documents.
type pipelineMetadata struct {
	Name    string           `mapstructure:"name"`
	Actions []actionMetadata `mapstructure:"actions"`
}

type actionMetadata struct {
	Class    string `mapstructure:"class"`
	InputID  string `mapstructure:"inputId"`
	OutputID string `mapstructure:"outputId"`
	Name     string `mapstructure:"name"`
}

type xmlPipeline struct {
	XMLName xml.Name    `xml:"pipeline"`
	Name    string      `xml:"name,attr"`
	Actions []xmlAction `xml:"action"`
}

type xmlAction struct {
	Class    string `xml:"class,attr"`
	InputID  string `xml:"inputId,attr"`
	OutputID string `xml:"outputId,attr"`
	Name     string `xml:"name,attr"`
}

// Parse decodes data written in format into a Pipeline.
func Parse(data []byte, format Format) (domain.Pipeline, error) {
	var meta pipelineMetadata
	var err error

	switch format {
	case FormatXML:
		meta, err = decodeXML(data)
	case FormatYAML:
		var raw map[string]any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return domain.Pipeline{}, fmt.Errorf("%w: failed to parse yaml: %w", ErrInvalidDocument, err)
		}
		meta, err = decodeMap(raw)
	case FormatJSON:
		var raw map[string]any
		if err := json.Unmarshal(data, &raw); err != nil {
			return domain.Pipeline{}, fmt.Errorf("%w: failed to parse json: %w", ErrInvalidDocument, err)
		}
		meta, err = decodeMap(raw)
	default:
		return domain.Pipeline{}, fmt.Errorf("unsupported document format: %q", format)
	}
	if err != nil {
		return domain.Pipeline{}, err
	}

	return toPipeline(meta)
}

// ParseFile reads path and parses it using the format implied by its extension.
func ParseFile(path string) (domain.Pipeline, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return domain.Pipeline{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Pipeline{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	p, err := Parse(data, format)
	if err != nil {
		return domain.Pipeline{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func decodeXML(data []byte) (pipelineMetadata, error) {
	var doc xmlPipeline
	if err := xml.Unmarshal(data, &doc); err != nil {
		return pipelineMetadata{}, fmt.Errorf("%w: failed to parse xml: %w", ErrInvalidDocument, err)
	}

	meta := pipelineMetadata{
		Name:    doc.Name,
		Actions: make([]actionMetadata, len(doc.Actions)),
	}
	for i, a := range doc.Actions {
		meta.Actions[i] = actionMetadata(a)
	}
	return meta, nil
}

func decodeMap(raw map[string]any) (pipelineMetadata, error) {
	var meta pipelineMetadata
	if raw == nil {
		return meta, fmt.Errorf("%w: empty document", ErrInvalidDocument)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &meta,
	})
	if err != nil {
		return meta, err
	}
	if err := decoder.Decode(raw); err != nil {
		return meta, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return meta, nil
}

func toPipeline(meta pipelineMetadata) (domain.Pipeline, error) {
	p := domain.Pipeline{
		Name:    meta.Name,
		Actions: make([]domain.Action, 0, len(meta.Actions)),
	}

	var errs []error
	for i, a := range meta.Actions {
		if a.Class == "" {
			errs = append(errs, fmt.Errorf("action %d: missing class", i+1))
		}
		if a.Name == "" {
			errs = append(errs, fmt.Errorf("action %d: missing name", i+1))
		}
		p.Actions = append(p.Actions, domain.Action{
			Class:    a.Class,
			InputID:  a.InputID,
			OutputID: a.OutputID,
			Name:     a.Name,
		})
	}
	if len(errs) > 0 {
		return domain.Pipeline{}, fmt.Errorf("%w: %w", ErrInvalidDocument, errors.Join(errs...))
	}
	return p, nil
}
