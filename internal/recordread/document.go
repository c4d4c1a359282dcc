package recordread

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gyeh/tagstamp/internal/model"
)

// document is the subset of a FHIR-style resource the extractor reads.
// A Bundle carries its resources under entry[].resource.
type document struct {
	ResourceType string  `yaml:"resourceType" json:"resourceType"`
	ID           string  `yaml:"id" json:"id"`
	Meta         *meta   `yaml:"meta" json:"meta"`
	Entry        []entry `yaml:"entry" json:"entry"`
}

type meta struct {
	Tag []model.Tag `yaml:"tag" json:"tag"`
}

type entry struct {
	Resource *document `yaml:"resource" json:"resource"`
}

// ReadYAML decodes every document in a YAML stream. Each document may be a
// single resource, a Bundle, or a sequence of resources.
func ReadYAML(r io.Reader) ([]*model.TaggedRecord, error) {
	dec := yaml.NewDecoder(r)
	var out []*model.TaggedRecord
	for {
		var node yaml.Node
		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}

		root := &node
		if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
			root = root.Content[0]
		}
		switch root.Kind {
		case yaml.SequenceNode:
			var docs []*document
			if err := root.Decode(&docs); err != nil {
				return nil, fmt.Errorf("decode yaml resources: %w", err)
			}
			out = appendRecords(out, docs...)
		case yaml.MappingNode:
			var doc document
			if err := root.Decode(&doc); err != nil {
				return nil, fmt.Errorf("decode yaml resource: %w", err)
			}
			out = appendRecords(out, &doc)
		default:
			return nil, fmt.Errorf("decode yaml: line %d: expected a resource or a list of resources", root.Line)
		}
	}
	return out, nil
}

// ReadJSON decodes a JSON resource, Bundle, or array of resources.
func ReadJSON(r io.Reader) ([]*model.TaggedRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read json: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}
	if data[0] == '[' {
		var docs []*document
		if err := json.Unmarshal(data, &docs); err != nil {
			return nil, fmt.Errorf("decode json resources: %w", err)
		}
		return appendRecords(nil, docs...), nil
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode json resource: %w", err)
	}
	return appendRecords(nil, &doc), nil
}

func readDocumentFile(path string, decode func(io.Reader) ([]*model.TaggedRecord, error)) ([]*model.TaggedRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open record file: %w", err)
	}
	defer f.Close()
	return decode(f)
}

func appendRecords(out []*model.TaggedRecord, docs ...*document) []*model.TaggedRecord {
	for _, d := range docs {
		if d == nil {
			continue
		}
		if d.ResourceType == "Bundle" {
			for _, e := range d.Entry {
				out = appendRecords(out, e.Resource)
			}
			continue
		}
		rec := &model.TaggedRecord{ID: d.ID}
		if d.Meta != nil && d.Meta.Tag != nil {
			rec.Tags = append([]model.Tag{}, d.Meta.Tag...)
		}
		out = append(out, rec)
	}
	return out
}
