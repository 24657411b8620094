package semantic

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseModel decodes and validates a semantic model from YAML. Table
// declaration order is preserved because base-table selection and join
// tie-breaks depend on it.
func ParseModel(data []byte) (*Model, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing semantic model: %w", err)
	}

	var model Model
	if err := doc.Decode(&model); err != nil {
		return nil, fmt.Errorf("decoding semantic model: %w", err)
	}
	model.TableOrder = tableKeyOrder(&doc)

	if err := Validate(&model); err != nil {
		return nil, err
	}
	return &model, nil
}

// LoadModel reads and parses a semantic model file.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading semantic model %s: %w", path, err)
	}
	model, err := ParseModel(data)
	if err != nil {
		return nil, fmt.Errorf("loading semantic model %s: %w", path, err)
	}
	return model, nil
}

// Serialize renders the model back to canonical YAML. Round-tripping a loaded
// model is value-preserving up to attribute ordering.
func Serialize(m *Model) ([]byte, error) {
	out, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("serializing semantic model %s: %w", m.Name, err)
	}
	return out, nil
}

// tableKeyOrder walks the document node and returns table keys in source
// order. yaml.v3 map decoding does not preserve key order, so the order is
// recovered from the raw node tree.
func tableKeyOrder(doc *yaml.Node) []string {
	root := doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value != "tables" {
			continue
		}
		tables := root.Content[i+1]
		if tables.Kind != yaml.MappingNode {
			return nil
		}
		keys := make([]string, 0, len(tables.Content)/2)
		for j := 0; j+1 < len(tables.Content); j += 2 {
			keys = append(keys, tables.Content[j].Value)
		}
		return keys
	}
	return nil
}
