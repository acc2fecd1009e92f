package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Parse decodes a schema document. Payloads starting with '{' are treated as
// JSON; anything else goes through the YAML decoder. Both paths preserve the
// declaration order of field maps.
func Parse(data []byte) (*Schema, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("schema: document is empty")
	}
	if trimmed[0] == '{' {
		return parseJSON(trimmed)
	}
	return parseYAML(trimmed)
}

func parseJSON(data []byte) (*Schema, error) {
	var root struct {
		Properties *Fields `json:"properties"`
	}
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("schema: decode document: %w", err)
	}
	return &Schema{properties: root.Properties}, nil
}

// UnmarshalJSON decodes an ordered field map. encoding/json map decoding
// discards key order, so this walks the object token by token instead.
func (f *Fields) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("schema: field map: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("schema: field map must be an object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("schema: field map key: %w", err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("schema: field map key must be a string, got %v", keyTok)
		}

		fld := &Field{}
		if err := dec.Decode(fld); err != nil {
			return fmt.Errorf("schema: field %q: %w", name, err)
		}
		fld.Name = name
		f.add(name, fld)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("schema: field map close: %w", err)
	}
	return nil
}

// UnmarshalJSON decodes a single field descriptor. Nested nodes accept either
// a {"properties": {...}} wrapper or a bare field map; both normalise to a
// *Fields so builders never see the wrapper.
func (f *Field) UnmarshalJSON(data []byte) error {
	var aux struct {
		Title    string   `json:"title"`
		Widget   string   `json:"widget"`
		Type     string   `json:"type"`
		Text     string   `json:"text"`
		Callback string   `json:"callback"`
		Enum     []string `json:"enum"`

		Minimum *float64 `json:"minimum"`
		Maximum *float64 `json:"maximum"`
		Step    *float64 `json:"step"`

		Properties  *Fields                    `json:"properties"`
		Children    json.RawMessage            `json:"children"`
		ChildrenMap map[string]json.RawMessage `json:"children_map"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	f.Title = aux.Title
	f.Widget = aux.Widget
	f.Type = aux.Type
	f.Text = aux.Text
	f.Callback = aux.Callback
	f.Enum = aux.Enum
	f.Minimum = aux.Minimum
	f.Maximum = aux.Maximum
	f.Step = aux.Step
	f.Properties = aux.Properties

	if len(aux.Children) > 0 {
		children, err := decodeNode(aux.Children)
		if err != nil {
			return fmt.Errorf("children: %w", err)
		}
		f.Children = children
	}

	if len(aux.ChildrenMap) > 0 {
		f.ChildrenMap = make(map[string]*Fields, len(aux.ChildrenMap))
		for key, raw := range aux.ChildrenMap {
			node, err := decodeNode(raw)
			if err != nil {
				return fmt.Errorf("children_map[%s]: %w", key, err)
			}
			f.ChildrenMap[key] = node
		}
	}

	return nil
}

// decodeNode unwraps an optional {"properties": {...}} envelope around a field
// map.
func decodeNode(raw json.RawMessage) (*Fields, error) {
	var probe struct {
		Properties json.RawMessage `json:"properties"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, err
	}
	payload := raw
	if len(probe.Properties) > 0 && bytes.TrimSpace(probe.Properties)[0] == '{' {
		payload = probe.Properties
	}

	fields := &Fields{}
	if err := json.Unmarshal(payload, fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func parseYAML(data []byte) (*Schema, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("schema: decode yaml document: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("schema: yaml document must be a mapping")
	}

	props := yamlValue(root, "properties")
	if props == nil {
		return &Schema{}, nil
	}
	fields, err := fieldsFromYAML(props)
	if err != nil {
		return nil, err
	}
	return &Schema{properties: fields}, nil
}

// fieldsFromYAML walks a mapping node; yaml.v3 keeps mapping entries in source
// order, which carries the declaration-order guarantee to YAML documents.
func fieldsFromYAML(node *yaml.Node) (*Fields, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("schema: field map must be a mapping, got yaml kind %d", node.Kind)
	}

	fields := &Fields{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		fld, err := fieldFromYAML(node.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("schema: field %q: %w", name, err)
		}
		fld.Name = name
		fields.add(name, fld)
	}
	return fields, nil
}

func fieldFromYAML(node *yaml.Node) (*Field, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("field descriptor must be a mapping")
	}

	fld := &Field{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		value := node.Content[i+1]

		switch key {
		case "title":
			fld.Title = value.Value
		case "widget":
			fld.Widget = value.Value
		case "type":
			fld.Type = value.Value
		case "text":
			fld.Text = value.Value
		case "callback":
			fld.Callback = value.Value
		case "enum":
			if value.Kind != yaml.SequenceNode {
				return nil, fmt.Errorf("enum must be a sequence")
			}
			for _, item := range value.Content {
				fld.Enum = append(fld.Enum, item.Value)
			}
		case "minimum", "maximum", "step":
			num, err := strconv.ParseFloat(value.Value, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			switch key {
			case "minimum":
				fld.Minimum = &num
			case "maximum":
				fld.Maximum = &num
			case "step":
				fld.Step = &num
			}
		case "properties":
			nested, err := fieldsFromYAML(value)
			if err != nil {
				return nil, err
			}
			fld.Properties = nested
		case "children":
			nested, err := nodeFromYAML(value)
			if err != nil {
				return nil, fmt.Errorf("children: %w", err)
			}
			fld.Children = nested
		case "children_map":
			if value.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("children_map must be a mapping")
			}
			fld.ChildrenMap = make(map[string]*Fields)
			for j := 0; j+1 < len(value.Content); j += 2 {
				mapKey := value.Content[j].Value
				nested, err := nodeFromYAML(value.Content[j+1])
				if err != nil {
					return nil, fmt.Errorf("children_map[%s]: %w", mapKey, err)
				}
				fld.ChildrenMap[mapKey] = nested
			}
		}
	}
	return fld, nil
}

func nodeFromYAML(node *yaml.Node) (*Fields, error) {
	if props := yamlValue(node, "properties"); props != nil && props.Kind == yaml.MappingNode {
		return fieldsFromYAML(props)
	}
	return fieldsFromYAML(node)
}

func yamlValue(mapping *yaml.Node, key string) *yaml.Node {
	if mapping.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}
