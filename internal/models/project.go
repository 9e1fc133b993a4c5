package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Project is a single entry of the project catalog.
type Project struct {
	// ID identifies the project. Numeric IDs in the source document are kept as text.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// Name is the display name
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Description is free text shown under the name
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// URL points to the project home page or repository
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// Dependencies maps dependency name to version spec.
	// nil means the project document had no usable dependencies field.
	Dependencies *Dependencies `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// NewProject creates a new Project instance
func NewProject(id, name string, deps *Dependencies) Project {
	return Project{
		ID:           id,
		Name:         name,
		Dependencies: deps,
	}
}

// Title returns the name to display, falling back to the ID.
func (p Project) Title() string {
	if p.Name != "" {
		return p.Name
	}
	if p.ID != "" {
		return p.ID
	}
	return "(unnamed)"
}

// DependsOn reports whether the project declares the dependency tag.
func (p Project) DependsOn(tag Tag) bool {
	return p.Dependencies.Has(string(tag))
}

type projectDocument struct {
	ID           json.RawMessage `json:"id"`
	Name         json.RawMessage `json:"name"`
	Description  json.RawMessage `json:"description"`
	URL          json.RawMessage `json:"url"`
	Dependencies json.RawMessage `json:"dependencies"`
}

// UnmarshalJSON decodes a project leniently: a missing or malformed field
// is left empty and never fails the whole document.
func (p *Project) UnmarshalJSON(data []byte) error {
	var doc projectDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to decode project: %w", err)
	}

	*p = Project{
		ID:          rawID(doc.ID),
		Name:        rawString(doc.Name),
		Description: rawString(doc.Description),
		URL:         rawString(doc.URL),
	}

	trimmed := bytes.TrimSpace(doc.Dependencies)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}

	deps := NewDependencies()
	if err := json.Unmarshal(trimmed, deps); err != nil {
		return nil
	}
	p.Dependencies = deps

	return nil
}

// rawID renders a JSON id (string or number) as text.
func rawID(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}

	return strings.Trim(string(trimmed), `"`)
}

// rawString returns raw when it holds a JSON string, otherwise "".
func rawString(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

// UnmarshalYAML mirrors UnmarshalJSON for YAML catalogs.
func (p *Project) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("failed to decode project: expected mapping at line %d", node.Line)
	}

	*p = Project{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "id":
			if value.Kind == yaml.ScalarNode {
				p.ID = value.Value
			}
		case "name":
			p.Name = scalar(value)
		case "description":
			p.Description = scalar(value)
		case "url":
			p.URL = scalar(value)
		case "dependencies":
			if value.Kind != yaml.MappingNode {
				continue
			}
			deps := NewDependencies()
			for j := 0; j+1 < len(value.Content); j += 2 {
				deps.Set(value.Content[j].Value, scalar(value.Content[j+1]))
			}
			p.Dependencies = deps
		}
	}

	return nil
}

func scalar(node *yaml.Node) string {
	if node.Kind != yaml.ScalarNode || node.Tag == "!!null" {
		return ""
	}
	return node.Value
}
