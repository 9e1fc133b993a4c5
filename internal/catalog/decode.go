package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/jakoblorz/go-depfilter/internal/models"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a catalog document
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor infers the document format from a source name.
// Anything that does not end in .yaml or .yml is JSON.
func FormatFor(name string) Format {
	p := name
	if u, err := url.Parse(name); err == nil && u.Scheme != "" && u.Path != "" {
		p = u.Path
	}
	if i := strings.LastIndex(p, "@"); i >= 0 && strings.HasPrefix(name, "github:") {
		p = p[:i]
	}

	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses a catalog document. The top level must be a list of
// projects, or an object whose "projects" field is that list.
func Decode(format Format, data []byte) ([]models.Project, error) {
	switch format {
	case FormatYAML:
		return decodeYAML(data)
	default:
		return decodeJSON(data)
	}
}

type projectsEnvelope struct {
	Projects json.RawMessage `json:"projects"`
}

func decodeJSON(data []byte) ([]models.Project, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty document")
	}

	if trimmed[0] == '{' {
		var env projectsEnvelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
		trimmed = bytes.TrimSpace(env.Projects)
		if len(trimmed) == 0 {
			return nil, fmt.Errorf("object document has no projects field")
		}
	}

	if trimmed[0] != '[' {
		return nil, fmt.Errorf("expected a list of projects")
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	projects := make([]models.Project, 0, len(items))
	for _, item := range items {
		var p models.Project
		if item = bytes.TrimSpace(item); len(item) > 0 && item[0] == '{' {
			if err := json.Unmarshal(item, &p); err != nil {
				return nil, fmt.Errorf("failed to parse JSON: %w", err)
			}
		}
		projects = append(projects, p)
	}
	return projects, nil
}

func decodeYAML(data []byte) ([]models.Project, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("empty document")
	}

	root := doc.Content[0]
	if root.Kind == yaml.MappingNode {
		var list *yaml.Node
		for i := 0; i+1 < len(root.Content); i += 2 {
			if root.Content[i].Value == "projects" {
				list = root.Content[i+1]
				break
			}
		}
		if list == nil {
			return nil, fmt.Errorf("object document has no projects field")
		}
		root = list
	}

	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("expected a list of projects at line %d", root.Line)
	}

	projects := make([]models.Project, 0, len(root.Content))
	for _, item := range root.Content {
		var p models.Project
		if item.Kind == yaml.MappingNode {
			if err := item.Decode(&p); err != nil {
				return nil, err
			}
		}
		projects = append(projects, p)
	}
	return projects, nil
}
