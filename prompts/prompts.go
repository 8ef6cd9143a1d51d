// Package prompts holds the prompt template library offered to clients as
// MCP prompts.
package prompts

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

//go:embed templates/*
var templatesFS embed.FS

const catalogFile = "templates/catalog.yaml"

var ErrUnknownPrompt = errors.New("unknown prompt")

type Argument struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Required    bool   `yaml:"required"`
}

type Prompt struct {
	Name        string     `yaml:"name"`
	Category    string     `yaml:"category"`
	Description string     `yaml:"description"`
	Arguments   []Argument `yaml:"arguments"`
	Template    string     `yaml:"template"`

	tmpl *template.Template
}

// MissingArgumentError names required arguments absent from a render call.
type MissingArgumentError struct {
	Prompt    string
	Arguments []string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("prompt %s: missing required arguments: %s", e.Prompt, strings.Join(e.Arguments, ", "))
}

// Catalog is the parsed prompt library. It is read-only after loading.
type Catalog struct {
	prompts []*Prompt
	byName  map[string]*Prompt
}

// Load parses the embedded catalog and all of its templates.
func Load() (*Catalog, error) {
	raw, err := templatesFS.ReadFile(catalogFile)
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

// Parse builds a catalog from YAML. Duplicate names and templates that fail
// to parse are errors.
func Parse(raw []byte) (*Catalog, error) {
	var doc struct {
		Prompts []*Prompt `yaml:"prompts"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse prompt catalog: %w", err)
	}

	c := &Catalog{byName: make(map[string]*Prompt, len(doc.Prompts))}
	for _, p := range doc.Prompts {
		if p.Name == "" {
			return nil, errors.New("parse prompt catalog: prompt without a name")
		}
		if _, dup := c.byName[p.Name]; dup {
			return nil, fmt.Errorf("parse prompt catalog: duplicate prompt %q", p.Name)
		}

		tmpl, err := template.New(p.Name).Option("missingkey=zero").Parse(p.Template)
		if err != nil {
			return nil, fmt.Errorf("parse prompt %s: %w", p.Name, err)
		}
		p.tmpl = tmpl

		c.prompts = append(c.prompts, p)
		c.byName[p.Name] = p
	}

	return c, nil
}

// List returns the prompts in catalog order.
func (c *Catalog) List() []Prompt {
	out := make([]Prompt, 0, len(c.prompts))
	for _, p := range c.prompts {
		out = append(out, *p)
	}
	return out
}

func (c *Catalog) Get(name string) (Prompt, bool) {
	p, ok := c.byName[name]
	if !ok {
		return Prompt{}, false
	}
	return *p, true
}

// Render fills the named prompt's placeholders. Declared optional arguments
// that are not supplied render as empty strings; undeclared ones are ignored.
func (c *Catalog) Render(name string, args map[string]string) (string, error) {
	p, ok := c.byName[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownPrompt, name)
	}

	data := make(map[string]string, len(p.Arguments))
	var missing []string
	for _, arg := range p.Arguments {
		v := strings.TrimSpace(args[arg.Name])
		if arg.Required && v == "" {
			missing = append(missing, arg.Name)
		}
		data[arg.Name] = v
	}
	if len(missing) > 0 {
		return "", &MissingArgumentError{Prompt: name, Arguments: missing}
	}

	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render prompt %s: %w", name, err)
	}
	return strings.TrimSpace(buf.String()), nil
}
