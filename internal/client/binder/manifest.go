package binder

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Kind is the rendering kind of a binding.
type Kind string

const (
	// KindText replaces the element's text content.
	KindText Kind = "text"

	// KindHTML replaces the element's inner markup, translating newlines
	// to line breaks.
	KindHTML Kind = "html"

	// KindAttr sets a single attribute (href, src, placeholder, title...).
	KindAttr Kind = "attr"

	// KindVisible toggles the element on the value's truthiness.
	KindVisible Kind = "visible"

	// KindChip replaces a chip label while preserving its decorative
	// marker element.
	KindChip Kind = "chip"
)

// Binding associates a DOM selector with a path into the content document
// and a rendering kind.
type Binding struct {
	Selector string `yaml:"selector"`
	Path     string `yaml:"path"`
	Kind     Kind   `yaml:"kind"`

	// Attr names the attribute for KindAttr bindings.
	Attr string `yaml:"attr,omitempty"`

	// Marker selects the decorative child kept by KindChip bindings.
	// Defaults to ".dot".
	Marker string `yaml:"marker,omitempty"`
}

// Page scopes a set of bindings to one page. When Anchor is set, the
// bindings apply only to documents containing a match for it; all pages
// share one manifest, but not every page declares every binding.
type Page struct {
	Name     string    `yaml:"name"`
	Anchor   string    `yaml:"anchor,omitempty"`
	Bindings []Binding `yaml:"bindings"`
}

// Manifest is the declarative binding set for a deployment, loaded from
// YAML. It replaces markup-structure heuristics: the binder is driven
// entirely by this data.
type Manifest struct {
	Pages []Page `yaml:"pages"`
}

// LoadManifest reads and validates a YAML manifest file.
func LoadManifest(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return ParseManifest(raw)
}

// ParseManifest parses and validates manifest bytes.
func ParseManifest(raw []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	for _, page := range m.Pages {
		for _, b := range page.Bindings {
			if b.Selector == "" || b.Path == "" {
				return fmt.Errorf("page %q: binding needs selector and path", page.Name)
			}
			switch b.Kind {
			case KindText, KindHTML, KindVisible, KindChip:
			case KindAttr:
				if b.Attr == "" {
					return fmt.Errorf("page %q: attr binding for %q needs an attr name", page.Name, b.Selector)
				}
			default:
				return fmt.Errorf("page %q: unknown binding kind %q", page.Name, b.Kind)
			}
		}
	}
	return nil
}
