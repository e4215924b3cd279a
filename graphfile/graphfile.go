// SPDX-License-Identifier: MIT

package graphfile

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphtutor/core"
)

var (
	// ErrUnknownPreset is returned by Preset for names not in PresetNames.
	ErrUnknownPreset = errors.New("graphfile: unknown preset")

	// ErrInvalidDocument is returned for malformed documents.
	ErrInvalidDocument = errors.New("graphfile: invalid document")
)

//go:embed presets/*.yaml
var presetFS embed.FS

// ID is a vertex identifier that accepts any YAML scalar.
type ID string

// UnmarshalYAML implements yaml.Unmarshaler.
func (id *ID) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: vertex ID must be a scalar", ErrInvalidDocument, value.Line)
	}
	*id = ID(value.Value)

	return nil
}

// Document is the on-disk form of one graph.
type Document struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description,omitempty"`
	Insight     string  `yaml:"insight,omitempty"`
	Stage       int     `yaml:"stage,omitempty"`
	Loops       bool    `yaml:"loops,omitempty"`
	Vertices    []ID    `yaml:"vertices,flow"`
	Edges       [][2]ID `yaml:"edges"`
}

// Load decodes one document from r. Unknown keys are rejected.
func Load(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("graphfile.Load: %w", err)
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// LoadFile reads and decodes the document at filename.
func LoadFile(filename string) (*Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("graphfile.LoadFile: %w", err)
	}
	defer f.Close()

	doc, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if doc.Name == "" {
		doc.Name = strings.TrimSuffix(path.Base(filename), path.Ext(filename))
	}

	return doc, nil
}

// Build creates a fresh graph holding the document's vertices and edges.
func (d *Document) Build() (*core.Graph, error) {
	var opts []core.GraphOption
	if d.Loops {
		opts = append(opts, core.WithLoops())
	}

	vertices := make([]string, len(d.Vertices))
	for i, v := range d.Vertices {
		vertices[i] = string(v)
	}
	edges := make([][2]string, len(d.Edges))
	for i, e := range d.Edges {
		edges[i] = [2]string{string(e[0]), string(e[1])}
	}

	g, err := core.FromEdges(vertices, edges, opts...)
	if err != nil {
		return nil, fmt.Errorf("Build(%q): %w", d.Name, err)
	}

	return g, nil
}

// Marshal encodes the document as YAML.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("Marshal(%q): %w", d.Name, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("Marshal(%q): %w", d.Name, err)
	}

	return buf.Bytes(), nil
}

// FromGraph captures g as a document called name.
func FromGraph(g *core.Graph, name string) *Document {
	doc := &Document{Name: name, Loops: g.Looped()}
	for _, v := range g.Vertices() {
		doc.Vertices = append(doc.Vertices, ID(v))
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, [2]ID{ID(e.U), ID(e.V)})
	}

	return doc
}

// Preset returns a copy of the named embedded document.
func Preset(name string) (*Document, error) {
	data, err := presetFS.ReadFile("presets/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("Preset(%q): %w", name, ErrUnknownPreset)
	}

	doc, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("Preset(%q): %w", name, err)
	}

	return doc, nil
}

// PresetNames lists the embedded presets in ascending order.
func PresetNames() []string {
	entries, err := presetFS.ReadDir("presets")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)

	return names
}

func (d *Document) validate() error {
	for i, v := range d.Vertices {
		if v == "" {
			return fmt.Errorf("%w: vertices[%d] is empty", ErrInvalidDocument, i)
		}
	}
	for i, e := range d.Edges {
		if e[0] == "" || e[1] == "" {
			return fmt.Errorf("%w: edges[%d] has an empty endpoint", ErrInvalidDocument, i)
		}
	}
	if d.Stage < 0 {
		return fmt.Errorf("%w: stage %d is negative", ErrInvalidDocument, d.Stage)
	}

	return nil
}
