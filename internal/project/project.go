// Package project provides design file handling for tooling.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"microflow-designer/internal/features"
)

// File represents a microfluidic design file (.mfdesign): a versioned
// container of layers in interchange v1 form.
type File struct {
	Version  int       `json:"version"`
	Name     string    `json:"name"`
	Created  time.Time `json:"created"`
	Modified time.Time `json:"modified"`

	Layers []features.LayerInterchangeV1 `json:"layers"`
}

// New creates a new empty design file.
func New(name string) *File {
	now := time.Now()
	return &File{
		Version:  1,
		Name:     name,
		Created:  now,
		Modified: now,
	}
}

// Load loads a design from a .mfdesign file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var design File
	if err := json.Unmarshal(data, &design); err != nil {
		return nil, fmt.Errorf("parse design file: %w", err)
	}

	return &design, nil
}

// Save saves the design to a file.
func (p *File) Save(path string) error {
	p.Modified = time.Now()

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize design file: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// AddLayer appends a layer to the design in interchange v1 form.
func (p *File) AddLayer(l *features.Layer) {
	p.Layers = append(p.Layers, l.ToInterchangeV1())
	p.Modified = time.Now()
}

// DecodeLayers materializes all layers in the design. Options are passed
// through to each layer's constructor.
func (p *File) DecodeLayers(opts ...features.Option) ([]*features.Layer, error) {
	layers := make([]*features.Layer, 0, len(p.Layers))
	for i, doc := range p.Layers {
		l, err := features.FromInterchangeV1(doc, opts...)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		layers = append(layers, l)
	}
	return layers, nil
}
