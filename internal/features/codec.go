package features

import (
	"fmt"

	"microflow-designer/pkg/geometry"
)

// Feature type discriminators used by the interchange format.
const (
	featureTypeBasic = "Feature"
	featureTypeEdge  = "EdgeFeature"
)

// FeatureInterchangeV1 is the interchange v1 wire form of a feature.
type FeatureInterchangeV1 struct {
	ID       string             `json:"id"`
	Type     string             `json:"type"`
	Macro    string             `json:"macro,omitempty"`
	Position geometry.Point2D   `json:"position"`
	Params   map[string]float64 `json:"params,omitempty"`
	Outline  []geometry.Point2D `json:"outline,omitempty"`
}

// FeatureJSON is the legacy wire form of a feature: flat coordinates
// instead of a position object, and an "edge" flag instead of a type tag.
type FeatureJSON struct {
	ID      string             `json:"id"`
	Macro   string             `json:"macro,omitempty"`
	X       float64            `json:"x"`
	Y       float64            `json:"y"`
	Params  map[string]float64 `json:"params,omitempty"`
	Edge    bool               `json:"edge,omitempty"`
	Outline []geometry.Point2D `json:"outline,omitempty"`
}

// LayerInterchangeV1 is the interchange v1 wire form of a layer.
type LayerInterchangeV1 struct {
	ID       string                 `json:"id"`
	Name     string                 `json:"name,omitempty"`
	Type     string                 `json:"type"`
	Group    string                 `json:"group"`
	Features []FeatureInterchangeV1 `json:"features"`
	Color    string                 `json:"color,omitempty"`
}

// FeatureLayerJSON is the legacy OUTPUT form of a layer. Its features are
// carried in interchange v1 form, while the legacy INPUT form (LayerJSON)
// carries a mapping of legacy-form features. The two shapes are not
// inverses; the format split is kept for compatibility with existing files.
type FeatureLayerJSON struct {
	Color    string                 `json:"color,omitempty"`
	Features []FeatureInterchangeV1 `json:"features"`
}

// LayerJSON is the legacy INPUT form of a layer.
type LayerJSON struct {
	Type     string                 `json:"type"`
	Color    string                 `json:"color,omitempty"`
	Features map[string]FeatureJSON `json:"features"`
}

// FeatureFromInterchangeV1 builds a feature from its interchange v1 form,
// dispatching on the type discriminator. Documents with a missing type tag
// decode as basic features.
func FeatureFromInterchangeV1(doc FeatureInterchangeV1) (Feature, error) {
	if doc.ID == "" {
		return nil, fmt.Errorf("%w: feature missing id", ErrMalformedInput)
	}
	switch doc.Type {
	case featureTypeEdge:
		if len(doc.Outline) < 3 {
			return nil, fmt.Errorf("%w: edge feature %q has no outline", ErrMalformedInput, doc.ID)
		}
		e := NewEdgeFeature(doc.ID, doc.Outline)
		if doc.Macro != "" {
			e.Macro = doc.Macro
		}
		if doc.Params != nil {
			e.Params = doc.Params
		}
		e.Position = doc.Position
		return e, nil
	case "", featureTypeBasic:
		return NewBasicFeature(doc.ID, doc.Macro, doc.Position, doc.Params), nil
	default:
		return nil, fmt.Errorf("%w: unknown feature type %q", ErrMalformedInput, doc.Type)
	}
}

// FeatureFromJSON builds a feature from its legacy form.
func FeatureFromJSON(doc FeatureJSON) (Feature, error) {
	if doc.ID == "" {
		return nil, fmt.Errorf("%w: feature missing id", ErrMalformedInput)
	}
	pos := geometry.NewPoint2D(doc.X, doc.Y)
	if doc.Edge {
		if len(doc.Outline) < 3 {
			return nil, fmt.Errorf("%w: edge feature %q has no outline", ErrMalformedInput, doc.ID)
		}
		e := NewEdgeFeature(doc.ID, doc.Outline)
		if doc.Macro != "" {
			e.Macro = doc.Macro
		}
		if doc.Params != nil {
			e.Params = doc.Params
		}
		e.Position = pos
		return e, nil
	}
	return NewBasicFeature(doc.ID, doc.Macro, pos, doc.Params), nil
}
