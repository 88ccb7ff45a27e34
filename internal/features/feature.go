// Package features provides the design layer model: keyed collections of
// drawable features with legacy JSON and interchange v1 serialization.
package features

import (
	"fmt"

	"microflow-designer/internal/device"
	"microflow-designer/pkg/geometry"
)

// Standard component macros.
const (
	MacroChannel = "CHANNEL"
	MacroPort    = "PORT"
	MacroValve   = "VALVE"
	MacroEdge    = "EDGE"
)

// Feature is the common interface for drawable design elements on a layer.
type Feature interface {
	// FeatureID returns the unique identifier for this feature.
	FeatureID() string

	// FeatureMacro returns the component macro, e.g. "CHANNEL" or "PORT".
	FeatureMacro() string

	// PhysicalLayer returns the fabrication layer this feature belongs to,
	// or nil if it has not been placed yet.
	PhysicalLayer() *device.PhysicalLayer

	// SetPhysicalLayer sets the fabrication layer back-reference.
	SetPhysicalLayer(pl *device.PhysicalLayer)

	// Bounds returns the bounding rectangle for this feature.
	Bounds() geometry.Rect

	// HitTest returns true if the point (x, y) is within this feature.
	HitTest(x, y float64) bool

	// Translate moves the feature by (dx, dy).
	Translate(dx, dy float64)

	// ToJSON returns the feature in its legacy serialized form.
	ToJSON() FeatureJSON

	// ToInterchangeV1 returns the feature in interchange v1 form.
	ToInterchangeV1() FeatureInterchangeV1
}

// Validate checks that a value satisfies the feature contract before it
// enters a layer. Nil references of either variant and features without
// an ID are rejected.
func Validate(f Feature) error {
	switch v := f.(type) {
	case nil:
		return fmt.Errorf("%w: nil feature", ErrInvalidFeature)
	case *BasicFeature:
		if v == nil {
			return fmt.Errorf("%w: nil feature", ErrInvalidFeature)
		}
	case *EdgeFeature:
		if v == nil {
			return fmt.Errorf("%w: nil feature", ErrInvalidFeature)
		}
		// Decoders reject edge features without a usable outline, so the
		// store must not admit one either.
		if len(v.Outline) < 3 {
			return fmt.Errorf("%w: edge feature outline needs at least 3 vertices", ErrInvalidFeature)
		}
	}
	if f.FeatureID() == "" {
		return fmt.Errorf("%w: feature has no id", ErrInvalidFeature)
	}
	return nil
}

// BasicFeature is a parametric component placed at a position, e.g. a
// channel segment, port, valve, or mixer.
type BasicFeature struct {
	ID       string
	Macro    string
	Position geometry.Point2D
	Params   map[string]float64

	physical *device.PhysicalLayer
}

// NewBasicFeature creates a feature with the given macro and placement.
func NewBasicFeature(id, macro string, pos geometry.Point2D, params map[string]float64) *BasicFeature {
	if params == nil {
		params = make(map[string]float64)
	}
	return &BasicFeature{
		ID:       id,
		Macro:    macro,
		Position: pos,
		Params:   params,
	}
}

func (f *BasicFeature) FeatureID() string {
	return f.ID
}

func (f *BasicFeature) FeatureMacro() string {
	return f.Macro
}

func (f *BasicFeature) PhysicalLayer() *device.PhysicalLayer {
	return f.physical
}

func (f *BasicFeature) SetPhysicalLayer(pl *device.PhysicalLayer) {
	f.physical = pl
}

// Bounds derives the bounding rectangle from the "width"/"height" params,
// or from "radius" for round components. A feature with neither reports a
// zero-size rectangle at its position.
func (f *BasicFeature) Bounds() geometry.Rect {
	w := f.Params["width"]
	h := f.Params["height"]
	if w == 0 && h == 0 {
		if r := f.Params["radius"]; r > 0 {
			w, h = 2*r, 2*r
		}
	}
	return geometry.Rect{
		X:      f.Position.X - w/2,
		Y:      f.Position.Y - h/2,
		Width:  w,
		Height: h,
	}
}

func (f *BasicFeature) HitTest(x, y float64) bool {
	return f.Bounds().Contains(geometry.NewPoint2D(x, y))
}

func (f *BasicFeature) Translate(dx, dy float64) {
	f.Position = f.Position.Add(geometry.Point2D{X: dx, Y: dy})
}

func (f *BasicFeature) ToJSON() FeatureJSON {
	return FeatureJSON{
		ID:     f.ID,
		Macro:  f.Macro,
		X:      f.Position.X,
		Y:      f.Position.Y,
		Params: f.Params,
	}
}

func (f *BasicFeature) ToInterchangeV1() FeatureInterchangeV1 {
	return FeatureInterchangeV1{
		ID:       f.ID,
		Type:     featureTypeBasic,
		Macro:    f.Macro,
		Position: f.Position,
		Params:   f.Params,
	}
}

// EdgeFeature traces a boundary path such as the chip outline.
type EdgeFeature struct {
	BasicFeature
	Outline []geometry.Point2D
}

// NewEdgeFeature creates an edge feature from its outline vertices.
func NewEdgeFeature(id string, outline []geometry.Point2D) *EdgeFeature {
	e := &EdgeFeature{
		BasicFeature: *NewBasicFeature(id, MacroEdge, geometry.Point2D{}, nil),
		Outline:      outline,
	}
	if len(outline) > 0 {
		e.Position = geometry.BoundingBox(outline).Center()
	}
	return e
}

// Bounds returns the bounding box of the outline. An edge feature with no
// outline falls back to its parametric bounds.
func (f *EdgeFeature) Bounds() geometry.Rect {
	if len(f.Outline) > 0 {
		return geometry.BoundingBox(f.Outline)
	}
	return f.BasicFeature.Bounds()
}

func (f *EdgeFeature) HitTest(x, y float64) bool {
	return geometry.PointInPolygon(geometry.NewPoint2D(x, y), f.Outline)
}

func (f *EdgeFeature) Translate(dx, dy float64) {
	d := geometry.Point2D{X: dx, Y: dy}
	for i, p := range f.Outline {
		f.Outline[i] = p.Add(d)
	}
	f.Position = f.Position.Add(d)
}

func (f *EdgeFeature) ToJSON() FeatureJSON {
	doc := f.BasicFeature.ToJSON()
	doc.Edge = true
	doc.Outline = f.Outline
	return doc
}

func (f *EdgeFeature) ToInterchangeV1() FeatureInterchangeV1 {
	doc := f.BasicFeature.ToInterchangeV1()
	doc.Type = featureTypeEdge
	doc.Outline = f.Outline
	return doc
}
