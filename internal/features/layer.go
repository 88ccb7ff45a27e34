package features

import (
	"fmt"

	"github.com/google/uuid"

	"microflow-designer/internal/device"
	"microflow-designer/pkg/geometry"
)

// Standard layer types.
const (
	TypeFlow    = "FLOW"
	TypeControl = "CONTROL"
)

// DefaultGroup is the group newly created layers belong to.
const DefaultGroup = "0"

// IDGenerator produces unique layer IDs. The default generator is
// UUID-backed; tests inject deterministic ones via WithIDGenerator.
type IDGenerator func() string

func uuidGenerator() string {
	return uuid.NewString()
}

// Layer owns the features of a single design layer: its identity (ID,
// type, group), display color, and a keyed collection of features. The ID
// and layer type are fixed at construction.
type Layer struct {
	id        string
	name      string
	layerType string
	groupID   string

	// Display color as stored in design files ("#rrggbb" or a color
	// name). Empty means unset.
	Color string

	// Layer display settings (session state, not serialized)
	Opacity float64 // 0.0 - 1.0
	Visible bool

	// All features indexed by ID
	features map[string]Feature

	// Fabrication layer this design layer maps to, if assigned
	physical *device.PhysicalLayer

	// Selection state
	selected map[string]bool
}

// Option configures a Layer at construction.
type Option func(*layerConfig)

type layerConfig struct {
	layerType string
	groupID   string
	color     string
	gen       IDGenerator
}

// WithLayerType sets the layer type, e.g. TypeControl. The default is
// TypeFlow.
func WithLayerType(t string) Option {
	return func(c *layerConfig) { c.layerType = t }
}

// WithGroup sets the layer group. The default is DefaultGroup.
func WithGroup(g string) Option {
	return func(c *layerConfig) { c.groupID = g }
}

// WithColor sets the initial display color.
func WithColor(color string) Option {
	return func(c *layerConfig) { c.color = color }
}

// WithIDGenerator replaces the UUID-backed layer ID generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(c *layerConfig) { c.gen = gen }
}

// New creates an empty layer with a freshly generated ID.
func New(name string, opts ...Option) *Layer {
	cfg := layerConfig{
		layerType: TypeFlow,
		groupID:   DefaultGroup,
		gen:       uuidGenerator,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Layer{
		id:        cfg.gen(),
		name:      name,
		layerType: cfg.layerType,
		groupID:   cfg.groupID,
		Color:     cfg.color,
		Opacity:   0.7, // Default 70% opacity
		Visible:   true,
		features:  make(map[string]Feature),
		selected:  make(map[string]bool),
	}
}

// ID returns the layer's unique identifier.
func (l *Layer) ID() string {
	return l.id
}

// Name returns the layer's display name.
func (l *Layer) Name() string {
	return l.name
}

// LayerType returns the layer type tag, e.g. "FLOW".
func (l *Layer) LayerType() string {
	return l.layerType
}

// Group returns the layer's group ID.
func (l *Layer) Group() string {
	return l.groupID
}

// SetGroup changes the layer's group ID.
func (l *Layer) SetGroup(g string) {
	l.groupID = g
}

// PhysicalLayer returns the assigned fabrication layer, or nil.
func (l *Layer) PhysicalLayer() *device.PhysicalLayer {
	return l.physical
}

// SetPhysicalLayer assigns the fabrication layer. The reference is
// propagated onto features as they are added.
func (l *Layer) SetPhysicalLayer(pl *device.PhysicalLayer) {
	l.physical = pl
}

// AddFeature inserts a feature under its ID, replacing any feature already
// stored under the same ID, and stamps the layer's current fabrication
// layer onto it.
func (l *Layer) AddFeature(f Feature) error {
	if err := Validate(f); err != nil {
		return err
	}
	f.SetPhysicalLayer(l.physical)
	l.features[f.FeatureID()] = f
	return nil
}

// GetFeature returns the stored feature with the given ID. The returned
// reference is the layer's own, never a copy.
func (l *Layer) GetFeature(id string) (Feature, error) {
	f, ok := l.features[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFeatureNotFound, id)
	}
	return f, nil
}

// RemoveFeature removes the given feature from the layer.
func (l *Layer) RemoveFeature(f Feature) error {
	if err := Validate(f); err != nil {
		return err
	}
	return l.RemoveFeatureByID(f.FeatureID())
}

// RemoveFeatureByID removes the feature with the given ID.
func (l *Layer) RemoveFeatureByID(id string) error {
	if _, ok := l.features[id]; !ok {
		return fmt.Errorf("%w: %q", ErrFeatureNotFound, id)
	}
	delete(l.features, id)
	delete(l.selected, id)
	return nil
}

// ContainsFeature reports whether a feature with f's ID is stored.
func (l *Layer) ContainsFeature(f Feature) (bool, error) {
	if err := Validate(f); err != nil {
		return false, err
	}
	_, ok := l.features[f.FeatureID()]
	return ok, nil
}

// ContainsFeatureByID reports whether a feature with the given ID is stored.
func (l *Layer) ContainsFeatureByID(id string) bool {
	_, ok := l.features[id]
	return ok
}

// AllFeatures returns the layer's feature map itself, not a copy. Callers
// share storage with the layer and observe subsequent mutation; collaborators
// rely on this shared identity.
func (l *Layer) AllFeatures() map[string]Feature {
	return l.features
}

// FeatureCount returns the number of features on the layer.
func (l *Layer) FeatureCount() int {
	return len(l.features)
}

// Clear removes all features from the layer.
func (l *Layer) Clear() {
	l.features = make(map[string]Feature)
	l.selected = make(map[string]bool)
}

// CountByMacro returns the number of features per component macro.
func (l *Layer) CountByMacro() map[string]int {
	counts := make(map[string]int)
	for _, f := range l.features {
		counts[f.FeatureMacro()]++
	}
	return counts
}

// MoveFeature translates a feature by (dx, dy).
func (l *Layer) MoveFeature(id string, dx, dy float64) error {
	f, ok := l.features[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrFeatureNotFound, id)
	}
	f.Translate(dx, dy)
	return nil
}

// HitTest finds a feature at the given coordinates.
// Returns nil if no feature is at that location.
func (l *Layer) HitTest(x, y float64) Feature {
	for _, f := range l.features {
		if f.HitTest(x, y) {
			return f
		}
	}
	return nil
}

// NearestFeature returns the feature whose bounds center is closest to
// (x, y), or nil for an empty layer. Used for snap-to-feature picking when
// a hit test misses.
func (l *Layer) NearestFeature(x, y float64) Feature {
	p := geometry.NewPoint2D(x, y)
	var nearest Feature
	best := 0.0
	for _, f := range l.features {
		d := f.Bounds().Center().Distance(p)
		if nearest == nil || d < best {
			nearest = f
			best = d
		}
	}
	return nearest
}

// FeaturesInRegion returns all features whose bounds intersect the region.
func (l *Layer) FeaturesInRegion(region geometry.Rect) []Feature {
	var hits []Feature
	for _, f := range l.features {
		if f.Bounds().Intersects(region) {
			hits = append(hits, f)
		}
	}
	return hits
}

// Selection methods

// Select adds a feature to the selection.
func (l *Layer) Select(id string) {
	if _, ok := l.features[id]; ok {
		l.selected[id] = true
	}
}

// Deselect removes a feature from the selection.
func (l *Layer) Deselect(id string) {
	delete(l.selected, id)
}

// ToggleSelect toggles the selection state of a feature.
func (l *Layer) ToggleSelect(id string) {
	if l.selected[id] {
		delete(l.selected, id)
	} else {
		l.Select(id)
	}
}

// ClearSelection deselects all features.
func (l *Layer) ClearSelection() {
	l.selected = make(map[string]bool)
}

// SelectedIDs returns the IDs of all selected features.
func (l *Layer) SelectedIDs() []string {
	ids := make([]string, 0, len(l.selected))
	for id := range l.selected {
		ids = append(ids, id)
	}
	return ids
}

// SelectedCount returns the number of selected features.
func (l *Layer) SelectedCount() int {
	return len(l.selected)
}

// Serialization

// ToInterchangeV1 returns the layer in interchange v1 form. Feature order
// follows map iteration and is not guaranteed across calls.
func (l *Layer) ToInterchangeV1() LayerInterchangeV1 {
	doc := LayerInterchangeV1{
		ID:   l.id,
		Name: l.name,
		Type: l.layerType,
		// Groups are not wired through the interchange format yet; the
		// group field is always written as "0" regardless of groupID.
		// TODO: emit the real group once multi-group export lands.
		Group:    DefaultGroup,
		Color:    l.Color,
		Features: make([]FeatureInterchangeV1, 0, len(l.features)),
	}
	for _, f := range l.features {
		doc.Features = append(doc.Features, f.ToInterchangeV1())
	}
	return doc
}

// ToFeatureLayerJSON returns the layer in its legacy output form. Note
// that the embedded features use the interchange v1 encoding; see
// FeatureLayerJSON.
func (l *Layer) ToFeatureLayerJSON() FeatureLayerJSON {
	v1 := l.ToInterchangeV1()
	return FeatureLayerJSON{
		Color:    v1.Color,
		Features: v1.Features,
	}
}

// FromInterchangeV1 builds a layer from its interchange v1 form. The layer
// gets a freshly generated ID; name, type, and group come from the
// document, and the color is set only when the document carries one.
func FromInterchangeV1(doc LayerInterchangeV1, opts ...Option) (*Layer, error) {
	l := New(doc.Name, opts...)
	l.layerType = doc.Type
	l.groupID = doc.Group
	if doc.Color != "" {
		l.Color = doc.Color
	}
	for _, fd := range doc.Features {
		f, err := FeatureFromInterchangeV1(fd)
		if err != nil {
			return nil, fmt.Errorf("decode layer %q: %w", doc.ID, err)
		}
		if err := l.AddFeature(f); err != nil {
			return nil, fmt.Errorf("decode layer %q: %w", doc.ID, err)
		}
	}
	return l, nil
}

// FromJSON builds a layer from its legacy input form. The features mapping
// is required; its values use the legacy feature encoding.
func FromJSON(doc LayerJSON, opts ...Option) (*Layer, error) {
	if doc.Features == nil {
		return nil, fmt.Errorf("%w: layer missing features", ErrMalformedInput)
	}
	l := New("", opts...)
	l.layerType = doc.Type
	if doc.Color != "" {
		l.Color = doc.Color
	}
	for id, fd := range doc.Features {
		if fd.ID == "" {
			fd.ID = id
		}
		f, err := FeatureFromJSON(fd)
		if err != nil {
			return nil, fmt.Errorf("decode layer: %w", err)
		}
		if err := l.AddFeature(f); err != nil {
			return nil, fmt.Errorf("decode layer: %w", err)
		}
	}
	return l, nil
}
