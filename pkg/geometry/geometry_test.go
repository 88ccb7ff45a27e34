package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"microflow-designer/pkg/geometry"
)

func TestPoint2D(t *testing.T) {
	t.Parallel()

	a := geometry.NewPoint2D(1, 2)
	b := geometry.NewPoint2D(4, 6)

	assert.InDelta(t, 5, a.Distance(b), 1e-9)
	assert.Equal(t, geometry.NewPoint2D(5, 8), a.Add(b))
	assert.Equal(t, geometry.NewPoint2D(-3, -4), a.Sub(b))
	assert.Equal(t, geometry.NewPoint2D(2, 4), a.Scale(2))
}

func TestRect(t *testing.T) {
	t.Parallel()

	r := geometry.NewRect(0, 0, 10, 10)

	t.Run("contains", func(t *testing.T) {
		t.Parallel()
		assert.True(t, r.Contains(geometry.NewPoint2D(5, 5)))
		assert.True(t, r.Contains(geometry.NewPoint2D(0, 10)))
		assert.False(t, r.Contains(geometry.NewPoint2D(11, 5)))
	})

	t.Run("center", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, geometry.NewPoint2D(5, 5), r.Center())
	})

	t.Run("intersects", func(t *testing.T) {
		t.Parallel()
		assert.True(t, r.Intersects(geometry.NewRect(5, 5, 10, 10)))
		assert.False(t, r.Intersects(geometry.NewRect(20, 20, 5, 5)))
	})

	t.Run("union", func(t *testing.T) {
		t.Parallel()
		u := r.Union(geometry.NewRect(5, 5, 10, 10))
		assert.Equal(t, geometry.NewRect(0, 0, 15, 15), u)
	})
}

func TestBoundingBox(t *testing.T) {
	t.Parallel()

	assert.Equal(t, geometry.Rect{}, geometry.BoundingBox(nil))

	box := geometry.BoundingBox([]geometry.Point2D{
		{X: 2, Y: 3}, {X: -1, Y: 7}, {X: 5, Y: 0},
	})
	assert.Equal(t, geometry.NewRect(-1, 0, 6, 7), box)
}

func TestPointInPolygon(t *testing.T) {
	t.Parallel()

	triangle := []geometry.Point2D{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 10},
	}

	assert.True(t, geometry.PointInPolygon(geometry.NewPoint2D(5, 3), triangle))
	assert.False(t, geometry.PointInPolygon(geometry.NewPoint2D(0, 9), triangle))
	assert.False(t, geometry.PointInPolygon(geometry.NewPoint2D(5, 3), triangle[:2]))
}
