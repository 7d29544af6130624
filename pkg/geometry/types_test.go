package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GustaPeruci/CistercianNumberVision/pkg/geometry"
)

func TestRectFromCorners(t *testing.T) {
	r := geometry.RectFromCorners(10, 20, 4, 2)
	require.Equal(t, geometry.RectInt{X: 4, Y: 2, Width: 6, Height: 18}, r)

	require.True(t, geometry.RectFromCorners(5, 5, 5, 9).Empty(), "zero-width rect is empty")
}

func TestRectUnion(t *testing.T) {
	a := geometry.RectInt{X: 0, Y: 0, Width: 10, Height: 10}
	b := geometry.RectInt{X: 5, Y: 5, Width: 20, Height: 2}

	u := a.Union(b)
	require.Equal(t, geometry.RectInt{X: 0, Y: 0, Width: 25, Height: 10}, u)

	// Empty rect is the identity on either side.
	require.Equal(t, a, geometry.RectInt{}.Union(a))
	require.Equal(t, a, a.Union(geometry.RectInt{}))
}

func TestRectIntersect(t *testing.T) {
	a := geometry.RectInt{X: 0, Y: 0, Width: 10, Height: 10}
	b := geometry.RectInt{X: 6, Y: 4, Width: 10, Height: 10}

	require.Equal(t, geometry.RectInt{X: 6, Y: 4, Width: 4, Height: 6}, a.Intersect(b))

	far := geometry.RectInt{X: 50, Y: 50, Width: 5, Height: 5}
	require.True(t, a.Intersect(far).Empty())
}

func TestRectCenterAndArea(t *testing.T) {
	r := geometry.RectInt{X: 10, Y: 20, Width: 30, Height: 40}
	require.Equal(t, geometry.Pt(25, 40), r.Center())
	require.Equal(t, 1200, r.Area())
	require.Equal(t, 0, geometry.RectInt{Width: -1, Height: 5}.Area())
}

func TestAspectRatio(t *testing.T) {
	require.InDelta(t, 3.0, geometry.RectInt{Width: 60, Height: 20}.AspectRatio(), 1e-9)
	require.Zero(t, geometry.RectInt{Width: 10}.AspectRatio())
}

func TestAngleDeg(t *testing.T) {
	o := geometry.Point2D{}

	require.InDelta(t, 0, o.AngleDeg(geometry.Point2D{X: 10}), 1e-9)
	require.InDelta(t, 90, o.AngleDeg(geometry.Point2D{Y: 10}), 1e-9)
	require.InDelta(t, 45, o.AngleDeg(geometry.Point2D{X: 10, Y: 10}), 1e-9)
	// Opposite directions map to the same orientation.
	require.InDelta(t, 45, o.AngleDeg(geometry.Point2D{X: -10, Y: -10}), 1e-9)
	require.InDelta(t, 135, o.AngleDeg(geometry.Point2D{X: -10, Y: 10}), 1e-9)
}

func TestContains(t *testing.T) {
	r := geometry.RectInt{X: 0, Y: 0, Width: 10, Height: 10}
	require.True(t, r.Contains(geometry.Pt(0, 0)))
	require.True(t, r.Contains(geometry.Pt(9, 9)))
	require.False(t, r.Contains(geometry.Pt(10, 9)), "max edge is exclusive")
}
