package geom_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BRL-CAD/nmgcore/geom"
)

func TestBBoxExtendAndOverlaps(t *testing.T) {
	b := geom.EmptyBBox()
	require.False(t, b.Valid())
	b = b.Extend(geom.NewVec3(0, 0, 0)).Extend(geom.NewVec3(1, 1, 1))
	require.True(t, b.Valid())
	require.Equal(t, geom.NewVec3(0, 0, 0), b.Min)
	require.Equal(t, geom.NewVec3(1, 1, 1), b.Max)

	other := geom.EmptyBBox().Extend(geom.NewVec3(0.5, 0.5, 0.5)).Extend(geom.NewVec3(2, 2, 2))
	require.True(t, b.Overlaps(other, 0.005))
	require.True(t, other.Overlaps(b, 0.005))

	far := geom.EmptyBBox().Extend(geom.NewVec3(10, 10, 10)).Extend(geom.NewVec3(11, 11, 11))
	require.False(t, b.Overlaps(far, 0.005))
}

func TestBBoxContainsAndVolume(t *testing.T) {
	outer := geom.EmptyBBox().Extend(geom.NewVec3(-1, -1, -1)).Extend(geom.NewVec3(1, 1, 1))
	inner := geom.EmptyBBox().Extend(geom.NewVec3(-0.5, -0.5, -0.5)).Extend(geom.NewVec3(0.5, 0.5, 0.5))
	require.True(t, outer.Contains(inner, 0.005))
	require.False(t, inner.Contains(outer, 0.005))
	require.InDelta(t, 8.0, outer.Volume(), 1e-9)
}

func TestPlaneFromTriangle(t *testing.T) {
	p, ok := geom.PlaneFromTriangle(geom.NewVec3(0, 0, 0), geom.NewVec3(1, 0, 0), geom.NewVec3(0, 1, 0))
	require.True(t, ok)
	require.InDelta(t, 0, p.SignedDistance(geom.NewVec3(0.3, 0.3, 0)), 1e-9)
	require.InDelta(t, 1, p.SignedDistance(geom.NewVec3(0, 0, 1)), 1e-9)
}

func TestPlaneFromTriangleDegenerate(t *testing.T) {
	_, ok := geom.PlaneFromTriangle(geom.NewVec3(0, 0, 0), geom.NewVec3(1, 1, 1), geom.NewVec3(2, 2, 2))
	require.False(t, ok)
}
