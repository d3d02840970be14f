package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadmesh/mesh"
)

// square returns the unit-square points (0,0) (10,0) (0,10) (10,10).
func square() []mesh.Point {
	return []mesh.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}}
}

func TestFace_Variants(t *testing.T) {
	tri := mesh.NewTriangle(2, 0, 3)
	assert.Equal(t, mesh.Triangle, tri.Shape())
	assert.Equal(t, 3, tri.Len())
	assert.Equal(t, []int{2, 0, 3}, tri.Indices())
	assert.Equal(t, 2, tri.At(3), "At wraps modulo Len")
	assert.Equal(t, 3, tri.At(-1))
	assert.Equal(t, 1, tri.IndexOf(0))
	assert.Equal(t, -1, tri.IndexOf(7))
	assert.Equal(t, "{2,0,3}", tri.String())

	q := mesh.NewQuad(0, 1, 3, 2)
	assert.True(t, q.IsQuad())
	assert.Equal(t, "{0,1,3,2}", q.String())
	assert.Equal(t, "{9,1,3,2}", q.Replace(0, 9).String())
	assert.Equal(t, "{0,1,3,2}", q.String(), "Replace returns a copy")

	assert.True(t, mesh.RemovedFace.IsRemoved())
	assert.Equal(t, 0, mesh.RemovedFace.Len())
	assert.Empty(t, mesh.RemovedFace.Indices())
	assert.Equal(t, "{}", mesh.RemovedFace.String())
	assert.Panics(t, func() { mesh.RemovedFace.At(0) })
}

func TestShape_String(t *testing.T) {
	assert.Equal(t, "removed", mesh.Removed.String())
	assert.Equal(t, "triangle", mesh.Triangle.String())
	assert.Equal(t, "quad", mesh.Quad.String())
	assert.Equal(t, "shape(9)", mesh.Shape(9).String())
}

func TestNew_Validation(t *testing.T) {
	_, err := mesh.New(square(), []mesh.Face{mesh.NewTriangle(0, 1, 4)})
	assert.ErrorIs(t, err, mesh.ErrPointOutOfRange)

	_, err = mesh.New(square(), []mesh.Face{mesh.NewTriangle(0, -1, 2)})
	assert.ErrorIs(t, err, mesh.ErrPointOutOfRange)

	_, err = mesh.New(square(), []mesh.Face{mesh.NewQuad(0, 1, 1, 2)})
	assert.ErrorIs(t, err, mesh.ErrDegenerateFace)

	m, err := mesh.New(square(), []mesh.Face{mesh.NewTriangle(2, 0, 3), mesh.RemovedFace})
	require.NoError(t, err)
	assert.Len(t, m.Faces, 2)
}

func TestFromTriangles(t *testing.T) {
	m, err := mesh.FromTriangles(square(), [][3]int{{2, 0, 3}, {3, 0, 1}})
	require.NoError(t, err)
	tris, quads, removed := m.Counts()
	assert.Equal(t, 2, tris)
	assert.Equal(t, 0, quads)
	assert.Equal(t, 0, removed)
}

func TestMesh_CloneIsDeep(t *testing.T) {
	m, err := mesh.FromTriangles(square(), [][3]int{{2, 0, 3}})
	require.NoError(t, err)
	c := m.Clone()
	c.Faces[0] = mesh.RemovedFace
	c.Points[0].X = 42
	assert.True(t, m.Faces[0].IsTriangle())
	assert.Equal(t, 0.0, m.Points[0].X)
}

func TestMesh_AddPoint(t *testing.T) {
	m := &mesh.Mesh{Points: square()}
	idx := m.AddPoint(mesh.Point{X: 5, Y: 5})
	assert.Equal(t, 4, idx)
	assert.Len(t, m.Points, 5)
}

func TestMesh_CompactPreservesOrder(t *testing.T) {
	m := &mesh.Mesh{
		Points: square(),
		Faces: []mesh.Face{
			mesh.NewTriangle(2, 0, 3),
			mesh.RemovedFace,
			mesh.NewQuad(0, 1, 3, 2),
			mesh.RemovedFace,
			mesh.NewTriangle(3, 0, 1),
		},
	}
	dropped := m.Compact()
	assert.Equal(t, 2, dropped)
	require.Len(t, m.Faces, 3)
	assert.Equal(t, "{2,0,3}", m.Faces[0].String())
	assert.Equal(t, "{0,1,3,2}", m.Faces[1].String())
	assert.Equal(t, "{3,0,1}", m.Faces[2].String())
	assert.Equal(t, 0, m.Compact(), "second compaction is a no-op")
}

func TestMesh_PointFaces(t *testing.T) {
	m, err := mesh.FromTriangles(square(), [][3]int{{2, 0, 3}, {3, 0, 1}})
	require.NoError(t, err)
	pf := m.PointFaces()
	assert.Equal(t, []int{0, 1}, pf[0])
	assert.Equal(t, []int{1}, pf[1])
	assert.Equal(t, []int{0}, pf[2])
	assert.Equal(t, []int{0, 1}, pf[3])
}

func TestMesh_BoundarySides(t *testing.T) {
	// Two triangles: 4 boundary sides, the diagonal 0–3 is interior.
	m, err := mesh.FromTriangles(square(), [][3]int{{2, 0, 3}, {3, 0, 1}})
	require.NoError(t, err)
	sides, err := m.BoundarySides()
	require.NoError(t, err)
	assert.Len(t, sides, 4)
	for _, s := range sides {
		assert.False(t, (s.From == 0 && s.To == 3) || (s.From == 3 && s.To == 0), "diagonal must be interior")
	}

	// The same region as a single quad has the same boundary.
	q := &mesh.Mesh{Points: square(), Faces: []mesh.Face{mesh.NewQuad(0, 1, 3, 2)}}
	sides, err = q.BoundarySides()
	require.NoError(t, err)
	assert.Len(t, sides, 4)
}

func TestMesh_BoundarySidesNonManifold(t *testing.T) {
	// The same triangle twice uses every oriented side twice.
	m, err := mesh.FromTriangles(square(), [][3]int{{2, 0, 3}, {0, 3, 2}})
	require.NoError(t, err)
	_, err = m.BoundarySides()
	assert.ErrorIs(t, err, mesh.ErrNonManifold)
}
