package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// MeshOptions contains optional parameters for mesh construction
type MeshOptions struct {
	// OneBasedIndices marks the face list as using 1-based vertex indices
	// (the convention of the external scene format); they are normalized
	// to 0-based before storage.
	OneBasedIndices bool

	// Smooth enables per-vertex normal interpolation. Vertex normals are
	// accumulated area-weighted over the faces that share each vertex.
	Smooth bool
}

// Mesh is an indexed triangle mesh. It owns its index buffer; the vertex
// buffer is shared, read-only. Intersection goes through an internal BVH
// over the individual triangles.
type Mesh struct {
	triangles     []core.Shape
	bvh           *core.BVH
	bbox          core.AABB
	faces         []int // Normalized 0-based indices, 3 per triangle
	materialIndex int
}

// NewMesh creates a mesh from a shared vertex buffer and a face index list
// (three indices per triangle). Out-of-range indices are construction
// errors reported with the offending face, not intersection-time faults.
func NewMesh(vertices []core.Vec3, faces []int, materialIndex int, options *MeshOptions) (*Mesh, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("mesh: face index count %d is not a multiple of 3", len(faces))
	}
	if options == nil {
		options = &MeshOptions{}
	}

	normalized := make([]int, len(faces))
	for i, idx := range faces {
		if options.OneBasedIndices {
			idx--
		}
		if idx < 0 || idx >= len(vertices) {
			return nil, fmt.Errorf("mesh: face %d references vertex %d, have %d vertices",
				i/3, faces[i], len(vertices))
		}
		normalized[i] = idx
	}

	var vertexNormals []core.Vec3
	if options.Smooth {
		vertexNormals = buildVertexNormals(vertices, normalized)
	}

	numTriangles := len(normalized) / 3
	triangles := make([]core.Shape, 0, numTriangles)
	for i := 0; i < numTriangles; i++ {
		i0, i1, i2 := normalized[i*3], normalized[i*3+1], normalized[i*3+2]
		if options.Smooth {
			triangles = append(triangles, NewSmoothTriangle(
				vertices[i0], vertices[i1], vertices[i2],
				vertexNormals[i0], vertexNormals[i1], vertexNormals[i2],
				materialIndex))
		} else {
			triangles = append(triangles, NewTriangle(vertices[i0], vertices[i1], vertices[i2], materialIndex))
		}
	}

	bvh := core.NewBVH(triangles)

	return &Mesh{
		triangles:     triangles,
		bvh:           bvh,
		bbox:          bvh.WorldBounds(),
		faces:         normalized,
		materialIndex: materialIndex,
	}, nil
}

// buildVertexNormals accumulates area-weighted face normals per vertex.
// The cross product is left unnormalized so larger faces contribute more.
func buildVertexNormals(vertices []core.Vec3, faces []int) []core.Vec3 {
	normals := make([]core.Vec3, len(vertices))
	for i := 0; i+2 < len(faces); i += 3 {
		v0 := vertices[faces[i]]
		v1 := vertices[faces[i+1]]
		v2 := vertices[faces[i+2]]
		faceNormal := v1.Subtract(v0).Cross(v2.Subtract(v0))
		normals[faces[i]] = normals[faces[i]].Add(faceNormal)
		normals[faces[i+1]] = normals[faces[i+1]].Add(faceNormal)
		normals[faces[i+2]] = normals[faces[i+2]].Add(faceNormal)
	}
	for i := range normals {
		if normals[i].LengthSquared() > 0 {
			normals[i] = normals[i].Normalize()
		}
	}
	return normals
}

// Hit tests if a ray intersects any triangle in the mesh
func (m *Mesh) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return m.bvh.Hit(ray, tMin, tMax)
}

// BoundingBox returns the bounding box of the whole mesh
func (m *Mesh) BoundingBox() core.AABB {
	return m.bbox
}

// TriangleCount returns the number of triangles in the mesh
func (m *Mesh) TriangleCount() int {
	return len(m.triangles)
}

// Faces returns the normalized 0-based face index list
func (m *Mesh) Faces() []int {
	return m.faces
}

// MaterialIndexes returns the material table entries this mesh references
func (m *Mesh) MaterialIndexes() []int {
	return []int{m.materialIndex}
}
