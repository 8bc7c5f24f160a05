// Package tessellate produces preview meshes for resolved shapes using a
// geometry kernel. One mesh is produced per part.
package tessellate

import (
	"errors"
	"fmt"

	"github.com/mttstwrt/measurementtools/pkg/kernel"
	"github.com/mttstwrt/measurementtools/pkg/selection"
	"github.com/mttstwrt/measurementtools/pkg/shape"
)

// ErrNoParts is returned by Merged when there is nothing to mesh.
var ErrNoParts = errors.New("tessellate: no parts")

// Part is one named shape to mesh.
type Part struct {
	Name   string
	Params shape.Params
}

// FromSnapshot resolves snap into a part. It reports false when the
// selection does not describe a shape yet.
func FromSnapshot(name string, snap selection.Snapshot) (Part, bool) {
	p, ok := snap.Resolve()
	if !ok {
		return Part{}, false
	}
	return Part{Name: name, Params: p}, true
}

// Tessellate meshes every part separately. A part without a name is named
// after its shape mode.
func Tessellate(parts []Part, k kernel.Kernel) ([]*kernel.Mesh, error) {
	meshes := make([]*kernel.Mesh, 0, len(parts))
	for i, part := range parts {
		solid, err := k.Solid(part.Params)
		if err != nil {
			return nil, fmt.Errorf("tessellate: part %d: %w", i, err)
		}
		mesh, err := k.ToMesh(solid)
		if err != nil {
			return nil, fmt.Errorf("tessellate: ToMesh failed for part %d: %w", i, err)
		}
		mesh.Name = partName(part)
		meshes = append(meshes, mesh)
	}
	return meshes, nil
}

// Merged unions every part into a single mesh called name.
func Merged(name string, parts []Part, k kernel.Kernel) (*kernel.Mesh, error) {
	if len(parts) == 0 {
		return nil, ErrNoParts
	}
	var union kernel.Solid
	for i, part := range parts {
		solid, err := k.Solid(part.Params)
		if err != nil {
			return nil, fmt.Errorf("tessellate: part %d: %w", i, err)
		}
		if union == nil {
			union = solid
			continue
		}
		union = k.Union(union, solid)
	}
	mesh, err := k.ToMesh(union)
	if err != nil {
		return nil, fmt.Errorf("tessellate: ToMesh failed for %s: %w", name, err)
	}
	mesh.Name = name
	return mesh, nil
}

func partName(p Part) string {
	if p.Name != "" {
		return p.Name
	}
	return p.Params.Mode().String()
}
