package kernel

import "testing"

func TestMeshVertexCount(t *testing.T) {
	tests := []struct {
		name     string
		vertices []float32
		want     int
	}{
		{"empty", nil, 0},
		{"one vertex", []float32{1, 2, 3}, 1},
		{"four vertices", []float32{0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mesh{Vertices: tt.vertices}
			if got := m.VertexCount(); got != tt.want {
				t.Errorf("VertexCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMeshTriangleCount(t *testing.T) {
	tests := []struct {
		name    string
		indices []uint32
		want    int
	}{
		{"empty", nil, 0},
		{"one triangle", []uint32{0, 1, 2}, 1},
		{"two triangles", []uint32{0, 1, 2, 2, 3, 0}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mesh{Indices: tt.indices}
			if got := m.TriangleCount(); got != tt.want {
				t.Errorf("TriangleCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMeshBounds(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		m := &Mesh{}
		if !m.IsEmpty() {
			t.Error("IsEmpty() = false for empty mesh, want true")
		}
		lo, hi := m.Bounds()
		if lo != ([3]float32{}) || hi != ([3]float32{}) {
			t.Errorf("Bounds() = %v, %v, want zero", lo, hi)
		}
	})
	t.Run("vertices", func(t *testing.T) {
		m := &Mesh{Vertices: []float32{1, -2, 3, -4, 5, 0, 2, 2, 9}}
		lo, hi := m.Bounds()
		if want := [3]float32{-4, -2, 0}; lo != want {
			t.Errorf("min = %v, want %v", lo, want)
		}
		if want := [3]float32{2, 5, 9}; hi != want {
			t.Errorf("max = %v, want %v", hi, want)
		}
	})
}
