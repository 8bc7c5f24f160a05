package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mttstwrt/measurementtools/pkg/config"
	"github.com/mttstwrt/measurementtools/pkg/grid"
	"github.com/mttstwrt/measurementtools/pkg/voxel"
)

// newTestApp builds an App from command-line style flags. -script is
// filled in since the App is handed sources directly.
func newTestApp(t *testing.T, reg prometheus.Registerer, args ...string) *App {
	t.Helper()
	cfg, err := config.Read(append([]string{"-script", "test.lisp"}, args...), func(string) string { return "" })
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	app, err := NewApp(cfg, reg)
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	t.Cleanup(func() { app.Close() })
	return app
}

func readExample(t *testing.T, name string) string {
	t.Helper()
	source, err := os.ReadFile(filepath.Join("examples", name))
	if err != nil {
		t.Fatalf("failed to read %s: %v", name, err)
	}
	return string(source)
}

func requireNoErrors(t *testing.T, r Report) {
	t.Helper()
	if len(r.Errors) > 0 {
		for _, e := range r.Errors {
			t.Errorf("eval error (line %d): %s", e.Line, e.Message)
		}
		t.FailNow()
	}
}

// TestE2EBoxExample runs examples/box.lisp through script, resolver and
// surface cache.
func TestE2EBoxExample(t *testing.T) {
	app := newTestApp(t, nil)
	r := app.Evaluate(context.Background(), readExample(t, "box.lisp"))
	requireNoErrors(t, r)

	if !r.Resolved || r.Mode != "box" {
		t.Fatalf("expected resolved box, got resolved=%v mode=%q", r.Resolved, r.Mode)
	}
	if r.Anchors != 2 {
		t.Errorf("expected 2 anchors, got %d", r.Anchors)
	}
	if r.Surface.Voxels != 26 {
		t.Errorf("expected 26 surface voxels, got %d", r.Surface.Voxels)
	}
	if r.Surface.Limited {
		t.Errorf("unexpected limit: %s", r.Surface.Reason)
	}
	if got := strings.Join(r.Labels, " "); got != "3 3 3" {
		t.Errorf("labels = %q, want %q", got, "3 3 3")
	}
	if r.Counts != nil {
		t.Error("counts should be absent without a grid")
	}
	if r.Meshes != nil {
		t.Error("meshes should be absent without -mesh")
	}
}

func TestE2EExamplesEvaluate(t *testing.T) {
	tests := []struct {
		file string
		mode string
	}{
		{"box.lisp", "box"},
		{"tube.lisp", "tube"},
		{"ellipsoid.lisp", "ellipsoid"},
		{"cylinder-layer.lisp", "cylinder"},
	}
	app := newTestApp(t, nil)
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			r := app.Evaluate(context.Background(), readExample(t, tt.file))
			requireNoErrors(t, r)
			if r.Mode != tt.mode {
				t.Errorf("mode = %q, want %q", r.Mode, tt.mode)
			}
			if r.Surface.Voxels == 0 {
				t.Error("expected a non-empty surface")
			}
			if len(r.Labels) == 0 {
				t.Error("expected measurement labels")
			}
		})
	}
}

// TestE2EEmptySource ensures the pipeline handles empty input gracefully.
func TestE2EEmptySource(t *testing.T) {
	app := newTestApp(t, nil)
	r := app.Evaluate(context.Background(), "")

	if r.Errors == nil {
		t.Error("Errors should be non-nil empty slice, got nil")
	}
	if len(r.Errors) > 0 {
		t.Errorf("unexpected errors for empty source: %v", r.Errors)
	}
	if r.Resolved {
		t.Error("empty source should not resolve")
	}
	if r.Layer != "all" {
		t.Errorf("layer = %q, want all", r.Layer)
	}
}

// TestE2ESyntaxError ensures eval errors are reported, not fatal errors.
func TestE2ESyntaxError(t *testing.T) {
	app := newTestApp(t, nil)
	r := app.Evaluate(context.Background(), "(anchor 1 2 3)\n(anchor 4")

	if len(r.Errors) == 0 {
		t.Fatal("expected eval errors for syntax error")
	}
	if r.Resolved {
		t.Error("a failed script should not resolve")
	}
}

func TestE2ELayer(t *testing.T) {
	source := readExample(t, "cylinder-layer.lisp")

	r := newTestApp(t, nil).Evaluate(context.Background(), source)
	requireNoErrors(t, r)
	if r.Layer != "y=65" {
		t.Errorf("layer = %q, want y=65", r.Layer)
	}
	ring := r.Surface.Voxels

	r = newTestApp(t, nil, "-layer", "60").Evaluate(context.Background(), source)
	requireNoErrors(t, r)
	if r.Layer != "y=60" {
		t.Errorf("layer = %q, want y=60", r.Layer)
	}
	if r.Surface.Voxels <= ring {
		t.Errorf("cap layer has %d voxels, expected more than the %d of a middle ring", r.Surface.Voxels, ring)
	}

	r = newTestApp(t, nil, "-layer", "90").Evaluate(context.Background(), source)
	requireNoErrors(t, r)
	if r.Surface.Voxels != 0 {
		t.Errorf("layer outside the cylinder has %d voxels, want 0", r.Surface.Voxels)
	}
}

func TestE2EMesh(t *testing.T) {
	app := newTestApp(t, nil, "-mesh", "-mesh-cells", "24")
	r := app.Evaluate(context.Background(), readExample(t, "box.lisp"))
	requireNoErrors(t, r)

	if len(r.Meshes) != 1 {
		t.Fatalf("expected 1 mesh, got %d", len(r.Meshes))
	}
	m := r.Meshes[0]
	if m.Name != "box" {
		t.Errorf("mesh name = %q, want box", m.Name)
	}
	if m.Vertices == 0 || m.Triangles == 0 {
		t.Errorf("mesh should have geometry, got %d vertices %d triangles", m.Vertices, m.Triangles)
	}
	for i := range 3 {
		if m.Min[i] < -0.5 || m.Max[i] > 3.5 || m.Max[i] < 2.5 {
			t.Errorf("axis %d: mesh bounds [%v, %v] do not fit the 3x3x3 box", i, m.Min[i], m.Max[i])
		}
	}
}

func TestE2ECounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.db")
	g, err := grid.OpenSQLite(path)
	if err != nil {
		t.Fatalf("open grid: %v", err)
	}
	cells := map[voxel.Coord]string{}
	for x := 0; x <= 2; x++ {
		for z := 0; z <= 2; z++ {
			cells[voxel.C(x, 0, z)] = "stone"
			cells[voxel.C(x, 1, z)] = "dirt"
		}
	}
	cells[voxel.C(1, 2, 1)] = "torch"
	cells[voxel.C(9, 9, 9)] = "stone" // outside the box
	if err := g.PutAll(context.Background(), cells); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := g.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	app := newTestApp(t, nil, "-grid", path)
	r := app.Evaluate(context.Background(), readExample(t, "box.lisp"))
	requireNoErrors(t, r)

	if r.Counts == nil {
		t.Fatal("expected counts with a grid")
	}
	if r.Counts.Total != 19 || r.Counts.Volume != 27 {
		t.Errorf("total=%d volume=%d, want 19 and 27", r.Counts.Total, r.Counts.Volume)
	}
	want := []string{"dirt", "stone", "torch"}
	if len(r.Counts.Rows) != len(want) {
		t.Fatalf("rows = %v", r.Counts.Rows)
	}
	for i, content := range want {
		if r.Counts.Rows[i].Content != content {
			t.Errorf("row %d = %q, want %q", i, r.Counts.Rows[i].Content, content)
		}
	}
}

func TestE2ESurfaceGuard(t *testing.T) {
	app := newTestApp(t, nil)
	r := app.Evaluate(context.Background(), "(anchor 0 0 0)\n(anchor 999 999 999)")
	requireNoErrors(t, r)

	if !r.Surface.Limited {
		t.Fatal("expected a limited result for a huge box")
	}
	if !strings.Contains(r.Surface.Reason, "too large") {
		t.Errorf("reason = %q, want too large", r.Surface.Reason)
	}
	if r.Surface.Voxels != 0 {
		t.Errorf("refused extraction returned %d voxels", r.Surface.Voxels)
	}
}

func counterValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		total := 0.0
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
		return total
	}
	return 0
}

func TestE2ECacheReuse(t *testing.T) {
	reg := prometheus.NewRegistry()
	app := newTestApp(t, reg)
	ctx := context.Background()

	box := readExample(t, "box.lisp")
	app.Evaluate(ctx, box)
	app.Evaluate(ctx, box)
	if got := counterValue(t, reg, "measurement_surface_cache_hits_total"); got != 1 {
		t.Errorf("hits = %v, want 1", got)
	}

	// Same bounds and anchor count, different anchors. The key would
	// match, so the App must invalidate.
	r := app.Evaluate(ctx, "(anchor 2 0 0)\n(anchor 0 2 2)")
	requireNoErrors(t, r)
	if got := counterValue(t, reg, "measurement_surface_cache_hits_total"); got != 1 {
		t.Errorf("hits = %v after moving anchors, want 1", got)
	}
	if got := counterValue(t, reg, "measurement_surface_cache_misses_total"); got != 2 {
		t.Errorf("misses = %v, want 2", got)
	}
	if r.Surface.Voxels != 26 {
		t.Errorf("expected 26 surface voxels, got %d", r.Surface.Voxels)
	}
}
