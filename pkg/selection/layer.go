package selection

import "github.com/mttstwrt/measurementtools/pkg/voxel"

func (s *Selection) LayerMode() bool { return s.layerMode }

// SetLayerMode enables or disables layer mode. Enabling it moves the cursor
// to the middle layer of the selection.
func (s *Selection) SetLayerMode(on bool) {
	s.layerMode = on
	if on {
		s.layer = s.height() / 2
	}
	s.changed()
}

func (s *Selection) ToggleLayerMode() {
	s.SetLayerMode(!s.layerMode)
}

// LayerUp moves the cursor one layer up, stopping at the top layer.
func (s *Selection) LayerUp() {
	if s.Empty() || s.layer >= s.height() {
		return
	}
	s.layer++
	s.changed()
}

// LayerDown moves the cursor one layer down, stopping at the bottom layer.
func (s *Selection) LayerDown() {
	if s.layer <= 0 {
		return
	}
	s.layer--
	s.changed()
}

// SetLayerY moves the cursor to absolute height y, clamped to the
// selection.
func (s *Selection) SetLayerY(y int) {
	b, ok := s.Bounds()
	if !ok {
		return
	}
	rel := min(max(y-b.Min.Y, 0), s.height())
	if rel == s.layer {
		return
	}
	s.layer = rel
	s.changed()
}

// CurrentLayerY returns the absolute Y of the cursor.
func (s *Selection) CurrentLayerY() int {
	b, _ := s.Bounds()
	return b.Min.Y + s.layer
}

// LayerCount returns the number of layers the selection spans.
func (s *Selection) LayerCount() int {
	if s.Empty() {
		return 0
	}
	return s.height() + 1
}

// Layer returns the layer filter in effect.
func (s *Selection) Layer() voxel.Layer {
	if !s.layerMode || s.Empty() {
		return voxel.AllLayers
	}
	return voxel.OnLayer(s.CurrentLayerY())
}

func (s *Selection) height() int {
	b, ok := s.Bounds()
	if !ok {
		return 0
	}
	return b.Max.Y - b.Min.Y
}
