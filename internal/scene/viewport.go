package scene

// Viewport is the output surface the camera projects into, in pixels.
type Viewport struct {
	Width  int
	Height int
}

// Resize sets the viewport dimensions. Non-positive sizes (a minimized window) are
// ignored so the aspect ratio stays usable.
func (v *Viewport) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	v.Width, v.Height = width, height
}

// Aspect returns width / height, or 1 before the first Resize.
func (v Viewport) Aspect() float32 {
	if v.Width <= 0 || v.Height <= 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}
