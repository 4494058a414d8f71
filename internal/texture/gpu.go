package texture

import (
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Texture pairs a generated image with its GPU texture. Upload is deferred to the first
// GPU call so textures can be built before the window/OpenGL context exists.
type Texture struct {
	img      *image.RGBA
	gpu      rl.Texture2D
	uploaded bool
}

// New wraps img. No GPU work happens here.
func New(img *image.RGBA) *Texture {
	return &Texture{img: img}
}

// Image returns the CPU-side pixels.
func (t *Texture) Image() *image.RGBA {
	return t.img
}

// GPU returns the uploaded texture, uploading on first use. Call only from the render
// thread after the window is open.
func (t *Texture) GPU() rl.Texture2D {
	if t.uploaded {
		return t.gpu
	}
	t.uploaded = true
	img := rl.NewImageFromImage(t.img)
	t.gpu = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	if rl.IsTextureValid(t.gpu) {
		rl.GenTextureMipmaps(&t.gpu)
		rl.SetTextureFilter(t.gpu, rl.FilterTrilinear)
	}
	return t.gpu
}

// Unload frees the GPU texture if it was uploaded.
func (t *Texture) Unload() {
	if t.uploaded && rl.IsTextureValid(t.gpu) {
		rl.UnloadTexture(t.gpu)
	}
	t.uploaded = false
	t.gpu = rl.Texture2D{}
}
