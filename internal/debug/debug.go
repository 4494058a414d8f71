package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

var textColor = rl.NewColor(0, 255, 136, 255)

// Debug holds runtime debugging overlays drawn at the top-left. All are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowStats    bool
	font         rl.Font // optional; when set, Draw uses DrawTextEx instead of default font
	stats        func() string
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastStats    string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden. stats, if not nil, supplies the
// text of the stats line.
func New(stats func() string) *Debug {
	return &Debug{stats: stats}
}

// SetShowFPS sets whether the FPS counter is drawn.
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether the heap allocation counter is drawn under FPS.
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// SetShowStats sets whether the pick/mesh counters are drawn.
func (d *Debug) SetShowStats(show bool) {
	d.ShowStats = show
}

// SetFont sets the font used to draw overlays. Zero texture ID = use raylib default.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// refresh recomputes overlay text every updateInterval frames, or immediately when an
// enabled line has no text yet.
func (d *Debug) refresh() {
	d.frameCount++
	update := d.frameCount%updateInterval == 0
	if (d.ShowFPS && d.lastFpsText == "") || (d.ShowMemAlloc && d.lastMemText == "") || (d.ShowStats && d.lastStats == "") {
		update = true
	}
	if !update {
		return
	}
	if d.ShowFPS {
		d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
	}
	if d.ShowMemAlloc {
		runtime.ReadMemStats(&d.lastMemStats)
		mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
		d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
	}
	if d.ShowStats && d.stats != nil {
		d.lastStats = d.stats()
	}
}

// Lines returns the text of every enabled overlay in draw order.
func (d *Debug) Lines() []string {
	var out []string
	if d.ShowFPS && d.lastFpsText != "" {
		out = append(out, d.lastFpsText)
	}
	if d.ShowMemAlloc && d.lastMemText != "" {
		out = append(out, d.lastMemText)
	}
	if d.ShowStats && d.lastStats != "" {
		out = append(out, d.lastStats)
	}
	return out
}

// Draw renders any enabled overlays. Call after the scene and panels in the draw loop.
func (d *Debug) Draw() {
	d.refresh()
	y := float32(padding)
	for _, text := range d.Lines() {
		if d.font.Texture.ID != 0 {
			rl.DrawTextEx(d.font, text, rl.NewVector2(padding, y), fontSize, 1, textColor)
		} else {
			rl.DrawText(text, padding, int32(y), fontSize, textColor)
		}
		y += lineHeight
	}
}
