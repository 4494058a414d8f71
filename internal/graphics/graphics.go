// Package graphics owns the window and the frame loop.
package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Options configures the window.
type Options struct {
	Width, Height int
	Title         string
	TargetFPS     int
	MSAA          bool
	Background    rl.Color
	// OnInit runs once after the window and GL context exist.
	OnInit func()
	// OnClose runs once before the window closes; release GPU resources here.
	OnClose func()
	// OnResize is called synchronously, before update, on the frame the window size changed.
	OnResize func(width, height int)
}

// Clock reads raylib's monotonic time since InitWindow.
type Clock struct{}

// Seconds returns seconds since the window opened.
func (Clock) Seconds() float64 {
	return rl.GetTime()
}

// Run opens a resizable window and runs the main loop until it is closed. Each frame it
// calls update (input and animation), clears the screen, then calls draw3D and draw2D.
// ESC toggles the console, so the window closes only via its close button.
func Run(opts Options, update, draw3D, draw2D func()) {
	flags := uint32(rl.FlagWindowResizable)
	if opts.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(opts.TargetFPS))

	if opts.OnInit != nil {
		opts.OnInit()
	}
	if opts.OnClose != nil {
		defer opts.OnClose()
	}
	if opts.OnResize != nil {
		opts.OnResize(rl.GetScreenWidth(), rl.GetScreenHeight())
	}
	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() && opts.OnResize != nil {
			opts.OnResize(rl.GetScreenWidth(), rl.GetScreenHeight())
		}
		update()

		rl.BeginDrawing()
		rl.ClearBackground(opts.Background)
		draw3D()
		draw2D()
		rl.EndDrawing()
	}
}
