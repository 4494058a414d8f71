package pick

import (
	"motherboard/internal/board"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// State is the panel state driven by the controller.
type State int

const (
	Idle State = iota
	Showing
)

func (s State) String() string {
	if s == Showing {
		return "showing"
	}
	return "idle"
}

// Presenter displays or hides the selected section.
type Presenter interface {
	Present(a board.Annotation)
	Dismiss()
}

// Recorder observes pick outcomes. stats.Stats implements it.
type Recorder interface {
	Pick(hit bool)
	Panel(visible bool)
}

// Controller is the Idle/Showing state machine behind clicks.
type Controller struct {
	world    *board.World
	view     Presenter
	recorder Recorder

	pointer Pointer
	state   State
	current int
}

// NewController returns an idle controller. rec may be nil.
func NewController(w *board.World, view Presenter, rec Recorder) *Controller {
	return &Controller{world: w, view: view, recorder: rec}
}

// Move stores the pointer position for the next click.
func (c *Controller) Move(p Pointer) {
	c.pointer = p
}

// Pointer returns the last stored pointer position.
func (c *Controller) Pointer() Pointer {
	return c.pointer
}

// Click casts a ray through the stored pointer. A hit shows the owning entry; a miss
// hides the panel whatever the current state.
func (c *Controller) Click(cam rl.Camera3D, aspect float32) (Hit, bool) {
	hit, ok := Cast(c.world, Ray(cam, aspect, c.pointer))
	if c.recorder != nil {
		c.recorder.Pick(ok)
	}
	if !ok {
		c.Dismiss()
		return Hit{}, false
	}
	c.show(hit.Entry)
	return hit, true
}

// Select shows the entry of the given type, as if it had been clicked.
func (c *Controller) Select(typ string) bool {
	i, ok := c.world.Lookup(typ)
	if !ok {
		return false
	}
	c.show(i)
	return true
}

// Dismiss hides the panel. It is safe to call while idle.
func (c *Controller) Dismiss() {
	c.state = Idle
	c.view.Dismiss()
	if c.recorder != nil {
		c.recorder.Panel(false)
	}
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Selection returns the entry being shown.
func (c *Controller) Selection() (board.Entry, bool) {
	if c.state != Showing {
		return board.Entry{}, false
	}
	return c.world.Entry(c.current), true
}

func (c *Controller) show(i int) {
	c.state, c.current = Showing, i
	c.view.Present(c.world.Entry(i).Annotation)
	if c.recorder != nil {
		c.recorder.Panel(true)
	}
}
