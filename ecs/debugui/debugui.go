// Package debugui provides immediate-mode GUI overlays for ECS applications
// using Dear ImGui. Windows render live views of a World's archetype storage
// and a Scheduler's execution statistics.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/strata/ecs"
)

// Window is a debug overlay that renders ImGui widgets for a world.
type Window interface {
	Render(world *ecs.World)
}

// InputState tracks Dear ImGui's input capture state. Use it to decide
// whether the game should ignore mouse or keyboard input this frame.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// UI owns a set of debug windows and exposes them to a scheduler as a
// system. Render callbacks are deferred through the command buffer so they
// run at the stage barrier, inside the backend's frame.
type UI struct {
	windows []Window
	input   InputState
}

// NewUI creates an empty overlay set.
func NewUI() *UI {
	return &UI{}
}

// Add appends a window to the overlay set.
func (ui *UI) Add(w Window) {
	ui.windows = append(ui.windows, w)
}

// Input returns the capture state sampled by the last system execution.
func (ui *UI) Input() InputState {
	return ui.input
}

// System returns a descriptor that samples ImGui input state and defers
// every window's render callback. Register it with the application's
// scheduler.
func (ui *UI) System() ecs.SystemDescriptor {
	return ecs.SystemDescriptor{
		Name: "DebugUI",
		Run: func(world *ecs.World, commands *ecs.Commands) {
			io := imgui.CurrentIO()
			ui.input.WantCaptureMouse = io.WantCaptureMouse()
			ui.input.WantCaptureKeyboard = io.WantCaptureKeyboard()

			for _, w := range ui.windows {
				window := w
				commands.Defer(func() {
					window.Render(world)
				})
			}
		},
	}
}
