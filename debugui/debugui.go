// Package debugui draws Dear ImGui panels over a running script engine.
//
// Panels only touch the engine and host from the goroutine that calls
// Render, which must sit between the backend's BeginFrame and EndFrame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/alscript/engine"
)

// InputState tracks whether ImGui wants the mouse or keyboard this frame.
// Callers use it to keep clicks on a panel from reaching the scripts.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay owns every debug panel for one engine.
type Overlay struct {
	engine *engine.Engine
	state  InputState

	Browser   *EntityBrowser
	Inspector *Inspector
	Input     *InputPanel
	Stats     *ScriptStats
}

func New(eng *engine.Engine) *Overlay {
	o := &Overlay{
		engine:    eng,
		Browser:   NewEntityBrowser(100),
		Inspector: NewInspector(),
		Input:     NewInputPanel(),
		Stats:     NewScriptStats(120),
	}
	o.Inspector.OnSelect = o.Browser.Select
	return o
}

// Render draws every panel. dt is the wall time of the last frame in
// seconds.
func (o *Overlay) Render(dt float32) {
	io := imgui.CurrentIO()
	o.state.WantCaptureMouse = io.WantCaptureMouse()
	o.state.WantCaptureKeyboard = io.WantCaptureKeyboard()

	o.Browser.Render(o.engine)
	o.Inspector.Render(o.engine, o.Browser.Selected())
	o.Input.Render(o.engine.Input(), o.engine.Host())
	o.Stats.Render(o.engine, dt)
}

func (o *Overlay) State() InputState {
	return o.state
}
