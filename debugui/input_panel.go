package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/alscript/bridge"
	"github.com/plus3/alscript/input"
)

// InputPanel shows the pointer tracker and the keys held this frame.
type InputPanel struct {
	held []string
}

func NewInputPanel() *InputPanel {
	return &InputPanel{}
}

// HeldKeys names every key src reports as down, in key code order.
func HeldKeys(src bridge.InputCalls) []string {
	var held []string
	for _, k := range bridge.Keys() {
		if src.IsKeyDown(k) {
			held = append(held, k.String())
		}
	}
	return held
}

func (p *InputPanel) Render(t *input.Tracker, src bridge.InputCalls) {
	if !imgui.BeginV("Input", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	imgui.Text(fmt.Sprintf("Mode: %s", t.Mode()))
	imgui.Text(fmt.Sprintf("Last: (%.1f, %.1f)", t.Last().X, t.Last().Y))
	imgui.Text(fmt.Sprintf("Current: (%.1f, %.1f)", t.Current().X, t.Current().Y))
	imgui.Text(fmt.Sprintf("Delta: (%.1f, %.1f)", t.Delta().X, t.Delta().Y))
	imgui.Text(fmt.Sprintf("Updates: %d", t.Updates()))
	if imgui.Button("Reset Tracker") {
		t.Reset()
	}

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Primary: %t  Secondary: %t", src.IsPointerPrimaryDown(), src.IsPointerSecondaryDown()))

	p.held = HeldKeys(src)
	if len(p.held) == 0 {
		imgui.Text("Keys: none")
	} else {
		imgui.Text("Keys: " + strings.Join(p.held, " "))
	}
}
