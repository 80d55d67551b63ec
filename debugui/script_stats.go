package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/alscript/engine"
)

// ScriptStats plots frame times and per-class OnUpdate timings.
type ScriptStats struct {
	history []float32
	index   int
}

func NewScriptStats(historyFrames int) *ScriptStats {
	return &ScriptStats{history: make([]float32, max(historyFrames, 1))}
}

// Record adds one frame time in seconds to the history.
func (ps *ScriptStats) Record(dt float32) {
	ps.history[ps.index] = dt * 1000
	ps.index = (ps.index + 1) % len(ps.history)
}

// AverageMillis is the mean of the recorded frame times in milliseconds.
func (ps *ScriptStats) AverageMillis() float32 {
	var sum float32
	for _, ft := range ps.history {
		sum += ft
	}
	return sum / float32(len(ps.history))
}

func (ps *ScriptStats) Render(eng *engine.Engine, dt float32) {
	if !imgui.BeginV("Script Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	ps.Record(dt)
	stats := eng.Stats()
	storage := eng.Host().Storage().CollectStats()

	imgui.Text(fmt.Sprintf("Frame: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Entities: %d", storage.EntityCount))
	imgui.Text(fmt.Sprintf("Archetypes: %d", storage.ArchetypeCount))
	imgui.Text(fmt.Sprintf("Scripts: %d", stats.ScriptCount))

	avg := ps.AverageMillis()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000/avg))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.history[0], int32(len(ps.history)))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("ClassTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Class")
		imgui.TableSetupColumn("Instances")
		imgui.TableSetupColumn("Calls")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Max")
		imgui.TableHeadersRow()

		for _, c := range stats.Classes {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(c.Class)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", c.Instances))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", c.ExecutionCount))
			imgui.TableNextColumn()
			imgui.Text(c.AvgDuration.Round(time.Microsecond).String())
			imgui.TableNextColumn()
			imgui.Text(c.MaxDuration.Round(time.Microsecond).String())
		}
		imgui.EndTable()
	}

	if imgui.TreeNodeStr("Archetype Details") {
		for _, arch := range storage.Archetypes {
			imgui.BulletText(fmt.Sprintf("%s: %d", arch.Mask, arch.EntityCount))
		}
		imgui.TreePop()
	}
}
